// SPDX-License-Identifier: MIT

package solution

import (
	"context"

	"github.com/katalvlaran/crossgrid/ctxlog"
	"github.com/katalvlaran/crossgrid/progress"
)

// Prompt asks for a passphrase. It returns false when the user declines.
// It blocks on whatever goroutine calls DecodeWithPrompt.
type Prompt func(ctx context.Context) (passphrase string, ok bool)

// StaticPrompt answers every request with passphrase.
func StaticPrompt(passphrase string) Prompt {
	return func(context.Context) (string, bool) { return passphrase, true }
}

// DecodeWithPrompt opens enc, asking prompt for a passphrase only when enc
// is encrypted. A declined prompt or a done ctx yields progress.ErrCancelled.
func DecodeWithPrompt(ctx context.Context, enc Encoded, prompt Prompt, lengths []int) ([]string, error) {
	if !enc.IsEncrypted() {
		return Decode(enc, "", lengths)
	}
	if err := progress.Checkpoint(ctx); err != nil {
		return nil, err
	}
	if prompt == nil {
		return nil, progress.ErrCancelled
	}

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Requesting solution passphrase.", "encryption", enc.Encryption.Key())
	passphrase, ok := prompt(ctx)
	if !ok {
		logger.Debug("Passphrase prompt declined.")
		return nil, progress.ErrCancelled
	}
	if err := progress.Checkpoint(ctx); err != nil {
		return nil, err
	}
	return Decode(enc, passphrase, lengths)
}
