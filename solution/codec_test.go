// SPDX-License-Identifier: MIT

package solution_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crossgrid/grid"
	"github.com/katalvlaran/crossgrid/progress"
	"github.com/katalvlaran/crossgrid/solution"
	"github.com/katalvlaran/crossgrid/symmetry"
)

var (
	answers = []string{"ABCD", "HIJKL", "PQRS", "BFJNR", "DGLO", "EHMP"}
	lengths = []int{4, 5, 4, 5, 4, 4}
)

func fixedNonce() solution.Option {
	return solution.WithNonceSource(bytes.NewReader(bytes.Repeat([]byte{7}, 64)))
}

func TestRoundTrip(t *testing.T) {
	for _, pass := range []string{"", "a", "correct horse", "pässwörd"} {
		enc, err := solution.Encode(answers, pass)
		require.NoError(t, err, pass)
		assert.Equal(t, pass != "", enc.IsEncrypted())
		assert.Len(t, enc.Hash, 32)

		got, err := solution.Decode(enc, pass, lengths)
		require.NoError(t, err, pass)
		assert.Equal(t, answers, got)
	}
}

func TestRoundTripUnicodeLengths(t *testing.T) {
	texts := []string{"ÉTÉ", "ΑΒΓΔ"}
	enc, err := solution.Encode(texts, "key")
	require.NoError(t, err)
	got, err := solution.Decode(enc, "key", []int{3, 4})
	require.NoError(t, err)
	assert.Equal(t, texts, got)
}

func TestPlainModeStoresPlaintext(t *testing.T) {
	enc, err := solution.Encode(answers, "")
	require.NoError(t, err)
	assert.Equal(t, solution.None, enc.Encryption)
	assert.Empty(t, enc.Nonce)
	assert.Equal(t, []byte("ABCDHIJKLPQRSBFJNRDGLOEHMP"), enc.Ciphertext)
}

func TestEncryptedModeHidesPlaintext(t *testing.T) {
	enc, err := solution.Encode(answers, "secret", fixedNonce())
	require.NoError(t, err)
	assert.Equal(t, solution.Salsa20, enc.Encryption)
	assert.Equal(t, bytes.Repeat([]byte{7}, solution.NonceSize), enc.Nonce)
	assert.NotEqual(t, []byte("ABCDHIJKLPQRSBFJNRDGLOEHMP"), enc.Ciphertext)

	// Same nonce and passphrase give the same output.
	again, err := solution.Encode(answers, "secret", fixedNonce())
	require.NoError(t, err)
	assert.Equal(t, enc, again)

	// Fresh nonces differ.
	a, err := solution.Encode(answers, "secret")
	require.NoError(t, err)
	b, err := solution.Encode(answers, "secret")
	require.NoError(t, err)
	assert.NotEqual(t, a.Nonce, b.Nonce)
}

func TestWrongPassphrase(t *testing.T) {
	enc, err := solution.Encode(answers, "secret")
	require.NoError(t, err)
	for _, wrong := range []string{"", "Secret", "secret ", "x"} {
		_, err = solution.Decode(enc, wrong, lengths)
		assert.ErrorIs(t, err, solution.ErrIncorrectPassphrase, wrong)
	}

	plain, err := solution.Encode(answers, "")
	require.NoError(t, err)
	_, err = solution.Decode(plain, "secret", lengths)
	assert.ErrorIs(t, err, solution.ErrIncorrectPassphrase)
}

func TestTamperedData(t *testing.T) {
	enc, err := solution.Encode(answers, "secret")
	require.NoError(t, err)
	enc.Ciphertext[3] ^= 1
	_, err = solution.Decode(enc, "secret", lengths)
	assert.ErrorIs(t, err, solution.ErrIncorrectPassphrase)

	plain, err := solution.Encode(answers, "")
	require.NoError(t, err)
	plain.Hash[0] ^= 1
	_, err = solution.Decode(plain, "", lengths)
	assert.ErrorIs(t, err, solution.ErrIncorrectPassphrase)
}

func TestLengthMismatch(t *testing.T) {
	enc, err := solution.Encode(answers, "secret")
	require.NoError(t, err)
	_, err = solution.Decode(enc, "secret", []int{4, 5, 4, 5, 4})
	assert.ErrorIs(t, err, solution.ErrSolutionLengthMismatch)
	_, err = solution.Decode(enc, "secret", []int{4, 5, 4, 5, 4, 5})
	assert.ErrorIs(t, err, solution.ErrSolutionLengthMismatch)
	assert.NoError(t, solution.Verify(enc, "secret", lengths))
}

func TestBadNonceAndSource(t *testing.T) {
	enc, err := solution.Encode(answers, "secret")
	require.NoError(t, err)
	enc.Nonce = enc.Nonce[:4]
	_, err = solution.Decode(enc, "secret", lengths)
	assert.ErrorIs(t, err, solution.ErrBadNonce)

	_, err = solution.Encode(answers, "secret", solution.WithNonceSource(bytes.NewReader([]byte{1, 2})))
	assert.Error(t, err)

	assert.Panics(t, func() { solution.WithNonceSource(nil) })
}

func TestParseEncryption(t *testing.T) {
	e, err := solution.ParseEncryption("salsa20")
	require.NoError(t, err)
	assert.Equal(t, solution.Salsa20, e)
	e, err = solution.ParseEncryption("none")
	require.NoError(t, err)
	assert.Equal(t, "none", e.Key())
	_, err = solution.ParseEncryption("aes")
	assert.ErrorIs(t, err, solution.ErrUnknownEncryption)
}

func TestEncodeEntries(t *testing.T) {
	g, err := grid.FromDefinition(grid.Block, 3, 3, symmetry.HalfTurnRotation, "...\n.#.\n...")
	require.NoError(t, err)

	_, err = solution.EncodeEntries(g.Topology, g.Entries(), "")
	assert.ErrorIs(t, err, solution.ErrIncompleteSolution)

	sol, err := g.FillEntries([]string{"CAT", "TOE", "COT", "TIE"})
	require.NoError(t, err)
	enc, err := solution.EncodeEntries(g.Topology, sol, "pw")
	require.NoError(t, err)
	got, err := solution.Decode(enc, "pw", g.FieldLengths())
	require.NoError(t, err)
	assert.Equal(t, []string{"CAT", "TOE", "COT", "TIE"}, got)
}

func TestDecodeWithPrompt(t *testing.T) {
	ctx := context.Background()
	enc, err := solution.Encode(answers, "secret")
	require.NoError(t, err)

	got, err := solution.DecodeWithPrompt(ctx, enc, solution.StaticPrompt("secret"), lengths)
	require.NoError(t, err)
	assert.Equal(t, answers, got)

	declined := func(context.Context) (string, bool) { return "", false }
	_, err = solution.DecodeWithPrompt(ctx, enc, declined, lengths)
	assert.ErrorIs(t, err, progress.ErrCancelled)
	assert.True(t, progress.IsCancelled(err))

	_, err = solution.DecodeWithPrompt(ctx, enc, solution.StaticPrompt("nope"), lengths)
	assert.ErrorIs(t, err, solution.ErrIncorrectPassphrase)
	assert.False(t, progress.IsCancelled(err))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = solution.DecodeWithPrompt(cancelled, enc, solution.StaticPrompt("secret"), lengths)
	assert.True(t, errors.Is(err, progress.ErrCancelled))

	// Plain solutions never prompt.
	plain, err := solution.Encode(answers, "")
	require.NoError(t, err)
	asked := false
	got, err = solution.DecodeWithPrompt(ctx, plain, func(context.Context) (string, bool) {
		asked = true
		return "", false
	}, lengths)
	require.NoError(t, err)
	assert.False(t, asked)
	assert.Equal(t, answers, got)
}
