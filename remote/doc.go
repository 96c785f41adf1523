// SPDX-License-Identifier: MIT

// Package remote resolves answer keys stored by reference: the local
// document records a location and the expected hash, the referenced
// document embeds the key itself.
//
// Resolve trusts the fetched key only when its embedded hash equals the
// locally recorded one, independent of any passphrase. Fetching is
// cancellable between network reads and reports progress to a
// progress.Sink.
package remote
