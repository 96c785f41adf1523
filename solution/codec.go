// SPDX-License-Identifier: MIT

package solution

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/salsa20/salsa"

	"github.com/katalvlaran/crossgrid/entries"
	"github.com/katalvlaran/crossgrid/grid"
)

// NonceSize is the Salsa20 nonce length in bytes.
const NonceSize = 8

// KeySize is the Salsa20 key length in bytes.
const KeySize = 32

// Encryption is the mode recorded with an encoded solution.
type Encryption uint8

const (
	// None stores the plaintext; only the MAC is kept.
	None Encryption = iota
	// Salsa20 encrypts the plaintext with a passphrase-derived keystream.
	Salsa20
)

// Key returns the persisted identifier (encryption= attribute).
func (e Encryption) Key() string {
	if e == Salsa20 {
		return "salsa20"
	}
	return "none"
}

// String implements fmt.Stringer.
func (e Encryption) String() string { return e.Key() }

// ParseEncryption resolves "none" or "salsa20".
func ParseEncryption(key string) (Encryption, error) {
	switch key {
	case "none", "":
		return None, nil
	case "salsa20":
		return Salsa20, nil
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownEncryption, key)
}

// Encoded is an answer key ready for transport. Callers hex/base64-encode
// the byte fields (see package xmldoc).
type Encoded struct {
	Encryption Encryption
	Nonce      []byte // NonceSize bytes for Salsa20, empty for None
	Hash       []byte // HMAC-SHA256 of the plaintext
	Ciphertext []byte
}

// Option configures Encode.
type Option func(*options)

type options struct {
	nonce io.Reader
}

// WithNonceSource draws nonces from r instead of crypto/rand. Tests use it
// for reproducible output; production callers should not.
func WithNonceSource(r io.Reader) Option {
	if r == nil {
		panic("solution: WithNonceSource: nil reader")
	}
	return func(o *options) { o.nonce = r }
}

// KeyFromPassphrase expands a passphrase to a cipher key: SHA-256 of its
// UTF-8 bytes. There is no salt or work factor; existing answer keys depend
// on this exact expansion.
func KeyFromPassphrase(passphrase string) [KeySize]byte {
	return sha256.Sum256([]byte(passphrase))
}

// keystream XORs in with Salsa20 blocks starting at block into out.
func keystream(out, in []byte, key *[KeySize]byte, nonce []byte, block uint64) {
	var counter [16]byte
	copy(counter[:NonceSize], nonce)
	binary.LittleEndian.PutUint64(counter[NonceSize:], block)
	salsa.XORKeyStream(out, in, &counter, key)
}

// macKey returns the key for the plaintext MAC: the first 32 bytes of
// keystream block 0, or nil in plain mode.
func macKey(enc Encryption, key *[KeySize]byte, nonce []byte) []byte {
	if enc == None {
		return nil
	}
	mk := make([]byte, 32)
	keystream(mk, mk, key, nonce, 0)
	return mk
}

func mac(key, plaintext []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(plaintext)
	return h.Sum(nil)
}

// Encode seals texts, one answer per field in canonical order. An empty
// passphrase selects plain mode.
//
// Complexity: O(n) in the plaintext length.
func Encode(texts []string, passphrase string, opts ...Option) (Encoded, error) {
	o := options{nonce: rand.Reader}
	for _, opt := range opts {
		opt(&o)
	}
	plaintext := []byte(strings.Join(texts, ""))

	if passphrase == "" {
		return Encoded{Encryption: None, Hash: mac(nil, plaintext), Ciphertext: plaintext}, nil
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(o.nonce, nonce); err != nil {
		return Encoded{}, fmt.Errorf("solution: drawing nonce: %w", err)
	}
	key := KeyFromPassphrase(passphrase)
	hash := mac(macKey(Salsa20, &key, nonce), plaintext)
	ciphertext := make([]byte, len(plaintext))
	keystream(ciphertext, plaintext, &key, nonce, 1)

	return Encoded{Encryption: Salsa20, Nonce: nonce, Hash: hash, Ciphertext: ciphertext}, nil
}

// EncodeEntries seals the answer key sol laid out on t. sol must be
// complete.
func EncodeEntries(t *grid.Topology, sol *entries.Entries, passphrase string, opts ...Option) (Encoded, error) {
	if !sol.IsComplete() {
		return Encoded{}, ErrIncompleteSolution
	}
	return Encode(t.TextsOf(sol), passphrase, opts...)
}

// Decode verifies enc under passphrase and splits the plaintext into one
// answer per entry of lengths (rune counts, canonical field order).
//
// The passphrase must match the recorded mode: an empty passphrase opens
// only plain solutions and a non-empty one only encrypted solutions.
// Anything else, or a MAC mismatch, is ErrIncorrectPassphrase.
func Decode(enc Encoded, passphrase string, lengths []int) ([]string, error) {
	var plaintext, key []byte
	switch {
	case enc.Encryption == None && passphrase == "":
		plaintext = enc.Ciphertext
	case enc.Encryption == Salsa20 && passphrase != "":
		if len(enc.Nonce) != NonceSize {
			return nil, fmt.Errorf("%w: %d bytes", ErrBadNonce, len(enc.Nonce))
		}
		k := KeyFromPassphrase(passphrase)
		key = macKey(Salsa20, &k, enc.Nonce)
		plaintext = make([]byte, len(enc.Ciphertext))
		keystream(plaintext, enc.Ciphertext, &k, enc.Nonce, 1)
	case enc.Encryption != None && enc.Encryption != Salsa20:
		return nil, fmt.Errorf("%w: %d", ErrUnknownEncryption, enc.Encryption)
	default:
		return nil, ErrIncorrectPassphrase
	}

	if !hmac.Equal(mac(key, plaintext), enc.Hash) {
		return nil, ErrIncorrectPassphrase
	}
	return split(plaintext, lengths)
}

func split(plaintext []byte, lengths []int) ([]string, error) {
	total := 0
	for _, n := range lengths {
		total += n
	}
	if !utf8.Valid(plaintext) || utf8.RuneCount(plaintext) != total {
		return nil, fmt.Errorf("%w: %d runes for %d cells", ErrSolutionLengthMismatch, utf8.RuneCount(plaintext), total)
	}
	runes := []rune(string(plaintext))
	out := make([]string, len(lengths))
	pos := 0
	for i, n := range lengths {
		out[i] = string(runes[pos : pos+n])
		pos += n
	}
	return out, nil
}

// IsEncrypted reports whether opening enc needs a passphrase.
func (enc Encoded) IsEncrypted() bool { return enc.Encryption != None }

// Verify reports whether enc opens under passphrase and fits lengths,
// without returning the answers.
func Verify(enc Encoded, passphrase string, lengths []int) error {
	_, err := Decode(enc, passphrase, lengths)
	return err
}
