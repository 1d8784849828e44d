// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32

	// NonceSize is the GCM nonce length in bytes.
	NonceSize = 12

	// TagSize is the GCM authentication tag length in bytes.
	TagSize = 16

	// MinPayloadSize is the decoded length of a payload sealing an empty plaintext.
	MinPayloadSize = NonceSize + TagSize
)

// aesGCMCodec is the private implementation of [PayloadCodec].
type aesGCMCodec struct {
	// nonces is the source of per-call nonces. It is crypto/rand.Reader
	// everywhere except golden-vector tests.
	nonces io.Reader
}

// NewPayloadCodec constructs a [PayloadCodec] drawing nonces from the OS CSPRNG.
func NewPayloadCodec() PayloadCodec {
	return &aesGCMCodec{nonces: rand.Reader}
}

// NewPayloadCodecWithNonceSource constructs a [PayloadCodec] reading nonces
// from r. A reader that repeats values breaks GCM confidentiality; use it
// for fixed test vectors only.
func NewPayloadCodecWithNonceSource(r io.Reader) PayloadCodec {
	return &aesGCMCodec{nonces: r}
}

// Seal implements [PayloadCodec].
func (c *aesGCMCodec) Seal(plaintext string, keyB64 string) (string, error) {
	gcm, err := newGCM(keyB64)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, NonceSize, NonceSize+len(plaintext)+TagSize)
	if _, err := io.ReadFull(c.nonces, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// Seal appends ciphertext ‖ tag after the nonce.
	blob := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [PayloadCodec].
func (c *aesGCMCodec) Open(payload string, keyB64 string) (string, error) {
	gcm, err := newGCM(keyB64)
	if err != nil {
		return "", err
	}

	blob, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrInvalidCiphertext, err)
	}
	if len(blob) < MinPayloadSize {
		return "", fmt.Errorf("%w: %d bytes, need at least %d", ErrInvalidCiphertext, len(blob), MinPayloadSize)
	}

	nonce, sealed := blob[:NonceSize], blob[NonceSize:]
	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return string(plaintext), nil
}

func newGCM(keyB64 string) (cipher.AEAD, error) {
	key, err := ParseKey(keyB64)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
