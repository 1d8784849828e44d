// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters recommended by OWASP (2024).
const (
	argonTime    = 1
	argonMemory  = 64 * 1024 // 64 MiB
	argonThreads = 4
)

// ParseKey decodes a base64 (standard encoding) encryption key and checks
// that it is exactly 32 bytes long. Any other input is a configuration
// error and yields [ErrInvalidKey].
func ParseKey(keyB64 string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(keyB64)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKey, len(key))
	}
	return key, nil
}

// GenerateKey reads 32 bytes from the OS CSPRNG and returns them base64-encoded,
// ready to be used as ENCRYPTION_KEY_BASE64.
func GenerateKey() (string, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return "", fmt.Errorf("generate key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

// DeriveKey derives a base64-encoded 256-bit key from passphrase and salt
// using Argon2id. The same passphrase and salt always give the same key.
func DeriveKey(passphrase string, salt []byte) string {
	key := argon2.IDKey([]byte(passphrase), salt, argonTime, argonMemory, argonThreads, KeySize)
	return base64.StdEncoding.EncodeToString(key)
}
