// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package identifier derives the 6-hex-digit property identifiers used for
// display and, in decimal form, as on-chain integer keys.
//
// Two modes are exposed and must not be conflated:
//   - [Generator.Generate] produces a collision-checked identifier from the
//     canonical plaintext plus fresh randomness;
//   - [DeriveDeterministic] hashes the plaintext alone, so equal content
//     always yields the same identifier.
package identifier

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	// Length is the number of hex characters in an identifier.
	Length = 6

	// MaxValue is the largest numeric value of an identifier.
	MaxValue = 1<<(4*Length) - 1

	saltedAttempts = 50
	randomAttempts = 100
	saltSize       = 8
	randomSize     = Length / 2
)

// IDSet is a snapshot of identifiers already known to the registry.
type IDSet map[string]struct{}

// NewIDSet builds an [IDSet] from ids, normalized to upper case.
func NewIDSet(ids ...string) IDSet {
	set := make(IDSet, len(ids))
	for _, id := range ids {
		set[strings.ToUpper(id)] = struct{}{}
	}
	return set
}

// Has reports whether id is in the set.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Add inserts id into the set.
func (s IDSet) Add(id string) {
	s[id] = struct{}{}
}

// Generator produces collision-checked identifiers. The zero value is not
// usable; construct it with [NewGenerator].
type Generator struct {
	random io.Reader
}

// NewGenerator returns a Generator reading randomness from crypto/rand.
func NewGenerator() *Generator {
	return &Generator{random: rand.Reader}
}

// NewGeneratorWithSource returns a Generator reading randomness from r.
// It exists for tests; production code uses [NewGenerator].
func NewGeneratorWithSource(r io.Reader) *Generator {
	return &Generator{random: r}
}

// Generate returns an identifier absent from existing.
//
// It first tries 50 salted hashes of the plaintext
// (SHA-256 over plaintext ":" hex(salt) with an 8-byte salt) and then 100
// uniformly random 3-byte values. existing is read, never modified.
// Returns [ErrExhaustedKeyspace] when every attempt collides, or a wrapped
// read error if the random source fails.
func (g *Generator) Generate(plaintext string, existing IDSet) (string, error) {
	salt := make([]byte, saltSize)
	for range saltedAttempts {
		if _, err := io.ReadFull(g.random, salt); err != nil {
			return "", fmt.Errorf("read salt: %w", err)
		}

		sum := sha256.Sum256([]byte(plaintext + ":" + hex.EncodeToString(salt)))
		candidate := strings.ToUpper(hex.EncodeToString(sum[:])[:Length])
		if !existing.Has(candidate) {
			return candidate, nil
		}
	}

	buf := make([]byte, randomSize)
	for range randomAttempts {
		if _, err := io.ReadFull(g.random, buf); err != nil {
			return "", fmt.Errorf("read random identifier: %w", err)
		}

		candidate := strings.ToUpper(hex.EncodeToString(buf))
		if !existing.Has(candidate) {
			return candidate, nil
		}
	}

	return "", ErrExhaustedKeyspace
}

// DeriveDeterministic returns the first 6 hex characters of SHA-256(plaintext),
// upper-cased. The same plaintext always yields the same identifier.
func DeriveDeterministic(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	id := strings.ToUpper(hex.EncodeToString(sum[:])[:Length])
	return fmt.Sprintf("%0*s", Length, id)
}

// IsValid reports whether s is exactly 6 hexadecimal characters.
// Lower-case input is accepted.
func IsValid(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'A' && c <= 'F', c >= 'a' && c <= 'f':
		default:
			return false
		}
	}
	return true
}

// Normalize trims and upper-cases s. Returns [ErrInvalidIdentifier] if the
// result is not a valid identifier.
func Normalize(s string) (string, error) {
	id := strings.ToUpper(strings.TrimSpace(s))
	if !IsValid(id) {
		return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, s)
	}
	return id, nil
}

// ToDecimal renders id as a base-10 integer string without leading zeros.
// id must be valid; an invalid id renders as "0".
func ToDecimal(id string) string {
	v, err := strconv.ParseUint(id, 16, 32)
	if err != nil {
		return "0"
	}
	return strconv.FormatUint(v, 10)
}

// FromDecimal converts a base-10 on-chain key back into an identifier.
// Returns [ErrInvalidIdentifier] if dec is not an integer in [0, 0xFFFFFF].
func FromDecimal(dec string) (string, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(dec), 10, 64)
	if err != nil || v > MaxValue {
		return "", fmt.Errorf("%w: decimal key %q", ErrInvalidIdentifier, dec)
	}
	return fmt.Sprintf("%06X", v), nil
}
