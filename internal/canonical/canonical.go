// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package canonical converts [models.DeedFields] into the single delimited
// plaintext that is hashed into property identifiers and sealed for on-chain
// storage, and back.
//
// Wire format (7 comma-separated segments):
//
//	NoHakmilik,NoBangunan,NoTingkat,NoPetak,Negeri.Daerah,Bandar,Owner
//
// Separators are not escaped. Values containing a comma (or a period in
// Negeri) cannot be decoded unambiguously; use [ContainsDelimiter] to reject
// them at the boundary.
package canonical

import (
	"strings"

	"github.com/MKhiriev/go-deed-keeper/models"
)

const (
	// Separator joins the top-level segments.
	Separator = ","

	// LocationSeparator joins Negeri and Daerah inside the location segment.
	LocationSeparator = "."

	// Segments is the number of top-level segments in a canonical plaintext.
	Segments = 7
)

// Encode trims every field and joins them into the canonical plaintext.
// It never fails; all-empty fields encode to ",,,,.,,".
func Encode(f models.DeedFields) string {
	f = Trim(f)
	return strings.Join([]string{
		f.NoHakmilik,
		f.NoBangunan,
		f.NoTingkat,
		f.NoPetak,
		f.Negeri + LocationSeparator + f.Daerah,
		f.Bandar,
		f.Owner,
	}, Separator)
}

// Decode splits a canonical plaintext back into [models.DeedFields].
//
// The split is bounded to [Segments] parts, so a comma inside the final Owner
// segment stays in Owner. The location segment is split on its first period.
// Returns [ErrMalformedPlaintext] when either split comes up short.
func Decode(plaintext string) (models.DeedFields, error) {
	parts := strings.SplitN(plaintext, Separator, Segments)
	if len(parts) != Segments {
		return models.DeedFields{}, ErrMalformedPlaintext
	}

	negeri, daerah, ok := strings.Cut(parts[4], LocationSeparator)
	if !ok {
		return models.DeedFields{}, ErrMalformedPlaintext
	}

	return models.DeedFields{
		NoHakmilik: parts[0],
		NoBangunan: parts[1],
		NoTingkat:  parts[2],
		NoPetak:    parts[3],
		Negeri:     negeri,
		Daerah:     daerah,
		Bandar:     parts[5],
		Owner:      parts[6],
	}, nil
}

// Trim returns f with surrounding whitespace removed from every field.
func Trim(f models.DeedFields) models.DeedFields {
	return models.DeedFields{
		NoHakmilik: strings.TrimSpace(f.NoHakmilik),
		NoBangunan: strings.TrimSpace(f.NoBangunan),
		NoTingkat:  strings.TrimSpace(f.NoTingkat),
		NoPetak:    strings.TrimSpace(f.NoPetak),
		Negeri:     strings.TrimSpace(f.Negeri),
		Daerah:     strings.TrimSpace(f.Daerah),
		Bandar:     strings.TrimSpace(f.Bandar),
		Owner:      strings.TrimSpace(f.Owner),
	}
}

// ContainsDelimiter reports whether any field would make the encoding
// ambiguous: a comma anywhere, or a period in Negeri.
func ContainsDelimiter(f models.DeedFields) bool {
	for _, v := range []string{f.NoHakmilik, f.NoBangunan, f.NoTingkat, f.NoPetak, f.Negeri, f.Daerah, f.Bandar, f.Owner} {
		if strings.Contains(v, Separator) {
			return true
		}
	}
	return strings.Contains(f.Negeri, LocationSeparator)
}
