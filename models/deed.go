// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DeedFields is the structured record extracted from a strata title deed
// ("Akta Hakmilik Strata"). Field order is significant: it defines the
// order of segments in the canonical plaintext.
//
// All fields are plain strings. Absent values are represented by the empty
// string, never by a missing key.
type DeedFields struct {
	// NoHakmilik is the title number (e.g. "GRN 12345").
	NoHakmilik string `json:"NoHakmilik"`

	// NoBangunan is the building number.
	NoBangunan string `json:"NoBangunan"`

	// NoTingkat is the floor number.
	NoTingkat string `json:"NoTingkat"`

	// NoPetak is the parcel number.
	NoPetak string `json:"NoPetak"`

	// Negeri is the state.
	Negeri string `json:"Negeri"`

	// Daerah is the district.
	Daerah string `json:"Daerah"`

	// Bandar is the town (BANDAR/PEKAN/MUKIM on the deed).
	Bandar string `json:"Bandar"`

	// Owner is the wallet address of the listing owner.
	Owner string `json:"Owner"`
}

// Document is an uploaded deed scan handed to a deed extractor.
type Document struct {
	// MimeType of Content, e.g. "image/jpeg".
	MimeType string

	// Content holds the raw document bytes.
	Content []byte
}
