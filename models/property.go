// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"time"
)

// PropertyEntry is a single record of the property registry. It is keyed by
// the 6-hex-digit identifier that is also used (in decimal form) as the
// on-chain key of the encrypted deed payload.
type PropertyEntry struct {
	// IDHex is the uppercase 6-hex-digit identifier.
	IDHex string `json:"idHex"`

	// Images holds references to property images (at most a few per listing).
	Images []string `json:"images"`

	// HousingValue is the declared value of the property as entered by the owner.
	HousingValue string `json:"housingValue"`

	// TokenAddress is the address of the ERC-20 token deployed for the property.
	TokenAddress string `json:"tokenAddress"`

	// Owner is the wallet address of the listing owner.
	Owner string `json:"owner"`

	// Encrypted is the sealed canonical plaintext submitted on-chain.
	Encrypted string `json:"encrypted,omitempty"`

	// Confirmed reports whether the owner confirmed the listing (the on-chain
	// transaction went through). Unconfirmed entries are reservations.
	Confirmed bool `json:"confirmed"`

	// CreatedAt is the time the identifier was reserved.
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// Score rates how complete an entry is. It is used to pick one record
// when a registry contains several entries for the same identifier.
func (p PropertyEntry) Score() int {
	s := 0
	if v, err := strconv.ParseFloat(p.HousingValue, 64); err == nil && v > 0 {
		s += 3
	}
	if p.TokenAddress != "" {
		s += 2
	}
	if len(p.Images) > 0 {
		s += 1 + min(2, len(p.Images))
	}
	return s
}
