// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Listing is the result of preparing a deed for on-chain registration.
type Listing struct {
	// ID is the decimal form of IDHex, used as the on-chain integer key.
	ID string `json:"id"`

	// IDHex is the identifier shown to users.
	IDHex string `json:"idHex"`

	// Encrypted is base64(nonce ‖ ciphertext ‖ tag) of the canonical plaintext.
	Encrypted string `json:"encrypted"`

	// Fields are the normalized deed fields the payload was built from.
	Fields DeedFields `json:"fields"`
}

// RevealedProperty is a registry entry together with its decrypted payload.
type RevealedProperty struct {
	PropertyEntry

	// ID is the decimal form of IDHex.
	ID string `json:"id"`

	// Plaintext is the decrypted canonical plaintext. Empty when the payload
	// is missing or could not be decrypted.
	Plaintext string `json:"plaintext"`

	// Fields are decoded from Plaintext when it is available.
	Fields *DeedFields `json:"fields,omitempty"`

	// Undecryptable is set when a stored payload failed to decrypt.
	Undecryptable bool `json:"undecryptable,omitempty"`
}
