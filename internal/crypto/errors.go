package crypto

import "errors"

var (
	// ErrInvalidKey means the key does not decode to 32 bytes. It is a
	// configuration error and is never retried.
	ErrInvalidKey = errors.New("ENCRYPTION_KEY_BASE64 must be a base64-encoded 32-byte key")

	// ErrInvalidCiphertext means the payload is not base64 or is too short
	// to hold a nonce and a tag.
	ErrInvalidCiphertext = errors.New("invalid ciphertext")

	// ErrDecryptionFailed means authentication failed: wrong key or
	// tampered payload.
	ErrDecryptionFailed = errors.New("decryption failed")
)
