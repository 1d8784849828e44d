package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/payload_codec_mock.go -package=mock

// PayloadCodec seals canonical deed plaintexts for on-chain storage and opens
// them again for display. It knows nothing about the network, the registry
// or the chain; its only job is authenticated encryption.
//
// Payload layout (base64, standard encoding):
//
//	nonce (12 bytes) ‖ ciphertext (len(plaintext) bytes) ‖ tag (16 bytes)
//
// No associated data is bound, so a payload is not tied to the identifier it
// is stored under.
type PayloadCodec interface {
	// Seal encrypts plaintext under the base64-encoded 256-bit key with
	// AES-256-GCM and a fresh random nonce.
	// Fails with ErrInvalidKey if the key does not decode to 32 bytes.
	Seal(plaintext string, keyB64 string) (string, error)

	// Open reverses Seal.
	// Fails with ErrInvalidKey, ErrInvalidCiphertext (not base64 or shorter
	// than 28 bytes) or ErrDecryptionFailed (authentication failed).
	// No partial plaintext is ever returned.
	Open(payload string, keyB64 string) (string, error)
}
