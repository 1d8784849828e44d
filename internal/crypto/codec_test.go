package crypto

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	scenarioPlaintext = "GRN 12345,12,3,45,SELANGOR.PETALING,SHAH ALAM,0xABCDEF0123456789"

	// AES-256-GCM of scenarioPlaintext under an all-zero key and an all-zero nonce.
	scenarioGolden = "AAAAAAAAAAAAAAAAifUOHXxSWFoyYvThlsCxLEdMUI9752QznvDb3jBSdMKUBPYEHgKgM2GpFWUKIAaPBgOIpcT9TwFTTynWnTsCJoWJVHI/60yHiq0hbV6tcxg="
)

var zeroKey = base64.StdEncoding.EncodeToString(make([]byte, KeySize))

func randomKey(t *testing.T) string {
	t.Helper()
	key, err := GenerateKey()
	require.NoError(t, err)
	return key
}

func decode(t *testing.T, payload string) []byte {
	t.Helper()
	blob, err := base64.StdEncoding.DecodeString(payload)
	require.NoError(t, err)
	return blob
}

func TestSeal_GoldenVector(t *testing.T) {
	codec := NewPayloadCodecWithNonceSource(bytes.NewReader(make([]byte, NonceSize)))

	payload, err := codec.Seal(scenarioPlaintext, zeroKey)
	require.NoError(t, err)
	assert.Equal(t, scenarioGolden, payload)
}

func TestOpen_GoldenVector(t *testing.T) {
	plaintext, err := NewPayloadCodec().Open(scenarioGolden, zeroKey)
	require.NoError(t, err)
	assert.Equal(t, scenarioPlaintext, plaintext)
}

func TestSeal_Layout(t *testing.T) {
	codec := NewPayloadCodec()
	key := randomKey(t)

	for _, plaintext := range []string{"", "a", scenarioPlaintext, "Pulau Pinang ☂"} {
		payload, err := codec.Seal(plaintext, key)
		require.NoError(t, err)
		assert.Len(t, decode(t, payload), NonceSize+len(plaintext)+TagSize)
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	codec := NewPayloadCodec()
	key := randomKey(t)

	tests := []struct {
		name      string
		plaintext string
	}{
		{name: "scenario", plaintext: scenarioPlaintext},
		{name: "empty", plaintext: ""},
		{name: "all empty fields", plaintext: ",,,,.,,"},
		{name: "unicode", plaintext: "Kuala Lumpur — 吉隆坡"},
		{name: "long", plaintext: strings.Repeat("x", 64*1024)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := codec.Seal(tt.plaintext, key)
			require.NoError(t, err)

			got, err := codec.Open(payload, key)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, got)
		})
	}
}

func TestOpen_TamperDetection(t *testing.T) {
	codec := NewPayloadCodec()
	key := randomKey(t)

	payload, err := codec.Seal(scenarioPlaintext, key)
	require.NoError(t, err)
	blob := decode(t, payload)

	// every byte: nonce, ciphertext and tag regions
	for i := range blob {
		tampered := bytes.Clone(blob)
		tampered[i] ^= 0x01

		got, err := codec.Open(base64.StdEncoding.EncodeToString(tampered), key)
		require.ErrorIs(t, err, ErrDecryptionFailed, "byte %d", i)
		require.Empty(t, got)
	}
}

func TestOpen_WrongKey(t *testing.T) {
	codec := NewPayloadCodec()

	payload, err := codec.Seal(scenarioPlaintext, randomKey(t))
	require.NoError(t, err)

	got, err := codec.Open(payload, randomKey(t))
	assert.ErrorIs(t, err, ErrDecryptionFailed)
	assert.Empty(t, got)
}

func TestSeal_NonceUniqueness(t *testing.T) {
	codec := NewPayloadCodec()
	key := randomKey(t)

	const n = 10000
	seen := make(map[string]struct{}, n)
	for range n {
		payload, err := codec.Seal(scenarioPlaintext, key)
		require.NoError(t, err)
		seen[string(decode(t, payload)[:NonceSize])] = struct{}{}
	}
	assert.Len(t, seen, n)
}

func TestSeal_InvalidKey(t *testing.T) {
	codec := NewPayloadCodec()

	tests := []struct {
		name string
		key  string
	}{
		{name: "16 bytes", key: base64.StdEncoding.EncodeToString(make([]byte, 16))},
		{name: "33 bytes", key: base64.StdEncoding.EncodeToString(make([]byte, 33))},
		{name: "empty", key: ""},
		{name: "not base64", key: "not-a-key!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Seal(scenarioPlaintext, tt.key)
			assert.ErrorIs(t, err, ErrInvalidKey)

			_, err = codec.Open(scenarioGolden, tt.key)
			assert.ErrorIs(t, err, ErrInvalidKey)
		})
	}
}

func TestOpen_ShortPayload(t *testing.T) {
	short := make([]byte, 10)
	_, err := rand.Read(short)
	require.NoError(t, err)

	_, err = NewPayloadCodec().Open(base64.StdEncoding.EncodeToString(short), zeroKey)
	assert.ErrorIs(t, err, ErrInvalidCiphertext)

	_, err = NewPayloadCodec().Open(base64.StdEncoding.EncodeToString(make([]byte, MinPayloadSize-1)), zeroKey)
	assert.ErrorIs(t, err, ErrInvalidCiphertext)
}

func TestOpen_NotBase64(t *testing.T) {
	_, err := NewPayloadCodec().Open("%%%not base64%%%", zeroKey)
	assert.ErrorIs(t, err, ErrInvalidCiphertext)
}

func TestOpen_MinimalPayloadWithBadTag(t *testing.T) {
	// 28 bytes pass the length check and fail authentication.
	_, err := NewPayloadCodec().Open(base64.StdEncoding.EncodeToString(make([]byte, MinPayloadSize)), zeroKey)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestSeal_NonceSourceError(t *testing.T) {
	codec := NewPayloadCodecWithNonceSource(bytes.NewReader(nil))
	_, err := codec.Seal(scenarioPlaintext, zeroKey)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate nonce")
}
