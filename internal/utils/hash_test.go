// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-deed-keeper/models"
)

func TestInitHasherPoolAndHash(t *testing.T) {
	key := "secret-key"
	InitHasherPool(key)

	data := []byte("test-data")

	sum1 := Hash(data)
	sum2 := Hash(data)

	if len(sum1) == 0 {
		t.Fatal("hash result is empty")
	}

	if !bytes.Equal(sum1, sum2) {
		t.Fatal("hash must be deterministic for the same input")
	}

	// verify against direct HMAC computation
	h := hmac.New(sha256.New, []byte(key))
	h.Write(data)
	expected := h.Sum(nil)

	if !bytes.Equal(sum1, expected) {
		t.Fatalf("unexpected hash value\nwant: %x\ngot:  %x", expected, sum1)
	}
}

const testHashKey = "test-secret-key"

func TestHash_WithRealPayload(t *testing.T) {
	InitHasherPool(testHashKey)

	req := models.TokenRequest{
		IDHex:        "D09AD3",
		TokenAddress: "0x00000000000000000000000000000000DeaDBeef",
		Owner:        "0xABCDEF0123456789",
	}
	body, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write(body)
	want := hex.EncodeToString(mac.Sum(nil))

	if got := HashHex(body); got != want {
		t.Errorf("pooled and one-off hashes differ\npooled:  %s\none-off: %s", got, want)
	}
}

func TestHash_DifferentPayloads(t *testing.T) {
	InitHasherPool(testHashKey)

	body1 := []byte(`{"idHex":"D09AD3","owner":"0xA"}`)
	body2 := []byte(`{"idHex":"D09AD4","owner":"0xA"}`)

	if bytes.Equal(Hash(body1), Hash(body2)) {
		t.Error("different bodies must produce different hashes")
	}
}

func TestHash_DifferentKeys(t *testing.T) {
	body := []byte(`{"encrypted":"AAAA"}`)

	InitHasherPool("key-one")
	sum1 := Hash(body)

	InitHasherPool("key-two")
	sum2 := Hash(body)

	if bytes.Equal(sum1, sum2) {
		t.Error("different keys must produce different hashes")
	}
}

// TestHash_FieldOrderMatters shows that the hash covers raw bytes: the same
// values serialised in another key order do not verify.
func TestHash_FieldOrderMatters(t *testing.T) {
	InitHasherPool(testHashKey)

	json1 := []byte(`{"idHex":"D09AD3","owner":"0xA"}`)
	json2 := []byte(`{"owner":"0xA","idHex":"D09AD3"}`)

	if bytes.Equal(Hash(json1), Hash(json2)) {
		t.Error("hashes of differently ordered bodies must differ")
	}
}

func TestHashHex_KnownVector(t *testing.T) {
	// RFC 4231 test case 2
	InitHasherPool("Jefe")
	got := HashHex([]byte("what do ya want for nothing?"))
	want := "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843"

	if got != want {
		t.Errorf("unexpected HMAC\nwant: %s\ngot:  %s", want, got)
	}
}
