package github

import (
	"crypto/rand"
	"encoding/base64"
	"testing"

	"golang.org/x/crypto/nacl/box"
)

func TestSealRoundTrip(t *testing.T) {
	publicKey, privateKey, err := box.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("failed to generate keypair: %v", err)
	}

	plaintext := []byte("hunter2")
	result, err := Seal(plaintext, base64.StdEncoding.EncodeToString(publicKey[:]))
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}
	if !result.Encrypted {
		t.Fatal("expected Encrypted=true with a public key present")
	}

	sealed, err := base64.StdEncoding.DecodeString(result.Value)
	if err != nil {
		t.Fatalf("sealed value is not valid base64: %v", err)
	}

	// Sealed boxes carry an ephemeral public key and a Poly1305 tag.
	if len(sealed) != len(plaintext)+box.AnonymousOverhead {
		t.Errorf("sealed length = %d, want %d", len(sealed), len(plaintext)+box.AnonymousOverhead)
	}

	opened, ok := box.OpenAnonymous(nil, sealed, publicKey, privateKey)
	if !ok {
		t.Fatal("failed to open sealed box")
	}
	if string(opened) != string(plaintext) {
		t.Errorf("opened = %q, want %q", opened, plaintext)
	}
}

func TestSealFallbackWithoutPublicKey(t *testing.T) {
	plaintext := []byte("plain-value")

	result, err := Seal(plaintext, "")
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}
	if result.Encrypted {
		t.Fatal("expected Encrypted=false without a public key")
	}

	decoded, err := base64.StdEncoding.DecodeString(result.Value)
	if err != nil {
		t.Fatalf("fallback output is not valid base64: %v", err)
	}
	if string(decoded) != string(plaintext) {
		t.Errorf("fallback decoded = %q, want %q", decoded, plaintext)
	}
}

func TestSealRejectsBadPublicKeys(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"not base64", "!!!not-base64!!!"},
		{"wrong length", base64.StdEncoding.EncodeToString([]byte("short"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Seal([]byte("value"), tt.key); err == nil {
				t.Error("expected error for invalid public key")
			}
		})
	}
}
