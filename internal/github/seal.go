package github

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/nacl/box"
)

// publicKeyLen is the length of a raw X25519 public key.
const publicKeyLen = 32

// SealResult carries the encoded secret value and whether it was actually
// sealed. Encrypted is false only on the base64 fallback path.
type SealResult struct {
	Value     string
	Encrypted bool
}

// Seal encrypts a secret value against a repository's base64-encoded
// X25519 public key using a libsodium-compatible sealed box
// (crypto_box_seal), and returns the base64 ciphertext GitHub expects as
// encrypted_value.
//
// When no public key is available (empty string), Seal degrades to plain
// base64 of the input and reports Encrypted false so the caller can warn
// that the value was not encrypted.
func Seal(plaintext []byte, b64PublicKey string) (SealResult, error) {
	if b64PublicKey == "" {
		return SealResult{
			Value:     base64.StdEncoding.EncodeToString(plaintext),
			Encrypted: false,
		}, nil
	}

	raw, err := base64.StdEncoding.DecodeString(b64PublicKey)
	if err != nil {
		return SealResult{}, fmt.Errorf("failed to decode public key: %w", err)
	}
	if len(raw) != publicKeyLen {
		return SealResult{}, fmt.Errorf("unexpected public key length: %d (want %d)", len(raw), publicKeyLen)
	}

	var recipient [publicKeyLen]byte
	copy(recipient[:], raw)

	sealed, err := box.SealAnonymous(nil, plaintext, &recipient, rand.Reader)
	if err != nil {
		return SealResult{}, fmt.Errorf("failed to seal secret value: %w", err)
	}

	return SealResult{
		Value:     base64.StdEncoding.EncodeToString(sealed),
		Encrypted: true,
	}, nil
}
