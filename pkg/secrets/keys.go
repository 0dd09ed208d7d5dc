package secrets

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the length of generated and derived keys.
	KeySize = 32

	// MinKeySize is the shortest key accepted for signing.
	MinKeySize = 16
)

// ValidateKey reports whether key is long enough to sign with.
func ValidateKey(key []byte) error {
	if len(key) < MinKeySize {
		return fmt.Errorf("%w: got %d bytes, need at least %d", ErrKeyTooShort, len(key), MinKeySize)
	}
	return nil
}

// GenerateKey creates a new random KeySize-byte key.
func GenerateKey() ([]byte, error) {
	return GenerateKeyWithLength(KeySize)
}

// GenerateKeyWithLength creates a new random key of n bytes.
func GenerateKeyWithLength(n int) ([]byte, error) {
	if n < MinKeySize {
		return nil, fmt.Errorf("%w: requested %d bytes, need at least %d", ErrKeyTooShort, n, MinKeySize)
	}

	key := make([]byte, n)
	if _, err := rand.Read(key); err != nil {
		return nil, errors.Join(ErrKeyGenerationFailed, err)
	}
	return key, nil
}

// EncodeKey renders key as lowercase hex, the format printed by authjar-keygen.
func EncodeKey(key []byte) string {
	return hex.EncodeToString(key)
}

// DecodeKey parses an operator supplied key. Hex is tried first, then
// standard and URL-safe base64 (padded or not). The decoded key must satisfy
// ValidateKey.
func DecodeKey(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty key", ErrInvalidKeyEncoding)
	}

	key, err := decodeAny(s)
	if err != nil {
		return nil, err
	}
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	return key, nil
}

func decodeAny(s string) ([]byte, error) {
	if key, err := hex.DecodeString(s); err == nil {
		return key, nil
	}

	encodings := []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	}
	for _, enc := range encodings {
		if key, err := enc.DecodeString(s); err == nil {
			return key, nil
		}
	}

	return nil, ErrInvalidKeyEncoding
}

// DeriveKey derives a KeySize-byte key from master using HKDF-SHA-256 with
// info as the context string. Different contexts yield unrelated keys.
func DeriveKey(master []byte, info string) ([]byte, error) {
	if err := ValidateKey(master); err != nil {
		return nil, err
	}

	reader := hkdf.New(sha256.New, master, nil, []byte(info))

	key := make([]byte, KeySize)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}
	return key, nil
}
