// Package secrets provides helpers for minting, decoding and deriving the
// symmetric keys used to sign auth cookies.
//
// Keys are plain byte slices. A key is generated once with crypto/rand and
// then either kept in memory for the lifetime of a jar, supplied by the
// operator through configuration, or published to Redis so that every
// process of a fleet signs with the same key.
//
// # Architecture
//
//  1. Generation – GenerateKey returns KeySize random bytes; GenerateKeyWithLength
//     allows any length of at least MinKeySize.
//  2. Encoding – EncodeKey renders a key as lowercase hex. DecodeKey accepts hex
//     first and falls back to standard or URL-safe base64.
//  3. Derivation – DeriveKey runs HKDF(SHA-256) over a master secret with a
//     caller supplied context string, so one operator secret can feed several
//     independent subsystems.
//  4. Sharing – SharedKey publishes a fresh key with SETNX and reads back the
//     winner, so concurrent first starts agree on one key.
//
// # Usage
//
//	import "github.com/dmitrymomot/authjar/pkg/secrets"
//
//	master, err := secrets.DecodeKey(os.Getenv("AUTHCOOKIE_SECRET"))
//	if err != nil {
//	    // handle error
//	}
//
//	key, err := secrets.DeriveKey(master, "authcookie-v1")
//	if err != nil {
//	    // handle error
//	}
//
// # Error Handling
//
// Functions return errors wrapping a sentinel such as ErrKeyTooShort or
// ErrInvalidKeyEncoding. Use errors.Is to match against these sentinels.
package secrets
