package authcookie

import (
	"crypto/sha1" //nolint:gosec // SHA-1 under HMAC is the legacy wire default
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/sha3"
)

// DefaultHash is the digest used when none is configured. Cookies issued by
// older deployments were signed with HMAC-SHA1.
const DefaultHash = "sha1"

// HashByName maps a configuration name to a hash constructor. Supported
// names are sha1, sha256, sha512 and sha3-256; an empty name means
// DefaultHash.
func HashByName(name string) (func() hash.Hash, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", DefaultHash:
		return sha1.New, nil
	case "sha256":
		return sha256.New, nil
	case "sha512":
		return sha512.New, nil
	case "sha3-256":
		return sha3.New256, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHash, name)
	}
}
