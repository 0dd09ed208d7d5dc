package secrets

import "errors"

var (
	// Key validation errors
	ErrKeyTooShort        = errors.New("secrets: key is too short")
	ErrInvalidKeyEncoding = errors.New("secrets: key is neither hex nor base64")

	// Generation and derivation errors
	ErrKeyGenerationFailed = errors.New("secrets: key generation failed")
	ErrKeyDerivationFailed = errors.New("secrets: key derivation failed")

	// Shared key errors
	ErrSharedKeyUnavailable = errors.New("secrets: shared key unavailable")
)
