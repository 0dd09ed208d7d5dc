package authcookie

import "errors"

var (
	ErrInvalidExpiry       = errors.New("authcookie.invalid_expiry")
	ErrEncoding            = errors.New("authcookie.encoding")
	ErrDecoding            = errors.New("authcookie.decoding")
	ErrMalformedWireFormat = errors.New("authcookie.malformed_wire_format")
	ErrKeyTooShort         = errors.New("authcookie.key_too_short")
	ErrUnknownHash         = errors.New("authcookie.unknown_hash")
	ErrNoToken             = errors.New("authcookie.no_token")
)

// Rejection reasons. They are logged server side and never surfaced to the
// client, which only ever sees a uniform failure.
var (
	errDigestMismatch = errors.New("authcookie.digest_mismatch")
	errExpired        = errors.New("authcookie.expired")
)
