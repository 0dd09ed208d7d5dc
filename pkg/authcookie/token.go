package authcookie

import (
	"bytes"
	"math"
	"time"
)

// Token is a signed (expiry, data) pair. Tokens are created by Jar.Issue
// and never change afterwards; the zero Token is never valid.
type Token struct {
	expiry float64
	data   []byte
	digest string
}

// Expiry returns the expiry as fractional Unix seconds.
func (t Token) Expiry() float64 {
	return t.expiry
}

// ExpiresAt returns the expiry as a time.Time.
func (t Token) ExpiresAt() time.Time {
	sec, frac := math.Modf(t.expiry)
	return time.Unix(int64(sec), int64(math.Round(frac*1e9)))
}

// Data returns a copy of the payload.
func (t Token) Data() []byte {
	return bytes.Clone(t.data)
}

// Digest returns the lowercase hex MAC.
func (t Token) Digest() string {
	return t.digest
}

// IsZero reports whether t was never issued.
func (t Token) IsZero() bool {
	return t.digest == ""
}

// IsExpiredAt reports whether now is past the expiry.
func (t Token) IsExpiredAt(now time.Time) bool {
	return unixSeconds(now) > t.expiry
}

// String renders the token without a header prefix, escaping data bytes
// that Render would leave raw, so any token survives IsValidString.
func (t Token) String() string {
	return renderEscaped(t)
}

func unixSeconds(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}
