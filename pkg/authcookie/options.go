package authcookie

import (
	"hash"
	"time"
)

type options struct {
	hash func() hash.Hash
	now  func() time.Time
}

type Option func(*options)

// WithHash sets the digest used under HMAC. Nil is ignored.
func WithHash(h func() hash.Hash) Option {
	return func(o *options) {
		if h != nil {
			o.hash = h
		}
	}
}

// WithClock sets the time source used for expiry checks and IssueFor.
// Nil is ignored.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
