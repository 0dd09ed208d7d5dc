package authcookie

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha1" //nolint:gosec // legacy default, see DefaultHash
	"encoding/hex"
	"fmt"
	"hash"
	"time"

	"github.com/dmitrymomot/authjar/pkg/secrets"
)

// Jar issues and validates auth cookies under one secret key. A Jar is
// immutable after construction and safe for concurrent use.
type Jar struct {
	key  []byte
	hash func() hash.Hash
	now  func() time.Time
}

// New creates a Jar with a freshly generated random key. Cookies issued by
// it can only be validated by the same Jar value.
func New(opts ...Option) (*Jar, error) {
	key, err := secrets.GenerateKey()
	if err != nil {
		return nil, err
	}
	return newJar(key, opts), nil
}

// NewWithKey creates a Jar using a caller supplied key of at least
// secrets.MinKeySize bytes. The key is copied.
func NewWithKey(key []byte, opts ...Option) (*Jar, error) {
	if err := secrets.ValidateKey(key); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyTooShort, err)
	}
	return newJar(bytes.Clone(key), opts), nil
}

func newJar(key []byte, opts []Option) *Jar {
	o := options{
		hash: sha1.New,
		now:  time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return &Jar{
		key:  key,
		hash: o.hash,
		now:  o.now,
	}
}

// Issue signs data with the given expiry in fractional Unix seconds.
// A NaN or infinite expiry fails with ErrInvalidExpiry.
func (j *Jar) Issue(expiry float64, data []byte) (Token, error) {
	if !isFinite(expiry) {
		return Token{}, fmt.Errorf("%w: %v is not a finite number", ErrInvalidExpiry, expiry)
	}

	data = bytes.Clone(data)
	return Token{
		expiry: expiry,
		data:   data,
		digest: j.sign(canonical(expiry, data)),
	}, nil
}

// IssueAt signs data expiring at t.
func (j *Jar) IssueAt(t time.Time, data []byte) (Token, error) {
	return j.Issue(unixSeconds(t), data)
}

// IssueFor signs data expiring ttl from now according to the jar clock.
func (j *Jar) IssueFor(ttl time.Duration, data []byte) (Token, error) {
	return j.IssueAt(j.now().Add(ttl), data)
}

// IsValid reports whether tok carries the digest this jar computes for its
// expiry and data, and has not expired.
func (j *Jar) IsValid(tok Token) bool {
	return j.check(tok) == nil
}

// IsValidString reports whether raw contains a valid auth cookie. raw may
// be a bare assignment or Cookie/Set-Cookie header text. Malformed input
// yields false.
func (j *Jar) IsValidString(raw string) bool {
	_, ok := j.Verify(raw)
	return ok
}

// Verify is IsValidString returning the validated token so the caller can
// read its data.
func (j *Jar) Verify(raw string) (Token, bool) {
	tok, err := j.verify(raw)
	if err != nil {
		return Token{}, false
	}
	return tok, true
}

// IsExpired reports whether tok is past its expiry according to the jar clock.
func (j *Jar) IsExpired(tok Token) bool {
	return tok.IsExpiredAt(j.now())
}

// verify parses and checks raw, returning the rejection reason of the first
// reading on failure.
func (j *Jar) verify(raw string) (Token, error) {
	toks, err := parseTokens(raw)
	if err != nil {
		return Token{}, err
	}

	var firstErr error
	for _, tok := range toks {
		err := j.check(tok)
		if err == nil {
			return tok, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return Token{}, firstErr
}

// check evaluates both the digest and the expiry before deciding.
func (j *Jar) check(tok Token) error {
	if !isFinite(tok.expiry) {
		return ErrInvalidExpiry
	}

	expected := j.sign(canonical(tok.expiry, tok.data))
	digestOK := hmac.Equal([]byte(expected), []byte(tok.digest))
	expired := j.IsExpired(tok)

	switch {
	case !digestOK:
		return errDigestMismatch
	case expired:
		return errExpired
	}
	return nil
}

func (j *Jar) sign(msg []byte) string {
	mac := hmac.New(j.hash, j.key)
	mac.Write(msg)
	return hex.EncodeToString(mac.Sum(nil))
}
