// Package authcookie issues and validates stateless auth cookies: an expiry
// and an opaque payload bound together by an HMAC under a secret key held by
// a Jar. A server validates a cookie presented by a client without any
// session storage.
//
// # Format
//
// The signed bytes are the canonical encoding produced by Mix:
//
//	exp=1700000000.000000&data=<payload>
//
// The expiry is Unix seconds with exactly six fractional digits, so
// re-encoding a parsed expiry reproduces the signed bytes. The payload is
// not escaped. On the wire the digest is appended and the whole value is
// quoted inside a cookie named _M2AUTH_:
//
//	Set-Cookie: _M2AUTH_="exp=1700000000.000000&data=cogitoergosum&digest=<hex>"
//
// Because the payload is unescaped, Unmix splits at the first "&data=" and
// Unmix3 at the last "&digest=". Neither the numeric expiry nor the hex
// digest can contain those separators, so payloads containing them still
// parse. The format itself stays ambiguous for anything that strips the
// trailing digest without knowing it is there; callers wanting a robust
// payload should encode it (base64, JSON) before issuing.
//
// # Usage
//
//	jar, err := authcookie.New() // random key, lives with the process
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tok, err := jar.IssueFor(time.Hour, []byte("user-42"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	authcookie.SetCookie(w, tok, cookie.WithSecure(true))
//
//	// later, on another request
//	if tok, ok := jar.Verify(strings.Join(r.Header.Values("Cookie"), "\n")); ok {
//	    user := tok.Data()
//	    _ = user
//	}
//
// Middleware does the last step for a handler chain and stores the token in
// the request context (see TokenFromContext).
//
// # Security
//
// Digests are compared with hmac.Equal, whose running time does not depend
// on where the first difference is. Validation of untrusted input never
// returns an error: IsValid, IsValidString and Verify report a plain false
// for malformed, forged and expired cookies alike. Jars default to
// HMAC-SHA1 for compatibility with existing cookies; WithHash or
// Config.Hash select a stronger digest.
//
// A Jar is immutable once built and may be shared by any number of
// goroutines.
package authcookie
