package authcookie

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/authjar/pkg/cookie"
)

// SetCookie adds a Set-Cookie header carrying tok. Attributes default to
// cookie.DefaultOptions. Without an explicit Max-Age or Expires the cookie
// is given an Expires attribute matching the token expiry.
func SetCookie(w http.ResponseWriter, tok Token, opts ...cookie.Option) {
	attrs := cookie.Apply(opts...)
	if attrs.MaxAge == 0 && attrs.Expires.IsZero() {
		attrs.Expires = tok.ExpiresAt()
	}
	w.Header().Add("Set-Cookie", renderEscaped(tok)+cookie.FormatAttributes(attrs))
}

// ClearCookie adds a Set-Cookie header that makes the browser drop the auth
// cookie. Path and Domain must match those used by SetCookie.
func ClearCookie(w http.ResponseWriter, opts ...cookie.Option) {
	attrs := cookie.Apply(opts...)
	attrs.MaxAge = -1
	attrs.Expires = time.Unix(0, 0)
	w.Header().Add("Set-Cookie", Name+`=""`+cookie.FormatAttributes(attrs))
}
