package cookie

import (
	"net/http"
	"strconv"
	"strings"
)

// FormatAttributes renders opts as the attribute tail of a Set-Cookie line,
// starting with "; " when at least one attribute is present.
// SameSite=None forces Secure since browsers reject it otherwise.
func FormatAttributes(opts Options) string {
	var b strings.Builder

	if path := sanitizeAttr(opts.Path); path != "" {
		b.WriteString("; Path=")
		b.WriteString(path)
	}
	if domain := sanitizeAttr(strings.TrimPrefix(opts.Domain, ".")); domain != "" {
		b.WriteString("; Domain=")
		b.WriteString(domain)
	}

	switch {
	case opts.MaxAge > 0:
		b.WriteString("; Max-Age=")
		b.WriteString(strconv.Itoa(opts.MaxAge))
	case opts.MaxAge < 0:
		b.WriteString("; Max-Age=0")
	}

	if !opts.Expires.IsZero() {
		b.WriteString("; Expires=")
		b.WriteString(opts.Expires.UTC().Format(http.TimeFormat))
	}

	secure := opts.Secure || opts.SameSite == http.SameSiteNoneMode
	if opts.HttpOnly {
		b.WriteString("; HttpOnly")
	}
	if secure {
		b.WriteString("; Secure")
	}

	switch opts.SameSite {
	case http.SameSiteLaxMode:
		b.WriteString("; SameSite=Lax")
	case http.SameSiteStrictMode:
		b.WriteString("; SameSite=Strict")
	case http.SameSiteNoneMode:
		b.WriteString("; SameSite=None")
	}

	return b.String()
}

// sanitizeAttr drops bytes that would end the attribute or the header line.
func sanitizeAttr(v string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r < 0x20, r == 0x7f, r == ';', r == ',', r == '\u2028', r == '\u2029':
			return -1
		}
		return r
	}, v)
}
