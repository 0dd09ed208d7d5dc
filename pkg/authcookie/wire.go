package authcookie

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/authjar/pkg/cookie"
)

const (
	// Name is the cookie name carrying the token.
	Name = "_M2AUTH_"

	// DefaultHeader is the conventional prefix for Render.
	DefaultHeader = "Set-Cookie: "
)

// Render returns header followed by the quoted cookie assignment:
//
//	<header>_M2AUTH_="exp=<e>&data=<d>&digest=<m>"
//
// header may be empty. Data is written unescaped. Data with '"' or '\\'
// still validates through IsValidString; data with CR or LF cannot live on
// one header line and does not. Token.String and SetCookie escape instead.
func Render(tok Token, header string) string {
	mixed := canonical(tok.expiry, tok.data)

	var b strings.Builder
	b.Grow(len(header) + len(Name) + len(mixed) + len(digestSep) + len(tok.digest) + 3)
	b.WriteString(header)
	b.WriteString(Name)
	b.WriteString(`="`)
	b.Write(mixed)
	b.WriteString(digestSep)
	b.WriteString(tok.digest)
	b.WriteByte('"')
	return b.String()
}

// Parse locates the _M2AUTH_ cookie in raw and splits its value into expiry,
// data and hex digest. raw may be a bare assignment, a header line, or
// several header lines. Quoted values are unescaped; when that reading does
// not split into fields the literal quoted bytes are used. Failures wrap
// ErrMalformedWireFormat.
func Parse(raw string) (float64, []byte, string, error) {
	values, err := parseWire(raw)
	if err != nil {
		return 0, nil, "", err
	}
	tok := values[0].tok
	return tok.expiry, tok.data, tok.digest, nil
}

// parseTokens returns the readings of raw whose value is exactly what
// Render would produce for the parsed fields, so that two spellings of one
// expiry cannot share a digest. An unescaped Render of data holding '"' or
// '\\' reads differently once unescaped, hence more than one reading.
func parseTokens(raw string) ([]Token, error) {
	values, err := parseWire(raw)
	if err != nil {
		return nil, err
	}

	toks := make([]Token, 0, len(values))
	for _, v := range values {
		if v.value == string(canonical(v.tok.expiry, v.tok.data))+digestSep+v.tok.digest {
			toks = append(toks, v.tok)
		}
	}
	if len(toks) == 0 {
		return nil, fmt.Errorf("%w: non-canonical value", ErrMalformedWireFormat)
	}
	return toks, nil
}

type wireValue struct {
	tok   Token
	value string
}

// parseWire returns the unverified tokens read from raw, unescaped reading
// first, each with the cookie value it was split from.
func parseWire(raw string) ([]wireValue, error) {
	var (
		values   []wireValue
		firstErr error
	)

	for _, lookup := range []func(string, string) (string, error){cookie.Lookup, cookie.LookupLiteral} {
		v, err := readWire(raw, lookup)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if len(values) > 0 && values[0].value == v.value {
			continue
		}
		values = append(values, v)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrMalformedWireFormat, firstErr)
	}
	return values, nil
}

func readWire(raw string, lookup func(raw, name string) (string, error)) (wireValue, error) {
	value, err := lookup(raw, Name)
	if err != nil {
		return wireValue{}, err
	}

	expiry, data, digest, err := Unmix3([]byte(value))
	if err != nil {
		return wireValue{}, err
	}

	return wireValue{
		tok:   Token{expiry: expiry, data: data, digest: digest},
		value: value,
	}, nil
}

// renderEscaped is Render without a header, with bytes that cannot appear
// inside a quoted header value, or that user agents treat as the end of the
// value (';'), escaped the way cookie.Lookup unquotes them. For printable
// payloads without '"', '\\' or ';' it equals Render.
func renderEscaped(tok Token) string {
	mixed := canonical(tok.expiry, tok.data)

	var b strings.Builder
	b.Grow(len(Name) + len(mixed) + len(digestSep) + len(tok.digest) + 3)
	b.WriteString(Name)
	b.WriteString(`="`)
	for _, c := range mixed {
		switch {
		case c == '"' || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c < 0x20 || c >= 0x7f || c == ';':
			fmt.Fprintf(&b, `\%03o`, c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteString(digestSep)
	b.WriteString(tok.digest)
	b.WriteByte('"')
	return b.String()
}
