// Package cookie provides the HTTP cookie plumbing that sits around signed
// auth cookies: attribute options for Set-Cookie headers and a tolerant
// scanner that finds one named value inside Cookie or Set-Cookie text.
//
// The package deliberately knows nothing about signing. Callers render the
// name=value part themselves and append attributes produced here, and read
// values back with Lookup.
//
// # Attributes
//
// Options mirrors the attribute set of net/http's Cookie. DefaultOptions
// returns Path=/, HttpOnly and SameSite=Lax; functional Option values adjust
// a copy of it:
//
//	opts := cookie.Apply(cookie.WithSecure(true), cookie.WithMaxAge(3600))
//	header := name + "=" + value + cookie.FormatAttributes(opts)
//
// Path and Domain are stripped of control characters, semicolons and
// commas so a caller supplied value cannot splice extra attributes or
// headers into the line.
//
// # Scanning
//
// Lookup accepts anything from a bare "name=value" assignment to several
// header lines such as
//
//	Set-Cookie: a=1; Path=/
//	Cookie: theme=dark; session="x=1&y=2"
//
// A leading "Header-Name:" is skipped per line, pairs are separated by ';'
// or ',', and double-quoted values are unquoted with backslash and octal
// escapes resolved. LookupLiteral returns a quoted value verbatim instead,
// up to the last '"' on its line, for producers that quote without escaping.
//
// # Configuration
//
// Config loads defaults from the environment via github.com/caarlos0/env:
//
//	var cfg cookie.Config
//	_ = config.Load(&cfg)
//	opts := cookie.Apply(cfg.Options()...)
//
// # Error Handling
//
// Lookup returns ErrNotFound when the name is absent and
// ErrUnterminatedQuote when a quoted value never closes.
package cookie
