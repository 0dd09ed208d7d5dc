package cookie

import "strings"

// Lookup finds the value of the cookie called name in raw. raw may hold a
// bare assignment, Cookie or Set-Cookie header lines, or several lines at
// once; the first match wins. Quoted values are returned unquoted.
func Lookup(raw, name string) (string, error) {
	return lookup(raw, name, false)
}

// LookupLiteral is Lookup without unescaping: a quoted value is returned
// verbatim from after its opening quote up to the last '"' on the line.
// It recovers values written unescaped by a producer that quotes but does
// not escape.
func LookupLiteral(raw, name string) (string, error) {
	return lookup(raw, name, true)
}

func lookup(raw, name string, literal bool) (string, error) {
	lines := strings.FieldsFunc(raw, func(r rune) bool { return r == '\r' || r == '\n' })

	for _, line := range lines {
		value, found, err := lookupLine(stripHeaderName(line), name, literal)
		if err != nil {
			return "", err
		}
		if found {
			return value, nil
		}
	}

	return "", ErrNotFound
}

func lookupLine(line, name string, literal bool) (string, bool, error) {
	n := len(line)
	i := 0

	for i < n {
		for i < n && isPairSeparator(line[i]) {
			i++
		}
		if i >= n {
			break
		}

		start := i
		for i < n && line[i] != '=' && line[i] != ';' && line[i] != ',' {
			i++
		}
		pairName := strings.TrimSpace(line[start:i])
		if i >= n || line[i] != '=' {
			// Flag attribute such as HttpOnly.
			continue
		}
		i++

		for i < n && (line[i] == ' ' || line[i] == '\t') {
			i++
		}

		var value string
		if literal && pairName == name && i < n && line[i] == '"' {
			last := strings.LastIndexByte(line, '"')
			if last <= i {
				return "", false, ErrUnterminatedQuote
			}
			return line[i+1 : last], true, nil
		}
		if i < n && line[i] == '"' {
			v, end, err := unquote(line, i)
			if err != nil {
				return "", false, err
			}
			value, i = v, end
		} else {
			start = i
			for i < n && line[i] != ';' && line[i] != ',' {
				i++
			}
			value = strings.TrimSpace(line[start:i])
		}

		if pairName == name {
			return value, true, nil
		}
	}

	return "", false, nil
}

// unquote reads a double-quoted value starting at line[open] and returns it
// together with the index just past the closing quote. \" and \\ escape the
// next character and \ooo is an octal byte.
func unquote(line string, open int) (string, int, error) {
	var b strings.Builder
	n := len(line)

	for i := open + 1; i < n; i++ {
		c := line[i]
		switch {
		case c == '"':
			return b.String(), i + 1, nil
		case c == '\\' && i+3 < n && line[i+1] >= '0' && line[i+1] <= '3' && isOctal(line[i+2]) && isOctal(line[i+3]):
			b.WriteByte((line[i+1]-'0')<<6 | (line[i+2]-'0')<<3 | (line[i+3] - '0'))
			i += 3
		case c == '\\' && i+1 < n:
			b.WriteByte(line[i+1])
			i++
		default:
			b.WriteByte(c)
		}
	}

	return "", n, ErrUnterminatedQuote
}

// stripHeaderName removes a leading "Header-Name:" from line.
func stripHeaderName(line string) string {
	line = strings.TrimSpace(line)

	colon := strings.IndexByte(line, ':')
	if colon <= 0 {
		return line
	}
	if eq := strings.IndexByte(line, '='); eq >= 0 && eq < colon {
		return line
	}
	if !isHeaderToken(line[:colon]) {
		return line
	}
	return line[colon+1:]
}

func isHeaderToken(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-' || c == '_') {
			return false
		}
	}
	return s != ""
}

func isPairSeparator(c byte) bool {
	return c == ';' || c == ',' || c == ' ' || c == '\t'
}

func isOctal(c byte) bool {
	return c >= '0' && c <= '7'
}
