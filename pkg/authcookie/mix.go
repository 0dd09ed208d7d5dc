package authcookie

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
)

const (
	expPrefix    = "exp="
	dataSep      = "&data="
	digestSep    = "&digest="
	expiryDigits = 6
)

// Mix returns the canonical encoding of expiry and data:
//
//	exp=<expiry with 6 fractional digits>&data=<data>
//
// This is the only byte string ever signed. data is copied verbatim.
func Mix(expiry float64, data []byte) ([]byte, error) {
	if !isFinite(expiry) {
		return nil, fmt.Errorf("%w: expiry %v is not a finite number", ErrEncoding, expiry)
	}
	return canonical(expiry, data), nil
}

// canonical formats without the finiteness check. Token expiries are
// validated at issue time, so every caller already holds a finite value.
func canonical(expiry float64, data []byte) []byte {
	b := make([]byte, 0, len(expPrefix)+24+len(dataSep)+len(data))
	b = append(b, expPrefix...)
	b = strconv.AppendFloat(b, expiry, 'f', expiryDigits, 64)
	b = append(b, dataSep...)
	return append(b, data...)
}

// Unmix parses a canonical encoding. The expiry ends at the first "&data="
// and everything after it is returned as data, including any further
// separators.
func Unmix(b []byte) (float64, []byte, error) {
	if !bytes.HasPrefix(b, []byte(expPrefix)) {
		return 0, nil, fmt.Errorf("%w: missing %q prefix", ErrDecoding, expPrefix)
	}
	rest := b[len(expPrefix):]

	i := bytes.Index(rest, []byte(dataSep))
	if i < 0 {
		return 0, nil, fmt.Errorf("%w: missing %q separator", ErrDecoding, dataSep)
	}

	expiry, err := parseExpiry(rest[:i])
	if err != nil {
		return 0, nil, err
	}

	return expiry, bytes.Clone(rest[i+len(dataSep):]), nil
}

// Unmix3 parses a canonical encoding followed by "&digest=<hex>". The digest
// is split off at the last "&digest=" so a payload containing that literal
// still parses.
func Unmix3(b []byte) (float64, []byte, string, error) {
	i := bytes.LastIndex(b, []byte(digestSep))
	if i < 0 {
		return 0, nil, "", fmt.Errorf("%w: missing %q separator", ErrDecoding, digestSep)
	}

	digest := string(b[i+len(digestSep):])
	if digest == "" {
		return 0, nil, "", fmt.Errorf("%w: empty digest", ErrDecoding)
	}
	if _, err := hex.DecodeString(digest); err != nil {
		return 0, nil, "", fmt.Errorf("%w: digest is not hex: %w", ErrDecoding, err)
	}

	expiry, data, err := Unmix(b[:i])
	if err != nil {
		return 0, nil, "", err
	}

	return expiry, data, digest, nil
}

func parseExpiry(b []byte) (float64, error) {
	expiry, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: expiry %q is not a number", ErrDecoding, b)
	}
	if !isFinite(expiry) {
		return 0, fmt.Errorf("%w: expiry %q is not finite", ErrDecoding, b)
	}
	return expiry, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
