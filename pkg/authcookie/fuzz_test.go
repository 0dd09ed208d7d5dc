package authcookie_test

import (
	"testing"

	"github.com/dmitrymomot/authjar/pkg/authcookie"
)

func FuzzParse(f *testing.F) {
	f.Add(knownCookie)
	f.Add("Set-Cookie: " + knownCookie + "; Path=/; HttpOnly")
	f.Add(`_M2AUTH_="exp=1.0&data=\"x\\&digest=00`)
	f.Add("_M2AUTH_=exp=NaN&data=&digest=")
	f.Add("Cookie: a=1, _M2AUTH_=\"\\377\\0\"")
	f.Add(`_M2AUTH_="exp=1.000000&data=a"b\c&digest=00"`)

	jar, err := authcookie.NewWithKey(testKey)
	if err != nil {
		f.Fatal(err)
	}

	f.Fuzz(func(t *testing.T, raw string) {
		exp, data, digest, err := authcookie.Parse(raw)
		if err != nil {
			if jar.IsValidString(raw) {
				t.Fatalf("unparsable input accepted: %q", raw)
			}
			return
		}
		if digest == "" {
			t.Fatalf("parsed empty digest from %q", raw)
		}

		mixed, err := authcookie.Mix(exp, data)
		if err != nil {
			t.Fatalf("parsed expiry %v cannot be mixed: %v", exp, err)
		}
		if _, _, err := authcookie.Unmix(mixed); err != nil {
			t.Fatalf("re-mixed value does not unmix: %v", err)
		}

		tok, ok := jar.Verify(raw)
		if ok && !jar.IsValid(tok) {
			t.Fatalf("verified token %q does not validate", tok.String())
		}
		if ok && !jar.IsValidString(tok.String()) {
			t.Fatalf("verified token does not survive re-rendering: %q", tok.String())
		}
	})
}

func FuzzUnmix(f *testing.F) {
	f.Add([]byte("exp=1700000000.000000&data=cogitoergosum"))
	f.Add([]byte("exp=&data="))
	f.Add([]byte("exp=1e308&data=&data=&digest=ff"))

	f.Fuzz(func(t *testing.T, b []byte) {
		exp, data, err := authcookie.Unmix(b)
		if err != nil {
			return
		}
		if _, err := authcookie.Mix(exp, data); err != nil {
			t.Fatalf("unmixed expiry %v cannot be mixed: %v", exp, err)
		}
	})
}
