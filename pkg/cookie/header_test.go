package cookie_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authjar/pkg/cookie"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "bare assignment",
			raw:  `sid=abc`,
			want: "abc",
		},
		{
			name: "quoted value",
			raw:  `sid="exp=1&data=x"`,
			want: "exp=1&data=x",
		},
		{
			name: "set-cookie header with attributes",
			raw:  `Set-Cookie: sid="a=b"; Path=/; HttpOnly`,
			want: "a=b",
		},
		{
			name: "cookie header with several pairs",
			raw:  `Cookie: theme=dark; sid=abc; lang=en`,
			want: "abc",
		},
		{
			name: "quoted value containing separators",
			raw:  `other=1; sid="a;b, c"; last=2`,
			want: "a;b, c",
		},
		{
			name: "escaped quote and backslash",
			raw:  `sid="say \"hi\" \\o/"`,
			want: `say "hi" \o/`,
		},
		{
			name: "octal escape",
			raw:  `sid="a\073b"`,
			want: "a;b",
		},
		{
			name: "second header line",
			raw:  "Set-Cookie: a=1; Path=/\r\nSet-Cookie: sid=\"x\"",
			want: "x",
		},
		{
			name: "folded set-cookie with expires",
			raw:  `a=1; Expires=Wed, 21 Oct 2015 07:28:00 GMT, sid=xyz`,
			want: "xyz",
		},
		{
			name: "name embedded in another value is ignored",
			raw:  `a="sid=evil"; sid=good`,
			want: "good",
		},
		{
			name: "surrounding whitespace",
			raw:  "   sid =  abc  ",
			want: "abc",
		},
		{
			name: "empty value",
			raw:  `sid=; a=1`,
			want: "",
		},
		{
			name: "first match wins",
			raw:  `sid=one; sid=two`,
			want: "one",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := cookie.Lookup(tt.raw, "sid")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookup_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"empty input", "", cookie.ErrNotFound},
		{"other cookies only", "Cookie: a=1; b=2", cookie.ErrNotFound},
		{"name as flag", "sid; a=1", cookie.ErrNotFound},
		{"prefix of name", "sidx=1", cookie.ErrNotFound},
		{"case mismatch", "SID=1", cookie.ErrNotFound},
		{"unterminated quote", `sid="abc`, cookie.ErrUnterminatedQuote},
		{"dangling escape", `sid="abc\`, cookie.ErrUnterminatedQuote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := cookie.Lookup(tt.raw, "sid")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLookupLiteral(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain quoted", `sid="abc"`, "abc"},
		{"inner quote", `Set-Cookie: sid="say "hi" now"`, `say "hi" now`},
		{"backslash kept", `sid="a\b\073"`, `a\b\073`},
		{"unquoted value", `Cookie: a=1; sid=abc; b=2`, "abc"},
		{"earlier quoted pair unescaped", `a="x\"y"; sid="v"`, "v"},
		{"second line", "a=1\r\nsid=\"q\"\"", `q"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := cookie.LookupLiteral(tt.raw, "sid")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := cookie.LookupLiteral(`sid="abc`, "sid")
	assert.ErrorIs(t, err, cookie.ErrUnterminatedQuote)

	_, err = cookie.LookupLiteral(`a=1`, "sid")
	assert.ErrorIs(t, err, cookie.ErrNotFound)
}
