package authcookie

import "context"

type contextKey struct{ name string }

func (c contextKey) String() string { return c.name }

var tokenContextKey = &contextKey{name: "authcookie_token"}

// WithToken stores a validated token in ctx.
func WithToken(ctx context.Context, tok Token) context.Context {
	return context.WithValue(ctx, tokenContextKey, tok)
}

// TokenFromContext returns the token stored by the middleware.
func TokenFromContext(ctx context.Context) (Token, bool) {
	tok, ok := ctx.Value(tokenContextKey).(Token)
	return tok, ok
}
