package cookie

import "errors"

var (
	ErrNotFound          = errors.New("cookie.not_found")
	ErrUnterminatedQuote = errors.New("cookie.unterminated_quote")
)
