package authcookie

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/authjar/pkg/logger"
)

// ExtractorFunc returns the raw text that contains the auth cookie.
type ExtractorFunc func(r *http.Request) (string, error)

// SkipFunc reports whether a request bypasses validation.
type SkipFunc func(r *http.Request) bool

// MiddlewareConfig configures the auth cookie middleware.
type MiddlewareConfig struct {
	Jar          *Jar          // Jar validating the cookie; required
	Extractor    ExtractorFunc // Defaults to CookieHeaderExtractor
	Skip         SkipFunc      // Optional request filter to bypass validation
	Logger       *slog.Logger  // Receives rejection reasons at debug level
	ErrorHandler http.Handler  // Serves rejected requests; defaults to a plain 401
}

// Middleware validates the auth cookie of every request with the default
// extractor and stores the token in the request context.
func Middleware(jar *Jar) func(next http.Handler) http.Handler {
	return MiddlewareWithConfig(MiddlewareConfig{Jar: jar})
}

// MiddlewareWithConfig creates the middleware with custom configuration.
// Every rejection is answered identically; the reason only reaches the log.
func MiddlewareWithConfig(config MiddlewareConfig) func(next http.Handler) http.Handler {
	if config.Jar == nil {
		panic("authcookie: middleware requires a Jar")
	}
	if config.Extractor == nil {
		config.Extractor = CookieHeaderExtractor
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	if config.ErrorHandler == nil {
		config.ErrorHandler = http.HandlerFunc(unauthorized)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if config.Skip != nil && config.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()

			raw, err := config.Extractor(r)
			if err != nil {
				config.Logger.DebugContext(ctx, "auth cookie missing",
					logger.Component("authcookie"),
					logger.Reason(err),
				)
				config.ErrorHandler.ServeHTTP(w, r)
				return
			}

			tok, err := config.Jar.verify(raw)
			if err != nil {
				config.Logger.DebugContext(ctx, "auth cookie rejected",
					logger.Component("authcookie"),
					logger.Reason(err),
				)
				config.ErrorHandler.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithToken(ctx, tok)))
		})
	}
}

func unauthorized(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
}

// CookieHeaderExtractor returns every Cookie header of the request, one per
// line.
func CookieHeaderExtractor(r *http.Request) (string, error) {
	values := r.Header.Values("Cookie")
	if len(values) == 0 {
		return "", ErrNoToken
	}
	return strings.Join(values, "\n"), nil
}

// HeaderExtractor reads the raw cookie text from a custom header, for
// clients that forward the Set-Cookie value verbatim.
func HeaderExtractor(name string) ExtractorFunc {
	return func(r *http.Request) (string, error) {
		value := r.Header.Get(name)
		if value == "" {
			return "", ErrNoToken
		}
		return value, nil
	}
}
