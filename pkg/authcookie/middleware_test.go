package authcookie_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authjar/pkg/authcookie"
	"github.com/dmitrymomot/authjar/pkg/logger"
)

func newProtectedRouter(mw func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(mw)
	r.Get("/me", func(w http.ResponseWriter, r *http.Request) {
		tok, ok := authcookie.TokenFromContext(r.Context())
		if !ok {
			http.Error(w, "no token in context", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write(tok.Data())
	})
	return r
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	jar := newTestJar(t)
	tok, err := jar.Issue(testExpiry, testData)
	require.NoError(t, err)

	handler := newProtectedRouter(authcookie.Middleware(jar))

	tests := []struct {
		name       string
		cookies    []string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "valid cookie",
			cookies:    []string{tok.String()},
			wantStatus: http.StatusOK,
			wantBody:   "cogitoergosum",
		},
		{
			name:       "valid cookie among others",
			cookies:    []string{"theme=dark; " + tok.String()},
			wantStatus: http.StatusOK,
			wantBody:   "cogitoergosum",
		},
		{
			name:       "valid cookie in second header",
			cookies:    []string{"theme=dark", tok.String()},
			wantStatus: http.StatusOK,
			wantBody:   "cogitoergosum",
		},
		{
			name:       "no cookie",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "tampered cookie",
			cookies:    []string{strings.Replace(tok.String(), "cogito", "cogita", 1)},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed cookie",
			cookies:    []string{`_M2AUTH_="this is bad"`},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			for _, c := range tt.cookies {
				req.Header.Add("Cookie", c)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestMiddleware_UniformRejection(t *testing.T) {
	t.Parallel()

	clock, _ := fixedClock(testTimeAfterExpiry())
	jar, err := authcookie.NewWithKey(testKey, authcookie.WithClock(clock))
	require.NoError(t, err)

	expired, err := jar.Issue(testExpiry, testData)
	require.NoError(t, err)

	handler := newProtectedRouter(authcookie.Middleware(jar))

	bodies := make(map[string]int)
	for _, c := range []string{
		expired.String(),
		strings.Replace(expired.String(), "dabe", "dabf", 1),
		`_M2AUTH_="complete nonsense"`,
		"",
	} {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if c != "" {
			req.Header.Set("Cookie", c)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		bodies[rec.Body.String()]++
	}
	assert.Len(t, bodies, 1, "every rejection must look the same")
}

func TestMiddlewareWithConfig(t *testing.T) {
	t.Parallel()

	t.Run("nil jar panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			authcookie.MiddlewareWithConfig(authcookie.MiddlewareConfig{})
		})
	})

	t.Run("skip", func(t *testing.T) {
		t.Parallel()
		jar := newTestJar(t)

		r := chi.NewRouter()
		r.Use(authcookie.MiddlewareWithConfig(authcookie.MiddlewareConfig{
			Jar:  jar,
			Skip: func(r *http.Request) bool { return r.URL.Path == "/healthz" },
		}))
		r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
		r.Get("/me", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("header extractor", func(t *testing.T) {
		t.Parallel()
		jar := newTestJar(t)
		tok, err := jar.Issue(testExpiry, testData)
		require.NoError(t, err)

		handler := newProtectedRouter(authcookie.MiddlewareWithConfig(authcookie.MiddlewareConfig{
			Jar:       jar,
			Extractor: authcookie.HeaderExtractor("X-Auth-Cookie"),
		}))

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("X-Auth-Cookie", authcookie.Render(tok, authcookie.DefaultHeader))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "cogitoergosum", rec.Body.String())

		req = httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Cookie", tok.String())
		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("custom error handler", func(t *testing.T) {
		t.Parallel()
		jar := newTestJar(t)

		handler := newProtectedRouter(authcookie.MiddlewareWithConfig(authcookie.MiddlewareConfig{
			Jar: jar,
			ErrorHandler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
			}),
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	})

	t.Run("logs rejection reason", func(t *testing.T) {
		t.Parallel()

		clock, _ := fixedClock(testTimeAfterExpiry())
		jar, err := authcookie.NewWithKey(testKey, authcookie.WithClock(clock))
		require.NoError(t, err)
		tok, err := jar.Issue(testExpiry, testData)
		require.NoError(t, err)

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelDebug), logger.WithJSONFormatter())

		handler := newProtectedRouter(authcookie.MiddlewareWithConfig(authcookie.MiddlewareConfig{
			Jar:    jar,
			Logger: log,
		}))

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Cookie", tok.String())
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "auth cookie rejected", entry["msg"])
		assert.Equal(t, "authcookie", entry["component"])
		assert.Equal(t, "authcookie.expired", entry["reason"])
		assert.NotContains(t, rec.Body.String(), "expired")
	})
}

func TestExtractors(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := authcookie.CookieHeaderExtractor(req)
	require.ErrorIs(t, err, authcookie.ErrNoToken)

	_, err = authcookie.HeaderExtractor("X-Auth")(req)
	require.ErrorIs(t, err, authcookie.ErrNoToken)

	req.Header.Add("Cookie", "a=1")
	req.Header.Add("Cookie", "b=2")
	raw, err := authcookie.CookieHeaderExtractor(req)
	require.NoError(t, err)
	assert.Equal(t, "a=1\nb=2", raw)
}
