package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/dmitrymomot/authjar/pkg/authcookie"
	"github.com/dmitrymomot/authjar/pkg/cookie"
	"github.com/dmitrymomot/authjar/pkg/httpserver"
	"github.com/dmitrymomot/authjar/pkg/logger"
	"github.com/dmitrymomot/authjar/pkg/requestid"
)

const maxUserLength = 64

type app struct {
	jar     *authcookie.Jar
	ttl     time.Duration
	cookies []cookie.Option
	log     *slog.Logger
}

type sessionResponse struct {
	User      string    `json:"user"`
	Session   string    `json:"session"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (a *app) routes(checks ...httpserver.Check) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", httpserver.Liveness())
	r.Get("/readyz", httpserver.Readiness(a.log, checks...))

	r.Post("/login", a.login)
	r.Post("/logout", a.logout)

	r.Group(func(r chi.Router) {
		r.Use(authcookie.MiddlewareWithConfig(authcookie.MiddlewareConfig{
			Jar:          a.jar,
			Logger:       a.log,
			ErrorHandler: http.HandlerFunc(unauthorized),
		}))
		r.Get("/me", a.me)
	})

	return r
}

// login issues a cookie whose payload is "<user>:<session id>".
func (a *app) login(w http.ResponseWriter, r *http.Request) {
	user := strings.TrimSpace(r.FormValue("user"))
	if user == "" || len(user) > maxUserLength {
		http.Error(w, "user is required and must be at most 64 bytes", http.StatusBadRequest)
		return
	}

	session := uuid.NewString()
	tok, err := a.jar.IssueFor(a.ttl, []byte(user+":"+session))
	if err != nil {
		a.log.ErrorContext(r.Context(), "failed to issue auth cookie", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	authcookie.SetCookie(w, tok, a.cookies...)
	a.log.InfoContext(r.Context(), "session issued",
		slog.String("user", user),
		slog.String("session", session),
		logger.Expiry(tok.ExpiresAt()),
	)

	writeJSON(w, http.StatusOK, sessionResponse{User: user, Session: session, ExpiresAt: tok.ExpiresAt().UTC()})
}

func (a *app) me(w http.ResponseWriter, r *http.Request) {
	tok, ok := authcookie.TokenFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	data := string(tok.Data())
	i := strings.LastIndexByte(data, ':')
	if i < 0 {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{User: data[:i], Session: data[i+1:], ExpiresAt: tok.ExpiresAt().UTC()})
}

func (a *app) logout(w http.ResponseWriter, _ *http.Request) {
	authcookie.ClearCookie(w, a.cookies...)
	w.WriteHeader(http.StatusNoContent)
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// unauthorized answers every rejection identically. The request id lets an
// operator find the debug record carrying the rejection reason.
func unauthorized(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusUnauthorized, errorResponse{
		Error:     "unauthorized",
		RequestID: requestid.FromContext(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
