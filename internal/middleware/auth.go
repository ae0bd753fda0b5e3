package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/moodjournal/moodjournal-go/internal/model"
	"github.com/moodjournal/moodjournal-go/internal/service"
	"github.com/moodjournal/moodjournal-go/internal/session"
)

type contextKey string

const identityKey contextKey = "identity"

// Source names the credential that authenticated a request.
type Source string

const (
	SourceSession  Source = "session"
	SourceAPIToken Source = "api_token"
)

// Identity is the authenticated caller of a request.
type Identity struct {
	UserID     string
	Permission model.Permission
	Via        Source
}

// SessionVerifier validates a session token and returns its user id.
type SessionVerifier interface {
	Verify(token string) (string, error)
}

// TokenAuthenticator resolves an API token secret.
type TokenAuthenticator interface {
	Authenticate(ctx context.Context, secret string) (*model.APIToken, error)
}

// Authenticator verifies session cookies and bearer tokens. It never writes
// to the store.
type Authenticator struct {
	sessions SessionVerifier
	tokens   TokenAuthenticator
}

// NewAuthenticator creates an Authenticator.
func NewAuthenticator(sessions SessionVerifier, tokens TokenAuthenticator) *Authenticator {
	return &Authenticator{sessions: sessions, tokens: tokens}
}

// RequireSession admits requests carrying a valid session cookie. A session
// has full read and write scope over its own user's data.
func (a *Authenticator) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			writeJSONError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		userID, err := a.sessions.Verify(cookie.Value)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		id := Identity{UserID: userID, Permission: model.PermissionWrite, Via: SourceSession}
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
	})
}

// RequireAPIToken admits requests carrying a live bearer token whose
// permission covers required.
func (a *Authenticator) RequireAPIToken(required model.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			secret, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			secret = strings.TrimSpace(secret)
			if !found || secret == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing or invalid Authorization header")
				return
			}

			token, err := a.tokens.Authenticate(r.Context(), secret)
			if err != nil {
				if errors.Is(err, service.ErrUnauthenticated) {
					writeJSONError(w, http.StatusUnauthorized, err.Error())
					return
				}
				slog.ErrorContext(r.Context(), "api token lookup failed",
					"error", err, "request_id", chimw.GetReqID(r.Context()))
				writeJSONError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			if !token.Permission.Allows(required) {
				writeJSONError(w, http.StatusForbidden, string(required)+" permission required for this action")
				return
			}

			id := Identity{UserID: token.UserID, Permission: token.Permission, Via: SourceAPIToken}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext extracts the authenticated caller from the request context.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
