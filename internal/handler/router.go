package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/moodjournal/moodjournal-go/internal/middleware"
	"github.com/moodjournal/moodjournal-go/internal/model"
)

// Router holds everything needed to build the HTTP surface.
type Router struct {
	Auth          *AuthHandler
	Tokens        *TokenHandler
	Journal       *JournalHandler
	Authenticator *middleware.Authenticator
	CORSOrigins   []string
}

// Handler assembles the chi router.
func (rt Router) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)
	if len(rt.CORSOrigins) > 0 {
		r.Use(middleware.CORS(rt.CORSOrigins))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse("not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse("method not allowed"))
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/api/auth", rt.Auth.HandleAuth)

	r.Group(func(r chi.Router) {
		r.Use(rt.Authenticator.RequireSession)
		r.Get("/api/token", rt.Tokens.HandleList)
		r.Post("/api/token", rt.Tokens.HandleCommand)
		r.Get("/api/read", rt.Journal.HandleRead)
		r.Post("/api/write", rt.Journal.HandleWrite)
	})

	r.With(rt.Authenticator.RequireAPIToken(model.PermissionRead)).Get("/api/external", rt.Journal.HandleRead)
	r.With(rt.Authenticator.RequireAPIToken(model.PermissionWrite)).Post("/api/external", rt.Journal.HandleWrite)

	return r
}
