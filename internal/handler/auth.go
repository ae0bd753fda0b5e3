package handler

import (
	"net/http"

	"github.com/moodjournal/moodjournal-go/internal/model"
	"github.com/moodjournal/moodjournal-go/internal/service"
	"github.com/moodjournal/moodjournal-go/internal/session"
)

// AuthHandler handles signup, signin and logout.
type AuthHandler struct {
	service  *service.AuthService
	sessions *session.Issuer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService, sessions *session.Issuer) *AuthHandler {
	return &AuthHandler{service: svc, sessions: sessions}
}

// HandleAuth handles POST /api/auth requests.
func (h *AuthHandler) HandleAuth(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}

	cmd, err := model.DecodeAuthCommand(body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	switch c := cmd.(type) {
	case model.SignupCommand:
		user, err := h.service.Signup(r.Context(), c.Email, c.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}
		h.startSession(w, r, user.ID, http.StatusCreated, "Account created")

	case model.SigninCommand:
		user, err := h.service.Signin(r.Context(), c.Email, c.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}
		h.startSession(w, r, user.ID, http.StatusOK, "Authentication successful")

	case model.LogoutCommand:
		h.sessions.Clear(w)
		writeJSON(w, http.StatusOK, model.MessageResponse{Success: true, Message: "Logged out"})
	}
}

func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, userID string, status int, msg string) {
	token, err := h.sessions.Issue(userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.sessions.Attach(w, token)
	writeJSON(w, status, model.MessageResponse{Success: true, Message: msg})
}
