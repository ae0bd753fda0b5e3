package handler

import (
	"net/http"

	"github.com/moodjournal/moodjournal-go/internal/model"
	"github.com/moodjournal/moodjournal-go/internal/service"
)

// TokenHandler manages API tokens for a signed-in user.
type TokenHandler struct {
	service *service.TokenService
}

// NewTokenHandler creates a new TokenHandler.
func NewTokenHandler(svc *service.TokenService) *TokenHandler {
	return &TokenHandler{service: svc}
}

type tokenListResponse struct {
	Tokens []model.TokenInfo `json:"tokens"`
}

type tokenCreatedResponse struct {
	model.MessageResponse
	model.CreatedToken
}

// HandleList handles GET /api/token?action=list requests.
func (h *TokenHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	if r.URL.Query().Get("action") != "list" {
		writeJSON(w, http.StatusBadRequest, errorResponse(model.ErrUnknownAction.Error()))
		return
	}

	tokens, err := h.service.List(r.Context(), id.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenListResponse{Tokens: tokens})
}

// HandleCommand handles POST /api/token requests.
func (h *TokenHandler) HandleCommand(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	body, ok := readBody(w, r)
	if !ok {
		return
	}

	cmd, err := model.DecodeTokenCommand(body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	switch c := cmd.(type) {
	case model.CreateTokenCommand:
		created, err := h.service.Create(r.Context(), id.UserID, c.Name, c.Permission, c.ExpirationDays)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, tokenCreatedResponse{
			MessageResponse: model.MessageResponse{Success: true, Message: "Token created successfully"},
			CreatedToken:    *created,
		})

	case model.RevokeTokenCommand:
		if err := h.service.Revoke(r.Context(), id.UserID, c.TokenID); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, model.MessageResponse{Success: true, Message: "Token revoked"})

	case model.RevokeAllTokensCommand:
		if _, err := h.service.RevokeAll(r.Context(), id.UserID); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, model.MessageResponse{Success: true, Message: "All tokens revoked"})
	}
}
