package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/moodjournal/moodjournal-go/internal/crypto"
	"github.com/moodjournal/moodjournal-go/internal/model"
	"github.com/moodjournal/moodjournal-go/internal/repository"
)

// maxExpirationDays keeps token expiry well inside the range every store and
// the JSON encoder accept.
const maxExpirationDays = 3650

// TokenService manages API tokens and verifies bearer secrets.
type TokenService struct {
	store *repository.Store
	now   func() time.Time
}

// NewTokenService creates a new TokenService.
func NewTokenService(store *repository.Store) *TokenService {
	return &TokenService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func tokenInfo(t *model.APIToken) model.TokenInfo {
	return model.TokenInfo{
		ID:         t.ID,
		Name:       t.Name,
		Prefix:     t.Prefix,
		Permission: t.Permission,
		CreatedAt:  t.CreatedAt,
		ExpiresAt:  t.ExpiresAt,
	}
}

// List returns the user's token metadata, newest first.
func (s *TokenService) List(ctx context.Context, userID string) ([]model.TokenInfo, error) {
	tokens, err := s.store.Tokens().ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	infos := make([]model.TokenInfo, 0, len(tokens))
	for i := range tokens {
		infos = append(infos, tokenInfo(&tokens[i]))
	}
	return infos, nil
}

// Create mints a token. The returned secret is not stored and cannot be recovered.
// A nil or zero expirationDays means the token never expires.
func (s *TokenService) Create(ctx context.Context, userID, name string, permission model.Permission, expirationDays *int) (*model.CreatedToken, error) {
	name = strings.TrimSpace(name)
	if name == "" || permission == "" {
		return nil, invalidArgument("name and permission required")
	}
	if !permission.Valid() {
		return nil, invalidArgument("invalid permission")
	}
	if expirationDays != nil && (*expirationDays < 0 || *expirationDays > maxExpirationDays) {
		return nil, invalidArgument(fmt.Sprintf("expirationDays must be between 0 and %d", maxExpirationDays))
	}

	secret, err := crypto.GenerateAPISecret()
	if err != nil {
		return nil, err
	}

	now := s.now()
	token := &model.APIToken{
		ID:         uuid.NewString(),
		UserID:     userID,
		TokenHash:  crypto.HashAPISecret(secret),
		Prefix:     crypto.DisplayPrefix(secret),
		Name:       name,
		Permission: permission,
		CreatedAt:  now,
	}
	if expirationDays != nil && *expirationDays > 0 {
		expires := now.AddDate(0, 0, *expirationDays)
		token.ExpiresAt = &expires
	}

	if err := s.store.Tokens().Create(ctx, token); err != nil {
		return nil, err
	}

	return &model.CreatedToken{Token: secret, Info: tokenInfo(token)}, nil
}

// Revoke deletes one of the user's tokens. Unknown or foreign ids are ignored.
func (s *TokenService) Revoke(ctx context.Context, userID, tokenID string) error {
	if tokenID == "" {
		return invalidArgument("token ID required")
	}
	return s.store.Tokens().Delete(ctx, userID, tokenID)
}

// RevokeAll deletes every token the user holds.
func (s *TokenService) RevokeAll(ctx context.Context, userID string) (int64, error) {
	return s.store.Tokens().DeleteAllByUser(ctx, userID)
}

// Authenticate resolves a bearer secret to its token. Expired tokens are
// rejected but left in place until revoked.
func (s *TokenService) Authenticate(ctx context.Context, secret string) (*model.APIToken, error) {
	if secret == "" {
		return nil, unauthenticated("missing or invalid Authorization header")
	}
	if !crypto.LooksLikeAPISecret(secret) {
		return nil, unauthenticated("invalid API token")
	}

	token, err := s.store.Tokens().GetByHash(ctx, crypto.HashAPISecret(secret))
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return nil, unauthenticated("invalid API token")
		}
		return nil, err
	}

	if token.Expired(s.now()) {
		return nil, unauthenticated("token expired")
	}

	return token, nil
}
