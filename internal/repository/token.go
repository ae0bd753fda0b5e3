package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/moodjournal/moodjournal-go/internal/model"
)

var ErrTokenNotFound = errors.New("api token not found")

// TokenRepository persists API token digests.
type TokenRepository struct {
	db DBTX
}

func NewTokenRepository(db DBTX) *TokenRepository {
	return &TokenRepository{db: db}
}

const tokenColumns = `id, user_id, token_hash, token_prefix, name, permission, created_at, expires_at`

func (r *TokenRepository) Create(ctx context.Context, t *model.APIToken) error {
	query := `INSERT INTO api_tokens (` + tokenColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	var expires sql.NullTime
	if t.ExpiresAt != nil {
		expires = sql.NullTime{Time: *t.ExpiresAt, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.UserID, t.TokenHash, t.Prefix, t.Name, string(t.Permission), t.CreatedAt, expires,
	)
	return err
}

// GetByHash looks a token up by the digest of its secret.
func (r *TokenRepository) GetByHash(ctx context.Context, hash string) (*model.APIToken, error) {
	query := `SELECT ` + tokenColumns + ` FROM api_tokens WHERE token_hash = ?`

	t, err := scanToken(r.db.QueryRowContext(ctx, query, hash))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}
	return t, nil
}

// ListByUser returns the user's tokens, newest first.
func (r *TokenRepository) ListByUser(ctx context.Context, userID string) ([]model.APIToken, error) {
	query := `SELECT ` + tokenColumns + ` FROM api_tokens WHERE user_id = ? ORDER BY created_at DESC, id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tokens := []model.APIToken{}
	for rows.Next() {
		t, err := scanToken(rows)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, *t)
	}
	return tokens, rows.Err()
}

// Delete removes one of the user's tokens. Another user's token id is a no-op.
func (r *TokenRepository) Delete(ctx context.Context, userID, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM api_tokens WHERE user_id = ? AND id = ?`, userID, id)
	return err
}

// DeleteAllByUser removes every token the user holds and returns how many were removed.
func (r *TokenRepository) DeleteAllByUser(ctx context.Context, userID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM api_tokens WHERE user_id = ?`, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanToken(row rowScanner) (*model.APIToken, error) {
	var (
		t          model.APIToken
		permission string
		expires    sql.NullTime
	)
	err := row.Scan(&t.ID, &t.UserID, &t.TokenHash, &t.Prefix, &t.Name, &permission, &t.CreatedAt, &expires)
	if err != nil {
		return nil, err
	}
	t.Permission = model.Permission(permission)
	if expires.Valid {
		e := expires.Time.UTC()
		t.ExpiresAt = &e
	}
	t.CreatedAt = t.CreatedAt.UTC()
	return &t, nil
}
