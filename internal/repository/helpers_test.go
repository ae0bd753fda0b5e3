package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/moodjournal/moodjournal-go/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	ctx := context.Background()
	db, err := NewDB(ctx, DriverSQLite, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(ctx, db, DriverSQLite))
	return NewStore(db, DriverSQLite)
}

func seedUser(t *testing.T, s *Store, id, email string) {
	t.Helper()
	err := s.Users().Create(context.Background(), &model.User{
		ID:           id,
		Email:        email,
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)
}

func seedActivity(t *testing.T, s *Store, userID, id string) {
	t.Helper()
	err := s.Activities().Create(context.Background(), &model.Activity{
		ID: id, UserID: userID, Name: id, Icon: "*", Color: "#000",
	})
	require.NoError(t, err)
}

func entryFixture(userID, id string) *model.Entry {
	return &model.Entry{ID: id, UserID: userID, Date: "d", DateKey: "k", Mood: "m"}
}
