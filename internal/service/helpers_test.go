package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/moodjournal/moodjournal-go/internal/crypto"
	"github.com/moodjournal/moodjournal-go/internal/model"
	"github.com/moodjournal/moodjournal-go/internal/repository"
)

func newTestStore(t *testing.T) *repository.Store {
	t.Helper()

	ctx := context.Background()
	db, err := repository.NewDB(ctx, repository.DriverSQLite, filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, repository.Migrate(ctx, db, repository.DriverSQLite))
	return repository.NewStore(db, repository.DriverSQLite)
}

func signup(t *testing.T, store *repository.Store, email string) *model.User {
	t.Helper()
	user, err := NewAuthService(store, crypto.MinCost).Signup(context.Background(), email, "secret1")
	require.NoError(t, err)
	return user
}

func associations(t *testing.T, store *repository.Store, userID, entryID string) []string {
	t.Helper()
	links, err := store.Entries().ListAssociations(context.Background(), userID)
	require.NoError(t, err)

	ids := []string{}
	for _, l := range links {
		if l.EntryID == entryID {
			ids = append(ids, l.ActivityID)
		}
	}
	return ids
}
