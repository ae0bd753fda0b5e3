package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodjournal/moodjournal-go/internal/model"
)

func TestEntryRepository_AttachAndList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedUser(t, s, "u1", "a@x.com")
	seedActivity(t, s, "u1", "Work")

	entries := s.Entries()
	require.NoError(t, entries.Insert(ctx, &model.Entry{
		ID: "e1", UserID: "u1", Date: "Mon Jan 1", DateKey: "2024-01-01", Mood: "happy",
	}))
	require.NoError(t, entries.Insert(ctx, &model.Entry{
		ID: "e2", UserID: "u1", Date: "Tue Jan 2", DateKey: "2024-01-02", Mood: "sad",
	}))

	ok, err := entries.AttachActivity(ctx, "u1", "e1", "Work")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = entries.AttachActivity(ctx, "u1", "e1", "Nope")
	require.NoError(t, err)
	assert.False(t, ok)

	list, err := entries.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "e2", list[0].ID)
	assert.Equal(t, "e1", list[1].ID)

	links, err := entries.ListAssociations(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []model.EntryActivity{{EntryID: "e1", ActivityID: "Work", UserID: "u1"}}, links)
}

func TestEntryRepository_ExistsIsScoped(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedUser(t, s, "u1", "a@x.com")
	seedUser(t, s, "u2", "b@x.com")
	require.NoError(t, s.Entries().Insert(ctx, &model.Entry{
		ID: "e1", UserID: "u1", Date: "d", DateKey: "k", Mood: "m",
	}))

	ok, err := s.Entries().Exists(ctx, "u1", "e1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Entries().Exists(ctx, "u2", "e1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEntryRepository_CannotAttachForeignActivity(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedUser(t, s, "u1", "a@x.com")
	seedUser(t, s, "u2", "b@x.com")
	seedActivity(t, s, "u2", "Secret")
	require.NoError(t, s.Entries().Insert(ctx, &model.Entry{
		ID: "e1", UserID: "u1", Date: "d", DateKey: "k", Mood: "m",
	}))

	ok, err := s.Entries().AttachActivity(ctx, "u1", "e1", "Secret")
	require.NoError(t, err)
	assert.False(t, ok)

	// A raw insert that bypasses the guard is still rejected by the composite foreign key.
	_, err = s.DB().ExecContext(ctx,
		`INSERT INTO entry_activities (user_id, entry_id, activity_id) VALUES ('u1', 'e1', 'Secret')`)
	assert.Error(t, err)
}

func TestActivityRepository_DeleteCascades(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedUser(t, s, "u1", "a@x.com")
	seedActivity(t, s, "u1", "Work")
	seedActivity(t, s, "u1", "Family")
	require.NoError(t, s.Entries().Insert(ctx, &model.Entry{
		ID: "e1", UserID: "u1", Date: "d", DateKey: "k", Mood: "m",
	}))
	for _, id := range []string{"Work", "Family"} {
		ok, err := s.Entries().AttachActivity(ctx, "u1", "e1", id)
		require.NoError(t, err)
		require.True(t, ok)
	}

	require.NoError(t, s.Activities().Delete(ctx, "u1", "Work"))

	links, err := s.Entries().ListAssociations(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []model.EntryActivity{{EntryID: "e1", ActivityID: "Family", UserID: "u1"}}, links)

	activities, err := s.Activities().ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "Family", activities[0].ID)
}

func TestActivityRepository_UpdateIsScoped(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedUser(t, s, "u1", "a@x.com")
	seedUser(t, s, "u2", "b@x.com")
	seedActivity(t, s, "u1", "Work")

	require.NoError(t, s.Activities().Update(ctx, &model.Activity{
		ID: "Work", UserID: "u2", Name: "Hijacked", Icon: "x", Color: "x",
	}))
	require.NoError(t, s.Activities().Update(ctx, &model.Activity{
		ID: "Work", UserID: "u1", Name: "Office", Icon: "o", Color: "#fff",
	}))

	activities, err := s.Activities().ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "Office", activities[0].Name)

	other, err := s.Activities().ListByUser(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, other)
}
