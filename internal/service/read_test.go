package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodjournal/moodjournal-go/internal/model"
)

func TestFetchAll(t *testing.T) {
	store := newTestStore(t)
	user := signup(t, store, "a@x.com")
	journal := NewJournalService(store)
	ctx := context.Background()

	_, err := journal.SaveEntry(ctx, user.ID, model.EntryInput{
		Date: "Jan 1", DateKey: "2024-01-01", Mood: "happy", ActivityIDs: []string{"Work", "Reading"},
	})
	require.NoError(t, err)
	_, err = journal.SaveEntry(ctx, user.ID, model.EntryInput{
		Date: "Jan 3", DateKey: "2024-01-03", Mood: "tired",
	})
	require.NoError(t, err)

	snapshot, err := NewReadService(store).FetchAll(ctx, user.ID)
	require.NoError(t, err)

	require.Len(t, snapshot.JournalEntries, 2)
	assert.Equal(t, "2024-01-03", snapshot.JournalEntries[0].DateKey)
	assert.Equal(t, []string{}, snapshot.JournalEntries[0].Activities)
	assert.ElementsMatch(t, []string{"Work", "Reading"}, snapshot.JournalEntries[1].Activities)

	require.Len(t, snapshot.Activities, 4)
	assert.Equal(t, "Exercise", snapshot.Activities[0].Name)

	raw, err := json.Marshal(snapshot)
	require.NoError(t, err)
	var shape map[string][]map[string]any
	require.NoError(t, json.Unmarshal(raw, &shape))
	assert.Contains(t, shape["journalEntries"][0], "dateKey")
	assert.Contains(t, shape["journalEntries"][0], "activities")
	assert.NotContains(t, shape["journalEntries"][0], "UserID")
	assert.Contains(t, shape["activities"][0], "color")
}

func TestFetchAll_EmptyJournal(t *testing.T) {
	store := newTestStore(t)

	snapshot, err := NewReadService(store).FetchAll(context.Background(), "nobody")
	require.NoError(t, err)

	raw, err := json.Marshal(snapshot)
	require.NoError(t, err)
	assert.JSONEq(t, `{"journalEntries":[],"activities":[]}`, string(raw))
}
