package service

import (
	"context"

	"github.com/moodjournal/moodjournal-go/internal/model"
	"github.com/moodjournal/moodjournal-go/internal/repository"
)

// ReadService assembles the full journal for one user.
type ReadService struct {
	store *repository.Store
}

// NewReadService creates a new ReadService.
func NewReadService(store *repository.Store) *ReadService {
	return &ReadService{store: store}
}

// FetchAll returns every entry, with its activity ids, and the activity
// catalog, read from one consistent snapshot.
func (s *ReadService) FetchAll(ctx context.Context, userID string) (*model.JournalSnapshot, error) {
	var (
		entries    []model.Entry
		activities []model.Activity
		links      []model.EntryActivity
	)

	err := s.store.WithReadTx(ctx, func(ctx context.Context, tx repository.Repositories) error {
		var err error
		if entries, err = tx.Entries().ListByUser(ctx, userID); err != nil {
			return err
		}
		if activities, err = tx.Activities().ListByUser(ctx, userID); err != nil {
			return err
		}
		links, err = tx.Entries().ListAssociations(ctx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	byEntry := make(map[string][]string, len(entries))
	for _, l := range links {
		byEntry[l.EntryID] = append(byEntry[l.EntryID], l.ActivityID)
	}

	views := make([]model.EntryView, 0, len(entries))
	for _, e := range entries {
		ids := byEntry[e.ID]
		if ids == nil {
			ids = []string{}
		}
		views = append(views, model.EntryView{Entry: e, Activities: ids})
	}

	return &model.JournalSnapshot{JournalEntries: views, Activities: activities}, nil
}
