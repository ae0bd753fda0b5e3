package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/moodjournal/moodjournal-go/internal/model"
	"github.com/moodjournal/moodjournal-go/internal/repository"
)

// JournalService applies journal mutations. Multi-statement changes run in a
// single transaction and are rolled back as a whole on failure.
type JournalService struct {
	store *repository.Store
}

// NewJournalService creates a new JournalService.
func NewJournalService(store *repository.Store) *JournalService {
	return &JournalService{store: store}
}

// WriteResult describes a successful mutation.
type WriteResult struct {
	Message    string
	EntryID    string
	ActivityID string
	Created    bool
}

// Apply dispatches a decoded write command.
func (s *JournalService) Apply(ctx context.Context, userID string, cmd model.WriteCommand) (WriteResult, error) {
	switch c := cmd.(type) {
	case model.SaveEntryCommand:
		id, err := s.SaveEntry(ctx, userID, c.Input())
		return WriteResult{Message: "Entry saved", EntryID: id}, err
	case model.DeleteEntryCommand:
		return WriteResult{Message: "Entry deleted"}, s.DeleteEntry(ctx, userID, c.EntryID)
	case model.CreateActivityCommand:
		id, err := s.CreateActivity(ctx, userID, model.ActivityInput{Name: c.Name, Icon: c.Icon, Color: c.Color})
		return WriteResult{Message: "Activity created", ActivityID: id, Created: true}, err
	case model.UpdateActivityCommand:
		err := s.UpdateActivity(ctx, userID, c.ID, model.ActivityInput{Name: c.Name, Icon: c.Icon, Color: c.Color})
		return WriteResult{Message: "Activity updated"}, err
	case model.DeleteActivityCommand:
		return WriteResult{Message: "Activity deleted"}, s.DeleteActivity(ctx, userID, c.TargetID())
	default:
		return WriteResult{}, invalidArgument(fmt.Sprintf("unsupported command %T", cmd))
	}
}

// SaveEntry creates an entry, or rewrites the caller's existing one, and
// replaces its activity set with in.ActivityIDs. Saving over an id the caller
// does not own fails with ErrNotFound.
func (s *JournalService) SaveEntry(ctx context.Context, userID string, in model.EntryInput) (string, error) {
	if in.Date == "" || in.DateKey == "" || in.Mood == "" {
		return "", invalidArgument("missing required fields: date, dateKey, mood")
	}

	entry := &model.Entry{
		ID:      in.ExistingEntryID,
		UserID:  userID,
		Date:    in.Date,
		DateKey: in.DateKey,
		Mood:    in.Mood,
	}
	activityIDs := dedupe(in.ActivityIDs)

	err := s.store.WithTx(ctx, func(ctx context.Context, tx repository.Repositories) error {
		entries := tx.Entries()

		if entry.ID != "" {
			ok, err := entries.Exists(ctx, userID, entry.ID)
			if err != nil {
				return err
			}
			if !ok {
				return notFound("entry not found")
			}
			if err := entries.Update(ctx, entry); err != nil {
				return err
			}
		} else {
			entry.ID = uuid.NewString()
			if err := entries.Insert(ctx, entry); err != nil {
				return err
			}
		}

		if err := entries.ClearActivities(ctx, userID, entry.ID); err != nil {
			return err
		}
		for _, activityID := range activityIDs {
			ok, err := entries.AttachActivity(ctx, userID, entry.ID, activityID)
			if err != nil {
				return err
			}
			if !ok {
				return invalidArgument(fmt.Sprintf("unknown activity %q", activityID))
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return entry.ID, nil
}

// DeleteEntry removes the entry and its associations. Unknown or foreign ids are ignored.
func (s *JournalService) DeleteEntry(ctx context.Context, userID, entryID string) error {
	if entryID == "" {
		return invalidArgument("entry ID required")
	}

	return s.store.WithTx(ctx, func(ctx context.Context, tx repository.Repositories) error {
		if err := tx.Entries().ClearActivities(ctx, userID, entryID); err != nil {
			return err
		}
		return tx.Entries().Delete(ctx, userID, entryID)
	})
}

// CreateActivity adds an activity to the caller's catalog and returns its id.
func (s *JournalService) CreateActivity(ctx context.Context, userID string, in model.ActivityInput) (string, error) {
	if err := validateActivity(in); err != nil {
		return "", err
	}

	a := &model.Activity{
		ID:     uuid.NewString(),
		UserID: userID,
		Name:   strings.TrimSpace(in.Name),
		Icon:   in.Icon,
		Color:  in.Color,
	}
	if err := s.store.Activities().Create(ctx, a); err != nil {
		return "", err
	}
	return a.ID, nil
}

// UpdateActivity rewrites one of the caller's activities. Foreign ids are ignored.
func (s *JournalService) UpdateActivity(ctx context.Context, userID, id string, in model.ActivityInput) error {
	if id == "" {
		return invalidArgument("activity ID required")
	}
	if err := validateActivity(in); err != nil {
		return err
	}

	return s.store.Activities().Update(ctx, &model.Activity{
		ID:     id,
		UserID: userID,
		Name:   strings.TrimSpace(in.Name),
		Icon:   in.Icon,
		Color:  in.Color,
	})
}

// DeleteActivity removes the activity from the catalog and from every entry.
func (s *JournalService) DeleteActivity(ctx context.Context, userID, id string) error {
	if id == "" {
		return invalidArgument("activity ID required")
	}
	return s.store.Activities().Delete(ctx, userID, id)
}

func validateActivity(in model.ActivityInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return invalidArgument("activity name required")
	}
	if in.Icon == "" || in.Color == "" {
		return invalidArgument("activity icon and color required")
	}
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
