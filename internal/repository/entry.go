package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/moodjournal/moodjournal-go/internal/model"
)

// EntryRepository persists journal entries and their activity associations.
type EntryRepository struct {
	db DBTX
}

func NewEntryRepository(db DBTX) *EntryRepository {
	return &EntryRepository{db: db}
}

func (r *EntryRepository) Insert(ctx context.Context, e *model.Entry) error {
	query := `INSERT INTO journal_entries (user_id, id, date, date_key, mood) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, e.UserID, e.ID, e.Date, e.DateKey, e.Mood)
	return err
}

// Exists reports whether the user owns an entry with the given id.
func (r *EntryRepository) Exists(ctx context.Context, userID, id string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM journal_entries WHERE user_id = ? AND id = ?`, userID, id,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *EntryRepository) Update(ctx context.Context, e *model.Entry) error {
	query := `UPDATE journal_entries SET date = ?, date_key = ?, mood = ? WHERE user_id = ? AND id = ?`
	_, err := r.db.ExecContext(ctx, query, e.Date, e.DateKey, e.Mood, e.UserID, e.ID)
	return err
}

func (r *EntryRepository) Delete(ctx context.Context, userID, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM journal_entries WHERE user_id = ? AND id = ?`, userID, id)
	return err
}

// ListByUser returns the user's entries, most recent date key first.
func (r *EntryRepository) ListByUser(ctx context.Context, userID string) ([]model.Entry, error) {
	query := `SELECT id, user_id, date, date_key, mood FROM journal_entries
		WHERE user_id = ? ORDER BY date_key DESC, id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []model.Entry{}
	for rows.Next() {
		var e model.Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &e.DateKey, &e.Mood); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ClearActivities removes every association of the entry.
func (r *EntryRepository) ClearActivities(ctx context.Context, userID, entryID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM entry_activities WHERE user_id = ? AND entry_id = ?`, userID, entryID)
	return err
}

// AttachActivity links the entry to one of the user's activities. It reports
// false when the activity does not exist in the user's catalog.
func (r *EntryRepository) AttachActivity(ctx context.Context, userID, entryID, activityID string) (bool, error) {
	query := `INSERT INTO entry_activities (user_id, entry_id, activity_id)
		SELECT user_id, ?, id FROM activities WHERE user_id = ? AND id = ?`

	res, err := r.db.ExecContext(ctx, query, entryID, userID, activityID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// ListAssociations returns every entry/activity link owned by the user.
func (r *EntryRepository) ListAssociations(ctx context.Context, userID string) ([]model.EntryActivity, error) {
	query := `SELECT entry_id, activity_id, user_id FROM entry_activities
		WHERE user_id = ? ORDER BY entry_id, activity_id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []model.EntryActivity
	for rows.Next() {
		var l model.EntryActivity
		if err := rows.Scan(&l.EntryID, &l.ActivityID, &l.UserID); err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}
