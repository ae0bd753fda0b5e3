package repository

import (
	"context"

	"github.com/moodjournal/moodjournal-go/internal/model"
)

// ActivityRepository persists a user's activity catalog.
type ActivityRepository struct {
	db DBTX
}

func NewActivityRepository(db DBTX) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(ctx context.Context, a *model.Activity) error {
	query := `INSERT INTO activities (user_id, id, name, icon, color) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, a.UserID, a.ID, a.Name, a.Icon, a.Color)
	return err
}

// Update rewrites the activity's fields. A row owned by another user is left untouched.
func (r *ActivityRepository) Update(ctx context.Context, a *model.Activity) error {
	query := `UPDATE activities SET name = ?, icon = ?, color = ? WHERE user_id = ? AND id = ?`
	_, err := r.db.ExecContext(ctx, query, a.Name, a.Icon, a.Color, a.UserID, a.ID)
	return err
}

// Delete removes the activity. Its entry associations go with it via the foreign key cascade.
func (r *ActivityRepository) Delete(ctx context.Context, userID, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE user_id = ? AND id = ?`, userID, id)
	return err
}

// ListByUser returns the user's activities ordered by name.
func (r *ActivityRepository) ListByUser(ctx context.Context, userID string) ([]model.Activity, error) {
	query := `SELECT id, user_id, name, icon, color FROM activities WHERE user_id = ? ORDER BY name, id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := []model.Activity{}
	for rows.Next() {
		var a model.Activity
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Icon, &a.Color); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}
