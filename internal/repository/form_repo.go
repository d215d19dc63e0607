package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"betterrest/internal/models"
)

type FormSQLite struct {
	db *sql.DB
}

func NewFormSQLite(db *sql.DB) *FormSQLite {
	return &FormSQLite{db: db}
}

const (
	upsertFormSQL = `
		INSERT INTO forms (user_id, wake_time, sleep_hours, coffee_cups, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			wake_time=excluded.wake_time,
			sleep_hours=excluded.sleep_hours,
			coffee_cups=excluded.coffee_cups,
			updated_at=excluded.updated_at
	`

	selectFormSQL = `
		SELECT user_id, wake_time, sleep_hours, coffee_cups, updated_at
		FROM forms WHERE user_id=?
	`
)

// Save inserts or replaces the user's form. UpdatedAt is stored in UTC and set if zero.
func (r *FormSQLite) Save(ctx context.Context, f models.Form) error {
	ts := f.UpdatedAt
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := r.db.ExecContext(ctx, upsertFormSQL,
		f.UserID,
		f.WakeTime.String(),
		f.SleepHours,
		f.CoffeeCups,
		ts.UTC().Truncate(time.Second),
	)
	if err != nil {
		return fmt.Errorf("save form for user %d: %w", f.UserID, err)
	}
	return nil
}

// Load fetches the user's form row.
func (r *FormSQLite) Load(ctx context.Context, userID int) (models.Form, error) {
	var (
		f    models.Form
		wake string
	)
	err := r.db.QueryRowContext(ctx, selectFormSQL, userID).Scan(
		&f.UserID,
		&wake,
		&f.SleepHours,
		&f.CoffeeCups,
		&f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Form{}, nil
		}
		return models.Form{}, fmt.Errorf("load form for user %d: %w", userID, err)
	}

	if f.WakeTime, err = models.ParseTimeOfDay(wake); err != nil {
		return models.Form{}, fmt.Errorf("load form for user %d: %w", userID, err)
	}
	f.UpdatedAt = f.UpdatedAt.UTC()
	return f, nil
}
