package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"betterrest/internal/models"

	"github.com/google/uuid"
)

type EstimateSQLite struct {
	db *sql.DB
}

func NewEstimateSQLite(db *sql.DB) *EstimateSQLite { return &EstimateSQLite{db: db} }

const (
	insertEstimateSQL = `
		INSERT INTO estimates (id, user_id, requested_at, wake_time, sleep_hours, coffee_cups, success, bedtime, actual_sleep_s, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	selectEstimatesSQL = `SELECT id, user_id, requested_at, wake_time, sleep_hours, coffee_cups, success, bedtime, actual_sleep_s, error FROM estimates`
)

// Append inserts a record. ID and RequestedAt are filled in when empty.
func (r *EstimateSQLite) Append(ctx context.Context, rec models.EstimateRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.RequestedAt.IsZero() {
		rec.RequestedAt = time.Now()
	}

	var bedtime, errMsg sql.NullString
	var actual sql.NullFloat64
	if rec.Success {
		bedtime = sql.NullString{String: rec.Bedtime, Valid: true}
		actual = sql.NullFloat64{Float64: rec.ActualSleepSeconds, Valid: true}
	} else if rec.Error != "" {
		errMsg = sql.NullString{String: rec.Error, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, insertEstimateSQL,
		rec.ID,
		rec.UserID,
		rec.RequestedAt.UTC().Truncate(time.Second),
		rec.Inputs.WakeTime.String(),
		rec.Inputs.SleepHours,
		rec.Inputs.CoffeeCups,
		rec.Success,
		bedtime,
		actual,
		errMsg,
	)
	if err != nil {
		return fmt.Errorf("insert estimate %s: %w", rec.ID, err)
	}
	return nil
}

// List returns the user's records within [from, to] (zero bounds are open),
// optionally restricted to one outcome, oldest first.
func (r *EstimateSQLite) List(ctx context.Context, userID int, from, to time.Time, outcome string) ([]models.EstimateRecord, error) {
	conds := []string{"user_id = ?"}
	args := []any{userID}

	if !from.IsZero() {
		conds = append(conds, "requested_at >= ?")
		args = append(args, from.UTC())
	}
	if !to.IsZero() {
		conds = append(conds, "requested_at <= ?")
		args = append(args, to.UTC())
	}
	switch strings.ToLower(strings.TrimSpace(outcome)) {
	case models.OutcomeSuccess:
		conds = append(conds, "success = ?")
		args = append(args, true)
	case models.OutcomeFailure:
		conds = append(conds, "success = ?")
		args = append(args, false)
	}

	q := selectEstimatesSQL + " WHERE " + strings.Join(conds, " AND ") + " ORDER BY requested_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list estimates: %w", err)
	}
	defer rows.Close()

	out := make([]models.EstimateRecord, 0, 32)
	for rows.Next() {
		var (
			rec     models.EstimateRecord
			wake    string
			bedtime sql.NullString
			actual  sql.NullFloat64
			errMsg  sql.NullString
		)
		if err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.RequestedAt,
			&wake,
			&rec.Inputs.SleepHours,
			&rec.Inputs.CoffeeCups,
			&rec.Success,
			&bedtime,
			&actual,
			&errMsg,
		); err != nil {
			return nil, fmt.Errorf("scan estimate: %w", err)
		}
		if rec.Inputs.WakeTime, err = models.ParseTimeOfDay(wake); err != nil {
			return nil, fmt.Errorf("scan estimate %s: %w", rec.ID, err)
		}
		rec.RequestedAt = rec.RequestedAt.UTC()
		rec.Bedtime = bedtime.String
		rec.ActualSleepSeconds = actual.Float64
		rec.Error = errMsg.String
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate estimates: %w", err)
	}
	return out, nil
}
