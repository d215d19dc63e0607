package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"betterrest/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func ctx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	t.Cleanup(cancel)
	return c
}

var estimateColumns = []string{"id", "user_id", "requested_at", "wake_time", "sleep_hours", "coffee_cups", "success", "bedtime", "actual_sleep_s", "error"}

func TestEstimateAppend_SuccessWithDefaults(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	repo := NewEstimateSQLite(db)

	mock.ExpectExec(regexp.QuoteMeta(insertEstimateSQL)).
		WithArgs(sqlmock.AnyArg(), 4, sqlmock.AnyArg(),
			"07:00", 8.0, 0, true,
			sql.NullString{String: "22:44", Valid: true},
			sql.NullFloat64{Float64: 29748, Valid: true},
			sql.NullString{},
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Append(ctx(t), models.EstimateRecord{
		UserID:             4,
		Inputs:             models.DefaultInputs(),
		Success:            true,
		Bedtime:            "22:44",
		ActualSleepSeconds: 29748,
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestEstimateAppend_FailureKeepsError(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(insertEstimateSQL)).
		WithArgs("fixed-id", 4, sqlmock.AnyArg(),
			"07:00", 8.0, 0, false,
			sql.NullString{},
			sql.NullFloat64{},
			sql.NullString{String: "model missing", Valid: true},
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewEstimateSQLite(db).Append(ctx(t), models.EstimateRecord{
		ID:     "fixed-id",
		UserID: 4,
		Inputs: models.DefaultInputs(),
		Error:  "model missing",
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestEstimateAppend_DBError(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO estimates").WillReturnError(errors.New("down"))

	err = NewEstimateSQLite(db).Append(ctx(t), models.EstimateRecord{UserID: 1, Inputs: models.DefaultInputs()})
	if err == nil || !strings.Contains(err.Error(), "down") {
		t.Fatalf("expected error, got %v", err)
	}
}

func TestEstimateList_NoFilters(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(estimateColumns).
		AddRow("1", 9, now, "07:00", 8.0, 0, true, "22:44", 29748.0, nil).
		AddRow("2", 9, now.Add(time.Hour), "06:30", 4.0, 10, false, nil, nil, "prediction failed")

	mock.ExpectQuery(regexp.QuoteMeta(selectEstimatesSQL + " WHERE user_id = ? ORDER BY requested_at ASC")).
		WithArgs(9).
		WillReturnRows(rows)

	got, err := NewEstimateSQLite(db).List(ctx(t), 9, time.Time{}, time.Time{}, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2, got %d", len(got))
	}
	if got[0].Bedtime != "22:44" || got[0].ActualSleepSeconds != 29748 || !got[0].Success {
		t.Fatalf("unexpected first record: %+v", got[0])
	}
	if got[1].Success || got[1].Bedtime != "" || got[1].Error != "prediction failed" {
		t.Fatalf("unexpected second record: %+v", got[1])
	}
	if got[1].Inputs.WakeTime != (models.TimeOfDay{Hour: 6, Minute: 30}) || got[1].Inputs.CoffeeCups != 10 {
		t.Fatalf("unexpected inputs: %+v", got[1].Inputs)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestEstimateList_WithFilters(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	from := time.Date(2026, 1, 1, 11, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	query := selectEstimatesSQL + " WHERE user_id = ? AND requested_at >= ? AND requested_at <= ? AND success = ? ORDER BY requested_at ASC"
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(9, from, to, false).
		WillReturnRows(sqlmock.NewRows(estimateColumns))

	got, err := NewEstimateSQLite(db).List(ctx(t), 9, from, to, " Failure ")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no records, got %d", len(got))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestEstimateList_ScanError(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows(estimateColumns).
		AddRow("x", 9, 123, "07:00", 8.0, 0, true, nil, nil, nil)
	mock.ExpectQuery("SELECT id").WillReturnRows(rows)

	if _, err := NewEstimateSQLite(db).List(ctx(t), 9, time.Time{}, time.Time{}, ""); err == nil {
		t.Fatalf("expected scan error, got nil")
	}
}
