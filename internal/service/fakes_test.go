package service

import (
	"context"
	"sync"
	"time"

	"betterrest/internal/models"
)

// fakeFormRepo keeps forms in memory.
type fakeFormRepo struct {
	mu      sync.Mutex
	forms   map[int]models.Form
	saves   int
	saveErr error
	loadErr error
}

func newFakeFormRepo() *fakeFormRepo {
	return &fakeFormRepo{forms: map[int]models.Form{}}
}

func (r *fakeFormRepo) Save(_ context.Context, f models.Form) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.forms[f.UserID] = f
	return nil
}

func (r *fakeFormRepo) Load(_ context.Context, userID int) (models.Form, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loadErr != nil {
		return models.Form{}, r.loadErr
	}
	return r.forms[userID], nil
}

// fakeEstimateRepo records appended rows and the last List query.
type fakeEstimateRepo struct {
	mu        sync.Mutex
	records   []models.EstimateRecord
	appendErr error

	listed struct {
		userID   int
		from, to time.Time
		outcome  string
		called   bool
	}
}

func (r *fakeEstimateRepo) Append(_ context.Context, rec models.EstimateRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.appendErr != nil {
		return r.appendErr
	}
	r.records = append(r.records, rec)
	return nil
}

func (r *fakeEstimateRepo) List(_ context.Context, userID int, from, to time.Time, outcome string) ([]models.EstimateRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listed.userID, r.listed.from, r.listed.to, r.listed.outcome = userID, from, to, outcome
	r.listed.called = true
	return append([]models.EstimateRecord(nil), r.records...), nil
}
