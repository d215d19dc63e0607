package repository

import (
	"context"
	"database/sql"
	"time"

	"betterrest/internal/models"
)

type Authorization interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// FormRepo stores the form state of each user.
type FormRepo interface {
	Save(ctx context.Context, f models.Form) error
	// Load returns a zero Form (UserID 0) when the user has none yet.
	Load(ctx context.Context, userID int) (models.Form, error)
}

// EstimateRepo is the append-only calculation history.
type EstimateRepo interface {
	Append(ctx context.Context, r models.EstimateRecord) error
	List(ctx context.Context, userID int, from, to time.Time, outcome string) ([]models.EstimateRecord, error)
}

type Repository struct {
	FormRepo     FormRepo
	EstimateRepo EstimateRepo
	Auth         Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		FormRepo:     NewFormSQLite(db),
		EstimateRepo: NewEstimateSQLite(db),
		Auth:         NewUserRepository(db),
	}
}
