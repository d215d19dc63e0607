package service

import (
	"context"
	"time"

	"betterrest/internal/estimator"
	"betterrest/internal/logger"
	"betterrest/internal/models"
	"betterrest/internal/regression"
	"betterrest/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Form owns the per-user input state: wake time, desired sleep, coffee.
type Form interface {
	Get(ctx context.Context, userID int) (models.Form, error)
	Replace(ctx context.Context, userID int, in models.UserInputs) (models.Form, error)
	StepSleep(ctx context.Context, userID int, steps int) (models.Form, error)
	StepCoffee(ctx context.Context, userID int, steps int) (models.Form, error)
}

// Bedtime runs estimates and exposes their history.
type Bedtime interface {
	// Calculate estimates from override, or from the stored form when override is nil.
	Calculate(ctx context.Context, userID int, override *models.UserInputs, clock estimator.Clock) (Calculation, error)
	// Preview estimates without touching storage.
	Preview(in models.UserInputs, clock estimator.Clock) Calculation
	History(ctx context.Context, userID int, f HistoryFilter) ([]models.EstimateRecord, error)
	ModelInfo() (regression.Info, bool)
}

// ModelWatcher reloads the model artifact when it changes on disk.
// Stop via context cancellation in main() for graceful shutdown.
type ModelWatcher interface {
	Run(ctx context.Context, tick time.Duration)
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Form
	Bedtime
	ModelWatcher
}

// AuthOptions configures token issuing.
type AuthOptions struct {
	SigningKey string
	TokenTTL   time.Duration
}

// NewService wires the repository layer and the model provider into concrete services.
func NewService(repos *repository.Repository, provider *regression.Provider, auth AuthOptions, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		Authorization: NewAuthService(repos.Auth, auth),
		Form:          NewFormService(repos.FormRepo),
		Bedtime:       NewBedtimeService(provider, repos.FormRepo, repos.EstimateRepo, log),
		ModelWatcher:  NewModelWatcherService(provider, log),
	}
}
