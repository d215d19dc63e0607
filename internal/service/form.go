package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"betterrest/internal/models"
	"betterrest/internal/repository"
)

// ErrInvalidForm wraps every input constraint violation.
var ErrInvalidForm = errors.New("invalid form")

type FormService struct {
	formRepo repository.FormRepo
}

func NewFormService(formRepo repository.FormRepo) *FormService {
	return &FormService{formRepo: formRepo}
}

// Get returns the stored form, or the default one for a user who never saved.
func (s *FormService) Get(ctx context.Context, userID int) (models.Form, error) {
	f, err := s.formRepo.Load(ctx, userID)
	if err != nil {
		return models.Form{}, err
	}
	if f.UserID == 0 {
		return defaultForm(userID), nil
	}
	return f, nil
}

// Replace validates and stores a whole new set of inputs.
func (s *FormService) Replace(ctx context.Context, userID int, in models.UserInputs) (models.Form, error) {
	if err := in.Validate(); err != nil {
		return models.Form{}, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	f := models.Form{UserID: userID, UserInputs: in, UpdatedAt: time.Now().UTC()}
	if err := s.formRepo.Save(ctx, f); err != nil {
		return models.Form{}, err
	}
	return f, nil
}

func (s *FormService) StepSleep(ctx context.Context, userID int, steps int) (models.Form, error) {
	return s.update(ctx, userID, func(f *models.Form) { f.StepSleep(steps) })
}

func (s *FormService) StepCoffee(ctx context.Context, userID int, steps int) (models.Form, error) {
	return s.update(ctx, userID, func(f *models.Form) { f.StepCoffee(steps) })
}

func (s *FormService) update(ctx context.Context, userID int, mutate func(f *models.Form)) (models.Form, error) {
	f, err := s.Get(ctx, userID)
	if err != nil {
		return models.Form{}, err
	}
	mutate(&f)
	f.UpdatedAt = time.Now().UTC()
	if err := s.formRepo.Save(ctx, f); err != nil {
		return models.Form{}, err
	}
	return f, nil
}

func defaultForm(userID int) models.Form {
	return models.Form{
		UserID:     userID,
		UserInputs: models.DefaultInputs(),
	}
}
