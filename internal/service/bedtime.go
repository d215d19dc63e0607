package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"betterrest/internal/estimator"
	"betterrest/internal/logger"
	"betterrest/internal/models"
	"betterrest/internal/regression"
	"betterrest/internal/repository"
)

var (
	errInvalidTimeRange = errors.New("invalid time range: From must be <= To")
	errInvalidOutcome   = errors.New("invalid outcome: must be success or failure")
)

// ErrInvalidFilter wraps history filter problems.
var ErrInvalidFilter = errors.New("invalid history filter")

type BedtimeService struct {
	provider     *regression.Provider
	estimator    *estimator.Estimator
	formRepo     repository.FormRepo
	estimateRepo repository.EstimateRepo
	log          *logger.Logger
}

func NewBedtimeService(provider *regression.Provider, formRepo repository.FormRepo, estimateRepo repository.EstimateRepo, log *logger.Logger) *BedtimeService {
	var est *estimator.Estimator
	if provider != nil {
		est = estimator.New(provider)
	}
	return &BedtimeService{
		provider:     provider,
		estimator:    est,
		formRepo:     formRepo,
		estimateRepo: estimateRepo,
		log:          log,
	}
}

// Calculate takes a snapshot of the inputs, estimates, and records the outcome.
// Estimation failures come back as an error alert, not as an error.
func (s *BedtimeService) Calculate(ctx context.Context, userID int, override *models.UserInputs, clock estimator.Clock) (Calculation, error) {
	var in models.UserInputs
	if override != nil {
		in = *override
	} else {
		f, err := s.formRepo.Load(ctx, userID)
		if err != nil {
			return Calculation{}, err
		}
		in = models.DefaultInputs()
		if f.UserID != 0 {
			in = f.UserInputs
		}
	}

	pred, err := s.estimator.Estimate(in, clock)
	calc := newCalculation(in, pred, err)

	rec := models.EstimateRecord{
		UserID:      userID,
		RequestedAt: time.Now().UTC(),
		Inputs:      in,
		Success:     err == nil,
	}
	if err != nil {
		rec.Error = err.Error()
		s.log.Warnw("bedtime_estimate_failed", "user_id", userID, "err", err)
	} else {
		rec.Bedtime = pred.Bedtime.String()
		rec.ActualSleepSeconds = pred.ActualSleepSeconds
		s.log.Debugw("bedtime_estimated", "user_id", userID, "bedtime", rec.Bedtime)
	}
	if appendErr := s.estimateRepo.Append(ctx, rec); appendErr != nil {
		s.log.Errorw("bedtime_history_append_failed", "user_id", userID, "err", appendErr)
	}

	return calc, nil
}

func (s *BedtimeService) Preview(in models.UserInputs, clock estimator.Clock) Calculation {
	pred, err := s.estimator.Estimate(in, clock)
	if err != nil {
		s.log.Debugw("bedtime_preview_failed", "err", err)
	}
	return newCalculation(in, pred, err)
}

func newCalculation(in models.UserInputs, pred models.Prediction, err error) Calculation {
	calc := Calculation{Inputs: in, Alert: estimator.AlertFor(pred, err)}
	if err == nil {
		calc.Prediction = &pred
	}
	return calc
}

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// normalizeAndValidateFilter prepares query parameters and validates them.
func normalizeAndValidateFilter(f HistoryFilter) (HistoryFilter, error) {
	out := HistoryFilter{
		From:    normalizeToUTC(f.From),
		To:      normalizeToUTC(f.To),
		Outcome: strings.ToLower(strings.TrimSpace(f.Outcome)),
	}
	if !out.From.IsZero() && !out.To.IsZero() && out.From.After(out.To) {
		return HistoryFilter{}, errors.Join(ErrInvalidFilter, errInvalidTimeRange)
	}
	switch out.Outcome {
	case "", models.OutcomeSuccess, models.OutcomeFailure:
	default:
		return HistoryFilter{}, errors.Join(ErrInvalidFilter, errInvalidOutcome)
	}
	return out, nil
}

func (s *BedtimeService) History(ctx context.Context, userID int, f HistoryFilter) ([]models.EstimateRecord, error) {
	nf, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.estimateRepo.List(ctx, userID, nf.From, nf.To, nf.Outcome)
}

func (s *BedtimeService) ModelInfo() (regression.Info, bool) {
	if s.provider == nil {
		return regression.Info{}, false
	}
	return s.provider.Info()
}
