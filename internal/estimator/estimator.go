// Package estimator turns the form inputs into a bedtime by asking the
// regression model how much sleep is actually needed.
package estimator

import (
	"errors"
	"fmt"
	"math"
	"time"

	"betterrest/internal/models"
	"betterrest/internal/regression"
)

var (
	// ErrModelUnavailable means the model could not be initialized.
	ErrModelUnavailable = errors.New("regression model unavailable")
	// ErrInvalidPrediction means the model answered with a duration that cannot be a night's sleep.
	ErrInvalidPrediction = errors.New("regression model returned an unusable duration")
)

// maxSleepSeconds bounds a usable prediction to less than one day.
const maxSleepSeconds = 24 * 60 * 60

// EstimationError is the single failure kind of an estimate.
type EstimationError struct {
	Op  string
	Err error
}

func (e *EstimationError) Error() string {
	return fmt.Sprintf("estimate bedtime: %s: %v", e.Op, e.Err)
}

func (e *EstimationError) Unwrap() error { return e.Err }

// ModelSource hands out the current model. *regression.Provider satisfies it.
type ModelSource interface {
	Model() (regression.Model, error)
}

// Estimator binds a model source to the estimate procedure.
type Estimator struct {
	source ModelSource
}

func New(source ModelSource) *Estimator {
	return &Estimator{source: source}
}

// Estimate fetches the model and runs EstimateBedtime.
func (e *Estimator) Estimate(in models.UserInputs, clock Clock) (models.Prediction, error) {
	if e == nil || e.source == nil {
		return models.Prediction{}, &EstimationError{Op: "load model", Err: ErrModelUnavailable}
	}
	model, err := e.source.Model()
	if err != nil {
		return models.Prediction{}, &EstimationError{Op: "load model", Err: fmt.Errorf("%w: %w", ErrModelUnavailable, err)}
	}
	return EstimateBedtime(model, in, clock)
}

// referenceDay anchors time-of-day arithmetic; any fixed date works.
var referenceDay = time.Date(2000, time.January, 2, 0, 0, 0, 0, time.UTC)

// EstimateBedtime computes wake time minus the predicted sleep duration.
// Ranges are not checked here; the form enforces them.
func EstimateBedtime(model regression.Model, in models.UserInputs, clock Clock) (models.Prediction, error) {
	if model == nil {
		return models.Prediction{}, &EstimationError{Op: "load model", Err: ErrModelUnavailable}
	}

	features := regression.Features{
		Wake:           float64(in.WakeTime.SecondsSinceMidnight()),
		EstimatedSleep: in.SleepHours,
		Coffee:         float64(in.CoffeeCups),
	}
	seconds, err := predict(model, features)
	if err != nil {
		return models.Prediction{}, &EstimationError{Op: "predict", Err: err}
	}
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds <= 0 || seconds >= maxSleepSeconds {
		return models.Prediction{}, &EstimationError{
			Op:  "predict",
			Err: fmt.Errorf("%w: %v seconds", ErrInvalidPrediction, seconds),
		}
	}

	wake := in.WakeTime.On(referenceDay)
	bed := wake.Add(-time.Duration(seconds * float64(time.Second)))

	return models.Prediction{
		Bedtime:            models.TimeOfDayFromTime(bed),
		Formatted:          clock.Format(bed),
		ActualSleepSeconds: seconds,
	}, nil
}

// predict shields callers from a panicking model.
func predict(model regression.Model, f regression.Features) (seconds float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("model panicked: %v", r)
		}
	}()
	return model.Predict(f)
}

// AlertFor converts an estimate into what the user is shown. Errors stop here.
func AlertFor(p models.Prediction, err error) models.Alert {
	if err != nil {
		return models.Alert{Title: models.AlertTitleError, Message: models.AlertMessageError}
	}
	return models.Alert{Title: models.AlertTitleSuccess, Message: p.Formatted}
}
