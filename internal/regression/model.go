// Package regression holds the pre-trained sleep model the estimator calls.
// The estimator only sees the Model interface; artifacts are swappable.
package regression

import (
	"errors"
	"time"
)

// Feature order is fixed: wake, estimated sleep, coffee.
type Features struct {
	Wake           float64 // seconds since midnight
	EstimatedSleep float64 // hours
	Coffee         float64 // cups
}

// Model predicts the actual sleep needed, in seconds.
type Model interface {
	Predict(f Features) (float64, error)
}

// ModelFunc adapts a plain function to Model.
type ModelFunc func(f Features) (float64, error)

func (fn ModelFunc) Predict(f Features) (float64, error) { return fn(f) }

// Info describes the currently loaded artifact.
type Info struct {
	Kind     string    `json:"kind"`
	Name     string    `json:"name"`
	Version  string    `json:"version,omitempty"`
	LoadedAt time.Time `json:"loaded_at"`
}

var (
	ErrUnknownKind     = errors.New("unknown model kind")
	ErrInvalidArtifact = errors.New("invalid model artifact")
	ErrNonNumeric      = errors.New("model produced a non-numeric result")
)
