package service

import (
	"time"

	"betterrest/internal/models"
)

// Calculation is the outcome of pressing Calculate.
type Calculation struct {
	Inputs     models.UserInputs  `json:"inputs"`
	Alert      models.Alert       `json:"alert"`
	Prediction *models.Prediction `json:"prediction,omitempty"`
}

// HistoryFilter narrows the history listing.
type HistoryFilter struct {
	From    time.Time // inclusive; zero means no lower bound
	To      time.Time // inclusive; zero means no upper bound
	Outcome string    // "", "success", "failure"
}
