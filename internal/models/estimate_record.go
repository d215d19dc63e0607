package models

import "time"

// Outcome filters for history listing.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// EstimateRecord is a single calculation kept in the history log.
type EstimateRecord struct {
	ID                 string     `json:"id"`
	UserID             int        `json:"-"`
	RequestedAt        time.Time  `json:"requested_at"`
	Inputs             UserInputs `json:"inputs"`
	Success            bool       `json:"success"`
	Bedtime            string     `json:"bedtime,omitempty"` // HH:MM
	ActualSleepSeconds float64    `json:"actual_sleep_seconds,omitempty"`
	Error              string     `json:"error,omitempty"` // internal cause, never shown in alerts
}
