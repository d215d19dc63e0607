package models

// Alert titles and messages shown after a calculation.
const (
	AlertTitleSuccess = "Your ideal bedtime is..."
	AlertTitleError   = "Error"
	AlertMessageError = "Sorry, there was a problem calculating your bedtime."
)

// Prediction is the outcome of a successful bedtime estimate.
type Prediction struct {
	Bedtime            TimeOfDay `json:"bedtime"`
	Formatted          string    `json:"formatted"`
	ActualSleepSeconds float64   `json:"actual_sleep_seconds"`
}

// Alert is what the user sees after pressing Calculate.
type Alert struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// IsError reports whether the alert carries the generic failure message.
func (a Alert) IsError() bool {
	return a.Title == AlertTitleError
}
