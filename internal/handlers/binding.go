package handlers

import (
	"math"
	"sync"

	"betterrest/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// InputsRequest is the body of PUT /form, POST /bedtime/calculate and of
// every WebSocket preview message.
type InputsRequest struct {
	// Wake-up time, 24-hour HH:MM
	WakeTime string `json:"wake_time" binding:"required,hhmm" example:"07:00"`
	// Desired sleep in hours, 4 to 12 in quarter-hour steps
	SleepHours float64 `json:"sleep_hours" binding:"required,gte=4,lte=12,quarter" example:"8"`
	// Daily coffee intake in cups
	CoffeeCups int `json:"coffee_cups" binding:"gte=0,lte=10" example:"1"`
}

// toInputs converts a bound request. Binding already checked every field,
// the parse error is only reachable when validation was skipped.
func (r InputsRequest) toInputs() (models.UserInputs, error) {
	wake, err := models.ParseTimeOfDay(r.WakeTime)
	if err != nil {
		return models.UserInputs{}, err
	}
	in := models.UserInputs{WakeTime: wake, SleepHours: r.SleepHours, CoffeeCups: r.CoffeeCups}
	return in, in.Validate()
}

// StepRequest moves a stepper control. Negative steps go down.
type StepRequest struct {
	Steps int `json:"steps" binding:"required,min=-100,max=100" example:"1"`
}

var validatorsOnce sync.Once

// registerValidators adds the custom tags to gin's validator engine.
func registerValidators() {
	validatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("hhmm", validateHHMM)
		_ = v.RegisterValidation("quarter", validateQuarter)
	})
}

func validateHHMM(fl validator.FieldLevel) bool {
	_, err := models.ParseTimeOfDay(fl.Field().String())
	return err == nil
}

func validateQuarter(fl validator.FieldLevel) bool {
	q := fl.Field().Float() / models.SleepHoursStep
	return math.Abs(q-math.Round(q)) < 1e-9
}
