package models

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Bounds of the form controls.
const (
	MinSleepHours  = 4.0
	MaxSleepHours  = 12.0
	SleepHoursStep = 0.25
	MinCoffeeCups  = 0
	MaxCoffeeCups  = 10
	CoffeeCupsStep = 1

	DefaultSleepHours = 8.0
	DefaultCoffeeCups = 0
)

// DefaultWakeTime is the wake time a fresh form starts with.
var DefaultWakeTime = TimeOfDay{Hour: 7, Minute: 0}

var (
	ErrSleepOutOfRange  = fmt.Errorf("desired sleep must be within %.0f..%.0f hours", MinSleepHours, MaxSleepHours)
	ErrSleepStep        = fmt.Errorf("desired sleep must be a multiple of %.2f hours", SleepHoursStep)
	ErrCoffeeOutOfRange = fmt.Errorf("coffee intake must be within %d..%d cups", MinCoffeeCups, MaxCoffeeCups)
	ErrWakeTimeRequired = errors.New("wake time is required")
)

// UserInputs is the snapshot the estimator works on.
type UserInputs struct {
	WakeTime   TimeOfDay `json:"wake_time"`
	SleepHours float64   `json:"sleep_hours"`
	CoffeeCups int       `json:"coffee_cups"`
}

// DefaultInputs mirrors the initial state of the form.
func DefaultInputs() UserInputs {
	return UserInputs{
		WakeTime:   DefaultWakeTime,
		SleepHours: DefaultSleepHours,
		CoffeeCups: DefaultCoffeeCups,
	}
}

// Validate enforces the constraints of the input controls.
func (in UserInputs) Validate() error {
	if !in.WakeTime.Valid() {
		return ErrInvalidTimeOfDay
	}
	if math.IsNaN(in.SleepHours) || in.SleepHours < MinSleepHours || in.SleepHours > MaxSleepHours {
		return ErrSleepOutOfRange
	}
	if !isMultipleOf(in.SleepHours, SleepHoursStep) {
		return ErrSleepStep
	}
	if in.CoffeeCups < MinCoffeeCups || in.CoffeeCups > MaxCoffeeCups {
		return ErrCoffeeOutOfRange
	}
	return nil
}

func isMultipleOf(v, step float64) bool {
	q := v / step
	return math.Abs(q-math.Round(q)) < 1e-9
}

// Form is the per-user persisted form state.
type Form struct {
	UserID int `json:"-"`
	UserInputs
	UpdatedAt time.Time `json:"updated_at"`
}

// StepSleep moves the sleep control by steps increments, clamped to its bounds.
func (f *Form) StepSleep(steps int) {
	v := f.SleepHours + float64(steps)*SleepHoursStep
	f.SleepHours = math.Min(MaxSleepHours, math.Max(MinSleepHours, v))
}

// StepCoffee moves the coffee control by steps cups, clamped to its bounds.
func (f *Form) StepCoffee(steps int) {
	v := f.CoffeeCups + steps*CoffeeCupsStep
	if v < MinCoffeeCups {
		v = MinCoffeeCups
	}
	if v > MaxCoffeeCups {
		v = MaxCoffeeCups
	}
	f.CoffeeCups = v
}
