package models

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultInputs(t *testing.T) {
	in := DefaultInputs()
	if in.WakeTime != (TimeOfDay{7, 0}) || in.SleepHours != 8 || in.CoffeeCups != 0 {
		t.Fatalf("unexpected defaults: %+v", in)
	}
	if err := in.Validate(); err != nil {
		t.Fatalf("defaults must be valid: %v", err)
	}
}

func TestUserInputs_Validate(t *testing.T) {
	wake := TimeOfDay{7, 0}
	cases := []struct {
		name string
		in   UserInputs
		want error
	}{
		{"lower bound", UserInputs{wake, 4, 0}, nil},
		{"upper bound", UserInputs{wake, 12, 10}, nil},
		{"quarter step", UserInputs{wake, 7.75, 3}, nil},
		{"below range", UserInputs{wake, 3.75, 0}, ErrSleepOutOfRange},
		{"above range", UserInputs{wake, 12.25, 0}, ErrSleepOutOfRange},
		{"nan sleep", UserInputs{wake, math.NaN(), 0}, ErrSleepOutOfRange},
		{"off step", UserInputs{wake, 8.1, 0}, ErrSleepStep},
		{"too much coffee", UserInputs{wake, 8, 11}, ErrCoffeeOutOfRange},
		{"negative coffee", UserInputs{wake, 8, -1}, ErrCoffeeOutOfRange},
		{"bad wake", UserInputs{TimeOfDay{24, 0}, 8, 0}, ErrInvalidTimeOfDay},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
			if !errors.Is(err, tc.want) {
				t.Fatalf("Validate() = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestForm_StepSleepClamps(t *testing.T) {
	f := Form{UserInputs: DefaultInputs()}
	f.StepSleep(1)
	if f.SleepHours != 8.25 {
		t.Fatalf("after +1: %v", f.SleepHours)
	}
	f.StepSleep(-3)
	if f.SleepHours != 7.5 {
		t.Fatalf("after -3: %v", f.SleepHours)
	}
	f.StepSleep(100)
	if f.SleepHours != MaxSleepHours {
		t.Fatalf("expected clamp to %v, got %v", MaxSleepHours, f.SleepHours)
	}
	f.StepSleep(-100)
	if f.SleepHours != MinSleepHours {
		t.Fatalf("expected clamp to %v, got %v", MinSleepHours, f.SleepHours)
	}
}

func TestForm_StepCoffeeClamps(t *testing.T) {
	f := Form{UserInputs: DefaultInputs()}
	f.StepCoffee(-1)
	if f.CoffeeCups != 0 {
		t.Fatalf("expected 0, got %d", f.CoffeeCups)
	}
	f.StepCoffee(4)
	if f.CoffeeCups != 4 {
		t.Fatalf("expected 4, got %d", f.CoffeeCups)
	}
	f.StepCoffee(20)
	if f.CoffeeCups != MaxCoffeeCups {
		t.Fatalf("expected %d, got %d", MaxCoffeeCups, f.CoffeeCups)
	}
}
