package regression

import (
	"errors"
	"testing"
)

func TestExpressionModel_Predict(t *testing.T) {
	m, err := NewExpressionModel("1200.0 - wake * 0.01 + estimatedSleep * 3600.0 + coffee * 540.0")
	if err != nil {
		t.Fatalf("NewExpressionModel: %v", err)
	}
	got, err := m.Predict(Features{Wake: 25200, EstimatedSleep: 8, Coffee: 2})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if want := 1200.0 - 252 + 28800 + 1080; got != want {
		t.Fatalf("Predict = %v, want %v", got, want)
	}
}

func TestExpressionModel_IntResult(t *testing.T) {
	m, err := NewExpressionModel("28800")
	if err != nil {
		t.Fatalf("NewExpressionModel: %v", err)
	}
	got, err := m.Predict(Features{})
	if err != nil || got != 28800 {
		t.Fatalf("Predict = %v, %v", got, err)
	}
}

func TestExpressionModel_CompileErrors(t *testing.T) {
	cases := map[string]string{
		"syntax":        "wake *",
		"unknown var":   "caffeine * 2.0",
		"non numeric":   "wake > 1.0",
		"string result": `"eight hours"`,
	}
	for name, expr := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := NewExpressionModel(expr); !errors.Is(err, ErrInvalidArtifact) {
				t.Fatalf("expected ErrInvalidArtifact, got %v", err)
			}
		})
	}
}

func TestExpressionModel_EvalError(t *testing.T) {
	m, err := NewExpressionModel("int(wake) / int(coffee)")
	if err != nil {
		t.Fatalf("NewExpressionModel: %v", err)
	}
	if _, err := m.Predict(Features{Wake: 1, Coffee: 0}); err == nil {
		t.Fatalf("expected division by zero error")
	}
}
