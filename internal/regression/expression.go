package regression

import (
	"fmt"
	"math"

	"github.com/google/cel-go/cel"
)

const KindExpression = "expression"

// Variables visible to expressions.
const (
	varWake           = "wake"
	varEstimatedSleep = "estimatedSleep"
	varCoffee         = "coffee"
)

// expressionCostLimit bounds evaluation of a single prediction.
const expressionCostLimit = 10_000

// ExpressionModel is a regression exported as a CEL arithmetic expression.
type ExpressionModel struct {
	source  string
	program cel.Program
}

// NewExpressionModel compiles and type-checks expr. It must yield a number.
func NewExpressionModel(expr string) (*ExpressionModel, error) {
	env, err := cel.NewEnv(
		cel.Variable(varWake, cel.DoubleType),
		cel.Variable(varEstimatedSleep, cel.DoubleType),
		cel.Variable(varCoffee, cel.DoubleType),
	)
	if err != nil {
		return nil, fmt.Errorf("create CEL environment: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("%w: compile: %v", ErrInvalidArtifact, issues.Err())
	}
	out := ast.OutputType()
	if !out.IsExactType(cel.DoubleType) && !out.IsExactType(cel.IntType) {
		return nil, fmt.Errorf("%w: expression yields %s, want double", ErrInvalidArtifact, out)
	}

	prog, err := env.Program(ast, cel.CostLimit(expressionCostLimit))
	if err != nil {
		return nil, fmt.Errorf("%w: program: %v", ErrInvalidArtifact, err)
	}
	return &ExpressionModel{source: expr, program: prog}, nil
}

func (m *ExpressionModel) Predict(f Features) (float64, error) {
	val, _, err := m.program.Eval(map[string]any{
		varWake:           f.Wake,
		varEstimatedSleep: f.EstimatedSleep,
		varCoffee:         f.Coffee,
	})
	if err != nil {
		return 0, fmt.Errorf("evaluate expression: %w", err)
	}

	var out float64
	switch v := val.Value().(type) {
	case float64:
		out = v
	case int64:
		out = float64(v)
	default:
		return 0, ErrNonNumeric
	}
	if math.IsNaN(out) || math.IsInf(out, 0) {
		return 0, ErrNonNumeric
	}
	return out, nil
}

func (m *ExpressionModel) Source() string { return m.source }
