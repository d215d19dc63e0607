package regression

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const KindLinear = "linear"

// LinearArtifact is the on-disk form of a linear regression model.
type LinearArtifact struct {
	Name         string             `yaml:"name"`
	Version      string             `yaml:"version"`
	Intercept    float64            `yaml:"intercept"`
	Coefficients LinearCoefficients `yaml:"coefficients"`
}

type LinearCoefficients struct {
	Wake           float64 `yaml:"wake"`
	EstimatedSleep float64 `yaml:"estimated_sleep"`
	Coffee         float64 `yaml:"coffee"`
}

// LinearModel evaluates intercept + w·features.
type LinearModel struct {
	artifact LinearArtifact
}

// NewLinearModel validates the artifact values.
func NewLinearModel(a LinearArtifact) (*LinearModel, error) {
	values := []float64{a.Intercept, a.Coefficients.Wake, a.Coefficients.EstimatedSleep, a.Coefficients.Coffee}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: non-finite coefficient", ErrInvalidArtifact)
		}
	}
	if a.Coefficients == (LinearCoefficients{}) {
		return nil, fmt.Errorf("%w: all coefficients are zero", ErrInvalidArtifact)
	}
	return &LinearModel{artifact: a}, nil
}

// LoadLinear reads a YAML artifact. Unknown fields are rejected.
func LoadLinear(path string) (*LinearModel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact %q: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var a LinearArtifact
	if err := dec.Decode(&a); err != nil {
		return nil, fmt.Errorf("%w: decode %q: %v", ErrInvalidArtifact, path, err)
	}
	return NewLinearModel(a)
}

func (m *LinearModel) Predict(f Features) (float64, error) {
	c := m.artifact.Coefficients
	out := m.artifact.Intercept +
		c.Wake*f.Wake +
		c.EstimatedSleep*f.EstimatedSleep +
		c.Coffee*f.Coffee
	if math.IsNaN(out) || math.IsInf(out, 0) {
		return 0, ErrNonNumeric
	}
	return out, nil
}

func (m *LinearModel) Artifact() LinearArtifact { return m.artifact }
