package regression

import (
	"fmt"
	"sync"
	"time"
)

// Config selects and locates an artifact.
type Config struct {
	Kind       string
	Path       string // linear
	Expression string // expression
}

// Load builds a model from cfg.
func Load(cfg Config) (Model, Info, error) {
	info := Info{Kind: cfg.Kind, LoadedAt: time.Now().UTC()}
	switch cfg.Kind {
	case KindLinear:
		m, err := LoadLinear(cfg.Path)
		if err != nil {
			return nil, Info{}, err
		}
		info.Name = m.artifact.Name
		info.Version = m.artifact.Version
		return m, info, nil
	case KindExpression:
		m, err := NewExpressionModel(cfg.Expression)
		if err != nil {
			return nil, Info{}, err
		}
		info.Name = "expression"
		return m, info, nil
	default:
		return nil, Info{}, fmt.Errorf("%w: %q", ErrUnknownKind, cfg.Kind)
	}
}

type loadFunc func() (Model, Info, error)

// Provider holds the current model. The first Model call loads it; a failed
// load is retried on the next call. Safe for concurrent use.
type Provider struct {
	load loadFunc
	path string

	mu    sync.RWMutex
	model Model
	info  Info
}

func NewProvider(cfg Config) *Provider {
	return &Provider{
		load: func() (Model, Info, error) { return Load(cfg) },
		path: cfg.Path,
	}
}

// StaticProvider always serves m. Used for tests and embedded models.
func StaticProvider(m Model, info Info) *Provider {
	return &Provider{
		load: func() (Model, Info, error) { return m, info, nil },
	}
}

// FailingProvider never produces a model.
func FailingProvider(err error) *Provider {
	return &Provider{
		load: func() (Model, Info, error) { return nil, Info{}, err },
	}
}

// Model returns the loaded model, loading it if necessary.
func (p *Provider) Model() (Model, error) {
	p.mu.RLock()
	m := p.model
	p.mu.RUnlock()
	if m != nil {
		return m, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.model != nil {
		return p.model, nil
	}
	m, info, err := p.load()
	if err != nil {
		return nil, err
	}
	p.model, p.info = m, info
	return m, nil
}

// Reload replaces the model. On failure the previous model stays in place.
func (p *Provider) Reload() error {
	m, info, err := p.load()
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.model, p.info = m, info
	p.mu.Unlock()
	return nil
}

// Info reports the loaded artifact; ok is false before the first load.
func (p *Provider) Info() (Info, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.info, p.model != nil
}

// ArtifactPath is the file backing the model, empty when there is none.
func (p *Provider) ArtifactPath() string { return p.path }
