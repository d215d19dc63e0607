package regression

import (
	"errors"
	"os"
	"sync"
	"testing"
)

func TestLoad_UnknownKind(t *testing.T) {
	if _, _, err := Load(Config{Kind: "coreml"}); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestLoad_Linear(t *testing.T) {
	path := writeArtifact(t, sampleArtifact)
	m, info, err := Load(Config{Kind: KindLinear, Path: path})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m == nil || info.Name != "SleepCalculator" || info.Version != "1.0" || info.Kind != KindLinear {
		t.Fatalf("unexpected info: %+v", info)
	}
	if info.LoadedAt.IsZero() {
		t.Fatalf("LoadedAt must be set")
	}
}

func TestProvider_LazyLoadAndRetry(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/model.yml"
	p := NewProvider(Config{Kind: KindLinear, Path: path})

	if _, ok := p.Info(); ok {
		t.Fatalf("nothing should be loaded yet")
	}
	if _, err := p.Model(); err == nil {
		t.Fatalf("expected error while artifact is missing")
	}

	if err := os.WriteFile(path, []byte(sampleArtifact), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	m, err := p.Model()
	if err != nil || m == nil {
		t.Fatalf("Model after artifact appeared: %v", err)
	}
	if info, ok := p.Info(); !ok || info.Name != "SleepCalculator" {
		t.Fatalf("unexpected info: %+v ok=%v", info, ok)
	}
	if p.ArtifactPath() != path {
		t.Fatalf("ArtifactPath = %q", p.ArtifactPath())
	}
}

func TestProvider_ReloadKeepsPreviousOnFailure(t *testing.T) {
	path := writeArtifact(t, sampleArtifact)
	p := NewProvider(Config{Kind: KindLinear, Path: path})
	before, err := p.Model()
	if err != nil {
		t.Fatalf("Model: %v", err)
	}

	if err := os.WriteFile(path, []byte("intercept: ["), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := p.Reload(); err == nil {
		t.Fatalf("expected reload error")
	}
	after, err := p.Model()
	if err != nil || after != before {
		t.Fatalf("expected previous model to be kept")
	}

	if err := os.WriteFile(path, []byte("intercept: 0\ncoefficients:\n  estimated_sleep: 3000\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := p.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	m, _ := p.Model()
	got, _ := m.Predict(Features{EstimatedSleep: 8})
	if got != 24000 {
		t.Fatalf("reloaded model predicted %v, want 24000", got)
	}
}

func TestProvider_ConcurrentFirstLoad(t *testing.T) {
	var calls int
	var mu sync.Mutex
	p := &Provider{load: func() (Model, Info, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		return ModelFunc(func(Features) (float64, error) { return 1, nil }), Info{Name: "stub"}, nil
	}}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := p.Model(); err != nil {
				t.Errorf("Model: %v", err)
			}
		}()
	}
	wg.Wait()
	if calls != 1 {
		t.Fatalf("expected a single load, got %d", calls)
	}
}

func TestFailingAndStaticProviders(t *testing.T) {
	boom := errors.New("boom")
	if _, err := FailingProvider(boom).Model(); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	stub := ModelFunc(func(Features) (float64, error) { return 42, nil })
	m, err := StaticProvider(stub, Info{Name: "stub"}).Model()
	if err != nil {
		t.Fatalf("Model: %v", err)
	}
	if v, _ := m.Predict(Features{}); v != 42 {
		t.Fatalf("Predict = %v", v)
	}
}
