package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/Faultbox/meshease/internal/animation"
	"github.com/Faultbox/meshease/internal/config"
	"github.com/Faultbox/meshease/internal/easing"
	"github.com/Faultbox/meshease/internal/mesh"
	"github.com/Faultbox/meshease/internal/resource"
	"github.com/Faultbox/meshease/internal/scene"
	"github.com/Faultbox/meshease/pkg/math"
)

const page = `<html><head>
<script type="x-shader/x-vertex" data-name="Sphere" data-src="sphere.vert"></script>
<script type="x-shader/x-fragment" data-name="Sphere" data-src="sphere.frag"></script>
</head></html>`

type fakeSource struct {
	mu    sync.Mutex
	calls []string
	fail  map[string]error
}

func (s *fakeSource) Load(_ context.Context, path string) (mesh.Geometry, error) {
	s.mu.Lock()
	s.calls = append(s.calls, path)
	s.mu.Unlock()
	if err := s.fail[path]; err != nil {
		return mesh.Geometry{}, err
	}
	return mesh.Geometry{Positions: []math.Vec3{{Y: -2}, {X: 1, Y: 2}, {Z: 1}}}, nil
}

func (s *fakeSource) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func testConfig(t *testing.T, markup string) *config.Config {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.html")
	if err := os.WriteFile(path, []byte(markup), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.Resources.Markup = path
	cfg.Meshes.Seed = 1
	return cfg
}

func echoFetcher() resource.Fetcher {
	return resource.FetcherFunc(func(_ context.Context, d resource.Descriptor) (string, error) {
		return "// " + d.Kind.String(), nil
	})
}

func runUntil(t *testing.T, a *App, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out: %s", a.Status())
		}
		a.Update()
		time.Sleep(time.Millisecond)
	}
}

func TestAppReachesReady(t *testing.T) {
	src := &fakeSource{}
	a, err := New(testConfig(t, page),
		WithFetcher(echoFetcher()), WithMeshSource(src), WithLogger(zaptest.NewLogger(t)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	readyCalls := 0
	a.OnReady(func() { readyCalls++ })
	a.Start(context.Background())
	runUntil(t, a, func() bool { return a.Phase() == PhaseReady })

	for i := 0; i < 3; i++ {
		a.Update()
	}
	if readyCalls != 1 {
		t.Errorf("expected 1 ready callback, got %d", readyCalls)
	}
	if src.callCount() != 2 {
		t.Errorf("expected exactly 2 mesh loads, got %d", src.callCount())
	}

	pair, ok := a.ShaderPair()
	if !ok || !pair.Usable() {
		t.Errorf("expected usable Sphere pair, got %+v", pair)
	}
	if err := a.Err(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	s := a.Scene()
	if !s.Monkey.Parts[0].Visible {
		t.Error("expected monkey visible by default")
	}
	for _, p := range s.Helix.Parts {
		if p.Visible {
			t.Errorf("expected %s hidden", p.Name)
		}
	}
	if u := a.Uniforms(); u.Period != 0.07 || u.MaxY != s.Monkey.MaxY {
		t.Errorf("expected monkey constants in uniforms, got %+v", *u)
	}
}

func TestAppMeshesWaitForShaders(t *testing.T) {
	release := make(chan struct{})
	fetch := resource.FetcherFunc(func(ctx context.Context, d resource.Descriptor) (string, error) {
		select {
		case <-release:
		case <-ctx.Done():
		}
		return "src", nil
	})
	src := &fakeSource{}
	a, err := New(testConfig(t, page), WithFetcher(fetch), WithMeshSource(src))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	a.Start(context.Background())

	for i := 0; i < 10; i++ {
		a.Update()
	}
	if a.Phase() != PhaseShaders {
		t.Errorf("expected shader phase, got %s", a.Phase())
	}
	if src.callCount() != 0 {
		t.Errorf("mesh loads started before shaders completed: %d", src.callCount())
	}

	close(release)
	runUntil(t, a, func() bool { return a.Phase() == PhaseReady })
}

func TestAppNoShadersStillLoadsMeshes(t *testing.T) {
	src := &fakeSource{}
	a, err := New(testConfig(t, "<html></html>"), WithMeshSource(src))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	a.Start(context.Background())
	if a.Phase() != PhaseMeshes {
		t.Errorf("expected empty shader set to complete synchronously, got %s", a.Phase())
	}
	runUntil(t, a, func() bool { return a.Phase() == PhaseReady })
	if _, ok := a.ShaderPair(); ok {
		t.Error("expected no shader pair")
	}
}

func TestAppMissingMarkup(t *testing.T) {
	cfg := config.Default()
	cfg.Resources.Markup = filepath.Join(t.TempDir(), "missing.html")
	a, err := New(cfg, WithMeshSource(&fakeSource{}))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	a.Start(context.Background())
	if !errors.Is(a.Err(), resource.ErrNoMarkup) {
		t.Errorf("expected ErrNoMarkup, got %v", a.Err())
	}
	runUntil(t, a, func() bool { return a.Phase() == PhaseReady })
}

func TestAppMeshFailureIsVisible(t *testing.T) {
	cfg := testConfig(t, page)
	src := &fakeSource{fail: map[string]error{cfg.Meshes.Helix: errors.New("corrupt")}}
	a, err := New(cfg, WithFetcher(echoFetcher()), WithMeshSource(src))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	a.Start(context.Background())
	runUntil(t, a, func() bool { return a.Err() != nil })
	runUntil(t, a, func() bool { return a.Scene().Monkey != nil })

	if a.Phase() != PhaseMeshes {
		t.Errorf("expected to stay in mesh phase, got %s", a.Phase())
	}

	// The monkey alone keeps the clock running.
	frame := a.Driver().Frame()
	a.Update()
	if a.Driver().Frame() != frame+1 {
		t.Errorf("expected frame counter to advance with one mesh loaded")
	}
}

func TestAppGoAndSwitch(t *testing.T) {
	a, err := New(testConfig(t, page), WithFetcher(echoFetcher()), WithMeshSource(&fakeSource{}))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// No mesh loaded yet: the clock stands still.
	a.Update()
	if a.Uniforms().T != 0 || a.Driver().Frame() != 0 {
		t.Error("expected no ticks before any mesh loads")
	}

	a.Start(context.Background())
	runUntil(t, a, func() bool { return a.Phase() == PhaseReady })

	a.Go()
	u := a.Uniforms()
	if u.C != -1 || u.D < 107.999 || u.D > 108.001 || u.E != 1 {
		t.Errorf("unexpected uniforms after Go: %+v", *u)
	}
	a.Update()
	a.Update()
	if u.T != 2 {
		t.Errorf("expected t 2, got %v", u.T)
	}

	a.SetMesh(animation.Helix)
	if u.Period != 0.035 || u.YScale != 0 {
		t.Errorf("expected helix constants, got %+v", *u)
	}
	if u.T != 2 || u.C != -1 {
		t.Errorf("switch must not reset time or direction, got %+v", *u)
	}

	c := a.Controls()
	c.Mesh = animation.Monkey
	c.Easing = easing.Back
	a.SetControls(c)
	if u.Period != 0.07 {
		t.Errorf("expected monkey constants after SetControls, got %+v", *u)
	}
	if u.E != 1 {
		t.Errorf("easing must only change on Go, got e=%v", u.E)
	}
	a.Go()
	if u.E != 4 || u.C != 1 {
		t.Errorf("expected back easing contracting, got %+v", *u)
	}
}

func TestControlsFromConfig(t *testing.T) {
	c, err := ControlsFromConfig(config.Default().Animation)
	if err != nil {
		t.Fatalf("ControlsFromConfig failed: %v", err)
	}
	if c != animation.DefaultControls() {
		t.Errorf("expected defaults %+v, got %+v", animation.DefaultControls(), c)
	}

	bad := config.Default().Animation
	bad.Easing = "bounce"
	if _, err := ControlsFromConfig(bad); err == nil {
		t.Error("expected error for unknown easing")
	}
	if _, err := New(&config.Config{Animation: bad}); err == nil {
		t.Error("expected New to reject unknown easing")
	}
}

func TestPhaseStrings(t *testing.T) {
	for _, p := range []Phase{PhaseIdle, PhaseShaders, PhaseMeshes, PhaseReady} {
		if p.String() == "" {
			t.Errorf("empty name for phase %d", p)
		}
	}
}

func TestAppParticleField(t *testing.T) {
	cfg := testConfig(t, page)
	a, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	b, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	pa, pb := a.Scene().Particles, b.Scene().Particles
	if len(pa) != scene.ParticleCount {
		t.Fatalf("expected %d particles, got %d", scene.ParticleCount, len(pa))
	}
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("expected the seed to fix particle %d, got %+v and %+v", i, pa[i], pb[i])
		}
	}
}
