// Package app wires the resource coordinator, the mesh loader, the
// animation driver and the mesh switcher into one cooperative update loop.
// Every method must be called from the main loop goroutine.
package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/Faultbox/meshease/internal/animation"
	"github.com/Faultbox/meshease/internal/config"
	"github.com/Faultbox/meshease/internal/easing"
	"github.com/Faultbox/meshease/internal/mesh"
	"github.com/Faultbox/meshease/internal/resource"
	"github.com/Faultbox/meshease/internal/scene"
)

// Phase is the coarse loading progress shown by the front-ends.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseShaders
	PhaseMeshes
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseShaders:
		return "loading shaders"
	case PhaseMeshes:
		return "loading meshes"
	case PhaseReady:
		return "ready"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// App owns the shared state of one experiment.
type App struct {
	cfg *config.Config
	log *zap.Logger

	fetcher resource.Fetcher
	source  mesh.Source
	rng     *rand.Rand

	registry    *resource.Registry
	coordinator *resource.Coordinator
	watcher     *resource.Watcher
	descs       []resource.Descriptor

	scene    *scene.Scene
	loader   *scene.Loader
	uniforms *animation.Uniforms
	driver   *animation.Driver
	switcher *scene.Switcher
	controls animation.Controls

	ctx     context.Context
	phase   Phase
	errs    []error
	onReady []func()
}

// Option configures an App.
type Option func(*App)

// WithFetcher replaces the shader fetcher.
func WithFetcher(f resource.Fetcher) Option {
	return func(a *App) { a.fetcher = f }
}

// WithMeshSource replaces the mesh loader backend.
func WithMeshSource(s mesh.Source) Option {
	return func(a *App) { a.source = s }
}

// WithRand sets the jitter source.
func WithRand(r *rand.Rand) Option {
	return func(a *App) { a.rng = r }
}

// WithLogger sets the parent logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) { a.log = l }
}

// New builds an App from cfg. Nothing is loaded until Start.
func New(cfg *config.Config, opts ...Option) (*App, error) {
	controls, err := ControlsFromConfig(cfg.Animation)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:      cfg,
		log:      zap.NewNop(),
		fetcher:  resource.SourceFetcher{},
		source:   mesh.GLTFSource{},
		controls: controls,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.rng == nil {
		a.rng = mesh.NewSeededRand(cfg.Meshes.Seed)
	}

	a.registry = resource.NewRegistry()
	a.coordinator = resource.NewCoordinator(a.registry, a.fetcher, a.log.Named("resource"),
		resource.WithMaxConcurrent(cfg.Resources.MaxConcurrent),
		resource.WithTimeout(cfg.Resources.Timeout))

	a.scene = &scene.Scene{
		Particles: scene.NewParticles(a.rng, scene.ParticleCount, scene.ParticleExtent),
	}
	pre := mesh.NewPreprocessor(a.rng, a.log.Named("mesh"))
	a.loader = scene.NewLoader(a.scene, a.source, pre,
		scene.Paths{Monkey: cfg.Meshes.Monkey, Helix: cfg.Meshes.Helix}, a.log.Named("scene"))
	a.loader.SetTimeout(cfg.Resources.Timeout)

	a.uniforms = animation.NewUniforms()
	a.driver = animation.NewDriver(a.uniforms, a.log.Named("animation"))
	a.switcher = scene.NewSwitcher(a.scene, a.uniforms, controls.Mesh, a.log.Named("scene"))
	return a, nil
}

// ControlsFromConfig decodes the initial control values.
func ControlsFromConfig(c config.AnimationConfig) (animation.Controls, error) {
	family, err := easing.ParseFamily(c.Easing)
	if err != nil {
		return animation.Controls{}, fmt.Errorf("animation.easing: %w", err)
	}
	kind, err := animation.ParseMeshKind(c.Mesh)
	if err != nil {
		return animation.Controls{}, fmt.Errorf("animation.mesh: %w", err)
	}
	return animation.Controls{
		Easing:    family,
		Magnitude: c.Magnitude,
		Offset:    c.Offset,
		Duration:  c.Duration,
		Mesh:      kind,
		Crazy:     c.Crazy,
	}, nil
}

// OnReady registers fn to run once both meshes are in the scene.
func (a *App) OnReady(fn func()) {
	a.onReady = append(a.onReady, fn)
}

// Start discovers the shader descriptors and issues every fetch. The mesh
// loads begin once the shader set is complete. A missing markup page is
// recorded and treated as an empty shader set.
func (a *App) Start(ctx context.Context) {
	if a.phase != PhaseIdle {
		return
	}
	a.ctx = ctx
	a.phase = PhaseShaders

	descs, err := resource.Discover(a.cfg.Resources.Markup)
	if err != nil {
		a.fail(fmt.Errorf("discover shaders: %w", err))
	}
	a.descs = descs

	if a.cfg.Resources.Watch && len(descs) > 0 {
		w, err := resource.NewWatcher(descs, a.fetcher, a.log.Named("watch"))
		if err != nil {
			a.fail(err)
		} else {
			a.watcher = w
			w.Start(ctx)
		}
	}

	a.coordinator.Start(ctx, descs, a.shadersLoaded)
}

func (a *App) shadersLoaded() {
	if !a.registry.Usable(a.cfg.Resources.Program) {
		a.log.Warn("shader program incomplete, using fallback",
			zap.String("program", a.cfg.Resources.Program))
	}
	a.phase = PhaseMeshes
	a.loader.Start(a.ctx, a.meshesLoaded)
}

func (a *App) meshesLoaded() {
	a.phase = PhaseReady
	a.switcher.Switch(a.controls.Mesh)
	a.log.Info("scene ready", zap.Stringer("mesh", a.controls.Mesh))
	for _, fn := range a.onReady {
		fn()
	}
}

func (a *App) fail(err error) {
	a.errs = append(a.errs, err)
	a.log.Error("load failed", zap.Error(err))
}

// Update runs one cooperative tick: applies finished loads and reloads,
// then advances the frame counter.
func (a *App) Update() {
	a.coordinator.Poll()
	a.loader.Poll()
	if a.watcher != nil {
		a.watcher.Poll(a.registry)
	}
	a.driver.Tick(a.loader.State().Any())
}

// Close stops background watchers.
func (a *App) Close() error {
	if a.watcher != nil {
		return a.watcher.Close()
	}
	return nil
}

// Go triggers the next expand or contract with the current controls.
func (a *App) Go() {
	a.driver.Go(a.controls)
}

// SetMesh selects the visible target.
func (a *App) SetMesh(kind animation.MeshKind) {
	a.controls.Mesh = kind
	a.switcher.Switch(kind)
}

// SetControls replaces the control values. A mesh change is forwarded to
// the switcher; the rest applies on the next Go.
func (a *App) SetControls(c animation.Controls) {
	prev := a.controls.Mesh
	a.controls = c
	if c.Mesh != prev {
		a.switcher.Switch(c.Mesh)
	}
}

// Controls returns the current control values.
func (a *App) Controls() animation.Controls {
	return a.controls
}

// Phase returns the loading progress.
func (a *App) Phase() Phase {
	return a.phase
}

// Status describes the loading progress for display.
func (a *App) Status() string {
	switch a.phase {
	case PhaseShaders:
		return fmt.Sprintf("%s (%d of %d pending)", a.phase, a.coordinator.Pending(), len(a.descs))
	case PhaseMeshes:
		return fmt.Sprintf("%s (%s)", a.phase, a.loader.State())
	}
	return a.phase.String()
}

// Err returns every load failure so far, nil if none.
func (a *App) Err() error {
	return errors.Join(append(append([]error(nil), a.errs...), a.loader.Err())...)
}

// Scene returns the loaded targets.
func (a *App) Scene() *scene.Scene {
	return a.scene
}

// Uniforms returns the shared uniform set.
func (a *App) Uniforms() *animation.Uniforms {
	return a.uniforms
}

// ShaderPair returns the configured program's sources.
func (a *App) ShaderPair() (resource.ShaderPair, bool) {
	return a.registry.Lookup(a.cfg.Resources.Program)
}

// Driver exposes the animation driver for status display.
func (a *App) Driver() *animation.Driver {
	return a.driver
}

// Config returns the configuration the app was built with.
func (a *App) Config() *config.Config {
	return a.cfg
}
