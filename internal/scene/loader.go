package scene

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/meshease/internal/animation"
	"github.com/Faultbox/meshease/internal/mesh"
)

// Paths names the mesh file of each target.
type Paths struct {
	Monkey string
	Helix  string
}

type loadResult struct {
	kind     animation.MeshKind
	geometry mesh.Geometry
	err      error
}

// Loader fetches both targets in the background and preprocesses each one
// on the caller's goroutine when Poll applies it. A failed load is recorded
// and never retried; the state then stays short of ReadyBoth.
type Loader struct {
	source  mesh.Source
	pre     *mesh.Preprocessor
	scene   *Scene
	paths   Paths
	timeout time.Duration
	log     *zap.Logger

	results chan loadResult
	pending int
	state   LoadState
	errs    []error
	onReady func()
	started bool
}

// NewLoader creates a loader that fills scene.
func NewLoader(scene *Scene, source mesh.Source, pre *mesh.Preprocessor, paths Paths, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{
		source:  source,
		pre:     pre,
		scene:   scene,
		paths:   paths,
		log:     log,
		results: make(chan loadResult, 2),
	}
}

// SetTimeout bounds each mesh load. Zero waits forever.
func (l *Loader) SetTimeout(d time.Duration) {
	l.timeout = d
}

// Start issues the two loads. onReady runs once, from Poll or Wait, on the
// transition into ReadyBoth.
func (l *Loader) Start(ctx context.Context, onReady func()) {
	if l.started {
		return
	}
	l.started = true
	l.onReady = onReady
	l.pending = 2

	g, gctx := errgroup.WithContext(ctx)
	for _, job := range []struct {
		kind animation.MeshKind
		path string
	}{
		{animation.Monkey, l.paths.Monkey},
		{animation.Helix, l.paths.Helix},
	} {
		g.Go(func() error {
			l.results <- l.load(gctx, job.kind, job.path)
			return nil
		})
	}
	go func() { _ = g.Wait() }()

	l.log.Info("loading meshes", zap.String("monkey", l.paths.Monkey), zap.String("helix", l.paths.Helix))
}

func (l *Loader) load(ctx context.Context, kind animation.MeshKind, path string) loadResult {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}
	g, err := l.source.Load(ctx, path)
	if err != nil {
		return loadResult{kind: kind, err: fmt.Errorf("load %s mesh: %w", kind, err)}
	}
	return loadResult{kind: kind, geometry: g}
}

// Poll applies finished loads without blocking and reports whether the
// state changed.
func (l *Loader) Poll() bool {
	changed := false
	for l.pending > 0 {
		select {
		case r := <-l.results:
			if l.apply(r) {
				changed = true
			}
		default:
			return changed
		}
	}
	return changed
}

// Wait blocks until both loads have been applied or ctx is done.
func (l *Loader) Wait(ctx context.Context) error {
	for l.pending > 0 {
		select {
		case r := <-l.results:
			l.apply(r)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return l.Err()
}

func (l *Loader) apply(r loadResult) bool {
	l.pending--
	if r.err != nil {
		l.fail(r.err)
		return false
	}

	switch r.kind {
	case animation.Monkey:
		p, err := l.pre.Process(r.geometry, mesh.MonkeyProfile)
		if err != nil {
			l.fail(fmt.Errorf("preprocess monkey: %w", err))
			return false
		}
		l.scene.Monkey = NewMonkey(p)
	case animation.Helix:
		p, err := l.pre.Process(r.geometry, mesh.HelixProfile)
		if err != nil {
			l.fail(fmt.Errorf("preprocess helix: %w", err))
			return false
		}
		l.scene.Helix = NewHelix(p)
	}

	next, entered := l.state.Loaded(r.kind)
	changed := next != l.state
	l.state = next
	l.log.Info("mesh ready", zap.Stringer("mesh", r.kind), zap.Stringer("state", l.state))
	if entered && l.onReady != nil {
		l.onReady()
	}
	return changed
}

func (l *Loader) fail(err error) {
	l.errs = append(l.errs, err)
	l.log.Error("mesh load failed", zap.Error(err))
}

// State returns the current load state.
func (l *Loader) State() LoadState {
	return l.state
}

// Err returns the joined load failures, nil if none.
func (l *Loader) Err() error {
	return errors.Join(l.errs...)
}

// Pending returns the number of loads not yet applied.
func (l *Loader) Pending() int {
	return l.pending
}
