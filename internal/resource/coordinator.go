package resource

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxConcurrent bounds in-flight fetches when no limit is given.
const DefaultMaxConcurrent = 4

// Result is the outcome of one fetch. Text is empty when Err is set.
type Result struct {
	Desc Descriptor
	Text string
	Err  error
}

// Coordinator fans out one fetch per descriptor and, once every result has
// been stored in the registry, invokes the completion callback exactly once.
//
// Fetches run on background goroutines; results are applied by Poll or
// Wait on the caller's goroutine.
type Coordinator struct {
	registry      *Registry
	fetcher       Fetcher
	log           *zap.Logger
	maxConcurrent int
	timeout       time.Duration

	results    chan Result
	pending    int
	started    bool
	done       bool
	onComplete func()
}

// CoordinatorOption configures a Coordinator.
type CoordinatorOption func(*Coordinator)

// WithMaxConcurrent bounds the number of concurrent fetches.
func WithMaxConcurrent(n int) CoordinatorOption {
	return func(c *Coordinator) {
		if n > 0 {
			c.maxConcurrent = n
		}
	}
}

// WithTimeout bounds each fetch. Zero waits forever.
func WithTimeout(d time.Duration) CoordinatorOption {
	return func(c *Coordinator) {
		c.timeout = d
	}
}

// NewCoordinator creates a coordinator storing into registry.
func NewCoordinator(registry *Registry, fetcher Fetcher, log *zap.Logger, opts ...CoordinatorOption) *Coordinator {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Coordinator{
		registry:      registry,
		fetcher:       fetcher,
		log:           log,
		maxConcurrent: DefaultMaxConcurrent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start issues a fetch for every descriptor. With no descriptors,
// onComplete runs before Start returns. Start may be called once.
func (c *Coordinator) Start(ctx context.Context, descs []Descriptor, onComplete func()) {
	if c.started {
		c.log.Warn("coordinator already started")
		return
	}
	c.started = true
	c.onComplete = onComplete
	c.pending = len(descs)
	c.results = make(chan Result, len(descs))

	c.log.Info("loading shader sources", zap.Int("count", len(descs)))

	if c.pending == 0 {
		c.complete()
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxConcurrent)
	go func() {
		for _, d := range descs {
			g.Go(func() error {
				c.results <- c.fetch(gctx, d)
				return nil
			})
		}
		_ = g.Wait()
	}()
}

func (c *Coordinator) fetch(ctx context.Context, d Descriptor) Result {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	text, err := c.fetcher.Fetch(ctx, d)
	return Result{Desc: d, Text: text, Err: err}
}

// Poll applies every result that has arrived without blocking. It returns
// the number of results applied.
func (c *Coordinator) Poll() int {
	n := 0
	for !c.done && c.results != nil {
		select {
		case r := <-c.results:
			c.apply(r)
			n++
		default:
			return n
		}
	}
	return n
}

// Wait blocks until every result has been applied or ctx is done.
func (c *Coordinator) Wait(ctx context.Context) error {
	for !c.done {
		if c.results == nil {
			return nil
		}
		select {
		case r := <-c.results:
			c.apply(r)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (c *Coordinator) apply(r Result) {
	if r.Err != nil {
		c.log.Warn("shader fetch failed",
			zap.String("name", r.Desc.Name),
			zap.Stringer("kind", r.Desc.Kind),
			zap.String("source", r.Desc.Source),
			zap.Error(r.Err))
	} else {
		c.log.Debug("shader fetched",
			zap.String("name", r.Desc.Name),
			zap.Stringer("kind", r.Desc.Kind),
			zap.Int("bytes", len(r.Text)))
	}
	c.registry.Store(r.Desc.Name, r.Desc.Kind, r.Text)

	c.pending--
	if c.pending == 0 {
		c.complete()
	}
}

func (c *Coordinator) complete() {
	if c.done {
		return
	}
	c.done = true
	c.log.Info("shader sources loaded", zap.Strings("names", c.registry.Names()))
	if c.onComplete != nil {
		c.onComplete()
	}
}

// Pending returns the number of outstanding fetches.
func (c *Coordinator) Pending() int {
	return c.pending
}

// Done reports whether the completion callback has fired.
func (c *Coordinator) Done() bool {
	return c.done
}
