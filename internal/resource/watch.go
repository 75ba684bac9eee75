package resource

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher re-fetches file-backed shader sources when they change on disk.
// Editors often replace files instead of writing them, so the parent
// directories are watched and events are filtered by path.
type Watcher struct {
	fsw     *fsnotify.Watcher
	fetcher Fetcher
	log     *zap.Logger
	byPath  map[string]Descriptor
	results chan Result

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewWatcher watches every non-URL descriptor. URL descriptors are skipped.
func NewWatcher(descs []Descriptor, fetcher Fetcher, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{
		fsw:     fsw,
		fetcher: fetcher,
		log:     log,
		byPath:  make(map[string]Descriptor),
		results: make(chan Result, 16),
	}

	dirs := make(map[string]bool)
	for _, d := range descs {
		if isURL(d.Source) {
			continue
		}
		p, err := filepath.Abs(d.Source)
		if err != nil {
			p = filepath.Clean(d.Source)
		}
		w.byPath[p] = d
		dirs[filepath.Dir(p)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
		log.Debug("watching shader directory", zap.String("dir", dir))
	}
	return w, nil
}

// Start begins handling filesystem events until ctx is done or Close is
// called.
func (w *Watcher) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.loop(ctx)
	}()
}

func (w *Watcher) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			d, ok := w.byPath[filepath.Clean(ev.Name)]
			if !ok {
				continue
			}
			text, err := w.fetcher.Fetch(ctx, d)
			if err != nil {
				w.log.Warn("shader reload failed", zap.Stringer("shader", d), zap.Error(err))
				continue
			}
			select {
			case w.results <- Result{Desc: d, Text: text}:
			case <-ctx.Done():
				return
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("shader watcher error", zap.Error(err))
		}
	}
}

// Poll stores every reloaded source in registry without blocking and
// returns the names that changed.
func (w *Watcher) Poll(registry *Registry) []string {
	var names []string
	for {
		select {
		case r := <-w.results:
			registry.Store(r.Desc.Name, r.Desc.Kind, r.Text)
			w.log.Info("shader reloaded", zap.Stringer("shader", r.Desc))
			names = append(names, r.Desc.Name)
		default:
			return names
		}
	}
}

// Results exposes reloads for callers that block on them.
func (w *Watcher) Results() <-chan Result {
	return w.results
}

// Close stops the watcher and waits for the event loop to exit.
func (w *Watcher) Close() error {
	if w.cancel != nil {
		w.cancel()
	}
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}
