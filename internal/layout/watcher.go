package layout

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce coalesces the bursts of events editors produce on save.
const DefaultDebounce = 150 * time.Millisecond

// Watcher reloads a layout file when it changes. It watches the file's
// directory so editors that save by rename are still seen.
type Watcher struct {
	path          string
	width, height int
	delay         time.Duration
	logger        *zap.Logger

	fsw *fsnotify.Watcher

	layouts chan Layout
	errors  chan error

	mu       sync.Mutex
	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the quiet period before a reload.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.delay = d
		}
	}
}

// WithLogger sets the watcher's logger.
func WithLogger(l *zap.Logger) WatcherOption {
	return func(w *Watcher) {
		w.logger = l
	}
}

// NewWatcher starts watching path. Reloaded layouts are parsed and
// validated against a width x height grid before they are sent.
func NewWatcher(path string, width, height int, opts ...WatcherOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:    abs,
		width:   width,
		height:  height,
		delay:   DefaultDebounce,
		logger:  zap.NewNop(),
		layouts: make(chan Layout, 1),
		errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = w.logger.Named("layout")

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating layout watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	w.fsw = fsw

	w.closedWg.Add(1)
	go w.processLoop()

	w.logger.Debug("watching layout", zap.String("path", abs))
	return w, nil
}

// Layouts delivers each successfully reloaded layout.
func (w *Watcher) Layouts() <-chan Layout {
	return w.layouts
}

// Errors delivers reload failures. The previous layout stays in effect.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher and closes both channels.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.closedWg.Wait()
	close(w.layouts)
	close(w.errors)
	return w.fsw.Close()
}

func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.delay)
			} else {
				timer.Reset(w.delay)
			}
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", zap.Error(err))
			w.sendError(err)

		case <-fire:
			fire = nil
			w.reload()
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename)
}

func (w *Watcher) reload() {
	l, err := Load(w.path, w.width, w.height)
	if err == nil {
		err = l.Validate(w.width, w.height)
	}
	if err != nil {
		w.logger.Warn("layout reload failed", zap.Error(err))
		w.sendError(err)
		return
	}
	w.logger.Info("layout reloaded", zap.Int("regions", len(l.Regions)))
	w.sendLayout(l)
}

// sendLayout replaces an unread layout so the consumer always sees the
// newest one.
func (w *Watcher) sendLayout(l Layout) {
	for {
		select {
		case w.layouts <- l:
			return
		default:
		}
		select {
		case <-w.layouts:
		default:
		}
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errors <- err:
	default:
		w.logger.Debug("dropping layout error", zap.Error(err))
	}
}
