//go:generate mockgen -source=watcher.go -destination=watcher_mock.go -package=watcher
package watcher

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jonboulle/clockwork"

	"console/internal/app/errors"
	"console/internal/app/prefs"
	"console/internal/config"
	"console/internal/config/logger"
)

// Watcher reloads the settings store when the settings file changes on disk
type Watcher interface {
	Start(ctx context.Context) error
	OnReload(fn func())
	Close()
}

type watcher struct {
	dir       string
	store     *prefs.Store
	matcher   Matcher
	debouncer Debouncer
	fsWatcher *fsnotify.Watcher
	log       logger.Logger
	mu        sync.RWMutex
	listeners []func()
	started   bool
	closed    bool
}

// NewWatcher creates a Watcher for the configured settings directory
func NewWatcher(cfg *config.Config, store *prefs.Store, log logger.Logger) (Watcher, error) {
	return newWatcher(cfg.Settings.Dir, store, clockwork.NewRealClock(), config.SettingsDebounce, log)
}

func newWatcher(dir string, store *prefs.Store, clock clockwork.Clock, delay time.Duration, log logger.Logger) (*watcher, error) {
	matcher, err := NewMatcher([]string{config.SettingsPattern}, []string{".*"})
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &watcher{
		dir:       dir,
		store:     store,
		matcher:   matcher,
		fsWatcher: fsw,
		log:       log.WithComponent("WATCHER"),
	}

	w.debouncer = NewDebouncer(clock, delay, w.reload)

	return w, nil
}

// OnReload registers fn to run after every successful reload
func (w *watcher) OnReload(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.listeners = append(w.listeners, fn)
}

// Start begins watching. The directory is created when missing.
// Watching ends when ctx is cancelled or Close is called.
func (w *watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || w.started {
		return nil
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToReadSettings, err)
	}

	if err := w.fsWatcher.Add(w.dir); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToReadSettings, err)
	}

	w.started = true

	go w.processEvents(ctx)

	w.log.Debug().Msgf("Watching settings in %s", w.dir)

	return nil
}

// Close stops watching and releases resources
func (w *watcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	w.closed = true
	w.debouncer.Stop()
	w.fsWatcher.Close()
}

func (w *watcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.Close()
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}

			w.log.Error().Err(err).Msg("Watcher error")
		}
	}
}

func (w *watcher) handleEvent(event fsnotify.Event) {
	if !isRelevantEvent(event) {
		return
	}

	if w.matcher.Match(event.Name) {
		w.debouncer.Trigger(event.Name)
	}
}

// reload re-reads the store and notifies listeners. A failed read keeps the previous values.
func (w *watcher) reload(names []string) {
	w.mu.RLock()
	closed := w.closed
	listeners := append([]func(){}, w.listeners...)
	w.mu.RUnlock()

	if closed {
		return
	}

	if err := w.store.Load(); err != nil {
		w.log.Warn().Err(err).Strs("files", names).Msg("Failed to reload settings")
		return
	}

	w.log.Debug().Strs("files", names).Msg("Settings reloaded")

	for _, fn := range listeners {
		fn()
	}
}

func isRelevantEvent(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Rename)
}
