package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/lixenwraith/boxes/core"
	"github.com/lixenwraith/boxes/events"
)

// debounceDelay batches the write bursts editors produce on save
const debounceDelay = 200 * time.Millisecond

// Watcher reloads the config file on change and pushes the result into
// the event queue. The parent directory is watched rather than the file
// itself because most editors replace files via rename on save.
type Watcher struct {
	watcher *fsnotify.Watcher
	queue   *events.EventQueue
	path    string
	log     *zap.Logger

	mu      sync.Mutex
	pending time.Time
	running bool

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewWatcher creates a watcher for the given config path
func NewWatcher(path string, queue *events.EventQueue, log *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, err
	}

	return &Watcher{
		watcher: fw,
		queue:   queue,
		path:    abs,
		log:     log,
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}, nil
}

// Start begins watching. Non-blocking.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	w.log.Debug("config watcher started", zap.String("path", w.path))
	core.Go(w.run)
	return nil
}

// Stop shuts the watcher down and waits for its goroutine
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	w.watcher.Close()
}

func (w *Watcher) run() {
	defer close(w.doneCh)

	ticker := time.NewTicker(debounceDelay / 2)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("config watcher error", zap.Error(err))

		case <-ticker.C:
			w.flushPending()
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Base(event.Name) != filepath.Base(w.path) {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	w.mu.Lock()
	w.pending = time.Now()
	w.mu.Unlock()
}

// flushPending reloads once the debounce window has passed
func (w *Watcher) flushPending() {
	w.mu.Lock()
	due := !w.pending.IsZero() && time.Since(w.pending) >= debounceDelay
	if due {
		w.pending = time.Time{}
	}
	w.mu.Unlock()

	if !due {
		return
	}

	cfg, err := Load(w.path)
	if err != nil {
		w.log.Warn("config reload failed, keeping current settings",
			zap.String("path", w.path), zap.Error(err))
		return
	}

	w.log.Info("config file changed", zap.String("path", w.path))
	w.queue.Emit(events.EventConfigReload, &events.ConfigReloadPayload{Config: cfg})
}
