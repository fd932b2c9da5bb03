package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchConfig contains watcher settings.
type WatchConfig struct {
	DebounceSeconds int // quiet period before a run is triggered (default: 2)
}

// DefaultWatchConfig returns a WatchConfig with sensible defaults.
func DefaultWatchConfig() *WatchConfig {
	return &WatchConfig{DebounceSeconds: 2}
}

// WatchSummary contains stats from a watch session.
type WatchSummary struct {
	RunsTriggered int
	Duration      time.Duration
}

// RunFunc performs one normalization pass. Runs are serialized: the
// watcher never invokes it concurrently with itself, and a trigger that
// lands while a pass is in flight runs after that pass completes.
type RunFunc func()

// Watcher monitors the collection root and triggers debounced runs when
// new entries appear under it.
type Watcher struct {
	config    *WatchConfig
	run       RunFunc
	debounce  *Debouncer
	fsWatcher *fsnotify.Watcher
	done      chan struct{}
	wg        sync.WaitGroup
	startTime time.Time

	// runMu serializes normalization passes. The debouncer fires each
	// trigger on its own timer goroutine, so without this two passes
	// could mutate the root at once.
	runMu sync.Mutex

	mu            sync.Mutex
	runsTriggered int
}

// New creates a Watcher. If config is nil, defaults are used.
func New(config *WatchConfig, run RunFunc) *Watcher {
	if config == nil {
		config = DefaultWatchConfig()
	}
	w := &Watcher{
		config: config,
		run:    run,
		done:   make(chan struct{}),
	}
	w.debounce = NewDebouncer(time.Duration(config.DebounceSeconds)*time.Second, w.fireRun)
	return w
}

// Start begins watching root. The watcher runs until Stop is called.
func (w *Watcher) Start(root string) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return err
	}
	w.fsWatcher, err = fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.fsWatcher.Add(absRoot); err != nil {
		w.fsWatcher.Close()
		return err
	}

	w.startTime = time.Now()
	w.done = make(chan struct{})

	w.wg.Add(1)
	go w.processEvents()
	return nil
}

// Stop shuts the watcher down and returns a session summary. A pending
// debounced run is cancelled rather than fired mid-shutdown, and an
// already-running pass is waited out so the summary cannot print while
// the root is still being mutated.
func (w *Watcher) Stop() *WatchSummary {
	close(w.done)
	w.wg.Wait()
	w.debounce.Stop()

	w.runMu.Lock()
	w.runMu.Unlock()

	if w.fsWatcher != nil {
		w.fsWatcher.Close()
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	return &WatchSummary{
		RunsTriggered: w.runsTriggered,
		Duration:      time.Since(w.startTime),
	}
}

// processEvents feeds filesystem events into the debouncer.
func (w *Watcher) processEvents() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			// New session folders land as Create; renames of existing
			// folders also change the set of names to classify.
			if event.Op&(fsnotify.Create|fsnotify.Rename) != 0 {
				w.debounce.Trigger()
			}
		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// fireRun executes one serialized normalization pass. The shutdown check
// happens under runMu so a trigger queued behind an in-flight pass is
// dropped once Stop has been called.
func (w *Watcher) fireRun() {
	w.runMu.Lock()
	defer w.runMu.Unlock()

	select {
	case <-w.done:
		return
	default:
	}

	if w.run != nil {
		w.run()
	}
	w.mu.Lock()
	w.runsTriggered++
	w.mu.Unlock()
}

// RunsTriggered reports how many runs the session has fired so far.
func (w *Watcher) RunsTriggered() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.runsTriggered
}
