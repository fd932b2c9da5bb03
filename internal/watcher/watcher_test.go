package watcher

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestWatcherTriggersRunOnNewFolder(t *testing.T) {
	root := t.TempDir()

	var runs int32
	w := New(&WatchConfig{DebounceSeconds: 1}, func() {
		atomic.AddInt32(&runs, 1)
	})
	if err := w.Start(root); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	// A new session folder lands under the root.
	if err := os.Mkdir(filepath.Join(root, "NGC 7000"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for atomic.LoadInt32(&runs) == 0 && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
	if atomic.LoadInt32(&runs) == 0 {
		t.Fatal("watcher never triggered a run")
	}
}

func TestWatcherCoalescesFolderBurst(t *testing.T) {
	root := t.TempDir()

	var runs int32
	w := New(&WatchConfig{DebounceSeconds: 1}, func() {
		atomic.AddInt32(&runs, 1)
	})
	if err := w.Start(root); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		os.Mkdir(filepath.Join(root, "M4"+string(rune('0'+i))), 0o755)
	}

	time.Sleep(2500 * time.Millisecond)
	summary := w.Stop()

	if got := atomic.LoadInt32(&runs); got != 1 {
		t.Errorf("burst fired %d runs, want 1", got)
	}
	if summary.RunsTriggered != 1 {
		t.Errorf("summary reports %d runs, want 1", summary.RunsTriggered)
	}
}

// A folder landing while a pass is still running must wait for that pass;
// two passes over the same root at once would violate the single-writer
// assumption the engine runs under.
func TestWatcherSerializesOverlappingRuns(t *testing.T) {
	root := t.TempDir()

	var active, maxActive, runs int32
	w := New(&WatchConfig{DebounceSeconds: 1}, func() {
		cur := atomic.AddInt32(&active, 1)
		for {
			prev := atomic.LoadInt32(&maxActive)
			if cur <= prev || atomic.CompareAndSwapInt32(&maxActive, prev, cur) {
				break
			}
		}
		time.Sleep(2 * time.Second)
		atomic.AddInt32(&active, -1)
		atomic.AddInt32(&runs, 1)
	})
	if err := w.Start(root); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	// First folder starts a slow pass; the second lands while that pass
	// is still in flight.
	os.Mkdir(filepath.Join(root, "NGC 7000"), 0o755)
	time.Sleep(1500 * time.Millisecond)
	os.Mkdir(filepath.Join(root, "M42"), 0o755)

	deadline := time.Now().Add(10 * time.Second)
	for atomic.LoadInt32(&runs) < 2 && time.Now().Before(deadline) {
		time.Sleep(50 * time.Millisecond)
	}
	summary := w.Stop()

	if got := atomic.LoadInt32(&runs); got != 2 {
		t.Fatalf("completed %d runs, want 2", got)
	}
	if got := atomic.LoadInt32(&maxActive); got != 1 {
		t.Errorf("observed %d concurrent runs, want 1", got)
	}
	if summary.RunsTriggered != 2 {
		t.Errorf("summary reports %d runs, want 2", summary.RunsTriggered)
	}
}

func TestStopWaitsForInFlightRun(t *testing.T) {
	root := t.TempDir()

	var active int32
	w := New(&WatchConfig{DebounceSeconds: 1}, func() {
		atomic.StoreInt32(&active, 1)
		time.Sleep(1500 * time.Millisecond)
		atomic.StoreInt32(&active, 0)
	})
	if err := w.Start(root); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	os.Mkdir(filepath.Join(root, "IC 1396"), 0o755)
	deadline := time.Now().Add(5 * time.Second)
	for atomic.LoadInt32(&active) == 0 && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
	if atomic.LoadInt32(&active) == 0 {
		t.Fatal("run never started")
	}

	summary := w.Stop()
	if atomic.LoadInt32(&active) != 0 {
		t.Error("Stop returned while a pass was still running")
	}
	if summary.RunsTriggered != 1 {
		t.Errorf("summary reports %d runs, want 1", summary.RunsTriggered)
	}
}

func TestWatcherStartMissingRoot(t *testing.T) {
	w := New(nil, nil)
	if err := w.Start(filepath.Join(t.TempDir(), "absent")); err == nil {
		w.Stop()
		t.Fatal("expected Start to fail for a missing root")
	}
}

func TestStopWithoutEvents(t *testing.T) {
	root := t.TempDir()
	w := New(nil, nil)
	if err := w.Start(root); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	summary := w.Stop()
	if summary.RunsTriggered != 0 {
		t.Errorf("idle session triggered %d runs", summary.RunsTriggered)
	}
}
