package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("fatura"), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// collectPaths reads from events until every path in want was seen or the
// deadline passes.
func collectPaths(t *testing.T, events <-chan string, want map[string]bool, deadline time.Duration) map[string]bool {
	t.Helper()
	got := map[string]bool{}
	timeout := time.After(deadline)
	for len(got) < len(want) {
		select {
		case p, ok := <-events:
			if !ok {
				return got
			}
			got[p] = true
		case <-timeout:
			return got
		}
	}
	return got
}

func TestWatcherInitialScan(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.pdf")
	b := writeFile(t, dir, "b.png")
	writeFile(t, dir, "notes.txt") // not an invoice extension

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{dir}, InitialScan: true})
	if err != nil {
		t.Fatalf("StartWatcher: %v", err)
	}

	want := map[string]bool{a: true, b: true}
	got := collectPaths(t, events, want, 2*time.Second)
	for p := range want {
		if !got[p] {
			t.Errorf("initial scan missed %s", p)
		}
	}
	if len(got) != len(want) {
		t.Errorf("got %d paths, want %d: %v", len(got), len(want), got)
	}
}

func TestWatcherNoRoots(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if _, _, err := StartWatcher(ctx, WatchConfig{}); err == nil {
		t.Fatal("expected an error for empty roots")
	}
}

// A burst of creates and rewrites must still surface every file once the
// debounce window closes.
func TestWatcherDebouncedBurst(t *testing.T) {
	dir := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, errs, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: 20 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("StartWatcher: %v", err)
	}
	go func() {
		for range errs {
		}
	}()

	want := map[string]bool{}
	for _, name := range []string{"a.pdf", "b.pdf", "c.jpg", "d.tiff"} {
		want[writeFile(t, dir, name)] = true
	}
	// rapid rewrites of one file collapse into the same pending entry
	for i := 0; i < 10; i++ {
		writeFile(t, dir, "a.pdf")
	}

	got := collectPaths(t, events, want, 5*time.Second)
	for p := range want {
		if !got[p] {
			t.Errorf("watcher missed %s", p)
		}
	}
}
