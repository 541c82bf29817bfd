package async

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestWorkerQueueProcessesAllJobs(t *testing.T) {
	ctx := context.Background()

	var mu sync.Mutex
	seen := map[uuid.UUID]int{}
	process := func(_ context.Context, fileID uuid.UUID) error {
		mu.Lock()
		seen[fileID]++
		mu.Unlock()
		return nil
	}

	q := NewWorkerQueue(ctx, 3, 8, process, nil)

	ids := make([]uuid.UUID, 5)
	for i := range ids {
		ids[i] = uuid.New()
		if err := q.Enqueue(ctx, Job{FileID: ids[i]}); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(shutdownCtx)

	mu.Lock()
	defer mu.Unlock()
	for _, id := range ids {
		if seen[id] != 1 {
			t.Errorf("job %s processed %d times, want 1", id, seen[id])
		}
	}
}

func TestWorkerQueueRejectsAfterShutdown(t *testing.T) {
	ctx := context.Background()
	q := NewWorkerQueue(ctx, 1, 1, func(context.Context, uuid.UUID) error { return nil }, nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(shutdownCtx)

	if err := q.Enqueue(ctx, Job{FileID: uuid.New()}); !errors.Is(err, ErrQueueClosed) {
		t.Fatalf("Enqueue after Shutdown = %v, want ErrQueueClosed", err)
	}
}

func TestWorkerQueueContinuesAfterJobFailure(t *testing.T) {
	ctx := context.Background()

	bad := uuid.New()
	good := uuid.New()

	var mu sync.Mutex
	var processed []uuid.UUID
	process := func(_ context.Context, fileID uuid.UUID) error {
		mu.Lock()
		processed = append(processed, fileID)
		mu.Unlock()
		if fileID == bad {
			return errors.New("boom")
		}
		return nil
	}

	// single worker so ordering is deterministic
	q := NewWorkerQueue(ctx, 1, 4, process, nil)
	if err := q.Enqueue(ctx, Job{FileID: bad}); err != nil {
		t.Fatalf("Enqueue(bad): %v", err)
	}
	if err := q.Enqueue(ctx, Job{FileID: good}); err != nil {
		t.Fatalf("Enqueue(good): %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(shutdownCtx)

	mu.Lock()
	defer mu.Unlock()
	if len(processed) != 2 {
		t.Fatalf("processed %d jobs, want 2", len(processed))
	}
	if processed[1] != good {
		t.Errorf("second processed job = %s, want %s", processed[1], good)
	}
}
