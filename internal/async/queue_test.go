package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hackybara/expense-tracker/internal/entity"
	"github.com/hackybara/expense-tracker/internal/ingest"
)

type countingIngestor struct {
	mu    sync.Mutex
	seen  []string
	fail  map[string]bool
	calls int
}

func (c *countingIngestor) IngestText(_ context.Context, req *ingest.Request) (*ingest.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	c.seen = append(c.seen, req.Filename)
	if c.fail[req.Filename] {
		return nil, errors.New("boom")
	}
	return &ingest.Result{
		Transaction: &entity.Transaction{ID: uuid.New()},
	}, nil
}

func newJob(name string) Job {
	return Job{
		Request:     &ingest.Request{OrganizationID: uuid.New(), Filename: name, Text: "TOTAL 1.00"},
		SubmittedAt: time.Now(),
	}
}

func TestQueueProcessesAllJobs(t *testing.T) {
	ing := &countingIngestor{}
	q := NewIngestQueue(ing, slog.New(slog.DiscardHandler), WithWorkers(2), WithQueueSize(8))

	for i := 0; i < 5; i++ {
		if !q.Enqueue(newJob("r" + string(rune('a'+i)) + ".txt")) {
			t.Fatalf("enqueue %d rejected", i)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	ing.mu.Lock()
	defer ing.mu.Unlock()
	if ing.calls != 5 {
		t.Fatalf("calls = %d, want 5", ing.calls)
	}
}

func TestQueueKeepsGoingAfterFailure(t *testing.T) {
	ing := &countingIngestor{fail: map[string]bool{"bad.txt": true}}
	q := NewIngestQueue(ing, slog.New(slog.DiscardHandler), WithWorkers(1))

	q.Enqueue(newJob("bad.txt"))
	q.Enqueue(newJob("good.txt"))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	ing.mu.Lock()
	defer ing.mu.Unlock()
	if ing.calls != 2 {
		t.Fatalf("calls = %d, want 2", ing.calls)
	}
}

func TestQueueRejectsAfterShutdown(t *testing.T) {
	ing := &countingIngestor{}
	q := NewIngestQueue(ing, slog.New(slog.DiscardHandler), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if q.Enqueue(newJob("late.txt")) {
		t.Fatal("enqueue after shutdown should be rejected")
	}
}
