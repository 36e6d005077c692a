package async

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProcessor struct {
	mu      sync.Mutex
	seen    map[uuid.UUID]int
	block   chan struct{} // if non-nil, workers wait here
	current int
	peak    int
}

func (p *countingProcessor) ProcessDocument(_ context.Context, id uuid.UUID) error {
	p.mu.Lock()
	p.current++
	if p.current > p.peak {
		p.peak = p.current
	}
	p.mu.Unlock()

	if p.block != nil {
		<-p.block
	}

	p.mu.Lock()
	p.current--
	if p.seen == nil {
		p.seen = map[uuid.UUID]int{}
	}
	p.seen[id]++
	p.mu.Unlock()
	return nil
}

func TestQueueProcessesEveryJobOnce(t *testing.T) {
	t.Parallel()

	proc := &countingProcessor{}
	q := NewProcessorQueue(proc, slog.Default(), WithWorkers(3), WithQueueSize(16))

	ids := make([]uuid.UUID, 20)
	for i := range ids {
		ids[i] = uuid.New()
		require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: ids[i], SubmittedAt: time.Now()}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	proc.mu.Lock()
	defer proc.mu.Unlock()
	assert.Len(t, proc.seen, len(ids))
	for _, id := range ids {
		assert.Equal(t, 1, proc.seen[id], "document %s processed wrong number of times", id)
	}
}

func TestQueueBoundsConcurrency(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})
	proc := &countingProcessor{block: block}
	q := NewProcessorQueue(proc, slog.Default(), WithWorkers(2), WithQueueSize(32))

	for i := 0; i < 10; i++ {
		require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}))
	}

	// Give workers a moment to pick up what they can.
	time.Sleep(50 * time.Millisecond)
	close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	proc.mu.Lock()
	defer proc.mu.Unlock()
	assert.LessOrEqual(t, proc.peak, 2, "more jobs in flight than workers")
}

func TestEnqueueAfterShutdownReturnsError(t *testing.T) {
	t.Parallel()

	proc := &countingProcessor{}
	q := NewProcessorQueue(proc, slog.Default(), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	err := q.Enqueue(context.Background(), Job{DocumentID: uuid.New()})
	require.ErrorIs(t, err, ErrQueueClosed)
	q.Shutdown(ctx) // idempotent

	proc.mu.Lock()
	defer proc.mu.Unlock()
	assert.Empty(t, proc.seen)
}
