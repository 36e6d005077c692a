package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asharhb/document-processor/constants"
)

func TestComputeBatchStatus(t *testing.T) {
	t.Parallel()

	p := constants.DocumentStatusPending
	r := constants.DocumentStatusProcessing
	c := constants.DocumentStatusCompleted
	f := constants.DocumentStatusFailed

	tests := []struct {
		name    string
		members []constants.DocumentStatus
		want    constants.BatchStatus
	}{
		{"empty", nil, constants.BatchStatusPending},
		{"all pending", []constants.DocumentStatus{p, p, p}, constants.BatchStatusPending},
		{"one started", []constants.DocumentStatus{p, r, p}, constants.BatchStatusProcessing},
		{"some terminal, some pending", []constants.DocumentStatus{c, f, p}, constants.BatchStatusProcessing},
		{"all completed", []constants.DocumentStatus{c, c}, constants.BatchStatusCompleted},
		{"all failed", []constants.DocumentStatus{f, f, f}, constants.BatchStatusFailed},
		{"mixed terminal", []constants.DocumentStatus{c, f}, constants.BatchStatusPartiallyFailed},
		{"prefailed member still pending siblings", []constants.DocumentStatus{f, p, p}, constants.BatchStatusProcessing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeBatchStatus(tt.members))
		})
	}
}

func TestCompletionPercentage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, CompletionPercentage(0, 0))
	assert.Equal(t, 0.0, CompletionPercentage(0, 2))
	assert.InDelta(t, 100.0/3, CompletionPercentage(1, 3), 1e-9)
	assert.Equal(t, 100.0, CompletionPercentage(3, 3))
}

func TestCompletionPercentageMonotone(t *testing.T) {
	t.Parallel()

	// Advance members one transition at a time in arbitrary order; the
	// percentage must never decrease at any observation point.
	members := []constants.DocumentStatus{
		constants.DocumentStatusPending,
		constants.DocumentStatusPending,
		constants.DocumentStatusPending,
		constants.DocumentStatusPending,
	}
	order := []struct {
		idx  int
		next constants.DocumentStatus
	}{
		{2, constants.DocumentStatusProcessing},
		{0, constants.DocumentStatusProcessing},
		{2, constants.DocumentStatusFailed},
		{3, constants.DocumentStatusProcessing},
		{0, constants.DocumentStatusCompleted},
		{1, constants.DocumentStatusProcessing},
		{3, constants.DocumentStatusCompleted},
		{1, constants.DocumentStatusFailed},
	}

	terminal := func() int {
		n := 0
		for _, s := range members {
			if s.IsTerminal() {
				n++
			}
		}
		return n
	}

	last := CompletionPercentage(terminal(), len(members))
	for _, step := range order {
		members[step.idx] = step.next
		got := CompletionPercentage(terminal(), len(members))
		assert.GreaterOrEqual(t, got, last)
		last = got
	}
	assert.Equal(t, 100.0, last)
	assert.Equal(t, constants.BatchStatusPartiallyFailed, ComputeBatchStatus(members))
}

func TestNewBatchID(t *testing.T) {
	t.Parallel()

	seen := map[string]struct{}{}
	for i := 0; i < 100; i++ {
		id := NewBatchID()
		assert.True(t, strings.HasPrefix(id, "batch_"), "id %q should carry prefix", id)
		assert.Len(t, id, len("batch_")+20)
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %q", id)
		seen[id] = struct{}{}
	}
}
