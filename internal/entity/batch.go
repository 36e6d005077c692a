package entity

import (
	"encoding/hex"
	"time"

	"github.com/google/uuid"

	"github.com/asharhb/document-processor/constants"
)

// Batch groups documents submitted together. Its status is always derived
// from the members' states.
type Batch struct {
	ID          string                `json:"id"`
	Status      constants.BatchStatus `json:"status"`
	Total       int                   `json:"total"`
	DocumentIDs []uuid.UUID           `json:"document_ids"`
	CreatedAt   time.Time             `json:"created_at"`
}

// BatchView is a read projection of a batch with freshly computed progress
// and, optionally, the member documents.
type BatchView struct {
	Batch
	CompletedCount       int         `json:"completed_count"`
	FailedCount          int         `json:"failed_count"`
	CompletionPercentage float64     `json:"completion_percentage"`
	Documents            []*Document `json:"documents,omitempty"`
}

// NewBatchID returns a human-inspectable batch token, e.g.
// batch_6f1a0c9d2b8e4f13a7c5.
func NewBatchID() string {
	u := uuid.New()
	return "batch_" + hex.EncodeToString(u[:10])
}

// ComputeBatchStatus derives the aggregate batch status from member states.
// Rule: any non-terminal member keeps the batch non-terminal (PENDING while
// nothing has started, PROCESSING otherwise); once all members are terminal
// the batch is COMPLETED, FAILED, or PARTIALLY_FAILED.
func ComputeBatchStatus(members []constants.DocumentStatus) constants.BatchStatus {
	if len(members) == 0 {
		return constants.BatchStatusPending
	}

	var completed, failed, started int
	for _, s := range members {
		switch s {
		case constants.DocumentStatusCompleted:
			completed++
			started++
		case constants.DocumentStatusFailed:
			failed++
			started++
		case constants.DocumentStatusProcessing:
			started++
		}
	}

	if completed+failed < len(members) {
		if started == 0 {
			return constants.BatchStatusPending
		}
		return constants.BatchStatusProcessing
	}

	switch {
	case failed == 0:
		return constants.BatchStatusCompleted
	case completed == 0:
		return constants.BatchStatusFailed
	default:
		return constants.BatchStatusPartiallyFailed
	}
}

// CompletionPercentage is 100 x terminal members / total, computed fresh on
// every read and monotonically non-decreasing over a batch's life. It takes
// counts rather than member statuses because deleted members still count as
// terminal for progress but have no status row to inspect.
func CompletionPercentage(terminal, total int) float64 {
	if total <= 0 {
		return 0
	}
	return 100 * float64(terminal) / float64(total)
}
