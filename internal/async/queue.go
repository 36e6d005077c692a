package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is the smallest useful unit of background work: one document to drive
// through the pipeline.
type Job struct {
	DocumentID  uuid.UUID
	BatchID     string // empty for single submissions
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
