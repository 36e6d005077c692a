package tracker

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/asharhb/document-processor/constants"
	"github.com/asharhb/document-processor/internal/entity"
	"github.com/asharhb/document-processor/internal/repository"
)

// Tracker aggregates member document states into an overall batch status.
// The aggregate is recomputed from current member states on every member
// transition and on every read; it is never patched independently.
type Tracker struct {
	batches   repository.BatchRepository
	documents repository.DocumentRepository
	logger    *slog.Logger
}

func New(batches repository.BatchRepository, documents repository.DocumentRepository, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{batches: batches, documents: documents, logger: logger}
}

// CreateBatch registers a new batch over the given member ids and derives its
// initial status. Members rejected at validation time are already FAILED, so
// the initial recompute keeps the accounting consistent from the start.
func (t *Tracker) CreateBatch(ctx context.Context, documentIDs []uuid.UUID) (*entity.Batch, error) {
	id := entity.NewBatchID()
	b, err := t.batches.Create(ctx, id, documentIDs)
	if err != nil {
		return nil, err
	}
	status, err := t.batches.Recompute(ctx, id)
	if err != nil {
		return nil, err
	}
	b.Status = status
	return b, nil
}

// OnMemberTransition is called by the pipeline after every document state
// change, exactly once per transition, including failure paths.
func (t *Tracker) OnMemberTransition(ctx context.Context, batchID string, documentID uuid.UUID, newState constants.DocumentStatus) error {
	status, err := t.batches.Recompute(ctx, batchID)
	if err != nil {
		t.logger.Error("batch recompute failed",
			"batch_id", batchID, "document_id", documentID, "new_state", newState, "error", err)
		return err
	}
	t.logger.Debug("member transition applied",
		"batch_id", batchID, "document_id", documentID, "new_state", newState, "batch_status", status)
	return nil
}

// OnMemberRemoved re-derives the aggregate after a member document was
// deleted; a removed member can never transition again.
func (t *Tracker) OnMemberRemoved(ctx context.Context, batchID string, documentID uuid.UUID) error {
	status, err := t.batches.Recompute(ctx, batchID)
	if err != nil {
		t.logger.Error("batch recompute after member removal failed",
			"batch_id", batchID, "document_id", documentID, "error", err)
		return err
	}
	t.logger.Debug("member removal applied",
		"batch_id", batchID, "document_id", documentID, "batch_status", status)
	return nil
}

// GetBatchView returns the batch with freshly computed progress and,
// optionally, the member documents in submission order.
func (t *Tracker) GetBatchView(ctx context.Context, id string, includeDocuments bool) (*entity.BatchView, error) {
	b, err := t.batches.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	docs, err := t.documents.ListByIDs(ctx, b.DocumentIDs)
	if err != nil {
		return nil, err
	}

	var completed, failed int
	statuses := make([]constants.DocumentStatus, 0, len(docs))
	for _, d := range docs {
		statuses = append(statuses, d.Status)
		switch d.Status {
		case constants.DocumentStatusCompleted:
			completed++
		case constants.DocumentStatusFailed:
			failed++
		}
	}

	// Deleted members can never transition again: they count as terminal
	// for progress but do not influence the aggregate status.
	missing := b.Total - len(docs)
	view := &entity.BatchView{
		Batch:                *b,
		CompletedCount:       completed,
		FailedCount:          failed,
		CompletionPercentage: entity.CompletionPercentage(completed+failed+missing, b.Total),
	}
	if len(statuses) > 0 {
		view.Status = entity.ComputeBatchStatus(statuses)
	}
	if includeDocuments {
		view.Documents = docs
	}
	return view, nil
}

// DeleteBatch removes the batch record. Deleting an in-flight batch is
// rejected with a conflict; members are retained with their back-reference
// cleared.
func (t *Tracker) DeleteBatch(ctx context.Context, id string) error {
	return t.batches.Delete(ctx, id)
}
