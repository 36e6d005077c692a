package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/asharhb/document-processor/constants"
	"github.com/asharhb/document-processor/gen/ent"
	entdoc "github.com/asharhb/document-processor/gen/ent/document"
	"github.com/asharhb/document-processor/internal/common"
	"github.com/asharhb/document-processor/internal/entity"
)

// DocumentRepository is the durable record store for one uploaded document's
// identity, processing state, and result. All state mutations are
// single-statement conditional updates so a concurrent reader never observes
// a partially written record, and an update racing a delete resolves to
// ErrNotFound instead of a corrupting write.
type DocumentRepository interface {
	Create(ctx context.Context, meta entity.DocumentMeta) (*entity.Document, error)
	// CreateFailed records a document that was rejected at validation time
	// directly in FAILED, so batch accounting stays consistent.
	CreateFailed(ctx context.Context, meta entity.DocumentMeta, code constants.FailureCode, message string) (*entity.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	List(ctx context.Context) ([]*entity.Document, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Document, error)
	// AssignBatch links freshly created members to their batch; documents are
	// created first so the batch row can carry the full member list.
	AssignBatch(ctx context.Context, ids []uuid.UUID, batchID string) error
	// MarkProcessing advances PENDING -> PROCESSING. ErrNotFound if the row
	// is gone, ErrConflict if the document already moved past PENDING.
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	// FinishSuccess advances PROCESSING -> COMPLETED and writes all result
	// fields in the same statement.
	FinishSuccess(ctx context.Context, id uuid.UUID, result entity.ProcessingResult) error
	// FinishFailure advances PROCESSING -> FAILED with the recorded reason.
	FinishFailure(ctx context.Context, id uuid.UUID, code constants.FailureCode, message string) error
	// Delete removes the record and returns it so the caller can release the
	// owned raw-content reference.
	Delete(ctx context.Context, id uuid.UUID) (*entity.Document, error)
}

type documentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepo{ent: entc, logger: logger}
}

func (r *documentRepo) Create(ctx context.Context, meta entity.DocumentMeta) (*entity.Document, error) {
	create := r.ent.Document.Create().
		SetFilename(meta.Filename).
		SetFileExt(meta.FileExt).
		SetFileType(string(meta.FileType)).
		SetFileSize(meta.FileSize).
		SetStatus(string(constants.DocumentStatusPending)).
		SetNillableBatchID(meta.BatchID)
	if meta.ContentPath != "" {
		create.SetContentPath(meta.ContentPath)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "filename", meta.Filename, "error", err)
		return nil, err
	}
	return toEntityDocument(row), nil
}

func (r *documentRepo) CreateFailed(ctx context.Context, meta entity.DocumentMeta, code constants.FailureCode, message string) (*entity.Document, error) {
	now := time.Now().UTC()
	create := r.ent.Document.Create().
		SetFilename(meta.Filename).
		SetFileExt(meta.FileExt).
		SetFileType(string(meta.FileType)).
		SetFileSize(meta.FileSize).
		SetStatus(string(constants.DocumentStatusFailed)).
		SetFailureCode(string(code)).
		SetErrorMessage(message).
		SetProcessedAt(now).
		SetNillableBatchID(meta.BatchID)
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create pre-failed document", "filename", meta.Filename, "error", err)
		return nil, err
	}
	r.logger.Warn("document rejected at validation", "document_id", row.ID, "filename", meta.Filename, "code", code)
	return toEntityDocument(row), nil
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row, err := r.ent.Document.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("document %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("failed to get document", "document_id", id, "error", err)
		return nil, err
	}
	return toEntityDocument(row), nil
}

func (r *documentRepo) List(ctx context.Context) ([]*entity.Document, error) {
	rows, err := r.ent.Document.Query().
		Order(ent.Asc(entdoc.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "error", err)
		return nil, err
	}
	out := make([]*entity.Document, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEntityDocument(row))
	}
	return out, nil
}

func (r *documentRepo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Document, error) {
	rows, err := r.ent.Document.Query().
		Where(entdoc.IDIn(ids...)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents by ids", "count", len(ids), "error", err)
		return nil, err
	}
	// return in the requested (submission) order
	byID := make(map[uuid.UUID]*entity.Document, len(rows))
	for _, row := range rows {
		byID[row.ID] = toEntityDocument(row)
	}
	out := make([]*entity.Document, 0, len(rows))
	for _, id := range ids {
		if d, ok := byID[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *documentRepo) AssignBatch(ctx context.Context, ids []uuid.UUID, batchID string) error {
	if len(ids) == 0 {
		return nil
	}
	n, err := r.ent.Document.Update().
		Where(entdoc.IDIn(ids...)).
		SetBatchID(batchID).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to assign documents to batch", "batch_id", batchID, "error", err)
		return err
	}
	r.logger.Debug("documents assigned to batch", "batch_id", batchID, "count", n)
	return nil
}

func (r *documentRepo) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	n, err := r.ent.Document.Update().
		Where(
			entdoc.ID(id),
			entdoc.StatusEQ(string(constants.DocumentStatusPending)),
		).
		SetStatus(string(constants.DocumentStatusProcessing)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark document processing", "document_id", id, "error", err)
		return err
	}
	if n == 0 {
		return r.explainStaleWrite(ctx, id, constants.DocumentStatusProcessing)
	}
	return nil
}

func (r *documentRepo) FinishSuccess(ctx context.Context, id uuid.UUID, result entity.ProcessingResult) error {
	n, err := r.ent.Document.Update().
		Where(
			entdoc.ID(id),
			entdoc.StatusEQ(string(constants.DocumentStatusProcessing)),
		).
		SetStatus(string(constants.DocumentStatusCompleted)).
		SetSummary(result.Summary).
		SetStructuredData(result.StructuredData).
		SetCategory(string(result.Category)).
		SetFinancialType(string(result.FinancialType)).
		SetCategoryConfidence(result.CategoryConfidence).
		SetCategoryReasoning(result.CategoryReasoning).
		SetProcessedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to finish document (COMPLETED)", "document_id", id, "error", err)
		return err
	}
	if n == 0 {
		return r.explainStaleWrite(ctx, id, constants.DocumentStatusCompleted)
	}
	r.logger.Info("document completed", "document_id", id, "category", result.Category, "confidence", result.CategoryConfidence)
	return nil
}

func (r *documentRepo) FinishFailure(ctx context.Context, id uuid.UUID, code constants.FailureCode, message string) error {
	n, err := r.ent.Document.Update().
		Where(
			entdoc.ID(id),
			entdoc.StatusEQ(string(constants.DocumentStatusProcessing)),
		).
		SetStatus(string(constants.DocumentStatusFailed)).
		SetFailureCode(string(code)).
		SetErrorMessage(message).
		SetProcessedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to finish document (FAILED)", "document_id", id, "error", err)
		return err
	}
	if n == 0 {
		return r.explainStaleWrite(ctx, id, constants.DocumentStatusFailed)
	}
	r.logger.Warn("document failed", "document_id", id, "code", code, "error", message)
	return nil
}

func (r *documentRepo) Delete(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row, err := r.ent.Document.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("document %s: %w", id, common.ErrNotFound)
		}
		return nil, err
	}
	if err := r.ent.Document.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("document %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("failed to delete document", "document_id", id, "error", err)
		return nil, err
	}
	r.logger.Info("document deleted", "document_id", id)
	return toEntityDocument(row), nil
}

// explainStaleWrite distinguishes a lost update (row deleted) from a stale
// transition (row already moved on); neither is applied.
func (r *documentRepo) explainStaleWrite(ctx context.Context, id uuid.UUID, wanted constants.DocumentStatus) error {
	exists, err := r.ent.Document.Query().Where(entdoc.ID(id)).Exist(ctx)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("document %s: %w", id, common.ErrNotFound)
	}
	return fmt.Errorf("document %s: stale transition to %s: %w", id, wanted, common.ErrConflict)
}

func toEntityDocument(row *ent.Document) *entity.Document {
	d := &entity.Document{
		ID:          row.ID,
		Filename:    row.Filename,
		FileExt:     row.FileExt,
		FileType:    constants.Format(row.FileType),
		FileSize:    row.FileSize,
		ContentPath: row.ContentPath,
		BatchID:     row.BatchID,
		Status:      constants.DocumentStatus(row.Status),
		ErrorMsg:    row.ErrorMessage,
		CreatedAt:   row.CreatedAt,
		ProcessedAt: row.ProcessedAt,
	}
	if row.FailureCode != nil {
		code := constants.FailureCode(*row.FailureCode)
		d.FailureCode = &code
	}
	if constants.DocumentStatus(row.Status) == constants.DocumentStatusCompleted {
		d.Summary = row.Summary
		d.StructuredData = row.StructuredData
		d.Category = row.Category
		d.FinancialType = row.FinancialType
		d.CategoryConfidence = row.CategoryConfidence
		d.CategoryReasoning = row.CategoryReasoning
	}
	return d
}
