package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/asharhb/document-processor/constants"
	"github.com/asharhb/document-processor/internal/async"
	"github.com/asharhb/document-processor/internal/common"
	"github.com/asharhb/document-processor/internal/content"
	"github.com/asharhb/document-processor/internal/entity"
	"github.com/asharhb/document-processor/internal/extract"
	"github.com/asharhb/document-processor/internal/llm"
	"github.com/asharhb/document-processor/internal/repository"
	"github.com/asharhb/document-processor/internal/tracker"
)

// Upload carries one file as submitted by a client.
type Upload struct {
	Filename string
	Data     []byte
}

// Processor drives each accepted document through Extract -> Enrich ->
// Persist without blocking the submitter. Submission validates, creates
// records and enqueues; the worker pool calls ProcessDocument.
type Processor struct {
	logger    *slog.Logger
	extractor extract.TextExtractor
	enricher  llm.Enricher
	documents repository.DocumentRepository
	tracker   *tracker.Tracker
	store     *content.Store
	queue     async.Queue
}

func NewProcessor(
	logger *slog.Logger,
	extractor extract.TextExtractor,
	enricher llm.Enricher,
	documents repository.DocumentRepository,
	batchTracker *tracker.Tracker,
	store *content.Store,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:    logger,
		extractor: extractor,
		enricher:  enricher,
		documents: documents,
		tracker:   batchTracker,
		store:     store,
	}
}

// SetQueue wires the background queue. The queue itself is constructed
// around this processor, so it cannot be a constructor argument.
func (p *Processor) SetQueue(q async.Queue) { p.queue = q }

// SubmitDocument validates, stages and records a single upload, schedules
// its processing, and returns the PENDING record synchronously.
func (p *Processor) SubmitDocument(ctx context.Context, up Upload) (*entity.Document, error) {
	meta, err := p.validate(up)
	if err != nil {
		return nil, err
	}

	path, err := p.store.Put(up.Data, up.Filename)
	if err != nil {
		return nil, err
	}
	meta.ContentPath = path

	doc, err := p.documents.Create(ctx, meta)
	if err != nil {
		return nil, err
	}

	if err := p.queue.Enqueue(ctx, async.Job{DocumentID: doc.ID, SubmittedAt: time.Now()}); err != nil {
		return nil, err
	}
	p.logger.Info("document submitted", "document_id", doc.ID, "filename", doc.Filename)
	return doc, nil
}

// SubmitBatch validates each file independently. Files failing validation
// still get a document created directly in FAILED so batch accounting stays
// consistent; the remainder are scheduled. Returns immediately: the cost is
// O(validation), not O(processing).
func (p *Processor) SubmitBatch(ctx context.Context, uploads []Upload) (*entity.Batch, error) {
	if len(uploads) == 0 {
		return nil, fmt.Errorf("empty batch: %w", common.ErrInvalidInput)
	}

	memberIDs := make([]uuid.UUID, 0, len(uploads))
	pending := make([]uuid.UUID, 0, len(uploads))

	for _, up := range uploads {
		meta, err := p.validate(up)
		if err != nil {
			failed, cerr := p.documents.CreateFailed(ctx, metaForRejected(up), constants.FailureUnsupportedFormat, err.Error())
			if cerr != nil {
				return nil, cerr
			}
			memberIDs = append(memberIDs, failed.ID)
			continue
		}

		path, err := p.store.Put(up.Data, up.Filename)
		if err != nil {
			return nil, err
		}
		meta.ContentPath = path

		doc, err := p.documents.Create(ctx, meta)
		if err != nil {
			return nil, err
		}
		memberIDs = append(memberIDs, doc.ID)
		pending = append(pending, doc.ID)
	}

	batch, err := p.tracker.CreateBatch(ctx, memberIDs)
	if err != nil {
		return nil, err
	}
	if err := p.documents.AssignBatch(ctx, memberIDs, batch.ID); err != nil {
		return nil, err
	}

	for _, id := range pending {
		if err := p.queue.Enqueue(ctx, async.Job{DocumentID: id, BatchID: batch.ID, SubmittedAt: time.Now()}); err != nil {
			return nil, err
		}
	}

	p.logger.Info("batch submitted",
		"batch_id", batch.ID, "total", len(memberIDs), "scheduled", len(pending))
	return batch, nil
}

// ProcessDocument is the background unit of work for one document. Failures
// of extract or enrich are terminal FAILED outcomes, not worker errors; no
// automatic retry happens here, a failed document is re-submitted by the
// client. Updates racing a delete resolve to not-found and are discarded.
func (p *Processor) ProcessDocument(ctx context.Context, id uuid.UUID) error {
	doc, err := p.documents.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			p.logger.Warn("document gone before processing started", "document_id", id)
			return nil
		}
		return err
	}

	if err := p.documents.MarkProcessing(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) || errors.Is(err, common.ErrConflict) {
			p.logger.Warn("skipping stale job", "document_id", id, "error", err)
			return nil
		}
		return err
	}
	p.notify(ctx, doc.BatchID, id, constants.DocumentStatusProcessing)

	if doc.ContentPath == nil {
		return p.fail(ctx, doc, constants.FailureExtraction, "document has no stored content")
	}

	extracted, err := p.extractor.Extract(ctx, *doc.ContentPath, doc.FileType)
	if err != nil {
		return p.fail(ctx, doc, constants.FailureExtraction, err.Error())
	}
	p.logger.Debug("extract stage ok",
		"document_id", id, "method", extracted.Method, "pages", extracted.Pages)

	fields, _, err := p.enricher.Enrich(ctx, llm.EnrichRequest{
		Text:              extracted.Text,
		FilenameHint:      filepath.Base(doc.Filename),
		AllowedCategories: constants.CategoryNames(),
	})
	if err != nil {
		return p.fail(ctx, doc, constants.FailureEnrichment, err.Error())
	}

	result, err := buildResult(fields)
	if err != nil {
		return p.fail(ctx, doc, constants.FailureEnrichment, err.Error())
	}

	if err := p.documents.FinishSuccess(ctx, id, result); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			p.logger.Warn("document deleted mid-processing, result discarded", "document_id", id)
			return nil
		}
		return err
	}
	p.notify(ctx, doc.BatchID, id, constants.DocumentStatusCompleted)
	return nil
}

// DeleteDocument removes the record and the owned raw-content file. Deleting
// a PROCESSING document is permitted; the in-flight unit of work discards
// its late update when it finds the record gone.
func (p *Processor) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	doc, err := p.documents.Delete(ctx, id)
	if err != nil {
		return err
	}
	if doc.ContentPath != nil {
		_ = p.store.Remove(*doc.ContentPath)
	}
	if doc.BatchID != nil {
		if err := p.tracker.OnMemberRemoved(ctx, *doc.BatchID, id); err != nil {
			p.logger.Warn("batch recompute after delete failed", "batch_id", *doc.BatchID, "error", err)
		}
	}
	return nil
}

func (p *Processor) fail(ctx context.Context, doc *entity.Document, code constants.FailureCode, message string) error {
	if err := p.documents.FinishFailure(ctx, doc.ID, code, message); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			p.logger.Warn("document deleted mid-processing, failure discarded", "document_id", doc.ID)
			return nil
		}
		return err
	}
	p.notify(ctx, doc.BatchID, doc.ID, constants.DocumentStatusFailed)
	return fmt.Errorf("document %s failed: %s: %s", doc.ID, code, message)
}

// notify reports a member transition to the batch tracker, exactly once per
// transition, including failure paths. Tracker errors are logged, not
// propagated: the document's own state is already durable.
func (p *Processor) notify(ctx context.Context, batchID *string, id uuid.UUID, state constants.DocumentStatus) {
	if batchID == nil || *batchID == "" {
		return
	}
	if err := p.tracker.OnMemberTransition(ctx, *batchID, id, state); err != nil {
		p.logger.Error("batch notification failed",
			"batch_id", *batchID, "document_id", id, "state", state, "error", err)
	}
}

func (p *Processor) validate(up Upload) (entity.DocumentMeta, error) {
	ext := constants.NormalizeExt(filepath.Ext(up.Filename))
	format := constants.MapExtToFormat(ext)
	if format == "" {
		return entity.DocumentMeta{}, fmt.Errorf("file type %q: %w", ext, common.ErrUnsupportedFormat)
	}
	if len(up.Data) == 0 {
		return entity.DocumentMeta{}, fmt.Errorf("empty file %q: %w", up.Filename, common.ErrInvalidInput)
	}
	return entity.DocumentMeta{
		Filename: up.Filename,
		FileExt:  ext,
		FileType: format,
		FileSize: int64(len(up.Data)),
	}, nil
}

// metaForRejected records what we know about a file that never passed
// validation; its format defaults to TXT because the column is constrained
// to the closed format set.
func metaForRejected(up Upload) entity.DocumentMeta {
	ext := constants.NormalizeExt(filepath.Ext(up.Filename))
	format := constants.MapExtToFormat(ext)
	if format == "" {
		format = constants.TXT
	}
	return entity.DocumentMeta{
		Filename: up.Filename,
		FileExt:  ext,
		FileType: format,
		FileSize: int64(len(up.Data)),
	}
}

func buildResult(fields llm.EnrichmentFields) (entity.ProcessingResult, error) {
	structured, err := json.Marshal(fields.StructuredData)
	if err != nil {
		return entity.ProcessingResult{}, fmt.Errorf("encode structured data: %w", err)
	}

	category, ok := constants.CanonicalizeCategory(fields.Category)
	if !ok {
		category = constants.Other
	}

	confidence := fields.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	return entity.ProcessingResult{
		Summary:            fields.Summary,
		StructuredData:     structured,
		Category:           category,
		FinancialType:      constants.CanonicalizeFinancialType(fields.FinancialType),
		CategoryConfidence: confidence,
		CategoryReasoning:  fields.Reasoning,
	}, nil
}
