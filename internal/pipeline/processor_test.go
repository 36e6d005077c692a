package pipeline

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

// fakeDocRepo is an in-memory DocumentRepository with the same transition
// guards as the SQL implementation.
type fakeDocRepo struct {
	mu   sync.Mutex
	docs map[uuid.UUID]*entity.Document
}

func newFakeDocRepo() *fakeDocRepo {
	return &fakeDocRepo{docs: map[uuid.UUID]*entity.Document{}}
}

func (f *fakeDocRepo) Create(_ context.Context, meta entity.DocumentMeta) (*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d := &entity.Document{
		ID:        uuid.New(),
		Filename:  meta.Filename,
		FileExt:   meta.FileExt,
		FileType:  meta.FileType,
		FileSize:  meta.FileSize,
		Status:    constants.DocumentStatusPending,
		CreatedAt: time.Now(),
	}
	if meta.ContentPath != "" {
		path := meta.ContentPath
		d.ContentPath = &path
	}
	f.docs[d.ID] = d
	cp := *d
	return &cp, nil
}

func (f *fakeDocRepo) CreateFailed(ctx context.Context, meta entity.DocumentMeta, code constants.FailureCode, message string) (*entity.Document, error) {
	d, err := f.Create(ctx, meta)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	row := f.docs[d.ID]
	row.Status = constants.DocumentStatusFailed
	row.FailureCode = &code
	row.ErrorMsg = &message
	cp := *row
	return &cp, nil
}

func (f *fakeDocRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.docs[id]
	if !ok {
		return nil, fmt.Errorf("document %s: %w", id, common.ErrNotFound)
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDocRepo) List(_ context.Context) ([]*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Document, 0, len(f.docs))
	for _, d := range f.docs {
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeDocRepo) ListByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Document, 0, len(ids))
	for _, id := range ids {
		if d, ok := f.docs[id]; ok {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeDocRepo) AssignBatch(_ context.Context, ids []uuid.UUID, batchID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range ids {
		if d, ok := f.docs[id]; ok {
			b := batchID
			d.BatchID = &b
		}
	}
	return nil
}

func (f *fakeDocRepo) MarkProcessing(_ context.Context, id uuid.UUID) error {
	return f.transition(id, constants.DocumentStatusPending, func(d *entity.Document) {
		d.Status = constants.DocumentStatusProcessing
	})
}

func (f *fakeDocRepo) FinishSuccess(_ context.Context, id uuid.UUID, result entity.ProcessingResult) error {
	return f.transition(id, constants.DocumentStatusProcessing, func(d *entity.Document) {
		d.Status = constants.DocumentStatusCompleted
		d.Summary = &result.Summary
		d.StructuredData = result.StructuredData
		cat := string(result.Category)
		d.Category = &cat
		fin := string(result.FinancialType)
		d.FinancialType = &fin
		conf := result.CategoryConfidence
		d.CategoryConfidence = &conf
		d.CategoryReasoning = &result.CategoryReasoning
		now := time.Now()
		d.ProcessedAt = &now
	})
}

func (f *fakeDocRepo) FinishFailure(_ context.Context, id uuid.UUID, code constants.FailureCode, message string) error {
	return f.transition(id, constants.DocumentStatusProcessing, func(d *entity.Document) {
		d.Status = constants.DocumentStatusFailed
		d.FailureCode = &code
		d.ErrorMsg = &message
		now := time.Now()
		d.ProcessedAt = &now
	})
}

func (f *fakeDocRepo) Delete(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.docs[id]
	if !ok {
		return nil, fmt.Errorf("document %s: %w", id, common.ErrNotFound)
	}
	delete(f.docs, id)
	cp := *d
	return &cp, nil
}

func (f *fakeDocRepo) transition(id uuid.UUID, want constants.DocumentStatus, apply func(*entity.Document)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.docs[id]
	if !ok {
		return fmt.Errorf("document %s: %w", id, common.ErrNotFound)
	}
	if d.Status != want {
		return fmt.Errorf("document %s is %s, wanted %s: %w", id, d.Status, want, common.ErrConflict)
	}
	apply(d)
	return nil
}

func (f *fakeDocRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.docs)
}

// fakeBatchRepo recomputes the aggregate the same way the SQL implementation
// does, but in memory over the shared fakeDocRepo.
type fakeBatchRepo struct {
	mu      sync.Mutex
	docs    *fakeDocRepo
	batches map[string]*entity.Batch
}

func newFakeBatchRepo(docs *fakeDocRepo) *fakeBatchRepo {
	return &fakeBatchRepo{docs: docs, batches: map[string]*entity.Batch{}}
}

func (f *fakeBatchRepo) Create(_ context.Context, id string, documentIDs []uuid.UUID) (*entity.Batch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := &entity.Batch{
		ID:          id,
		Status:      constants.BatchStatusPending,
		Total:       len(documentIDs),
		DocumentIDs: append([]uuid.UUID(nil), documentIDs...),
		CreatedAt:   time.Now(),
	}
	f.batches[id] = b
	cp := *b
	return &cp, nil
}

func (f *fakeBatchRepo) GetByID(_ context.Context, id string) (*entity.Batch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.batches[id]
	if !ok {
		return nil, fmt.Errorf("batch %s: %w", id, common.ErrNotFound)
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBatchRepo) Recompute(ctx context.Context, id string) (constants.BatchStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.batches[id]
	if !ok {
		return "", fmt.Errorf("batch %s: %w", id, common.ErrNotFound)
	}
	docs, _ := f.docs.ListByIDs(ctx, b.DocumentIDs)
	statuses := make([]constants.DocumentStatus, 0, len(docs))
	for _, d := range docs {
		statuses = append(statuses, d.Status)
	}
	if len(statuses) > 0 {
		b.Status = entity.ComputeBatchStatus(statuses)
	}
	return b.Status, nil
}

func (f *fakeBatchRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.batches[id]
	if !ok {
		return fmt.Errorf("batch %s: %w", id, common.ErrNotFound)
	}
	docs, _ := f.docs.ListByIDs(ctx, b.DocumentIDs)
	for _, d := range docs {
		if !d.Status.IsTerminal() {
			return fmt.Errorf("batch %s has in-flight documents: %w", id, common.ErrConflict)
		}
	}
	delete(f.batches, id)
	return nil
}

// fakeExtractor succeeds with fixed text unless the document's filename is
// listed in failFor.
type fakeExtractor struct {
	text    string
	failFor map[string]struct{}
}

func (f *fakeExtractor) Extract(_ context.Context, path string, _ constants.Format) (extract.ExtractionResult, error) {
	if _, bad := f.failFor[path]; bad {
		return extract.ExtractionResult{}, fmt.Errorf("unreadable content")
	}
	return extract.ExtractionResult{Text: f.text, Method: "text"}, nil
}

type fakeEnricher struct {
	fields llm.EnrichmentFields
	err    error
	delay  time.Duration

	mu       sync.Mutex
	inflight int
	peak     int
}

func (f *fakeEnricher) Enrich(_ context.Context, _ llm.EnrichRequest) (llm.EnrichmentFields, []byte, error) {
	f.mu.Lock()
	f.inflight++
	if f.inflight > f.peak {
		f.peak = f.inflight
	}
	f.mu.Unlock()
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.mu.Lock()
	f.inflight--
	f.mu.Unlock()
	if f.err != nil {
		return llm.EnrichmentFields{}, nil, f.err
	}
	return f.fields, []byte(`{}`), nil
}

// inlineQueue runs each job synchronously on Enqueue, which makes single
// document tests deterministic.
type inlineQueue struct {
	p        *Processor
	deferred bool
	jobs     []async.Job
}

func (q *inlineQueue) Enqueue(ctx context.Context, job async.Job) error {
	q.jobs = append(q.jobs, job)
	if q.deferred {
		return nil
	}
	_ = q.p.ProcessDocument(ctx, job.DocumentID)
	return nil
}

func (q *inlineQueue) Shutdown(context.Context) {}

type pipelineFixture struct {
	processor *Processor
	docs      *fakeDocRepo
	batches   *fakeBatchRepo
	tracker   *tracker.Tracker
	queue     *inlineQueue
	enricher  *fakeEnricher
	extractor *fakeExtractor
}

func newFixture(t *testing.T) *pipelineFixture {
	t.Helper()

	docs := newFakeDocRepo()
	batches := newFakeBatchRepo(docs)
	trk := tracker.New(batches, docs, nil)

	store, err := content.NewStore(t.TempDir(), nil)
	require.NoError(t, err)

	ext := &fakeExtractor{text: "quarterly statement for ACME Corp", failFor: map[string]struct{}{}}
	enr := &fakeEnricher{fields: llm.EnrichmentFields{
		Summary:        "A quarterly financial statement.",
		StructuredData: map[string]any{"company": "ACME Corp"},
		Category:       "Statement",
		FinancialType:  "INCOME",
		Confidence:     0.92,
		Reasoning:      "mentions quarterly figures",
	}}

	p := NewProcessor(nil, ext, enr, docs, trk, store)
	q := &inlineQueue{p: p}
	p.SetQueue(q)

	return &pipelineFixture{
		processor: p,
		docs:      docs,
		batches:   batches,
		tracker:   trk,
		queue:     q,
		enricher:  enr,
		extractor: ext,
	}
}

func TestSubmitDocumentUnsupportedFormat(t *testing.T) {
	t.Parallel()
	fx := newFixture(t)

	_, err := fx.processor.SubmitDocument(context.Background(), Upload{Filename: "binary.exe", Data: []byte{0x4d, 0x5a}})
	require.ErrorIs(t, err, common.ErrUnsupportedFormat)
	assert.Equal(t, 0, fx.docs.count(), "rejected upload must leave no record")
	assert.Empty(t, fx.queue.jobs)
}

func TestSubmitDocumentReturnsPendingBeforeProcessing(t *testing.T) {
	t.Parallel()
	fx := newFixture(t)
	fx.queue.deferred = true

	doc, err := fx.processor.SubmitDocument(context.Background(), Upload{Filename: "report.txt", Data: []byte("hello")})
	require.NoError(t, err)
	assert.Equal(t, constants.DocumentStatusPending, doc.Status)
	assert.Nil(t, doc.Summary)
	require.Len(t, fx.queue.jobs, 1)
	assert.Equal(t, doc.ID, fx.queue.jobs[0].DocumentID)
}

func TestProcessDocumentSuccess(t *testing.T) {
	t.Parallel()
	fx := newFixture(t)

	doc, err := fx.processor.SubmitDocument(context.Background(), Upload{Filename: "report.txt", Data: []byte("hello")})
	require.NoError(t, err)

	got, err := fx.docs.GetByID(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.DocumentStatusCompleted, got.Status)
	require.NotNil(t, got.Summary)
	assert.Equal(t, "A quarterly financial statement.", *got.Summary)
	require.NotNil(t, got.Category)
	assert.Equal(t, "Statement", *got.Category)
	require.NotNil(t, got.FinancialType)
	assert.Equal(t, "INCOME", *got.FinancialType)
	require.NotNil(t, got.CategoryConfidence)
	assert.InDelta(t, 0.92, float64(*got.CategoryConfidence), 0.001)
	assert.NotNil(t, got.ProcessedAt)
	assert.Nil(t, got.FailureCode)
}

func TestProcessDocumentFailureStages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		arrange  func(fx *pipelineFixture, contentPath string)
		wantCode constants.FailureCode
	}{
		{
			name: "extraction failure",
			arrange: func(fx *pipelineFixture, contentPath string) {
				fx.extractor.failFor[contentPath] = struct{}{}
			},
			wantCode: constants.FailureExtraction,
		},
		{
			name: "enrichment failure",
			arrange: func(fx *pipelineFixture, _ string) {
				fx.enricher.err = fmt.Errorf("model unavailable")
			},
			wantCode: constants.FailureEnrichment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fx := newFixture(t)
			fx.queue.deferred = true

			doc, err := fx.processor.SubmitDocument(context.Background(), Upload{Filename: "report.txt", Data: []byte("hello")})
			require.NoError(t, err)
			require.NotNil(t, doc.ContentPath)

			tt.arrange(fx, *doc.ContentPath)
			err = fx.processor.ProcessDocument(context.Background(), doc.ID)
			require.Error(t, err)

			got, err := fx.docs.GetByID(context.Background(), doc.ID)
			require.NoError(t, err)
			assert.Equal(t, constants.DocumentStatusFailed, got.Status)
			require.NotNil(t, got.FailureCode)
			assert.Equal(t, tt.wantCode, *got.FailureCode)
			require.NotNil(t, got.ErrorMsg)
			assert.NotEmpty(t, *got.ErrorMsg)

			// A failed document carries no result fields.
			assert.Nil(t, got.Summary)
			assert.Nil(t, got.Category)
		})
	}
}

func TestSubmitBatchPartialFailure(t *testing.T) {
	t.Parallel()
	fx := newFixture(t)
	fx.queue.deferred = true

	uploads := []Upload{
		{Filename: "good.txt", Data: []byte("fine content")},
		{Filename: "broken.pdf", Data: []byte("%PDF-corrupt")},
		{Filename: "malware.exe", Data: []byte{0x4d, 0x5a}},
	}

	batch, err := fx.processor.SubmitBatch(context.Background(), uploads)
	require.NoError(t, err)
	assert.Equal(t, 3, batch.Total)
	assert.Contains(t, batch.ID, "batch_")

	// Only the two valid files were scheduled; the .exe is FAILED up front.
	require.Len(t, fx.queue.jobs, 2)

	// Make the pdf's extraction fail, then drain the deferred jobs.
	for _, job := range fx.queue.jobs {
		d, err := fx.docs.GetByID(context.Background(), job.DocumentID)
		require.NoError(t, err)
		if d.Filename == "broken.pdf" {
			fx.extractor.failFor[*d.ContentPath] = struct{}{}
		}
	}
	for _, job := range fx.queue.jobs {
		_ = fx.processor.ProcessDocument(context.Background(), job.DocumentID)
	}

	view, err := fx.tracker.GetBatchView(context.Background(), batch.ID, true)
	require.NoError(t, err)
	assert.Equal(t, constants.BatchStatusPartiallyFailed, view.Status)
	assert.Equal(t, 1, view.CompletedCount)
	assert.Equal(t, 2, view.FailedCount)
	assert.InDelta(t, 100.0, view.CompletionPercentage, 0.001)
	require.Len(t, view.Documents, 3)

	byName := map[string]*entity.Document{}
	for _, d := range view.Documents {
		byName[d.Filename] = d
	}
	require.NotNil(t, byName["malware.exe"].FailureCode)
	assert.Equal(t, constants.FailureUnsupportedFormat, *byName["malware.exe"].FailureCode)
	require.NotNil(t, byName["broken.pdf"].FailureCode)
	assert.Equal(t, constants.FailureExtraction, *byName["broken.pdf"].FailureCode)
	assert.Equal(t, constants.DocumentStatusCompleted, byName["good.txt"].Status)
}

func TestSubmitBatchReturnsBeforeProcessing(t *testing.T) {
	t.Parallel()
	fx := newFixture(t)
	fx.queue.deferred = true

	batch, err := fx.processor.SubmitBatch(context.Background(), []Upload{
		{Filename: "a.txt", Data: []byte("a")},
		{Filename: "b.txt", Data: []byte("b")},
	})
	require.NoError(t, err)

	view, err := fx.tracker.GetBatchView(context.Background(), batch.ID, false)
	require.NoError(t, err)
	assert.Equal(t, constants.BatchStatusPending, view.Status)
	assert.InDelta(t, 0.0, view.CompletionPercentage, 0.001)
}

func TestSubmitBatchEmpty(t *testing.T) {
	t.Parallel()
	fx := newFixture(t)

	_, err := fx.processor.SubmitBatch(context.Background(), nil)
	require.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestDeleteDocumentMidProcessingDiscardsResult(t *testing.T) {
	t.Parallel()
	fx := newFixture(t)
	fx.queue.deferred = true

	doc, err := fx.processor.SubmitDocument(context.Background(), Upload{Filename: "report.txt", Data: []byte("hello")})
	require.NoError(t, err)

	// The worker claims the document, then the delete lands before the
	// result write.
	require.NoError(t, fx.docs.MarkProcessing(context.Background(), doc.ID))
	require.NoError(t, fx.processor.DeleteDocument(context.Background(), doc.ID))

	// The late unit of work must treat the missing record as a no-op.
	err = fx.processor.ProcessDocument(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, fx.docs.count(), "deleted document must not be resurrected")
}

func TestDeleteDocumentRecomputesBatch(t *testing.T) {
	t.Parallel()
	fx := newFixture(t)
	fx.queue.deferred = true

	batch, err := fx.processor.SubmitBatch(context.Background(), []Upload{
		{Filename: "a.txt", Data: []byte("a")},
		{Filename: "b.txt", Data: []byte("b")},
	})
	require.NoError(t, err)

	// Complete one member, delete the other while still pending.
	require.NoError(t, fx.processor.ProcessDocument(context.Background(), fx.queue.jobs[0].DocumentID))
	require.NoError(t, fx.processor.DeleteDocument(context.Background(), fx.queue.jobs[1].DocumentID))

	view, err := fx.tracker.GetBatchView(context.Background(), batch.ID, false)
	require.NoError(t, err)
	assert.Equal(t, constants.BatchStatusCompleted, view.Status)
	assert.InDelta(t, 100.0, view.CompletionPercentage, 0.001, "deleted member counts as terminal for progress")
	assert.Equal(t, 1, view.CompletedCount)
}

func TestConcurrentBatchProcessing(t *testing.T) {
	t.Parallel()
	fx := newFixture(t)
	fx.enricher.delay = 20 * time.Millisecond

	const workers = 3
	q := async.NewProcessorQueue(fx.processor, nil,
		async.WithWorkers(workers),
		async.WithQueueSize(16),
	)
	fx.processor.SetQueue(q)

	uploads := make([]Upload, 7)
	for i := range uploads {
		uploads[i] = Upload{Filename: fmt.Sprintf("doc-%d.txt", i), Data: []byte(fmt.Sprintf("content %d", i))}
	}

	batch, err := fx.processor.SubmitBatch(context.Background(), uploads)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	view, err := fx.tracker.GetBatchView(context.Background(), batch.ID, true)
	require.NoError(t, err)
	assert.Equal(t, constants.BatchStatusCompleted, view.Status)
	assert.Equal(t, 7, view.CompletedCount)
	assert.InDelta(t, 100.0, view.CompletionPercentage, 0.001)
	for _, d := range view.Documents {
		assert.Equal(t, constants.DocumentStatusCompleted, d.Status, "document %s", d.Filename)
		require.NotNil(t, d.Summary)
	}

	fx.enricher.mu.Lock()
	peak := fx.enricher.peak
	fx.enricher.mu.Unlock()
	assert.LessOrEqual(t, peak, workers, "concurrency must stay within the worker bound")
}

func TestDeleteBatchInFlightConflict(t *testing.T) {
	t.Parallel()
	fx := newFixture(t)
	fx.queue.deferred = true

	batch, err := fx.processor.SubmitBatch(context.Background(), []Upload{
		{Filename: "a.txt", Data: []byte("a")},
	})
	require.NoError(t, err)

	err = fx.tracker.DeleteBatch(context.Background(), batch.ID)
	require.ErrorIs(t, err, common.ErrConflict)

	require.NoError(t, fx.processor.ProcessDocument(context.Background(), fx.queue.jobs[0].DocumentID))
	require.NoError(t, fx.tracker.DeleteBatch(context.Background(), batch.ID))
}

// interface conformance
var (
	_ repository.DocumentRepository = (*fakeDocRepo)(nil)
	_ repository.BatchRepository    = (*fakeBatchRepo)(nil)
)
