package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"entgo.io/ent/dialect"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/asharhb/document-processor/constants"
	"github.com/asharhb/document-processor/internal/common"
	"github.com/asharhb/document-processor/internal/entity"
)

// openTestRepos backs both repositories with a fresh in-memory SQLite
// database, exercising the same code path the local batch CLI uses.
func openTestRepos(t *testing.T) (DocumentRepository, BatchRepository) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	entc, err := OpenSQLite(context.Background(), dsn, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = entc.Close() })
	return NewDocumentRepository(entc, logger), NewBatchRepository(entc, dialect.SQLite, logger)
}

func createMember(t *testing.T, docs DocumentRepository, name string) uuid.UUID {
	t.Helper()
	doc, err := docs.Create(context.Background(), entity.DocumentMeta{
		Filename: name,
		FileExt:  ".txt",
		FileType: constants.TXT,
		FileSize: 64,
	})
	require.NoError(t, err)
	return doc.ID
}

func TestBatchRecomputeOnSQLite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	docs, batches := openTestRepos(t)

	good := createMember(t, docs, "a.txt")
	bad := createMember(t, docs, "b.txt")
	batchID := entity.NewBatchID()
	_, err := batches.Create(ctx, batchID, []uuid.UUID{good, bad})
	require.NoError(t, err)
	require.NoError(t, docs.AssignBatch(ctx, []uuid.UUID{good, bad}, batchID))

	status, err := batches.Recompute(ctx, batchID)
	require.NoError(t, err)
	require.Equal(t, constants.BatchStatusPending, status)

	require.NoError(t, docs.MarkProcessing(ctx, bad))
	require.NoError(t, docs.FinishFailure(ctx, bad, constants.FailureExtraction, "boom"))
	status, err = batches.Recompute(ctx, batchID)
	require.NoError(t, err)
	require.Equal(t, constants.BatchStatusProcessing, status)

	require.NoError(t, docs.MarkProcessing(ctx, good))
	require.NoError(t, docs.FinishSuccess(ctx, good, entity.ProcessingResult{Summary: "ok", StructuredData: json.RawMessage(`{}`)}))
	status, err = batches.Recompute(ctx, batchID)
	require.NoError(t, err)
	require.Equal(t, constants.BatchStatusPartiallyFailed, status)

	b, err := batches.GetByID(ctx, batchID)
	require.NoError(t, err)
	require.Equal(t, constants.BatchStatusPartiallyFailed, b.Status)
}

func TestBatchRecomputeKeepsStatusAfterAllMembersDeleted(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	docs, batches := openTestRepos(t)

	id := createMember(t, docs, "only.txt")
	batchID := entity.NewBatchID()
	_, err := batches.Create(ctx, batchID, []uuid.UUID{id})
	require.NoError(t, err)
	require.NoError(t, docs.AssignBatch(ctx, []uuid.UUID{id}, batchID))

	require.NoError(t, docs.MarkProcessing(ctx, id))
	require.NoError(t, docs.FinishFailure(ctx, id, constants.FailureEnrichment, "boom"))
	status, err := batches.Recompute(ctx, batchID)
	require.NoError(t, err)
	require.Equal(t, constants.BatchStatusFailed, status)

	_, err = docs.Delete(ctx, id)
	require.NoError(t, err)

	// No members left to derive from: the batch must hold FAILED rather
	// than fall back to PENDING.
	status, err = batches.Recompute(ctx, batchID)
	require.NoError(t, err)
	require.Equal(t, constants.BatchStatusFailed, status)

	b, err := batches.GetByID(ctx, batchID)
	require.NoError(t, err)
	require.Equal(t, constants.BatchStatusFailed, b.Status)
}

func TestBatchDeleteOnSQLite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	docs, batches := openTestRepos(t)

	id := createMember(t, docs, "pending.txt")
	batchID := entity.NewBatchID()
	_, err := batches.Create(ctx, batchID, []uuid.UUID{id})
	require.NoError(t, err)
	require.NoError(t, docs.AssignBatch(ctx, []uuid.UUID{id}, batchID))

	// In-flight member blocks deletion.
	err = batches.Delete(ctx, batchID)
	require.ErrorIs(t, err, common.ErrConflict)

	require.NoError(t, docs.MarkProcessing(ctx, id))
	require.NoError(t, docs.FinishSuccess(ctx, id, entity.ProcessingResult{Summary: "ok", StructuredData: json.RawMessage(`{}`)}))
	require.NoError(t, batches.Delete(ctx, batchID))

	_, err = batches.GetByID(ctx, batchID)
	require.ErrorIs(t, err, common.ErrNotFound)

	doc, err := docs.GetByID(ctx, id)
	require.NoError(t, err)
	require.Nil(t, doc.BatchID, "surviving member should no longer reference the deleted batch")
}
