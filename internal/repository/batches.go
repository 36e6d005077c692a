package repository

import (
	"context"
	"fmt"
	"log/slog"

	"entgo.io/ent/dialect"
	"github.com/google/uuid"

	"github.com/asharhb/document-processor/constants"
	"github.com/asharhb/document-processor/gen/ent"
	entbatch "github.com/asharhb/document-processor/gen/ent/batch"
	entdoc "github.com/asharhb/document-processor/gen/ent/document"
	"github.com/asharhb/document-processor/internal/common"
	"github.com/asharhb/document-processor/internal/entity"
)

// BatchRepository is the durable record grouping N document uploads. The
// aggregate status column is only ever written by Recompute, which derives it
// from the current member states under a row lock, so concurrent member
// transitions serialize their effect and never lose an update.
type BatchRepository interface {
	Create(ctx context.Context, id string, documentIDs []uuid.UUID) (*entity.Batch, error)
	GetByID(ctx context.Context, id string) (*entity.Batch, error)
	Recompute(ctx context.Context, id string) (constants.BatchStatus, error)
	// Delete removes the batch and clears member back-references. It returns
	// ErrConflict while any member is non-terminal.
	Delete(ctx context.Context, id string) error
}

type batchRepo struct {
	ent    *ent.Client
	logger *slog.Logger
	// SQLite has no SELECT .. FOR UPDATE; there the single-connection pool
	// set up by OpenSQLite serializes transactions instead.
	lockRows bool
}

// NewBatchRepository builds the Ent-backed implementation. drv is the dialect
// the client was opened with (dialect.Postgres or dialect.SQLite).
func NewBatchRepository(entc *ent.Client, drv string, logger *slog.Logger) BatchRepository {
	return &batchRepo{ent: entc, logger: logger, lockRows: drv == dialect.Postgres}
}

// lockBatch fetches the batch row inside tx, holding it FOR UPDATE on
// dialects that support row locks.
func (r *batchRepo) lockBatch(ctx context.Context, tx *ent.Tx, id string) (*ent.Batch, error) {
	q := tx.Batch.Query().Where(entbatch.ID(id))
	if r.lockRows {
		q = q.ForUpdate()
	}
	row, err := q.Only(ctx)
	if err != nil && ent.IsNotFound(err) {
		return nil, fmt.Errorf("batch %s: %w", id, common.ErrNotFound)
	}
	return row, err
}

func (r *batchRepo) Create(ctx context.Context, id string, documentIDs []uuid.UUID) (*entity.Batch, error) {
	members := make([]string, len(documentIDs))
	for i, docID := range documentIDs {
		members[i] = docID.String()
	}
	row, err := r.ent.Batch.Create().
		SetID(id).
		SetStatus(string(constants.BatchStatusPending)).
		SetTotal(len(documentIDs)).
		SetMembers(members).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create batch", "batch_id", id, "total", len(documentIDs), "error", err)
		return nil, err
	}
	r.logger.Info("batch created", "batch_id", id, "total", len(documentIDs))
	return toEntityBatch(row)
}

func (r *batchRepo) GetByID(ctx context.Context, id string) (*entity.Batch, error) {
	row, err := r.ent.Batch.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("batch %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("failed to get batch", "batch_id", id, "error", err)
		return nil, err
	}
	return toEntityBatch(row)
}

// Recompute derives and stores the aggregate status from the current member
// states. On Postgres the batch row is locked FOR UPDATE for the duration so
// transitions of different members of the same batch serialize here.
func (r *batchRepo) Recompute(ctx context.Context, id string) (constants.BatchStatus, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	row, err := r.lockBatch(ctx, tx, id)
	if err != nil {
		return "", err
	}

	memberIDs, err := parseMembers(row.Members)
	if err != nil {
		return "", err
	}

	statuses, err := tx.Document.Query().
		Where(entdoc.IDIn(memberIDs...)).
		Select(entdoc.FieldStatus).
		Strings(ctx)
	if err != nil {
		return "", err
	}

	// Members deleted mid-batch can never transition again; they do not
	// participate in the aggregate rule.
	memberStatuses := make([]constants.DocumentStatus, 0, len(statuses))
	for _, s := range statuses {
		memberStatuses = append(memberStatuses, constants.DocumentStatus(s))
	}

	// With every member deleted there is nothing left to derive from; the
	// batch keeps its last stored status instead of sliding back to PENDING.
	next := constants.BatchStatus(row.Status)
	if len(memberStatuses) > 0 {
		next = entity.ComputeBatchStatus(memberStatuses)
		if _, err = tx.Batch.UpdateOneID(id).
			SetStatus(string(next)).
			Save(ctx); err != nil {
			return "", err
		}
	}
	if err = tx.Commit(); err != nil {
		return "", err
	}

	r.logger.Debug("batch status recomputed", "batch_id", id, "status", next)
	return next, nil
}

func (r *batchRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	row, err := r.lockBatch(ctx, tx, id)
	if err != nil {
		return err
	}

	memberIDs, err := parseMembers(row.Members)
	if err != nil {
		return err
	}

	nonTerminal, err := tx.Document.Query().
		Where(
			entdoc.IDIn(memberIDs...),
			entdoc.StatusIn(
				string(constants.DocumentStatusPending),
				string(constants.DocumentStatusProcessing),
			),
		).
		Count(ctx)
	if err != nil {
		return err
	}
	if nonTerminal > 0 {
		err = fmt.Errorf("batch %s has %d in-flight documents: %w", id, nonTerminal, common.ErrConflict)
		return err
	}

	// Members are retained; only the back-reference is cleared so no
	// document points at a deleted batch.
	if _, err = tx.Document.Update().
		Where(entdoc.BatchID(id)).
		ClearBatchID().
		Save(ctx); err != nil {
		return err
	}
	if err = tx.Batch.DeleteOneID(id).Exec(ctx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return err
	}

	r.logger.Info("batch deleted", "batch_id", id, "total", row.Total)
	return nil
}

func parseMembers(members []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		id, err := uuid.Parse(m)
		if err != nil {
			return nil, fmt.Errorf("parse member id %q: %w", m, err)
		}
		out = append(out, id)
	}
	return out, nil
}

func toEntityBatch(row *ent.Batch) (*entity.Batch, error) {
	memberIDs, err := parseMembers(row.Members)
	if err != nil {
		return nil, err
	}
	return &entity.Batch{
		ID:          row.ID,
		Status:      constants.BatchStatus(row.Status),
		Total:       row.Total,
		DocumentIDs: memberIDs,
		CreatedAt:   row.CreatedAt,
	}, nil
}
