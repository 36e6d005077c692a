// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/asharhb/document-processor/gen/ent/batch"
	"github.com/asharhb/document-processor/gen/ent/document"
	"github.com/google/uuid"
)

// DocumentCreate is the builder for creating a Document entity.
type DocumentCreate struct {
	config
	mutation *DocumentMutation
	hooks    []Hook
}

// SetFilename sets the "filename" field.
func (_c *DocumentCreate) SetFilename(v string) *DocumentCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetFileExt sets the "file_ext" field.
func (_c *DocumentCreate) SetFileExt(v string) *DocumentCreate {
	_c.mutation.SetFileExt(v)
	return _c
}

// SetFileType sets the "file_type" field.
func (_c *DocumentCreate) SetFileType(v string) *DocumentCreate {
	_c.mutation.SetFileType(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *DocumentCreate) SetFileSize(v int64) *DocumentCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetContentPath sets the "content_path" field.
func (_c *DocumentCreate) SetContentPath(v string) *DocumentCreate {
	_c.mutation.SetContentPath(v)
	return _c
}

// SetNillableContentPath sets the "content_path" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableContentPath(v *string) *DocumentCreate {
	if v != nil {
		_c.SetContentPath(*v)
	}
	return _c
}

// SetBatchID sets the "batch_id" field.
func (_c *DocumentCreate) SetBatchID(v string) *DocumentCreate {
	_c.mutation.SetBatchID(v)
	return _c
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableBatchID(v *string) *DocumentCreate {
	if v != nil {
		_c.SetBatchID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *DocumentCreate) SetStatus(v string) *DocumentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableStatus(v *string) *DocumentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetFailureCode sets the "failure_code" field.
func (_c *DocumentCreate) SetFailureCode(v string) *DocumentCreate {
	_c.mutation.SetFailureCode(v)
	return _c
}

// SetNillableFailureCode sets the "failure_code" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableFailureCode(v *string) *DocumentCreate {
	if v != nil {
		_c.SetFailureCode(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *DocumentCreate) SetErrorMessage(v string) *DocumentCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableErrorMessage(v *string) *DocumentCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *DocumentCreate) SetSummary(v string) *DocumentCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableSummary(v *string) *DocumentCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetStructuredData sets the "structured_data" field.
func (_c *DocumentCreate) SetStructuredData(v json.RawMessage) *DocumentCreate {
	_c.mutation.SetStructuredData(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *DocumentCreate) SetCategory(v string) *DocumentCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableCategory(v *string) *DocumentCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetFinancialType sets the "financial_type" field.
func (_c *DocumentCreate) SetFinancialType(v string) *DocumentCreate {
	_c.mutation.SetFinancialType(v)
	return _c
}

// SetNillableFinancialType sets the "financial_type" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableFinancialType(v *string) *DocumentCreate {
	if v != nil {
		_c.SetFinancialType(*v)
	}
	return _c
}

// SetCategoryConfidence sets the "category_confidence" field.
func (_c *DocumentCreate) SetCategoryConfidence(v float32) *DocumentCreate {
	_c.mutation.SetCategoryConfidence(v)
	return _c
}

// SetNillableCategoryConfidence sets the "category_confidence" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableCategoryConfidence(v *float32) *DocumentCreate {
	if v != nil {
		_c.SetCategoryConfidence(*v)
	}
	return _c
}

// SetCategoryReasoning sets the "category_reasoning" field.
func (_c *DocumentCreate) SetCategoryReasoning(v string) *DocumentCreate {
	_c.mutation.SetCategoryReasoning(v)
	return _c
}

// SetNillableCategoryReasoning sets the "category_reasoning" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableCategoryReasoning(v *string) *DocumentCreate {
	if v != nil {
		_c.SetCategoryReasoning(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocumentCreate) SetCreatedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableCreatedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *DocumentCreate) SetProcessedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableProcessedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentCreate) SetID(v uuid.UUID) *DocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableID(v *uuid.UUID) *DocumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetBatch sets the "batch" edge to the Batch entity.
func (_c *DocumentCreate) SetBatch(v *Batch) *DocumentCreate {
	return _c.SetBatchID(v.ID)
}

// Mutation returns the DocumentMutation object of the builder.
func (_c *DocumentCreate) Mutation() *DocumentMutation {
	return _c.mutation
}

// Save creates the Document in the database.
func (_c *DocumentCreate) Save(ctx context.Context) (*Document, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentCreate) SaveX(ctx context.Context) *Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := document.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := document.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := document.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentCreate) check() error {
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "Document.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileExt(); !ok {
		return &ValidationError{Name: "file_ext", err: errors.New(`ent: missing required field "Document.file_ext"`)}
	}
	if v, ok := _c.mutation.FileExt(); ok {
		if err := document.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "Document.file_ext": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileType(); !ok {
		return &ValidationError{Name: "file_type", err: errors.New(`ent: missing required field "Document.file_type"`)}
	}
	if v, ok := _c.mutation.FileType(); ok {
		if err := document.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`ent: validator failed for field "Document.file_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "Document.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := document.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Document.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Document.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.FailureCode(); ok {
		if err := document.FailureCodeValidator(v); err != nil {
			return &ValidationError{Name: "failure_code", err: fmt.Errorf(`ent: validator failed for field "Document.failure_code": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := document.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Document.category": %w`, err)}
		}
	}
	if v, ok := _c.mutation.FinancialType(); ok {
		if err := document.FinancialTypeValidator(v); err != nil {
			return &ValidationError{Name: "financial_type", err: fmt.Errorf(`ent: validator failed for field "Document.financial_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Document.created_at"`)}
	}
	return nil
}

func (_c *DocumentCreate) sqlSave(ctx context.Context) (*Document, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DocumentCreate) createSpec() (*Document, *sqlgraph.CreateSpec) {
	var (
		_node = &Document{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(document.Table, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.FileExt(); ok {
		_spec.SetField(document.FieldFileExt, field.TypeString, value)
		_node.FileExt = value
	}
	if value, ok := _c.mutation.FileType(); ok {
		_spec.SetField(document.FieldFileType, field.TypeString, value)
		_node.FileType = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(document.FieldFileSize, field.TypeInt64, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.ContentPath(); ok {
		_spec.SetField(document.FieldContentPath, field.TypeString, value)
		_node.ContentPath = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.FailureCode(); ok {
		_spec.SetField(document.FieldFailureCode, field.TypeString, value)
		_node.FailureCode = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(document.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(document.FieldSummary, field.TypeString, value)
		_node.Summary = &value
	}
	if value, ok := _c.mutation.StructuredData(); ok {
		_spec.SetField(document.FieldStructuredData, field.TypeJSON, value)
		_node.StructuredData = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(document.FieldCategory, field.TypeString, value)
		_node.Category = &value
	}
	if value, ok := _c.mutation.FinancialType(); ok {
		_spec.SetField(document.FieldFinancialType, field.TypeString, value)
		_node.FinancialType = &value
	}
	if value, ok := _c.mutation.CategoryConfidence(); ok {
		_spec.SetField(document.FieldCategoryConfidence, field.TypeFloat32, value)
		_node.CategoryConfidence = &value
	}
	if value, ok := _c.mutation.CategoryReasoning(); ok {
		_spec.SetField(document.FieldCategoryReasoning, field.TypeString, value)
		_node.CategoryReasoning = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(document.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	if nodes := _c.mutation.BatchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.BatchTable,
			Columns: []string{document.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.BatchID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DocumentCreateBulk is the builder for creating many Document entities in bulk.
type DocumentCreateBulk struct {
	config
	err      error
	builders []*DocumentCreate
}

// Save creates the Document entities in the database.
func (_c *DocumentCreateBulk) Save(ctx context.Context) ([]*Document, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Document, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DocumentCreateBulk) SaveX(ctx context.Context) []*Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
