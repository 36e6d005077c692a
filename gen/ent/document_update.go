// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/asharhb/document-processor/gen/ent/batch"
	"github.com/asharhb/document-processor/gen/ent/document"
	"github.com/asharhb/document-processor/gen/ent/predicate"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdate) SetFilename(v string) *DocumentUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFilename(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *DocumentUpdate) SetFileExt(v string) *DocumentUpdate {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileExt(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetFileType sets the "file_type" field.
func (_u *DocumentUpdate) SetFileType(v string) *DocumentUpdate {
	_u.mutation.SetFileType(v)
	return _u
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileType(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFileType(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *DocumentUpdate) SetFileSize(v int64) *DocumentUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileSize(v *int64) *DocumentUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *DocumentUpdate) AddFileSize(v int64) *DocumentUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetContentPath sets the "content_path" field.
func (_u *DocumentUpdate) SetContentPath(v string) *DocumentUpdate {
	_u.mutation.SetContentPath(v)
	return _u
}

// SetNillableContentPath sets the "content_path" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableContentPath(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetContentPath(*v)
	}
	return _u
}

// ClearContentPath clears the value of the "content_path" field.
func (_u *DocumentUpdate) ClearContentPath() *DocumentUpdate {
	_u.mutation.ClearContentPath()
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *DocumentUpdate) SetBatchID(v string) *DocumentUpdate {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableBatchID(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// ClearBatchID clears the value of the "batch_id" field.
func (_u *DocumentUpdate) ClearBatchID() *DocumentUpdate {
	_u.mutation.ClearBatchID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdate) SetStatus(v string) *DocumentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableStatus(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFailureCode sets the "failure_code" field.
func (_u *DocumentUpdate) SetFailureCode(v string) *DocumentUpdate {
	_u.mutation.SetFailureCode(v)
	return _u
}

// SetNillableFailureCode sets the "failure_code" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFailureCode(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFailureCode(*v)
	}
	return _u
}

// ClearFailureCode clears the value of the "failure_code" field.
func (_u *DocumentUpdate) ClearFailureCode() *DocumentUpdate {
	_u.mutation.ClearFailureCode()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DocumentUpdate) SetErrorMessage(v string) *DocumentUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableErrorMessage(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DocumentUpdate) ClearErrorMessage() *DocumentUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *DocumentUpdate) SetSummary(v string) *DocumentUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSummary(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *DocumentUpdate) ClearSummary() *DocumentUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetStructuredData sets the "structured_data" field.
func (_u *DocumentUpdate) SetStructuredData(v json.RawMessage) *DocumentUpdate {
	_u.mutation.SetStructuredData(v)
	return _u
}

// AppendStructuredData appends value to the "structured_data" field.
func (_u *DocumentUpdate) AppendStructuredData(v json.RawMessage) *DocumentUpdate {
	_u.mutation.AppendStructuredData(v)
	return _u
}

// ClearStructuredData clears the value of the "structured_data" field.
func (_u *DocumentUpdate) ClearStructuredData() *DocumentUpdate {
	_u.mutation.ClearStructuredData()
	return _u
}

// SetCategory sets the "category" field.
func (_u *DocumentUpdate) SetCategory(v string) *DocumentUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCategory(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *DocumentUpdate) ClearCategory() *DocumentUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetFinancialType sets the "financial_type" field.
func (_u *DocumentUpdate) SetFinancialType(v string) *DocumentUpdate {
	_u.mutation.SetFinancialType(v)
	return _u
}

// SetNillableFinancialType sets the "financial_type" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFinancialType(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFinancialType(*v)
	}
	return _u
}

// ClearFinancialType clears the value of the "financial_type" field.
func (_u *DocumentUpdate) ClearFinancialType() *DocumentUpdate {
	_u.mutation.ClearFinancialType()
	return _u
}

// SetCategoryConfidence sets the "category_confidence" field.
func (_u *DocumentUpdate) SetCategoryConfidence(v float32) *DocumentUpdate {
	_u.mutation.ResetCategoryConfidence()
	_u.mutation.SetCategoryConfidence(v)
	return _u
}

// SetNillableCategoryConfidence sets the "category_confidence" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCategoryConfidence(v *float32) *DocumentUpdate {
	if v != nil {
		_u.SetCategoryConfidence(*v)
	}
	return _u
}

// AddCategoryConfidence adds value to the "category_confidence" field.
func (_u *DocumentUpdate) AddCategoryConfidence(v float32) *DocumentUpdate {
	_u.mutation.AddCategoryConfidence(v)
	return _u
}

// ClearCategoryConfidence clears the value of the "category_confidence" field.
func (_u *DocumentUpdate) ClearCategoryConfidence() *DocumentUpdate {
	_u.mutation.ClearCategoryConfidence()
	return _u
}

// SetCategoryReasoning sets the "category_reasoning" field.
func (_u *DocumentUpdate) SetCategoryReasoning(v string) *DocumentUpdate {
	_u.mutation.SetCategoryReasoning(v)
	return _u
}

// SetNillableCategoryReasoning sets the "category_reasoning" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCategoryReasoning(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetCategoryReasoning(*v)
	}
	return _u
}

// ClearCategoryReasoning clears the value of the "category_reasoning" field.
func (_u *DocumentUpdate) ClearCategoryReasoning() *DocumentUpdate {
	_u.mutation.ClearCategoryReasoning()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *DocumentUpdate) SetProcessedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableProcessedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *DocumentUpdate) ClearProcessedAt() *DocumentUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetBatch sets the "batch" edge to the Batch entity.
func (_u *DocumentUpdate) SetBatch(v *Batch) *DocumentUpdate {
	return _u.SetBatchID(v.ID)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearBatch clears the "batch" edge to the Batch entity.
func (_u *DocumentUpdate) ClearBatch() *DocumentUpdate {
	_u.mutation.ClearBatch()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := document.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "Document.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileType(); ok {
		if err := document.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`ent: validator failed for field "Document.file_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := document.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Document.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailureCode(); ok {
		if err := document.FailureCodeValidator(v); err != nil {
			return &ValidationError{Name: "failure_code", err: fmt.Errorf(`ent: validator failed for field "Document.failure_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := document.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Document.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FinancialType(); ok {
		if err := document.FinancialTypeValidator(v); err != nil {
			return &ValidationError{Name: "financial_type", err: fmt.Errorf(`ent: validator failed for field "Document.financial_type": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(document.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileType(); ok {
		_spec.SetField(document.FieldFileType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(document.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(document.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ContentPath(); ok {
		_spec.SetField(document.FieldContentPath, field.TypeString, value)
	}
	if _u.mutation.ContentPathCleared() {
		_spec.ClearField(document.FieldContentPath, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.FailureCode(); ok {
		_spec.SetField(document.FieldFailureCode, field.TypeString, value)
	}
	if _u.mutation.FailureCodeCleared() {
		_spec.ClearField(document.FieldFailureCode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(document.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(document.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(document.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(document.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.StructuredData(); ok {
		_spec.SetField(document.FieldStructuredData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStructuredData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldStructuredData, value)
		})
	}
	if _u.mutation.StructuredDataCleared() {
		_spec.ClearField(document.FieldStructuredData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(document.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(document.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.FinancialType(); ok {
		_spec.SetField(document.FieldFinancialType, field.TypeString, value)
	}
	if _u.mutation.FinancialTypeCleared() {
		_spec.ClearField(document.FieldFinancialType, field.TypeString)
	}
	if value, ok := _u.mutation.CategoryConfidence(); ok {
		_spec.SetField(document.FieldCategoryConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedCategoryConfidence(); ok {
		_spec.AddField(document.FieldCategoryConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.CategoryConfidenceCleared() {
		_spec.ClearField(document.FieldCategoryConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.CategoryReasoning(); ok {
		_spec.SetField(document.FieldCategoryReasoning, field.TypeString, value)
	}
	if _u.mutation.CategoryReasoningCleared() {
		_spec.ClearField(document.FieldCategoryReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(document.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(document.FieldProcessedAt, field.TypeTime)
	}
	if _u.mutation.BatchCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdateOne) SetFilename(v string) *DocumentUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFilename(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *DocumentUpdateOne) SetFileExt(v string) *DocumentUpdateOne {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileExt(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetFileType sets the "file_type" field.
func (_u *DocumentUpdateOne) SetFileType(v string) *DocumentUpdateOne {
	_u.mutation.SetFileType(v)
	return _u
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileType(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileType(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *DocumentUpdateOne) SetFileSize(v int64) *DocumentUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileSize(v *int64) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *DocumentUpdateOne) AddFileSize(v int64) *DocumentUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetContentPath sets the "content_path" field.
func (_u *DocumentUpdateOne) SetContentPath(v string) *DocumentUpdateOne {
	_u.mutation.SetContentPath(v)
	return _u
}

// SetNillableContentPath sets the "content_path" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableContentPath(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetContentPath(*v)
	}
	return _u
}

// ClearContentPath clears the value of the "content_path" field.
func (_u *DocumentUpdateOne) ClearContentPath() *DocumentUpdateOne {
	_u.mutation.ClearContentPath()
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *DocumentUpdateOne) SetBatchID(v string) *DocumentUpdateOne {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableBatchID(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// ClearBatchID clears the value of the "batch_id" field.
func (_u *DocumentUpdateOne) ClearBatchID() *DocumentUpdateOne {
	_u.mutation.ClearBatchID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdateOne) SetStatus(v string) *DocumentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableStatus(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFailureCode sets the "failure_code" field.
func (_u *DocumentUpdateOne) SetFailureCode(v string) *DocumentUpdateOne {
	_u.mutation.SetFailureCode(v)
	return _u
}

// SetNillableFailureCode sets the "failure_code" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFailureCode(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFailureCode(*v)
	}
	return _u
}

// ClearFailureCode clears the value of the "failure_code" field.
func (_u *DocumentUpdateOne) ClearFailureCode() *DocumentUpdateOne {
	_u.mutation.ClearFailureCode()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DocumentUpdateOne) SetErrorMessage(v string) *DocumentUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableErrorMessage(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DocumentUpdateOne) ClearErrorMessage() *DocumentUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *DocumentUpdateOne) SetSummary(v string) *DocumentUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSummary(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *DocumentUpdateOne) ClearSummary() *DocumentUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetStructuredData sets the "structured_data" field.
func (_u *DocumentUpdateOne) SetStructuredData(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.SetStructuredData(v)
	return _u
}

// AppendStructuredData appends value to the "structured_data" field.
func (_u *DocumentUpdateOne) AppendStructuredData(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.AppendStructuredData(v)
	return _u
}

// ClearStructuredData clears the value of the "structured_data" field.
func (_u *DocumentUpdateOne) ClearStructuredData() *DocumentUpdateOne {
	_u.mutation.ClearStructuredData()
	return _u
}

// SetCategory sets the "category" field.
func (_u *DocumentUpdateOne) SetCategory(v string) *DocumentUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCategory(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *DocumentUpdateOne) ClearCategory() *DocumentUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetFinancialType sets the "financial_type" field.
func (_u *DocumentUpdateOne) SetFinancialType(v string) *DocumentUpdateOne {
	_u.mutation.SetFinancialType(v)
	return _u
}

// SetNillableFinancialType sets the "financial_type" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFinancialType(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFinancialType(*v)
	}
	return _u
}

// ClearFinancialType clears the value of the "financial_type" field.
func (_u *DocumentUpdateOne) ClearFinancialType() *DocumentUpdateOne {
	_u.mutation.ClearFinancialType()
	return _u
}

// SetCategoryConfidence sets the "category_confidence" field.
func (_u *DocumentUpdateOne) SetCategoryConfidence(v float32) *DocumentUpdateOne {
	_u.mutation.ResetCategoryConfidence()
	_u.mutation.SetCategoryConfidence(v)
	return _u
}

// SetNillableCategoryConfidence sets the "category_confidence" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCategoryConfidence(v *float32) *DocumentUpdateOne {
	if v != nil {
		_u.SetCategoryConfidence(*v)
	}
	return _u
}

// AddCategoryConfidence adds value to the "category_confidence" field.
func (_u *DocumentUpdateOne) AddCategoryConfidence(v float32) *DocumentUpdateOne {
	_u.mutation.AddCategoryConfidence(v)
	return _u
}

// ClearCategoryConfidence clears the value of the "category_confidence" field.
func (_u *DocumentUpdateOne) ClearCategoryConfidence() *DocumentUpdateOne {
	_u.mutation.ClearCategoryConfidence()
	return _u
}

// SetCategoryReasoning sets the "category_reasoning" field.
func (_u *DocumentUpdateOne) SetCategoryReasoning(v string) *DocumentUpdateOne {
	_u.mutation.SetCategoryReasoning(v)
	return _u
}

// SetNillableCategoryReasoning sets the "category_reasoning" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCategoryReasoning(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetCategoryReasoning(*v)
	}
	return _u
}

// ClearCategoryReasoning clears the value of the "category_reasoning" field.
func (_u *DocumentUpdateOne) ClearCategoryReasoning() *DocumentUpdateOne {
	_u.mutation.ClearCategoryReasoning()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *DocumentUpdateOne) SetProcessedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableProcessedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *DocumentUpdateOne) ClearProcessedAt() *DocumentUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetBatch sets the "batch" edge to the Batch entity.
func (_u *DocumentUpdateOne) SetBatch(v *Batch) *DocumentUpdateOne {
	return _u.SetBatchID(v.ID)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearBatch clears the "batch" edge to the Batch entity.
func (_u *DocumentUpdateOne) ClearBatch() *DocumentUpdateOne {
	_u.mutation.ClearBatch()
	return _u
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := document.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "Document.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileType(); ok {
		if err := document.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`ent: validator failed for field "Document.file_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := document.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Document.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailureCode(); ok {
		if err := document.FailureCodeValidator(v); err != nil {
			return &ValidationError{Name: "failure_code", err: fmt.Errorf(`ent: validator failed for field "Document.failure_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := document.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Document.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FinancialType(); ok {
		if err := document.FinancialTypeValidator(v); err != nil {
			return &ValidationError{Name: "financial_type", err: fmt.Errorf(`ent: validator failed for field "Document.financial_type": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(document.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileType(); ok {
		_spec.SetField(document.FieldFileType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(document.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(document.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ContentPath(); ok {
		_spec.SetField(document.FieldContentPath, field.TypeString, value)
	}
	if _u.mutation.ContentPathCleared() {
		_spec.ClearField(document.FieldContentPath, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.FailureCode(); ok {
		_spec.SetField(document.FieldFailureCode, field.TypeString, value)
	}
	if _u.mutation.FailureCodeCleared() {
		_spec.ClearField(document.FieldFailureCode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(document.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(document.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(document.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(document.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.StructuredData(); ok {
		_spec.SetField(document.FieldStructuredData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStructuredData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldStructuredData, value)
		})
	}
	if _u.mutation.StructuredDataCleared() {
		_spec.ClearField(document.FieldStructuredData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(document.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(document.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.FinancialType(); ok {
		_spec.SetField(document.FieldFinancialType, field.TypeString, value)
	}
	if _u.mutation.FinancialTypeCleared() {
		_spec.ClearField(document.FieldFinancialType, field.TypeString)
	}
	if value, ok := _u.mutation.CategoryConfidence(); ok {
		_spec.SetField(document.FieldCategoryConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedCategoryConfidence(); ok {
		_spec.AddField(document.FieldCategoryConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.CategoryConfidenceCleared() {
		_spec.ClearField(document.FieldCategoryConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.CategoryReasoning(); ok {
		_spec.SetField(document.FieldCategoryReasoning, field.TypeString, value)
	}
	if _u.mutation.CategoryReasoningCleared() {
		_spec.ClearField(document.FieldCategoryReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(document.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(document.FieldProcessedAt, field.TypeTime)
	}
	if _u.mutation.BatchCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
