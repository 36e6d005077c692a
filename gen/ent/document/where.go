// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/asharhb/document-processor/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldID, id))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFilename, v))
}

// FileExt applies equality check predicate on the "file_ext" field. It's identical to FileExtEQ.
func FileExt(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileExt, v))
}

// FileType applies equality check predicate on the "file_type" field. It's identical to FileTypeEQ.
func FileType(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileType, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileSize, v))
}

// ContentPath applies equality check predicate on the "content_path" field. It's identical to ContentPathEQ.
func ContentPath(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldContentPath, v))
}

// BatchID applies equality check predicate on the "batch_id" field. It's identical to BatchIDEQ.
func BatchID(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldBatchID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStatus, v))
}

// FailureCode applies equality check predicate on the "failure_code" field. It's identical to FailureCodeEQ.
func FailureCode(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFailureCode, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldErrorMessage, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSummary, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCategory, v))
}

// FinancialType applies equality check predicate on the "financial_type" field. It's identical to FinancialTypeEQ.
func FinancialType(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFinancialType, v))
}

// CategoryConfidence applies equality check predicate on the "category_confidence" field. It's identical to CategoryConfidenceEQ.
func CategoryConfidence(v float32) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCategoryConfidence, v))
}

// CategoryReasoning applies equality check predicate on the "category_reasoning" field. It's identical to CategoryReasoningEQ.
func CategoryReasoning(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCategoryReasoning, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldProcessedAt, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFilename, v))
}

// FileExtEQ applies the EQ predicate on the "file_ext" field.
func FileExtEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileExt, v))
}

// FileExtNEQ applies the NEQ predicate on the "file_ext" field.
func FileExtNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFileExt, v))
}

// FileExtIn applies the In predicate on the "file_ext" field.
func FileExtIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFileExt, vs...))
}

// FileExtNotIn applies the NotIn predicate on the "file_ext" field.
func FileExtNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFileExt, vs...))
}

// FileExtGT applies the GT predicate on the "file_ext" field.
func FileExtGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFileExt, v))
}

// FileExtGTE applies the GTE predicate on the "file_ext" field.
func FileExtGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFileExt, v))
}

// FileExtLT applies the LT predicate on the "file_ext" field.
func FileExtLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFileExt, v))
}

// FileExtLTE applies the LTE predicate on the "file_ext" field.
func FileExtLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFileExt, v))
}

// FileExtContains applies the Contains predicate on the "file_ext" field.
func FileExtContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFileExt, v))
}

// FileExtHasPrefix applies the HasPrefix predicate on the "file_ext" field.
func FileExtHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFileExt, v))
}

// FileExtHasSuffix applies the HasSuffix predicate on the "file_ext" field.
func FileExtHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFileExt, v))
}

// FileExtEqualFold applies the EqualFold predicate on the "file_ext" field.
func FileExtEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFileExt, v))
}

// FileExtContainsFold applies the ContainsFold predicate on the "file_ext" field.
func FileExtContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFileExt, v))
}

// FileTypeEQ applies the EQ predicate on the "file_type" field.
func FileTypeEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileType, v))
}

// FileTypeNEQ applies the NEQ predicate on the "file_type" field.
func FileTypeNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFileType, v))
}

// FileTypeIn applies the In predicate on the "file_type" field.
func FileTypeIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFileType, vs...))
}

// FileTypeNotIn applies the NotIn predicate on the "file_type" field.
func FileTypeNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFileType, vs...))
}

// FileTypeGT applies the GT predicate on the "file_type" field.
func FileTypeGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFileType, v))
}

// FileTypeGTE applies the GTE predicate on the "file_type" field.
func FileTypeGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFileType, v))
}

// FileTypeLT applies the LT predicate on the "file_type" field.
func FileTypeLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFileType, v))
}

// FileTypeLTE applies the LTE predicate on the "file_type" field.
func FileTypeLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFileType, v))
}

// FileTypeContains applies the Contains predicate on the "file_type" field.
func FileTypeContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFileType, v))
}

// FileTypeHasPrefix applies the HasPrefix predicate on the "file_type" field.
func FileTypeHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFileType, v))
}

// FileTypeHasSuffix applies the HasSuffix predicate on the "file_type" field.
func FileTypeHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFileType, v))
}

// FileTypeEqualFold applies the EqualFold predicate on the "file_type" field.
func FileTypeEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFileType, v))
}

// FileTypeContainsFold applies the ContainsFold predicate on the "file_type" field.
func FileTypeContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFileType, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int64) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int64) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int64) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int64) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int64) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int64) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int64) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFileSize, v))
}

// ContentPathEQ applies the EQ predicate on the "content_path" field.
func ContentPathEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldContentPath, v))
}

// ContentPathNEQ applies the NEQ predicate on the "content_path" field.
func ContentPathNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldContentPath, v))
}

// ContentPathIn applies the In predicate on the "content_path" field.
func ContentPathIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldContentPath, vs...))
}

// ContentPathNotIn applies the NotIn predicate on the "content_path" field.
func ContentPathNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldContentPath, vs...))
}

// ContentPathGT applies the GT predicate on the "content_path" field.
func ContentPathGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldContentPath, v))
}

// ContentPathGTE applies the GTE predicate on the "content_path" field.
func ContentPathGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldContentPath, v))
}

// ContentPathLT applies the LT predicate on the "content_path" field.
func ContentPathLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldContentPath, v))
}

// ContentPathLTE applies the LTE predicate on the "content_path" field.
func ContentPathLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldContentPath, v))
}

// ContentPathContains applies the Contains predicate on the "content_path" field.
func ContentPathContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldContentPath, v))
}

// ContentPathHasPrefix applies the HasPrefix predicate on the "content_path" field.
func ContentPathHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldContentPath, v))
}

// ContentPathHasSuffix applies the HasSuffix predicate on the "content_path" field.
func ContentPathHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldContentPath, v))
}

// ContentPathIsNil applies the IsNil predicate on the "content_path" field.
func ContentPathIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldContentPath))
}

// ContentPathNotNil applies the NotNil predicate on the "content_path" field.
func ContentPathNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldContentPath))
}

// ContentPathEqualFold applies the EqualFold predicate on the "content_path" field.
func ContentPathEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldContentPath, v))
}

// ContentPathContainsFold applies the ContainsFold predicate on the "content_path" field.
func ContentPathContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldContentPath, v))
}

// BatchIDEQ applies the EQ predicate on the "batch_id" field.
func BatchIDEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldBatchID, v))
}

// BatchIDNEQ applies the NEQ predicate on the "batch_id" field.
func BatchIDNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldBatchID, v))
}

// BatchIDIn applies the In predicate on the "batch_id" field.
func BatchIDIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldBatchID, vs...))
}

// BatchIDNotIn applies the NotIn predicate on the "batch_id" field.
func BatchIDNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldBatchID, vs...))
}

// BatchIDGT applies the GT predicate on the "batch_id" field.
func BatchIDGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldBatchID, v))
}

// BatchIDGTE applies the GTE predicate on the "batch_id" field.
func BatchIDGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldBatchID, v))
}

// BatchIDLT applies the LT predicate on the "batch_id" field.
func BatchIDLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldBatchID, v))
}

// BatchIDLTE applies the LTE predicate on the "batch_id" field.
func BatchIDLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldBatchID, v))
}

// BatchIDContains applies the Contains predicate on the "batch_id" field.
func BatchIDContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldBatchID, v))
}

// BatchIDHasPrefix applies the HasPrefix predicate on the "batch_id" field.
func BatchIDHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldBatchID, v))
}

// BatchIDHasSuffix applies the HasSuffix predicate on the "batch_id" field.
func BatchIDHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldBatchID, v))
}

// BatchIDIsNil applies the IsNil predicate on the "batch_id" field.
func BatchIDIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldBatchID))
}

// BatchIDNotNil applies the NotNil predicate on the "batch_id" field.
func BatchIDNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldBatchID))
}

// BatchIDEqualFold applies the EqualFold predicate on the "batch_id" field.
func BatchIDEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldBatchID, v))
}

// BatchIDContainsFold applies the ContainsFold predicate on the "batch_id" field.
func BatchIDContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldBatchID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldStatus, v))
}

// FailureCodeEQ applies the EQ predicate on the "failure_code" field.
func FailureCodeEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFailureCode, v))
}

// FailureCodeNEQ applies the NEQ predicate on the "failure_code" field.
func FailureCodeNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFailureCode, v))
}

// FailureCodeIn applies the In predicate on the "failure_code" field.
func FailureCodeIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFailureCode, vs...))
}

// FailureCodeNotIn applies the NotIn predicate on the "failure_code" field.
func FailureCodeNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFailureCode, vs...))
}

// FailureCodeGT applies the GT predicate on the "failure_code" field.
func FailureCodeGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFailureCode, v))
}

// FailureCodeGTE applies the GTE predicate on the "failure_code" field.
func FailureCodeGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFailureCode, v))
}

// FailureCodeLT applies the LT predicate on the "failure_code" field.
func FailureCodeLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFailureCode, v))
}

// FailureCodeLTE applies the LTE predicate on the "failure_code" field.
func FailureCodeLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFailureCode, v))
}

// FailureCodeContains applies the Contains predicate on the "failure_code" field.
func FailureCodeContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFailureCode, v))
}

// FailureCodeHasPrefix applies the HasPrefix predicate on the "failure_code" field.
func FailureCodeHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFailureCode, v))
}

// FailureCodeHasSuffix applies the HasSuffix predicate on the "failure_code" field.
func FailureCodeHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFailureCode, v))
}

// FailureCodeIsNil applies the IsNil predicate on the "failure_code" field.
func FailureCodeIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldFailureCode))
}

// FailureCodeNotNil applies the NotNil predicate on the "failure_code" field.
func FailureCodeNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldFailureCode))
}

// FailureCodeEqualFold applies the EqualFold predicate on the "failure_code" field.
func FailureCodeEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFailureCode, v))
}

// FailureCodeContainsFold applies the ContainsFold predicate on the "failure_code" field.
func FailureCodeContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFailureCode, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldErrorMessage, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldSummary, v))
}

// StructuredDataIsNil applies the IsNil predicate on the "structured_data" field.
func StructuredDataIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldStructuredData))
}

// StructuredDataNotNil applies the NotNil predicate on the "structured_data" field.
func StructuredDataNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldStructuredData))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldCategory, v))
}

// FinancialTypeEQ applies the EQ predicate on the "financial_type" field.
func FinancialTypeEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFinancialType, v))
}

// FinancialTypeNEQ applies the NEQ predicate on the "financial_type" field.
func FinancialTypeNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFinancialType, v))
}

// FinancialTypeIn applies the In predicate on the "financial_type" field.
func FinancialTypeIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFinancialType, vs...))
}

// FinancialTypeNotIn applies the NotIn predicate on the "financial_type" field.
func FinancialTypeNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFinancialType, vs...))
}

// FinancialTypeGT applies the GT predicate on the "financial_type" field.
func FinancialTypeGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFinancialType, v))
}

// FinancialTypeGTE applies the GTE predicate on the "financial_type" field.
func FinancialTypeGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFinancialType, v))
}

// FinancialTypeLT applies the LT predicate on the "financial_type" field.
func FinancialTypeLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFinancialType, v))
}

// FinancialTypeLTE applies the LTE predicate on the "financial_type" field.
func FinancialTypeLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFinancialType, v))
}

// FinancialTypeContains applies the Contains predicate on the "financial_type" field.
func FinancialTypeContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFinancialType, v))
}

// FinancialTypeHasPrefix applies the HasPrefix predicate on the "financial_type" field.
func FinancialTypeHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFinancialType, v))
}

// FinancialTypeHasSuffix applies the HasSuffix predicate on the "financial_type" field.
func FinancialTypeHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFinancialType, v))
}

// FinancialTypeIsNil applies the IsNil predicate on the "financial_type" field.
func FinancialTypeIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldFinancialType))
}

// FinancialTypeNotNil applies the NotNil predicate on the "financial_type" field.
func FinancialTypeNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldFinancialType))
}

// FinancialTypeEqualFold applies the EqualFold predicate on the "financial_type" field.
func FinancialTypeEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFinancialType, v))
}

// FinancialTypeContainsFold applies the ContainsFold predicate on the "financial_type" field.
func FinancialTypeContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFinancialType, v))
}

// CategoryConfidenceEQ applies the EQ predicate on the "category_confidence" field.
func CategoryConfidenceEQ(v float32) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCategoryConfidence, v))
}

// CategoryConfidenceNEQ applies the NEQ predicate on the "category_confidence" field.
func CategoryConfidenceNEQ(v float32) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCategoryConfidence, v))
}

// CategoryConfidenceIn applies the In predicate on the "category_confidence" field.
func CategoryConfidenceIn(vs ...float32) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCategoryConfidence, vs...))
}

// CategoryConfidenceNotIn applies the NotIn predicate on the "category_confidence" field.
func CategoryConfidenceNotIn(vs ...float32) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCategoryConfidence, vs...))
}

// CategoryConfidenceGT applies the GT predicate on the "category_confidence" field.
func CategoryConfidenceGT(v float32) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCategoryConfidence, v))
}

// CategoryConfidenceGTE applies the GTE predicate on the "category_confidence" field.
func CategoryConfidenceGTE(v float32) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCategoryConfidence, v))
}

// CategoryConfidenceLT applies the LT predicate on the "category_confidence" field.
func CategoryConfidenceLT(v float32) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCategoryConfidence, v))
}

// CategoryConfidenceLTE applies the LTE predicate on the "category_confidence" field.
func CategoryConfidenceLTE(v float32) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCategoryConfidence, v))
}

// CategoryConfidenceIsNil applies the IsNil predicate on the "category_confidence" field.
func CategoryConfidenceIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldCategoryConfidence))
}

// CategoryConfidenceNotNil applies the NotNil predicate on the "category_confidence" field.
func CategoryConfidenceNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldCategoryConfidence))
}

// CategoryReasoningEQ applies the EQ predicate on the "category_reasoning" field.
func CategoryReasoningEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCategoryReasoning, v))
}

// CategoryReasoningNEQ applies the NEQ predicate on the "category_reasoning" field.
func CategoryReasoningNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCategoryReasoning, v))
}

// CategoryReasoningIn applies the In predicate on the "category_reasoning" field.
func CategoryReasoningIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCategoryReasoning, vs...))
}

// CategoryReasoningNotIn applies the NotIn predicate on the "category_reasoning" field.
func CategoryReasoningNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCategoryReasoning, vs...))
}

// CategoryReasoningGT applies the GT predicate on the "category_reasoning" field.
func CategoryReasoningGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCategoryReasoning, v))
}

// CategoryReasoningGTE applies the GTE predicate on the "category_reasoning" field.
func CategoryReasoningGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCategoryReasoning, v))
}

// CategoryReasoningLT applies the LT predicate on the "category_reasoning" field.
func CategoryReasoningLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCategoryReasoning, v))
}

// CategoryReasoningLTE applies the LTE predicate on the "category_reasoning" field.
func CategoryReasoningLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCategoryReasoning, v))
}

// CategoryReasoningContains applies the Contains predicate on the "category_reasoning" field.
func CategoryReasoningContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldCategoryReasoning, v))
}

// CategoryReasoningHasPrefix applies the HasPrefix predicate on the "category_reasoning" field.
func CategoryReasoningHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldCategoryReasoning, v))
}

// CategoryReasoningHasSuffix applies the HasSuffix predicate on the "category_reasoning" field.
func CategoryReasoningHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldCategoryReasoning, v))
}

// CategoryReasoningIsNil applies the IsNil predicate on the "category_reasoning" field.
func CategoryReasoningIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldCategoryReasoning))
}

// CategoryReasoningNotNil applies the NotNil predicate on the "category_reasoning" field.
func CategoryReasoningNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldCategoryReasoning))
}

// CategoryReasoningEqualFold applies the EqualFold predicate on the "category_reasoning" field.
func CategoryReasoningEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldCategoryReasoning, v))
}

// CategoryReasoningContainsFold applies the ContainsFold predicate on the "category_reasoning" field.
func CategoryReasoningContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldCategoryReasoning, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCreatedAt, v))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldProcessedAt, v))
}

// ProcessedAtIsNil applies the IsNil predicate on the "processed_at" field.
func ProcessedAtIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldProcessedAt))
}

// ProcessedAtNotNil applies the NotNil predicate on the "processed_at" field.
func ProcessedAtNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldProcessedAt))
}

// HasBatch applies the HasEdge predicate on the "batch" edge.
func HasBatch() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BatchTable, BatchColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBatchWith applies the HasEdge predicate on the "batch" edge with a given conditions (other predicates).
func HasBatchWith(preds ...predicate.Batch) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newBatchStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Document) predicate.Document {
	return predicate.Document(sql.NotPredicates(p))
}
