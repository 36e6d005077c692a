// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/asharhb/document-processor/db/ent/schema"
	"github.com/asharhb/document-processor/gen/ent/batch"
	"github.com/asharhb/document-processor/gen/ent/document"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	batchFields := schema.Batch{}.Fields()
	_ = batchFields
	// batchDescStatus is the schema descriptor for status field.
	batchDescStatus := batchFields[1].Descriptor()
	// batch.DefaultStatus holds the default value on creation for the status field.
	batch.DefaultStatus = batchDescStatus.Default.(string)
	// batch.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	batch.StatusValidator = batchDescStatus.Validators[0].(func(string) error)
	// batchDescTotal is the schema descriptor for total field.
	batchDescTotal := batchFields[2].Descriptor()
	// batch.TotalValidator is a validator for the "total" field. It is called by the builders before save.
	batch.TotalValidator = batchDescTotal.Validators[0].(func(int) error)
	// batchDescCreatedAt is the schema descriptor for created_at field.
	batchDescCreatedAt := batchFields[4].Descriptor()
	// batch.DefaultCreatedAt holds the default value on creation for the created_at field.
	batch.DefaultCreatedAt = batchDescCreatedAt.Default.(func() time.Time)
	// batchDescID is the schema descriptor for id field.
	batchDescID := batchFields[0].Descriptor()
	// batch.IDValidator is a validator for the "id" field. It is called by the builders before save.
	batch.IDValidator = batchDescID.Validators[0].(func(string) error)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[1].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescFileExt is the schema descriptor for file_ext field.
	documentDescFileExt := documentFields[2].Descriptor()
	// document.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	document.FileExtValidator = documentDescFileExt.Validators[0].(func(string) error)
	// documentDescFileType is the schema descriptor for file_type field.
	documentDescFileType := documentFields[3].Descriptor()
	// document.FileTypeValidator is a validator for the "file_type" field. It is called by the builders before save.
	document.FileTypeValidator = func() func(string) error {
		validators := documentDescFileType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(file_type string) error {
			for _, fn := range fns {
				if err := fn(file_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescFileSize is the schema descriptor for file_size field.
	documentDescFileSize := documentFields[4].Descriptor()
	// document.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	document.FileSizeValidator = documentDescFileSize.Validators[0].(func(int64) error)
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[7].Descriptor()
	// document.DefaultStatus holds the default value on creation for the status field.
	document.DefaultStatus = documentDescStatus.Default.(string)
	// document.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	document.StatusValidator = documentDescStatus.Validators[0].(func(string) error)
	// documentDescFailureCode is the schema descriptor for failure_code field.
	documentDescFailureCode := documentFields[8].Descriptor()
	// document.FailureCodeValidator is a validator for the "failure_code" field. It is called by the builders before save.
	document.FailureCodeValidator = documentDescFailureCode.Validators[0].(func(string) error)
	// documentDescCategory is the schema descriptor for category field.
	documentDescCategory := documentFields[12].Descriptor()
	// document.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	document.CategoryValidator = documentDescCategory.Validators[0].(func(string) error)
	// documentDescFinancialType is the schema descriptor for financial_type field.
	documentDescFinancialType := documentFields[13].Descriptor()
	// document.FinancialTypeValidator is a validator for the "financial_type" field. It is called by the builders before save.
	document.FinancialTypeValidator = documentDescFinancialType.Validators[0].(func(string) error)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[16].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
}
