package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/asharhb/document-processor/constants"
)

// Document represents one uploaded file's processing record for data
// transfer between layers.
type Document struct {
	ID          uuid.UUID                `json:"id"`
	Filename    string                   `json:"filename"`
	FileExt     string                   `json:"file_ext"`
	FileType    constants.Format         `json:"file_type"`
	FileSize    int64                    `json:"file_size"`
	ContentPath *string                  `json:"content_path,omitempty"`
	BatchID     *string                  `json:"batch_id,omitempty"`
	Status      constants.DocumentStatus `json:"status"`
	FailureCode *constants.FailureCode   `json:"failure_code,omitempty"`
	ErrorMsg    *string                  `json:"error_message,omitempty"`

	// Result fields, present iff Status == COMPLETED.
	Summary            *string         `json:"summary,omitempty"`
	StructuredData     json.RawMessage `json:"structured_data,omitempty"`
	Category           *string         `json:"category,omitempty"`
	FinancialType      *string         `json:"financial_type,omitempty"`
	CategoryConfidence *float32        `json:"category_confidence,omitempty"`
	CategoryReasoning  *string         `json:"category_reasoning,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}

// DocumentMeta carries the attributes known at upload acceptance.
type DocumentMeta struct {
	Filename    string
	FileExt     string
	FileType    constants.Format
	FileSize    int64
	ContentPath string
	BatchID     *string
}

// ProcessingResult carries the enrichment output persisted on success.
type ProcessingResult struct {
	Summary            string
	StructuredData     json.RawMessage
	Category           constants.Category
	FinancialType      constants.FinancialType
	CategoryConfidence float32
	CategoryReasoning  string
}
