package constants

// DocumentStatus is the canonical lifecycle state for rows in documents.
type DocumentStatus string

// Stable values (store these exact strings in DB).
const (
	DocumentStatusPending    DocumentStatus = "PENDING"    // accepted, waiting for a worker
	DocumentStatusProcessing DocumentStatus = "PROCESSING" // extract/enrich in progress
	DocumentStatusCompleted  DocumentStatus = "COMPLETED"  // terminal success, result fields populated
	DocumentStatusFailed     DocumentStatus = "FAILED"     // terminal failure, failure_code recorded
)

// IsTerminal reports whether no further transitions can occur.
func (s DocumentStatus) IsTerminal() bool {
	return s == DocumentStatusCompleted || s == DocumentStatusFailed
}

// DocumentStatuses holds the allowed values for the documents.status column.
var DocumentStatuses = []string{
	string(DocumentStatusPending),
	string(DocumentStatusProcessing),
	string(DocumentStatusCompleted),
	string(DocumentStatusFailed),
}

// BatchStatus is the aggregate status derived from member document states.
// It is never set independently of the members.
type BatchStatus string

const (
	BatchStatusPending         BatchStatus = "PENDING"          // no member has started
	BatchStatusProcessing      BatchStatus = "PROCESSING"       // at least one member non-terminal
	BatchStatusCompleted       BatchStatus = "COMPLETED"        // all members COMPLETED
	BatchStatusPartiallyFailed BatchStatus = "PARTIALLY_FAILED" // all terminal, mixed outcomes
	BatchStatusFailed          BatchStatus = "FAILED"           // all members FAILED
)

// BatchStatuses holds the allowed values for the batches.status column.
var BatchStatuses = []string{
	string(BatchStatusPending),
	string(BatchStatusProcessing),
	string(BatchStatusCompleted),
	string(BatchStatusPartiallyFailed),
	string(BatchStatusFailed),
}

// FailureCode attributes a FAILED document to the stage that produced it.
type FailureCode string

const (
	FailureUnsupportedFormat FailureCode = "UNSUPPORTED_FORMAT"
	FailureExtraction        FailureCode = "EXTRACTION_ERROR"
	FailureEnrichment        FailureCode = "ENRICHMENT_ERROR"
)

// FailureCodes holds the allowed values for the documents.failure_code column.
var FailureCodes = []string{
	string(FailureUnsupportedFormat),
	string(FailureExtraction),
	string(FailureEnrichment),
}
