package llm

import "context"

// EnrichmentFields is the normalized shape we want from the model.
type EnrichmentFields struct {
	Summary        string         `json:"summary"`
	StructuredData map[string]any `json:"structured_data"`
	Category       string         `json:"category"`       // must match AllowedCategories if provided
	FinancialType  string         `json:"financial_type"` // INCOME, EXPENSE or UNKNOWN
	Confidence     float32        `json:"confidence"`     // 0..1
	Reasoning      string         `json:"reasoning"`
}

type EnrichRequest struct {
	Text              string
	FilenameHint      string
	AllowedCategories []string
}

// Enricher is the interface the pipeline depends on. It may be slow
// (seconds) and may fail transiently; the pipeline treats any error as a
// terminal enrichment failure for the document at hand.
type Enricher interface {
	Enrich(ctx context.Context, req EnrichRequest) (EnrichmentFields, []byte /*rawJSON*/, error)
}

// TextRequest asks the model for plain text, optionally grounded on an
// attached image (data URL) for OCR-style extraction.
type TextRequest struct {
	Prompt       string
	Text         string
	ImageDataURL string
}

// TextModel is the capability the extractor uses for image OCR and for
// cleaning up conventionally extracted text.
type TextModel interface {
	GenerateText(ctx context.Context, req TextRequest) (string, error)
}
