package extract

import (
	"context"
	"time"

	"github.com/asharhb/document-processor/constants"
)

// ExtractionResult is the output of a text extraction run.
type ExtractionResult struct {
	Text     string
	Pages    int
	Method   string
	Duration time.Duration
	Warnings []string
}

// TextExtractor converts stored raw content into plain text, or fails with an
// unsupported/corrupt-format error. The pipeline depends only on this
// contract.
type TextExtractor interface {
	Extract(ctx context.Context, path string, format constants.Format) (ExtractionResult, error)
}
