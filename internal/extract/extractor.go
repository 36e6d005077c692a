package extract

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/xuri/excelize/v2"

	"github.com/asharhb/document-processor/constants"
	"github.com/asharhb/document-processor/internal/llm"
)

const (
	extractPrompt = "Extract all text from this document, preserving its structure and formatting as much as possible:"
	cleanupPrompt = "Process and clean up this extracted document text, preserving its structure and formatting as much as possible:"
	ocrPrompt     = "Extract all visible text from this image, preserving structure and formatting:"
)

// Extractor is the default TextExtractor. Plain text and spreadsheets are
// decoded locally; PDFs are validated with pdfcpu and handed to the model as
// a file attachment; images go through the model's vision path.
type Extractor struct {
	model  llm.TextModel
	logger *slog.Logger
}

func NewExtractor(model llm.TextModel, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{model: model, logger: logger}
}

func (e *Extractor) Extract(ctx context.Context, path string, format constants.Format) (ExtractionResult, error) {
	start := time.Now()

	var (
		res ExtractionResult
		err error
	)
	switch format {
	case constants.TXT:
		res, err = e.extractText(ctx, path)
	case constants.PDF:
		res, err = e.extractPDF(ctx, path)
	case constants.IMAGE:
		res, err = e.extractImage(ctx, path)
	case constants.OFFICE:
		res, err = e.extractOffice(ctx, path)
	default:
		return ExtractionResult{}, fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		e.logger.Error("extraction failed", "path", path, "format", format, "error", err)
		return ExtractionResult{}, err
	}

	res.Duration = time.Since(start)
	if strings.TrimSpace(res.Text) == "" {
		return ExtractionResult{}, fmt.Errorf("no text extracted from %s", filepath.Base(path))
	}
	e.logger.Debug("extraction ok",
		"path", path, "format", format, "method", res.Method,
		"pages", res.Pages, "bytes", len(res.Text), "duration_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}

func (e *Extractor) extractText(ctx context.Context, path string) (ExtractionResult, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return ExtractionResult{}, fmt.Errorf("read file: %w", err)
	}
	if !utf8.Valid(b) {
		return ExtractionResult{}, fmt.Errorf("file is not valid UTF-8 text")
	}
	text := string(b)

	// Best-effort cleanup pass through the model; fall back to the raw
	// content if the call fails.
	if e.model != nil {
		cleaned, err := e.model.GenerateText(ctx, llm.TextRequest{Prompt: cleanupPrompt, Text: text})
		if err == nil && strings.TrimSpace(cleaned) != "" {
			return ExtractionResult{Text: cleaned, Pages: 1, Method: "text+llm"}, nil
		}
		if err != nil {
			e.logger.Warn("text cleanup failed, using raw content", "path", path, "error", err)
		}
	}
	return ExtractionResult{Text: text, Pages: 1, Method: "text"}, nil
}

func (e *Extractor) extractPDF(ctx context.Context, path string) (ExtractionResult, error) {
	if err := api.ValidateFile(path, nil); err != nil {
		return ExtractionResult{}, fmt.Errorf("invalid pdf: %w", err)
	}
	pages, err := api.PageCountFile(path)
	if err != nil {
		return ExtractionResult{}, fmt.Errorf("pdf page count: %w", err)
	}
	if e.model == nil {
		return ExtractionResult{}, fmt.Errorf("pdf extraction requires a text model")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return ExtractionResult{}, fmt.Errorf("read file: %w", err)
	}
	dataURL := "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(b)
	text, err := e.model.GenerateText(ctx, llm.TextRequest{
		Prompt:       extractPrompt,
		ImageDataURL: dataURL,
	})
	if err != nil {
		return ExtractionResult{}, fmt.Errorf("pdf text extraction: %w", err)
	}
	return ExtractionResult{Text: text, Pages: pages, Method: "pdfcpu+llm"}, nil
}

func (e *Extractor) extractImage(ctx context.Context, path string) (ExtractionResult, error) {
	if e.model == nil {
		return ExtractionResult{}, fmt.Errorf("image extraction requires a text model")
	}
	dataURL, _, err := llm.ReadAsDataURL(path)
	if err != nil {
		return ExtractionResult{}, fmt.Errorf("read image: %w", err)
	}
	text, err := e.model.GenerateText(ctx, llm.TextRequest{
		Prompt:       ocrPrompt,
		ImageDataURL: dataURL,
	})
	if err != nil {
		return ExtractionResult{}, fmt.Errorf("image ocr: %w", err)
	}
	return ExtractionResult{Text: text, Pages: 1, Method: "vision"}, nil
}

func (e *Extractor) extractOffice(ctx context.Context, path string) (ExtractionResult, error) {
	if constants.NormalizeExt(filepath.Ext(path)) == "csv" {
		return e.extractText(ctx, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return ExtractionResult{}, fmt.Errorf("open workbook: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			e.logger.Warn("failed to close workbook", "path", path, "error", cerr)
		}
	}()

	var (
		b        strings.Builder
		warnings []string
	)
	sheets := f.GetSheetList()
	for _, sheet := range sheets {
		rows, err := f.GetRows(sheet)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("sheet %s: %v", sheet, err))
			continue
		}
		b.WriteString(sheet + "\n")
		for _, row := range rows {
			b.WriteString(strings.Join(row, "\t"))
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	return ExtractionResult{
		Text:     b.String(),
		Pages:    len(sheets),
		Method:   "excelize",
		Warnings: warnings,
	}, nil
}
