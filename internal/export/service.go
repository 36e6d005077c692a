package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/asharhb/document-processor/constants"
	"github.com/asharhb/document-processor/internal/entity"
	"github.com/asharhb/document-processor/internal/repository"
)

// Service is a tiny façade over the document repository that produces XLSX
// bytes for exports.
type Service struct {
	documents repository.DocumentRepository
	logger    *slog.Logger
}

func NewService(documents repository.DocumentRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{documents: documents, logger: logger}
}

// ExportDocumentsXLSX returns an XLSX workbook (as bytes) listing processed
// documents. If batchID is non-nil only that batch's members are included;
// onlyCompleted drops FAILED rows.
func (s *Service) ExportDocumentsXLSX(ctx context.Context, batchID *string, onlyCompleted bool) ([]byte, error) {
	start := time.Now()

	docs, err := s.documents.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}

	rows := make([]*entity.Document, 0, len(docs))
	for _, d := range docs {
		if batchID != nil && (d.BatchID == nil || *d.BatchID != *batchID) {
			continue
		}
		if onlyCompleted && d.Status != constants.DocumentStatusCompleted {
			continue
		}
		rows = append(rows, d)
	}

	f := excelize.NewFile()
	const sheet = "Documents"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Filename",
		"Status",
		"Category",
		"Financial Type",
		"Confidence",
		"Summary",
		"Batch",
		"Submitted",
		"Processed",
		"Error",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, d := range rows {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, d.Filename)
		write(2, string(d.Status))
		write(3, deref(d.Category))
		write(4, deref(d.FinancialType))
		if d.CategoryConfidence != nil {
			write(5, fmt.Sprintf("%.2f", *d.CategoryConfidence))
		} else {
			write(5, "")
		}
		write(6, truncate(deref(d.Summary), 140))
		write(7, deref(d.BatchID))
		write(8, d.CreatedAt.Format("2006-01-02 15:04"))
		if d.ProcessedAt != nil {
			write(9, d.ProcessedAt.Format("2006-01-02 15:04"))
		} else {
			write(9, "")
		}
		write(10, deref(d.ErrorMsg))

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 32) // filename
	_ = f.SetColWidth(sheet, "B", "B", 12) // status
	_ = f.SetColWidth(sheet, "C", "D", 16) // category, financial type
	_ = f.SetColWidth(sheet, "E", "E", 11) // confidence
	_ = f.SetColWidth(sheet, "F", "F", 48) // summary
	_ = f.SetColWidth(sheet, "G", "G", 28) // batch
	_ = f.SetColWidth(sheet, "H", "I", 17) // timestamps
	_ = f.SetColWidth(sheet, "J", "J", 40) // error

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
