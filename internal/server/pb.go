package server

import (
	"time"

	docprocessorv1 "github.com/asharhb/document-processor/gen/proto/docprocessor/v1"
	"github.com/asharhb/document-processor/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func toPBDocument(d *entity.Document) *docprocessorv1.Document {
	pb := &docprocessorv1.Document{
		Id:           d.ID.String(),
		Filename:     d.Filename,
		FileExt:      d.FileExt,
		FileType:     string(d.FileType),
		FileSize:     d.FileSize,
		BatchId:      strOrEmpty(d.BatchID),
		Status:       string(d.Status),
		ErrorMessage: strOrEmpty(d.ErrorMsg),
		Summary:      strOrEmpty(d.Summary),
		Category:     strOrEmpty(d.Category),
		CreatedAt:    d.CreatedAt.UTC().Format(time.RFC3339),
	}
	if d.FailureCode != nil {
		pb.FailureCode = string(*d.FailureCode)
	}
	if len(d.StructuredData) > 0 {
		pb.StructuredDataJson = string(d.StructuredData)
	}
	pb.FinancialType = strOrEmpty(d.FinancialType)
	if d.CategoryConfidence != nil {
		pb.CategoryConfidence = *d.CategoryConfidence
	}
	pb.CategoryReasoning = strOrEmpty(d.CategoryReasoning)
	if d.ProcessedAt != nil {
		pb.ProcessedAt = d.ProcessedAt.UTC().Format(time.RFC3339)
	}
	return pb
}

func toPBBatch(b *entity.Batch) *docprocessorv1.Batch {
	ids := make([]string, len(b.DocumentIDs))
	for i, id := range b.DocumentIDs {
		ids[i] = id.String()
	}
	return &docprocessorv1.Batch{
		Id:          b.ID,
		Status:      string(b.Status),
		Total:       int32(b.Total),
		DocumentIds: ids,
		CreatedAt:   b.CreatedAt.UTC().Format(time.RFC3339),
	}
}
