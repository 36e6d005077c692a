package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	docprocessorv1 "github.com/asharhb/document-processor/gen/proto/docprocessor/v1"
	"github.com/asharhb/document-processor/internal/common"
	"github.com/asharhb/document-processor/internal/pipeline"
	"github.com/asharhb/document-processor/internal/repository"
)

type DocumentsService struct {
	docprocessorv1.UnimplementedDocumentsServiceServer
	processor *pipeline.Processor
	documents repository.DocumentRepository
	logger    *slog.Logger
}

func NewDocumentsService(proc *pipeline.Processor, documents repository.DocumentRepository, logger *slog.Logger) *DocumentsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentsService{processor: proc, documents: documents, logger: logger}
}

func (s *DocumentsService) SubmitDocument(ctx context.Context, req *docprocessorv1.SubmitDocumentRequest) (*docprocessorv1.SubmitDocumentResponse, error) {
	file := req.GetFile()
	if file == nil || strings.TrimSpace(file.GetFilename()) == "" {
		return nil, common.InvalidArgumentError("file with filename is required")
	}

	doc, err := s.processor.SubmitDocument(ctx, pipeline.Upload{
		Filename: file.GetFilename(),
		Data:     file.GetContent(),
	})
	if err != nil {
		s.logger.Error("submit document failed", "filename", file.GetFilename(), "error", err)
		return nil, common.ToStatusError(err)
	}

	return &docprocessorv1.SubmitDocumentResponse{Document: toPBDocument(doc)}, nil
}

func (s *DocumentsService) GetDocument(ctx context.Context, req *docprocessorv1.GetDocumentRequest) (*docprocessorv1.GetDocumentResponse, error) {
	id, err := parseDocumentID(req.GetId())
	if err != nil {
		return nil, err
	}

	doc, err := s.documents.GetByID(ctx, id)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &docprocessorv1.GetDocumentResponse{Document: toPBDocument(doc)}, nil
}

func (s *DocumentsService) ListDocuments(ctx context.Context, _ *docprocessorv1.ListDocumentsRequest) (*docprocessorv1.ListDocumentsResponse, error) {
	docs, err := s.documents.List(ctx)
	if err != nil {
		s.logger.Error("list documents failed", "error", err)
		return nil, common.ToStatusError(err)
	}

	out := make([]*docprocessorv1.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, toPBDocument(d))
	}
	return &docprocessorv1.ListDocumentsResponse{Documents: out}, nil
}

func (s *DocumentsService) DeleteDocument(ctx context.Context, req *docprocessorv1.DeleteDocumentRequest) (*docprocessorv1.DeleteDocumentResponse, error) {
	id, err := parseDocumentID(req.GetId())
	if err != nil {
		return nil, err
	}

	if err := s.processor.DeleteDocument(ctx, id); err != nil {
		s.logger.Error("delete document failed", "document_id", id, "error", err)
		return nil, common.ToStatusError(err)
	}
	return &docprocessorv1.DeleteDocumentResponse{}, nil
}

func parseDocumentID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, common.InvalidArgumentError("id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError("id must be a UUID")
	}
	return id, nil
}
