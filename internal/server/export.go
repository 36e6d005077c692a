package server

import (
	"context"
	"log/slog"
	"strings"

	docprocessorv1 "github.com/asharhb/document-processor/gen/proto/docprocessor/v1"
	"github.com/asharhb/document-processor/internal/common"
	"github.com/asharhb/document-processor/internal/export"
)

type ExportServer struct {
	docprocessorv1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportDocuments(ctx context.Context, req *docprocessorv1.ExportDocumentsRequest) (*docprocessorv1.ExportDocumentsResponse, error) {
	var batchID *string
	if b := strings.TrimSpace(req.GetBatchId()); b != "" {
		batchID = &b
	}

	xlsx, err := s.svc.ExportDocumentsXLSX(ctx, batchID, req.GetOnlyCompleted())
	if err != nil {
		s.logger.Error("export.xlsx.failed", "batch_id", req.GetBatchId(), "error", err)
		return nil, common.ToStatusError(err)
	}
	return &docprocessorv1.ExportDocumentsResponse{Xlsx: xlsx}, nil
}
