package server

import (
	"context"
	"log/slog"
	"strings"

	docprocessorv1 "github.com/asharhb/document-processor/gen/proto/docprocessor/v1"
	"github.com/asharhb/document-processor/internal/common"
	"github.com/asharhb/document-processor/internal/pipeline"
	"github.com/asharhb/document-processor/internal/tracker"
)

type BatchesService struct {
	docprocessorv1.UnimplementedBatchesServiceServer
	processor *pipeline.Processor
	tracker   *tracker.Tracker
	logger    *slog.Logger
}

func NewBatchesService(proc *pipeline.Processor, trk *tracker.Tracker, logger *slog.Logger) *BatchesService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BatchesService{processor: proc, tracker: trk, logger: logger}
}

func (s *BatchesService) SubmitBatch(ctx context.Context, req *docprocessorv1.SubmitBatchRequest) (*docprocessorv1.SubmitBatchResponse, error) {
	files := req.GetFiles()
	if len(files) == 0 {
		return nil, common.InvalidArgumentError("at least one file is required")
	}

	uploads := make([]pipeline.Upload, 0, len(files))
	for _, f := range files {
		if strings.TrimSpace(f.GetFilename()) == "" {
			return nil, common.InvalidArgumentError("every file needs a filename")
		}
		uploads = append(uploads, pipeline.Upload{Filename: f.GetFilename(), Data: f.GetContent()})
	}

	batch, err := s.processor.SubmitBatch(ctx, uploads)
	if err != nil {
		s.logger.Error("submit batch failed", "files", len(files), "error", err)
		return nil, common.ToStatusError(err)
	}

	return &docprocessorv1.SubmitBatchResponse{Batch: toPBBatch(batch)}, nil
}

func (s *BatchesService) GetBatchStatus(ctx context.Context, req *docprocessorv1.GetBatchStatusRequest) (*docprocessorv1.GetBatchStatusResponse, error) {
	id := strings.TrimSpace(req.GetId())
	if id == "" {
		return nil, common.InvalidArgumentError("id is required")
	}

	view, err := s.tracker.GetBatchView(ctx, id, req.GetIncludeDocuments())
	if err != nil {
		return nil, common.ToStatusError(err)
	}

	resp := &docprocessorv1.GetBatchStatusResponse{
		Batch:                toPBBatch(&view.Batch),
		CompletedCount:       int32(view.CompletedCount),
		FailedCount:          int32(view.FailedCount),
		CompletionPercentage: view.CompletionPercentage,
	}
	for _, d := range view.Documents {
		resp.Documents = append(resp.Documents, toPBDocument(d))
	}
	return resp, nil
}

func (s *BatchesService) DeleteBatch(ctx context.Context, req *docprocessorv1.DeleteBatchRequest) (*docprocessorv1.DeleteBatchResponse, error) {
	id := strings.TrimSpace(req.GetId())
	if id == "" {
		return nil, common.InvalidArgumentError("id is required")
	}

	if err := s.tracker.DeleteBatch(ctx, id); err != nil {
		s.logger.Error("delete batch failed", "batch_id", id, "error", err)
		return nil, common.ToStatusError(err)
	}
	return &docprocessorv1.DeleteBatchResponse{}, nil
}
