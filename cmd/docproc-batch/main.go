package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"entgo.io/ent/dialect"
	"golang.org/x/sync/errgroup"

	"github.com/asharhb/document-processor/constants"
	"github.com/asharhb/document-processor/internal/async"
	"github.com/asharhb/document-processor/internal/common"
	"github.com/asharhb/document-processor/internal/content"
	"github.com/asharhb/document-processor/internal/export"
	"github.com/asharhb/document-processor/internal/extract"
	"github.com/asharhb/document-processor/internal/llm/openai"
	"github.com/asharhb/document-processor/internal/pipeline"
	"github.com/asharhb/document-processor/internal/repository"
	"github.com/asharhb/document-processor/internal/tracker"
)

// docproc-batch processes a directory of documents end to end against a
// local SQLite database and writes an XLSX report. Useful without a running
// server or Postgres.
func main() {
	var (
		dir = flag.String("dir", "", "directory of documents to process (required)")
		out = flag.String("out", "", "output XLSX path (defaults next to --dir)")
		db  = flag.String("db", "", "sqlite DSN (defaults to in-memory)")
	)
	flag.Parse()

	if *dir == "" {
		fmt.Fprintln(os.Stderr, "Error: --dir is required")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "documents.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	entc, err := repository.OpenSQLite(ctx, *db, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() { _ = entc.Close() }()

	documents := repository.NewDocumentRepository(entc, logger)
	batches := repository.NewBatchRepository(entc, dialect.SQLite, logger)
	batchTracker := tracker.New(batches, documents, logger)

	contentDir := filepath.Join(os.TempDir(), "docproc-content")
	store, err := content.NewStore(contentDir, logger)
	if err != nil {
		logger.Error("failed to initialize content store", "error", err)
		os.Exit(1)
	}

	if cfg.LLM.APIKey == "" {
		logger.Error("OPENAI_API_KEY is required")
		os.Exit(1)
	}
	model := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	extractor := extract.NewExtractor(model, logger)

	proc := pipeline.NewProcessor(logger, extractor, model, documents, batchTracker, store)
	queue := async.NewProcessorQueue(proc, logger,
		async.WithWorkers(cfg.Pipeline.Workers),
		async.WithQueueSize(cfg.Pipeline.QueueSize),
		async.WithProcessTimeout(cfg.Pipeline.ProcessTimeout),
	)
	proc.SetQueue(queue)

	uploads, skipped, err := collectUploads(*dir)
	if err != nil {
		logger.Error("failed to read directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	if len(uploads) == 0 {
		logger.Error("no processable files found", "dir", *dir, "skipped", skipped)
		os.Exit(1)
	}
	logger.Info("collected files", "dir", *dir, "files", len(uploads), "skipped", skipped)

	batch, err := proc.SubmitBatch(ctx, uploads)
	if err != nil {
		logger.Error("batch submission failed", "error", err)
		os.Exit(1)
	}

	// Drain the queue, then report.
	drainCtx, cancel := context.WithTimeout(ctx, time.Duration(len(uploads))*cfg.Pipeline.ProcessTimeout)
	queue.Shutdown(drainCtx)
	cancel()

	view, err := batchTracker.GetBatchView(ctx, batch.ID, false)
	if err != nil {
		logger.Error("failed to read batch status", "batch_id", batch.ID, "error", err)
		os.Exit(1)
	}

	svc := export.NewService(documents, logger)
	xlsx, err := svc.ExportDocumentsXLSX(ctx, &batch.ID, false)
	if err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsx, 0644); err != nil {
		logger.Error("failed to write output file", "path", *out, "error", err)
		os.Exit(1)
	}

	logger.Info("batch processing complete",
		"batch_id", batch.ID,
		"status", view.Status,
		"completed", view.CompletedCount,
		"failed", view.FailedCount,
		"output", *out)

	fmt.Printf("Batch %s: %s\n", batch.ID, view.Status)
	fmt.Printf("- Completed: %d\n", view.CompletedCount)
	fmt.Printf("- Failed: %d\n", view.FailedCount)
	fmt.Printf("- Output: %s\n", *out)
}

// collectUploads reads the supported files directly under dir. Hidden files
// and subdirectories are skipped. Reads fan out with a bounded errgroup;
// results keep directory order.
func collectUploads(dir string) ([]pipeline.Upload, int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, 0, err
	}

	names := make([]string, 0, len(entries))
	skipped := 0
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name[0] == '.' || !constants.IsAllowedExt(constants.NormalizeExt(filepath.Ext(name))) {
			skipped++
			continue
		}
		names = append(names, name)
	}

	uploads := make([]pipeline.Upload, len(names))
	var g errgroup.Group
	g.SetLimit(8)
	for i, name := range names {
		g.Go(func() error {
			data, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil {
				return err
			}
			uploads[i] = pipeline.Upload{Filename: name, Data: data}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return uploads, skipped, nil
}
