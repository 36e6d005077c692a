package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"entgo.io/ent/dialect"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	docprocessorv1 "github.com/asharhb/document-processor/gen/proto/docprocessor/v1"
	"github.com/asharhb/document-processor/internal/async"
	"github.com/asharhb/document-processor/internal/common"
	"github.com/asharhb/document-processor/internal/content"
	"github.com/asharhb/document-processor/internal/export"
	"github.com/asharhb/document-processor/internal/extract"
	"github.com/asharhb/document-processor/internal/llm/openai"
	"github.com/asharhb/document-processor/internal/pipeline"
	"github.com/asharhb/document-processor/internal/repository"
	"github.com/asharhb/document-processor/internal/server"
	"github.com/asharhb/document-processor/internal/tracker"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}
	logger.Info("database health OK")

	documents := repository.NewDocumentRepository(entc, logger)
	batches := repository.NewBatchRepository(entc, dialect.Postgres, logger)
	batchTracker := tracker.New(batches, documents, logger)

	store, err := content.NewStore(cfg.Content.Dir, logger)
	if err != nil {
		logger.Error("failed to initialize content store", "dir", cfg.Content.Dir, "error", err)
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

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	docprocessorv1.RegisterDocumentsServiceServer(grpcServer, server.NewDocumentsService(proc, documents, logger))
	docprocessorv1.RegisterBatchesServiceServer(grpcServer, server.NewBatchesService(proc, batchTracker, logger))
	docprocessorv1.RegisterExportServiceServer(grpcServer, server.NewExportServer(export.NewService(documents, logger), logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr, "workers", cfg.Pipeline.Workers)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	// Stop accepting RPCs first, then drain in-flight processing.
	grpcServer.GracefulStop()
	drainCtx, cancel := context.WithTimeout(context.Background(), cfg.Pipeline.ProcessTimeout)
	defer cancel()
	queue.Shutdown(drainCtx)
	logger.Info("stopped")
}
