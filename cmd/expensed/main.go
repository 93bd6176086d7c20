package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	expensev1 "github.com/hackybara/expense-tracker/gen/proto/expense/v1"
	"github.com/hackybara/expense-tracker/internal/classify"
	"github.com/hackybara/expense-tracker/internal/common"
	"github.com/hackybara/expense-tracker/internal/export"
	"github.com/hackybara/expense-tracker/internal/ingest"
	"github.com/hackybara/expense-tracker/internal/llm"
	"github.com/hackybara/expense-tracker/internal/llm/openai"
	repo "github.com/hackybara/expense-tracker/internal/repository"
	"github.com/hackybara/expense-tracker/internal/server"
	"github.com/hackybara/expense-tracker/internal/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("DB_URL env var is required")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
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
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	usersRepo := repo.NewUserRepository(entc, logger)
	vendorsRepo := repo.NewVendorRepository(entc, logger)
	categoriesRepo := repo.NewCategoryRepository(entc, logger)
	documentsRepo := repo.NewDocumentRepository(entc, logger)
	txsRepo := repo.NewTransactionRepository(entc, logger)
	forecastsRepo := repo.NewForecastRepository(entc, logger)

	// The AI tier is optional; without a key classification falls back to
	// keyword matching only.
	var aiTier classify.AITier
	var insights llm.InsightGenerator
	if cfg.LLM.APIKey != "" {
		client := openai.NewClient(openai.Config{
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.InsightTimeout,
		}, logger)
		aiTier = client
		insights = client
	} else {
		logger.Warn("OPENAI_API_KEY not set, keyword classification only")
	}
	classifier := classify.New(aiTier, cfg.LLM.ClassifyTimeout, logger)

	var blobs storage.BlobStore
	if cfg.Storage.Bucket != "" {
		gcs, err := storage.NewGCSStore(ctx, cfg.Storage.Bucket, cfg.Storage.UploadTimeout, logger)
		if err != nil {
			logger.Error("failed to init blob storage", "bucket", cfg.Storage.Bucket, "error", err)
			os.Exit(1)
		}
		defer gcs.Close()
		blobs = gcs
	}

	ingestSvc := ingest.NewService(usersRepo, vendorsRepo, categoriesRepo, documentsRepo, txsRepo, classifier, blobs, cfg.Ingest, logger)
	exportSvc := export.NewService(txsRepo, logger)

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(server.RequestLogger(logger)))
	hs := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	expensev1.RegisterIngestionServiceServer(grpcServer, server.NewIngestionServer(ingestSvc, logger))
	expensev1.RegisterTransactionsServiceServer(grpcServer, server.NewTransactionsServer(txsRepo, exportSvc, logger))
	expensev1.RegisterForecastServiceServer(grpcServer, server.NewForecastServer(txsRepo, forecastsRepo, insights, cfg.Forecast, logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		grpcServer.GracefulStop()
	}()

	logger.Info("grpc serving", "addr", cfg.Server.GRPCAddr)
	if err := grpcServer.Serve(lis); err != nil {
		logger.Error("grpc server stopped", "error", err)
		os.Exit(1)
	}
}
