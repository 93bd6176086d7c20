// ingestdir backfills a directory of OCR text files into an organization,
// feeding them through the same pipeline the gRPC server uses.
package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hackybara/expense-tracker/internal/async"
	"github.com/hackybara/expense-tracker/internal/classify"
	"github.com/hackybara/expense-tracker/internal/common"
	"github.com/hackybara/expense-tracker/internal/ingest"
	"github.com/hackybara/expense-tracker/internal/llm/openai"
	repo "github.com/hackybara/expense-tracker/internal/repository"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if len(os.Args) < 3 {
		logger.Error("usage: ingestdir <org_id> <dir>")
		os.Exit(2)
	}
	orgID, err := uuid.Parse(os.Args[1])
	if err != nil {
		logger.Error("invalid org_id", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}
	dir := os.Args[2]

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("DB_URL env var is required")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        10,
		MinConns:        2,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	var aiTier classify.AITier
	if cfg.LLM.APIKey != "" {
		aiTier = openai.NewClient(openai.Config{
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.InsightTimeout,
		}, logger)
	}
	classifier := classify.New(aiTier, cfg.LLM.ClassifyTimeout, logger)

	svc := ingest.NewService(
		repo.NewUserRepository(entc, logger),
		repo.NewVendorRepository(entc, logger),
		repo.NewCategoryRepository(entc, logger),
		repo.NewDocumentRepository(entc, logger),
		repo.NewTransactionRepository(entc, logger),
		classifier,
		nil,
		cfg.Ingest,
		logger,
	)

	queue := async.NewIngestQueue(svc, logger, async.WithWorkers(4))

	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Error("reading directory", "dir", dir, "error", err)
		os.Exit(1)
	}

	queued := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".txt") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		text, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("skipping unreadable file", "path", path, "error", err)
			continue
		}
		queue.Enqueue(async.Job{
			Request: &ingest.Request{
				OrganizationID: orgID,
				Filename:       e.Name(),
				Text:           string(text),
			},
			SubmittedAt: time.Now(),
		})
		queued++
	}
	logger.Info("queued files", "count", queued, "dir", dir)

	queue.Shutdown(ctx)
}
