// Command inbox_sync runs one pass over the monitored inbox: it fetches
// recent messages, extracts URLs and feeds them through the analysis
// pipeline, then prints the batch report as JSON.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"

	"github.com/wisecache/wisecache/internal/analyzer"
	"github.com/wisecache/wisecache/internal/dto"
	"github.com/wisecache/wisecache/internal/mail"
	"github.com/wisecache/wisecache/internal/pipeline"
	"github.com/wisecache/wisecache/internal/storage/pg"
)

func main() {
	appSettings := NewAppConfig()

	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pool, err := pg.NewConnectionPool(ctx, pg.PoolConfig{ConnStr: cfg.DatabaseURL})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	contentAnalyzer, err := analyzer.NewAnalyzer(analyzer.Config{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
	})
	if err != nil {
		slog.Error("Failed to create analyzer", "error", err)
		os.Exit(1)
	}

	gmailClient, err := mail.NewGmailClient(cfg.Mail)
	if err != nil {
		slog.Error("Failed to create mail client", "error", err)
		os.Exit(1)
	}

	messages, err := gmailClient.ListInbox(ctx)
	if err != nil {
		slog.Error("Failed to read inbox", "error", err)
		os.Exit(1)
	}

	store := pg.NewRecordStore(pool)
	batch := pipeline.NewBatchProcessor(pipeline.NewPipeline(contentAnalyzer, store))

	report := batch.ProcessBatch(ctx, cfg.OwnerID, messages)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(dto.NewBatchResult(report)); err != nil {
		slog.Error("Failed to encode report", "error", err)
		os.Exit(1)
	}
}
