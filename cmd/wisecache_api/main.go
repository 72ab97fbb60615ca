// Package main WiseCache API
// @title WiseCache API
// @version 1.0
// @description A personal read-it-later knowledge base: submit or email a URL, get it analyzed, categorized and summarized.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/wisecache/wisecache/internal/analyzer"
	"github.com/wisecache/wisecache/internal/auth"
	"github.com/wisecache/wisecache/internal/mail"
	"github.com/wisecache/wisecache/internal/pipeline"
	"github.com/wisecache/wisecache/internal/router"
	"github.com/wisecache/wisecache/internal/server"
	"github.com/wisecache/wisecache/internal/storage/pg"

	_ "github.com/wisecache/wisecache/docs"
)

func main() {
	sCfg, err := server.LoadConfig("cmd/wisecache_api/.env")
	if err != nil {
		slog.Error("Failed to load server config", "error", err)
		os.Exit(1)
	}

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	pool, err := pg.NewConnectionPool(context.Background(), pg.PoolConfig{ConnStr: cfg.DatabaseURL})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	s := server.New(sCfg, pg.NewHealthChecker(pool)).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "WiseCache API is running")
	})

	store := pg.NewRecordStore(pool)

	settings, err := loadAnalyzerSettings(cfg.AnalyzerSettingsPath)
	if err != nil {
		slog.Error("Failed to load analyzer settings", "error", err)
		os.Exit(1)
	}

	contentAnalyzer, err := analyzer.NewAnalyzer(analyzer.Config{
		APIKey:   cfg.OpenAIAPIKey,
		BaseURL:  cfg.OpenAIBaseURL,
		Settings: settings,
	})
	if err != nil {
		slog.Error("Failed to create analyzer", "error", err)
		os.Exit(1)
	}

	authenticator, err := auth.NewAuthenticator(cfg.Auth)
	if err != nil {
		slog.Error("Failed to create authenticator", "error", err)
		os.Exit(1)
	}

	analysisPipeline := pipeline.NewPipeline(contentAnalyzer, store)

	api := s.Echo.Group("/api", authenticator.Middleware())

	router.NewAnalyzeRouter(api, analysisPipeline, store).Bind()
	router.NewRecordsRouter(api, store).Bind()

	if cfg.Mail != nil {
		gmailClient, err := mail.NewGmailClient(*cfg.Mail)
		if err != nil {
			slog.Error("Failed to create mail client", "error", err)
			os.Exit(1)
		}
		batch := pipeline.NewBatchProcessor(analysisPipeline)
		router.NewInboxRouter(api, gmailClient, batch).Bind()
		slog.Info("Inbox processing enabled")
	} else {
		slog.Info("Inbox processing disabled, no mail credentials configured")
	}

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
		pool.Close()
	}()

	if err := s.Start(); err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}
