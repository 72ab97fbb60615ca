package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/wisecache/wisecache/internal/analyzer"
	"github.com/wisecache/wisecache/internal/auth"
	"github.com/wisecache/wisecache/internal/mail"
	"github.com/wisecache/wisecache/pkg/config/env"
)

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type AppConfig struct {
	ENV string
}

type APIConfig struct {
	DatabaseURL string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	// AnalyzerSettingsPath optionally points at a YAML file tuning the
	// model call; defaults apply when unset.
	AnalyzerSettingsPath string

	Auth auth.Config

	// Mail is nil when the inbox integration is not configured; the API
	// then runs without the batch endpoint.
	Mail *mail.Config
}

func (as *AppConfig) Load() (*APIConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/wisecache_api/.env")
	if err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	cfg := &APIConfig{
		DatabaseURL:          dbURL,
		OpenAIAPIKey:         apiKey,
		OpenAIBaseURL:        os.Getenv("OPENAI_BASE_URL"),
		AnalyzerSettingsPath: os.Getenv("ANALYZER_SETTINGS_PATH"),
		Auth: auth.Config{
			Secret: jwtSecret,
			Issuer: os.Getenv("JWT_ISSUER"),
		},
	}

	if os.Getenv("GOOGLE_CLIENT_ID") != "" {
		cfg.Mail = &mail.Config{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RefreshToken: os.Getenv("GOOGLE_REFRESH_TOKEN"),
		}
	}

	return cfg, nil
}

// loadAnalyzerSettings loads the optional settings file, or defaults.
func loadAnalyzerSettings(path string) (*analyzer.Settings, error) {
	if path == "" {
		settings := analyzer.DefaultSettings()
		return &settings, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open analyzer settings: %w", err)
	}
	defer file.Close()

	return analyzer.NewSettingsLoader(file).Load()
}
