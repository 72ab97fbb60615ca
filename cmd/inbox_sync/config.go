package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
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

type SyncConfig struct {
	DatabaseURL   string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OwnerID       uuid.UUID
	Mail          mail.Config
}

func (as *AppConfig) Load() (*SyncConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/inbox_sync/.env")
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

	ownerID, err := uuid.Parse(os.Getenv("OWNER_ID"))
	if err != nil {
		return nil, fmt.Errorf("OWNER_ID must be a valid uuid: %w", err)
	}

	return &SyncConfig{
		DatabaseURL:   dbURL,
		OpenAIAPIKey:  apiKey,
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		OwnerID:       ownerID,
		Mail: mail.Config{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RefreshToken: os.Getenv("GOOGLE_REFRESH_TOKEN"),
		},
	}, nil
}
