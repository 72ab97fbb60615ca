// Package analyzer turns a URL into a categorized headline and summary by
// asking an OpenAI-compatible chat model and parsing its labeled reply.
package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/wisecache/wisecache/internal/domain"
)

type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Config struct {
	APIKey   string
	BaseURL  string
	Settings *Settings
}

// Analyzer invokes the summarization model once per call. It never retries;
// the caller decides what a transport failure means.
type Analyzer struct {
	client   chatCompleter
	settings Settings
}

func NewAnalyzer(cfg Config) (*Analyzer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("analyzer requires an API key")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	settings := DefaultSettings()
	if cfg.Settings != nil {
		settings = *cfg.Settings
	}

	return &Analyzer{
		client:   openai.NewClientWithConfig(clientCfg),
		settings: settings,
	}, nil
}

// Analyze sends url to the model and parses the reply. Missing reply
// sections degrade to defaults; only a transport failure is an error.
func (a *Analyzer) Analyze(ctx context.Context, url string) (domain.Analysis, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.settings.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: a.settings.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: url},
		},
		Temperature: a.settings.Temperature,
		MaxTokens:   a.settings.MaxTokens,
	})
	if err != nil {
		return domain.Analysis{}, fmt.Errorf("chat completion failed: %w", err)
	}

	var raw string
	if len(resp.Choices) > 0 {
		raw = resp.Choices[0].Message.Content
	}
	slog.Debug("Model response received", "url", url, "length", len(raw))

	analysis := Parse(raw)
	analysis.OriginalURL = url

	return analysis, nil
}

// buildSystemPrompt keeps the category vocabulary in the instruction in sync
// with the domain enumeration.
func buildSystemPrompt() string {
	names := make([]string, len(domain.Categories))
	for i, c := range domain.Categories {
		names[i] = string(c)
	}
	vocabulary := strings.Join(names[:len(names)-1], ", ") + ", or " + names[len(names)-1]

	return "You are a helpful assistant that analyzes URLs and extracts key information. " +
		"For each URL, provide a category, headline, and summary. " +
		"The category should be one of: " + vocabulary + ". " +
		"The headline should be concise and engaging. " +
		"The summary should be 3 separate sentences with a line separator. " +
		"Label the sections Category:, Headline: and Summary:."
}
