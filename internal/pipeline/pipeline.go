// Package pipeline runs URLs through at-most-once analysis: a dedup check
// against the record store, the model call, and the durable insert.
package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/wisecache/wisecache/internal/domain"
	"github.com/wisecache/wisecache/internal/storage"
)

// Analyzer is the summarization boundary the pipeline calls for URLs it has
// not seen before.
type Analyzer interface {
	Analyze(ctx context.Context, url string) (domain.Analysis, error)
}

// Pipeline wraps the analyzer with a dedup pre-check so each (owner, url)
// pair costs at most one model invocation and at most one stored record.
// The check-then-insert sequence is not atomic; concurrent callers are
// resolved by the store's uniqueness guard, whose conflict error is treated
// as already-processed rather than a failure.
type Pipeline struct {
	analyzer Analyzer
	store    storage.Store
}

func NewPipeline(analyzer Analyzer, store storage.Store) *Pipeline {
	return &Pipeline{
		analyzer: analyzer,
		store:    store,
	}
}

// Process analyzes url for owner unless a record already exists. A success
// outcome always means the record is durably stored: a write failure after
// analysis degrades to an error outcome, never to an unsaved success.
func (p *Pipeline) Process(ctx context.Context, owner uuid.UUID, url string) Outcome {
	existing, err := p.store.FindByURL(ctx, owner, url)
	if err == nil {
		slog.Debug("URL already on record, skipping analysis", "url", url, "record", existing.ID)
		return alreadyProcessed(existing)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		slog.Error("Dedup lookup failed", "url", url, "error", err)
		return failed(FailureLookup, err)
	}

	analysis, err := p.analyzer.Analyze(ctx, url)
	if err != nil {
		slog.Error("Analysis failed", "url", url, "error", err)
		return failed(FailureModel, err)
	}

	record, err := p.store.Insert(ctx, analysis.Record(owner))
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			// A concurrent call won the insert race; surface its record.
			slog.Info("Concurrent insert detected", "url", url)
			if existing, findErr := p.store.FindByURL(ctx, owner, url); findErr == nil {
				return alreadyProcessed(existing)
			}
			return alreadyProcessed(domain.KnowledgeRecord{OwnerID: owner, OriginalURL: url})
		}
		slog.Error("Failed to persist analysis", "url", url, "error", err)
		return failed(FailurePersistence, err)
	}

	slog.Info("URL analyzed and saved",
		"url", url,
		"record", record.ID,
		"category", record.Category,
	)

	return succeeded(record)
}
