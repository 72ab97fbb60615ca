package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/wisecache/wisecache/internal/extract"
	"github.com/wisecache/wisecache/internal/mail"
)

// Entry is the per-message result of a batch run. Messages without a URL
// are recorded as skips, not errors. For URL hits the entry carries the
// extraction source and, for body hits, the originating line.
type Entry struct {
	MessageID string
	URLFound  bool
	URL       string
	Source    extract.Source
	Line      string
	Outcome   Outcome
}

// Report aggregates an inbox batch run in original message order.
type Report struct {
	Entries       []Entry
	TotalMessages int
	WithURLs      int
	Processed     int // newly analyzed and stored
}

// BatchProcessor feeds inbox messages through extraction and the dedup
// pipeline one at a time. Sequential processing is deliberate: it keeps the
// call pattern against the rate-limited model API predictable.
type BatchProcessor struct {
	pipeline *Pipeline
}

func NewBatchProcessor(pipeline *Pipeline) *BatchProcessor {
	return &BatchProcessor{pipeline: pipeline}
}

// ProcessBatch runs every message through extraction and analysis. Failures
// are isolated per message; one bad message never aborts the rest. The
// returned report preserves the supplied message order.
func (b *BatchProcessor) ProcessBatch(ctx context.Context, owner uuid.UUID, messages []mail.Message) *Report {
	start := time.Now()
	report := &Report{
		TotalMessages: len(messages),
	}

	for _, msg := range messages {
		entry := b.processMessage(ctx, owner, msg)
		report.Entries = append(report.Entries, entry)

		if !entry.URLFound {
			continue
		}
		report.WithURLs++
		if entry.Outcome.Status == StatusSuccess {
			report.Processed++
		}
	}

	slog.Info("Inbox batch processed",
		"total", report.TotalMessages,
		"with_urls", report.WithURLs,
		"processed", report.Processed,
		"duration", time.Since(start),
	)

	return report
}

func (b *BatchProcessor) processMessage(ctx context.Context, owner uuid.UUID, msg mail.Message) (entry Entry) {
	entry = Entry{MessageID: msg.ID}

	// One malformed message must not take the batch down.
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Message processing panicked", "message", msg.ID, "panic", r)
			entry.Outcome = failed(FailureProcessing, fmt.Errorf("message processing panicked: %v", r))
		}
	}()

	extraction, ok := extract.FromMessage(msg)
	if !ok {
		slog.Debug("No URL in subject or body lines", "message", msg.ID)
		return entry
	}

	entry.URLFound = true
	entry.URL = extraction.URL
	entry.Source = extraction.Source
	entry.Line = extraction.Line

	slog.Info("Found URL in message",
		"message", msg.ID,
		"url", extraction.URL,
		"source", extraction.Source,
	)

	entry.Outcome = b.pipeline.Process(ctx, owner, extraction.URL)

	return entry
}
