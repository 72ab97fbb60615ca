package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/wisecache/wisecache/internal/domain"
	"github.com/wisecache/wisecache/internal/pipeline"
)

// AnalysisResult is the wire shape of a single-URL submission outcome.
type AnalysisResult struct {
	Status      string `json:"status"`
	Category    string `json:"category,omitempty"`
	Headline    string `json:"headline,omitempty"`
	Summary     string `json:"summary,omitempty"`
	OriginalURL string `json:"original_url,omitempty"`
	Error       string `json:"error,omitempty"`
	Details     string `json:"details,omitempty"`
}

func NewAnalysisResult(outcome pipeline.Outcome) AnalysisResult {
	if outcome.Status == pipeline.StatusError {
		result := AnalysisResult{
			Status: string(outcome.Status),
			Error:  outcome.Reason.Message(),
		}
		if outcome.Err != nil {
			result.Details = outcome.Err.Error()
		}
		return result
	}

	return AnalysisResult{
		Status:      string(outcome.Status),
		Category:    string(outcome.Record.Category),
		Headline:    outcome.Record.Headline,
		Summary:     outcome.Record.Summary,
		OriginalURL: outcome.Record.OriginalURL,
	}
}

// RecordData is the payload attached to successful batch entries.
type RecordData struct {
	Category    string `json:"category"`
	Headline    string `json:"headline"`
	Summary     string `json:"summary"`
	OriginalURL string `json:"original_url"`
}

// ProcessedURL is one URL-bearing message in a batch report.
type ProcessedURL struct {
	URL     string      `json:"url"`
	Status  string      `json:"status"`
	Data    *RecordData `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details string      `json:"details,omitempty"`
	Source  string      `json:"source"`
	Line    string      `json:"line"`
}

// BatchResult is the wire shape of an inbox batch run. Success refers to the
// batch itself: per-message failures are expected and isolated, so a batch
// that started always reports success true.
type BatchResult struct {
	Success        bool           `json:"success"`
	TotalEmails    int            `json:"totalEmails"`
	EmailsWithURLs int            `json:"emailsWithUrls"`
	ProcessedURLs  int            `json:"processedUrls"`
	URLs           []ProcessedURL `json:"urls"`
}

func NewBatchResult(report *pipeline.Report) BatchResult {
	result := BatchResult{
		Success:        true,
		TotalEmails:    report.TotalMessages,
		EmailsWithURLs: report.WithURLs,
		ProcessedURLs:  report.Processed,
		URLs:           []ProcessedURL{},
	}

	for _, entry := range report.Entries {
		if !entry.URLFound {
			continue
		}

		processed := ProcessedURL{
			URL:    entry.URL,
			Status: string(entry.Outcome.Status),
			Source: string(entry.Source),
			Line:   entry.Line,
		}
		switch entry.Outcome.Status {
		case pipeline.StatusError:
			processed.Error = entry.Outcome.Reason.Message()
			if entry.Outcome.Err != nil {
				processed.Details = entry.Outcome.Err.Error()
			}
		default:
			processed.Data = &RecordData{
				Category:    string(entry.Outcome.Record.Category),
				Headline:    entry.Outcome.Record.Headline,
				Summary:     entry.Outcome.Record.Summary,
				OriginalURL: entry.Outcome.Record.OriginalURL,
			}
		}

		result.URLs = append(result.URLs, processed)
	}

	return result
}

// Record is the wire shape of a stored knowledge record.
type Record struct {
	ID          uuid.UUID `json:"id"`
	Category    string    `json:"category"`
	Icon        string    `json:"icon"`
	Headline    string    `json:"headline"`
	Summary     string    `json:"summary"`
	OriginalURL string    `json:"original_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewRecord(record domain.KnowledgeRecord) Record {
	return Record{
		ID:          record.ID,
		Category:    string(record.Category),
		Icon:        record.Category.Icon(),
		Headline:    record.Headline,
		Summary:     record.Summary,
		OriginalURL: record.OriginalURL,
		CreatedAt:   record.CreatedAt,
	}
}

func NewRecordList(records []domain.KnowledgeRecord) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = NewRecord(r)
	}
	return out
}
