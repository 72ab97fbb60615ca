package domain

import (
	"time"

	"github.com/google/uuid"
)

// KnowledgeRecord is a saved link after analysis. Created exactly once by a
// successful pipeline run, never mutated afterward, removed only by
// owner-scoped deletion.
type KnowledgeRecord struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId"`
	Category    Category  `json:"category"`
	Headline    string    `json:"headline"`
	Summary     string    `json:"summary"`
	OriginalURL string    `json:"originalUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Analysis is the parsed model output for a URL, before it is persisted.
type Analysis struct {
	Category    Category `json:"category"`
	Headline    string   `json:"headline"`
	Summary     string   `json:"summary"`
	OriginalURL string   `json:"original_url"`
}

// Record builds the record to persist for owner from this analysis.
func (a Analysis) Record(owner uuid.UUID) KnowledgeRecord {
	return KnowledgeRecord{
		OwnerID:     owner,
		Category:    a.Category,
		Headline:    a.Headline,
		Summary:     a.Summary,
		OriginalURL: a.OriginalURL,
	}
}
