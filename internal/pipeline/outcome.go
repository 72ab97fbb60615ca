package pipeline

import (
	"github.com/wisecache/wisecache/internal/domain"
)

type Status string

const (
	StatusSuccess          Status = "success"
	StatusAlreadyProcessed Status = "already_processed"
	StatusError            Status = "error"
)

// FailureReason classifies where in the pipeline a URL failed.
type FailureReason string

const (
	// FailureLookup is a store malfunction during the dedup check, distinct
	// from the legitimate not-found negative.
	FailureLookup FailureReason = "lookup"
	// FailureModel is a transport-level failure calling the summarizer.
	FailureModel FailureReason = "model"
	// FailurePersistence is a store write failure after successful analysis.
	FailurePersistence FailureReason = "persistence"
	// FailureProcessing is a message that broke outside the classified
	// lookup, model and persistence paths.
	FailureProcessing FailureReason = "processing"
)

// Message is the generic user-facing description for the reason; the
// underlying error travels separately as detail.
func (r FailureReason) Message() string {
	switch r {
	case FailureLookup:
		return "Failed to check for existing record"
	case FailurePersistence:
		return "Failed to save analysis"
	case FailureProcessing:
		return "Failed to process message"
	default:
		return "Failed to analyze URL"
	}
}

// Outcome is the result of running one URL through the pipeline. Exactly one
// of the three shapes applies: a stored record (success), a previously
// stored record (already processed), or a classified failure. It is never
// partially applied.
type Outcome struct {
	Status Status
	Record domain.KnowledgeRecord
	Reason FailureReason
	Err    error
}

func succeeded(record domain.KnowledgeRecord) Outcome {
	return Outcome{Status: StatusSuccess, Record: record}
}

func alreadyProcessed(record domain.KnowledgeRecord) Outcome {
	return Outcome{Status: StatusAlreadyProcessed, Record: record}
}

func failed(reason FailureReason, err error) Outcome {
	return Outcome{Status: StatusError, Reason: reason, Err: err}
}
