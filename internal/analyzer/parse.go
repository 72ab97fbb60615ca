package analyzer

import (
	"regexp"
	"strings"

	"github.com/wisecache/wisecache/internal/domain"
)

// Fallbacks for sections the model's reply does not contain. The parse is
// best-effort per field, never all-or-nothing: one missing section does not
// block extraction of the others.
const (
	NoHeadline = "No headline available"
	NoSummary  = "No summary available"
)

var (
	categoryPattern = regexp.MustCompile(`(?i)Category:[ \t]*(.+)`)
	headlinePattern = regexp.MustCompile(`(?i)Headline:[ \t]*(.+)`)
	// Summary runs to the next blank line or the end of the reply.
	summaryPattern = regexp.MustCompile(`(?s)Summary:[ \t]*(.+?)(?:\n[ \t]*\n|$)`)
)

// Parse extracts the three labeled sections from a raw model reply. The
// reply format is externally controlled and drifts, so each field is matched
// and trimmed independently. The category text is preserved verbatim, even
// outside the known vocabulary.
func Parse(raw string) domain.Analysis {
	analysis := domain.Analysis{
		Category: domain.CategoryOther,
		Headline: NoHeadline,
		Summary:  NoSummary,
	}

	if m := categoryPattern.FindStringSubmatch(raw); m != nil {
		if category := strings.TrimSpace(m[1]); category != "" {
			analysis.Category = domain.Category(category)
		}
	}
	if m := headlinePattern.FindStringSubmatch(raw); m != nil {
		if headline := strings.TrimSpace(m[1]); headline != "" {
			analysis.Headline = headline
		}
	}
	if m := summaryPattern.FindStringSubmatch(raw); m != nil {
		if summary := strings.TrimSpace(m[1]); summary != "" {
			analysis.Summary = summary
		}
	}

	return analysis
}
