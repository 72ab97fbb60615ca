package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wisecache/wisecache/internal/domain"
)

func TestParse_FullResponse(t *testing.T) {
	raw := "Category: Technology\n" +
		"Headline: Go 1.24 Released\n" +
		"Summary: The release adds generics improvements.\nTooling got faster.\nModules see fewer downloads.\n"

	analysis := Parse(raw)

	assert.Equal(t, domain.CategoryTechnology, analysis.Category)
	assert.Equal(t, "Go 1.24 Released", analysis.Headline)
	assert.Equal(t,
		"The release adds generics improvements.\nTooling got faster.\nModules see fewer downloads.",
		analysis.Summary)
}

func TestParse_CategoryOnly(t *testing.T) {
	analysis := Parse("Category: Science")

	assert.Equal(t, domain.CategoryScience, analysis.Category)
	assert.Equal(t, NoHeadline, analysis.Headline)
	assert.Equal(t, NoSummary, analysis.Summary)
}

func TestParse_EmptyResponse(t *testing.T) {
	analysis := Parse("")

	assert.Equal(t, domain.CategoryOther, analysis.Category)
	assert.Equal(t, NoHeadline, analysis.Headline)
	assert.Equal(t, NoSummary, analysis.Summary)
}

func TestParse_UnknownCategoryPreserved(t *testing.T) {
	analysis := Parse("Category: Astrology\nHeadline: Stars Align")

	assert.Equal(t, domain.Category("Astrology"), analysis.Category)
	assert.False(t, analysis.Category.Known())
	assert.Equal(t, domain.CategoryOther, analysis.Category.Normalized())
}

func TestParse_CaseInsensitiveLabels(t *testing.T) {
	analysis := Parse("category: Health\nheadline: Sleep Matters")

	assert.Equal(t, domain.CategoryHealth, analysis.Category)
	assert.Equal(t, "Sleep Matters", analysis.Headline)
}

func TestParse_SummaryStopsAtBlankLine(t *testing.T) {
	raw := "Summary: First sentence.\nSecond sentence.\n\nNotes: this trailer is not part of the summary"

	analysis := Parse(raw)

	assert.Equal(t, "First sentence.\nSecond sentence.", analysis.Summary)
}

func TestParse_SummaryRunsToEnd(t *testing.T) {
	raw := "Headline: No Blank Line\nSummary: Only sentence."

	analysis := Parse(raw)

	assert.Equal(t, "Only sentence.", analysis.Summary)
}

func TestParse_FieldsTrimmedIndependently(t *testing.T) {
	raw := "Category:   Business  \nHeadline:\t Markets Rally \nSummary:   Stocks rose.  "

	analysis := Parse(raw)

	assert.Equal(t, domain.CategoryBusiness, analysis.Category)
	assert.Equal(t, "Markets Rally", analysis.Headline)
	assert.Equal(t, "Stocks rose.", analysis.Summary)
}

func TestParse_LabelsInProse(t *testing.T) {
	// A missing headline never blocks the other two extractions.
	raw := "Sure! Here is the analysis.\nCategory: Sports\n\nSummary: A match was played.\nSomeone won.\nFans cheered."

	analysis := Parse(raw)

	assert.Equal(t, domain.CategorySports, analysis.Category)
	assert.Equal(t, NoHeadline, analysis.Headline)
	assert.Equal(t, "A match was played.\nSomeone won.\nFans cheered.", analysis.Summary)
}
