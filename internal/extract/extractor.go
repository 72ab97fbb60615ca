// Package extract finds candidate URLs in inbox messages: the subject line
// first, then the first few lines of the plain-text body.
package extract

import (
	"regexp"

	"github.com/wisecache/wisecache/internal/mail"
)

// BodyLineLimit caps how many non-empty body lines are scanned when the
// subject yields no URL.
const BodyLineLimit = 5

var urlPattern = regexp.MustCompile(`https?://[^\s<>"]+`)

// Source records which message field supplied the URL.
type Source string

const (
	SourceSubject Source = "subject"
	SourceBody    Source = "body"
)

// Extraction is a URL found in a message. Line holds the originating body
// line text for body hits, empty for subject hits.
type Extraction struct {
	URL    string
	Source Source
	Line   string
}

// FindURL returns the first well-formed URL token in text, if any.
func FindURL(text string) (string, bool) {
	match := urlPattern.FindString(text)
	return match, match != ""
}

// FromMessage scans the subject, then the first BodyLineLimit non-empty
// trimmed body lines in order, stopping at the first line with a match.
func FromMessage(msg mail.Message) (Extraction, bool) {
	if url, ok := FindURL(msg.Subject); ok {
		return Extraction{URL: url, Source: SourceSubject}, true
	}

	for _, line := range msg.BodyLines(BodyLineLimit) {
		if url, ok := FindURL(line); ok {
			return Extraction{URL: url, Source: SourceBody, Line: line}, true
		}
	}

	return Extraction{}, false
}
