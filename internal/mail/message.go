package mail

import (
	"encoding/base64"
	"log/slog"
	"strings"
)

// Message is one inbox message as the batch processor consumes it: a subject
// header value plus the (possibly multipart) body payload.
type Message struct {
	ID      string
	Subject string
	Payload Payload
}

// Payload mirrors the provider's message-part shape: either an inline body
// or a list of parts, of which the first text/plain part is the one we read.
type Payload struct {
	MimeType string
	Data     string // base64url-encoded body bytes
	Parts    []Payload
}

// PlainText decodes the message body to text. The inline body wins when it
// decodes to something non-blank; otherwise the first text/plain part is
// selected. Undecodable data yields an empty string rather than an error,
// matching the tolerant read path.
func (p Payload) PlainText() string {
	if p.Data != "" {
		if text := decodeBody(p.Data); strings.TrimSpace(text) != "" {
			return text
		}
	}
	for _, part := range p.Parts {
		if part.MimeType == "text/plain" {
			return decodeBody(part.Data)
		}
	}
	return ""
}

// BodyLines returns up to max trimmed, non-empty lines of the plain-text
// body, in original order.
func (m Message) BodyLines(max int) []string {
	var lines []string
	for _, line := range strings.Split(m.Payload.PlainText(), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == max {
			break
		}
	}
	return lines
}

func decodeBody(data string) string {
	decoded, err := base64.URLEncoding.WithPadding(base64.NoPadding).DecodeString(strings.TrimRight(data, "="))
	if err != nil {
		// Some providers send standard base64 instead of base64url.
		decoded, err = base64.StdEncoding.DecodeString(data)
		if err != nil {
			slog.Debug("Failed to decode message body", "error", err)
			return ""
		}
	}
	return string(decoded)
}
