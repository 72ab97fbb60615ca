package extract

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wisecache/wisecache/internal/mail"
)

func TestFindURL(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{
			name: "plain http url",
			text: "check http://example.com for details",
			want: "http://example.com",
			ok:   true,
		},
		{
			name: "https url",
			text: "https://a.test/x",
			want: "https://a.test/x",
			ok:   true,
		},
		{
			name: "stops at whitespace",
			text: "see https://a.test/path?q=1 and more",
			want: "https://a.test/path?q=1",
			ok:   true,
		},
		{
			name: "stops at angle bracket",
			text: "<https://a.test/x>",
			want: "https://a.test/x",
			ok:   true,
		},
		{
			name: "stops at quote",
			text: `href="https://a.test/x"`,
			want: "https://a.test/x",
			ok:   true,
		},
		{
			name: "first of several",
			text: "https://first.test then https://second.test",
			want: "https://first.test",
			ok:   true,
		},
		{
			name: "no url",
			text: "nothing to see here",
			ok:   false,
		},
		{
			name: "scheme alone does not match",
			text: "https:// is not a link",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindURL(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromMessage_SubjectPrecedence(t *testing.T) {
	msg := mail.Message{
		Subject: "look at https://a.test/x",
		Payload: inlineBody("body has https://b.test/y too"),
	}

	extraction, ok := FromMessage(msg)
	require.True(t, ok)

	assert.Equal(t, "https://a.test/x", extraction.URL)
	assert.Equal(t, SourceSubject, extraction.Source)
	assert.Empty(t, extraction.Line)
}

func TestFromMessage_BodyFallbackHit(t *testing.T) {
	msg := mail.Message{
		Subject: "no link here",
		Payload: inlineBody("hi\nthere\n  visit https://b.test  \nhow\nare"),
	}

	extraction, ok := FromMessage(msg)
	require.True(t, ok)

	assert.Equal(t, "https://b.test", extraction.URL)
	assert.Equal(t, SourceBody, extraction.Source)
	assert.Equal(t, "visit https://b.test", extraction.Line, "line is reported trimmed")
}

func TestFromMessage_FiveLineCap(t *testing.T) {
	msg := mail.Message{
		Subject: "no link here",
		Payload: inlineBody("hi\nthere\nhow\nare\nyou\nvisit https://b.test"),
	}

	_, ok := FromMessage(msg)
	assert.False(t, ok, "line 6 is beyond the scan window")
}

func TestFromMessage_EmptyLinesDoNotCountTowardCap(t *testing.T) {
	msg := mail.Message{
		Subject: "no link here",
		Payload: inlineBody("hi\n\n\nthere\n\nhow\nare\nvisit https://b.test"),
	}

	extraction, ok := FromMessage(msg)
	require.True(t, ok)
	assert.Equal(t, "https://b.test", extraction.URL)
}

func TestFromMessage_NoURLAnywhere(t *testing.T) {
	msg := mail.Message{
		Subject: "hello",
		Payload: inlineBody("just\nwords"),
	}

	_, ok := FromMessage(msg)
	assert.False(t, ok)
}

func TestFromMessage_MultipartBody(t *testing.T) {
	msg := mail.Message{
		Subject: "fwd",
		Payload: mail.Payload{
			MimeType: "multipart/alternative",
			Parts: []mail.Payload{
				{MimeType: "text/html", Data: encode("<a href=x>ignored</a>")},
				{MimeType: "text/plain", Data: encode("read https://c.test/z")},
			},
		},
	}

	extraction, ok := FromMessage(msg)
	require.True(t, ok)
	assert.Equal(t, "https://c.test/z", extraction.URL)
	assert.Equal(t, SourceBody, extraction.Source)
}

func inlineBody(text string) mail.Payload {
	return mail.Payload{
		MimeType: "text/plain",
		Data:     encode(text),
	}
}

func encode(text string) string {
	return strings.TrimRight(base64.URLEncoding.EncodeToString([]byte(text)), "=")
}
