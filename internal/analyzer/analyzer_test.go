package analyzer

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wisecache/wisecache/internal/domain"
)

type fakeCompleter struct {
	reply string
	err   error
	calls int
	last  openai.ChatCompletionRequest
}

func (f *fakeCompleter) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.calls++
	f.last = req
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: f.reply}},
		},
	}, nil
}

func TestAnalyzer_Analyze(t *testing.T) {
	fake := &fakeCompleter{reply: "Category: Science\nHeadline: Microbes Found\nSummary: One.\nTwo.\nThree."}
	a := &Analyzer{client: fake, settings: DefaultSettings()}

	analysis, err := a.Analyze(context.Background(), "https://a.test/x")
	require.NoError(t, err)

	assert.Equal(t, domain.CategoryScience, analysis.Category)
	assert.Equal(t, "Microbes Found", analysis.Headline)
	assert.Equal(t, "https://a.test/x", analysis.OriginalURL)

	require.Len(t, fake.last.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, fake.last.Messages[0].Role)
	assert.Equal(t, "https://a.test/x", fake.last.Messages[1].Content)
}

func TestAnalyzer_TransportFailure(t *testing.T) {
	transportErr := errors.New("quota exceeded")
	a := &Analyzer{client: &fakeCompleter{err: transportErr}, settings: DefaultSettings()}

	_, err := a.Analyze(context.Background(), "https://a.test/x")

	require.Error(t, err)
	assert.ErrorIs(t, err, transportErr)
}

func TestAnalyzer_EmptyChoicesDegradesToDefaults(t *testing.T) {
	fake := &fakeCompleter{reply: ""}
	a := &Analyzer{client: fake, settings: DefaultSettings()}

	analysis, err := a.Analyze(context.Background(), "https://a.test/x")
	require.NoError(t, err)

	assert.Equal(t, domain.CategoryOther, analysis.Category)
	assert.Equal(t, NoHeadline, analysis.Headline)
	assert.Equal(t, NoSummary, analysis.Summary)
}

func TestNewAnalyzer_RequiresAPIKey(t *testing.T) {
	_, err := NewAnalyzer(Config{})
	assert.Error(t, err)
}
