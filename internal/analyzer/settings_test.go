package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsLoader_Load(t *testing.T) {
	yamlContent := `
model: gpt-4o-mini
temperature: 0.2
maxTokens: 300
`

	settings, err := NewSettingsLoader(strings.NewReader(yamlContent)).Load()
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o-mini", settings.Model)
	assert.InDelta(t, 0.2, settings.Temperature, 0.001)
	assert.Equal(t, 300, settings.MaxTokens)
	assert.NotEmpty(t, settings.SystemPrompt, "prompt falls back to the default")
}

func TestSettingsLoader_EmptyDocumentUsesDefaults(t *testing.T) {
	settings, err := NewSettingsLoader(strings.NewReader("")).Load()
	require.NoError(t, err)

	defaults := DefaultSettings()
	assert.Equal(t, defaults.Model, settings.Model)
	assert.Equal(t, defaults.MaxTokens, settings.MaxTokens)
	assert.Equal(t, defaults.SystemPrompt, settings.SystemPrompt)
}

func TestSettingsLoader_InvalidYAML(t *testing.T) {
	_, err := NewSettingsLoader(strings.NewReader("model: [broken")).Load()
	assert.Error(t, err)
}

func TestDefaultSystemPromptListsVocabulary(t *testing.T) {
	prompt := DefaultSettings().SystemPrompt

	for _, category := range []string{"Technology", "Business", "Environment", "Other"} {
		assert.Contains(t, prompt, category)
	}
}
