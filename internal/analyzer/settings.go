package analyzer

import (
	"io"

	openai "github.com/sashabaranov/go-openai"
	"gopkg.in/yaml.v3"
)

// Settings tunes the model call. Everything has a default, so an empty file
// or a nil settings block is valid.
type Settings struct {
	Model        string  `yaml:"model"`
	Temperature  float32 `yaml:"temperature"`
	MaxTokens    int     `yaml:"maxTokens"`
	SystemPrompt string  `yaml:"systemPrompt"`
}

func DefaultSettings() Settings {
	return Settings{
		Model:        openai.GPT3Dot5Turbo,
		Temperature:  0.7,
		MaxTokens:    500,
		SystemPrompt: buildSystemPrompt(),
	}
}

type SettingsLoader struct {
	reader io.Reader
}

func NewSettingsLoader(reader io.Reader) *SettingsLoader {
	return &SettingsLoader{
		reader: reader,
	}
}

// Load decodes a YAML settings document, filling unset fields from defaults.
func (sl *SettingsLoader) Load() (*Settings, error) {
	settings := DefaultSettings()

	decoder := yaml.NewDecoder(sl.reader)
	if err := decoder.Decode(&settings); err != nil && err != io.EOF {
		return nil, err
	}

	if settings.Model == "" {
		settings.Model = openai.GPT3Dot5Turbo
	}
	if settings.MaxTokens <= 0 {
		settings.MaxTokens = 500
	}
	if settings.SystemPrompt == "" {
		settings.SystemPrompt = buildSystemPrompt()
	}

	return &settings, nil
}
