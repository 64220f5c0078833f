package factory

import (
	"context"
	"fmt"

	"clinical-notes-be/pkg/llm"
	"clinical-notes-be/pkg/llm/gemini"
	"clinical-notes-be/pkg/llm/ollama"
)

const (
	ProviderVertex = "vertex"
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
	ProviderNone   = "none"
)

type Config struct {
	Provider  string
	Model     string
	Project   string
	Location  string
	APIKey    string
	OllamaURL string
}

// NewLLMProvider returns nil with a nil error for ProviderNone.
func NewLLMProvider(ctx context.Context, cfg Config) (llm.LLMProvider, error) {
	switch cfg.Provider {
	case ProviderNone, "":
		return nil, nil
	case ProviderVertex:
		if cfg.Project == "" {
			return nil, fmt.Errorf("vertex provider requires a project id")
		}
		return newGemini(ctx, gemini.Config{
			Project:  cfg.Project,
			Location: cfg.Location,
			Model:    cfg.Model,
		})
	case ProviderGemini:
		return newGemini(ctx, gemini.Config{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
		})
	case ProviderOllama:
		baseURL := cfg.OllamaURL
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		return ollama.NewOllamaProvider(baseURL, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}

func newGemini(ctx context.Context, cfg gemini.Config) (llm.LLMProvider, error) {
	p, err := gemini.NewGeminiProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return p, nil
}
