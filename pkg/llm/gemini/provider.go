package gemini

import (
	"context"
	"fmt"
	"strings"

	"clinical-notes-be/pkg/llm"

	"google.golang.org/genai"
)

// Config selects the backend. A project routes through Vertex AI, otherwise
// the Gemini API is used with APIKey.
type Config struct {
	Project  string
	Location string
	APIKey   string
	Model    string
}

type GeminiProvider struct {
	client    *genai.Client
	modelName string
}

var _ llm.LLMProvider = &GeminiProvider{}

func NewGeminiProvider(ctx context.Context, cfg Config) (*GeminiProvider, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("gemini: model name is required")
	}

	clientCfg := &genai.ClientConfig{}
	switch {
	case cfg.Project != "":
		clientCfg.Backend = genai.BackendVertexAI
		clientCfg.Project = cfg.Project
		clientCfg.Location = cfg.Location
	case cfg.APIKey != "":
		clientCfg.Backend = genai.BackendGeminiAPI
		clientCfg.APIKey = cfg.APIKey
	default:
		return nil, fmt.Errorf("gemini: either a project or an API key is required")
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &GeminiProvider{client: client, modelName: cfg.Model}, nil
}

func (g *GeminiProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := llm.Apply(llm.Options{}, opts...)

	model := g.modelName
	if options.Model != "" {
		model = options.Model
	}

	config := &genai.GenerateContentConfig{}
	if options.Temperature > 0 {
		config.Temperature = genai.Ptr(float32(options.Temperature))
	}
	if options.MaxTokens > 0 {
		config.MaxOutputTokens = int32(options.MaxTokens)
	}

	var contents []*genai.Content
	for _, msg := range history {
		switch msg.Role {
		case "system":
			config.SystemInstruction = genai.NewContentFromText(msg.Content, genai.RoleUser)
		case "assistant", "model":
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleUser))
		}
	}

	resp, err := g.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	return firstCandidateText(resp)
}

func (g *GeminiProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return g.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

// firstCandidateText returns the first text part of the first candidate.
func firstCandidateText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", llm.ErrEmptyResponse
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", llm.ErrEmptyResponse
	}
	for _, part := range content.Parts {
		if part != nil && part.Text != "" {
			return strings.TrimSpace(part.Text), nil
		}
	}
	return "", llm.ErrEmptyResponse
}
