package llm

import (
	"context"
	"sync"
)

// TestProvider answers every call with Response (or Err) and records prompts.
type TestProvider struct {
	mu       sync.Mutex
	Response string
	Err      error
	prompts  []string
}

var _ LLMProvider = (*TestProvider)(nil)

func (p *TestProvider) Chat(ctx context.Context, history []Message, opts ...Option) (string, error) {
	var prompt string
	if len(history) > 0 {
		prompt = history[len(history)-1].Content
	}
	return p.Generate(ctx, prompt, opts...)
}

func (p *TestProvider) Generate(ctx context.Context, prompt string, opts ...Option) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prompts = append(p.prompts, prompt)
	if p.Err != nil {
		return "", p.Err
	}
	return p.Response, nil
}

func (p *TestProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.prompts)
}

func (p *TestProvider) LastPrompt() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.prompts) == 0 {
		return ""
	}
	return p.prompts[len(p.prompts)-1]
}
