package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Options control a single completion call. Extraction call sites use low
// temperatures and small token caps to keep responses deterministic and cheap.
type Options struct {
	Temperature float32
	MaxTokens   int32
}

// Completer is the text-completion collaborator consumed by the classifiers
// and the bill orchestrator. Implementations are always treated as fallible:
// callers turn any error into a tier miss, never a pipeline failure.
type Completer interface {
	Complete(ctx context.Context, prompt string, opts Options) (string, error)
}

// CompleterFunc adapts a plain function to the Completer interface.
type CompleterFunc func(ctx context.Context, prompt string, opts Options) (string, error)

func (f CompleterFunc) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
	return f(ctx, prompt, opts)
}

// Gemini is the production Completer backed by the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini builds a Gemini completer. Construction fails only on a broken
// client configuration; per-call errors surface from Complete.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(opts.Temperature),
		MaxOutputTokens: opts.MaxTokens,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}

	return text, nil
}
