package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"
)

const (
	geminiMaxRetries = 3
	geminiBaseDelay  = 1 * time.Second
)

// GeminiProvider backs the planner with the Gemini API in JSON mode.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("planner: create gemini client: %w", err)
	}

	return &GeminiProvider{client: client, model: model}, nil
}

func (p *GeminiProvider) Name() string {
	return "Gemini"
}

// Generate calls the model with a bounded retry on transient failures
// and empty candidates. The caller's context bounds the whole attempt
// sequence, so a timed-out generation is actually cancelled rather
// than left running.
func (p *GeminiProvider) Generate(ctx context.Context, systemPrompt, userPrompt string, opts Options) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemPrompt}}},
	}
	if opts.JSONOnly {
		config.ResponseMIMEType = "application/json"
	}

	var lastErr error
	for attempt := 0; attempt < geminiMaxRetries; attempt++ {
		resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(userPrompt), config)
		if err == nil && resp != nil && len(resp.Candidates) > 0 {
			text := resp.Text()
			if text != "" {
				return text, nil
			}
			err = errors.New("empty response")
		}
		if err == nil {
			err = errors.New("no candidates")
		}
		lastErr = err

		if attempt < geminiMaxRetries-1 {
			delay := geminiBaseDelay * time.Duration(1<<uint(attempt))
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return "", fmt.Errorf("planner: gemini generate: %w", lastErr)
}
