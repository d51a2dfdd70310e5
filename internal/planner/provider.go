package planner

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when no LLM credential is present. The
// generator treats it like any other provider failure and substitutes
// the deterministic fallback.
var ErrNotConfigured = errors.New("planner: llm provider not configured")

// Options controls one generation call.
type Options struct {
	// JSONOnly asks the backend for structured JSON output. Generation
	// tasks set it; chat does not.
	JSONOnly bool
}

// Provider is the interface to an LLM backend.
type Provider interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string, opts Options) (string, error)
	Name() string
}
