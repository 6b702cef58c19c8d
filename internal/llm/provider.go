// Package llm wraps the interchangeable text-generation backends used by the
// AI recovery generator. Each provider speaks its own wire protocol behind a
// common Complete call; the Registry tracks which one is current.
package llm

import "context"

// Usage accounts tokens consumed by one completion call.
type Usage struct {
	InputTokens  int64
	OutputTokens int64
}

func (u Usage) TotalTokens() int64 {
	return u.InputTokens + u.OutputTokens
}

// Provider is one LLM backend. Complete submits the prompt as a single user
// turn and returns the raw text of the response.
type Provider interface {
	Name() string
	Model() string
	Complete(ctx context.Context, prompt string) (string, Usage, error)
}
