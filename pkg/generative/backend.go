package generative

import "context"

// Backend is the text-generation capability consumed by the assistant.
// Exactly one implementation is selected at startup: a real backend chain
// or the Disabled variant, so callers never branch on availability.
type Backend interface {
	// Generate produces a bounded continuation for the prompt.
	Generate(ctx context.Context, req *Request) (*Result, error)

	// Name returns the backend name (e.g. "deepseek", "disabled").
	Name() string

	// Model returns the model being used.
	Model() string
}

// Request is a normalized generation request.
type Request struct {
	Prompt       string
	MaxNewTokens int
	Temperature  float64
}

// Result is an explicit generation result. Failure travels through the
// error return, never through panics or sentinel text.
type Result struct {
	Text        string
	BackendName string
	ModelName   string
	Usage       *Usage
}

// Usage tracks token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
