package generative

import (
	"context"
	"fmt"

	"community-support-platform/pkg/completion"
)

// CompletionBackend adapts a chat-completions client to the Backend
// interface. All configured providers speak the OpenAI-compatible dialect,
// distinguished only by base URL and model.
type CompletionBackend struct {
	name   string
	client completion.IClient
}

var _ Backend = (*CompletionBackend)(nil)

// NewCompletionBackend creates a Backend over a completions client.
func NewCompletionBackend(name string, client completion.IClient) *CompletionBackend {
	return &CompletionBackend{name: name, client: client}
}

// Generate implements Backend.
func (b *CompletionBackend) Generate(ctx context.Context, req *Request) (*Result, error) {
	resp, err := b.client.Complete(ctx, &completion.Request{
		Messages: []completion.Message{
			{Role: "user", Content: req.Prompt},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxNewTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.name, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%s: empty completion", b.name)
	}

	return &Result{
		Text:        resp.Choices[0].Message.Content,
		BackendName: b.name,
		ModelName:   b.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the backend name.
func (b *CompletionBackend) Name() string { return b.name }

// Model returns the model name.
func (b *CompletionBackend) Model() string { return b.client.Model() }
