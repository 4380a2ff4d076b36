package completion

import "context"

// IClient defines the chat-completions client interface.
// Implementations are safe for concurrent use.
type IClient interface {
	// Complete sends a chat-completions request.
	Complete(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used.
	Model() string
}

// New creates a new client with the given configuration.
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClient(cfg), nil
}
