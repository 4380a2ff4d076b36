package generative

import "context"

// Disabled is the no-op Backend selected when no providers are configured.
type Disabled struct{}

var _ Backend = Disabled{}

// NewDisabled creates the no-op backend.
func NewDisabled() Disabled {
	return Disabled{}
}

// Generate always reports the backend as unavailable.
func (Disabled) Generate(ctx context.Context, req *Request) (*Result, error) {
	return nil, ErrBackendUnavailable
}

// Name returns "disabled".
func (Disabled) Name() string { return "disabled" }

// Model returns an empty model name.
func (Disabled) Model() string { return "" }
