package generative

import (
	"errors"
	"fmt"
)

var (
	// ErrBackendUnavailable indicates no generative backend is loaded or
	// configured. Callers degrade to their default behavior.
	ErrBackendUnavailable = errors.New("generative backend unavailable")

	// ErrGenerationFailed indicates the backend raised during inference.
	ErrGenerationFailed = errors.New("generation failed")

	// ErrNoBackendsConfigured indicates an empty backend chain.
	ErrNoBackendsConfigured = errors.New("no backends configured")
)

// BackendError wraps a backend-specific error.
type BackendError struct {
	Backend string
	Err     error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %s: %v", e.Backend, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
