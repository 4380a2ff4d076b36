package generative

import (
	"context"
	"fmt"
	"time"

	"community-support-platform/pkg/log"
)

// Manager orchestrates backend selection with priority fallback. Retry and
// timeout policy lives here, on the collaborator side; the responder above
// it sees a single Backend.
type Manager struct {
	backends []Backend
	config   *Config
	logger   log.Logger
}

// Config defines the Manager's fallback behavior.
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // global cap for the entire fallback chain
}

var _ Backend = (*Manager)(nil)

// NewManager creates a Manager over backends already sorted by priority.
func NewManager(backends []Backend, config *Config, logger log.Logger) *Manager {
	return &Manager{
		backends: backends,
		config:   config,
		logger:   logger,
	}
}

// Generate tries each backend in priority order until one succeeds.
func (m *Manager) Generate(ctx context.Context, req *Request) (*Result, error) {
	if len(m.backends) == 0 {
		return nil, ErrNoBackendsConfigured
	}

	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error

	for _, backend := range m.backends {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("chain timeout after trying %d backend(s): %w",
				len(m.backends), ctx.Err())
		default:
		}

		result, err := m.generateWithRetry(ctx, backend, req)
		if err == nil {
			m.logger.Infof(ctx, "generation ok: backend=%s model=%s output_tokens=%d",
				backend.Name(), backend.Model(), outputTokens(result))
			return result, nil
		}

		m.logger.Warnf(ctx, "generation failed: backend=%s model=%s err=%v",
			backend.Name(), backend.Model(), err)
		lastErr = &BackendError{Backend: backend.Name(), Err: err}

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, lastErr)
}

func (m *Manager) generateWithRetry(ctx context.Context, backend Backend, req *Request) (*Result, error) {
	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		result, err := backend.Generate(ctx, req)
		if err == nil {
			return result, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// Name returns the name of the backend chain.
func (m *Manager) Name() string { return "chain" }

// Model returns the primary backend's model.
func (m *Manager) Model() string {
	if len(m.backends) == 0 {
		return ""
	}
	return m.backends[0].Model()
}

func outputTokens(r *Result) int {
	if r == nil || r.Usage == nil {
		return 0
	}
	return r.Usage.OutputTokens
}
