package generative

import (
	"context"
	"sync"
)

// LoadFunc builds a Backend. Loading may be expensive (client setup,
// remote validation), so Lazy defers it to the first Generate call.
type LoadFunc func() (Backend, error)

// Lazy is an explicitly owned, lazily initialized backend handle.
// The load runs exactly once even under concurrent first calls; the loaded
// backend (or the load failure) is cached for the process lifetime.
type Lazy struct {
	load LoadFunc

	once    sync.Once
	backend Backend
	loadErr error
}

var _ Backend = (*Lazy)(nil)

// NewLazy wraps a load function into a lazily initialized Backend.
func NewLazy(load LoadFunc) *Lazy {
	return &Lazy{load: load}
}

// Generate loads the backend on first use and delegates to it.
// A failed load degrades every call to ErrBackendUnavailable.
func (l *Lazy) Generate(ctx context.Context, req *Request) (*Result, error) {
	l.once.Do(func() {
		l.backend, l.loadErr = l.load()
	})
	if l.loadErr != nil || l.backend == nil {
		return nil, ErrBackendUnavailable
	}
	return l.backend.Generate(ctx, req)
}

// Name returns the loaded backend's name, or "lazy" before first use.
func (l *Lazy) Name() string {
	if l.backend != nil {
		return l.backend.Name()
	}
	return "lazy"
}

// Model returns the loaded backend's model, or empty before first use.
func (l *Lazy) Model() string {
	if l.backend != nil {
		return l.backend.Model()
	}
	return ""
}
