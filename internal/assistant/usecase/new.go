package usecase

import (
	"community-support-platform/internal/assistant"
	"community-support-platform/pkg/generative"
	pkgLog "community-support-platform/pkg/log"
)

type implUseCase struct {
	l       pkgLog.Logger
	backend generative.Backend
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New creates a new assistant UseCase instance. The backend is always
// non-nil: wiring passes generative.NewDisabled() when no provider is
// configured, so the answer path never branches on availability.
func New(l pkgLog.Logger, backend generative.Backend) *implUseCase {
	return &implUseCase{
		l:       l,
		backend: backend,
	}
}
