package usecase

import (
	"community-support-platform/internal/chart"
	datasetRepo "community-support-platform/internal/dataset/repository"
	pkgLog "community-support-platform/pkg/log"
)

// implUseCase is the private implementation of chart.UseCase. It reads
// datasets from the shared in-memory store; it never mutates them.
type implUseCase struct {
	l    pkgLog.Logger
	repo datasetRepo.Repository
}

var _ chart.UseCase = (*implUseCase)(nil)

// New creates a new chart UseCase implementation.
func New(l pkgLog.Logger, repo datasetRepo.Repository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
