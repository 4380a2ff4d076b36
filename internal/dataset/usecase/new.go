package usecase

import (
	"community-support-platform/config"
	"community-support-platform/internal/dataset"
	"community-support-platform/internal/dataset/repository"
	pkgLog "community-support-platform/pkg/log"
)

// implUseCase is the private implementation of dataset.UseCase.
type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
	cfg  config.UploadConfig
}

var _ dataset.UseCase = (*implUseCase)(nil)

// New creates a new dataset UseCase implementation.
func New(l pkgLog.Logger, repo repository.Repository, cfg config.UploadConfig) *implUseCase {
	if cfg.PreviewRows <= 0 {
		cfg.PreviewRows = 10
	}
	return &implUseCase{
		l:    l,
		repo: repo,
		cfg:  cfg,
	}
}
