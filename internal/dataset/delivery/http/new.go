package http

import (
	"github.com/gin-gonic/gin"

	"community-support-platform/internal/dataset"
	pkgLog "community-support-platform/pkg/log"
)

// Handler is the public interface for the dataset HTTP delivery layer.
type Handler interface {
	Upload(c *gin.Context)
	Detail(c *gin.Context)
	GenerateSample(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc dataset.UseCase
}

// New creates a new HTTP handler for the dataset domain.
func New(l pkgLog.Logger, uc dataset.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
