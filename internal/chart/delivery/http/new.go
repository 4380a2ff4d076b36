package http

import (
	"github.com/gin-gonic/gin"

	"community-support-platform/internal/chart"
	pkgLog "community-support-platform/pkg/log"
)

// Handler is the public interface for the chart HTTP delivery layer.
type Handler interface {
	Render(c *gin.Context)
	Summary(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc chart.UseCase
}

// New creates a new HTTP handler for the chart domain.
func New(l pkgLog.Logger, uc chart.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
