package http

import (
	"github.com/gin-gonic/gin"

	"community-support-platform/internal/assistant"
	pkgLog "community-support-platform/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	Ask(c *gin.Context)
	Topics(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc assistant.UseCase
}

// New creates a new HTTP handler for the assistant domain.
func New(l pkgLog.Logger, uc assistant.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
