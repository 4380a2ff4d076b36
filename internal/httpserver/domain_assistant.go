package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "community-support-platform/internal/assistant/delivery/http"
	assistantUC "community-support-platform/internal/assistant/usecase"
	"community-support-platform/internal/middleware"
)

// setupAssistantDomain initializes the assistant domain and registers its
// routes under /api/v1/assistant.
func (srv HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. UseCase
	uc := assistantUC.New(srv.l, srv.backend)

	// 2. HTTP Handler
	h := assistantHTTP.New(srv.l, uc)

	// 3. Routes
	assistantHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Assistant domain registered (backend: %s)", srv.backend.Name())
	return nil
}
