package http

import (
	"github.com/gin-gonic/gin"

	"community-support-platform/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Chart routes
// hang off the dataset resource.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	group := rg.Group("/datasets")
	{
		group.GET("/:id/charts", h.Render)
		group.GET("/:id/summary", h.Summary)
	}
}
