package http

import (
	"github.com/gin-gonic/gin"

	"community-support-platform/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	group := rg.Group("/datasets")
	{
		group.POST("", h.Upload)
		group.POST("/sample", h.GenerateSample)
		group.GET("/:id", h.Detail)
	}
}
