package http

import (
	"github.com/gin-gonic/gin"

	"community-support-platform/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Ask is rate limited per client IP.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	group := rg.Group("/assistant")
	{
		group.POST("/ask", mw.RateLimit(), h.Ask)
		group.GET("/topics", h.Topics)
	}
}
