package http

import (
	"github.com/gin-gonic/gin"
)

// processAskReq binds the ask request body. An empty question is allowed:
// the use case answers it with the default message rather than an error.
func (h *handler) processAskReq(c *gin.Context) (askReq, error) {
	var req askReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
