package http

import (
	"github.com/gin-gonic/gin"

	"community-support-platform/internal/chart"
)

// processRenderReq binds the chart query parameters plus the dataset ID
// from the path.
func (h *handler) processRenderReq(c *gin.Context) (renderReq, error) {
	var req renderReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.DatasetID = c.Param("id")
	return req, nil
}

func (h *handler) processSummaryReq(c *gin.Context) chart.SummaryInput {
	return chart.SummaryInput{DatasetID: c.Param("id")}
}
