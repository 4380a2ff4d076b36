package http

import (
	"github.com/gin-gonic/gin"

	"community-support-platform/pkg/response"
)

// Render godoc
// @Summary     Build a chart payload for one column
// @Description Returns a histogram for numeric columns or a value-frequency
// @Description bar chart for categorical columns.
// @Tags        Charts
// @Produce     json
// @Param       id     path  string true  "Dataset ID"
// @Param       column query string true  "Column name"
// @Param       bins   query int    false "Histogram bin count (default: 10)"
// @Success     200 {object} chartResp
// @Failure     400 {object} response.Resp "Unknown column"
// @Failure     404 {object} response.Resp "Unknown dataset"
// @Router      /api/v1/datasets/{id}/charts [GET]
func (h *handler) Render(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRenderReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Render(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newChartResp(output))
}

// Summary godoc
// @Summary     Quick stats for a dataset
// @Description Returns record/column counts plus completed-participant count
// @Description and average age when those columns exist.
// @Tags        Charts
// @Produce     json
// @Param       id path string true "Dataset ID"
// @Success     200 {object} summaryResp
// @Failure     404 {object} response.Resp "Unknown dataset"
// @Router      /api/v1/datasets/{id}/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Summary(ctx, h.processSummaryReq(c))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSummaryResp(output))
}
