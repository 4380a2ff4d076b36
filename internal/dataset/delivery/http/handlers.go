package http

import (
	"github.com/gin-gonic/gin"

	"community-support-platform/pkg/response"
)

// Upload godoc
// @Summary     Upload a CSV dataset
// @Description Parses the uploaded CSV, stores it in memory, and returns a
// @Description preview plus a data-quality report.
// @Tags        Datasets
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "CSV file"
// @Success     200 {object} uploadResp
// @Failure     400 {object} response.Resp "Empty, oversized, or malformed file"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/datasets [POST]
func (h *handler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	input, cleanup, err := h.processUploadReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer cleanup()

	output, err := h.uc.Upload(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Upload: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUploadResp(output))
}

// Detail godoc
// @Summary     Get dataset detail
// @Description Returns a stored dataset's metadata, preview rows, and quality report.
// @Tags        Datasets
// @Produce     json
// @Param       id path string true "Dataset ID"
// @Success     200 {object} uploadResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/datasets/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// GenerateSample godoc
// @Summary     Generate a sample dataset
// @Description Creates 20 synthetic participant rows and stores them like an upload.
// @Tags        Datasets
// @Produce     json
// @Success     200 {object} uploadResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/datasets/sample [POST]
func (h *handler) GenerateSample(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.GenerateSample(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateSample: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newUploadResp(output))
}
