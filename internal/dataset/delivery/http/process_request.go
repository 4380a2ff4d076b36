package http

import (
	"github.com/gin-gonic/gin"

	"community-support-platform/internal/dataset"
	pkgErrors "community-support-platform/pkg/errors"
)

// processUploadReq extracts the multipart file from the request. The caller
// must invoke cleanup to close the file.
func (h *handler) processUploadReq(c *gin.Context) (dataset.UploadInput, func(), error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return dataset.UploadInput{}, nil, pkgErrors.NewHTTPError(400, "file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return dataset.UploadInput{}, nil, pkgErrors.NewHTTPError(400, "cannot read uploaded file")
	}

	input := dataset.UploadInput{
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Reader:   file,
	}
	return input, func() { _ = file.Close() }, nil
}
