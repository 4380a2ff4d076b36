package http

import (
	"community-support-platform/internal/dataset"
	pkgErrors "community-support-platform/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case dataset.ErrEmptyFile:
		return pkgErrors.NewHTTPError(400, "uploaded file has no data rows")
	case dataset.ErrInvalidCSV:
		return pkgErrors.NewHTTPError(400, "uploaded file is not valid CSV")
	case dataset.ErrFileTooLarge:
		return pkgErrors.NewHTTPError(400, "uploaded file exceeds the size limit")
	case dataset.ErrDatasetNotFound:
		return pkgErrors.NewHTTPError(404, "dataset not found")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong")
	}
}
