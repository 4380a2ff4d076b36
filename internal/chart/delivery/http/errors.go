package http

import (
	"community-support-platform/internal/chart"
	pkgErrors "community-support-platform/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case chart.ErrDatasetNotFound:
		return pkgErrors.NewHTTPError(404, "dataset not found")
	case chart.ErrColumnNotFound:
		return pkgErrors.NewHTTPError(400, "column not found in dataset")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong")
	}
}
