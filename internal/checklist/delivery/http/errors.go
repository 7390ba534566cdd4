package http

import (
	"errors"
	"net/http"

	"realtime-checklist/internal/checklist"
	pkgErrors "realtime-checklist/pkg/errors"
)

var errInvalidFormat = pkgErrors.NewHTTPError(http.StatusBadRequest, "format must be json or markdown")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors pass through and are reported as 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, checklist.ErrChecklistNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "checklist not found")
	case errors.Is(err, checklist.ErrItemNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "checklist item not found")
	case errors.Is(err, checklist.ErrUnauthenticated):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, checklist.ErrInvalidPatch),
		errors.Is(err, checklist.ErrInvalidInput),
		errors.Is(err, checklist.ErrEmptyPatch),
		errors.Is(err, checklist.ErrEmptyImport):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, checklist.ErrBatchFailed):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return err
	}
}
