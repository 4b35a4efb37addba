package http

import (
	"errors"
	"net/http"

	"suqia/internal/core/application/usecases/commands"
	"suqia/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps domain errors onto HTTP status codes. Scope violations
// surface as not found upstream, so no forbidden mapping exists here.
func writeError(c echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrConcurrentWrite),
		errors.Is(err, commands.ErrRegionIsInUse),
		errors.Is(err, commands.ErrTankIsInUse):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusBadRequest
	}

	return c.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

// writeBadRequest reports a malformed request body or parameter.
func writeBadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
