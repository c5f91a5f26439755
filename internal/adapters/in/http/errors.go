package http

import (
	"errors"
	"net/http"

	"lorrylink/internal/auth"
	"lorrylink/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps application errors to HTTP status codes and writes the
// JSON error body. Unrecognized errors become a 500 with a generic message
// so internals never leak to clients.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrInvalidState):
		code = http.StatusBadRequest
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrCodeMismatch):
		code = http.StatusUnauthorized
	}

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal server error"
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}

// writeBindError reports a request body that could not be decoded.
func writeBindError(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: "invalid request body",
	})
}
