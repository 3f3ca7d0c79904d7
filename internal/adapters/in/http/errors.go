package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"rfidship/internal/generated/servers"
	"rfidship/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// StatusOf maps the error taxonomy onto HTTP status codes.
func StatusOf(err error) int {
	var bindErr *echo.BindingError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &bindErr):
		return bindErr.Code
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrSequenceOverflow):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrGenerationExhausted):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrMismatch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// handleError renders err as the Error model of the OpenAPI document.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := StatusOf(err)
	message := err.Error()

	var bindErr *echo.BindingError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &bindErr):
		message = fmt.Sprintf("%v: %s", bindErr.Message, bindErr.Field)
	case errors.As(err, &httpErr):
		message = fmt.Sprint(httpErr.Message)
	}
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			slog.String("method", c.Request().Method),
			slog.String("path", c.Path()),
			slog.Any("error", err),
		)
		if status == http.StatusInternalServerError {
			message = http.StatusText(status)
		}
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, servers.Error{Code: status, Message: message})
	}
	if err != nil {
		s.logger.ErrorContext(c.Request().Context(), "failed to write error response", slog.Any("error", err))
	}
}
