package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dchlearning/platform/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

const internalError = "Erreur interne du serveur"

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain error kinds to their HTTP status codes.
//   - Logs store failures with their cause without leaking it to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Domain errors first: their causes may themselves be echo errors.
	var de *domain.Error
	if errors.As(err, &de) {
		code := statusFor(de.Kind)
		if code >= http.StatusInternalServerError {
			logFailure(log, c, de, de.Message)
		}
		return code, de.Message
	}

	// Echo's own errors (404 from router, 405, ...)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Unexpected error: log the real cause, return a generic message.
	logFailure(log, c, err, "unhandled error")
	return http.StatusInternalServerError, internalError
}

// statusFor maps an error kind to its status code. Conflict is rendered as
// 400 because existing clients expect it for a duplicate registration.
func statusFor(kind error) int {
	switch kind {
	case domain.ErrInvalidInput, domain.ErrConflict:
		return http.StatusBadRequest
	case domain.ErrNotAuthenticated, domain.ErrInvalidCredentials:
		return http.StatusUnauthorized
	case domain.ErrForbidden:
		return http.StatusForbidden
	case domain.ErrNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func logFailure(log zerolog.Logger, c echo.Context, err error, msg string) {
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg(msg)
}
