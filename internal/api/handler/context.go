package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dchlearning/platform/internal/api/middleware"
	"github.com/dchlearning/platform/internal/core/domain"
)

// pathID parses the :id route parameter. Non-numeric or non-positive values
// are InvalidInput.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewError(domain.ErrInvalidInput, domain.MsgInvalidID)
	}
	return id, nil
}

// bind decodes the request into req and runs the registered validator.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domain.WrapError(domain.ErrInvalidInput, domain.MsgInvalidPayload, err)
	}
	return c.Validate(req)
}

// actorID is the id of the administrator attached by the admin gate, or 0.
func actorID(c echo.Context) int64 {
	if u := middleware.AdminFrom(c); u != nil {
		return u.ID
	}
	return 0
}

// fail keeps classified errors and turns anything else into a store failure
// carrying the route's fixed message.
func fail(err error, message string) error {
	return domain.AsStoreFailure(err, message)
}
