package handler

import (
	"strconv"

	domainerrors "sweetshop/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the JSON body into req and runs its validate tags.
// Both failures surface as 422 through the central error handler.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("id must be a non-negative integer")
	}

	return uint(id), nil
}

// optionalString returns nil for an absent or empty query parameter.
func optionalString(c echo.Context, name string) *string {
	value := c.QueryParam(name)
	if value == "" {
		return nil
	}

	return &value
}

// optionalFloat returns nil for an absent query parameter and fails on a malformed one.
func optionalFloat(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a number")
	}

	return &value, nil
}
