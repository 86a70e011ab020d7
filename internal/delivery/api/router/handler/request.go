package handler

import (
	"fmt"
	"strconv"

	domainerrors "seguridad/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bindAndValidate decodes the request body into req and runs the struct validator.
// Malformed bodies are INVALID_INPUT; rule violations are VALIDATION_FAILED.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		details := err.Error()
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			details = fmt.Sprint(httpErr.Message)
		}

		return errors.Wrap(domainerrors.ErrInvalidInput.WithDetails(details), "failed to bind request")
	}

	if err := c.Validate(req); err != nil {
		return errors.Wrap(err, "request validation failed")
	}

	return nil
}

// queryLimit reads the optional limit query parameter; nil when absent (server default).
func queryLimit(c echo.Context) (*int, error) {
	raw := c.QueryParam("limit")
	if raw == "" {
		return nil, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("limit must be an integer"), "invalid limit")
	}
	if limit < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("limit must not be negative"), "invalid limit")
	}

	return &limit, nil
}
