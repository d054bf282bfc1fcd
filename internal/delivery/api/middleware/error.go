// Package middleware holds the admin API error handler.
package middleware

import (
	"log/slog"

	"freedge/internal/delivery/api/response"
	"freedge/internal/delivery/api/validator"
	deliverycontext "freedge/internal/delivery/context"
	domainerrors "freedge/internal/domain/errors"
	"freedge/internal/domain/registry"
	"freedge/internal/errors"
	"freedge/internal/infra/dataset"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware turns handler errors into error envelopes
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if writeErr := m.write(err, c); writeErr != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", writeErr))
	}
}

func (m *ErrorMiddleware) write(err error, c echo.Context) error {
	// Dataset problems are the operator's to fix, so they carry details
	var malformed *registry.MalformedRowError
	if errors.As(err, &malformed) {
		return response.Unprocessable(c, malformed.Error(), map[string]any{
			"row":    malformed.Index,
			"line":   malformed.Line,
			"column": malformed.Column,
		})
	}
	var missing *dataset.MissingColumnsError
	if errors.As(err, &missing) {
		return response.Unprocessable(c, missing.Error(), map[string]any{
			"missing_columns": missing.Columns,
		})
	}
	var empty registry.EmptyDatasetError
	if errors.As(err, &empty) {
		return response.Unprocessable(c, empty.Error(), nil)
	}

	if fields, ok := validator.FieldErrors(err); ok {
		return response.ValidationFailed(c, fields)
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= 500 {
			m.logUnhandled(c, err)
		}

		return response.AppError(c, appErr)
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := "An error occurred"
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		return response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)
	}

	m.logUnhandled(c, err)

	return response.InternalServerError(c)
}

func (m *ErrorMiddleware) logUnhandled(c echo.Context, err error) {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
