package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"freedge/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

const healthPingTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse reports process and database liveness
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// HealthHandler serves the liveness check
type HealthHandler struct {
	db     Pinger
	logger *slog.Logger
}

// NewHealthHandler creates a HealthHandler. A nil db reports the database as skipped.
func NewHealthHandler(db Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// Healthz pings the database and returns 503 when it is unreachable
func (h *HealthHandler) Healthz(c echo.Context) error {
	if h.db == nil {
		return response.Success(c, http.StatusOK, HealthResponse{Status: "ok", Database: "skipped"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warn("Health check failed", slog.Any("error", err))

		return response.Success(c, http.StatusServiceUnavailable, HealthResponse{Status: "degraded", Database: "unreachable"})
	}

	return response.Success(c, http.StatusOK, HealthResponse{Status: "ok", Database: "ok"})
}
