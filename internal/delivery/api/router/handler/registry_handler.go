package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"freedge/internal/delivery/api/response"
	domainerrors "freedge/internal/domain/errors"
	"freedge/internal/usecase"

	"cloud.google.com/go/civil"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RegistryHandlerParams holds dependencies for RegistryHandler, injected by Fx.
type RegistryHandlerParams struct {
	fx.In

	RegistryUC usecase.RegistryUsecase
	Logger     *slog.Logger
}

// RegistryHandler serves registry reads and the stale sweep
type RegistryHandler struct {
	registryUC usecase.RegistryUsecase
	logger     *slog.Logger
	today      func() civil.Date
}

// NewRegistryHandler is the constructor for RegistryHandler
func NewRegistryHandler(params RegistryHandlerParams) *RegistryHandler {
	return &RegistryHandler{
		registryUC: params.RegistryUC,
		logger:     params.Logger,
		today:      localToday,
	}
}

// OverdueQuery represents the query string of the overdue listing. Zero uses the configured threshold.
type OverdueQuery struct {
	Threshold int `query:"threshold" json:"threshold" validate:"gte=0"`
}

// ListFreedges returns every entry ordered by identity
func (h *RegistryHandler) ListFreedges(c echo.Context) error {
	entries, err := h.registryUC.List(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toFreedgeResponses(entries))
}

// GetFreedge returns one entry
func (h *RegistryHandler) GetFreedge(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("freedge id must be a positive integer")
	}

	entry, err := h.registryUC.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toFreedgeResponse(entry))
}

// ListOverdue returns the entries past the confirmation threshold
func (h *RegistryHandler) ListOverdue(c echo.Context) error {
	var query OverdueQuery
	if err := c.Bind(&query); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "threshold must be a number of days")
	}
	if err := c.Validate(&query); err != nil {
		return err
	}

	entries, err := h.registryUC.Overdue(c.Request().Context(), h.today(), query.Threshold)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toOverdueResponses(entries))
}

// SuspectStale marks long-unconfirmed active entries as suspected inactive
func (h *RegistryHandler) SuspectStale(c echo.Context) error {
	entries, err := h.registryUC.SuspectStale(c.Request().Context(), h.today())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toFreedgeResponses(entries))
}
