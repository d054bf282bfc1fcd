package handler

import (
	"log/slog"
	"net/http"

	"freedge/internal/delivery/api/response"
	domainerrors "freedge/internal/domain/errors"
	"freedge/internal/domain/entity"
	"freedge/internal/usecase"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckInHandlerParams holds dependencies for CheckInHandler, injected by Fx.
type CheckInHandlerParams struct {
	fx.In

	CheckInUC usecase.CheckInUsecase
	Logger    *slog.Logger
}

// CheckInHandler serves caretaker check-in dispatch and replies
type CheckInHandler struct {
	checkInUC usecase.CheckInUsecase
	logger    *slog.Logger
	today     func() civil.Date
}

// NewCheckInHandler is the constructor for CheckInHandler
func NewCheckInHandler(params CheckInHandlerParams) *CheckInHandler {
	return &CheckInHandler{
		checkInUC: params.CheckInUC,
		logger:    params.Logger,
		today:     localToday,
	}
}

// RecordResponseRequest represents a caretaker's answer
type RecordResponseRequest struct {
	Response string `json:"response" validate:"required,checkin_response"`
}

// Dispatch opens attempts for every overdue entry whose caretaker consented
func (h *CheckInHandler) Dispatch(c echo.Context) error {
	result, err := h.checkInUC.Dispatch(c.Request().Context(), h.today())
	if err != nil {
		return err
	}

	resp := DispatchResponse{
		Overdue:  result.Overdue,
		Attempts: make([]AttemptResponse, 0, len(result.Attempts)),
	}
	for _, attempt := range result.Attempts {
		resp.Attempts = append(resp.Attempts, toAttemptResponse(attempt))
	}

	return response.Success(c, http.StatusAccepted, resp)
}

// RecordResponse applies a caretaker's answer to an attempt
func (h *CheckInHandler) RecordResponse(c echo.Context) error {
	attemptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("attempt id must be a UUID")
	}

	var req RecordResponseRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid check-in response")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	answer, err := entity.ParseCheckInResponse(req.Response)
	if err != nil {
		return domainerrors.ErrInvalidResponse
	}

	attempt, err := h.checkInUC.Resolve(c.Request().Context(), attemptID, answer, h.today())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toAttemptResponse(attempt))
}
