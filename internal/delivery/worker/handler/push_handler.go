// Package handler receives Pub/Sub push deliveries for the check-in worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"freedge/config"
	deliverycontext "freedge/internal/delivery/context"
	"freedge/internal/domain/constants"
	domainerrors "freedge/internal/domain/errors"
	"freedge/internal/domain/service"
	"freedge/internal/errors"
	"freedge/internal/usecase"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// TokenValidator checks a push OIDC token for an audience
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler delivers check-in requests published by the dispatcher
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	validateToken  TokenValidator
	logger         *slog.Logger
	checkInUC      usecase.CheckInUsecase
	today          func() civil.Date
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	CheckInUC usecase.CheckInUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google push subscriptions outside develop carry OIDC tokens
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var audience string
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		checkInUC:      params.CheckInUC,
		today:          func() civil.Date { return civil.DateOf(time.Now()) },
	}
}

// HandlePush acknowledges with 2xx once the event is handled or can never be handled,
// and answers 500 so Pub/Sub redelivers when the failure may be transient.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := decodeEvent(&pushMsg)
	if err != nil {
		// Redelivery cannot fix a malformed payload
		h.logger.Error("[Worker] Dropping undecodable check-in event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusNoContent)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, event)
	ctx = deliverycontext.WithRequest(ctx, requestID, h.logger)
	reqLogger := deliverycontext.GetLoggerOrDefault(ctx, h.logger).With(
		slog.String("attempt_id", event.AttemptID),
		slog.Int64("freedge_id", event.FreedgeID),
		slog.Int("sequence", event.Sequence),
	)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	attemptID, err := uuid.Parse(event.AttemptID)
	if err != nil {
		reqLogger.Error("[Worker] Dropping check-in event with invalid attempt id", slog.Any("error", err))

		return c.NoContent(http.StatusNoContent)
	}

	reqLogger.Info("[Worker] Delivering check-in", slog.String("project_name", event.ProjectName))

	attempt, err := h.checkInUC.Deliver(ctx, attemptID, h.today())
	if err != nil {
		if isPermanent(err) {
			reqLogger.Warn("[Worker] Check-in no longer deliverable", slog.Any("error", err))

			return c.NoContent(http.StatusNoContent)
		}

		reqLogger.Error("[Worker] Failed to deliver check-in", slog.Any("error", err))

		return c.NoContent(http.StatusInternalServerError)
	}

	reqLogger.Info("[Worker] Check-in delivered",
		slog.String("state", attempt.State.String()),
		slog.String("response", attempt.Response.String()),
	)

	return c.NoContent(http.StatusOK)
}

func decodeEvent(pushMsg *PubSubMessage) (*service.CheckInEvent, error) {
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	var event service.CheckInEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to parse check-in event")
	}

	return &event, nil
}

// isPermanent reports domain outcomes such as a superseded or closed attempt.
// Database and transport failures stay retryable.
func isPermanent(err error) bool {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return false
	}

	return appErr.HTTPCode() < http.StatusInternalServerError
}

// extractRequestID prefers message attributes, then the payload, then the X-Request-Id header
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.CheckInEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; deliverycontext.ValidRequestID(requestID) {
		return requestID
	}
	if deliverycontext.ValidRequestID(event.RequestID) {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the OIDC token Google attaches to authenticated push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
