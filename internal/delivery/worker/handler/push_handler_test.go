package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"freedge/config"
	deliverycontext "freedge/internal/delivery/context"
	"freedge/internal/domain/constants"
	domainerrors "freedge/internal/domain/errors"
	"freedge/internal/domain/entity"
	"freedge/internal/domain/service"
	mockusecase "freedge/internal/mocks/usecase"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

var testToday = civil.Date{Year: 2024, Month: 6, Day: 1}

func newTestHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockusecase.MockCheckInUsecase) {
	t.Helper()

	checkInUC := mockusecase.NewMockCheckInUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		CheckInUC: checkInUC,
	})
	h.today = func() civil.Date { return testToday }

	return h, checkInUC
}

func developConfig() *config.Config {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}
	cfg.Env.Env = constants.EnvDevelop

	return cfg
}

func pushBody(t *testing.T, event *service.CheckInEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/local/subscriptions/checkin-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	e.POST("/push", h.HandlePush)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestHandlePush_DeliverOutcomes(t *testing.T) {
	attemptID := uuid.New()
	event := &service.CheckInEvent{
		RequestID:   "req-from-payload",
		AttemptID:   attemptID.String(),
		FreedgeID:   7,
		Sequence:    2,
		ProjectName: "Alpha",
	}

	tests := []struct {
		name       string
		attempt    *entity.CheckInAttempt
		err        error
		wantStatus int
	}{
		{
			name:       "delivered",
			attempt:    &entity.CheckInAttempt{ID: attemptID, State: entity.AttemptAnswered, Response: entity.ResponseConfirmedActive},
			wantStatus: http.StatusOK,
		},
		{
			name:       "superseded attempt is acked",
			err:        pkgerrors.WithStack(domainerrors.ErrAttemptSuperseded),
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "missing attempt is acked",
			err:        domainerrors.ErrAttemptNotFound,
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "database failure is retried",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "find attempt"),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "transport failure is retried",
			err:        pkgerrors.Wrap(errors.New("smtp timeout"), "failed to deliver check-in"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, checkInUC := newTestHandler(t, developConfig())

			checkInUC.EXPECT().
				Deliver(mock.Anything, attemptID, testToday).
				Return(tt.attempt, tt.err).
				Once()

			rec := servePush(h, pushBody(t, event, nil), nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandlePush_RequestIDFromAttributes(t *testing.T) {
	h, checkInUC := newTestHandler(t, developConfig())
	attemptID := uuid.New()

	checkInUC.EXPECT().
		Deliver(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "req-from-attributes"
		}), attemptID, testToday).
		Return(&entity.CheckInAttempt{ID: attemptID, State: entity.AttemptPending}, nil).
		Once()

	body := pushBody(t, &service.CheckInEvent{
		RequestID: "req-from-payload",
		AttemptID: attemptID.String(),
	}, map[string]string{"request_id": "req-from-attributes"})

	rec := servePush(h, body, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_UndeliverablePayloads(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "envelope is not JSON",
			body:       "{not json",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "data is not base64",
			body:       `{"message":{"data":"%%%","messageId":"1"}}`,
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "event is not JSON",
			body:       `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("nope")) + `","messageId":"1"}}`,
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "attempt id is not a UUID",
			body:       `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte(`{"attempt_id":"abc"}`)) + `","messageId":"1"}}`,
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t, developConfig())

			rec := servePush(h, tt.body, nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandlePush_VerifiesTokenInProduction(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction

	attemptID := uuid.New()
	body := func(t *testing.T) string {
		return pushBody(t, &service.CheckInEvent{AttemptID: attemptID.String()}, nil)
	}

	t.Run("missing token", func(t *testing.T) {
		h, _ := newTestHandler(t, cfg)
		require.True(t, h.verifyPushAuth)

		rec := servePush(h, body(t), nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		h, _ := newTestHandler(t, cfg)
		h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		}

		rec := servePush(h, body(t), http.Header{echo.HeaderAuthorization: {"Bearer token"}})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		h, checkInUC := newTestHandler(t, cfg)

		var gotAudience, gotToken string
		h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			gotToken, gotAudience = token, audience

			return &idtoken.Payload{
				Issuer: "https://accounts.google.com",
				Claims: map[string]any{"email_verified": true},
			}, nil
		}
		checkInUC.EXPECT().Deliver(mock.Anything, attemptID, testToday).
			Return(&entity.CheckInAttempt{ID: attemptID, State: entity.AttemptAnswered}, nil).Once()

		rec := servePush(h, body(t), http.Header{echo.HeaderAuthorization: {"Bearer signed-token"}})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "signed-token", gotToken)
		assert.Equal(t, "http://example.com/push", gotAudience)
	})
}

func TestNewPushHandler_SkipsVerificationInDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, PushAudience: "https://worker.example.com/push"}}
	cfg.Env.Env = constants.EnvDevelop

	h, _ := newTestHandler(t, cfg)
	assert.False(t, h.verifyPushAuth)
	assert.Equal(t, "https://worker.example.com/push", h.audience)
}
