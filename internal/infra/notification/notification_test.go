package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"freedge/config"
	"freedge/internal/domain/entity"
	"freedge/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLogTransport(t *testing.T) {
	transport := NewLogTransport(discardLogger())

	response, err := transport.RequestCheckIn(context.Background(), &service.CheckInMessage{
		AttemptID:   "a",
		Method:      entity.ContactSMS,
		Destination: "555-1111",
		Body:        "hello",
	})
	assert.ErrorIs(t, err, service.ErrAwaitingReply)
	assert.Equal(t, entity.ResponseNone, response)

	response, err = transport.RequestCheckIn(context.Background(), &service.CheckInMessage{AttemptID: "b"})
	require.NoError(t, err)
	assert.Equal(t, entity.ResponseNone, response)
}

func TestSimulatedTransport(t *testing.T) {
	message := &service.CheckInMessage{AttemptID: "a", Destination: "555-1111"}

	t.Run("scripted reply", func(t *testing.T) {
		transport := NewSimulatedTransport(entity.ResponseConfirmedInactive, 0, time.Second, discardLogger())

		response, err := transport.RequestCheckIn(context.Background(), message)
		require.NoError(t, err)
		assert.Equal(t, entity.ResponseConfirmedInactive, response)
	})

	t.Run("slow reply times out", func(t *testing.T) {
		transport := NewSimulatedTransport(entity.ResponseConfirmedActive, time.Second, 10*time.Millisecond, discardLogger())

		response, err := transport.RequestCheckIn(context.Background(), message)
		require.NoError(t, err)
		assert.Equal(t, entity.ResponseNone, response)
	})

	t.Run("cancelled context", func(t *testing.T) {
		transport := NewSimulatedTransport(entity.ResponseConfirmedActive, time.Second, 0, discardLogger())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := transport.RequestCheckIn(ctx, message)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("unreachable caretaker", func(t *testing.T) {
		transport := NewSimulatedTransport(entity.ResponseConfirmedActive, 0, 0, discardLogger())

		response, err := transport.RequestCheckIn(context.Background(), &service.CheckInMessage{AttemptID: "b"})
		require.NoError(t, err)
		assert.Equal(t, entity.ResponseNone, response)
	})
}

func TestNewCheckInTransport(t *testing.T) {
	cfg := &config.Config{Lifecycle: &config.LifecycleConfig{Transport: "simulated", SimulatedReply: "confirmed_inactive"}}
	transport, err := NewCheckInTransport(cfg, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &simulatedTransport{}, transport)

	transport, err = NewCheckInTransport(&config.Config{}, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &logTransport{}, transport)

	_, err = NewCheckInTransport(&config.Config{Lifecycle: &config.LifecycleConfig{Transport: "carrier-pigeon"}}, discardLogger())
	assert.Error(t, err)
}

func TestNewCheckInTransport_SimulatedTiming(t *testing.T) {
	message := &service.CheckInMessage{AttemptID: "a", Destination: "ana@example.org"}

	tests := []struct {
		name    string
		delay   time.Duration
		timeout time.Duration
		want    entity.CheckInResponse
	}{
		{name: "answers within the response timeout", delay: 5 * time.Millisecond, timeout: time.Second, want: entity.ResponseConfirmedInactive},
		{name: "slower than the response timeout", delay: time.Second, timeout: 20 * time.Millisecond, want: entity.ResponseNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Lifecycle: &config.LifecycleConfig{
				Transport:       "simulated",
				SimulatedReply:  "confirmed_inactive",
				SimulatedDelay:  tt.delay,
				ResponseTimeout: tt.timeout,
			}}

			transport, err := NewCheckInTransport(cfg, discardLogger())
			require.NoError(t, err)

			response, err := transport.RequestCheckIn(context.Background(), message)
			require.NoError(t, err)
			assert.Equal(t, tt.want, response)
		})
	}
}
