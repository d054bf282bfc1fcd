package notification

import (
	"context"
	"log/slog"
	"time"

	"freedge/internal/domain/entity"
	"freedge/internal/domain/service"

	"github.com/pkg/errors"
)

// simulatedTransport answers every check-in with a scripted reply after an optional delay.
// A reply slower than the response timeout counts as no response.
type simulatedTransport struct {
	reply   entity.CheckInResponse
	delay   time.Duration
	timeout time.Duration
	logger  *slog.Logger
}

// NewSimulatedTransport creates a transport for local testing.
func NewSimulatedTransport(reply entity.CheckInResponse, delay, timeout time.Duration, logger *slog.Logger) service.CheckInTransport {
	return &simulatedTransport{
		reply:   reply,
		delay:   delay,
		timeout: timeout,
		logger:  logger,
	}
}

func (t *simulatedTransport) RequestCheckIn(ctx context.Context, message *service.CheckInMessage) (entity.CheckInResponse, error) {
	if message.Destination == "" {
		return entity.ResponseNone, nil
	}

	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	timer := time.NewTimer(t.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.Canceled) {
			return entity.ResponseNone, errors.WithStack(ctx.Err())
		}
		t.logger.InfoContext(ctx, "Simulated caretaker did not answer in time",
			slog.String("attempt_id", message.AttemptID),
		)

		return entity.ResponseNone, nil
	case <-timer.C:
	}

	t.logger.InfoContext(ctx, "Simulated caretaker answered",
		slog.String("attempt_id", message.AttemptID),
		slog.String("response", t.reply.String()),
	)

	return t.reply, nil
}
