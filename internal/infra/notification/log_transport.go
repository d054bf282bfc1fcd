package notification

import (
	"context"
	"log/slog"

	"freedge/internal/domain/entity"
	"freedge/internal/domain/service"
)

// logTransport writes check-in messages to the log. Operators relay them and record the
// caretaker's reply through the API.
type logTransport struct {
	logger *slog.Logger
}

// NewLogTransport creates a transport that only logs outgoing messages.
func NewLogTransport(logger *slog.Logger) service.CheckInTransport {
	return &logTransport{logger: logger}
}

func (t *logTransport) RequestCheckIn(ctx context.Context, message *service.CheckInMessage) (entity.CheckInResponse, error) {
	if message.Destination == "" {
		t.logger.WarnContext(ctx, "Caretaker unreachable, no destination for preferred method",
			slog.String("attempt_id", message.AttemptID),
			slog.String("method", message.Method.String()),
		)

		return entity.ResponseNone, nil
	}

	t.logger.InfoContext(ctx, "Check-in message",
		slog.String("attempt_id", message.AttemptID),
		slog.String("method", message.Method.String()),
		slog.String("destination", message.Destination),
		slog.String("body", message.Body),
	)

	return entity.ResponseNone, service.ErrAwaitingReply
}
