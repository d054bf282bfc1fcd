package pubsub

import (
	"context"
	"log/slog"

	"freedge/internal/domain/service"
)

// noopPublisher drops events. Check-ins can still be delivered synchronously through the API.
type noopPublisher struct {
	logger *slog.Logger
}

// NewNoopPublisher returns a publisher that only logs.
func NewNoopPublisher(logger *slog.Logger) service.EventPublisher {
	return &noopPublisher{logger: logger}
}

func (p *noopPublisher) PublishCheckInEvent(_ context.Context, event *service.CheckInEvent) error {
	p.logger.Debug("[NoopPubSub] Event publishing disabled, skipping",
		slog.String("attempt_id", event.AttemptID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}
