package service

import (
	"context"
)

// CheckInEvent represents a check-in request to be delivered by the check-in worker
type CheckInEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	AttemptID   string `json:"attempt_id"`
	FreedgeID   int64  `json:"freedge_id"`
	Sequence    int    `json:"sequence"`
	ProjectName string `json:"project_name"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCheckInEvent publishes a check-in event for async delivery
	PublishCheckInEvent(ctx context.Context, event *CheckInEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
