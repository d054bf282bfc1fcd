package usecase

import (
	"context"

	"freedge/internal/domain/entity"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// DispatchResult reports the attempts opened by one dispatch round
type DispatchResult struct {
	Attempts []*entity.CheckInAttempt
	Overdue  int // Overdue entries, with or without consent
}

// CheckInUsecase defines the interface for the caretaker check-in lifecycle
type CheckInUsecase interface {
	// Dispatch opens an attempt for every overdue entry whose caretaker consented and publishes it
	Dispatch(ctx context.Context, today civil.Date) (*DispatchResult, error)

	// Deliver sends a pending attempt through the transport and resolves it with the answer
	Deliver(ctx context.Context, attemptID uuid.UUID, today civil.Date) (*entity.CheckInAttempt, error)

	// Resolve applies a caretaker's answer to the latest pending attempt of an entry, exactly once
	Resolve(ctx context.Context, attemptID uuid.UUID, response entity.CheckInResponse, today civil.Date) (*entity.CheckInAttempt, error)
}
