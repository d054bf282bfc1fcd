// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"freedge/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckInRepository defines the interface for check-in attempt persistence.
type CheckInRepository interface {
	// Create persists a new attempt. Sequence must already be assigned.
	Create(ctx context.Context, attempt *entity.CheckInAttempt) error

	// FindByID retrieves an attempt by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CheckInAttempt, error)

	// FindLatestByFreedge retrieves the attempt with the highest sequence for an entry.
	// It returns nil without error when the entry has no attempts.
	FindLatestByFreedge(ctx context.Context, freedgeID int64) (*entity.CheckInAttempt, error)

	// SupersedePending marks every pending attempt of an entry as superseded.
	SupersedePending(ctx context.Context, freedgeID int64) error

	// Resolve closes a pending attempt with a final state and response.
	// It returns false when the attempt was no longer pending.
	Resolve(ctx context.Context, attempt *entity.CheckInAttempt) (bool, error)
}
