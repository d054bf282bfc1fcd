package usecase

import (
	"context"

	"freedge/internal/domain/entity"

	"cloud.google.com/go/civil"
)

// OverdueEntry is an entry past the confirmation threshold
type OverdueEntry struct {
	Freedge         *entity.Freedge
	DaysSinceUpdate int
	Notifiable      bool
}

// RegistryUsecase defines the interface for reading the registry and sweeping stale entries
type RegistryUsecase interface {
	// List returns every entry ordered by identity
	List(ctx context.Context) ([]*entity.Freedge, error)

	// Get returns a single entry
	Get(ctx context.Context, id int64) (*entity.Freedge, error)

	// Overdue returns entries unconfirmed for more than thresholdDays. Zero uses the configured threshold.
	Overdue(ctx context.Context, today civil.Date, thresholdDays int) ([]*OverdueEntry, error)

	// SuspectStale marks long-unconfirmed active entries as suspected inactive and returns them
	SuspectStale(ctx context.Context, today civil.Date) ([]*entity.Freedge, error)
}
