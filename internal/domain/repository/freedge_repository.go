// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"freedge/internal/domain/entity"
)

// FreedgeRepository defines the interface for registry entry persistence.
// Every write covers the entry record and its address record together.
type FreedgeRepository interface {
	// ListAll returns every entry ordered by identity, with status and dates materialized.
	ListAll(ctx context.Context) ([]*entity.Freedge, error)

	// FindByID retrieves an entry by its identity.
	FindByID(ctx context.Context, id int64) (*entity.Freedge, error)

	// FindByProjectName retrieves all entries sharing a project name, ordered by identity.
	FindByProjectName(ctx context.Context, projectName string) ([]*entity.Freedge, error)

	// Insert persists a new entry and returns the assigned identity.
	Insert(ctx context.Context, freedge *entity.Freedge) (int64, error)

	// Update overwrites an existing entry and its address.
	Update(ctx context.Context, freedge *entity.Freedge) error

	// Delete removes an entry and its address.
	Delete(ctx context.Context, id int64) error
}
