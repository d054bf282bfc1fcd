package usecase

import (
	"context"

	"freedge/internal/domain/registry"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// ImportPreview is a computed import waiting for the operator's decision
type ImportPreview struct {
	ID            uuid.UUID
	Delta         *registry.Delta
	Summary       []string
	RemovesAll    bool
	ExistingCount int
}

// ImportResult counts the entries an applied import changed
type ImportResult struct {
	Added    int
	Removed  int
	Modified int
}

// ImportUsecase defines the interface for loading a dataset into the registry
type ImportUsecase interface {
	// Preview normalizes rows and computes the delta against the registry without writing anything
	Preview(ctx context.Context, rows []registry.Row, today civil.Date) (*ImportPreview, error)

	// Apply writes a previewed delta in one transaction. A remove-all delta needs allowRemoveAll.
	Apply(ctx context.Context, previewID uuid.UUID, allowRemoveAll bool) (*ImportResult, error)

	// Discard drops a preview the operator declined
	Discard(ctx context.Context, previewID uuid.UUID) error
}
