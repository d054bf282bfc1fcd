// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"freedge/internal/domain/entity"
	"freedge/internal/domain/registry"

	"github.com/google/uuid"
)

// ImportPreview is a computed delta waiting for operator confirmation.
type ImportPreview struct {
	ID            uuid.UUID
	Candidates    []*entity.Freedge
	Delta         *registry.Delta
	ExistingCount int
}

// PreviewRepository keeps import previews for a limited time.
type PreviewRepository interface {
	// Save stores a preview until it expires.
	Save(ctx context.Context, preview *ImportPreview) error

	// Get returns the preview, or domain ErrPreviewNotFound when it is missing or expired.
	Get(ctx context.Context, id uuid.UUID) (*ImportPreview, error)

	// Delete drops the preview. Deleting a missing preview is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
