// Package cache holds in-memory stores for short-lived state.
package cache

import (
	"context"
	"log/slog"
	"time"

	"freedge/config"
	domainerrors "freedge/internal/domain/errors"
	"freedge/internal/domain/repository"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const (
	defaultPreviewTTL      = 30 * time.Minute
	defaultCleanupInterval = 10 * time.Minute
)

type previewRepository struct {
	cache  *gocache.Cache
	logger *slog.Logger
}

// NewPreviewRepository keeps import previews in process memory until the configured TTL elapses.
func NewPreviewRepository(cfg *config.Config, logger *slog.Logger) repository.PreviewRepository {
	ttl := defaultPreviewTTL
	if cfg != nil && cfg.Importer != nil && cfg.Importer.PreviewTTL > 0 {
		ttl = cfg.Importer.PreviewTTL
	}

	return newPreviewRepository(ttl, logger)
}

func newPreviewRepository(ttl time.Duration, logger *slog.Logger) *previewRepository {
	cleanup := defaultCleanupInterval
	if ttl < cleanup {
		cleanup = ttl
	}

	return &previewRepository{
		cache:  gocache.New(ttl, cleanup),
		logger: logger.With(slog.String("component", "preview_cache")),
	}
}

func (r *previewRepository) Save(_ context.Context, preview *repository.ImportPreview) error {
	if preview == nil || preview.ID == uuid.Nil {
		return domainerrors.ErrValidationFailed.WrapMessage("preview requires an id")
	}

	r.cache.SetDefault(preview.ID.String(), preview)

	return nil
}

func (r *previewRepository) Get(_ context.Context, id uuid.UUID) (*repository.ImportPreview, error) {
	value, found := r.cache.Get(id.String())
	if !found {
		return nil, domainerrors.ErrPreviewNotFound
	}

	preview, ok := value.(*repository.ImportPreview)
	if !ok {
		r.logger.Error("wrong type assertion when getting preview", slog.String("previewID", id.String()))

		return nil, domainerrors.ErrPreviewNotFound
	}

	return preview, nil
}

func (r *previewRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.cache.Delete(id.String())

	return nil
}
