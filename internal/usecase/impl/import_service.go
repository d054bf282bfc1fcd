package impl

import (
	"context"
	"log/slog"

	deliverycontext "freedge/internal/delivery/context"
	"freedge/internal/domain/entity"
	domainerrors "freedge/internal/domain/errors"
	"freedge/internal/domain/registry"
	"freedge/internal/domain/repository"
	"freedge/internal/infra/metrics"
	"freedge/internal/usecase"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/fx"
)

type importService struct {
	txManager   repository.TransactionManager
	freedgeRepo repository.FreedgeRepository
	previewRepo repository.PreviewRepository
	metrics     *metrics.Recorder
	logger      *slog.Logger
}

// ImportServiceParams holds dependencies for ImportService, injected by Fx.
type ImportServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	FreedgeRepo repository.FreedgeRepository
	PreviewRepo repository.PreviewRepository
	Metrics     *metrics.Recorder `optional:"true"`
	Logger      *slog.Logger
}

// NewImportService is the constructor for importService.
func NewImportService(params ImportServiceParams) usecase.ImportUsecase {
	return &importService{
		txManager:   params.TxManager,
		freedgeRepo: params.FreedgeRepo,
		previewRepo: params.PreviewRepo,
		metrics:     params.Metrics,
		logger:      params.Logger,
	}
}

func (srv *importService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Preview normalizes rows, reconciles them against the registry and keeps the result for Apply.
func (srv *importService) Preview(ctx context.Context, rows []registry.Row, today civil.Date) (_ *usecase.ImportPreview, err error) {
	ctx, span := startSpan(ctx, "import.preview", attribute.Int("rows", len(rows)))
	defer func() { endSpan(span, err) }()

	candidates, err := registry.Normalize(rows, today)
	if err != nil {
		return nil, err
	}

	existing, err := srv.freedgeRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list registry entries")
	}

	delta := registry.Reconcile(existing, candidates)
	srv.logCollisions(ctx, delta.Collisions)

	stored := &repository.ImportPreview{
		ID:            uuid.New(),
		Candidates:    candidates,
		Delta:         delta,
		ExistingCount: len(existing),
	}
	if err := srv.previewRepo.Save(ctx, stored); err != nil {
		return nil, errors.Wrap(err, "failed to save import preview")
	}
	srv.metrics.ImportPreview(metrics.OutcomePreviewed)

	srv.log(ctx).Info("Import previewed",
		slog.String("previewID", stored.ID.String()),
		slog.Int("toAdd", len(delta.ToAdd)),
		slog.Int("toRemove", len(delta.ToRemove)),
		slog.Int("toModify", len(delta.ToModify)),
	)

	return toImportPreview(stored), nil
}

// Apply recomputes the delta inside a transaction and writes it only if the registry
// has not changed since the preview.
func (srv *importService) Apply(ctx context.Context, previewID uuid.UUID, allowRemoveAll bool) (_ *usecase.ImportResult, err error) {
	ctx, span := startSpan(ctx, "import.apply", attribute.String("preview.id", previewID.String()))
	defer func() { endSpan(span, err) }()

	preview, err := srv.previewRepo.Get(ctx, previewID)
	if err != nil {
		return nil, err
	}

	var result usecase.ImportResult
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		freedgeRepo := repoFactory.NewFreedgeRepository()

		existing, err := freedgeRepo.ListAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list registry entries")
		}

		current := registry.Reconcile(existing, preview.Candidates)
		if !sameDelta(current, preview.Delta) {
			return domainerrors.ErrPreviewStale
		}
		if current.RemovesAll(len(existing)) && !allowRemoveAll {
			return domainerrors.ErrRemoveAllNotConfirmed
		}

		result, err = applyDelta(ctx, freedgeRepo, current)

		return err
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrPreviewStale) {
			srv.metrics.ImportPreview(metrics.OutcomeStale)
		}

		return nil, err
	}

	if err := srv.previewRepo.Delete(ctx, previewID); err != nil {
		srv.log(ctx).Warn("Failed to drop applied preview", slog.String("previewID", previewID.String()), slog.Any("error", err))
	}
	srv.metrics.ImportPreview(metrics.OutcomeApplied)
	srv.metrics.ImportApplied(result.Added, result.Removed, result.Modified)

	srv.log(ctx).Info("Import applied",
		slog.String("previewID", previewID.String()),
		slog.Int("added", result.Added),
		slog.Int("removed", result.Removed),
		slog.Int("modified", result.Modified),
	)

	return &result, nil
}

// Discard drops a preview. The registry is untouched.
func (srv *importService) Discard(ctx context.Context, previewID uuid.UUID) error {
	if _, err := srv.previewRepo.Get(ctx, previewID); err != nil {
		return err
	}
	if err := srv.previewRepo.Delete(ctx, previewID); err != nil {
		return errors.Wrap(err, "failed to discard import preview")
	}
	srv.metrics.ImportPreview(metrics.OutcomeDiscarded)

	srv.log(ctx).Info("Import discarded", slog.String("previewID", previewID.String()))

	return nil
}

func (srv *importService) logCollisions(ctx context.Context, collisions []registry.Collision) {
	for _, collision := range collisions {
		attrs := []any{
			slog.String("kind", string(collision.Kind)),
			slog.String("projectName", collision.ProjectName),
		}
		if collision.Kind == registry.CollisionExisting {
			attrs = append(attrs,
				slog.Int64("keptID", collision.Kept.ID),
				slog.Int64("ignoredID", collision.Ignored.ID),
			)
		}
		srv.log(ctx).Warn("Duplicate project name", attrs...)
	}
}

// applyDelta inserts, updates and deletes in that order. Each call writes both rows of an entry.
func applyDelta(ctx context.Context, freedgeRepo repository.FreedgeRepository, delta *registry.Delta) (usecase.ImportResult, error) {
	var result usecase.ImportResult

	for _, candidate := range delta.ToAdd {
		if _, err := freedgeRepo.Insert(ctx, candidate); err != nil {
			return result, errors.Wrapf(err, "failed to add %q", candidate.ProjectName)
		}
		result.Added++
	}

	for _, modification := range delta.ToModify {
		if err := freedgeRepo.Update(ctx, modification.Merged()); err != nil {
			return result, errors.Wrapf(err, "failed to modify entry %d", modification.Existing.ID)
		}
		result.Modified++
	}

	for _, entry := range delta.ToRemove {
		if err := freedgeRepo.Delete(ctx, entry.ID); err != nil {
			return result, errors.Wrapf(err, "failed to remove entry %d", entry.ID)
		}
		result.Removed++
	}

	return result, nil
}

// sameDelta reports whether two deltas would write the same changes.
func sameDelta(a, b *registry.Delta) bool {
	if len(a.ToAdd) != len(b.ToAdd) || len(a.ToRemove) != len(b.ToRemove) || len(a.ToModify) != len(b.ToModify) {
		return false
	}

	for i := range a.ToAdd {
		if a.ToAdd[i].ProjectName != b.ToAdd[i].ProjectName {
			return false
		}
	}
	for i := range a.ToRemove {
		if !sameEntry(a.ToRemove[i], b.ToRemove[i]) {
			return false
		}
	}
	for i := range a.ToModify {
		if !sameEntry(a.ToModify[i].Existing, b.ToModify[i].Existing) {
			return false
		}
	}

	return true
}

func sameEntry(a, b *entity.Freedge) bool {
	return a.ID == b.ID && entity.SameContent(a, b)
}

func toImportPreview(stored *repository.ImportPreview) *usecase.ImportPreview {
	return &usecase.ImportPreview{
		ID:            stored.ID,
		Delta:         stored.Delta,
		Summary:       stored.Delta.Summary(),
		RemovesAll:    stored.Delta.RemovesAll(stored.ExistingCount),
		ExistingCount: stored.ExistingCount,
	}
}
