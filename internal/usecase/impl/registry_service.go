package impl

import (
	"context"
	"log/slog"

	"freedge/config"
	deliverycontext "freedge/internal/delivery/context"
	"freedge/internal/domain/entity"
	"freedge/internal/domain/registry"
	"freedge/internal/domain/repository"
	"freedge/internal/infra/metrics"
	"freedge/internal/usecase"

	"cloud.google.com/go/civil"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/fx"
)

type registryService struct {
	txManager        repository.TransactionManager
	freedgeRepo      repository.FreedgeRepository
	thresholdDays    int
	suspectAfterDays int
	metrics          *metrics.Recorder
	logger           *slog.Logger
}

// RegistryServiceParams holds dependencies for RegistryService, injected by Fx.
type RegistryServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	FreedgeRepo repository.FreedgeRepository
	Config      *config.Config
	Metrics     *metrics.Recorder `optional:"true"`
	Logger      *slog.Logger
}

// NewRegistryService is the constructor for registryService.
func NewRegistryService(params RegistryServiceParams) usecase.RegistryUsecase {
	thresholdDays, suspectAfterDays := lifecycleDays(params.Config)

	return &registryService{
		txManager:        params.TxManager,
		freedgeRepo:      params.FreedgeRepo,
		thresholdDays:    thresholdDays,
		suspectAfterDays: suspectAfterDays,
		metrics:          params.Metrics,
		logger:           params.Logger,
	}
}

func lifecycleDays(cfg *config.Config) (thresholdDays, suspectAfterDays int) {
	thresholdDays, suspectAfterDays = registry.DefaultThresholdDays, registry.DefaultSuspectAfterDays
	if cfg == nil || cfg.Lifecycle == nil {
		return thresholdDays, suspectAfterDays
	}
	if cfg.Lifecycle.ThresholdDays > 0 {
		thresholdDays = cfg.Lifecycle.ThresholdDays
	}
	if cfg.Lifecycle.SuspectAfterDays > 0 {
		suspectAfterDays = cfg.Lifecycle.SuspectAfterDays
	}

	return thresholdDays, suspectAfterDays
}

func (srv *registryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *registryService) List(ctx context.Context) ([]*entity.Freedge, error) {
	entries, err := srv.freedgeRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list registry entries")
	}

	return entries, nil
}

func (srv *registryService) Get(ctx context.Context, id int64) (*entity.Freedge, error) {
	return srv.freedgeRepo.FindByID(ctx, id)
}

func (srv *registryService) Overdue(ctx context.Context, today civil.Date, thresholdDays int) ([]*usecase.OverdueEntry, error) {
	if thresholdDays <= 0 {
		thresholdDays = srv.thresholdDays
	}

	entries, err := srv.freedgeRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list registry entries")
	}

	overdue := registry.SelectOverdue(entries, today, thresholdDays)
	srv.metrics.OverdueEntries(len(overdue))

	result := make([]*usecase.OverdueEntry, 0, len(overdue))
	for _, entry := range overdue {
		days, _ := entry.DaysSinceLastUpdate(today)
		result = append(result, &usecase.OverdueEntry{
			Freedge:         entry,
			DaysSinceUpdate: days,
			Notifiable:      entry.CanNotify(),
		})
	}

	return result, nil
}

// SuspectStale writes every stale entry in one transaction.
func (srv *registryService) SuspectStale(ctx context.Context, today civil.Date) (_ []*entity.Freedge, err error) {
	ctx, span := startSpan(ctx, "registry.suspect_stale", attribute.Int("suspect_after_days", srv.suspectAfterDays))
	defer func() { endSpan(span, err) }()

	var stale []*entity.Freedge
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		freedgeRepo := repoFactory.NewFreedgeRepository()

		entries, err := freedgeRepo.ListAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list registry entries")
		}

		stale = registry.SelectStale(entries, today, srv.suspectAfterDays)
		for _, entry := range stale {
			if err := freedgeRepo.Update(ctx, entry); err != nil {
				return errors.Wrapf(err, "failed to mark entry %d suspected inactive", entry.ID)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.metrics.EntriesSuspected(len(stale))
	if len(stale) > 0 {
		srv.log(ctx).Info("Entries suspected inactive", slog.Int("count", len(stale)))
	}

	return stale, nil
}
