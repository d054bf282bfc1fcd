package impl

import (
	"context"
	"log/slog"
	"time"

	"freedge/config"
	deliverycontext "freedge/internal/delivery/context"
	"freedge/internal/domain/entity"
	domainerrors "freedge/internal/domain/errors"
	"freedge/internal/domain/registry"
	"freedge/internal/domain/repository"
	"freedge/internal/domain/service"
	"freedge/internal/infra/metrics"
	"freedge/internal/usecase"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/fx"
)

type checkInService struct {
	txManager     repository.TransactionManager
	freedgeRepo   repository.FreedgeRepository
	checkInRepo   repository.CheckInRepository
	publisher     service.EventPublisher
	transport     service.CheckInTransport
	thresholdDays int
	metrics       *metrics.Recorder
	logger        *slog.Logger
	now           func() time.Time
}

// CheckInServiceParams holds dependencies for CheckInService, injected by Fx.
type CheckInServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	FreedgeRepo repository.FreedgeRepository
	CheckInRepo repository.CheckInRepository
	Publisher   service.EventPublisher
	Transport   service.CheckInTransport
	Config      *config.Config
	Metrics     *metrics.Recorder `optional:"true"`
	Logger      *slog.Logger
}

// NewCheckInService is the constructor for checkInService.
func NewCheckInService(params CheckInServiceParams) usecase.CheckInUsecase {
	thresholdDays, _ := lifecycleDays(params.Config)

	return &checkInService{
		txManager:     params.TxManager,
		freedgeRepo:   params.FreedgeRepo,
		checkInRepo:   params.CheckInRepo,
		publisher:     params.Publisher,
		transport:     params.Transport,
		thresholdDays: thresholdDays,
		metrics:       params.Metrics,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *checkInService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dispatch opens and publishes one attempt per notifiable overdue entry.
// Opening an attempt supersedes any attempt still pending for the same entry.
func (srv *checkInService) Dispatch(ctx context.Context, today civil.Date) (_ *usecase.DispatchResult, err error) {
	ctx, span := startSpan(ctx, "checkin.dispatch", attribute.Int("threshold_days", srv.thresholdDays))
	defer func() { endSpan(span, err) }()

	entries, err := srv.freedgeRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list registry entries")
	}

	overdue := registry.SelectOverdue(entries, today, srv.thresholdDays)
	srv.metrics.OverdueEntries(len(overdue))

	result := &usecase.DispatchResult{Overdue: len(overdue)}
	for _, entry := range registry.Notifiable(overdue) {
		attempt, err := srv.openAttempt(ctx, entry)
		if err != nil {
			return result, err
		}
		srv.metrics.CheckInOpened(attempt.Method.String())

		event := &service.CheckInEvent{
			RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
			AttemptID:   attempt.ID.String(),
			FreedgeID:   entry.ID,
			Sequence:    attempt.Sequence,
			ProjectName: entry.ProjectName,
		}
		if err := srv.publisher.PublishCheckInEvent(ctx, event); err != nil {
			return result, errors.Wrapf(err, "failed to publish check-in for entry %d", entry.ID)
		}

		result.Attempts = append(result.Attempts, attempt)
	}

	srv.log(ctx).Info("Check-ins dispatched",
		slog.Int("overdue", result.Overdue),
		slog.Int("attempts", len(result.Attempts)),
	)

	return result, nil
}

func (srv *checkInService) openAttempt(ctx context.Context, entry *entity.Freedge) (*entity.CheckInAttempt, error) {
	var attempt *entity.CheckInAttempt
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		checkInRepo := repoFactory.NewCheckInRepository()

		latest, err := checkInRepo.FindLatestByFreedge(ctx, entry.ID)
		if err != nil {
			return errors.Wrap(err, "failed to find latest attempt")
		}
		sequence := 1
		if latest != nil {
			sequence = latest.Sequence + 1
		}

		if err := checkInRepo.SupersedePending(ctx, entry.ID); err != nil {
			return errors.Wrap(err, "failed to supersede pending attempts")
		}

		attempt = &entity.CheckInAttempt{
			ID:          uuid.New(),
			FreedgeID:   entry.ID,
			Sequence:    sequence,
			Method:      entry.ContactMethod,
			Destination: entry.ContactDestination(),
			State:       entity.AttemptPending,
			CreatedAt:   srv.now().UTC(),
		}

		return checkInRepo.Create(ctx, attempt)
	})
	if err != nil {
		return nil, err
	}

	return attempt, nil
}

// Deliver asks the caretaker through the transport. Transports that receive replies
// out of band leave the attempt pending.
func (srv *checkInService) Deliver(ctx context.Context, attemptID uuid.UUID, today civil.Date) (_ *entity.CheckInAttempt, err error) {
	ctx, span := startSpan(ctx, "checkin.deliver", attribute.String("attempt.id", attemptID.String()))
	defer func() { endSpan(span, err) }()

	attempt, err := srv.checkInRepo.FindByID(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if err := srv.ensureResolvable(ctx, srv.checkInRepo, attempt); err != nil {
		return nil, err
	}

	entry, err := srv.freedgeRepo.FindByID(ctx, attempt.FreedgeID)
	if err != nil {
		return nil, err
	}

	message := service.NewCheckInMessage(attempt, entry, today)
	response, err := srv.transport.RequestCheckIn(ctx, message)
	if errors.Is(err, service.ErrAwaitingReply) {
		srv.log(ctx).Info("Check-in sent, awaiting reply", slog.String("attemptID", attemptID.String()))

		return attempt, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to deliver check-in")
	}

	return srv.Resolve(ctx, attemptID, response, today)
}

// Resolve updates the entry and closes the attempt together. The attempt only closes while
// still pending, so a response is applied at most once.
func (srv *checkInService) Resolve(ctx context.Context, attemptID uuid.UUID, response entity.CheckInResponse, today civil.Date) (_ *entity.CheckInAttempt, err error) {
	ctx, span := startSpan(ctx, "checkin.resolve",
		attribute.String("attempt.id", attemptID.String()),
		attribute.String("response", response.String()),
	)
	defer func() { endSpan(span, err) }()

	var resolved *entity.CheckInAttempt
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		checkInRepo := repoFactory.NewCheckInRepository()
		freedgeRepo := repoFactory.NewFreedgeRepository()

		attempt, err := checkInRepo.FindByID(ctx, attemptID)
		if err != nil {
			return err
		}
		if err := srv.ensureResolvable(ctx, checkInRepo, attempt); err != nil {
			return err
		}

		entry, err := freedgeRepo.FindByID(ctx, attempt.FreedgeID)
		if err != nil {
			return err
		}

		if updated, changed := registry.ApplyResponse(entry, response, today); changed {
			if err := freedgeRepo.Update(ctx, updated); err != nil {
				return errors.Wrap(err, "failed to update entry status")
			}
		}

		resolvedAt := srv.now().UTC()
		attempt.Response = response
		attempt.ResolvedAt = &resolvedAt
		attempt.State = entity.AttemptAnswered
		if response == entity.ResponseNone {
			attempt.State = entity.AttemptNoResponse
		}

		ok, err := checkInRepo.Resolve(ctx, attempt)
		if err != nil {
			return errors.Wrap(err, "failed to resolve attempt")
		}
		if !ok {
			return domainerrors.ErrAttemptClosed
		}
		resolved = attempt

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.metrics.CheckInResolved(response.String())
	srv.log(ctx).Info("Check-in resolved",
		slog.String("attemptID", attemptID.String()),
		slog.Int64("freedgeID", resolved.FreedgeID),
		slog.String("response", response.String()),
	)

	return resolved, nil
}

// ensureResolvable accepts only the newest attempt of an entry while it is pending.
func (srv *checkInService) ensureResolvable(ctx context.Context, checkInRepo repository.CheckInRepository, attempt *entity.CheckInAttempt) error {
	switch attempt.State {
	case entity.AttemptPending:
	case entity.AttemptSuperseded:
		return domainerrors.ErrAttemptSuperseded
	default:
		return domainerrors.ErrAttemptClosed
	}

	latest, err := checkInRepo.FindLatestByFreedge(ctx, attempt.FreedgeID)
	if err != nil {
		return errors.Wrap(err, "failed to find latest attempt")
	}
	if latest != nil && latest.ID != attempt.ID {
		return domainerrors.ErrAttemptSuperseded
	}

	return nil
}
