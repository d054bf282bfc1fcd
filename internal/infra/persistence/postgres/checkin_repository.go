package postgres

import (
	"context"
	"time"

	"freedge/internal/domain/entity"
	domainerrors "freedge/internal/domain/errors"
	"freedge/internal/domain/repository"
	"freedge/internal/infra/persistence/model"
	"freedge/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// checkInRepository implements the repository.CheckInRepository interface.
type checkInRepository struct {
	q *query.Query
}

// NewCheckInRepository is the constructor for checkInRepository.
func NewCheckInRepository(db *gorm.DB) repository.CheckInRepository {
	return &checkInRepository{
		q: query.Use(db),
	}
}

// Create persists a new check-in attempt.
func (repo *checkInRepository) Create(ctx context.Context, attempt *entity.CheckInAttempt) error {
	attemptM := fromCheckInDomain(attempt)

	if err := repo.q.CheckInAttemptModel.WithContext(ctx).Create(attemptM); err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAttemptSuperseded.WrapMessage("attempt sequence already taken")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrEntryNotFound.WrapMessage("invalid freedge reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create check-in attempt")
	}

	attempt.CreatedAt = attemptM.CreatedAt

	return nil
}

// FindByID retrieves an attempt by its unique ID.
func (repo *checkInRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CheckInAttempt, error) {
	c := repo.q.CheckInAttemptModel

	attemptM, err := c.WithContext(ctx).Where(c.ID.Eq(id)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrAttemptNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find check-in attempt")
	}

	return toCheckInDomain(attemptM)
}

// FindLatestByFreedge retrieves the newest attempt of an entry, or nil when there is none.
func (repo *checkInRepository) FindLatestByFreedge(ctx context.Context, freedgeID int64) (*entity.CheckInAttempt, error) {
	c := repo.q.CheckInAttemptModel

	attemptModels, err := c.WithContext(ctx).
		Where(c.FreedgeID.Eq(freedgeID)).
		Order(c.Sequence.Desc()).
		Limit(1).
		Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find latest check-in attempt")
	}

	if len(attemptModels) == 0 {
		return nil, nil
	}

	return toCheckInDomain(attemptModels[0])
}

// SupersedePending closes every pending attempt of an entry.
func (repo *checkInRepository) SupersedePending(ctx context.Context, freedgeID int64) error {
	c := repo.q.CheckInAttemptModel

	if _, err := c.WithContext(ctx).
		Where(c.FreedgeID.Eq(freedgeID), c.State.Eq(entity.AttemptPending.String())).
		UpdateSimple(
			c.State.Value(entity.AttemptSuperseded.String()),
			c.ResolvedAt.Value(time.Now()),
		); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to supersede pending check-in attempts")
	}

	return nil
}

// Resolve closes a pending attempt. The state guard makes a second resolution a no-op.
func (repo *checkInRepository) Resolve(ctx context.Context, attempt *entity.CheckInAttempt) (bool, error) {
	resolvedAt := time.Now()
	if attempt.ResolvedAt != nil {
		resolvedAt = *attempt.ResolvedAt
	}

	c := repo.q.CheckInAttemptModel

	info, err := c.WithContext(ctx).
		Where(c.ID.Eq(attempt.ID), c.State.Eq(entity.AttemptPending.String())).
		UpdateSimple(
			c.State.Value(attempt.State.String()),
			c.Response.Value(attempt.Response.String()),
			c.ResolvedAt.Value(resolvedAt),
		)
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to resolve check-in attempt")
	}

	return info.RowsAffected == 1, nil
}

func toCheckInDomain(data *model.CheckInAttemptModel) (*entity.CheckInAttempt, error) {
	method, err := entity.ParseContactMethod(data.Method)
	if err != nil {
		return nil, errors.Wrapf(err, "check-in attempt %s", data.ID)
	}
	response, err := entity.ParseCheckInResponse(data.Response)
	if err != nil {
		return nil, errors.Wrapf(err, "check-in attempt %s", data.ID)
	}

	return &entity.CheckInAttempt{
		ID:          data.ID,
		FreedgeID:   data.FreedgeID,
		Sequence:    data.Sequence,
		Method:      method,
		Destination: data.Destination,
		State:       entity.AttemptState(data.State),
		Response:    response,
		CreatedAt:   data.CreatedAt,
		ResolvedAt:  data.ResolvedAt,
	}, nil
}

func fromCheckInDomain(data *entity.CheckInAttempt) *model.CheckInAttemptModel {
	return &model.CheckInAttemptModel{
		ID:          data.ID,
		FreedgeID:   data.FreedgeID,
		Sequence:    data.Sequence,
		Method:      data.Method.String(),
		Destination: data.Destination,
		State:       data.State.String(),
		Response:    data.Response.String(),
		CreatedAt:   data.CreatedAt,
		ResolvedAt:  data.ResolvedAt,
	}
}
