// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"freedge/internal/domain/entity"
	domainerrors "freedge/internal/domain/errors"
	"freedge/internal/domain/repository"
	"freedge/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// freedgeRepository implements the repository.FreedgeRepository interface.
type freedgeRepository struct {
	q *query.Query
}

// NewFreedgeRepository is the constructor for freedgeRepository.
// It wraps the connection, or the surrounding transaction, in the GORM Gen query builder.
func NewFreedgeRepository(db *gorm.DB) repository.FreedgeRepository {
	return &freedgeRepository{
		q: query.Use(db),
	}
}

// ListAll returns every entry with its address, ordered by identity.
func (repo *freedgeRepository) ListAll(ctx context.Context) ([]*entity.Freedge, error) {
	f := repo.q.FreedgeModel

	freedgeModels, err := f.WithContext(ctx).
		Preload(f.Address).
		Order(f.ID).
		Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list freedges")
	}

	return toFreedgeDomains(freedgeModels)
}

// FindByID retrieves an entry by its identity.
func (repo *freedgeRepository) FindByID(ctx context.Context, id int64) (*entity.Freedge, error) {
	f := repo.q.FreedgeModel

	freedgeM, err := f.WithContext(ctx).
		Preload(f.Address).
		Where(f.ID.Eq(id)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrEntryNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find freedge by ID")
	}

	return toFreedgeDomain(freedgeM)
}

// FindByProjectName retrieves all entries sharing a project name.
func (repo *freedgeRepository) FindByProjectName(ctx context.Context, projectName string) ([]*entity.Freedge, error) {
	f := repo.q.FreedgeModel

	freedgeModels, err := f.WithContext(ctx).
		Preload(f.Address).
		Where(f.ProjectName.Eq(projectName)).
		Order(f.ID).
		Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find freedges by project name")
	}

	return toFreedgeDomains(freedgeModels)
}

// Insert writes the entry and its address in one transaction.
func (repo *freedgeRepository) Insert(ctx context.Context, freedge *entity.Freedge) (int64, error) {
	freedgeM := fromFreedgeDomain(freedge)
	freedgeM.ID = 0
	addressM := freedgeM.Address
	freedgeM.Address = nil

	err := repo.q.Transaction(func(tx *query.Query) error {
		if err := tx.FreedgeModel.WithContext(ctx).Create(freedgeM); err != nil {
			return err
		}

		addressM.FreedgeID = freedgeM.ID

		return tx.FreedgeAddressModel.WithContext(ctx).Create(addressM)
	})
	if err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return 0, domainerrors.ErrValidationFailed.WrapMessage("invalid freedge information")
		}

		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to insert freedge")
	}

	return freedgeM.ID, nil
}

// Update overwrites the entry and its address in one transaction.
func (repo *freedgeRepository) Update(ctx context.Context, freedge *entity.Freedge) error {
	freedgeM := fromFreedgeDomain(freedge)
	addressM := freedgeM.Address
	freedgeM.Address = nil

	err := repo.q.Transaction(func(tx *query.Query) error {
		f := tx.FreedgeModel

		// A column map writes zero values and NULL dates that a struct update would skip.
		info, err := f.WithContext(ctx).
			Where(f.ID.Eq(freedgeM.ID)).
			Updates(map[string]any{
				f.ProjectName.ColumnName().String():            freedgeM.ProjectName,
				f.NetworkName.ColumnName().String():            freedgeM.NetworkName,
				f.CaretakerName.ColumnName().String():          freedgeM.CaretakerName,
				f.DateInstalled.ColumnName().String():          freedgeM.DateInstalled,
				f.PermissionToNotify.ColumnName().String():     freedgeM.PermissionToNotify,
				f.PreferredContactMethod.ColumnName().String(): freedgeM.PreferredContactMethod,
				f.PhoneNumber.ColumnName().String():            freedgeM.PhoneNumber,
				f.EmailAddress.ColumnName().String():           freedgeM.EmailAddress,
				f.Status.ColumnName().String():                 freedgeM.Status,
				f.LastStatusUpdate.ColumnName().String():       freedgeM.LastStatusUpdate,
			})
		if err != nil {
			return err
		}
		if info.RowsAffected == 0 {
			return domainerrors.ErrEntryNotFound
		}

		// Upsert so entries written before their address row existed are repaired.
		a := tx.FreedgeAddressModel

		return a.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: a.FreedgeID.ColumnName().String()}},
				UpdateAll: true,
			}).
			Create(addressM)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrEntryNotFound) {
			return err
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid freedge information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update freedge")
	}

	return nil
}

// Delete removes the entry, its address and its check-in history in one transaction.
func (repo *freedgeRepository) Delete(ctx context.Context, id int64) error {
	err := repo.q.Transaction(func(tx *query.Query) error {
		c := tx.CheckInAttemptModel
		if _, err := c.WithContext(ctx).Where(c.FreedgeID.Eq(id)).Delete(); err != nil {
			return err
		}

		a := tx.FreedgeAddressModel
		if _, err := a.WithContext(ctx).Where(a.FreedgeID.Eq(id)).Delete(); err != nil {
			return err
		}

		f := tx.FreedgeModel
		info, err := f.WithContext(ctx).Where(f.ID.Eq(id)).Delete()
		if err != nil {
			return err
		}
		if info.RowsAffected == 0 {
			return domainerrors.ErrEntryNotFound
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrEntryNotFound) {
			return err
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete freedge")
	}

	return nil
}
