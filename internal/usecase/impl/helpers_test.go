package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"freedge/internal/domain/entity"
	"freedge/internal/domain/registry"
	"freedge/internal/domain/repository"
	mockRepo "freedge/internal/mocks/repository"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/mock"
)

var today = civil.Date{Year: 2024, Month: 6, Day: 1}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// expectTransaction runs the transaction body against the given repository mocks.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, freedgeRepo repository.FreedgeRepository, checkInRepo repository.CheckInRepository) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewFreedgeRepository().Return(freedgeRepo).Maybe()
	factory.EXPECT().NewCheckInRepository().Return(checkInRepo).Maybe()

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func datasetRow(project, city, active string) registry.Row {
	return registry.Row{
		registry.ColumnProject:         project,
		registry.ColumnNetwork:         "Eugene Freedges",
		registry.ColumnStreetAddress:   "1 Main St",
		registry.ColumnCity:            city,
		registry.ColumnStateProvince:   "OR",
		registry.ColumnZipCode:         "97401",
		registry.ColumnCountry:         "USA",
		registry.ColumnDateInstalled:   "2021-03-14",
		registry.ColumnContactName:     "Ana",
		registry.ColumnPhoneNumber:     "555-1111",
		registry.ColumnEmailAddress:    "ana@example.org",
		registry.ColumnPermission:      "Yes",
		registry.ColumnPreferredMethod: "SMS",
		registry.ColumnActive:          active,
	}
}

// storedEntry normalizes a dataset row and gives it an identity, as if it had been imported before.
func storedEntry(id int64, project, city string) *entity.Freedge {
	entry, err := registry.NormalizeRow(0, datasetRow(project, city, "YES"), today)
	if err != nil {
		panic(err)
	}
	entry.ID = id

	return entry
}
