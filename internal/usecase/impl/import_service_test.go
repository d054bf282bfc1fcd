package impl

import (
	"context"
	"testing"

	"freedge/internal/domain/entity"
	domainerrors "freedge/internal/domain/errors"
	"freedge/internal/domain/registry"
	"freedge/internal/domain/repository"
	mockRepo "freedge/internal/mocks/repository"
	"freedge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestImportService(t *testing.T) (
	usecase.ImportUsecase,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockFreedgeRepository,
	*mockRepo.MockPreviewRepository,
) {
	txManager := mockRepo.NewMockTransactionManager(t)
	freedgeRepo := mockRepo.NewMockFreedgeRepository(t)
	previewRepo := mockRepo.NewMockPreviewRepository(t)

	service := NewImportService(ImportServiceParams{
		TxManager:   txManager,
		FreedgeRepo: freedgeRepo,
		PreviewRepo: previewRepo,
		Logger:      discardLogger(),
	})

	return service, txManager, freedgeRepo, previewRepo
}

func TestImportService_Preview_Success(t *testing.T) {
	service, _, freedgeRepo, previewRepo := createTestImportService(t)
	ctx := context.Background()

	existing := []*entity.Freedge{
		storedEntry(1, "Elm St", "Eugene"),
		storedEntry(2, "Oak Ave", "Eugene"),
	}
	rows := []registry.Row{
		datasetRow("Elm St", "Springfield", "YES"),
		datasetRow("Pine Rd", "Eugene", "YES"),
	}

	freedgeRepo.EXPECT().ListAll(mock.Anything).Return(existing, nil)

	var saved *repository.ImportPreview
	previewRepo.EXPECT().Save(mock.Anything, mock.Anything).
		Run(func(_ context.Context, preview *repository.ImportPreview) { saved = preview }).
		Return(nil)

	preview, err := service.Preview(ctx, rows, today)
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Equal(t, saved.ID, preview.ID)
	assert.Len(t, saved.Candidates, 2)
	assert.Equal(t, 2, preview.ExistingCount)
	assert.False(t, preview.RemovesAll)
	assert.Equal(t, []string{
		"(1) entries will be ADDED.",
		"(1) entries will be REMOVED.",
		"(1) entries will be MODIFIED.",
	}, preview.Summary)

	require.Len(t, preview.Delta.ToModify, 1)
	changes := preview.Delta.ToModify[0].Changes()
	require.Len(t, changes, 1)
	assert.Equal(t, entity.FieldLocation, changes[0].Field)
	assert.Contains(t, changes[0].New, "Springfield")
}

func TestImportService_Preview_MalformedDataset(t *testing.T) {
	service, _, _, _ := createTestImportService(t)

	row := datasetRow("Elm St", "Eugene", "")
	delete(row, registry.ColumnCountry)

	_, err := service.Preview(context.Background(), []registry.Row{datasetRow("Oak", "Eugene", ""), row}, today)

	var malformed *registry.MalformedRowError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 1, malformed.Index)
	assert.Equal(t, registry.ColumnCountry, malformed.Column)
}

func TestImportService_Preview_EmptyDataset(t *testing.T) {
	service, _, _, _ := createTestImportService(t)

	_, err := service.Preview(context.Background(), nil, today)
	assert.ErrorAs(t, err, &registry.EmptyDatasetError{})
}

func storedPreview(existing []*entity.Freedge, rows ...registry.Row) *repository.ImportPreview {
	candidates, err := registry.Normalize(rows, today)
	if err != nil {
		panic(err)
	}

	return &repository.ImportPreview{
		ID:            uuid.New(),
		Candidates:    candidates,
		Delta:         registry.Reconcile(existing, candidates),
		ExistingCount: len(existing),
	}
}

func TestImportService_Apply_Success(t *testing.T) {
	service, txManager, freedgeRepo, previewRepo := createTestImportService(t)
	ctx := context.Background()

	existing := []*entity.Freedge{
		storedEntry(1, "Elm St", "Eugene"),
		storedEntry(2, "Oak Ave", "Eugene"),
	}
	preview := storedPreview(existing,
		datasetRow("Elm St", "Springfield", "YES"),
		datasetRow("Pine Rd", "Eugene", "YES"),
	)

	previewRepo.EXPECT().Get(mock.Anything, preview.ID).Return(preview, nil)
	expectTransaction(t, txManager, freedgeRepo, nil)
	freedgeRepo.EXPECT().ListAll(mock.Anything).Return(existing, nil)
	freedgeRepo.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(f *entity.Freedge) bool {
		return f.ProjectName == "Pine Rd" && !f.HasID()
	})).Return(3, nil)
	freedgeRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(f *entity.Freedge) bool {
		return f.ID == 1 && f.Address.City == "Springfield"
	})).Return(nil)
	freedgeRepo.EXPECT().Delete(mock.Anything, int64(2)).Return(nil)
	previewRepo.EXPECT().Delete(mock.Anything, preview.ID).Return(nil)

	result, err := service.Apply(ctx, preview.ID, false)
	require.NoError(t, err)
	assert.Equal(t, &usecase.ImportResult{Added: 1, Removed: 1, Modified: 1}, result)
}

func TestImportService_Apply_EmptyDeltaWritesNothing(t *testing.T) {
	service, txManager, freedgeRepo, previewRepo := createTestImportService(t)
	ctx := context.Background()

	existing := []*entity.Freedge{
		storedEntry(1, "Elm St", "Eugene"),
		storedEntry(2, "Oak Ave", "Eugene"),
	}
	preview := storedPreview(existing,
		datasetRow("Elm St", "Eugene", "YES"),
		datasetRow("Oak Ave", "Eugene", "YES"),
	)
	require.True(t, preview.Delta.IsEmpty())

	// Strict mocks: any Insert, Update or Delete on the registry fails the test.
	previewRepo.EXPECT().Get(mock.Anything, preview.ID).Return(preview, nil)
	expectTransaction(t, txManager, freedgeRepo, nil)
	freedgeRepo.EXPECT().ListAll(mock.Anything).Return(existing, nil)
	previewRepo.EXPECT().Delete(mock.Anything, preview.ID).Return(nil)

	result, err := service.Apply(ctx, preview.ID, false)
	require.NoError(t, err)
	assert.Equal(t, &usecase.ImportResult{}, result)
}

func TestImportService_Apply_StalePreview(t *testing.T) {
	service, txManager, freedgeRepo, previewRepo := createTestImportService(t)
	ctx := context.Background()

	existing := []*entity.Freedge{storedEntry(1, "Elm St", "Eugene")}
	preview := storedPreview(existing, datasetRow("Elm St", "Springfield", "YES"))

	changed := storedEntry(1, "Elm St", "Salem")

	previewRepo.EXPECT().Get(mock.Anything, preview.ID).Return(preview, nil)
	expectTransaction(t, txManager, freedgeRepo, nil)
	freedgeRepo.EXPECT().ListAll(mock.Anything).Return([]*entity.Freedge{changed}, nil)

	_, err := service.Apply(ctx, preview.ID, false)
	assert.ErrorIs(t, err, domainerrors.ErrPreviewStale)
}

func TestImportService_Apply_RemoveAll(t *testing.T) {
	existing := []*entity.Freedge{
		storedEntry(1, "Elm St", "Eugene"),
		storedEntry(2, "Oak Ave", "Eugene"),
	}

	t.Run("refused without confirmation", func(t *testing.T) {
		service, txManager, freedgeRepo, previewRepo := createTestImportService(t)
		ctx := context.Background()
		preview := storedPreview(existing, datasetRow("Pine Rd", "Eugene", "YES"))

		previewRepo.EXPECT().Get(mock.Anything, preview.ID).Return(preview, nil)
		expectTransaction(t, txManager, freedgeRepo, nil)
		freedgeRepo.EXPECT().ListAll(mock.Anything).Return(existing, nil)

		_, err := service.Apply(ctx, preview.ID, false)
		assert.ErrorIs(t, err, domainerrors.ErrRemoveAllNotConfirmed)
	})

	t.Run("applied when allowed", func(t *testing.T) {
		service, txManager, freedgeRepo, previewRepo := createTestImportService(t)
		ctx := context.Background()
		preview := storedPreview(existing, datasetRow("Pine Rd", "Eugene", "YES"))

		previewRepo.EXPECT().Get(mock.Anything, preview.ID).Return(preview, nil)
		expectTransaction(t, txManager, freedgeRepo, nil)
		freedgeRepo.EXPECT().ListAll(mock.Anything).Return(existing, nil)
		freedgeRepo.EXPECT().Insert(mock.Anything, mock.Anything).Return(3, nil)
		freedgeRepo.EXPECT().Delete(mock.Anything, int64(1)).Return(nil)
		freedgeRepo.EXPECT().Delete(mock.Anything, int64(2)).Return(nil)
		previewRepo.EXPECT().Delete(mock.Anything, preview.ID).Return(nil)

		result, err := service.Apply(ctx, preview.ID, true)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Removed)
	})
}

func TestImportService_Apply_WriteFailure(t *testing.T) {
	service, txManager, freedgeRepo, previewRepo := createTestImportService(t)
	ctx := context.Background()

	preview := storedPreview(nil, datasetRow("Pine Rd", "Eugene", "YES"))
	writeErr := errors.New("connection reset")

	previewRepo.EXPECT().Get(mock.Anything, preview.ID).Return(preview, nil)
	expectTransaction(t, txManager, freedgeRepo, nil)
	freedgeRepo.EXPECT().ListAll(mock.Anything).Return(nil, nil)
	freedgeRepo.EXPECT().Insert(mock.Anything, mock.Anything).Return(0, writeErr)

	_, err := service.Apply(ctx, preview.ID, false)
	assert.ErrorIs(t, err, writeErr)
}

func TestImportService_Apply_PreviewNotFound(t *testing.T) {
	service, _, _, previewRepo := createTestImportService(t)
	ctx := context.Background()
	id := uuid.New()

	previewRepo.EXPECT().Get(mock.Anything, id).Return(nil, domainerrors.ErrPreviewNotFound)

	_, err := service.Apply(ctx, id, false)
	assert.ErrorIs(t, err, domainerrors.ErrPreviewNotFound)
}

func TestImportService_Discard(t *testing.T) {
	service, _, _, previewRepo := createTestImportService(t)
	ctx := context.Background()
	preview := storedPreview(nil, datasetRow("Pine Rd", "Eugene", "YES"))

	previewRepo.EXPECT().Get(mock.Anything, preview.ID).Return(preview, nil)
	previewRepo.EXPECT().Delete(mock.Anything, preview.ID).Return(nil)

	require.NoError(t, service.Discard(ctx, preview.ID))
}

func TestSameDelta(t *testing.T) {
	existing := []*entity.Freedge{storedEntry(1, "Elm St", "Eugene")}
	candidates, err := registry.Normalize([]registry.Row{datasetRow("Elm St", "Salem", "YES")}, today)
	require.NoError(t, err)

	a := registry.Reconcile(existing, candidates)
	b := registry.Reconcile(existing, candidates)
	assert.True(t, sameDelta(a, b))

	renumbered := storedEntry(5, "Elm St", "Eugene")
	assert.False(t, sameDelta(a, registry.Reconcile([]*entity.Freedge{renumbered}, candidates)))
	assert.False(t, sameDelta(a, registry.Reconcile(nil, candidates)))
}
