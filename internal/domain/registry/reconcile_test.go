package registry

import (
	"testing"

	"freedge/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcile_PhoneChangeIsSingleModification(t *testing.T) {
	existing := []*entity.Freedge{{ID: 1, ProjectName: "Elm St", PhoneNumber: "555-1111"}}
	candidates := []*entity.Freedge{{ProjectName: "Elm St", PhoneNumber: "555-2222"}}

	delta := Reconcile(existing, candidates)

	assert.Empty(t, delta.ToAdd)
	assert.Empty(t, delta.ToRemove)
	require.Len(t, delta.ToModify, 1)
	assert.Same(t, existing[0], delta.ToModify[0].Existing)
	assert.Same(t, candidates[0], delta.ToModify[0].Candidate)

	changes := delta.ToModify[0].Changes()
	require.Len(t, changes, 1)
	assert.Equal(t, entity.FieldPhoneNumber, changes[0].Field)

	merged := delta.ToModify[0].Merged()
	assert.Equal(t, int64(1), merged.ID)
	assert.Equal(t, "555-2222", merged.PhoneNumber)
	assert.False(t, candidates[0].HasID(), "merging must not touch the candidate")
}

func TestReconcile_ThreeWay(t *testing.T) {
	existing := []*entity.Freedge{
		{ID: 1, ProjectName: "Keep"},
		{ID: 2, ProjectName: "Gone"},
		{ID: 3, ProjectName: "Change", CaretakerName: "Ana"},
	}
	candidates := []*entity.Freedge{
		{ProjectName: "Keep"},
		{ProjectName: "Change", CaretakerName: "Bo"},
		{ProjectName: "New"},
	}

	delta := Reconcile(existing, candidates)

	require.Len(t, delta.ToAdd, 1)
	assert.Equal(t, "New", delta.ToAdd[0].ProjectName)
	require.Len(t, delta.ToRemove, 1)
	assert.Equal(t, int64(2), delta.ToRemove[0].ID)
	require.Len(t, delta.ToModify, 1)
	assert.Equal(t, int64(3), delta.ToModify[0].Existing.ID)
	assert.Empty(t, delta.Collisions)
	assert.Equal(t, []string{
		"(1) entries will be ADDED.",
		"(1) entries will be REMOVED.",
		"(1) entries will be MODIFIED.",
	}, delta.Summary())
}

func TestReconcile_EmptyCandidatesRemovesEverything(t *testing.T) {
	existing := []*entity.Freedge{{ID: 1, ProjectName: "A"}, {ID: 2, ProjectName: "B"}}

	delta := Reconcile(existing, nil)

	assert.Equal(t, existing, delta.ToRemove)
	assert.True(t, delta.RemovesAll(len(existing)))
	assert.Empty(t, delta.ToAdd)
	assert.Empty(t, delta.ToModify)
}

func TestReconcile_IdenticalDatasetIsEmpty(t *testing.T) {
	existing := []*entity.Freedge{
		{ID: 1, ProjectName: "A", Status: entity.StatusActive, LastStatusUpdate: newYear},
		{ID: 2, ProjectName: "B"},
	}
	candidates := []*entity.Freedge{
		{ProjectName: "B"},
		{ProjectName: "A", Status: entity.StatusActive, LastStatusUpdate: newYear},
	}

	delta := Reconcile(existing, candidates)

	assert.True(t, delta.IsEmpty())
	assert.False(t, delta.RemovesAll(len(existing)))
	assert.Equal(t, []string{"Loading the dataset will not change any data in the registry."}, delta.Summary())
}

func TestReconcile_DuplicateExistingNamesMatchLowestID(t *testing.T) {
	existing := []*entity.Freedge{
		{ID: 9, ProjectName: "Elm St", PhoneNumber: "1"},
		{ID: 4, ProjectName: "Elm St", PhoneNumber: "2"},
	}
	candidates := []*entity.Freedge{{ProjectName: "Elm St", PhoneNumber: "3"}}

	delta := Reconcile(existing, candidates)

	require.Len(t, delta.ToModify, 1)
	assert.Equal(t, int64(4), delta.ToModify[0].Existing.ID)
	assert.Empty(t, delta.ToRemove)

	require.Len(t, delta.Collisions, 1)
	collision := delta.Collisions[0]
	assert.Equal(t, CollisionExisting, collision.Kind)
	assert.Equal(t, int64(4), collision.Kept.ID)
	assert.Equal(t, int64(9), collision.Ignored.ID)
	assert.Contains(t, collision.String(), "matching id 4, ignoring id 9")
}

func TestReconcile_DuplicateCandidateNamesKeepFirst(t *testing.T) {
	candidates := []*entity.Freedge{
		{ProjectName: "Elm St", CaretakerName: "first"},
		{ProjectName: "Elm St", CaretakerName: "second"},
	}

	delta := Reconcile(nil, candidates)

	require.Len(t, delta.ToAdd, 1)
	assert.Equal(t, "first", delta.ToAdd[0].CaretakerName)
	require.Len(t, delta.Collisions, 1)
	assert.Equal(t, CollisionCandidate, delta.Collisions[0].Kind)
}

func TestReconcile_DoesNotMutateInputs(t *testing.T) {
	existing := []*entity.Freedge{{ID: 1, ProjectName: "A", PhoneNumber: "1"}}
	candidates := []*entity.Freedge{{ProjectName: "A", PhoneNumber: "2"}}
	existingCopy, candidateCopy := *existing[0], *candidates[0]

	delta := Reconcile(existing, candidates)
	_ = delta.ToModify[0].Merged()

	assert.Equal(t, existingCopy, *existing[0])
	assert.Equal(t, candidateCopy, *candidates[0])
}
