package implementation

import (
	"context"
	"testing"
	"time"

	"clinical-notes-be/internal/entity"
	"clinical-notes-be/internal/repository/specification"
	"clinical-notes-be/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteRepositoryCreateAndFind(t *testing.T) {
	repo := NewNoteRepository(database.NewTestDB(t))
	ctx := context.Background()

	first := entity.Note{}
	require.NoError(t, repo.Create(ctx, &first))
	second := entity.Note{}
	require.NoError(t, repo.Create(ctx, &second))

	assert.Equal(t, int64(1), first.Id)
	assert.Greater(t, second.Id, first.Id)
	assert.False(t, first.CreatedAt.IsZero())

	found, err := repo.FindOne(ctx, specification.ByID{ID: first.Id})
	require.NoError(t, err)
	require.NotNil(t, found)
	for _, f := range entity.NoteFields {
		assert.Equal(t, "", found.Value(f), f)
	}

	missing, err := repo.FindOne(ctx, specification.ByID{ID: 404})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestNoteRepositoryUpdateFieldsRefreshesUpdatedAt(t *testing.T) {
	db := database.NewTestDB(t)
	repo := NewNoteRepository(db).(*NoteRepositoryImpl)
	ctx := context.Background()

	note := entity.Note{}
	require.NoError(t, repo.Create(ctx, &note))

	later := note.UpdatedAt.Add(time.Minute)
	repo.now = func() time.Time { return later }

	affected, err := repo.UpdateFields(ctx, note.Id, map[entity.NoteField]string{
		entity.NoteFieldSubjective: "Patient reports cough",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	got, err := repo.FindOne(ctx, specification.ByID{ID: note.Id})
	require.NoError(t, err)
	assert.Equal(t, "Patient reports cough", got.SubjectiveText)
	assert.Equal(t, "", got.ObjectiveText)
	assert.True(t, got.UpdatedAt.Equal(later), "updated_at %v", got.UpdatedAt)
	assert.True(t, got.CreatedAt.Equal(note.CreatedAt))

	// same value again still touches updated_at, so the row counts as affected
	affected, err = repo.UpdateFields(ctx, note.Id, map[entity.NoteField]string{
		entity.NoteFieldSubjective: "Patient reports cough",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}

func TestNoteRepositoryUpdateMissingRow(t *testing.T) {
	repo := NewNoteRepository(database.NewTestDB(t))

	affected, err := repo.UpdateFields(context.Background(), 12, map[entity.NoteField]string{
		entity.NoteFieldPlan: "rest",
	})
	require.NoError(t, err)
	assert.Zero(t, affected)
}
