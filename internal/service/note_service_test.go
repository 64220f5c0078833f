package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinical-notes-be/internal/entity"
	"clinical-notes-be/internal/model"
	"clinical-notes-be/internal/pkg/logger"
	"clinical-notes-be/internal/repository/unitofwork"
	"clinical-notes-be/pkg/database"
	"clinical-notes-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newNoteServiceForTest(t *testing.T) (INoteService, *gorm.DB, *recordingPublisher) {
	t.Helper()
	db := database.NewTestDB(t)
	pub := &recordingPublisher{}
	svc := NewNoteService(unitofwork.NewRepositoryFactory(db), pub, logger.NewNopLogger())
	return svc, db, pub
}

func TestCreateSessionIdsIncreaseAndFieldsEmpty(t *testing.T) {
	svc, _, pub := newNoteServiceForTest(t)
	ctx := context.Background()

	first, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	second, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	assert.Equal(t, "New note session created.", first.Message)
	assert.Greater(t, second.NoteId, first.NoteId)

	note, err := svc.Show(ctx, second.NoteId)
	require.NoError(t, err)
	assert.Equal(t, "", note.SubjectiveText)
	assert.Equal(t, "", note.ObjectiveText)
	assert.Equal(t, "", note.AssessmentText)
	assert.Equal(t, "", note.PlanText)
	assert.Equal(t, "", note.SummaryText)
	assert.False(t, note.UpdatedAt.Before(note.CreatedAt))

	assert.Equal(t, []string{events.NoteSessionCreated, events.NoteSessionCreated}, pub.types())
}

func TestShowMissingNote(t *testing.T) {
	svc, _, _ := newNoteServiceForTest(t)

	_, err := svc.Show(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateFieldChangesOnlyThatField(t *testing.T) {
	svc, _, pub := newNoteServiceForTest(t)
	ctx := context.Background()

	created, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	before, err := svc.Show(ctx, created.NoteId)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, svc.UpdateField(ctx, created.NoteId, entity.NoteFieldSubjective, "Patient reports cough"))

	after, err := svc.Show(ctx, created.NoteId)
	require.NoError(t, err)
	assert.Equal(t, "Patient reports cough", after.SubjectiveText)
	assert.Equal(t, "", after.ObjectiveText)
	assert.Equal(t, "", after.AssessmentText)
	assert.True(t, before.CreatedAt.Equal(after.CreatedAt))
	assert.False(t, after.UpdatedAt.Before(before.UpdatedAt))
	assert.Contains(t, pub.types(), events.NoteUpdated)
}

func TestUpdateFieldAcceptsEmptyString(t *testing.T) {
	svc, _, _ := newNoteServiceForTest(t)
	ctx := context.Background()

	created, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateField(ctx, created.NoteId, entity.NoteFieldPlan, "draft"))
	require.NoError(t, svc.UpdateField(ctx, created.NoteId, entity.NoteFieldPlan, ""))

	note, err := svc.Show(ctx, created.NoteId)
	require.NoError(t, err)
	assert.Equal(t, "", note.PlanText)
}

func TestUpdateFieldIdenticalValueStillSucceeds(t *testing.T) {
	svc, _, _ := newNoteServiceForTest(t)
	ctx := context.Background()

	created, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateField(ctx, created.NoteId, entity.NoteFieldObjective, "Temp 101F"))
	assert.NoError(t, svc.UpdateField(ctx, created.NoteId, entity.NoteFieldObjective, "Temp 101F"))
}

func TestUpdateFieldMissingNotePersistsNothing(t *testing.T) {
	svc, db, _ := newNoteServiceForTest(t)

	err := svc.UpdateField(context.Background(), 999, entity.NoteFieldObjective, "Temp 101F")
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&model.Note{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateFieldUnknownField(t *testing.T) {
	svc, _, _ := newNoteServiceForTest(t)

	err := svc.UpdateField(context.Background(), 1, entity.NoteField("id"), "7")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateFields(t *testing.T) {
	svc, _, _ := newNoteServiceForTest(t)
	ctx := context.Background()

	created, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	t.Run("empty map", func(t *testing.T) {
		err := svc.UpdateFields(ctx, created.NoteId, map[entity.NoteField]string{})
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("unknown field", func(t *testing.T) {
		err := svc.UpdateFields(ctx, created.NoteId, map[entity.NoteField]string{"title": "x"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("missing note", func(t *testing.T) {
		err := svc.UpdateFields(ctx, created.NoteId+100, map[entity.NoteField]string{entity.NoteFieldPlan: "rest"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("several fields", func(t *testing.T) {
		err := svc.UpdateFields(ctx, created.NoteId, map[entity.NoteField]string{
			entity.NoteFieldAssessment: "### Diagnosis / Impression: viral URI",
			entity.NoteFieldPlan:       "### Medications / Therapy: rest",
		})
		require.NoError(t, err)

		note, err := svc.Show(ctx, created.NoteId)
		require.NoError(t, err)
		assert.Equal(t, "### Diagnosis / Impression: viral URI", note.AssessmentText)
		assert.Equal(t, "### Medications / Therapy: rest", note.PlanText)
		assert.Equal(t, "", note.SummaryText)
	})
}

func TestPublishFailureDoesNotFailCaller(t *testing.T) {
	db := database.NewTestDB(t)
	pub := &recordingPublisher{err: errors.New("bus closed")}
	svc := NewNoteService(unitofwork.NewRepositoryFactory(db), pub, logger.NewNopLogger())

	created, err := svc.CreateSession(context.Background())
	require.NoError(t, err)
	assert.NoError(t, svc.UpdateField(context.Background(), created.NoteId, entity.NoteFieldSummary, "ok"))
}
