package service

import (
	"context"
	"fmt"

	"clinical-notes-be/internal/dto"
	"clinical-notes-be/internal/entity"
	"clinical-notes-be/internal/mapper"
	"clinical-notes-be/internal/pkg/logger"
	"clinical-notes-be/internal/repository/specification"
	"clinical-notes-be/internal/repository/unitofwork"
	"clinical-notes-be/pkg/events"
)

type INoteService interface {
	CreateSession(ctx context.Context) (*dto.CreateNoteSessionResponse, error)
	Show(ctx context.Context, id int64) (*dto.NoteResponse, error)
	UpdateField(ctx context.Context, id int64, field entity.NoteField, value string) error
	UpdateFields(ctx context.Context, id int64, values map[entity.NoteField]string) error
}

type noteService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  events.Publisher
	logger     logger.ILogger
	mapper     *mapper.NoteMapper
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	publisher events.Publisher,
	logger logger.ILogger,
) INoteService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &noteService{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
		mapper:     mapper.NewNoteMapper(),
	}
}

func (s *noteService) CreateSession(ctx context.Context) (*dto.CreateNoteSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note := entity.Note{}
	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, fmt.Errorf("failed to create note session: %w", err)
	}

	s.logger.Info("NOTE", "New note session created", map[string]interface{}{"note_id": note.Id})
	s.publish(ctx, events.New(events.NoteSessionCreated, map[string]interface{}{"note_id": note.Id}))

	return &dto.CreateNoteSessionResponse{
		Message: "New note session created.",
		NoteId:  note.Id,
	}, nil
}

func (s *noteService) Show(ctx context.Context, id int64) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch note: %w", err)
	}
	if note == nil {
		return nil, ErrNotFound
	}

	return s.mapper.ToResponse(note), nil
}

func (s *noteService) UpdateField(ctx context.Context, id int64, field entity.NoteField, value string) error {
	if !field.Valid() {
		return fmt.Errorf("%w: unknown field %q", ErrInvalidInput, field)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	affected, err := uow.NoteRepository().UpdateFields(ctx, id, map[entity.NoteField]string{field: value})
	if err != nil {
		return fmt.Errorf("database error updating note: %w", err)
	}
	if affected == 0 {
		s.logger.Warn("NOTE", "Update matched no note", map[string]interface{}{"note_id": id, "field": field})
		return ErrNotFound
	}

	s.logger.Info("NOTE", "Note updated", map[string]interface{}{"note_id": id, "fields": []entity.NoteField{field}})
	s.publish(ctx, events.New(events.NoteUpdated, map[string]interface{}{
		"note_id": id,
		"fields":  []string{string(field)},
	}))
	return nil
}

func (s *noteService) UpdateFields(ctx context.Context, id int64, values map[entity.NoteField]string) error {
	if len(values) == 0 {
		return ErrInvalidRequest
	}
	fields := make([]string, 0, len(values))
	for _, f := range entity.NoteFields {
		if _, ok := values[f]; ok {
			fields = append(fields, string(f))
		}
	}
	if len(fields) != len(values) {
		return fmt.Errorf("%w: unknown field in update", ErrInvalidInput)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	affected, err := uow.NoteRepository().UpdateFields(ctx, id, values)
	if err != nil {
		return fmt.Errorf("database error updating note: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit note update: %w", err)
	}

	s.logger.Info("NOTE", "Note updated", map[string]interface{}{"note_id": id, "fields": fields})
	s.publish(ctx, events.New(events.NoteUpdated, map[string]interface{}{
		"note_id": id,
		"fields":  fields,
	}))
	return nil
}

// publish never fails the caller.
func (s *noteService) publish(ctx context.Context, evt events.Event) {
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("EVENTS", "Failed to publish event", map[string]interface{}{
			"type":  evt.EventType(),
			"error": err.Error(),
		})
	}
}
