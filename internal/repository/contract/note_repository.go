package contract

import (
	"context"

	"clinical-notes-be/internal/entity"
	"clinical-notes-be/internal/repository/specification"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	// UpdateFields writes the given columns plus updated_at and reports the rows affected.
	UpdateFields(ctx context.Context, id int64, values map[entity.NoteField]string) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
}
