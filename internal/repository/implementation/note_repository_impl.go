package implementation

import (
	"context"
	"errors"
	"time"

	"clinical-notes-be/internal/entity"
	"clinical-notes-be/internal/mapper"
	"clinical-notes-be/internal/model"
	"clinical-notes-be/internal/repository/contract"
	"clinical-notes-be/internal/repository/specification"

	"gorm.io/gorm"
)

type NoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteMapper
	now    func() time.Time
}

func NewNoteRepository(db *gorm.DB) contract.NoteRepository {
	return &NoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteMapper(),
		now:    time.Now,
	}
}

func (r *NoteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NoteRepositoryImpl) Create(ctx context.Context, note *entity.Note) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *NoteRepositoryImpl) UpdateFields(ctx context.Context, id int64, values map[entity.NoteField]string) (int64, error) {
	updates := make(map[string]interface{}, len(values)+1)
	for field, value := range values {
		updates[string(field)] = value
	}
	// updated_at travels in the same statement as the text columns
	updates["updated_at"] = r.now()

	result := r.db.WithContext(ctx).
		Model(&model.Note{}).
		Where("id = ?", id).
		UpdateColumns(updates)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *NoteRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	var m model.Note
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
