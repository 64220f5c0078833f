package mapper

import (
	"clinical-notes-be/internal/dto"
	"clinical-notes-be/internal/entity"
	"clinical-notes-be/internal/model"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}

	return &entity.Note{
		Id:             n.Id,
		SubjectiveText: n.SubjectiveText,
		ObjectiveText:  n.ObjectiveText,
		AssessmentText: n.AssessmentText,
		PlanText:       n.PlanText,
		SummaryText:    n.SummaryText,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      n.UpdatedAt,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}

	return &model.Note{
		Id:             n.Id,
		SubjectiveText: n.SubjectiveText,
		ObjectiveText:  n.ObjectiveText,
		AssessmentText: n.AssessmentText,
		PlanText:       n.PlanText,
		SummaryText:    n.SummaryText,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      n.UpdatedAt,
	}
}

func (m *NoteMapper) ToResponse(n *entity.Note) *dto.NoteResponse {
	if n == nil {
		return nil
	}

	return &dto.NoteResponse{
		Id:             n.Id,
		SubjectiveText: n.SubjectiveText,
		ObjectiveText:  n.ObjectiveText,
		AssessmentText: n.AssessmentText,
		PlanText:       n.PlanText,
		SummaryText:    n.SummaryText,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      n.UpdatedAt,
	}
}
