package dto

import "time"

type CreateNoteSessionResponse struct {
	Message string `json:"message"`
	NoteId  int64  `json:"note_id"`
}

// NoteResponse mirrors the notes row.
type NoteResponse struct {
	Id             int64     `json:"id"`
	SubjectiveText string    `json:"subjective_text"`
	ObjectiveText  string    `json:"objective_text"`
	AssessmentText string    `json:"assessment_text"`
	PlanText       string    `json:"plan_text"`
	SummaryText    string    `json:"summary_text"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Text fields are pointers so that an absent field can be told apart from "".

type UpdateSubjectiveRequest struct {
	NoteId         int64   `json:"note_id" validate:"required,gt=0"`
	SubjectiveText *string `json:"subjective_text" validate:"required"`
}

type UpdateObjectiveRequest struct {
	NoteId        int64   `json:"note_id" validate:"required,gt=0"`
	ObjectiveText *string `json:"objective_text" validate:"required"`
}

type UpdateAssessmentRequest struct {
	NoteId         int64   `json:"note_id" validate:"required,gt=0"`
	AssessmentText *string `json:"assessment_text" validate:"required"`
}

type UpdatePlanRequest struct {
	NoteId   int64   `json:"note_id" validate:"required,gt=0"`
	PlanText *string `json:"plan_text" validate:"required"`
}

type UpdateSummaryRequest struct {
	NoteId      int64   `json:"note_id" validate:"required,gt=0"`
	SummaryText *string `json:"summary_text" validate:"required"`
}

// UpdateNoteRequest sets any subset of the text fields in one transaction.
type UpdateNoteRequest struct {
	NoteId         int64   `json:"note_id" validate:"required,gt=0"`
	SubjectiveText *string `json:"subjective_text"`
	ObjectiveText  *string `json:"objective_text"`
	AssessmentText *string `json:"assessment_text"`
	PlanText       *string `json:"plan_text"`
	SummaryText    *string `json:"summary_text"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type GenerateAssessmentResponse struct {
	AssessmentText string `json:"assessment_text"`
}

type GeneratePlanResponse struct {
	PlanText string `json:"plan_text"`
}

type GenerateSummaryResponse struct {
	SummaryText string `json:"summary_text"`
}
