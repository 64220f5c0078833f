package entity

import "time"

// Note is one SOAP note session.
type Note struct {
	Id             int64
	SubjectiveText string
	ObjectiveText  string
	AssessmentText string
	PlanText       string
	SummaryText    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type NoteField string

const (
	NoteFieldSubjective NoteField = "subjective_text"
	NoteFieldObjective  NoteField = "objective_text"
	NoteFieldAssessment NoteField = "assessment_text"
	NoteFieldPlan       NoteField = "plan_text"
	NoteFieldSummary    NoteField = "summary_text"
)

var NoteFields = []NoteField{
	NoteFieldSubjective,
	NoteFieldObjective,
	NoteFieldAssessment,
	NoteFieldPlan,
	NoteFieldSummary,
}

func (f NoteField) Valid() bool {
	for _, known := range NoteFields {
		if f == known {
			return true
		}
	}
	return false
}

// Value returns the current text of the given field.
func (n *Note) Value(f NoteField) string {
	switch f {
	case NoteFieldSubjective:
		return n.SubjectiveText
	case NoteFieldObjective:
		return n.ObjectiveText
	case NoteFieldAssessment:
		return n.AssessmentText
	case NoteFieldPlan:
		return n.PlanText
	case NoteFieldSummary:
		return n.SummaryText
	}
	return ""
}
