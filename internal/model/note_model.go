package model

import "time"

type Note struct {
	Id             int64     `gorm:"primaryKey;autoIncrement"`
	SubjectiveText string    `gorm:"type:text;not null;default:''"`
	ObjectiveText  string    `gorm:"type:text;not null;default:''"`
	AssessmentText string    `gorm:"type:text;not null;default:''"`
	PlanText       string    `gorm:"type:text;not null;default:''"`
	SummaryText    string    `gorm:"type:text;not null;default:''"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Note) TableName() string {
	return "notes"
}
