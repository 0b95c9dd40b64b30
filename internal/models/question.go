package models

import "gorm.io/datatypes"

type Question struct {
	ID           uint                        `gorm:"primaryKey" json:"id"`
	AssessmentID uint                        `gorm:"not null;uniqueIndex:idx_assessment_order" json:"assessment_id"`
	Text         string                      `gorm:"type:text;not null" json:"question_text"`
	Type         string                      `gorm:"size:20;not null;default:'likert'" json:"question_type"`
	Options      datatypes.JSONSlice[string] `json:"options"`
	Trait        string                      `gorm:"size:50" json:"trait,omitempty"`
	OrderNum     int                         `gorm:"not null;uniqueIndex:idx_assessment_order" json:"order"`
}

const QuestionTypeLikert = "likert"

// LikertOptions is the standard five-point answer scale.
var LikertOptions = []string{
	"Strongly Disagree",
	"Disagree",
	"Neither Agree nor Disagree",
	"Agree",
	"Strongly Agree",
}
