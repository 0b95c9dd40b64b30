package models

import "time"

type Response struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserAssessmentID uint      `gorm:"not null;index" json:"user_assessment_id"`
	QuestionID       uint      `gorm:"not null" json:"question_id"`
	Answer           string    `gorm:"type:text;not null" json:"answer"`
	AnsweredAt       time.Time `json:"answered_at"`
}
