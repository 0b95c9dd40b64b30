package models

import "time"

// UserAssessment tracks one user's attempt at one assessment. CurrentQuestion
// is a 1-based pointer into the ordered catalog; after the final answer it
// holds total_questions+1, which is the terminal marker.
type UserAssessment struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          uint       `gorm:"not null;index" json:"user_id"`
	AssessmentID    uint       `gorm:"not null;index" json:"assessment_id"`
	Assessment      Assessment `gorm:"foreignKey:AssessmentID" json:"assessment,omitempty"`
	Status          string     `gorm:"size:20;not null;default:'in_progress'" json:"status"`
	CurrentQuestion int        `gorm:"not null;default:1" json:"current_question"`
	StartedAt       time.Time  `json:"started_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

const (
	RunStatusInProgress = "in_progress"
	RunStatusCompleted  = "completed"
)
