package models

import "time"

type Assessment struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Name           string     `gorm:"size:255;not null" json:"name"`
	Description    string     `gorm:"type:text;not null" json:"description"`
	TotalQuestions int        `gorm:"not null" json:"total_questions"`
	Category       string     `gorm:"size:50;not null;index" json:"category"`
	IsActive       bool       `gorm:"not null" json:"is_active"`
	Questions      []Question `gorm:"foreignKey:AssessmentID" json:"questions,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

const (
	CategoryPersonality           = "personality"
	CategoryEmotionalIntelligence = "emotional_intelligence"
)
