package models

import (
	"time"

	"gorm.io/datatypes"
)

// TraitScores holds the five Big Five dimensions on a 0-100 scale.
type TraitScores struct {
	Openness          int `json:"openness"`
	Conscientiousness int `json:"conscientiousness"`
	Extraversion      int `json:"extraversion"`
	Agreeableness     int `json:"agreeableness"`
	Neuroticism       int `json:"neuroticism"`
}

// PersonalityProfile is one AI-derived snapshot of a user's personality.
// Profiles accumulate per user; the newest one is authoritative.
type PersonalityProfile struct {
	ID           uint                             `gorm:"primaryKey" json:"id"`
	UserID       uint                             `gorm:"not null;index" json:"user_id"`
	AssessmentID uint                             `gorm:"not null" json:"assessment_id"`
	Scores       datatypes.JSONType[TraitScores]  `json:"scores"`
	Insights     string                           `gorm:"type:text" json:"insights"`
	Strengths    datatypes.JSONSlice[string]      `json:"strengths"`
	GrowthAreas  datatypes.JSONSlice[string]      `json:"growth_areas"`
	Hobbies      datatypes.JSONSlice[string]      `json:"hobbies,omitempty"`
	Habits       datatypes.JSONSlice[string]      `json:"habits,omitempty"`
	CreatedAt    time.Time                        `json:"created_at"`
}
