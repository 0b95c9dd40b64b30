package models

import "time"

type Recommendation struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Category    string    `gorm:"size:20;not null" json:"category"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Action      string    `gorm:"type:text" json:"action"`
	IsRead      bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

const (
	RecommendationCareer        = "career"
	RecommendationRelationships = "relationships"
	RecommendationHabits        = "habits"
)

// RecommendationCategories lists every category the recommendation
// generator must cover, one entry each.
var RecommendationCategories = []string{
	RecommendationCareer,
	RecommendationRelationships,
	RecommendationHabits,
}
