package services

import (
	"fmt"

	"github.com/starplayground/PersonalityBankPro/internal/models"

	"gorm.io/gorm"
)

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetLatestProfile returns the newest profile for the user. Profiles are
// history, not state, so only creation time decides which one wins.
func (s *ProfileService) GetLatestProfile(userID uint) (*models.PersonalityProfile, error) {
	var profile models.PersonalityProfile
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&profile).Error
	if err != nil {
		return nil, fmt.Errorf("%w: no personality profile for user %d", ErrNotFound, userID)
	}
	return &profile, nil
}

func (s *ProfileService) GetRecommendations(userID uint) ([]models.Recommendation, error) {
	var recommendations []models.Recommendation
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recommendations).Error
	if err != nil {
		return nil, err
	}
	return recommendations, nil
}

func (s *ProfileService) MarkRecommendationRead(recommendationID, userID uint) error {
	result := s.db.Model(&models.Recommendation{}).
		Where("id = ? AND user_id = ?", recommendationID, userID).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: recommendation %d", ErrNotFound, recommendationID)
	}
	return nil
}
