package services

import (
	"fmt"

	"github.com/starplayground/PersonalityBankPro/internal/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetUser(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}
	return &user, nil
}

type UserUpdateInput struct {
	FirstName       *string
	LastName        *string
	IsProfilePublic *bool
}

func (s *UserService) UpdateUser(userID uint, input UserUpdateInput) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.IsProfilePublic != nil {
		user.IsProfilePublic = *input.IsProfilePublic
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetPublicUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Where("is_profile_public = ?", true).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
