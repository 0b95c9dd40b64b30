package services

import (
	"fmt"

	"github.com/starplayground/PersonalityBankPro/internal/models"

	"gorm.io/gorm"
)

type AssessmentService struct {
	db *gorm.DB
}

func NewAssessmentService(db *gorm.DB) *AssessmentService {
	return &AssessmentService{db: db}
}

func (s *AssessmentService) ListActive() ([]models.Assessment, error) {
	var assessments []models.Assessment
	if err := s.db.Where("is_active = ?", true).Order("id ASC").Find(&assessments).Error; err != nil {
		return nil, err
	}
	return assessments, nil
}

func (s *AssessmentService) GetAssessment(assessmentID uint) (*models.Assessment, error) {
	var assessment models.Assessment
	if err := s.db.First(&assessment, assessmentID).Error; err != nil {
		return nil, fmt.Errorf("%w: assessment %d", ErrNotFound, assessmentID)
	}
	return &assessment, nil
}

func (s *AssessmentService) GetQuestions(assessmentID uint) ([]models.Question, error) {
	var assessment models.Assessment
	if err := s.db.First(&assessment, assessmentID).Error; err != nil {
		return nil, fmt.Errorf("%w: assessment %d", ErrNotFound, assessmentID)
	}

	var questions []models.Question
	if err := s.db.Where("assessment_id = ?", assessmentID).
		Order("order_num ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// CreateWithQuestions persists an AI-generated assessment and its catalog.
// Question order follows the slice, 1-based.
func (s *AssessmentService) CreateWithQuestions(name, description, category string, generated []GeneratedQuestion) (*models.Assessment, error) {
	if len(generated) == 0 {
		return nil, fmt.Errorf("%w: assessment needs at least one question", ErrInvalidInput)
	}

	assessment := models.Assessment{
		Name:           name,
		Description:    description,
		TotalQuestions: len(generated),
		Category:       category,
		IsActive:       true,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&assessment).Error; err != nil {
			return err
		}
		for i, g := range generated {
			options := g.Options
			if len(options) == 0 {
				options = models.LikertOptions
			}
			question := models.Question{
				AssessmentID: assessment.ID,
				Text:         g.QuestionText,
				Type:         models.QuestionTypeLikert,
				Options:      options,
				Trait:        g.Trait,
				OrderNum:     i + 1,
			}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &assessment, nil
}
