package services

import (
	"fmt"

	"github.com/starplayground/PersonalityBankPro/internal/models"
	"github.com/starplayground/PersonalityBankPro/internal/ws"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Analyzer is the external analysis boundary. AnalysisService is the real
// implementation; tests substitute their own.
type Analyzer interface {
	AnalyzePersonality(items []AnalysisItem) (*PersonalityInsights, error)
	GenerateRecommendations(insights *PersonalityInsights) ([]RecommendationData, error)
}

// EnrichmentService turns a completed run's raw answers into a persisted
// personality profile plus one recommendation per category. It runs after
// the run is already marked completed; any failure here leaves the run
// completed and is reported only through the returned error.
type EnrichmentService struct {
	db       *gorm.DB
	analyzer Analyzer
	hub      *ws.Hub
}

func NewEnrichmentService(db *gorm.DB, analyzer Analyzer, hub *ws.Hub) *EnrichmentService {
	return &EnrichmentService{db: db, analyzer: analyzer, hub: hub}
}

func (s *EnrichmentService) GenerateProfile(runID uint) error {
	var run models.UserAssessment
	if err := s.db.First(&run, runID).Error; err != nil {
		return fmt.Errorf("%w: user assessment %d", ErrNotFound, runID)
	}

	var responses []models.Response
	if err := s.db.Where("user_assessment_id = ?", runID).
		Order("answered_at ASC").
		Find(&responses).Error; err != nil {
		return err
	}

	var questions []models.Question
	if err := s.db.Where("assessment_id = ?", run.AssessmentID).
		Order("order_num ASC").
		Find(&questions).Error; err != nil {
		return err
	}

	questionByID := make(map[uint]models.Question, len(questions))
	for _, q := range questions {
		questionByID[q.ID] = q
	}

	// A response whose question has gone missing still contributes an
	// (empty) record; the whole analysis must not fail over one orphan.
	items := make([]AnalysisItem, len(responses))
	for i, r := range responses {
		q := questionByID[r.QuestionID]
		items[i] = AnalysisItem{
			QuestionText: q.Text,
			Answer:       r.Answer,
			Trait:        q.Trait,
		}
	}

	insights, err := s.analyzer.AnalyzePersonality(items)
	if err != nil {
		return fmt.Errorf("personality analysis failed: %w", err)
	}

	profile := models.PersonalityProfile{
		UserID:       run.UserID,
		AssessmentID: run.AssessmentID,
		Scores:       datatypes.NewJSONType(insights.Scores),
		Insights:     insights.Insights,
		Strengths:    insights.Strengths,
		GrowthAreas:  insights.GrowthAreas,
		Hobbies:      insights.Hobbies,
		Habits:       insights.Habits,
	}
	if err := s.db.Create(&profile).Error; err != nil {
		return fmt.Errorf("failed to save personality profile: %w", err)
	}

	recs, err := s.analyzer.GenerateRecommendations(insights)
	if err != nil {
		return fmt.Errorf("recommendation generation failed: %w", err)
	}

	for _, rec := range recs {
		recommendation := models.Recommendation{
			UserID:      run.UserID,
			Category:    rec.Category,
			Title:       rec.Title,
			Description: rec.Description,
			Action:      rec.Action,
			IsRead:      false,
		}
		if err := s.db.Create(&recommendation).Error; err != nil {
			return fmt.Errorf("failed to save recommendation: %w", err)
		}
	}

	s.hub.Broadcast(runID, ws.Message{Type: "profile_ready", Data: profile})
	return nil
}
