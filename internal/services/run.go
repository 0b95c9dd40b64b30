package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/starplayground/PersonalityBankPro/internal/models"
	"github.com/starplayground/PersonalityBankPro/internal/ws"

	"gorm.io/gorm"
)

// ProfileGenerator is the enrichment step that runs when a personality
// assessment completes.
type ProfileGenerator interface {
	GenerateProfile(runID uint) error
}

// RunService drives a user through an assessment: it starts runs, records
// answers, advances the question pointer and detects completion. All
// mutations of a single run are serialized through a per-run lock so two
// concurrent submissions cannot both advance from the same stale pointer.
type RunService struct {
	db       *gorm.DB
	enricher ProfileGenerator
	hub      *ws.Hub

	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewRunService(db *gorm.DB, enricher ProfileGenerator, hub *ws.Hub) *RunService {
	return &RunService{
		db:       db,
		enricher: enricher,
		hub:      hub,
		locks:    make(map[uint]*sync.Mutex),
	}
}

func (s *RunService) lockRun(runID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[runID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[runID] = lock
	}
	return lock
}

// releaseRun drops a completed run's lock entry so the map doesn't grow
// for the life of the process. A goroutine still blocked on the old mutex
// proceeds against the completed status and is rejected there.
func (s *RunService) releaseRun(runID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.locks, runID)
}

func (s *RunService) StartRun(userID, assessmentID uint) (*models.UserAssessment, error) {
	var assessment models.Assessment
	if err := s.db.First(&assessment, assessmentID).Error; err != nil {
		return nil, fmt.Errorf("%w: assessment %d", ErrNotFound, assessmentID)
	}
	if !assessment.IsActive {
		return nil, fmt.Errorf("%w: assessment is not active", ErrInvalidInput)
	}

	run := models.UserAssessment{
		UserID:          userID,
		AssessmentID:    assessmentID,
		Status:          models.RunStatusInProgress,
		CurrentQuestion: 1,
		StartedAt:       time.Now(),
	}
	if err := s.db.Create(&run).Error; err != nil {
		return nil, err
	}

	if err := s.db.Preload("Assessment").First(&run, run.ID).Error; err != nil {
		return nil, err
	}
	return &run, nil
}

func (s *RunService) ListRuns(userID uint) ([]models.UserAssessment, error) {
	var runs []models.UserAssessment
	err := s.db.Where("user_id = ?", userID).
		Preload("Assessment").
		Order("started_at DESC").
		Find(&runs).Error
	if err != nil {
		return nil, err
	}
	return runs, nil
}

// RunState is a run joined with everything the client needs to render the
// next question and resume where the user left off.
type RunState struct {
	models.UserAssessment
	Questions []models.Question `json:"questions"`
	Responses []models.Response `json:"responses"`
}

func (s *RunService) GetRun(runID, userID uint) (*RunState, error) {
	var run models.UserAssessment
	if err := s.db.Where("id = ? AND user_id = ?", runID, userID).
		Preload("Assessment").
		First(&run).Error; err != nil {
		return nil, fmt.Errorf("%w: user assessment %d", ErrNotFound, runID)
	}

	var questions []models.Question
	if err := s.db.Where("assessment_id = ?", run.AssessmentID).
		Order("order_num ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}

	var responses []models.Response
	if err := s.db.Where("user_assessment_id = ?", runID).
		Order("answered_at ASC").
		Find(&responses).Error; err != nil {
		return nil, err
	}

	return &RunState{UserAssessment: run, Questions: questions, Responses: responses}, nil
}

// SaveProgress is the explicit "save for later" checkpoint. It keeps the
// pointer where it is and is safe to call repeatedly; a completed run
// cannot be reopened.
func (s *RunService) SaveProgress(runID, userID uint) (*models.UserAssessment, error) {
	lock := s.lockRun(runID)
	lock.Lock()
	defer lock.Unlock()

	var run models.UserAssessment
	if err := s.db.Where("id = ? AND user_id = ?", runID, userID).First(&run).Error; err != nil {
		return nil, fmt.Errorf("%w: user assessment %d", ErrNotFound, runID)
	}

	if run.Status == models.RunStatusCompleted {
		return nil, fmt.Errorf("%w: assessment already completed", ErrInvalidInput)
	}

	run.Status = models.RunStatusInProgress
	if err := s.db.Save(&run).Error; err != nil {
		return nil, err
	}
	return &run, nil
}

// RecordResponse appends an answer and advances the run by exactly one
// question. Submissions must target the question the pointer is at, and
// the answer must be one of the question's options; that rejects
// duplicate, out-of-order and fabricated submissions before anything is
// written. The completing response also triggers profile generation for
// personality assessments, whose failure is logged but never surfaced.
func (s *RunService) RecordResponse(runID, questionID uint, answer string, userID uint) (*models.Response, error) {
	lock := s.lockRun(runID)
	lock.Lock()
	defer lock.Unlock()

	var run models.UserAssessment
	if err := s.db.Where("id = ? AND user_id = ?", runID, userID).First(&run).Error; err != nil {
		return nil, fmt.Errorf("%w: user assessment %d", ErrNotFound, runID)
	}

	if run.Status == models.RunStatusCompleted {
		return nil, fmt.Errorf("%w: assessment already completed", ErrInvalidInput)
	}

	var assessment models.Assessment
	if err := s.db.First(&assessment, run.AssessmentID).Error; err != nil {
		return nil, fmt.Errorf("%w: assessment %d", ErrNotFound, run.AssessmentID)
	}

	var question models.Question
	if err := s.db.Where("id = ? AND assessment_id = ?", questionID, run.AssessmentID).
		First(&question).Error; err != nil {
		return nil, fmt.Errorf("%w: question does not belong to this assessment", ErrInvalidInput)
	}

	if question.OrderNum != run.CurrentQuestion {
		return nil, fmt.Errorf("%w: expected question %d, got question %d",
			ErrInvalidInput, run.CurrentQuestion, question.OrderNum)
	}

	if !answerAllowed(question.Options, answer) {
		return nil, fmt.Errorf("%w: answer is not one of the question's options", ErrInvalidInput)
	}

	response := models.Response{
		UserAssessmentID: runID,
		QuestionID:       questionID,
		Answer:           answer,
		AnsweredAt:       time.Now(),
	}
	if err := s.db.Create(&response).Error; err != nil {
		return nil, err
	}

	newCurrent := run.CurrentQuestion + 1
	run.CurrentQuestion = newCurrent

	if newCurrent > assessment.TotalQuestions {
		now := time.Now()
		run.Status = models.RunStatusCompleted
		run.CompletedAt = &now
		if err := s.db.Save(&run).Error; err != nil {
			return nil, err
		}
		s.releaseRun(runID)

		s.hub.Broadcast(runID, ws.Message{Type: "run_completed", Data: run})

		if assessment.Category == models.CategoryPersonality {
			if err := s.enricher.GenerateProfile(runID); err != nil {
				log.Printf("profile generation failed for user assessment %d: %v", runID, err)
			}
		}
	} else {
		if err := s.db.Save(&run).Error; err != nil {
			return nil, err
		}
		s.hub.Broadcast(runID, ws.Message{Type: "response_recorded", Data: run})
	}

	return &response, nil
}

func answerAllowed(options []string, answer string) bool {
	for _, opt := range options {
		if opt == answer {
			return true
		}
	}
	return false
}
