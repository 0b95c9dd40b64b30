package handlers

import (
	"net/http"
	"strconv"

	"github.com/starplayground/PersonalityBankPro/internal/services"

	"github.com/gin-gonic/gin"
)

type AssessmentHandler struct {
	assessmentService *services.AssessmentService
	analysisService   *services.AnalysisService
}

func NewAssessmentHandler(assessmentService *services.AssessmentService, analysisService *services.AnalysisService) *AssessmentHandler {
	return &AssessmentHandler{assessmentService: assessmentService, analysisService: analysisService}
}

// ListAssessments godoc
// @Summary      List active assessments
// @Tags         assessments
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Assessment
// @Router       /api/v1/assessments [get]
func (h *AssessmentHandler) ListAssessments(c *gin.Context) {
	assessments, err := h.assessmentService.ListActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, assessments)
}

// GetAssessment godoc
// @Summary      Get an assessment
// @Tags         assessments
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Assessment ID"
// @Success      200 {object} Assessment
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/assessments/{id} [get]
func (h *AssessmentHandler) GetAssessment(c *gin.Context) {
	assessmentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid assessment id"})
		return
	}

	assessment, err := h.assessmentService.GetAssessment(uint(assessmentID))
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, assessment)
}

// GetQuestions godoc
// @Summary      Get an assessment's ordered question catalog
// @Tags         assessments
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Assessment ID"
// @Success      200 {array} Question
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/assessments/{id}/questions [get]
func (h *AssessmentHandler) GetQuestions(c *gin.Context) {
	assessmentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid assessment id"})
		return
	}

	questions, err := h.assessmentService.GetQuestions(uint(assessmentID))
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, questions)
}

type GenerateAssessmentRequest struct {
	Name         string `json:"name" binding:"required" example:"Work Style Assessment"`
	Description  string `json:"description" binding:"required" example:"How you approach collaboration and focus"`
	Category     string `json:"category" binding:"required" example:"personality"`
	NumQuestions int    `json:"num_questions" example:"5"`
}

// GenerateAssessment godoc
// @Summary      Generate an assessment with AI-created questions
// @Tags         assessments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body GenerateAssessmentRequest true "Assessment parameters"
// @Success      201 {object} Assessment
// @Failure      400 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /api/v1/assessments/generate [post]
func (h *AssessmentHandler) GenerateAssessment(c *gin.Context) {
	var req GenerateAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	numQuestions := req.NumQuestions
	if numQuestions <= 0 {
		numQuestions = 5
	}

	questions, err := h.analysisService.GenerateQuestions(req.Category, numQuestions)
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}

	assessment, err := h.assessmentService.CreateWithQuestions(req.Name, req.Description, req.Category, questions)
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, assessment)
}

// CheckAI godoc
// @Summary      Check whether the analysis service is configured
// @Tags         assessments
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]bool
// @Router       /api/v1/assessments/ai-status [get]
func (h *AssessmentHandler) CheckAI(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"available": h.analysisService.IsAvailable()})
}
