package handlers

import (
	"net/http"
	"strconv"

	"github.com/starplayground/PersonalityBankPro/internal/services"

	"github.com/gin-gonic/gin"
)

type RunHandler struct {
	runService *services.RunService
}

func NewRunHandler(runService *services.RunService) *RunHandler {
	return &RunHandler{runService: runService}
}

type StartRunRequest struct {
	AssessmentID uint `json:"assessment_id" binding:"required" example:"1"`
}

type SaveProgressRequest struct {
	Status string `json:"status" binding:"required" example:"in_progress"`
}

type RecordResponseRequest struct {
	UserAssessmentID uint   `json:"user_assessment_id" binding:"required" example:"1"`
	QuestionID       uint   `json:"question_id" binding:"required" example:"3"`
	Answer           string `json:"answer" binding:"required" example:"Agree"`
}

// ListRuns godoc
// @Summary      List a user's assessment runs
// @Tags         user-assessments
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User ID"
// @Success      200 {array} UserAssessment
// @Failure      403 {object} ErrorResponse
// @Router       /api/v1/users/{id}/assessments [get]
func (h *RunHandler) ListRuns(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
		return
	}

	if c.GetUint("user_id") != uint(userID) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "cannot view another user's assessments"})
		return
	}

	runs, err := h.runService.ListRuns(uint(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, runs)
}

// StartRun godoc
// @Summary      Start an assessment run
// @Tags         user-assessments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User ID"
// @Param        request body StartRunRequest true "Assessment to start"
// @Success      201 {object} UserAssessment
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/users/{id}/assessments [post]
func (h *RunHandler) StartRun(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
		return
	}

	if c.GetUint("user_id") != uint(userID) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "cannot start an assessment for another user"})
		return
	}

	var req StartRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	run, err := h.runService.StartRun(uint(userID), req.AssessmentID)
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, run)
}

// GetRun godoc
// @Summary      Get a run with its catalog and responses
// @Description  Returns the run joined with its assessment, the full ordered question list and every response recorded so far.
// @Tags         user-assessments
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User assessment ID"
// @Success      200 {object} services.RunState
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/user-assessments/{id} [get]
func (h *RunHandler) GetRun(c *gin.Context) {
	runID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user assessment id"})
		return
	}

	state, err := h.runService.GetRun(uint(runID), c.GetUint("user_id"))
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, state)
}

// SaveProgress godoc
// @Summary      Save run progress for later
// @Tags         user-assessments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User assessment ID"
// @Param        request body SaveProgressRequest true "Status checkpoint"
// @Success      200 {object} UserAssessment
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/user-assessments/{id} [patch]
func (h *RunHandler) SaveProgress(c *gin.Context) {
	runID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user assessment id"})
		return
	}

	var req SaveProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if req.Status != "in_progress" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "only in_progress can be set explicitly"})
		return
	}

	run, err := h.runService.SaveProgress(uint(runID), c.GetUint("user_id"))
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, run)
}

// RecordResponse godoc
// @Summary      Record an answer and advance the run
// @Description  Creates the response, advances the current-question pointer by one, and on the final question completes the run and kicks off profile generation for personality assessments.
// @Tags         responses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body RecordResponseRequest true "Answer submission"
// @Success      201 {object} Response
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/responses [post]
func (h *RunHandler) RecordResponse(c *gin.Context) {
	var req RecordResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	response, err := h.runService.RecordResponse(req.UserAssessmentID, req.QuestionID, req.Answer, c.GetUint("user_id"))
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response)
}
