package handlers

import (
	"net/http"
	"strconv"

	"github.com/starplayground/PersonalityBankPro/internal/services"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetPersonalityProfile godoc
// @Summary      Get a user's latest personality profile
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User ID"
// @Success      200 {object} PersonalityProfile
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/users/{id}/personality-profile [get]
func (h *ProfileHandler) GetPersonalityProfile(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
		return
	}

	if c.GetUint("user_id") != uint(userID) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "cannot view another user's personality profile"})
		return
	}

	profile, err := h.profileService.GetLatestProfile(uint(userID))
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetRecommendations godoc
// @Summary      List a user's recommendations, newest first
// @Tags         recommendations
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User ID"
// @Success      200 {array} Recommendation
// @Failure      403 {object} ErrorResponse
// @Router       /api/v1/users/{id}/recommendations [get]
func (h *ProfileHandler) GetRecommendations(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
		return
	}

	if c.GetUint("user_id") != uint(userID) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "cannot view another user's recommendations"})
		return
	}

	recommendations, err := h.profileService.GetRecommendations(uint(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, recommendations)
}

// MarkRecommendationRead godoc
// @Summary      Mark a recommendation as read
// @Tags         recommendations
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Recommendation ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/recommendations/{id}/read [patch]
func (h *ProfileHandler) MarkRecommendationRead(c *gin.Context) {
	recommendationID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid recommendation id"})
		return
	}

	if err := h.profileService.MarkRecommendationRead(uint(recommendationID), c.GetUint("user_id")); err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "recommendation marked as read"})
}
