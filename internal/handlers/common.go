package handlers

import (
	"errors"
	"net/http"

	"github.com/starplayground/PersonalityBankPro/internal/models"
	"github.com/starplayground/PersonalityBankPro/internal/services"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// Type aliases so swag can resolve models in annotations.
type User = models.User
type Assessment = models.Assessment
type Question = models.Question
type UserAssessment = models.UserAssessment
type Response = models.Response
type PersonalityProfile = models.PersonalityProfile
type Recommendation = models.Recommendation

// statusForError maps service errors onto HTTP statuses: missing records
// are 404, rejected input is 400, everything else is a 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
