package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/starplayground/PersonalityBankPro/internal/middleware"
	"github.com/starplayground/PersonalityBankPro/internal/models"
	"github.com/starplayground/PersonalityBankPro/internal/services"
	"github.com/starplayground/PersonalityBankPro/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupAPI wires the real service stack against an in-memory database,
// with the analysis service unconfigured so no outbound calls happen.
func setupAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:handlers_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Assessment{},
		&models.Question{},
		&models.UserAssessment{},
		&models.Response{},
		&models.PersonalityProfile{},
		&models.Recommendation{},
	))

	hub := ws.NewHub()
	authService := services.NewAuthService(db, "test-secret")
	userService := services.NewUserService(db)
	assessmentService := services.NewAssessmentService(db)
	analysisService := services.NewAnalysisService("", "http://localhost:1", "gpt-4o")
	enrichmentService := services.NewEnrichmentService(db, analysisService, hub)
	runService := services.NewRunService(db, enrichmentService, hub)
	profileService := services.NewProfileService(db)

	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(userService)
	assessmentHandler := NewAssessmentHandler(assessmentService, analysisService)
	runHandler := NewRunHandler(runService)
	profileHandler := NewProfileHandler(profileService)

	router := gin.New()
	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		protected := api.Group("")
		protected.Use(middleware.JWTAuth(authService))
		{
			protected.GET("/users/public", userHandler.GetPublicUsers)
			protected.GET("/users/:id", userHandler.GetUser)
			protected.PATCH("/users/:id", userHandler.UpdateUser)
			protected.GET("/users/:id/assessments", runHandler.ListRuns)
			protected.POST("/users/:id/assessments", runHandler.StartRun)
			protected.GET("/users/:id/personality-profile", profileHandler.GetPersonalityProfile)
			protected.GET("/users/:id/recommendations", profileHandler.GetRecommendations)
			protected.GET("/assessments", assessmentHandler.ListAssessments)
			protected.GET("/assessments/:id/questions", assessmentHandler.GetQuestions)
			protected.GET("/user-assessments/:id", runHandler.GetRun)
			protected.PATCH("/user-assessments/:id", runHandler.SaveProgress)
			protected.POST("/responses", runHandler.RecordResponse)
			protected.PATCH("/recommendations/:id/read", profileHandler.MarkRecommendationRead)
		}
	}

	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, router *gin.Engine, username, email string) (uint, string) {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username":   username,
		"email":      email,
		"password":   "password123",
		"first_name": "Test",
		"last_name":  "User",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.User.ID, resp.Token
}

func seedAPIAssessment(t *testing.T, db *gorm.DB, numQuestions int) (models.Assessment, []models.Question) {
	t.Helper()

	assessment := models.Assessment{
		Name:           "Big Five Personality Assessment",
		Description:    "Core traits",
		TotalQuestions: numQuestions,
		Category:       models.CategoryPersonality,
		IsActive:       true,
	}
	require.NoError(t, db.Create(&assessment).Error)

	questions := make([]models.Question, numQuestions)
	for i := range questions {
		questions[i] = models.Question{
			AssessmentID: assessment.ID,
			Text:         fmt.Sprintf("Statement %d", i+1),
			Type:         models.QuestionTypeLikert,
			Options:      models.LikertOptions,
			Trait:        "openness",
			OrderNum:     i + 1,
		}
		require.NoError(t, db.Create(&questions[i]).Error)
	}
	return assessment, questions
}

func TestRegisterAndLoginEndpoints(t *testing.T) {
	router, _ := setupAPI(t)

	_, token := registerUser(t, router, "jane_doe", "jane@example.com")
	assert.NotEmpty(t, token)

	// Password hash never leaves the API.
	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "jane@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")

	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "jane@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Duplicate username is rejected.
	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username":   "jane_doe",
		"email":      "jane2@example.com",
		"password":   "password123",
		"first_name": "Jane",
		"last_name":  "Doe",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router, _ := setupAPI(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/assessments", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/assessments", nil)
	req.Header.Set("Authorization", "Basic abc123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/assessments", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRunFlowOverHTTP(t *testing.T) {
	router, db := setupAPI(t)
	userID, token := registerUser(t, router, "runner", "runner@example.com")
	assessment, questions := seedAPIAssessment(t, db, 2)

	// Start a run.
	w := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/users/%d/assessments", userID), token, gin.H{
		"assessment_id": assessment.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var run models.UserAssessment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &run))
	assert.Equal(t, models.RunStatusInProgress, run.Status)
	assert.Equal(t, 1, run.CurrentQuestion)

	// Answering out of order is a 400.
	w = doJSON(t, router, http.MethodPost, "/api/v1/responses", token, gin.H{
		"user_assessment_id": run.ID,
		"question_id":        questions[1].ID,
		"answer":             "Agree",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Answer both questions in order.
	for _, q := range questions {
		w = doJSON(t, router, http.MethodPost, "/api/v1/responses", token, gin.H{
			"user_assessment_id": run.ID,
			"question_id":        q.ID,
			"answer":             "Agree",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	// The run completed even though the analysis service is unconfigured.
	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/user-assessments/%d", run.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var state struct {
		Status          string `json:"status"`
		CurrentQuestion int    `json:"current_question"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(t, models.RunStatusCompleted, state.Status)
	assert.Equal(t, 3, state.CurrentQuestion)

	// No profile exists, so the profile endpoint is a 404.
	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/users/%d/personality-profile", userID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStartRunForAnotherUserForbidden(t *testing.T) {
	router, db := setupAPI(t)
	_, token := registerUser(t, router, "alice", "alice@example.com")
	bobID, _ := registerUser(t, router, "bob", "bob@example.com")
	assessment, _ := seedAPIAssessment(t, db, 2)

	w := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/users/%d/assessments", bobID), token, gin.H{
		"assessment_id": assessment.ID,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateOwnProfileOnly(t *testing.T) {
	router, _ := setupAPI(t)
	aliceID, aliceToken := registerUser(t, router, "alice", "alice@example.com")
	bobID, _ := registerUser(t, router, "bob", "bob@example.com")

	w := doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/v1/users/%d", aliceID), aliceToken, gin.H{
		"is_profile_public": true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.True(t, updated.IsProfilePublic)

	w = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/v1/users/%d", bobID), aliceToken, gin.H{
		"is_profile_public": true,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Alice now shows up in the public directory, Bob does not.
	w = doJSON(t, router, http.MethodGet, "/api/v1/users/public", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var public []models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &public))
	require.Len(t, public, 1)
	assert.Equal(t, "alice", public[0].Username)
}

func TestUserScopedReadsForbidden(t *testing.T) {
	router, db := setupAPI(t)
	aliceID, aliceToken := registerUser(t, router, "alice", "alice@example.com")
	_, bobToken := registerUser(t, router, "bob", "bob@example.com")

	profile := models.PersonalityProfile{UserID: aliceID, AssessmentID: 1, Insights: "confidential"}
	require.NoError(t, db.Create(&profile).Error)
	rec := models.Recommendation{UserID: aliceID, Category: "career", Title: "t", Description: "d"}
	require.NoError(t, db.Create(&rec).Error)

	paths := []string{
		fmt.Sprintf("/api/v1/users/%d/personality-profile", aliceID),
		fmt.Sprintf("/api/v1/users/%d/recommendations", aliceID),
		fmt.Sprintf("/api/v1/users/%d/assessments", aliceID),
	}

	// Bob's token gets a 403 and none of alice's data.
	for _, path := range paths {
		w := doJSON(t, router, http.MethodGet, path, bobToken, nil)
		assert.Equal(t, http.StatusForbidden, w.Code, path)
		assert.NotContains(t, w.Body.String(), "confidential", path)
	}

	// Alice still reads her own.
	for _, path := range paths {
		w := doJSON(t, router, http.MethodGet, path, aliceToken, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestMarkRecommendationReadEndpoint(t *testing.T) {
	router, db := setupAPI(t)
	userID, token := registerUser(t, router, "carol", "carol@example.com")

	rec := models.Recommendation{UserID: userID, Category: "career", Title: "t", Description: "d"}
	require.NoError(t, db.Create(&rec).Error)

	w := doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/v1/recommendations/%d/read", rec.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got models.Recommendation
	require.NoError(t, db.First(&got, rec.ID).Error)
	assert.True(t, got.IsRead)

	w = doJSON(t, router, http.MethodPatch, "/api/v1/recommendations/9999/read", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
