package main

import (
	"log"

	"github.com/starplayground/PersonalityBankPro/internal/config"
	"github.com/starplayground/PersonalityBankPro/internal/database"
	"github.com/starplayground/PersonalityBankPro/internal/handlers"
	"github.com/starplayground/PersonalityBankPro/internal/middleware"
	"github.com/starplayground/PersonalityBankPro/internal/services"
	"github.com/starplayground/PersonalityBankPro/internal/ws"

	_ "github.com/starplayground/PersonalityBankPro/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Personality Assessment API
// @version         1.0
// @description     API for Likert-scale personality assessments with AI-generated profiles and recommendations
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)
	if cfg.SeedOnStart {
		database.Seed(db)
	}

	hub := ws.NewHub()

	authService := services.NewAuthService(db, cfg.JWTSecret)
	userService := services.NewUserService(db)
	assessmentService := services.NewAssessmentService(db)
	analysisService := services.NewAnalysisService(cfg.OpenAIAPIKey, cfg.OpenAIAPIURL, cfg.OpenAIModel)
	enrichmentService := services.NewEnrichmentService(db, analysisService, hub)
	runService := services.NewRunService(db, enrichmentService, hub)
	profileService := services.NewProfileService(db)

	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentService, analysisService)
	runHandler := handlers.NewRunHandler(runService)
	profileHandler := handlers.NewProfileHandler(profileService)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/user-assessments/:id", wsHandler.HandleRunSocket)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		users := api.Group("/users")
		users.Use(middleware.JWTAuth(authService))
		{
			users.GET("/public", userHandler.GetPublicUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PATCH("/:id", userHandler.UpdateUser)
			users.GET("/:id/assessments", runHandler.ListRuns)
			users.POST("/:id/assessments", runHandler.StartRun)
			users.GET("/:id/personality-profile", profileHandler.GetPersonalityProfile)
			users.GET("/:id/recommendations", profileHandler.GetRecommendations)
		}

		assessments := api.Group("/assessments")
		assessments.Use(middleware.JWTAuth(authService))
		{
			assessments.GET("/ai-status", assessmentHandler.CheckAI)
			assessments.POST("/generate", assessmentHandler.GenerateAssessment)
			assessments.GET("", assessmentHandler.ListAssessments)
			assessments.GET("/:id", assessmentHandler.GetAssessment)
			assessments.GET("/:id/questions", assessmentHandler.GetQuestions)
		}

		runs := api.Group("/user-assessments")
		runs.Use(middleware.JWTAuth(authService))
		{
			runs.GET("/:id", runHandler.GetRun)
			runs.PATCH("/:id", runHandler.SaveProgress)
		}

		responses := api.Group("/responses")
		responses.Use(middleware.JWTAuth(authService))
		{
			responses.POST("", runHandler.RecordResponse)
		}

		recommendations := api.Group("/recommendations")
		recommendations.Use(middleware.JWTAuth(authService))
		{
			recommendations.PATCH("/:id/read", profileHandler.MarkRecommendationRead)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
