package database

import (
	"log"

	"github.com/starplayground/PersonalityBankPro/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedQuestion struct {
	text  string
	trait string
}

var bigFiveQuestions = []seedQuestion{
	{"I often come up with creative solutions to problems and enjoy exploring new ideas.", "openness"},
	{"I am always prepared and pay attention to details.", "conscientiousness"},
	{"I feel comfortable around people and enjoy social gatherings.", "extraversion"},
	{"I am sympathetic and feel others' emotions easily.", "agreeableness"},
	{"I often feel stressed and worry about things.", "neuroticism"},
	{"I enjoy trying new experiences and learning new things.", "openness"},
	{"I stick to my commitments and follow through on tasks.", "conscientiousness"},
	{"I enjoy being the center of attention in social situations.", "extraversion"},
	{"I trust others and believe people are generally good.", "agreeableness"},
	{"I remain calm under pressure and rarely get upset.", "neuroticism"},
	{"I appreciate art, music, and beautiful things.", "openness"},
	{"I organize my time effectively and meet deadlines.", "conscientiousness"},
	{"I actively seek out new social connections.", "extraversion"},
	{"I go out of my way to help others when they need it.", "agreeableness"},
	{"I handle criticism well and don't take things personally.", "neuroticism"},
	{"I enjoy philosophical discussions and abstract thinking.", "openness"},
	{"I maintain high standards for myself and my work.", "conscientiousness"},
	{"I prefer working in teams rather than alone.", "extraversion"},
	{"I avoid conflicts and prefer harmony in relationships.", "agreeableness"},
	{"I bounce back quickly from setbacks and disappointments.", "neuroticism"},
}

var sampleUsers = []models.User{
	{Username: "john_smith", Email: "john@example.com", FirstName: "John", LastName: "Smith", IsProfilePublic: true},
	{Username: "sarah_jones", Email: "sarah@example.com", FirstName: "Sarah", LastName: "Jones", IsProfilePublic: true},
	{Username: "mike_chen", Email: "mike@example.com", FirstName: "Mike", LastName: "Chen", IsProfilePublic: true},
	{Username: "emma_wilson", Email: "emma@example.com", FirstName: "Emma", LastName: "Wilson", IsProfilePublic: false},
}

// Seed populates sample users and the built-in assessments. Existing rows
// are left alone so repeated startups are safe.
func Seed(db *gorm.DB) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash seed password: %v", err)
	}

	for _, u := range sampleUsers {
		var existing models.User
		if err := db.Where("email = ?", u.Email).First(&existing).Error; err == nil {
			continue
		}
		u.PasswordHash = string(hash)
		if err := db.Create(&u).Error; err != nil {
			log.Printf("seed: failed to create user %s: %v", u.Username, err)
		}
	}

	seedBigFive(db)
	seedEmotionalIntelligence(db)

	log.Println("database seeded")
}

func seedBigFive(db *gorm.DB) {
	var existing models.Assessment
	if err := db.Where("name = ?", "Big Five Personality Assessment").First(&existing).Error; err == nil {
		return
	}

	assessment := models.Assessment{
		Name:           "Big Five Personality Assessment",
		Description:    "Comprehensive personality assessment based on the Five-Factor Model",
		TotalQuestions: len(bigFiveQuestions),
		Category:       models.CategoryPersonality,
		IsActive:       true,
	}
	if err := db.Create(&assessment).Error; err != nil {
		log.Printf("seed: failed to create assessment: %v", err)
		return
	}

	for i, q := range bigFiveQuestions {
		question := models.Question{
			AssessmentID: assessment.ID,
			Text:         q.text,
			Type:         models.QuestionTypeLikert,
			Options:      models.LikertOptions,
			Trait:        q.trait,
			OrderNum:     i + 1,
		}
		if err := db.Create(&question).Error; err != nil {
			log.Printf("seed: failed to create question %d: %v", i+1, err)
		}
	}
}

func seedEmotionalIntelligence(db *gorm.DB) {
	var existing models.Assessment
	if err := db.Where("name = ?", "Emotional Intelligence Assessment").First(&existing).Error; err == nil {
		return
	}

	assessment := models.Assessment{
		Name:           "Emotional Intelligence Assessment",
		Description:    "Evaluate your ability to understand and manage emotions",
		TotalQuestions: 15,
		Category:       models.CategoryEmotionalIntelligence,
		IsActive:       true,
	}
	if err := db.Create(&assessment).Error; err != nil {
		log.Printf("seed: failed to create assessment: %v", err)
	}
}
