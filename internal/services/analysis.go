package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/starplayground/PersonalityBankPro/internal/models"
)

// AnalysisService talks to an OpenAI-compatible chat-completions endpoint.
// Calls are one-shot with a hard client timeout; there is no retry, the
// enrichment layer decides what a failure means.
type AnalysisService struct {
	httpClient *http.Client
	apiKey     string
	apiURL     string
	model      string
}

func NewAnalysisService(apiKey, apiURL, model string) *AnalysisService {
	return &AnalysisService{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		apiKey:     apiKey,
		apiURL:     apiURL,
		model:      model,
	}
}

func (s *AnalysisService) IsAvailable() bool {
	return s.apiKey != ""
}

// AnalysisItem is one answered question prepared for the analysis prompt.
type AnalysisItem struct {
	QuestionText string `json:"question_text"`
	Answer       string `json:"answer"`
	Trait        string `json:"trait"`
}

type PersonalityInsights struct {
	Scores      models.TraitScores `json:"scores"`
	Insights    string             `json:"insights"`
	Strengths   []string           `json:"strengths"`
	GrowthAreas []string           `json:"growthAreas"`
	Hobbies     []string           `json:"hobbies,omitempty"`
	Habits      []string           `json:"habits,omitempty"`
}

type RecommendationData struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

type GeneratedQuestion struct {
	QuestionText string   `json:"questionText"`
	Trait        string   `json:"trait"`
	Options      []string `json:"options"`
}

type chatRequest struct {
	Model          string              `json:"model"`
	Messages       []chatMessage       `json:"messages"`
	ResponseFormat *chatResponseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

const analyzeSystemPrompt = `You are a professional personality psychologist specializing in Big Five personality assessment analysis. Provide accurate, insightful, and constructive personality analysis.`

const recommendSystemPrompt = `You are a professional development coach and psychologist. Provide practical, actionable recommendations based on personality profiles.`

const generateSystemPrompt = `You are an expert psychologist creating concise assessment questions.`

// AnalyzePersonality converts answered questions into Big Five trait scores
// and narrative insight.
func (s *AnalysisService) AnalyzePersonality(items []AnalysisItem) (*PersonalityInsights, error) {
	var sb strings.Builder
	for _, item := range items {
		fmt.Fprintf(&sb, "Question: %s\nAnswer: %s\nTrait: %s\n\n", item.QuestionText, item.Answer, item.Trait)
	}

	prompt := fmt.Sprintf(`Analyze the following personality assessment responses and provide a comprehensive personality analysis based on the Big Five personality traits (Openness, Conscientiousness, Extraversion, Agreeableness, Neuroticism).

Assessment Responses:
%s
Please provide a JSON response with:
1. Scores for each Big Five trait (0-100 scale)
2. A comprehensive personality insights paragraph (2-3 sentences)
3. Top 3 strengths based on the personality profile
4. Top 3 growth areas for development
5. Likely hobbies or interests this person might enjoy
6. Notable lifestyle habits or behaviors

Response format:
{
  "scores": {
    "openness": number,
    "conscientiousness": number,
    "extraversion": number,
    "agreeableness": number,
    "neuroticism": number
  },
  "insights": "string",
  "strengths": ["string", "string", "string"],
  "growthAreas": ["string", "string", "string"],
  "hobbies": ["string", "string", "string"],
  "habits": ["string", "string", "string"]
}`, sb.String())

	content, err := s.chat(analyzeSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	var insights PersonalityInsights
	if err := json.Unmarshal([]byte(content), &insights); err != nil {
		return nil, fmt.Errorf("analysis returned invalid JSON: %w", err)
	}

	insights.Scores = clampScores(insights.Scores)
	return &insights, nil
}

// GenerateRecommendations asks for exactly one recommendation per category.
// A result missing a category (or doubling one up) is rejected outright
// rather than partially accepted.
func (s *AnalysisService) GenerateRecommendations(insights *PersonalityInsights) ([]RecommendationData, error) {
	prompt := fmt.Sprintf(`Based on the following personality profile, generate 3 personalized recommendations (one for each category: career, relationships, habits) that would help this person grow and develop.

Personality Profile:
- Openness: %d%%
- Conscientiousness: %d%%
- Extraversion: %d%%
- Agreeableness: %d%%
- Neuroticism: %d%%

Insights: %s
Strengths: %s
Growth Areas: %s

Please provide 3 actionable recommendations in JSON format:
{
  "recommendations": [
    {
      "category": "career",
      "title": "string",
      "description": "string (2-3 sentences)",
      "action": "string (specific action they can take)"
    },
    {
      "category": "relationships",
      "title": "string",
      "description": "string (2-3 sentences)",
      "action": "string (specific action they can take)"
    },
    {
      "category": "habits",
      "title": "string",
      "description": "string (2-3 sentences)",
      "action": "string (specific action they can take)"
    }
  ]
}`,
		insights.Scores.Openness, insights.Scores.Conscientiousness, insights.Scores.Extraversion,
		insights.Scores.Agreeableness, insights.Scores.Neuroticism,
		insights.Insights, strings.Join(insights.Strengths, ", "), strings.Join(insights.GrowthAreas, ", "))

	content, err := s.chat(recommendSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	var result struct {
		Recommendations []RecommendationData `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("recommendations returned invalid JSON: %w", err)
	}

	if err := validateRecommendations(result.Recommendations); err != nil {
		return nil, err
	}
	return result.Recommendations, nil
}

// GenerateQuestions produces Likert questions for a new assessment on the
// given topic.
func (s *AnalysisService) GenerateQuestions(topic string, numQuestions int) ([]GeneratedQuestion, error) {
	prompt := fmt.Sprintf(`Generate %d short multiple choice questions to assess personality traits about %s. Each question should include a trait name and five Likert scale options from "Strongly Disagree" to "Strongly Agree". Respond in JSON with {"questions": [{"questionText": "", "trait": "", "options": ["Strongly Disagree","Disagree","Neither Agree nor Disagree","Agree","Strongly Agree"]}]}`, numQuestions, topic)

	content, err := s.chat(generateSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	var result struct {
		Questions []GeneratedQuestion `json:"questions"`
	}
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("question generation returned invalid JSON: %w", err)
	}
	if len(result.Questions) == 0 {
		return nil, fmt.Errorf("question generation returned no questions")
	}
	return result.Questions, nil
}

func (s *AnalysisService) chat(systemPrompt, userPrompt string) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("analysis service is not configured")
	}

	reqBody := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		ResponseFormat: &chatResponseFormat{Type: "json_object"},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest("POST", s.apiURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("analysis API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("analysis API returned status %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse API response: %w", err)
	}

	if chatResp.Error != nil {
		return "", fmt.Errorf("analysis API error: %s", chatResp.Error.Message)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("empty response from analysis API")
	}

	return cleanJSONContent(chatResp.Choices[0].Message.Content), nil
}

func cleanJSONContent(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
	}
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
	}
	if strings.HasSuffix(content, "```") {
		content = strings.TrimSuffix(content, "```")
	}
	return strings.TrimSpace(content)
}

func clampScores(scores models.TraitScores) models.TraitScores {
	scores.Openness = clampScore(scores.Openness)
	scores.Conscientiousness = clampScore(scores.Conscientiousness)
	scores.Extraversion = clampScore(scores.Extraversion)
	scores.Agreeableness = clampScore(scores.Agreeableness)
	scores.Neuroticism = clampScore(scores.Neuroticism)
	return scores
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func validateRecommendations(recs []RecommendationData) error {
	if len(recs) != len(models.RecommendationCategories) {
		return fmt.Errorf("expected %d recommendations, got %d", len(models.RecommendationCategories), len(recs))
	}
	seen := make(map[string]bool, len(recs))
	for _, rec := range recs {
		seen[rec.Category] = true
	}
	for _, category := range models.RecommendationCategories {
		if !seen[category] {
			return fmt.Errorf("recommendations missing category %q", category)
		}
	}
	return nil
}
