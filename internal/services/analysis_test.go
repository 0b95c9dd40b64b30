package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newChatServer returns an httptest server that answers every
// chat-completions call with the given message content.
func newChatServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if assert.Len(t, req.Messages, 2) {
			assert.Equal(t, "system", req.Messages[0].Role)
		}
		if assert.NotNil(t, req.ResponseFormat) {
			assert.Equal(t, "json_object", req.ResponseFormat.Type)
		}

		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestAnalyzePersonality(t *testing.T) {
	server := newChatServer(t, `{
		"scores": {"openness": 72, "conscientiousness": 65, "extraversion": 48, "agreeableness": 81, "neuroticism": 35},
		"insights": "Reflective and considerate.",
		"strengths": ["curiosity", "empathy", "focus"],
		"growthAreas": ["assertiveness", "risk taking", "delegation"],
		"hobbies": ["reading"],
		"habits": ["journaling"]
	}`)
	defer server.Close()

	svc := NewAnalysisService("test-key", server.URL, "gpt-4o")

	insights, err := svc.AnalyzePersonality([]AnalysisItem{
		{QuestionText: "I enjoy meeting new people.", Answer: "Agree", Trait: "extraversion"},
	})
	require.NoError(t, err)

	assert.Equal(t, 72, insights.Scores.Openness)
	assert.Equal(t, 35, insights.Scores.Neuroticism)
	assert.Equal(t, "Reflective and considerate.", insights.Insights)
	assert.Len(t, insights.Strengths, 3)
	assert.Equal(t, []string{"assertiveness", "risk taking", "delegation"}, insights.GrowthAreas)
}

func TestAnalyzePersonalityClampsScores(t *testing.T) {
	server := newChatServer(t, `{
		"scores": {"openness": 150, "conscientiousness": -20, "extraversion": 50, "agreeableness": 100, "neuroticism": 0},
		"insights": "x",
		"strengths": [],
		"growthAreas": []
	}`)
	defer server.Close()

	svc := NewAnalysisService("test-key", server.URL, "gpt-4o")

	insights, err := svc.AnalyzePersonality(nil)
	require.NoError(t, err)

	assert.Equal(t, 100, insights.Scores.Openness)
	assert.Equal(t, 0, insights.Scores.Conscientiousness)
	assert.Equal(t, 50, insights.Scores.Extraversion)
}

func TestAnalyzePersonalityStripsCodeFences(t *testing.T) {
	server := newChatServer(t, "```json\n{\"scores\": {\"openness\": 60, \"conscientiousness\": 60, \"extraversion\": 60, \"agreeableness\": 60, \"neuroticism\": 60}, \"insights\": \"ok\", \"strengths\": [], \"growthAreas\": []}\n```")
	defer server.Close()

	svc := NewAnalysisService("test-key", server.URL, "gpt-4o")

	insights, err := svc.AnalyzePersonality(nil)
	require.NoError(t, err)
	assert.Equal(t, 60, insights.Scores.Openness)
	assert.Equal(t, "ok", insights.Insights)
}

func TestGenerateRecommendations(t *testing.T) {
	server := newChatServer(t, `{
		"recommendations": [
			{"category": "career", "title": "a", "description": "b", "action": "c"},
			{"category": "relationships", "title": "a", "description": "b", "action": "c"},
			{"category": "habits", "title": "a", "description": "b", "action": "c"}
		]
	}`)
	defer server.Close()

	svc := NewAnalysisService("test-key", server.URL, "gpt-4o")

	recs, err := svc.GenerateRecommendations(&PersonalityInsights{})
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "career", recs[0].Category)
}

func TestGenerateRecommendationsMissingCategory(t *testing.T) {
	// Two career entries, no habits: one missing and one doubled.
	server := newChatServer(t, `{
		"recommendations": [
			{"category": "career", "title": "a", "description": "b", "action": "c"},
			{"category": "career", "title": "a2", "description": "b", "action": "c"},
			{"category": "relationships", "title": "a", "description": "b", "action": "c"}
		]
	}`)
	defer server.Close()

	svc := NewAnalysisService("test-key", server.URL, "gpt-4o")

	_, err := svc.GenerateRecommendations(&PersonalityInsights{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "habits")
}

func TestGenerateRecommendationsWrongCount(t *testing.T) {
	server := newChatServer(t, `{
		"recommendations": [
			{"category": "career", "title": "a", "description": "b", "action": "c"}
		]
	}`)
	defer server.Close()

	svc := NewAnalysisService("test-key", server.URL, "gpt-4o")

	_, err := svc.GenerateRecommendations(&PersonalityInsights{})
	assert.Error(t, err)
}

func TestGenerateQuestions(t *testing.T) {
	server := newChatServer(t, `{
		"questions": [
			{"questionText": "I plan my week in advance.", "trait": "conscientiousness", "options": ["Strongly Disagree","Disagree","Neither Agree nor Disagree","Agree","Strongly Agree"]},
			{"questionText": "I start conversations with strangers.", "trait": "extraversion", "options": []}
		]
	}`)
	defer server.Close()

	svc := NewAnalysisService("test-key", server.URL, "gpt-4o")

	questions, err := svc.GenerateQuestions("work style", 2)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "conscientiousness", questions[0].Trait)
	assert.Len(t, questions[0].Options, 5)
}

func TestGenerateQuestionsEmptyResult(t *testing.T) {
	server := newChatServer(t, `{"questions": []}`)
	defer server.Close()

	svc := NewAnalysisService("test-key", server.URL, "gpt-4o")

	_, err := svc.GenerateQuestions("work style", 3)
	assert.Error(t, err)
}

func TestChatNotConfigured(t *testing.T) {
	svc := NewAnalysisService("", "http://localhost:1", "gpt-4o")

	assert.False(t, svc.IsAvailable())
	_, err := svc.AnalyzePersonality(nil)
	assert.Error(t, err)
}

func TestChatAPIStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error": {"message": "rate limited"}}`)
	}))
	defer server.Close()

	svc := NewAnalysisService("test-key", server.URL, "gpt-4o")

	_, err := svc.AnalyzePersonality(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestChatInvalidJSONContent(t *testing.T) {
	server := newChatServer(t, "here is your analysis: the subject is quite open")
	defer server.Close()

	svc := NewAnalysisService("test-key", server.URL, "gpt-4o")

	_, err := svc.AnalyzePersonality(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestCleanJSONContent(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"a": 1}`, `{"a": 1}`},
		{"```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"  {\"a\": 1}  ", `{"a": 1}`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, cleanJSONContent(tc.in))
	}
}
