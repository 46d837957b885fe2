// internal/quizgen/service_test.go
package quizgen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"study-tracker/internal/models"
)

func TestGenerateAppliesDefaults(t *testing.T) {
	var got models.QuizGenerationRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/quiz/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		json.NewEncoder(w).Encode(map[string]any{
			"questions": []models.QuizQuestion{
				{ID: "q1", Type: models.MultipleChoice, Question: "?", CorrectAnswer: models.IndexAnswer(0)},
			},
		})
	}))
	defer srv.Close()

	result := NewService(srv.URL).Generate(context.Background(), models.QuizGenerationRequest{TopicTitle: "loops"})

	require.Equal(t, 5, got.QuestionCount)
	require.Equal(t, "medium", got.Difficulty)
	require.False(t, result.Fallback)
	require.Len(t, result.Questions, 1)
	require.Equal(t, "q1", result.Questions[0].ID)
}

func TestGenerateFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	result := NewService(srv.URL).Generate(context.Background(), models.QuizGenerationRequest{TopicTitle: "loops"})

	require.True(t, result.Fallback)
	require.Equal(t, FallbackQuestions(), result.Questions)
}

func TestGenerateFallsBackOnConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	result := NewService(srv.URL).Generate(context.Background(), models.QuizGenerationRequest{})

	require.True(t, result.Fallback)
	require.Len(t, result.Questions, 5)
}

func TestGenerateFallsBackOnEmptyQuestionList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"questions": []models.QuizQuestion{}})
	}))
	defer srv.Close()

	result := NewService(srv.URL).Generate(context.Background(), models.QuizGenerationRequest{})

	require.True(t, result.Fallback)
}

func TestFallbackQuestionsAreWellFormed(t *testing.T) {
	questions := FallbackQuestions()

	require.Len(t, questions, 5)
	for _, q := range questions {
		require.NotEmpty(t, q.ID)
		require.NotEmpty(t, q.Question)
		require.NotEmpty(t, q.Options)
		require.True(t, q.CorrectAnswer.IsSet())
		require.NotEmpty(t, q.Explanation)
	}
}
