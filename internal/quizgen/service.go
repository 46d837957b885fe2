// internal/quizgen/service.go
package quizgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"study-tracker/internal/models"
)

const (
	defaultQuestionCount = 5
	defaultDifficulty    = "medium"
)

// Service calls the remote AI generation endpoint and falls back to the
// built-in question set when the remote fails for any reason.
type Service struct {
	baseURL string
	client  *http.Client
}

func NewService(baseURL string) *Service {
	return &Service{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (s *Service) Generate(ctx context.Context, req models.QuizGenerationRequest) models.QuizGenerationResult {
	if req.QuestionCount <= 0 {
		req.QuestionCount = defaultQuestionCount
	}
	if req.Difficulty == "" {
		req.Difficulty = defaultDifficulty
	}

	questions, err := s.generate(ctx, req)
	if err != nil {
		log.Printf("quizgen: remote generation failed, using fallback set: %v", err)
		return models.QuizGenerationResult{
			Questions:   FallbackQuestions(),
			GeneratedAt: time.Now(),
			Fallback:    true,
		}
	}

	return models.QuizGenerationResult{
		Questions:   questions,
		GeneratedAt: time.Now(),
	}
}

func (s *Service) generate(ctx context.Context, req models.QuizGenerationRequest) ([]models.QuizQuestion, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/quiz/generate", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server error: %s", msg)
	}

	var payload struct {
		Questions []models.QuizQuestion `json:"questions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if len(payload.Questions) == 0 {
		return nil, fmt.Errorf("remote returned no questions")
	}
	return payload.Questions, nil
}

// FallbackQuestions is the fixed local set served when generation is
// unavailable.
func FallbackQuestions() []models.QuizQuestion {
	return []models.QuizQuestion{
		{
			ID:            "1",
			Type:          models.MultipleChoice,
			Question:      "What is the data type of the variable x = 5?",
			Options:       []string{"string", "int", "float", "bool"},
			CorrectAnswer: models.IndexAnswer(1),
			Explanation:   "The number 5 without a decimal point is an integer (int).",
		},
		{
			ID:            "2",
			Type:          models.TrueFalse,
			Question:      "In Python, lists are mutable.",
			Options:       []string{"True", "False"},
			CorrectAnswer: models.IndexAnswer(0),
			Explanation:   "Lists in Python are mutable, meaning they can be modified after creation.",
		},
		{
			ID:            "3",
			Type:          models.MultipleChoice,
			Question:      "Which function returns the length of a list?",
			Options:       []string{"length()", "size()", "len()", "count()"},
			CorrectAnswer: models.IndexAnswer(2),
			Explanation:   "The len() function returns the number of elements in a list.",
		},
		{
			ID:            "4",
			Type:          models.TrueFalse,
			Question:      "Dictionaries in Python preserve insertion order.",
			Options:       []string{"True", "False"},
			CorrectAnswer: models.IndexAnswer(0),
			Explanation:   "Since Python 3.7, dictionaries keep the order in which keys were inserted.",
		},
		{
			ID:            "5",
			Type:          models.MultipleChoice,
			Question:      "What is the correct way to define a function in Python?",
			Options:       []string{"function myFunc() {}", "def myFunc():", "func myFunc():", "define myFunc():"},
			CorrectAnswer: models.IndexAnswer(1),
			Explanation:   "Python functions are defined with the def keyword followed by the name and parentheses.",
		},
	}
}
