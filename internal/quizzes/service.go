// internal/quizzes/service.go
package quizzes

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"study-tracker/internal/models"
	"study-tracker/internal/scoring"
	"study-tracker/internal/store"
	"study-tracker/pkg/storage"
	"study-tracker/pkg/websocket"
)

var ErrQuizNotFound = errors.New("quiz not found")

// ProgressListener is notified after every recorded result so the progress
// aggregate can be re-derived. Implemented by the plans service; wired in
// main.
type ProgressListener interface {
	RefreshProgress()
}

// Service is the store instance owning the quizzes and quiz_results keys.
// Both collections are append-only: quizzes and results are historical facts,
// never edited or removed.
type Service struct {
	quizzes  *store.Collection[models.Quiz]
	results  *store.Collection[models.QuizResult]
	hub      *websocket.Hub
	listener ProgressListener
}

func NewService(backend storage.Store, hub *websocket.Hub) *Service {
	return &Service{
		quizzes: store.NewCollection[models.Quiz](backend, "quizzes"),
		results: store.NewCollection[models.QuizResult](backend, "quiz_results"),
		hub:     hub,
	}
}

func (s *Service) SetProgressListener(listener ProgressListener) {
	s.listener = listener
}

func (s *Service) Ready() bool {
	return s.quizzes.Ready() && s.results.Ready()
}

func (s *Service) WaitReady() {
	s.quizzes.WaitReady()
	s.results.WaitReady()
}

func (s *Service) Quizzes() []models.Quiz {
	return s.quizzes.Items()
}

func (s *Service) QuizzesByTopic(topicID string) []models.Quiz {
	return s.quizzes.Filter(func(q models.Quiz) bool { return q.TopicID == topicID })
}

func (s *Service) Results() []models.QuizResult {
	return s.results.Items()
}

func (s *Service) ResultsByTopic(topicID string) []models.QuizResult {
	return s.results.Filter(func(r models.QuizResult) bool { return r.TopicID == topicID })
}

func (s *Service) AddQuiz(quiz models.Quiz) models.Quiz {
	if quiz.ID == "" {
		quiz.ID = uuid.NewString()
	}
	if quiz.Questions == nil {
		quiz.Questions = []models.QuizQuestion{}
	}
	for i := range quiz.Questions {
		if quiz.Questions[i].ID == "" {
			quiz.Questions[i].ID = uuid.NewString()
		}
	}
	quiz.CreatedAt = time.Now()

	s.quizzes.Add(quiz)
	if s.hub != nil {
		s.hub.Broadcast("quizzes", s.quizzes.Items())
	}
	return quiz
}

// Submit grades the quiz against the given answers (positional, aligned with
// the question order), records an immutable result embedding the answered
// question snapshot, and returns the graded summary with per-question
// feedback.
func (s *Service) Submit(quizID string, req models.SubmitQuizRequest) (models.SubmitQuizResponse, error) {
	quiz, ok := s.quizzes.Get(quizID)
	if !ok {
		return models.SubmitQuizResponse{}, ErrQuizNotFound
	}

	answered := make([]models.QuizQuestion, len(quiz.Questions))
	copy(answered, quiz.Questions)
	for i := range answered {
		if i < len(req.Answers) {
			answered[i].UserAnswer = req.Answers[i]
		}
		correct := scoring.IsCorrect(answered[i])
		answered[i].IsCorrect = &correct
	}

	summary := scoring.Score(answered)

	feedback := make([]string, len(answered))
	for i, q := range answered {
		feedback[i] = scoring.Feedback(q, *q.IsCorrect)
	}

	result := models.QuizResult{
		ID:             uuid.NewString(),
		QuizID:         quiz.ID,
		TopicID:        quiz.TopicID,
		Score:          summary.Score,
		TotalQuestions: summary.TotalQuestions,
		Answers:        answered,
		CompletedAt:    time.Now(),
		TimeSpent:      req.TimeSpent,
	}
	s.AddResult(result)

	return models.SubmitQuizResponse{
		Result:         result,
		Score:          summary.Score,
		TotalQuestions: summary.TotalQuestions,
		CorrectCount:   summary.CorrectCount,
		Feedback:       feedback,
	}, nil
}

func (s *Service) AddResult(result models.QuizResult) models.QuizResult {
	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	if result.CompletedAt.IsZero() {
		result.CompletedAt = time.Now()
	}

	s.results.Add(result)
	if s.hub != nil {
		s.hub.Broadcast("quiz_results", s.results.Items())
	}
	if s.listener != nil {
		s.listener.RefreshProgress()
	}
	return result
}

// AverageScoreByTopic is the mean score of the topic's results rounded to 2
// decimals, 0 when the topic has none.
func (s *Service) AverageScoreByTopic(topicID string) float64 {
	results := s.ResultsByTopic(topicID)
	scores := make([]float64, len(results))
	for i, r := range results {
		scores[i] = r.Score
	}
	return scoring.Mean(scores)
}

func (s *Service) Flush() {
	s.quizzes.Flush()
	s.results.Flush()
}

func (s *Service) Close() {
	s.quizzes.Close()
	s.results.Close()
}
