// internal/models/models.go
package models

import "time"

// SnippetLanguage is the only language the tracker supports.
const SnippetLanguage = "python"

type StudyPlan struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	TotalDays   int       `json:"totalDays"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Topics      []Topic   `json:"topics"`
	IsActive    bool      `json:"isActive"`
}

func (p StudyPlan) EntityID() string { return p.ID }

// Topic is owned by its StudyPlan and never stored on its own. PlanID is a
// back-reference only.
type Topic struct {
	ID            string     `json:"id"`
	PlanID        string     `json:"planId"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Order         int        `json:"order"`
	EstimatedDays int        `json:"estimatedDays"`
	IsCompleted   bool       `json:"isCompleted"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

type Note struct {
	ID        string    `json:"id"`
	TopicID   string    `json:"topicId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (n Note) EntityID() string { return n.ID }

type CodeSnippet struct {
	ID        string    `json:"id"`
	TopicID   string    `json:"topicId"`
	Title     string    `json:"title"`
	Code      string    `json:"code"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s CodeSnippet) EntityID() string { return s.ID }

type Quiz struct {
	ID            string         `json:"id"`
	TopicID       string         `json:"topicId"`
	Questions     []QuizQuestion `json:"questions"`
	CreatedAt     time.Time      `json:"createdAt"`
	GeneratedByAI bool           `json:"generatedByAI"`
}

func (q Quiz) EntityID() string { return q.ID }

type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	TrueFalse      QuestionType = "true_false"
	CodeCompletion QuestionType = "code_completion"
)

type QuizQuestion struct {
	ID            string       `json:"id"`
	Type          QuestionType `json:"type"`
	Question      string       `json:"question"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer Answer       `json:"correctAnswer"`
	Explanation   string       `json:"explanation"`
	UserAnswer    Answer       `json:"userAnswer"`
	IsCorrect     *bool        `json:"isCorrect,omitempty"`
}

// QuizResult embeds the answered question snapshot so a later edit of the
// quiz never changes past results.
type QuizResult struct {
	ID             string         `json:"id"`
	QuizID         string         `json:"quizId"`
	TopicID        string         `json:"topicId"`
	Score          float64        `json:"score"`
	TotalQuestions int            `json:"totalQuestions"`
	Answers        []QuizQuestion `json:"answers"`
	CompletedAt    time.Time      `json:"completedAt"`
	TimeSpent      int            `json:"timeSpent"` // seconds
}

func (r QuizResult) EntityID() string { return r.ID }

// Progress is a single aggregate per device, derived from plans and results.
type Progress struct {
	TotalTopicsCompleted    int            `json:"totalTopicsCompleted"`
	TotalTopicsInActivePlan int            `json:"totalTopicsInActivePlan"`
	CurrentStreak           int            `json:"currentStreak"`
	TotalStudyTime          int            `json:"totalStudyTime"` // minutes
	AverageQuizScore        float64        `json:"averageQuizScore"`
	LastStudiedDate         time.Time      `json:"lastStudiedDate"`
	TopicsCompletedByDate   map[string]int `json:"topicsCompletedByDate"`
	QuizResultsHistory      []QuizResult   `json:"quizResultsHistory"`
}

// DefaultProgress returns the zero aggregate a fresh device starts with.
func DefaultProgress() Progress {
	return Progress{
		LastStudiedDate:       time.Now(),
		TopicsCompletedByDate: map[string]int{},
		QuizResultsHistory:    []QuizResult{},
	}
}
