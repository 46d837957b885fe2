// internal/models/dto.go
package models

import "time"

// ListResponse wraps a collection read so the UI can tell an empty collection
// from one that simply has not hydrated yet.
type ListResponse struct {
	Ready bool        `json:"ready"`
	Items interface{} `json:"items"`
}

type SubmitQuizRequest struct {
	Answers   []Answer `json:"answers"`
	TimeSpent int      `json:"timeSpent"`
}

type SubmitQuizResponse struct {
	Result         QuizResult `json:"result"`
	Score          float64    `json:"score"`
	TotalQuestions int        `json:"totalQuestions"`
	CorrectCount   int        `json:"correctCount"`
	Feedback       []string   `json:"feedback"`
}

type CodeExecutionRequest struct {
	Code    string `json:"code"`
	Timeout int    `json:"timeout,omitempty"` // seconds
}

type CodeExecutionResult struct {
	Success       bool   `json:"success"`
	Output        string `json:"output,omitempty"`
	Error         string `json:"error,omitempty"`
	ExecutionTime int64  `json:"executionTime"` // milliseconds
}

type QuizGenerationRequest struct {
	TopicID          string `json:"topicId"`
	TopicTitle       string `json:"topicTitle"`
	TopicDescription string `json:"topicDescription"`
	UserNotes        string `json:"userNotes,omitempty"`
	QuestionCount    int    `json:"questionCount,omitempty"`
	Difficulty       string `json:"difficulty,omitempty"`
}

type QuizGenerationResult struct {
	Questions   []QuizQuestion `json:"questions"`
	GeneratedAt time.Time      `json:"generatedAt"`
	Fallback    bool           `json:"fallback"`
}
