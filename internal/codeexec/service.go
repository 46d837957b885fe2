// internal/codeexec/service.go
package codeexec

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"study-tracker/internal/models"
)

const (
	maxCodeLength  = 10000
	defaultTimeout = 5 // seconds
)

// bannedPatterns are rejected before the code ever leaves the device.
var bannedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`import\s+os`),
	regexp.MustCompile(`import\s+sys`),
	regexp.MustCompile(`import\s+subprocess`),
	regexp.MustCompile(`open\s*\(`),
	regexp.MustCompile(`__import__`),
}

type ValidationResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// Validate is the local security gate in front of the remote executor. It
// never returns an error; a rejected input is a structured result.
func Validate(code string) ValidationResult {
	if strings.TrimSpace(code) == "" {
		return ValidationResult{Valid: false, Error: "code cannot be empty"}
	}
	if utf8.RuneCountInString(code) > maxCodeLength {
		return ValidationResult{Valid: false, Error: fmt.Sprintf("code is too long (maximum %d characters)", maxCodeLength)}
	}
	for _, pattern := range bannedPatterns {
		if pattern.MatchString(code) {
			return ValidationResult{Valid: false, Error: "some operations are not allowed for security reasons"}
		}
	}
	return ValidationResult{Valid: true}
}

// Service calls the remote execution endpoint. The remote is a black box:
// no retries, no backoff.
type Service struct {
	baseURL string
	client  *http.Client
}

func NewService(baseURL string) *Service {
	return &Service{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Execute runs the code remotely and folds every failure mode into the
// result; it never panics and never returns an error to the caller.
func (s *Service) Execute(ctx context.Context, req models.CodeExecutionRequest) models.CodeExecutionResult {
	if req.Timeout <= 0 {
		req.Timeout = defaultTimeout
	}

	body, err := json.Marshal(req)
	if err != nil {
		return models.CodeExecutionResult{Success: false, Error: err.Error()}
	}

	start := time.Now()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/code/execute", bytes.NewReader(body))
	if err != nil {
		return models.CodeExecutionResult{Success: false, Error: "connection error: " + err.Error()}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return models.CodeExecutionResult{Success: false, Error: "connection error: " + err.Error()}
	}
	defer resp.Body.Close()

	elapsed := time.Since(start).Milliseconds()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return models.CodeExecutionResult{
			Success:       false,
			Error:         "server error: " + string(msg),
			ExecutionTime: elapsed,
		}
	}

	var result models.CodeExecutionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return models.CodeExecutionResult{
			Success:       false,
			Error:         "server error: " + err.Error(),
			ExecutionTime: elapsed,
		}
	}
	result.ExecutionTime = elapsed
	return result
}
