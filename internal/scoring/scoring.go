// internal/scoring/scoring.go
package scoring

import (
	"fmt"
	"math"

	"study-tracker/internal/models"
)

// Summary is the aggregate grade for one answered question set.
type Summary struct {
	Score          float64 `json:"score"`
	TotalQuestions int     `json:"totalQuestions"`
	CorrectCount   int     `json:"correctCount"`
}

// Score grades the questions against their stored answers. Correctness is
// exact representation equality: an index answer never matches a label answer.
// An empty set scores 0, never a division by zero.
func Score(questions []models.QuizQuestion) Summary {
	total := len(questions)
	correct := 0
	for _, q := range questions {
		if IsCorrect(q) {
			correct++
		}
	}

	if total == 0 {
		return Summary{}
	}

	score := float64(correct) / float64(total) * 100
	return Summary{
		Score:          round2(score),
		TotalQuestions: total,
		CorrectCount:   correct,
	}
}

// IsCorrect requires an actual answer; a question nobody answered is never
// correct, even when its correct answer is also unset.
func IsCorrect(q models.QuizQuestion) bool {
	return q.UserAnswer.IsSet() && q.UserAnswer.Equal(q.CorrectAnswer)
}

// Feedback produces the one-line message shown after grading a question.
func Feedback(q models.QuizQuestion, correct bool) string {
	if correct {
		return fmt.Sprintf("Correct! %s", q.Explanation)
	}
	return fmt.Sprintf("Incorrect. The correct answer is: %s. %s", q.CorrectAnswer.String(), q.Explanation)
}

// Mean returns the arithmetic mean of the scores rounded to 2 decimals, 0 for
// an empty set.
func Mean(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return round2(sum / float64(len(scores)))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
