// internal/scoring/scoring_test.go
package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"study-tracker/internal/models"
)

func question(correct, user models.Answer) models.QuizQuestion {
	return models.QuizQuestion{
		Type:          models.MultipleChoice,
		Question:      "q",
		CorrectAnswer: correct,
		UserAnswer:    user,
		Explanation:   "because",
	}
}

func TestScoreEmptyQuiz(t *testing.T) {
	summary := Score(nil)

	require.Equal(t, 0.0, summary.Score)
	require.Equal(t, 0, summary.TotalQuestions)
	require.Equal(t, 0, summary.CorrectCount)
}

func TestScoreThreeOfFive(t *testing.T) {
	questions := []models.QuizQuestion{
		question(models.IndexAnswer(1), models.IndexAnswer(1)),
		question(models.IndexAnswer(0), models.IndexAnswer(0)),
		question(models.LabelAnswer("def"), models.LabelAnswer("def")),
		question(models.IndexAnswer(2), models.IndexAnswer(3)),
		question(models.LabelAnswer("len"), models.LabelAnswer("size")),
	}

	summary := Score(questions)

	require.Equal(t, 60.00, summary.Score)
	require.Equal(t, 5, summary.TotalQuestions)
	require.Equal(t, 3, summary.CorrectCount)
}

func TestScoreRoundsToTwoDecimals(t *testing.T) {
	questions := []models.QuizQuestion{
		question(models.IndexAnswer(0), models.IndexAnswer(0)),
		question(models.IndexAnswer(0), models.IndexAnswer(1)),
		question(models.IndexAnswer(0), models.IndexAnswer(1)),
	}

	summary := Score(questions)

	// 1/3 = 33.333... -> 33.33
	require.Equal(t, 33.33, summary.Score)
}

func TestTypeMismatchIsIncorrectNotError(t *testing.T) {
	// "1" as a label never matches index 1.
	q := question(models.IndexAnswer(1), models.LabelAnswer("1"))

	summary := Score([]models.QuizQuestion{q})

	require.Equal(t, 0.0, summary.Score)
	require.Equal(t, 0, summary.CorrectCount)
}

func TestUnansweredQuestionIsIncorrect(t *testing.T) {
	q := question(models.IndexAnswer(1), models.Answer{})

	require.False(t, IsCorrect(q))
}

func TestQuestionWithoutCorrectAnswerIsNotFreeCredit(t *testing.T) {
	// Malformed question: no correct answer recorded, no user answer given.
	q := question(models.Answer{}, models.Answer{})

	require.False(t, IsCorrect(q))
}

func TestFeedback(t *testing.T) {
	q := question(models.LabelAnswer("def"), models.LabelAnswer("func"))

	require.Equal(t, "Correct! because", Feedback(q, true))
	require.Equal(t, "Incorrect. The correct answer is: def. because", Feedback(q, false))
}

func TestMean(t *testing.T) {
	require.Equal(t, 0.0, Mean(nil))
	require.Equal(t, 75.0, Mean([]float64{50, 100}))
	require.Equal(t, 33.33, Mean([]float64{0, 0, 100}))
}
