// internal/progress/aggregator_test.go
package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"study-tracker/internal/models"
)

func planWithTopics(completed, total int, completedAt time.Time) models.StudyPlan {
	topics := make([]models.Topic, total)
	for i := range topics {
		topics[i] = models.Topic{ID: string(rune('a' + i)), Order: i}
		if i < completed {
			at := completedAt
			topics[i].IsCompleted = true
			topics[i].CompletedAt = &at
		}
	}
	return models.StudyPlan{ID: "plan", Topics: topics}
}

func TestPlanCompletionOneOfFour(t *testing.T) {
	plan := planWithTopics(1, 4, time.Now())

	require.Equal(t, 25, PlanCompletion(plan))
}

func TestPlanCompletionEmptyPlan(t *testing.T) {
	require.Equal(t, 0, PlanCompletion(models.StudyPlan{}))
}

func TestPlanCompletionRoundsToNearest(t *testing.T) {
	// 2/3 = 66.66... -> 67
	require.Equal(t, 67, PlanCompletion(planWithTopics(2, 3, time.Now())))
}

func TestSummarizeCountsAndAverages(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	plan := planWithTopics(2, 4, now.Add(-time.Hour))
	results := []models.QuizResult{
		{ID: "r1", Score: 50, TimeSpent: 90, CompletedAt: now.Add(-2 * time.Hour)},
		{ID: "r2", Score: 100, TimeSpent: 60, CompletedAt: now.Add(-time.Minute)},
	}

	p := Summarize([]models.StudyPlan{plan}, &plan, results, now)

	require.Equal(t, 2, p.TotalTopicsCompleted)
	require.Equal(t, 4, p.TotalTopicsInActivePlan)
	require.Equal(t, 75.0, p.AverageQuizScore)
	require.Equal(t, 2, p.TotalStudyTime) // 150 seconds -> 2 minutes
	require.Equal(t, 2, p.TopicsCompletedByDate["2026-08-31"])
	require.Equal(t, now.Add(-time.Minute), p.LastStudiedDate)
	require.Equal(t, "r1", p.QuizResultsHistory[0].ID)
	require.Equal(t, "r2", p.QuizResultsHistory[1].ID)
}

func TestSummarizeNoActivePlanNoResults(t *testing.T) {
	p := Summarize(nil, nil, nil, time.Now())

	require.Equal(t, 0, p.TotalTopicsCompleted)
	require.Equal(t, 0, p.TotalTopicsInActivePlan)
	require.Equal(t, 0.0, p.AverageQuizScore)
	require.Equal(t, 0, p.CurrentStreak)
}

func TestStreakEndingToday(t *testing.T) {
	now := time.Date(2026, 8, 31, 20, 0, 0, 0, time.UTC)
	byDate := map[string]int{
		"2026-08-29": 1,
		"2026-08-30": 2,
		"2026-08-31": 1,
	}

	require.Equal(t, 3, streak(byDate, now))
}

func TestStreakSurvivesNoStudyYetToday(t *testing.T) {
	now := time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)
	byDate := map[string]int{
		"2026-08-29": 1,
		"2026-08-30": 1,
	}

	require.Equal(t, 2, streak(byDate, now))
}

func TestStreakBrokenByGap(t *testing.T) {
	now := time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)
	byDate := map[string]int{
		"2026-08-27": 1,
		"2026-08-28": 1,
	}

	require.Equal(t, 0, streak(byDate, now))
}
