// internal/progress/aggregator.go
package progress

import (
	"math"
	"sort"
	"time"

	"study-tracker/internal/models"
	"study-tracker/internal/scoring"
)

const dateLayout = "2006-01-02"

// PlanCompletion returns the completed percentage of a plan's topics, rounded
// to the nearest integer. A plan without topics is 0, not a division by zero.
func PlanCompletion(plan models.StudyPlan) int {
	total := len(plan.Topics)
	if total == 0 {
		return 0
	}
	completed := 0
	for _, t := range plan.Topics {
		if t.IsCompleted {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// Summarize recomputes the whole progress aggregate from plans and quiz
// results. It is a pure fold; nothing is incremented in place, so the
// aggregate can never drift from the data it is derived from.
func Summarize(plans []models.StudyPlan, active *models.StudyPlan, results []models.QuizResult, now time.Time) models.Progress {
	byDate := map[string]int{}
	totalCompleted := 0
	var lastStudied time.Time

	for _, plan := range plans {
		for _, t := range plan.Topics {
			if !t.IsCompleted {
				continue
			}
			totalCompleted++
			if t.CompletedAt != nil {
				byDate[t.CompletedAt.Format(dateLayout)]++
				if t.CompletedAt.After(lastStudied) {
					lastStudied = *t.CompletedAt
				}
			}
		}
	}

	totalInActive := 0
	if active != nil {
		totalInActive = len(active.Topics)
	}

	scores := make([]float64, 0, len(results))
	totalSeconds := 0
	history := make([]models.QuizResult, len(results))
	copy(history, results)
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].CompletedAt.Before(history[j].CompletedAt)
	})
	for _, r := range results {
		scores = append(scores, r.Score)
		totalSeconds += r.TimeSpent
		if r.CompletedAt.After(lastStudied) {
			lastStudied = r.CompletedAt
		}
	}

	return models.Progress{
		TotalTopicsCompleted:    totalCompleted,
		TotalTopicsInActivePlan: totalInActive,
		CurrentStreak:           streak(byDate, now),
		TotalStudyTime:          totalSeconds / 60,
		AverageQuizScore:        scoring.Mean(scores),
		LastStudiedDate:         lastStudied,
		TopicsCompletedByDate:   byDate,
		QuizResultsHistory:      history,
	}
}

// streak counts consecutive days with at least one completed topic, ending
// today or yesterday. A streak is not considered broken until a full day has
// passed without studying.
func streak(byDate map[string]int, now time.Time) int {
	day := now
	if byDate[day.Format(dateLayout)] == 0 {
		day = day.AddDate(0, 0, -1)
	}
	count := 0
	for byDate[day.Format(dateLayout)] > 0 {
		count++
		day = day.AddDate(0, 0, -1)
	}
	return count
}
