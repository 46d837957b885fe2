// internal/plans/service.go
package plans

import (
	"time"

	"github.com/google/uuid"

	"study-tracker/internal/models"
	"study-tracker/internal/progress"
	"study-tracker/internal/store"
	"study-tracker/pkg/storage"
	"study-tracker/pkg/websocket"
)

// ResultSource supplies the quiz results the progress aggregate folds over.
// Implemented by the quizzes service; wired in main.
type ResultSource interface {
	Results() []models.QuizResult
}

// Service is the store instance owning the plans, active_plan and progress
// keys.
type Service struct {
	plans    *store.Collection[models.StudyPlan]
	active   *store.Value[*models.StudyPlan]
	progress *store.Value[models.Progress]
	hub      *websocket.Hub
	results  ResultSource
}

func NewService(backend storage.Store, hub *websocket.Hub) *Service {
	return &Service{
		plans:    store.NewCollection[models.StudyPlan](backend, "plans"),
		active:   store.NewValue[*models.StudyPlan](backend, "active_plan", nil),
		progress: store.NewValue[models.Progress](backend, "progress", models.DefaultProgress()),
		hub:      hub,
	}
}

func (s *Service) SetResultSource(src ResultSource) {
	s.results = src
}

func (s *Service) Ready() bool {
	return s.plans.Ready() && s.active.Ready() && s.progress.Ready()
}

// WaitReady blocks until all three collections have hydrated.
func (s *Service) WaitReady() {
	s.plans.WaitReady()
	s.active.WaitReady()
	s.progress.WaitReady()
}

func (s *Service) Plans() []models.StudyPlan {
	return s.plans.Items()
}

func (s *Service) Plan(id string) (models.StudyPlan, bool) {
	return s.plans.Get(id)
}

func (s *Service) ActivePlan() *models.StudyPlan {
	return s.active.Get()
}

func (s *Service) AddPlan(plan models.StudyPlan) models.StudyPlan {
	now := time.Now()
	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}
	if plan.Topics == nil {
		plan.Topics = []models.Topic{}
	}
	for i := range plan.Topics {
		if plan.Topics[i].ID == "" {
			plan.Topics[i].ID = uuid.NewString()
		}
		plan.Topics[i].PlanID = plan.ID
	}
	plan.CreatedAt = now
	plan.UpdatedAt = now

	s.plans.Add(plan)
	s.publishPlans()
	return plan
}

// UpdatePlan replaces the stored plan and keeps the active document in step
// when it is the one being edited. Reports whether the id existed.
func (s *Service) UpdatePlan(plan models.StudyPlan) bool {
	plan.UpdatedAt = time.Now()

	found := s.plans.Update(plan)
	if active := s.active.Get(); active != nil && active.ID == plan.ID {
		s.active.Set(&plan)
	}
	s.publishPlans()
	return found
}

// DeletePlan removes the plan; deleting the active plan clears the active
// document. Notes, snippets, quizzes and results referencing its topics are
// deliberately left in place.
func (s *Service) DeletePlan(id string) bool {
	found := s.plans.Delete(id)
	if active := s.active.Get(); active != nil && active.ID == id {
		s.active.Set(nil)
	}
	s.publishPlans()
	return found
}

func (s *Service) SetActivePlan(id string) bool {
	plan, ok := s.plans.Get(id)
	if !ok {
		return false
	}
	s.active.Set(&plan)
	s.publishActive()
	return true
}

// MarkTopicComplete completes a topic of the active plan, then refreshes the
// persisted progress aggregate. Reports whether the topic was found.
func (s *Service) MarkTopicComplete(topicID string) bool {
	active := s.active.Get()
	if active == nil {
		return false
	}

	updated := *active
	updated.Topics = make([]models.Topic, len(active.Topics))
	copy(updated.Topics, active.Topics)

	found := false
	now := time.Now()
	for i := range updated.Topics {
		if updated.Topics[i].ID == topicID {
			updated.Topics[i].IsCompleted = true
			updated.Topics[i].CompletedAt = &now
			found = true
			break
		}
	}
	if !found {
		return false
	}

	s.UpdatePlan(updated)
	s.RefreshProgress()
	return true
}

// Progress recomputes the aggregate from the current plans and results; the
// persisted progress key is never trusted for reads.
func (s *Service) Progress() models.Progress {
	var results []models.QuizResult
	if s.results != nil {
		results = s.results.Results()
	}
	return progress.Summarize(s.Plans(), s.ActivePlan(), results, time.Now())
}

// RefreshProgress re-derives the aggregate and persists it under the progress
// key. Called after topic completion and after each recorded quiz result.
func (s *Service) RefreshProgress() {
	p := s.Progress()
	s.progress.Set(p)
	if s.hub != nil {
		s.hub.Broadcast("progress", p)
	}
}

// Flush blocks until every pending persistence write has been handed to the
// backend.
func (s *Service) Flush() {
	s.plans.Flush()
	s.active.Flush()
	s.progress.Flush()
}

func (s *Service) Close() {
	s.plans.Close()
	s.active.Close()
	s.progress.Close()
}

func (s *Service) publishPlans() {
	if s.hub != nil {
		s.hub.Broadcast("plans", s.plans.Items())
		s.hub.Broadcast("active_plan", s.active.Get())
	}
}

func (s *Service) publishActive() {
	if s.hub != nil {
		s.hub.Broadcast("active_plan", s.active.Get())
	}
}
