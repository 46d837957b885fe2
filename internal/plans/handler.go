// internal/plans/handler.go
package plans

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"study-tracker/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(models.ListResponse{
		Ready: h.service.Ready(),
		Items: h.service.Plans(),
	})
}

func (h *Handler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var plan models.StudyPlan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created := h.service.AddPlan(plan)
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *Handler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var plan models.StudyPlan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	plan.ID = vars["id"]

	if !h.service.UpdatePlan(plan) {
		http.Error(w, "plan not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(plan)
}

func (h *Handler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if !h.service.DeletePlan(vars["id"]) {
		http.Error(w, "plan not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"status": "deleted"})
}

func (h *Handler) ActivatePlan(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if !h.service.SetActivePlan(vars["id"]) {
		http.Error(w, "plan not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(h.service.ActivePlan())
}

func (h *Handler) GetActivePlan(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(h.service.ActivePlan())
}

func (h *Handler) CompleteTopic(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if !h.service.MarkTopicComplete(vars["topicId"]) {
		http.Error(w, "topic not found in active plan", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(h.service.ActivePlan())
}

func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(h.service.Progress())
}
