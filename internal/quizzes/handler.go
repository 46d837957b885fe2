// internal/quizzes/handler.go
package quizzes

import (
	"encoding/json"
	"errors"
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

func (h *Handler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	items := h.service.Quizzes()
	if topicID := r.URL.Query().Get("topicId"); topicID != "" {
		items = h.service.QuizzesByTopic(topicID)
	}
	json.NewEncoder(w).Encode(models.ListResponse{
		Ready: h.service.Ready(),
		Items: items,
	})
}

func (h *Handler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	var quiz models.Quiz
	if err := json.NewDecoder(r.Body).Decode(&quiz); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created := h.service.AddQuiz(quiz)
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *Handler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req models.SubmitQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	response, err := h.service.Submit(vars["id"], req)
	if err != nil {
		if errors.Is(err, ErrQuizNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(response)
}

func (h *Handler) ListResults(w http.ResponseWriter, r *http.Request) {
	items := h.service.Results()
	if topicID := r.URL.Query().Get("topicId"); topicID != "" {
		items = h.service.ResultsByTopic(topicID)
	}
	json.NewEncoder(w).Encode(models.ListResponse{
		Ready: h.service.Ready(),
		Items: items,
	})
}

func (h *Handler) AverageScore(w http.ResponseWriter, r *http.Request) {
	topicID := r.URL.Query().Get("topicId")
	if topicID == "" {
		http.Error(w, "topicId is required", http.StatusBadRequest)
		return
	}

	json.NewEncoder(w).Encode(map[string]float64{
		"averageScore": h.service.AverageScoreByTopic(topicID),
	})
}
