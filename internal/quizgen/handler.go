// internal/quizgen/handler.go
package quizgen

import (
	"encoding/json"
	"net/http"

	"study-tracker/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.QuizGenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := h.service.Generate(r.Context(), req)
	json.NewEncoder(w).Encode(result)
}
