// internal/codeexec/handler.go
package codeexec

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

func (h *Handler) Execute(w http.ResponseWriter, r *http.Request) {
	var req models.CodeExecutionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// The validation gate runs before the remote is ever contacted; its
	// failure looks like any other execution failure to the UI.
	if v := Validate(req.Code); !v.Valid {
		json.NewEncoder(w).Encode(models.CodeExecutionResult{Success: false, Error: v.Error})
		return
	}

	result := h.service.Execute(r.Context(), req)
	json.NewEncoder(w).Encode(result)
}
