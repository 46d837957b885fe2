// internal/notes/handler.go
package notes

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

func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	items := h.service.Notes()
	if topicID := r.URL.Query().Get("topicId"); topicID != "" {
		items = h.service.NotesByTopic(topicID)
	}
	json.NewEncoder(w).Encode(models.ListResponse{
		Ready: h.service.Ready(),
		Items: items,
	})
}

func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var note models.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created := h.service.AddNote(note)
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var note models.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	note.ID = vars["id"]

	if !h.service.UpdateNote(note) {
		http.Error(w, "note not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(note)
}

func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if !h.service.DeleteNote(vars["id"]) {
		http.Error(w, "note not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"status": "deleted"})
}

func (h *Handler) ListSnippets(w http.ResponseWriter, r *http.Request) {
	items := h.service.Snippets()
	if topicID := r.URL.Query().Get("topicId"); topicID != "" {
		items = h.service.SnippetsByTopic(topicID)
	}
	json.NewEncoder(w).Encode(models.ListResponse{
		Ready: h.service.Ready(),
		Items: items,
	})
}

func (h *Handler) CreateSnippet(w http.ResponseWriter, r *http.Request) {
	var snippet models.CodeSnippet
	if err := json.NewDecoder(r.Body).Decode(&snippet); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created := h.service.AddSnippet(snippet)
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *Handler) UpdateSnippet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var snippet models.CodeSnippet
	if err := json.NewDecoder(r.Body).Decode(&snippet); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	snippet.ID = vars["id"]

	if !h.service.UpdateSnippet(snippet) {
		http.Error(w, "snippet not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(snippet)
}

func (h *Handler) DeleteSnippet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if !h.service.DeleteSnippet(vars["id"]) {
		http.Error(w, "snippet not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"status": "deleted"})
}
