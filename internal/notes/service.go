// internal/notes/service.go
package notes

import (
	"time"

	"github.com/google/uuid"

	"study-tracker/internal/models"
	"study-tracker/internal/store"
	"study-tracker/pkg/storage"
	"study-tracker/pkg/websocket"
)

// Service is the store instance owning the notes and code_snippets keys.
type Service struct {
	notes    *store.Collection[models.Note]
	snippets *store.Collection[models.CodeSnippet]
	hub      *websocket.Hub
}

func NewService(backend storage.Store, hub *websocket.Hub) *Service {
	return &Service{
		notes:    store.NewCollection[models.Note](backend, "notes"),
		snippets: store.NewCollection[models.CodeSnippet](backend, "code_snippets"),
		hub:      hub,
	}
}

func (s *Service) Ready() bool {
	return s.notes.Ready() && s.snippets.Ready()
}

func (s *Service) WaitReady() {
	s.notes.WaitReady()
	s.snippets.WaitReady()
}

func (s *Service) Notes() []models.Note {
	return s.notes.Items()
}

func (s *Service) NotesByTopic(topicID string) []models.Note {
	return s.notes.Filter(func(n models.Note) bool { return n.TopicID == topicID })
}

func (s *Service) AddNote(note models.Note) models.Note {
	now := time.Now()
	if note.ID == "" {
		note.ID = uuid.NewString()
	}
	note.CreatedAt = now
	note.UpdatedAt = now

	s.notes.Add(note)
	s.publishNotes()
	return note
}

func (s *Service) UpdateNote(note models.Note) bool {
	note.UpdatedAt = time.Now()
	found := s.notes.Update(note)
	s.publishNotes()
	return found
}

func (s *Service) DeleteNote(id string) bool {
	found := s.notes.Delete(id)
	s.publishNotes()
	return found
}

func (s *Service) Snippets() []models.CodeSnippet {
	return s.snippets.Items()
}

func (s *Service) SnippetsByTopic(topicID string) []models.CodeSnippet {
	return s.snippets.Filter(func(c models.CodeSnippet) bool { return c.TopicID == topicID })
}

func (s *Service) AddSnippet(snippet models.CodeSnippet) models.CodeSnippet {
	now := time.Now()
	if snippet.ID == "" {
		snippet.ID = uuid.NewString()
	}
	snippet.Language = models.SnippetLanguage
	snippet.CreatedAt = now
	snippet.UpdatedAt = now

	s.snippets.Add(snippet)
	s.publishSnippets()
	return snippet
}

func (s *Service) UpdateSnippet(snippet models.CodeSnippet) bool {
	snippet.Language = models.SnippetLanguage
	snippet.UpdatedAt = time.Now()
	found := s.snippets.Update(snippet)
	s.publishSnippets()
	return found
}

func (s *Service) DeleteSnippet(id string) bool {
	found := s.snippets.Delete(id)
	s.publishSnippets()
	return found
}

func (s *Service) Flush() {
	s.notes.Flush()
	s.snippets.Flush()
}

func (s *Service) Close() {
	s.notes.Close()
	s.snippets.Close()
}

func (s *Service) publishNotes() {
	if s.hub != nil {
		s.hub.Broadcast("notes", s.notes.Items())
	}
}

func (s *Service) publishSnippets() {
	if s.hub != nil {
		s.hub.Broadcast("code_snippets", s.snippets.Items())
	}
}
