// internal/notes/service_test.go
package notes

import (
	"testing"

	"github.com/stretchr/testify/require"

	"study-tracker/internal/models"
	"study-tracker/pkg/storage"
)

func newTestService(t *testing.T) (*Service, storage.Store) {
	t.Helper()
	backend := storage.NewMemoryStore()
	s := NewService(backend, nil)
	s.WaitReady()
	t.Cleanup(s.Close)
	return s, backend
}

func TestNoteLifecycle(t *testing.T) {
	s, _ := newTestService(t)

	note := s.AddNote(models.Note{TopicID: "t1", Content: "for and while"})
	require.NotEmpty(t, note.ID)
	require.False(t, note.CreatedAt.IsZero())

	note.Content = "for, while and comprehensions"
	require.True(t, s.UpdateNote(note))

	stored := s.Notes()
	require.Len(t, stored, 1)
	require.Equal(t, "for, while and comprehensions", stored[0].Content)
	require.True(t, stored[0].UpdatedAt.After(stored[0].CreatedAt) || stored[0].UpdatedAt.Equal(stored[0].CreatedAt))

	require.True(t, s.DeleteNote(note.ID))
	require.Empty(t, s.Notes())
}

func TestUpdateAndDeleteUnknownNote(t *testing.T) {
	s, _ := newTestService(t)

	require.False(t, s.UpdateNote(models.Note{ID: "ghost"}))
	require.False(t, s.DeleteNote("ghost"))
}

func TestNotesByTopic(t *testing.T) {
	s, _ := newTestService(t)
	s.AddNote(models.Note{TopicID: "t1", Content: "a"})
	s.AddNote(models.Note{TopicID: "t2", Content: "b"})
	s.AddNote(models.Note{TopicID: "t1", Content: "c"})

	matches := s.NotesByTopic("t1")

	require.Len(t, matches, 2)
	require.Equal(t, "a", matches[0].Content)
	require.Equal(t, "c", matches[1].Content)
	require.Empty(t, s.NotesByTopic("empty"))
}

func TestSnippetLanguageIsAlwaysPython(t *testing.T) {
	s, _ := newTestService(t)

	snippet := s.AddSnippet(models.CodeSnippet{TopicID: "t1", Title: "hello", Code: "print('hi')", Language: "javascript"})
	require.Equal(t, "python", snippet.Language)

	snippet.Language = "ruby"
	require.True(t, s.UpdateSnippet(snippet))
	require.Equal(t, "python", s.Snippets()[0].Language)
}

func TestSnippetsByTopic(t *testing.T) {
	s, _ := newTestService(t)
	s.AddSnippet(models.CodeSnippet{TopicID: "t1", Title: "a"})
	s.AddSnippet(models.CodeSnippet{TopicID: "t2", Title: "b"})

	require.Len(t, s.SnippetsByTopic("t1"), 1)
	require.Empty(t, s.SnippetsByTopic("empty"))
}

func TestNotesAndSnippetsSurviveRestart(t *testing.T) {
	s, backend := newTestService(t)
	note := s.AddNote(models.Note{TopicID: "t1", Content: "a"})
	snippet := s.AddSnippet(models.CodeSnippet{TopicID: "t1", Title: "b", Code: "x = 1"})
	s.Flush()

	reopened := NewService(backend, nil)
	reopened.WaitReady()
	defer reopened.Close()

	require.Len(t, reopened.Notes(), 1)
	require.Equal(t, note.ID, reopened.Notes()[0].ID)
	require.Len(t, reopened.Snippets(), 1)
	require.Equal(t, snippet.ID, reopened.Snippets()[0].ID)
}
