package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"study-tracker/internal/codeexec"
	"study-tracker/internal/middleware"
	"study-tracker/internal/notes"
	"study-tracker/internal/plans"
	"study-tracker/internal/quizgen"
	"study-tracker/internal/quizzes"
	"study-tracker/pkg/storage"
	"study-tracker/pkg/websocket"

	"github.com/gorilla/mux"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize the durable store
	var backend storage.Store
	switch os.Getenv("STORAGE_DRIVER") {
	case "redis":
		backend = storage.NewRedisStore(os.Getenv("REDIS_ADDR"))
	default:
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "study-tracker.db"
		}
		store, err := storage.NewSQLiteStore(path)
		if err != nil {
			log.Fatalf("Failed to open storage: %v", err)
		}
		backend = store
	}

	// Initialize WebSocket hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Initialize the three store instances; each begins hydrating immediately
	plansService := plans.NewService(backend, wsHub)
	notesService := notes.NewService(backend, wsHub)
	quizService := quizzes.NewService(backend, wsHub)
	plansService.SetResultSource(quizService)
	quizService.SetProgressListener(plansService)

	// Remote collaborators
	codeExecService := codeexec.NewService(envOr("CODE_EXEC_URL", "http://127.0.0.1:3000"))
	quizGenService := quizgen.NewService(envOr("QUIZ_GEN_URL", "http://127.0.0.1:3000"))

	// Initialize handlers
	plansHandler := plans.NewHandler(plansService)
	notesHandler := notes.NewHandler(notesService)
	quizHandler := quizzes.NewHandler(quizService)
	codeExecHandler := codeexec.NewHandler(codeExecService)
	quizGenHandler := quizgen.NewHandler(quizGenService)

	// Setup router
	router := mux.NewRouter()

	// CORS middleware configuration
	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{envOr("ALLOWED_ORIGIN", "http://localhost:3000")},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	handler := corsMiddleware.Handler(router)

	apiRouter := router.PathPrefix("/api").Subrouter()
	apiRouter.Use(middleware.Logging())
	apiRouter.Use(middleware.JSONContentType())

	// Study plans
	apiRouter.HandleFunc("/plans", plansHandler.ListPlans).Methods("GET")
	apiRouter.HandleFunc("/plans", plansHandler.CreatePlan).Methods("POST", "OPTIONS")
	apiRouter.HandleFunc("/plans/active", plansHandler.GetActivePlan).Methods("GET")
	apiRouter.HandleFunc("/plans/{id}", plansHandler.UpdatePlan).Methods("PUT", "OPTIONS")
	apiRouter.HandleFunc("/plans/{id}", plansHandler.DeletePlan).Methods("DELETE", "OPTIONS")
	apiRouter.HandleFunc("/plans/{id}/activate", plansHandler.ActivatePlan).Methods("POST", "OPTIONS")
	apiRouter.HandleFunc("/topics/{topicId}/complete", plansHandler.CompleteTopic).Methods("POST", "OPTIONS")
	apiRouter.HandleFunc("/progress", plansHandler.GetProgress).Methods("GET")

	// Notes and code snippets
	apiRouter.HandleFunc("/notes", notesHandler.ListNotes).Methods("GET")
	apiRouter.HandleFunc("/notes", notesHandler.CreateNote).Methods("POST", "OPTIONS")
	apiRouter.HandleFunc("/notes/{id}", notesHandler.UpdateNote).Methods("PUT", "OPTIONS")
	apiRouter.HandleFunc("/notes/{id}", notesHandler.DeleteNote).Methods("DELETE", "OPTIONS")
	apiRouter.HandleFunc("/snippets", notesHandler.ListSnippets).Methods("GET")
	apiRouter.HandleFunc("/snippets", notesHandler.CreateSnippet).Methods("POST", "OPTIONS")
	apiRouter.HandleFunc("/snippets/{id}", notesHandler.UpdateSnippet).Methods("PUT", "OPTIONS")
	apiRouter.HandleFunc("/snippets/{id}", notesHandler.DeleteSnippet).Methods("DELETE", "OPTIONS")

	// Quizzes and results (append-only)
	apiRouter.HandleFunc("/quizzes", quizHandler.ListQuizzes).Methods("GET")
	apiRouter.HandleFunc("/quizzes", quizHandler.CreateQuiz).Methods("POST", "OPTIONS")
	apiRouter.HandleFunc("/quizzes/{id}/submit", quizHandler.SubmitQuiz).Methods("POST", "OPTIONS")
	apiRouter.HandleFunc("/results", quizHandler.ListResults).Methods("GET")
	apiRouter.HandleFunc("/results/average", quizHandler.AverageScore).Methods("GET")

	// Remote collaborators
	apiRouter.HandleFunc("/code/execute", codeExecHandler.Execute).Methods("POST", "OPTIONS")
	apiRouter.HandleFunc("/quiz/generate", quizGenHandler.Generate).Methods("POST", "OPTIONS")

	// WebSocket endpoint: full collection snapshots after every mutation
	router.HandleFunc("/ws", wsHub.HandleWebSocket)

	port := envOr("PORT", "8080")
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown setup
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	// Drain pending persistence writes before exiting
	plansService.Close()
	notesService.Close()
	quizService.Close()

	log.Println("Server shutdown gracefully")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
