package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/askelan/quizd/internal/store"
	"github.com/askelan/quizd/internal/trivia"
)

// Server wires the game engine and player registry into an HTTP handler.
type Server struct {
	engine  *trivia.Engine
	players *store.PlayerRepo
}

// New builds the chi router for the API. origins lists the browser
// origins allowed by CORS; players may be nil to disable the player
// registry endpoints.
func New(engine *trivia.Engine, players *store.PlayerRepo, origins []string) http.Handler {
	s := &Server{engine: engine, players: players}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Get("/report", s.handleReport)

	r.Route("/api", func(ar chi.Router) {
		ar.Get("/question", s.handleNextQuestion)
		ar.Post("/answer", s.handleSubmitAnswer)
		ar.Get("/score", s.handleScore)

		if s.players != nil {
			ar.Route("/players", func(pr chi.Router) {
				pr.Get("/", s.handleListPlayers)
				pr.Post("/", s.handleCreatePlayer)
				pr.Get("/{playerID}", s.handleGetPlayer)
				pr.Put("/{playerID}", s.handleUpdatePlayer)
				pr.Delete("/{playerID}", s.handleDeletePlayer)
			})
		}
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
