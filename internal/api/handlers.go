package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/askelan/quizd/internal/store"
	"github.com/askelan/quizd/internal/trivia"
)

// handleNextQuestion arms a fresh question and returns its text. The
// answer never leaves the server here; it surfaces only in the grading
// result after a submission.
func (s *Server) handleNextQuestion(w http.ResponseWriter, r *http.Request) {
	question, err := s.engine.NextQuestion(r.Context())
	if err != nil {
		if errors.Is(err, trivia.ErrNoQuestionAvailable) {
			writeError(w, http.StatusServiceUnavailable, "no question available: generation failed and the question bank is empty")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"question": question})
}

func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Answer string `json:"answer"`
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}

	result, err := s.engine.SubmitAnswer(req.UserID, req.Answer)
	if err != nil {
		switch {
		case errors.Is(err, trivia.ErrEmptyAnswer):
			writeError(w, http.StatusBadRequest, "answer must not be empty")
		case errors.Is(err, trivia.ErrNoActiveQuestion):
			writeError(w, http.StatusConflict, "no active question: request one first")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	playerID := r.URL.Query().Get("userId")
	score, answered := s.engine.Score(playerID)
	writeJSON(w, http.StatusOK, map[string]any{
		"userId":            playerID,
		"score":             score,
		"questionsAnswered": answered,
	})
}

func (s *Server) handleListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := s.players.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, players)
}

func (s *Server) handleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID          string `json:"id"`
		DisplayName string `json:"displayName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	if req.DisplayName == "" {
		writeError(w, http.StatusBadRequest, "displayName required")
		return
	}
	p, err := s.players.Create(r.Context(), req.ID, req.DisplayName)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	p, err := s.players.Get(r.Context(), chi.URLParam(r, "playerID"))
	if err != nil {
		if errors.Is(err, store.ErrPlayerNotFound) {
			writeError(w, http.StatusNotFound, "player not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleUpdatePlayer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DisplayName string `json:"displayName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	p, err := s.players.Update(r.Context(), chi.URLParam(r, "playerID"), req.DisplayName)
	if err != nil {
		if errors.Is(err, store.ErrPlayerNotFound) {
			writeError(w, http.StatusNotFound, "player not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeletePlayer(w http.ResponseWriter, r *http.Request) {
	if err := s.players.Delete(r.Context(), chi.URLParam(r, "playerID")); err != nil {
		if errors.Is(err, store.ErrPlayerNotFound) {
			writeError(w, http.StatusNotFound, "player not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
