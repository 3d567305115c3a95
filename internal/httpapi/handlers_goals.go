package httpapi

import (
	"errors"
	"net/http"

	"github.com/nextstep-ai/guide-server/internal/goals"
)

func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	user, err := s.authedUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}

	list, err := s.deps.Goals.ListByUser(user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not list goals")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleAddGoal(w http.ResponseWriter, r *http.Request) {
	user, err := s.authedUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}

	var req struct {
		Text      string `json:"text"`
		RelatedTo string `json:"relatedTo"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "goal text is required")
		return
	}

	goal, err := s.deps.Goals.Add(user.ID, req.Text, req.RelatedTo)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not add goal")
		return
	}
	writeJSON(w, http.StatusCreated, goal)
}

func (s *Server) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	user, err := s.authedUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}

	var req struct {
		Text        string `json:"text"`
		RelatedTo   string `json:"relatedTo"`
		IsCompleted bool   `json:"isCompleted"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "goal text is required")
		return
	}

	goal, err := s.deps.Goals.Update(goals.Goal{
		ID:          r.PathValue("id"),
		UserID:      user.ID,
		Text:        req.Text,
		RelatedTo:   req.RelatedTo,
		IsCompleted: req.IsCompleted,
	})
	if errors.Is(err, goals.ErrNotFound) {
		writeError(w, http.StatusNotFound, "goal not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not update goal")
		return
	}
	writeJSON(w, http.StatusOK, goal)
}

func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	user, err := s.authedUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}

	err = s.deps.Goals.Delete(user.ID, r.PathValue("id"))
	if errors.Is(err, goals.ErrNotFound) {
		writeError(w, http.StatusNotFound, "goal not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not delete goal")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
