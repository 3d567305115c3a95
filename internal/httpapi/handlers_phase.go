package httpapi

import (
	"net/http"

	"github.com/nextstep-ai/guide-server/internal/assessment"
)

// currentPhase returns the user's flow phase. A logged-in user with no
// recorded phase is on the dashboard.
func (s *Server) currentPhase(userID string) assessment.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.phases[userID]; ok {
		return p
	}
	return assessment.PhaseDashboard
}

func (s *Server) setPhase(userID string, p assessment.Phase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phases[userID] = p
}

func (s *Server) clearPhase(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.phases, userID)
}

func (s *Server) handleGetPhase(w http.ResponseWriter, r *http.Request) {
	user, err := s.authedUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"phase": s.currentPhase(user.ID)})
}

func (s *Server) handleSetPhase(w http.ResponseWriter, r *http.Request) {
	user, err := s.authedUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}

	var req struct {
		To assessment.Phase `json:"to"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	next, err := assessment.Transition(s.currentPhase(user.ID), req.To)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.setPhase(user.ID, next)
	writeJSON(w, http.StatusOK, map[string]any{"phase": next})
}
