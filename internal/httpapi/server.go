// Package httpapi exposes the guide server over HTTP: login, question
// bank, assessment submission and records, goals, the two reference
// explorers, and the streamed mentor chat.
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/nextstep-ai/guide-server/internal/advisor"
	"github.com/nextstep-ai/guide-server/internal/assessment"
	"github.com/nextstep-ai/guide-server/internal/auth"
	"github.com/nextstep-ai/guide-server/internal/education"
	"github.com/nextstep-ai/guide-server/internal/goals"
	"github.com/nextstep-ai/guide-server/internal/occupations"
)

// Deps bundles the collaborators the API serves.
type Deps struct {
	Auth        *auth.Service
	Submissions *advisor.Service
	Advisor     *advisor.Advisor
	Mentor      *advisor.Mentor
	Goals       goals.Store
	Occupations *occupations.Service
	Education   *education.Loader

	// Ready reports backend connectivity for the readiness probe.
	// Nil means no backends to check.
	Ready func(ctx context.Context) error
}

// Server is the HTTP API.
type Server struct {
	deps         Deps
	educationNav *education.Navigator

	// Current flow phase per user, reset on logout. Per process; a
	// restart puts everyone back on the dashboard.
	mu     sync.Mutex
	phases map[string]assessment.Phase
}

// NewServer creates the API server over its collaborators.
func NewServer(deps Deps) *Server {
	s := &Server{deps: deps, phases: make(map[string]assessment.Phase)}
	if deps.Education != nil {
		s.educationNav = education.NewNavigator(deps.Education)
	}
	return s
}

// Routes builds the request router.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("GET /readyz", s.handleReadyz)

	mux.HandleFunc("POST /api/auth/otp/request", s.handleRequestOTP)
	mux.HandleFunc("POST /api/auth/otp/verify", s.handleVerifyOTP)
	mux.HandleFunc("POST /api/auth/logout", s.handleLogout)
	mux.HandleFunc("GET /api/auth/me", s.handleMe)

	mux.HandleFunc("GET /api/questions", s.handleQuestions)

	mux.HandleFunc("GET /api/phase", s.handleGetPhase)
	mux.HandleFunc("PUT /api/phase", s.handleSetPhase)

	mux.HandleFunc("POST /api/assessments", s.handleSubmit)
	mux.HandleFunc("GET /api/assessments", s.handleListRecords)
	mux.HandleFunc("GET /api/assessments/compare", s.handleCompare)
	mux.HandleFunc("GET /api/assessments/{id}", s.handleGetRecord)

	mux.HandleFunc("GET /api/goals", s.handleListGoals)
	mux.HandleFunc("POST /api/goals", s.handleAddGoal)
	mux.HandleFunc("PUT /api/goals/{id}", s.handleUpdateGoal)
	mux.HandleFunc("DELETE /api/goals/{id}", s.handleDeleteGoal)

	mux.HandleFunc("GET /api/occupations", s.handleOccupations)
	mux.HandleFunc("GET /api/occupations/search", s.handleOccupationSearch)
	mux.HandleFunc("GET /api/occupations/path/{code}", s.handleOccupationPath)
	mux.HandleFunc("POST /api/occupations/deep-dive", s.handleDeepDive)

	mux.HandleFunc("GET /api/education", s.handleEducation)
	mux.HandleFunc("GET /api/education/exams", s.handleEducationExams)

	mux.HandleFunc("POST /api/mentor/sessions", s.handleStartMentorSession)
	mux.HandleFunc("GET /api/mentor/sessions/{id}/ws", s.handleMentorWS)

	return mux
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ready"}
	if s.deps.Occupations != nil {
		status["occupations"] = string(s.deps.Occupations.State())
	}
	if s.deps.Ready != nil {
		if err := s.deps.Ready(r.Context()); err != nil {
			status["status"] = "unavailable"
			status["error"] = err.Error()
			writeJSON(w, http.StatusServiceUnavailable, status)
			return
		}
	}
	writeJSON(w, http.StatusOK, status)
}

// authedUser resolves the request's bearer token to a user.
func (s *Server) authedUser(r *http.Request) (auth.User, error) {
	return s.deps.Auth.UserForToken(bearerToken(r))
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(h, "Bearer "); ok {
		return token
	}
	return r.URL.Query().Get("token")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
