package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/nextstep-ai/guide-server/internal/advisor"
	"github.com/nextstep-ai/guide-server/internal/assessment"
)

func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"questions":   assessment.Questions(),
		"likertScale": assessment.LikertScale(),
	})
}

func validateAnswers(answers assessment.Answers) error {
	bank := assessment.Questions()
	for id, value := range answers {
		if _, ok := assessment.QuestionByID(id); !ok {
			return fmt.Errorf("unknown question %q", id)
		}
		if value < 1 || value > 5 {
			return fmt.Errorf("answer for %q out of range: %d", id, value)
		}
	}
	for _, q := range bank {
		if _, ok := answers[q.ID]; !ok {
			return fmt.Errorf("questionnaire incomplete: %q unanswered", q.ID)
		}
	}
	return nil
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	user, err := s.authedUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}

	var req struct {
		AssessmentName string             `json:"assessmentName"`
		Answers        assessment.Answers `json:"answers"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.AssessmentName == "" {
		writeError(w, http.StatusBadRequest, "assessmentName is required")
		return
	}
	if err := validateAnswers(req.Answers); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	record, warnings, err := s.deps.Submissions.Submit(r.Context(), advisor.Submission{
		UserID:         user.ID,
		AssessmentName: req.AssessmentName,
		Answers:        req.Answers,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not save assessment")
		return
	}

	// Per-call shortfalls are logged by the pipeline; the client gets one
	// aggregate warning covering whatever is missing.
	resp := map[string]any{"record": record}
	if len(warnings) > 0 {
		resp["warning"] = submitWarning
	}
	writeJSON(w, http.StatusOK, resp)
}

const submitWarning = "Some insights could not be generated right now. Your results are saved; the missing sections may be retried later."

func (s *Server) handleListRecords(w http.ResponseWriter, r *http.Request) {
	user, err := s.authedUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}

	records, err := s.deps.Submissions.Records().ListByUser(user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not list assessments")
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// ownedRecord loads a record and hides other users' records behind the
// same not-found answer.
func (s *Server) ownedRecord(userID, recordID string) (assessment.Record, error) {
	rec, err := s.deps.Submissions.Records().GetByID(recordID)
	if err != nil {
		return assessment.Record{}, err
	}
	if rec.UserID != userID {
		return assessment.Record{}, assessment.ErrNotFound
	}
	return rec, nil
}

func (s *Server) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	user, err := s.authedUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}

	rec, err := s.ownedRecord(user.ID, r.PathValue("id"))
	if errors.Is(err, assessment.ErrNotFound) {
		writeError(w, http.StatusNotFound, "assessment record not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not load assessment")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	user, err := s.authedUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}

	beforeID := r.URL.Query().Get("before")
	afterID := r.URL.Query().Get("after")
	if beforeID == "" || afterID == "" {
		writeError(w, http.StatusBadRequest, "before and after record IDs are required")
		return
	}

	// Both records must load fully before any comparison is attempted.
	before, err := s.ownedRecord(user.ID, beforeID)
	if err == nil {
		var after assessment.Record
		after, err = s.ownedRecord(user.ID, afterID)
		if err == nil {
			writeJSON(w, http.StatusOK, map[string]any{
				"before":     before,
				"after":      after,
				"comparison": assessment.Compare(before.Profile, after.Profile),
			})
			return
		}
	}
	if errors.Is(err, assessment.ErrNotFound) {
		writeError(w, http.StatusNotFound, "assessment record not found")
		return
	}
	writeError(w, http.StatusInternalServerError, "could not load assessments")
}
