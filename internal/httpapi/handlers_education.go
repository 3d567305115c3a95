package httpapi

import (
	"net/http"

	"github.com/nextstep-ai/guide-server/internal/education"
)

func (s *Server) handleEducation(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sel, err := s.educationNav.Normalize(education.Selection{
		Curriculum: q.Get("curriculum"),
		Stream:     q.Get("stream"),
		UgOption:   q.Get("ugOption"),
		PgOption:   q.Get("pgOption"),
		PhdOption:  q.Get("phdOption"),
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"selection":   sel,
		"breadcrumbs": s.educationNav.Breadcrumbs(sel),
		"children":    s.educationNav.Children(sel),
	})
}

func (s *Server) handleEducationExams(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"exams": s.deps.Education.Exams()})
}
