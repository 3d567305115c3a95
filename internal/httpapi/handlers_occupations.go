package httpapi

import (
	"net/http"

	"github.com/nextstep-ai/guide-server/internal/occupations"
)

// occupationIndex answers 503 to the client while the reference data is
// loading or after its bootstrap failed.
func (s *Server) occupationIndex(w http.ResponseWriter) (*occupations.Index, bool) {
	idx, err := s.deps.Occupations.Index()
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "occupation data is not available")
		return nil, false
	}
	return idx, true
}

func (s *Server) handleOccupations(w http.ResponseWriter, r *http.Request) {
	idx, ok := s.occupationIndex(w)
	if !ok {
		return
	}

	q := r.URL.Query()
	nav := occupations.NewNavigator(idx)
	sel, err := nav.Normalize(occupations.Selection{
		Major:    q.Get("major"),
		SubMajor: q.Get("subMajor"),
		Minor:    q.Get("minor"),
		Unit:     q.Get("unit"),
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"selection":   sel,
		"breadcrumbs": nav.Breadcrumbs(sel),
		"children":    nav.Children(sel),
	})
}

func (s *Server) handleOccupationSearch(w http.ResponseWriter, r *http.Request) {
	idx, ok := s.occupationIndex(w)
	if !ok {
		return
	}

	units := occupations.SearchUnits(idx, r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, map[string]any{"unitGroups": units})
}

func (s *Server) handleOccupationPath(w http.ResponseWriter, r *http.Request) {
	idx, ok := s.occupationIndex(w)
	if !ok {
		return
	}

	nav := occupations.NewNavigator(idx)
	sel, err := nav.ResolveUnit(r.PathValue("code"))
	if err != nil {
		writeError(w, http.StatusNotFound, "occupation not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"selection":   sel,
		"breadcrumbs": nav.Breadcrumbs(sel),
	})
}

func (s *Server) handleDeepDive(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authedUser(r); err != nil {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}

	idx, ok := s.occupationIndex(w)
	if !ok {
		return
	}

	var req struct {
		Code string `json:"code"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	unit, found := idx.Unit(req.Code)
	if !found {
		writeError(w, http.StatusNotFound, "occupation not found")
		return
	}

	dive, err := s.deps.Advisor.DeepDive(r.Context(), unit.Title, unit.Code)
	if err != nil {
		writeError(w, http.StatusBadGateway, "occupation details are not available right now")
		return
	}
	writeJSON(w, http.StatusOK, dive)
}
