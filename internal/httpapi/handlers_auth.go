package httpapi

import (
	"errors"
	"net/http"

	"github.com/nextstep-ai/guide-server/internal/auth"
)

func (s *Server) handleRequestOTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mobile string `json:"mobile"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	msg, err := s.deps.Auth.RequestOTP(req.Mobile)
	if errors.Is(err, auth.ErrInvalidMobile) {
		writeError(w, http.StatusBadRequest, "Invalid mobile number format.")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not issue OTP")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": msg})
}

func (s *Server) handleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mobile string `json:"mobile"`
		OTP    string `json:"otp"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess, err := s.deps.Auth.VerifyOTP(req.Mobile, req.OTP)
	if errors.Is(err, auth.ErrInvalidOTP) {
		writeError(w, http.StatusUnauthorized, "Invalid OTP. Please try again.")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if user, err := s.authedUser(r); err == nil {
		s.clearPhase(user.ID)
	}
	if err := s.deps.Auth.Logout(bearerToken(r)); err != nil {
		writeError(w, http.StatusInternalServerError, "logout failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user, err := s.authedUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}
	writeJSON(w, http.StatusOK, user)
}
