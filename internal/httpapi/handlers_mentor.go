package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/nextstep-ai/guide-server/internal/advisor"
	"github.com/nextstep-ai/guide-server/internal/assessment"
)

func (s *Server) handleStartMentorSession(w http.ResponseWriter, r *http.Request) {
	user, err := s.authedUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}

	var req struct {
		RecordID string `json:"recordId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := s.ownedRecord(user.ID, req.RecordID)
	if errors.Is(err, assessment.ErrNotFound) {
		writeError(w, http.StatusNotFound, "assessment record not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not load assessment")
		return
	}

	sess, err := s.deps.Mentor.StartSession(user.ID, rec.Profile.Summary)
	if err != nil {
		writeError(w, http.StatusBadRequest, "assessment has no profile summary")
		return
	}
	writeJSON(w, http.StatusCreated, sess)
}

type mentorInbound struct {
	Text string `json:"text"`
}

type mentorOutbound struct {
	Content string `json:"content,omitempty"`
	Done    bool   `json:"done,omitempty"`
	Error   string `json:"error,omitempty"`
}

// handleMentorWS streams mentor replies over a websocket. Each inbound
// frame is one student message; the reply arrives as a sequence of chunk
// frames terminated by a done frame.
func (s *Server) handleMentorWS(w http.ResponseWriter, r *http.Request) {
	user, err := s.authedUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}

	sessionID := r.PathValue("id")
	sess, err := s.deps.Mentor.Session(sessionID)
	if err != nil || sess.UserID != user.ID {
		writeError(w, http.StatusNotFound, "mentor session not found")
		return
	}

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		slog.Warn("websocket accept failed", "error", err)
		return
	}
	defer conn.CloseNow()

	ctx := r.Context()
	for {
		var in mentorInbound
		if err := wsjson.Read(ctx, conn, &in); err != nil {
			return
		}
		if in.Text == "" {
			wsjson.Write(ctx, conn, mentorOutbound{Error: "message text is required", Done: true})
			continue
		}

		ch, err := s.deps.Mentor.Send(ctx, sessionID, in.Text)
		if err != nil {
			wsjson.Write(ctx, conn, mentorOutbound{Error: mentorErrorMessage(err), Done: true})
			continue
		}
		// Consume the stream to the end even after a failure frame;
		// Mentor.Send records the reply only once its channel settles.
		stopped := false
		broken := false
		for chunk := range ch {
			if stopped {
				continue
			}
			out := mentorOutbound{Content: chunk.Content, Done: chunk.Done}
			if chunk.Error != nil {
				out = mentorOutbound{Error: mentorErrorMessage(chunk.Error), Done: true}
				stopped = true
			}
			if err := wsjson.Write(ctx, conn, out); err != nil {
				stopped = true
				broken = true
			}
		}
		if broken {
			return
		}
	}
}

func mentorErrorMessage(err error) string {
	if errors.Is(err, advisor.ErrSessionNotFound) {
		return "mentor session not found"
	}
	return "the mentor is not available right now"
}
