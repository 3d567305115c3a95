package advisor

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nextstep-ai/guide-server/internal/ai"
)

// ErrSessionNotFound is returned when a mentor session does not exist.
var ErrSessionNotFound = errors.New("mentor session not found")

// MentorMessage is a single message in a mentor chat session.
type MentorMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// MentorSession is one chat session, seeded with the student's profile
// summary.
type MentorSession struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	ProfileSummary string          `json:"profile_summary"`
	Messages       []MentorMessage `json:"messages"`
	StartedAt      time.Time       `json:"started_at"`
}

// MentorStore persists mentor chat sessions and their history.
type MentorStore interface {
	Create(s MentorSession) (string, error)
	Get(id string) (*MentorSession, error)
	AddMessage(sessionID string, msg MentorMessage) error
}

// MemoryMentorStore is an in-memory MentorStore.
type MemoryMentorStore struct {
	sessions map[string]*MentorSession
	mu       sync.RWMutex
}

// NewMemoryMentorStore creates an empty in-memory session store.
func NewMemoryMentorStore() *MemoryMentorStore {
	return &MemoryMentorStore{
		sessions: make(map[string]*MentorSession),
	}
}

func (s *MemoryMentorStore) Create(sess MentorSession) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := newSessionID()
	sess.ID = id
	sess.StartedAt = time.Now()
	if sess.Messages == nil {
		sess.Messages = []MentorMessage{}
	}
	s.sessions[id] = &sess
	return id, nil
}

func (s *MemoryMentorStore) Get(id string) (*MentorSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return sess, nil
}

func (s *MemoryMentorStore) AddMessage(sessionID string, msg MentorMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	sess.Messages = append(sess.Messages, msg)
	return nil
}

func newSessionID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return fmt.Sprintf("%x", b)
}

// Mentor runs the streamed chat with the NextStep mentor persona.
type Mentor struct {
	router *ai.Router
	store  MentorStore
}

// NewMentor creates a Mentor over a provider router and session store.
func NewMentor(router *ai.Router, store MentorStore) *Mentor {
	return &Mentor{router: router, store: store}
}

// StartSession opens a chat session seeded with the profile summary.
func (m *Mentor) StartSession(userID, profileSummary string) (*MentorSession, error) {
	if profileSummary == "" {
		return nil, fmt.Errorf("profile summary is empty")
	}
	id, err := m.store.Create(MentorSession{
		UserID:         userID,
		ProfileSummary: profileSummary,
	})
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return m.store.Get(id)
}

// Session returns a chat session by ID.
func (m *Mentor) Session(id string) (*MentorSession, error) {
	return m.store.Get(id)
}

// Send records the student's message and streams the mentor's reply. The
// full reply is appended to the session history once the stream ends.
func (m *Mentor) Send(ctx context.Context, sessionID, text string) (<-chan ai.StreamChunk, error) {
	sess, err := m.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	messages := make([]ai.Message, 0, len(sess.Messages)+2)
	messages = append(messages, ai.Message{Role: "system", Content: mentorSystemPrompt(sess.ProfileSummary)})
	for _, msg := range sess.Messages {
		messages = append(messages, ai.Message{Role: msg.Role, Content: msg.Content})
	}
	messages = append(messages, ai.Message{Role: "user", Content: text})

	if err := m.store.AddMessage(sessionID, MentorMessage{Role: "user", Content: text}); err != nil {
		return nil, err
	}

	ch, err := m.router.StreamComplete(ctx, ai.CompletionRequest{
		Messages:    messages,
		Temperature: 0.7,
		Task:        ai.TaskMentor,
	})
	if err != nil {
		return nil, err
	}

	out := make(chan ai.StreamChunk)
	go func() {
		defer close(out)
		var reply []byte
		for chunk := range ch {
			if chunk.Error == nil {
				reply = append(reply, chunk.Content...)
			}
			select {
			case out <- chunk:
			case <-ctx.Done():
				return
			}
		}
		if len(reply) > 0 {
			m.store.AddMessage(sessionID, MentorMessage{Role: "assistant", Content: string(reply)})
		}
	}()
	return out, nil
}
