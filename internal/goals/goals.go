// Package goals manages user-defined personal goals, typically created
// from a career or stream suggestion on the results screen.
package goals

import (
	"crypto/rand"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

// ErrNotFound is returned when a goal does not exist or belongs to
// another user.
var ErrNotFound = errors.New("goal not found")

// Goal is a single user goal. RelatedTo optionally names the suggestion
// the goal was created from.
type Goal struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Text        string    `json:"text"`
	RelatedTo   string    `json:"relatedTo,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	IsCompleted bool      `json:"isCompleted"`
}

// Store persists user goals. All mutations are scoped to the owning user.
type Store interface {
	// ListByUser returns the user's goals, newest first.
	ListByUser(userID string) ([]Goal, error)

	// Add creates a new goal for the user.
	Add(userID, text, relatedTo string) (Goal, error)

	// Update replaces the text, relation, and completion state of the
	// user's goal. Returns ErrNotFound if the goal does not exist or
	// belongs to another user.
	Update(goal Goal) (Goal, error)

	// Delete removes the user's goal. Returns ErrNotFound if the goal
	// does not exist or belongs to another user.
	Delete(userID, goalID string) error
}

// MemoryStore is an in-memory Store for development and tests.
type MemoryStore struct {
	mu    sync.RWMutex
	goals map[string]Goal
}

// NewMemoryStore creates an empty in-memory goal store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{goals: make(map[string]Goal)}
}

// ListByUser returns the user's goals, newest first.
func (s *MemoryStore) ListByUser(userID string) ([]Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Goal, 0)
	for _, g := range s.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// Add creates a new goal for the user.
func (s *MemoryStore) Add(userID, text, relatedTo string) (Goal, error) {
	if userID == "" {
		return Goal{}, fmt.Errorf("user ID is required")
	}
	if text == "" {
		return Goal{}, fmt.Errorf("goal text is required")
	}

	g := Goal{
		ID:        newGoalID(),
		UserID:    userID,
		Text:      text,
		RelatedTo: relatedTo,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.goals[g.ID] = g
	s.mu.Unlock()
	return g, nil
}

// Update replaces the text, relation, and completion state of the user's goal.
func (s *MemoryStore) Update(goal Goal) (Goal, error) {
	if goal.Text == "" {
		return Goal{}, fmt.Errorf("goal text is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.goals[goal.ID]
	if !ok || existing.UserID != goal.UserID {
		return Goal{}, ErrNotFound
	}

	existing.Text = goal.Text
	existing.RelatedTo = goal.RelatedTo
	existing.IsCompleted = goal.IsCompleted
	s.goals[existing.ID] = existing
	return existing, nil
}

// Delete removes the user's goal.
func (s *MemoryStore) Delete(userID, goalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.goals[goalID]
	if !ok || existing.UserID != userID {
		return ErrNotFound
	}
	delete(s.goals, goalID)
	return nil
}

func newGoalID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return fmt.Sprintf("%x", b)
}
