// Package auth implements the simulated OTP login flow and session
// management. No SMS gateway is involved: a fixed OTP is issued and its
// bcrypt hash held until verified.
package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// User is a registered account, keyed by mobile number.
type User struct {
	ID        string    `json:"id"`
	Mobile    string    `json:"mobile"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserStore persists user accounts.
type UserStore interface {
	// GetByMobile returns the user registered with the mobile number.
	GetByMobile(mobile string) (User, error)

	// GetByID returns the user with the given ID.
	GetByID(id string) (User, error)

	// Create registers a new user for the mobile number.
	Create(mobile string) (User, error)
}

// MemoryUserStore is an in-memory UserStore for development and tests.
type MemoryUserStore struct {
	mu       sync.RWMutex
	byID     map[string]User
	byMobile map[string]User
}

// NewMemoryUserStore creates an empty in-memory user store.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		byID:     make(map[string]User),
		byMobile: make(map[string]User),
	}
}

// GetByMobile returns the user registered with the mobile number.
func (s *MemoryUserStore) GetByMobile(mobile string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byMobile[mobile]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}

// GetByID returns the user with the given ID.
func (s *MemoryUserStore) GetByID(id string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}

// Create registers a new user for the mobile number.
func (s *MemoryUserStore) Create(mobile string) (User, error) {
	if mobile == "" {
		return User{}, fmt.Errorf("mobile is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byMobile[mobile]; exists {
		return User{}, fmt.Errorf("user with mobile %s already exists", mobile)
	}

	u := User{
		ID:        generateID(),
		Mobile:    mobile,
		CreatedAt: time.Now(),
	}
	s.byID[u.ID] = u
	s.byMobile[u.Mobile] = u
	return u, nil
}

// All returns every user sorted by creation time, oldest first.
func (s *MemoryUserStore) All() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]User, 0, len(s.byID))
	for _, u := range s.byID {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func generateID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return fmt.Sprintf("%x", b)
}
