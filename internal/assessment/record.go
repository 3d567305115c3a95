package assessment

import (
	"crypto/rand"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

// ErrNotFound is returned when a record id resolves to nothing.
var ErrNotFound = errors.New("assessment record not found")

// Record is one stored assessment run. Records are immutable once saved.
type Record struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	AssessmentName string    `json:"assessmentName,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	Result
}

// RecordStore persists assessment records.
type RecordStore interface {
	Save(rec Record) (Record, error)
	ListByUser(userID string) ([]Record, error)
	GetByID(id string) (Record, error)
}

// MemoryRecordStore is an in-memory RecordStore for tests and
// database-less deployments.
type MemoryRecordStore struct {
	records map[string]Record
	mu      sync.RWMutex
}

// NewMemoryRecordStore creates an empty in-memory record store.
func NewMemoryRecordStore() *MemoryRecordStore {
	return &MemoryRecordStore{
		records: make(map[string]Record),
	}
}

func (s *MemoryRecordStore) Save(rec Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.UserID == "" {
		return Record{}, fmt.Errorf("user id is required")
	}
	rec.ID = generateID()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	s.records[rec.ID] = rec
	return rec, nil
}

// ListByUser returns the user's records newest first.
func (s *MemoryRecordStore) ListByUser(userID string) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []Record{}
	for _, rec := range s.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryRecordStore) GetByID(id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

func generateID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return fmt.Sprintf("%x", b)
}
