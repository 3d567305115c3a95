package occupations

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
)

// State is the explorer's bootstrap state. A failed bootstrap degrades only
// the explorer; the rest of the service keeps working.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateFailed  State = "failed"
)

// Service owns the occupation dataset lifecycle: cache check, first-run
// fetch, parse, index.
type Service struct {
	url    string
	format string
	client *http.Client
	cache  *DatasetCache

	mu    sync.RWMutex
	state State
	idx   *Index
	err   error
}

// NewService creates the service. format is "csv" or "xlsx"; cache may be
// nil.
func NewService(url, format string, client *http.Client, cache *DatasetCache) *Service {
	if client == nil {
		client = http.DefaultClient
	}
	return &Service{
		url:    url,
		format: format,
		client: client,
		cache:  cache,
		state:  StateLoading,
	}
}

// Bootstrap makes the dataset available: the cached copy if present,
// otherwise fetched, parsed, and written back to the cache. Safe to run in
// the background at startup.
func (s *Service) Bootstrap(ctx context.Context) error {
	if d, ok, err := s.cache.Load(ctx); err != nil {
		slog.Warn("occupation dataset cache unavailable", "error", err)
	} else if ok {
		s.setReady(d)
		slog.Info("occupation dataset loaded from cache",
			"majorGroups", len(d.MajorGroups), "unitGroups", len(d.UnitGroups))
		return nil
	}

	d, err := s.fetchAndParse(ctx)
	if err != nil {
		s.setFailed(err)
		return err
	}

	if err := s.cache.Store(ctx, d); err != nil {
		slog.Warn("caching occupation dataset failed", "error", err)
	}
	s.setReady(d)
	slog.Info("occupation dataset ingested",
		"majorGroups", len(d.MajorGroups), "subMajorGroups", len(d.SubMajorGroups),
		"minorGroups", len(d.MinorGroups), "unitGroups", len(d.UnitGroups))
	return nil
}

func (s *Service) fetchAndParse(ctx context.Context) (Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return Dataset{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return Dataset{}, fmt.Errorf("fetch classification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Dataset{}, fmt.Errorf("fetch classification: status %d", resp.StatusCode)
	}

	switch s.format {
	case "xlsx":
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return Dataset{}, fmt.Errorf("read classification: %w", err)
		}
		return ParseXLSX(bytes.NewReader(body))
	default:
		return ParseCSV(resp.Body)
	}
}

func (s *Service) setReady(d Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.idx = NewIndex(d)
	s.state = StateReady
	s.err = nil
}

func (s *Service) setFailed(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateFailed
	s.err = err
}

// State reports the bootstrap state.
func (s *Service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Index returns the dataset index, or an error while loading or after a
// failed bootstrap.
func (s *Service) Index() (*Index, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch s.state {
	case StateReady:
		return s.idx, nil
	case StateFailed:
		return nil, fmt.Errorf("occupation dataset unavailable: %w", s.err)
	default:
		return nil, fmt.Errorf("occupation dataset still loading")
	}
}
