package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/nextstep-ai/guide-server/internal/platform/cache"
)

// ErrCredentialNotFound is returned when an OTP or session is absent or
// has expired.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialStore holds short-lived login state: pending OTP hashes keyed
// by mobile number and session tokens mapped to user IDs.
type CredentialStore interface {
	// SetOTP stores the OTP hash for a mobile number, replacing any
	// pending one.
	SetOTP(mobile, hash string) error

	// TakeOTP returns the pending OTP hash for a mobile number and
	// removes it. Returns ErrCredentialNotFound if none is pending.
	TakeOTP(mobile string) (string, error)

	// SetSession maps a session token to a user ID.
	SetSession(token, userID string) error

	// GetSession returns the user ID for a session token. Returns
	// ErrCredentialNotFound for unknown or expired tokens.
	GetSession(token string) (string, error)

	// DeleteSession removes a session token. Deleting an absent token
	// is not an error.
	DeleteSession(token string) error
}

type expiringValue struct {
	value   string
	expires time.Time
}

// MemoryCredentialStore is an in-memory CredentialStore for development
// and tests. Expired entries are dropped on access.
type MemoryCredentialStore struct {
	otpTTL     time.Duration
	sessionTTL time.Duration

	mu       sync.Mutex
	otps     map[string]expiringValue
	sessions map[string]expiringValue
}

// NewMemoryCredentialStore creates an in-memory credential store with the
// given lifetimes.
func NewMemoryCredentialStore(otpTTL, sessionTTL time.Duration) *MemoryCredentialStore {
	return &MemoryCredentialStore{
		otpTTL:     otpTTL,
		sessionTTL: sessionTTL,
		otps:       make(map[string]expiringValue),
		sessions:   make(map[string]expiringValue),
	}
}

func (s *MemoryCredentialStore) SetOTP(mobile, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.otps[mobile] = expiringValue{value: hash, expires: time.Now().Add(s.otpTTL)}
	return nil
}

func (s *MemoryCredentialStore) TakeOTP(mobile string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev, ok := s.otps[mobile]
	delete(s.otps, mobile)
	if !ok || time.Now().After(ev.expires) {
		return "", ErrCredentialNotFound
	}
	return ev.value, nil
}

func (s *MemoryCredentialStore) SetSession(token, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = expiringValue{value: userID, expires: time.Now().Add(s.sessionTTL)}
	return nil
}

func (s *MemoryCredentialStore) GetSession(token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev, ok := s.sessions[token]
	if !ok {
		return "", ErrCredentialNotFound
	}
	if time.Now().After(ev.expires) {
		delete(s.sessions, token)
		return "", ErrCredentialNotFound
	}
	return ev.value, nil
}

func (s *MemoryCredentialStore) DeleteSession(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

const (
	otpKeyPrefix     = "auth:otp:"
	sessionKeyPrefix = "auth:session:"
)

// CacheCredentialStore is a Redis-backed CredentialStore. Expiry is
// delegated to key TTLs.
type CacheCredentialStore struct {
	cache      *cache.Cache
	otpTTL     time.Duration
	sessionTTL time.Duration
}

// NewCacheCredentialStore creates a credential store backed by the cache.
func NewCacheCredentialStore(c *cache.Cache, otpTTL, sessionTTL time.Duration) *CacheCredentialStore {
	return &CacheCredentialStore{cache: c, otpTTL: otpTTL, sessionTTL: sessionTTL}
}

func (s *CacheCredentialStore) SetOTP(mobile, hash string) error {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()
	return s.cache.SetJSON(ctx, otpKeyPrefix+mobile, hash, s.otpTTL)
}

func (s *CacheCredentialStore) TakeOTP(mobile string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	var hash string
	err := s.cache.GetJSON(ctx, otpKeyPrefix+mobile, &hash)
	if errors.Is(err, cache.ErrMiss) {
		return "", ErrCredentialNotFound
	}
	if err != nil {
		return "", err
	}
	if err := s.cache.Delete(ctx, otpKeyPrefix+mobile); err != nil {
		return "", err
	}
	return hash, nil
}

func (s *CacheCredentialStore) SetSession(token, userID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()
	return s.cache.SetJSON(ctx, sessionKeyPrefix+token, userID, s.sessionTTL)
}

func (s *CacheCredentialStore) GetSession(token string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	var userID string
	err := s.cache.GetJSON(ctx, sessionKeyPrefix+token, &userID)
	if errors.Is(err, cache.ErrMiss) {
		return "", ErrCredentialNotFound
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

func (s *CacheCredentialStore) DeleteSession(token string) error {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()
	return s.cache.Delete(ctx, sessionKeyPrefix+token)
}
