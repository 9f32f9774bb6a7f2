// Package session keeps per-browser student session state (role, grade,
// target exam) outside the scoring engine.
package session

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"
)

// ErrNotFound is returned when a session does not exist or has expired.
var ErrNotFound = errors.New("session not found")

// Role is the kind of user that owns a session.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Session is the state the UI keeps between page loads.
type Session struct {
	Role       Role      `json:"role"`
	Username   string    `json:"username"`
	Grade      int       `json:"grade,omitempty"`
	TargetExam string    `json:"target_exam,omitempty"`
	Category   string    `json:"category,omitempty"`
	WeakTopics []string  `json:"weak_topics,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Store is a key-value store of sessions.
type Store interface {
	Get(ctx context.Context, id string) (Session, error)
	Set(ctx context.Context, id string, s Session) error
	Clear(ctx context.Context, id string) error
}

type memoryEntry struct {
	session   Session
	expiresAt time.Time
}

// MemoryStore is an in-memory Store with per-entry expiry.
type MemoryStore struct {
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]memoryEntry
	mu       sync.RWMutex
}

// NewMemoryStore creates an in-memory store. A zero ttl never expires.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]memoryEntry),
	}
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// Get returns the session for id. An expired entry is deleted.
func (s *MemoryStore) Get(_ context.Context, id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if ok && e.expired(s.now()) {
		delete(s.sessions, id)
		ok = false
	}
	if !ok {
		return Session{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	sess := e.session
	sess.WeakTopics = slices.Clone(sess.WeakTopics)
	return sess, nil
}

func (s *MemoryStore) Set(_ context.Context, id string, sess Session) error {
	if id == "" {
		return fmt.Errorf("session id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, e := range s.sessions {
		if e.expired(now) {
			delete(s.sessions, key)
		}
	}

	sess.UpdatedAt = now
	sess.WeakTopics = slices.Clone(sess.WeakTopics)
	e := memoryEntry{session: sess}
	if s.ttl > 0 {
		e.expiresAt = now.Add(s.ttl)
	}
	s.sessions[id] = e
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
