package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type entry struct {
	ctrl     *Controller
	lastSeen time.Time
}

// Store keeps one Controller per browser session
type Store struct {
	mu       sync.Mutex
	sessions map[string]*entry
	lookup   Lookup
	idle     time.Duration
	now      func() time.Time
}

// NewStore creates a store whose sessions expire after idle without use.
// A zero idle keeps sessions forever.
func NewStore(lookup Lookup, idle time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*entry),
		lookup:   lookup,
		idle:     idle,
		now:      time.Now,
	}
}

// Get returns the controller for id and marks it as used
func (s *Store) Get(id string) (*Controller, bool) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = s.now()
	return e.ctrl, true
}

// Create starts a new session in the browsing state
func (s *Store) Create() (string, *Controller) {
	id := uuid.NewString()
	ctrl := NewController(s.lookup)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &entry{ctrl: ctrl, lastSeen: s.now()}
	return id, ctrl
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than the store's timeout and
// returns how many were removed
func (s *Store) Sweep() int {
	if s.idle <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.idle)
	removed := 0
	for id, e := range s.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is done
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
