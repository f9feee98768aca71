package viewstate

import (
	"sync"
	"time"
)

type entry struct {
	state    State
	lastSeen time.Time
}

// Store keeps the latest snapshot per session.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]entry
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]entry),
		now:      time.Now,
	}
}

// Get returns the session's snapshot, or Initial for an unknown session.
// Reading a known session counts as activity for Sweep.
func (s *Store) Get(id string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok {
		return Initial()
	}
	e.lastSeen = s.now()
	s.sessions[id] = e
	return e.state
}

// Update applies fn to the session's snapshot and stores the result.
func (s *Store) Update(id string, fn func(State) State) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := Initial()
	if e, ok := s.sessions[id]; ok {
		cur = e.state
	}
	next := fn(cur)
	s.sessions[id] = entry{state: next, lastSeen: s.now()}
	return next
}

// Sweep drops sessions idle for longer than maxIdle and returns how many were
// removed.
func (s *Store) Sweep(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, e := range s.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
