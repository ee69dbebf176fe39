// Package session keeps per-user seat-map editing state between HTTP
// requests.  The seating engine works on plain values; this store is the
// caller-side home for those values, keyed by who is editing which vehicle
// unit of which trip.  Sessions are in-memory only: a restart simply drops
// in-progress selections, never committed bookings.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/seating"
)

// SeatSession is the editing state of one (user, trip, unit) combination.
type SeatSession struct {
	Selection  seating.SelectionState
	Assignment seating.AssignmentState
	touchedAt  time.Time
}

// Store is a mutex-guarded session map with TTL-based eviction.  Handlers
// load a session, apply engine transitions and store the result back; the
// engine itself never sees the lock.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*SeatSession
	ttl      time.Duration
}

// NewStore creates a session store.  Sessions idle longer than ttl are
// dropped lazily on access; ttl <= 0 disables eviction.
func NewStore(ttl time.Duration) *Store {
	return &Store{sessions: make(map[string]*SeatSession), ttl: ttl}
}

func key(userID, tripID uint64, busIndex int) string {
	return fmt.Sprintf("%d:%d:%d", userID, tripID, busIndex)
}

// Get returns the session for the given scope, creating an empty one with
// the supplied mode and cap when none exists.
func (s *Store) Get(userID, tripID uint64, busIndex int, mode seating.Mode, maxSelection int) *SeatSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictStale()

	k := key(userID, tripID, busIndex)
	sess, ok := s.sessions[k]
	if !ok {
		sess = &SeatSession{Selection: seating.NewSelection(mode, maxSelection)}
		s.sessions[k] = sess
	}
	sess.touchedAt = time.Now()
	return sess
}

// Put stores the session back after handlers applied transitions.
func (s *Store) Put(userID, tripID uint64, busIndex int, sess *SeatSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess.touchedAt = time.Now()
	s.sessions[key(userID, tripID, busIndex)] = sess
}

// Drop removes a session, e.g. after a committed save.
func (s *Store) Drop(userID, tripID uint64, busIndex int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, key(userID, tripID, busIndex))
}

// evictStale removes idle sessions.  Caller holds the lock.
func (s *Store) evictStale() {
	if s.ttl <= 0 {
		return
	}
	cutoff := time.Now().Add(-s.ttl)
	for k, sess := range s.sessions {
		if sess.touchedAt.Before(cutoff) {
			delete(s.sessions, k)
		}
	}
}
