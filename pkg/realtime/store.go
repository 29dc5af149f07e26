package realtime

import (
	"context"
	"sync"
	"time"
)

// Session holds per-visitor state and the broadcaster its open tabs listen on.
type Session[T any, E any] struct {
	ID       string
	State    T
	LastSeen time.Time
	hub      *Broadcaster[E]
}

// SessionStore keeps sessions in memory and expires idle ones.
type SessionStore[T any, E any] struct {
	mu       sync.RWMutex
	sessions map[string]*Session[T, E]
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionStore creates an empty store. Sessions idle for longer than ttl
// with no subscribers are removed by Sweep; ttl <= 0 disables expiry.
func NewSessionStore[T any, E any](ttl time.Duration) *SessionStore[T, E] {
	return &SessionStore[T, E]{
		sessions: make(map[string]*Session[T, E]),
		ttl:      ttl,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// SetClock replaces the store's time source.
func (s *SessionStore[T, E]) SetClock(now func() time.Time) {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
}

// Load returns a copy of the session state, creating it with init when the
// id is unknown.
func (s *SessionStore[T, E]) Load(id string, init func() T) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureLocked(id, init).State
}

// Get returns the session state if it exists.
func (s *SessionStore[T, E]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		var zero T
		return zero, false
	}
	return sess.State, true
}

// Update applies fn to the session state under the store lock and returns
// the new state.
func (s *SessionStore[T, E]) Update(id string, init func() T, fn func(*T)) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.ensureLocked(id, init)
	fn(&sess.State)
	return sess.State
}

// Publish notifies the session's subscribers.
func (s *SessionStore[T, E]) Publish(id string, event E) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return
	}
	sess.hub.Publish(event)
}

// Subscribe listens for the session's events, creating the session with
// init if needed. The returned func releases the subscription.
func (s *SessionStore[T, E]) Subscribe(id string, init func() T) (<-chan E, func()) {
	s.mu.Lock()
	hub := s.ensureLocked(id, init).hub
	s.mu.Unlock()
	return hub.Subscribe()
}

// Len returns the number of sessions.
func (s *SessionStore[T, E]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep drops idle sessions that nobody is subscribed to and returns how
// many were removed.
func (s *SessionStore[T, E]) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, sess := range s.sessions {
		if sess.LastSeen.Before(cutoff) && sess.hub.Len() == 0 {
			delete(s.sessions, id)
			sess.hub.Close()
			removed++
		}
	}
	return removed
}

// RunJanitor sweeps every interval until ctx is done.
func (s *SessionStore[T, E]) RunJanitor(ctx context.Context, interval time.Duration) {
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

func (s *SessionStore[T, E]) ensureLocked(id string, init func() T) *Session[T, E] {
	sess, ok := s.sessions[id]
	if !ok {
		sess = &Session[T, E]{ID: id, hub: NewBroadcaster[E]()}
		if init != nil {
			sess.State = init()
		}
		s.sessions[id] = sess
	}
	sess.LastSeen = s.now()
	return sess
}
