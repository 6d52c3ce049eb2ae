package state

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Closer is implemented by session payloads that own timers or goroutines
type Closer interface {
	Close()
}

type entry[T Closer] struct {
	value    T
	lastSeen time.Time
}

// Sessions keeps one payload per visitor ID and expires idle ones
type Sessions[T Closer] struct {
	mu      sync.Mutex
	entries map[string]*entry[T]
	newFn   func() T
	ttl     time.Duration
	now     func() time.Time
}

// NewSessions creates a registry that builds payloads with newFn
func NewSessions[T Closer](ttl time.Duration, newFn func() T) *Sessions[T] {
	return &Sessions[T]{
		entries: make(map[string]*entry[T]),
		newFn:   newFn,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the payload for id, creating a new session when id is empty,
// malformed, or expired. The returned id is the one the caller should keep.
func (s *Sessions[T]) Get(id string) (T, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if _, err := uuid.Parse(id); err == nil {
		if e, ok := s.entries[id]; ok && now.Sub(e.lastSeen) < s.ttl {
			e.lastSeen = now
			return e.value, id, false
		}
	}

	id = uuid.NewString()
	e := &entry[T]{value: s.newFn(), lastSeen: now}
	s.entries[id] = e
	return e.value, id, true
}

// Len returns the number of live sessions
func (s *Sessions[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Sweep closes and removes sessions idle for longer than the TTL
func (s *Sessions[T]) Sweep() int {
	s.mu.Lock()
	now := s.now()
	var expired []T
	for id, e := range s.entries {
		if now.Sub(e.lastSeen) >= s.ttl {
			expired = append(expired, e.value)
			delete(s.entries, id)
		}
	}
	s.mu.Unlock()

	for _, v := range expired {
		v.Close()
	}
	return len(expired)
}

// Run sweeps every interval until ctx is done, then closes all sessions
func (s *Sessions[T]) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.Close()
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// Close closes every session
func (s *Sessions[T]) Close() {
	s.mu.Lock()
	all := s.entries
	s.entries = make(map[string]*entry[T])
	s.mu.Unlock()

	for _, e := range all {
		e.value.Close()
	}
}
