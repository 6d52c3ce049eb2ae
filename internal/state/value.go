// Package state holds the per-visitor UI state shared across page sections.
//
// Each shared value is a Value: writers replace it wholesale, readers
// either poll Get or Subscribe to receive the newest value.
package state

import "sync"

// Value is a last-write-wins container with many subscribers
type Value[T any] struct {
	mu     sync.RWMutex
	v      T
	subs   map[int]chan T
	nextID int
}

// NewValue returns a container holding initial
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{v: initial, subs: make(map[int]chan T)}
}

// Get returns the current value
func (s *Value[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v
}

// Set replaces the value and notifies subscribers
func (s *Value[T]) Set(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v = v
	for _, ch := range s.subs {
		publish(ch, v)
	}
}

// Update applies fn to the current value under the write lock
func (s *Value[T]) Update(fn func(T) T) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v = fn(s.v)
	for _, ch := range s.subs {
		publish(ch, s.v)
	}
	return s.v
}

// Subscribe returns a channel that always holds the newest value not yet
// received. The channel is primed with the current value. Call cancel to
// unsubscribe; the channel is closed afterwards.
func (s *Value[T]) Subscribe() (<-chan T, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan T, 1)
	ch <- s.v
	id := s.nextID
	s.nextID++
	s.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

// Subscribers returns the number of live subscriptions
func (s *Value[T]) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}

// publish replaces any unread value so slow readers never block writers.
// Callers hold the write lock, so nothing else sends on ch concurrently.
func publish[T any](ch chan T, v T) {
	select {
	case <-ch:
	default:
	}
	ch <- v
}
