package state

import (
	"fmt"
	"sync"
	"time"
)

// degradedThreshold is the number of consecutive failures after which the
// backend is reported as degraded.
const degradedThreshold = 2

// Snapshot describes recent completion backend outcomes.
type Snapshot struct {
	Backend             string
	Requests            int
	Failures            int
	ConsecutiveFailures int
	LastLatency         time.Duration
	LastError           error
	LastUpdated         time.Time
}

// IsDegraded returns true when the backend has failed several times in a row.
func (s Snapshot) IsDegraded() bool {
	return s.ConsecutiveFailures >= degradedThreshold
}

// Store coordinates concurrent updates from completion calls running off the
// UI goroutine.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// NewStore returns a store labelled with the backend name.
func NewStore(backend string) *Store {
	return &Store{snapshot: Snapshot{Backend: backend}}
}

// Record stores the outcome of one completion call. When err is non-nil the
// failure counters advance; a success resets the consecutive count.
func (s *Store) Record(latency time.Duration, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Requests++
	s.snapshot.LastLatency = latency
	s.snapshot.LastUpdated = time.Now()

	if err != nil {
		s.snapshot.Failures++
		s.snapshot.ConsecutiveFailures++
		s.snapshot.LastError = err
		return
	}
	s.snapshot.ConsecutiveFailures = 0
	s.snapshot.LastError = nil
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
