package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// GridSession holds one browser's grid state. All reads and transitions go
// through the owning ScheduleService, which serializes them on mu.
type GridSession struct {
	ID uuid.UUID

	mu        sync.Mutex
	state     GridState
	touchedAt time.Time
}

// Snapshot returns the current state for rendering. The contained slices are
// never mutated in place after publication, so sharing them is safe.
func (s *GridSession) Snapshot() GridState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *GridSession) touch(now time.Time) {
	s.mu.Lock()
	s.touchedAt = now
	s.mu.Unlock()
}

func (s *GridSession) expired(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.touchedAt) > ttl
}
