package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type record struct {
	userID    int64
	expiresAt time.Time
}

// MemoryStore keeps sessions in a mutex-guarded map. Used in tests and as a
// single-process fallback; state does not survive a restart.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]record
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]record),
		now:      time.Now,
	}
}

// NewMemoryStoreWithClock injects a clock for expiry tests.
func NewMemoryStoreWithClock(now func() time.Time) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]record),
		now:      now,
	}
}

func (s *MemoryStore) Create(ctx context.Context, userID int64) (string, error) {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = record{userID: userID, expiresAt: s.now().Add(TTL)}
	s.mu.Unlock()
	return id, nil
}

func (s *MemoryStore) Resolve(ctx context.Context, sessionID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.sessions[sessionID]
	if !ok {
		return 0, ErrNoSession
	}
	if !s.now().Before(rec.expiresAt) {
		delete(s.sessions, sessionID)
		return 0, ErrNoSession
	}
	return rec.userID, nil
}

func (s *MemoryStore) Destroy(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) PurgeExpired(ctx context.Context) error {
	now := s.now()
	s.mu.Lock()
	for id, rec := range s.sessions {
		if !now.Before(rec.expiresAt) {
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()
	return nil
}
