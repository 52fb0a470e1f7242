package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/sbilibin2017/mundo-divertido/internal/logger"
	"github.com/sbilibin2017/mundo-divertido/internal/models"
)

// MemorySessionStore keeps sessions in process memory. Expired entries
// are hidden on read and removed by Prune.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]models.Session
	now      func() time.Time
}

// NewMemorySessionStore creates an empty session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]models.Session),
		now:      time.Now,
	}
}

// Save stores or replaces a session.
func (s *MemorySessionStore) Save(ctx context.Context, sess *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sess.ID] = *sess
	return nil
}

// Get returns the session with id, or nil when absent or expired.
func (s *MemorySessionStore) Get(ctx context.Context, id string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	if sess.Expired(s.now()) {
		delete(s.sessions, id)
		return nil, nil
	}
	return &sess, nil
}

// Delete removes the session with id. Unknown ids are ignored.
func (s *MemorySessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

// Prune removes every expired session and returns how many were removed.
func (s *MemorySessionStore) Prune() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, sess := range s.sessions {
		if sess.Expired(now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// StartPruner calls Prune every interval until ctx is done.
func (s *MemorySessionStore) StartPruner(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := s.Prune(); n > 0 {
					logger.Log.Infow("expired sessions pruned", "count", n)
				}
			}
		}
	}()
}
