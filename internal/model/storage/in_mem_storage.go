package storage

import (
	"context"
	"sync"
	"time"

	"max.ks1230/customs-bot/internal/entity/user"
)

type sessionEntry struct {
	session   user.Session
	expiresAt time.Time
}

// InMemStorage keeps sessions in process memory. Entries older than ttl are
// treated as missing and removed on access; a non-positive ttl never expires.
type InMemStorage struct {
	mu       sync.Mutex
	sessions map[int64]sessionEntry
	ttl      time.Duration
	clock    func() time.Time
}

func NewInMemStorage(ttl time.Duration) *InMemStorage {
	return &InMemStorage{
		sessions: make(map[int64]sessionEntry),
		ttl:      ttl,
		clock:    time.Now,
	}
}

func (s *InMemStorage) GetSession(_ context.Context, userID int64) (user.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[userID]
	if !ok {
		return user.Session{}, nil
	}
	if s.ttl > 0 && !s.clock().Before(entry.expiresAt) {
		delete(s.sessions, userID)
		return user.Session{}, nil
	}
	return entry.session, nil
}

func (s *InMemStorage) SaveSession(_ context.Context, userID int64, session user.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = sessionEntry{session: session, expiresAt: s.clock().Add(s.ttl)}
	return nil
}

func (s *InMemStorage) DropSession(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
	return nil
}
