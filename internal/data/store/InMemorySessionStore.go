package store

import (
	"context"
	"sync"

	"github.com/akurella/DeckAPI/internal/viewer"
)

type InMemorySessionStore struct {
	mu       *sync.RWMutex
	sessions map[string]viewer.Session
}

func InitInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{
		mu:       new(sync.RWMutex),
		sessions: make(map[string]viewer.Session),
	}
}

func (s *InMemorySessionStore) SaveSession(ctx context.Context, session viewer.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Id] = session
	return nil
}

func (s *InMemorySessionStore) GetSession(ctx context.Context, id string) (viewer.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, found := s.sessions[id]
	return session, found
}

func (s *InMemorySessionStore) DeleteSession(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
