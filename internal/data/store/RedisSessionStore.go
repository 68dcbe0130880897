package store

import (
	"context"
	"encoding/json"

	"github.com/akurella/DeckAPI/internal/config"
	"github.com/akurella/DeckAPI/internal/data/redisStore"
	"github.com/akurella/DeckAPI/internal/viewer"
	"github.com/akurella/DeckAPI/pkg/logger_i"
)

type RedisSessionStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisSessionStore(ctx context.Context) *RedisSessionStore {
	inner := redisStore.GetRedisStore(ctx, config.RedisSessionStore)
	if inner == nil {
		return nil
	}
	return &RedisSessionStore{
		store:  inner,
		logger: logger_i.NewLogger("SessionStore"),
	}
}

func sessionKey(id string) string { return "viewer:" + id }

func (s *RedisSessionStore) SaveSession(ctx context.Context, session viewer.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, sessionKey(session.Id), data, config.RedisSessionStoreTTL)
}

func (s *RedisSessionStore) GetSession(ctx context.Context, id string) (viewer.Session, bool) {
	var session viewer.Session
	val, err := s.store.Get(ctx, sessionKey(id))
	if err != nil {
		return session, false
	}
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return session, false
	}
	return session, true
}

func (s *RedisSessionStore) DeleteSession(ctx context.Context, id string) {
	if err := s.store.Del(ctx, sessionKey(id)); err != nil {
		s.logger.Error("Error deleting session", "id", id, "err", err)
	}
}

func TestSessionStore(store *redisStore.Store) *RedisSessionStore {
	return &RedisSessionStore{
		store:  store,
		logger: logger_i.NewLogger("test session store"),
	}
}
