package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/akurella/DeckAPI/internal/config"
	"github.com/akurella/DeckAPI/internal/data/redisStore"
	"github.com/akurella/DeckAPI/internal/domain/deckModel"
	"github.com/akurella/DeckAPI/pkg/logger_i"
)

// key layout: deck:{id} metadata, deck:{id}:page:{n} PNG bytes,
// deck:{id}:original source document bytes
type RedisDeckStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisDeckStore(ctx context.Context) *RedisDeckStore {
	inner := redisStore.GetRedisStore(ctx, config.RedisDeckStore)
	if inner == nil {
		return nil
	}
	return &RedisDeckStore{
		store:  inner,
		logger: logger_i.NewLogger("DeckStore"),
	}
}

func deckKey(deckId string) string { return "deck:" + deckId }

func pageKey(deckId string, page int) string {
	return fmt.Sprintf("deck:%s:page:%d", deckId, page)
}

func originalKey(deckId string) string { return "deck:" + deckId + ":original" }

func (s *RedisDeckStore) SaveDeck(ctx context.Context, deck deckModel.Deck) error {
	data, err := json.Marshal(deck)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, deckKey(deck.Id), data, config.RedisDeckStoreTTL)
}

func (s *RedisDeckStore) GetDeck(ctx context.Context, deckId string) (deckModel.Deck, bool) {
	var deck deckModel.Deck
	val, err := s.store.Get(ctx, deckKey(deckId))
	if err != nil {
		return deck, false
	}
	if err := json.Unmarshal([]byte(val), &deck); err != nil {
		return deck, false
	}
	return deck, true
}

func (s *RedisDeckStore) SavePageImage(ctx context.Context, deckId string, page int, png []byte) error {
	return s.store.Set(ctx, pageKey(deckId, page), png, config.RedisDeckStoreTTL)
}

func (s *RedisDeckStore) GetPageImage(ctx context.Context, deckId string, page int) ([]byte, bool) {
	data, err := s.store.GetBytes(ctx, pageKey(deckId, page))
	if err != nil {
		return nil, false
	}
	return data, true
}

func (s *RedisDeckStore) SaveOriginal(ctx context.Context, deckId string, data []byte) error {
	return s.store.Set(ctx, originalKey(deckId), data, config.RedisDeckStoreTTL)
}

func (s *RedisDeckStore) GetOriginal(ctx context.Context, deckId string) ([]byte, bool) {
	data, err := s.store.GetBytes(ctx, originalKey(deckId))
	if err != nil {
		return nil, false
	}
	return data, true
}

func (s *RedisDeckStore) DeleteDeck(ctx context.Context, deckId string) {
	keys, err := s.store.Keys(ctx, deckKey(deckId)+"*")
	if err != nil {
		s.logger.Error("Error listing deck keys", "deckId", deckId, "err", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := s.store.Del(ctx, keys...); err != nil {
		s.logger.Error("Error deleting deck", "deckId", deckId, "err", err)
	}
}

func TestDeckStore(store *redisStore.Store) *RedisDeckStore {
	return &RedisDeckStore{
		store:  store,
		logger: logger_i.NewLogger("test deck store"),
	}
}
