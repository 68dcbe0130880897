package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/akurella/DeckAPI/internal/domain/deckModel"
)

type InMemoryDeckStore struct {
	mu        *sync.RWMutex
	decks     map[string]deckModel.Deck
	pages     map[string][]byte
	originals map[string][]byte
}

func InitInMemoryDeckStore() *InMemoryDeckStore {
	return &InMemoryDeckStore{
		mu:        new(sync.RWMutex),
		decks:     make(map[string]deckModel.Deck),
		pages:     make(map[string][]byte),
		originals: make(map[string][]byte),
	}
}

func (s *InMemoryDeckStore) SaveDeck(ctx context.Context, deck deckModel.Deck) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decks[deck.Id] = deck
	return nil
}

func (s *InMemoryDeckStore) GetDeck(ctx context.Context, deckId string) (deckModel.Deck, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	deck, found := s.decks[deckId]
	return deck, found
}

func (s *InMemoryDeckStore) SavePageImage(ctx context.Context, deckId string, page int, png []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages[fmt.Sprintf("%s:%d", deckId, page)] = png
	return nil
}

func (s *InMemoryDeckStore) GetPageImage(ctx context.Context, deckId string, page int) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, found := s.pages[fmt.Sprintf("%s:%d", deckId, page)]
	return data, found
}

func (s *InMemoryDeckStore) SaveOriginal(ctx context.Context, deckId string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.originals[deckId] = data
	return nil
}

func (s *InMemoryDeckStore) GetOriginal(ctx context.Context, deckId string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, found := s.originals[deckId]
	return data, found
}

func (s *InMemoryDeckStore) DeleteDeck(ctx context.Context, deckId string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.decks, deckId)
	delete(s.originals, deckId)
	for key := range s.pages {
		if strings.HasPrefix(key, deckId+":") {
			delete(s.pages, key)
		}
	}
}
