package store_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/akurella/DeckAPI/internal/config"
	"github.com/akurella/DeckAPI/internal/data/redisStore"
	"github.com/akurella/DeckAPI/internal/data/store"
	"github.com/akurella/DeckAPI/internal/domain/deckModel"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestRedisDeckStore_Lifecycle(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	deckStore := store.TestDeckStore(redisStore.NewTestStore(client))

	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")

	testDeck := deckModel.Deck{
		Id:               "deck_xyz",
		DocumentName:     "pitch.pptx",
		TotalPages:       3,
		ConversionMethod: "manual-extraction",
		GeneratedAt:      time.Now().UTC().Truncate(time.Second),
		Pages: []deckModel.PageDescriptor{
			{Index: 1, ExtractedText: "Title", HasText: true},
			{Index: 2, ErrorFlag: true, ErrorMessage: "bad slide"},
			{Index: 3},
		},
	}

	t.Run("Deck Roundtrip", func(t *testing.T) {
		if err := deckStore.SaveDeck(ctx, testDeck); err != nil {
			t.Fatalf("SaveDeck failed: %v", err)
		}
		got, found := deckStore.GetDeck(ctx, testDeck.Id)
		if !found {
			t.Fatal("Deck was saved but not found")
		}
		if got.TotalPages != 3 || len(got.Pages) != 3 {
			t.Errorf("Deck shape mismatch: totalPages=%d pages=%d", got.TotalPages, len(got.Pages))
		}
		if !got.Pages[1].ErrorFlag {
			t.Error("Per-page error flag lost in roundtrip")
		}
	})

	t.Run("Page Image Roundtrip", func(t *testing.T) {
		png := []byte{0x89, 'P', 'N', 'G', 1, 2, 3}
		if err := deckStore.SavePageImage(ctx, testDeck.Id, 1, png); err != nil {
			t.Fatalf("SavePageImage failed: %v", err)
		}
		got, found := deckStore.GetPageImage(ctx, testDeck.Id, 1)
		if !found || !bytes.Equal(got, png) {
			t.Errorf("Page image mismatch, found=%v", found)
		}
		if _, found := deckStore.GetPageImage(ctx, testDeck.Id, 99); found {
			t.Error("Expected found=false for missing page")
		}
	})

	t.Run("Original Roundtrip", func(t *testing.T) {
		original := []byte("PK rest of the pptx")
		if err := deckStore.SaveOriginal(ctx, testDeck.Id, original); err != nil {
			t.Fatalf("SaveOriginal failed: %v", err)
		}
		got, found := deckStore.GetOriginal(ctx, testDeck.Id)
		if !found || !bytes.Equal(got, original) {
			t.Error("Original document mismatch")
		}
	})

	t.Run("DeleteDeck removes everything", func(t *testing.T) {
		deckStore.DeleteDeck(ctx, testDeck.Id)
		if _, found := deckStore.GetDeck(ctx, testDeck.Id); found {
			t.Error("Deck still present after delete")
		}
		if _, found := deckStore.GetPageImage(ctx, testDeck.Id, 1); found {
			t.Error("Page image still present after delete")
		}
		if _, found := deckStore.GetOriginal(ctx, testDeck.Id); found {
			t.Error("Original still present after delete")
		}
	})
}

func TestInMemoryDeckStore(t *testing.T) {
	deckStore := store.InitInMemoryDeckStore()
	ctx := context.Background()

	deck := deckModel.Deck{Id: "mem-deck", TotalPages: 1}
	if err := deckStore.SaveDeck(ctx, deck); err != nil {
		t.Fatalf("SaveDeck failed: %v", err)
	}
	if _, found := deckStore.GetDeck(ctx, "mem-deck"); !found {
		t.Error("Deck not found in memory store")
	}
	deckStore.DeleteDeck(ctx, "mem-deck")
	if _, found := deckStore.GetDeck(ctx, "mem-deck"); found {
		t.Error("Deck survived delete")
	}
}
