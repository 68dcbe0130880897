package store_test

import (
	"context"
	"testing"

	"github.com/akurella/DeckAPI/internal/config"
	"github.com/akurella/DeckAPI/internal/data/redisStore"
	"github.com/akurella/DeckAPI/internal/data/store"
	"github.com/akurella/DeckAPI/internal/viewer"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestRedisSessionStore_Lifecycle(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sessionStore := store.TestSessionStore(redisStore.NewTestStore(client))

	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")

	session := viewer.NewSession("sess_42", "deck_42", 1280, 720)
	session.Ready(7)
	session.GoToPage(3)

	t.Run("Save and Get Roundtrip", func(t *testing.T) {
		if err := sessionStore.SaveSession(ctx, session); err != nil {
			t.Fatalf("SaveSession failed: %v", err)
		}
		got, found := sessionStore.GetSession(ctx, "sess_42")
		if !found {
			t.Fatal("Session was saved but not found")
		}
		if got.CurrentPage != 3 || got.TotalPages != 7 {
			t.Errorf("Session mismatch: page=%d total=%d", got.CurrentPage, got.TotalPages)
		}
		if got.DeckId != "deck_42" {
			t.Errorf("DeckId = %q", got.DeckId)
		}
	})

	t.Run("Get Non-Existent Session", func(t *testing.T) {
		if _, found := sessionStore.GetSession(ctx, "ghost"); found {
			t.Error("Expected found=false for non-existent session")
		}
	})

	t.Run("Delete Session", func(t *testing.T) {
		sessionStore.DeleteSession(ctx, "sess_42")
		if _, found := sessionStore.GetSession(ctx, "sess_42"); found {
			t.Error("Session still present after delete")
		}
	})
}
