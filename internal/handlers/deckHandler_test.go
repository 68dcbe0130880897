package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akurella/DeckAPI/internal/api"
	"github.com/akurella/DeckAPI/internal/config"
	"github.com/akurella/DeckAPI/internal/data/store"
	"github.com/akurella/DeckAPI/internal/domain/jobModel"
	"github.com/akurella/DeckAPI/internal/job"
	"github.com/akurella/DeckAPI/internal/pptx"
	"github.com/go-chi/chi/v5"
)

var testDecks = store.InitInMemoryDeckStore()

func initTestHandlers() {
	InitJobHandler(&job.Service{
		JobChannel:        make(chan jobModel.Job, 1),
		DispatcherChannel: make(chan bool, 1),
		JobStore:          store.InitInMemoryJobStore(),
		DeckStore:         testDecks,
		SessionStore:      store.InitInMemorySessionStore(),
	})
}

func doPageRequest(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	r.Get("/deck/{id}/page/{page}", GetPageImageHandler)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = req.WithContext(context.WithValue(req.Context(), config.TRACE_ID_KEY, "test-trace"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestGetPageImageHandler(t *testing.T) {
	initTestHandlers()

	png := []byte{0x89, 'P', 'N', 'G', 9, 8, 7}
	if err := testDecks.SavePageImage(context.Background(), "deck-a", 1, png); err != nil {
		t.Fatalf("seeding page image: %v", err)
	}

	t.Run("Raw PNG bytes by default", func(t *testing.T) {
		rec := doPageRequest(t, "/deck/deck-a/page/1")
		if rec.Code != http.StatusOK {
			t.Fatalf("Status = %d, body %s", rec.Code, rec.Body.String())
		}
		if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
			t.Errorf("Content-Type = %q", ct)
		}
		if !bytes.Equal(rec.Body.Bytes(), png) {
			t.Error("Body does not match stored PNG bytes")
		}
	})

	t.Run("format=json returns a data URI", func(t *testing.T) {
		rec := doPageRequest(t, "/deck/deck-a/page/1?format=json")
		if rec.Code != http.StatusOK {
			t.Fatalf("Status = %d, body %s", rec.Code, rec.Body.String())
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}

		var page api.PageResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
			t.Fatalf("Body is not valid JSON: %v", err)
		}
		if page.Index != 1 {
			t.Errorf("Index = %d, want 1", page.Index)
		}
		raw, ok := pptx.DecodeDataURI(page.ImageDataURI)
		if !ok || !bytes.Equal(raw, png) {
			t.Errorf("Data URI does not round-trip to the stored PNG")
		}
	})

	t.Run("Missing page is 404", func(t *testing.T) {
		rec := doPageRequest(t, "/deck/deck-a/page/42")
		if rec.Code != http.StatusNotFound {
			t.Errorf("Status = %d, want 404", rec.Code)
		}
	})

	t.Run("Non-numeric page is 400", func(t *testing.T) {
		rec := doPageRequest(t, "/deck/deck-a/page/xyz")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want 400", rec.Code)
		}
	})
}
