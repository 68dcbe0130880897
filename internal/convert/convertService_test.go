package convert_test

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/akurella/DeckAPI/internal/convert"
	"github.com/akurella/DeckAPI/internal/data/store"
	"github.com/akurella/DeckAPI/internal/domain/jobModel"
)

func writeTestPPTX(t *testing.T, slides map[string]string) string {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range slides {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip entry %s: %v", name, err)
		}
		w.Write([]byte(content))
	}
	zw.Close()

	path := filepath.Join(t.TempDir(), "deck.pptx")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("writing temp pptx: %v", err)
	}
	return path
}

func TestConvertDocument_PPTX(t *testing.T) {
	decks := store.InitInMemoryDeckStore()
	svc := convert.NewService(decks)

	slide := `<p:sld xmlns:p="urn:p" xmlns:a="urn:a"><p:txBody><a:p><a:r><a:t>Roadmap</a:t></a:r></a:p></p:txBody></p:sld>`
	path := writeTestPPTX(t, map[string]string{
		"ppt/slides/slide1.xml": slide,
		"ppt/slides/slide2.xml": slide,
	})

	job := jobModel.Job{
		Id:         "job-1",
		SourceKind: jobModel.SourcePPTX,
		JobPayload: jobModel.JobPayload{
			DocumentName: "deck.pptx",
			SourcePath:   path,
		},
	}

	result := svc.ConvertDocument(context.Background(), job)

	if result.Status == jobModel.JobStatusError {
		t.Fatalf("Conversion failed: %+v", result.Error)
	}
	if result.JobPayload.DeckId == "" {
		t.Fatal("No deck id on completed job")
	}
	if result.JobPayload.TotalPages != 2 {
		t.Errorf("TotalPages = %d, want 2", result.JobPayload.TotalPages)
	}
	if result.JobPayload.ConversionMethod != convert.MethodManualExtraction {
		t.Errorf("ConversionMethod = %q", result.JobPayload.ConversionMethod)
	}

	deck, found := decks.GetDeck(context.Background(), result.JobPayload.DeckId)
	if !found {
		t.Fatal("Deck was not saved")
	}
	if deck.TotalPages != 2 || len(deck.Pages) != 2 {
		t.Errorf("Stored deck shape: total=%d pages=%d", deck.TotalPages, len(deck.Pages))
	}

	for page := 1; page <= 2; page++ {
		if _, found := decks.GetPageImage(context.Background(), deck.Id, page); !found {
			t.Errorf("Missing rendered image for page %d", page)
		}
	}
	if _, found := decks.GetOriginal(context.Background(), deck.Id); !found {
		t.Error("Original document was not saved")
	}
}

func TestConvertDocument_CorruptContainer(t *testing.T) {
	decks := store.InitInMemoryDeckStore()
	svc := convert.NewService(decks)

	path := filepath.Join(t.TempDir(), "broken.pptx")
	os.WriteFile(path, []byte("not a zip"), 0o644)

	job := jobModel.Job{
		Id:         "job-2",
		SourceKind: jobModel.SourcePPTX,
		JobPayload: jobModel.JobPayload{SourcePath: path},
	}

	result := svc.ConvertDocument(context.Background(), job)

	if result.Status != jobModel.JobStatusError {
		t.Fatal("Expected error status for corrupt container")
	}
	if result.Error.Code != http.StatusUnprocessableEntity {
		t.Errorf("Error code = %d, want 422", result.Error.Code)
	}
	if result.Error.Retry {
		t.Error("Corrupt input must not be marked retryable")
	}
}

func TestConvertDocument_NoSlides(t *testing.T) {
	decks := store.InitInMemoryDeckStore()
	svc := convert.NewService(decks)

	path := writeTestPPTX(t, map[string]string{"docProps/core.xml": "<x/>"})

	job := jobModel.Job{
		Id:         "job-3",
		SourceKind: jobModel.SourcePPTX,
		JobPayload: jobModel.JobPayload{SourcePath: path},
	}

	result := svc.ConvertDocument(context.Background(), job)
	if result.Status != jobModel.JobStatusError {
		t.Fatal("Expected error status for slideless archive")
	}
	if result.Error.Code != http.StatusUnprocessableEntity {
		t.Errorf("Error code = %d, want 422", result.Error.Code)
	}
}

func TestConvertDocument_IsolatedBadSlide(t *testing.T) {
	decks := store.InitInMemoryDeckStore()
	svc := convert.NewService(decks)

	good := `<p:sld xmlns:p="urn:p" xmlns:a="urn:a"><p:txBody><a:p><a:r><a:t>fine</a:t></a:r></a:p></p:txBody></p:sld>`
	path := writeTestPPTX(t, map[string]string{
		"ppt/slides/slide1.xml": good,
		"ppt/slides/slide2.xml": `<broken <<xml`,
	})

	job := jobModel.Job{
		Id:         "job-4",
		SourceKind: jobModel.SourcePPTX,
		JobPayload: jobModel.JobPayload{SourcePath: path},
	}

	result := svc.ConvertDocument(context.Background(), job)
	if result.Status == jobModel.JobStatusError {
		t.Fatalf("One bad slide must not fail the deck: %+v", result.Error)
	}

	deck, _ := decks.GetDeck(context.Background(), result.JobPayload.DeckId)
	if len(deck.Pages) != 2 {
		t.Fatalf("Expected both pages kept, got %d", len(deck.Pages))
	}
	if deck.Pages[0].ErrorFlag {
		t.Error("Good slide was marked failed")
	}
	if !deck.Pages[1].ErrorFlag {
		t.Error("Bad slide was not marked failed")
	}
}
