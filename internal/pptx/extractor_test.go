package pptx_test

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/akurella/DeckAPI/internal/pptx"
	"github.com/akurella/DeckAPI/pkg/logger_i"
)

func buildZip(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("creating zip entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("writing zip entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	return buf.Bytes()
}

func slideXML(texts ...string) string {
	var b strings.Builder
	b.WriteString(`<p:sld xmlns:p="urn:p" xmlns:a="urn:a"><p:txBody>`)
	for _, txt := range texts {
		b.WriteString(`<a:p><a:r><a:t>` + txt + `</a:t></a:r></a:p>`)
	}
	b.WriteString(`</p:txBody></p:sld>`)
	return b.String()
}

func TestExtractSlides_NumericSuffixOrdering(t *testing.T) {
	// Entry order in the archive deliberately disagrees with the suffix order
	data := buildZip(t, map[string]string{
		"ppt/slides/slide10.xml": slideXML("tenth"),
		"ppt/slides/slide2.xml":  slideXML("second"),
		"ppt/slides/slide1.xml":  slideXML("first"),
		"ppt/notes/ignored.xml":  slideXML("not a slide"),
	})

	a, err := pptx.OpenArchive(data)
	if err != nil {
		t.Fatalf("OpenArchive failed: %v", err)
	}
	pages, err := pptx.ExtractSlides(a, logger_i.NewLogger("test"))
	if err != nil {
		t.Fatalf("ExtractSlides failed: %v", err)
	}

	if len(pages) != 3 {
		t.Fatalf("Expected 3 slides, got %d", len(pages))
	}
	want := []string{"first", "second", "tenth"}
	for i, w := range want {
		if pages[i].Index != i+1 {
			t.Errorf("Page %d has index %d", i, pages[i].Index)
		}
		if pages[i].ExtractedText != w {
			t.Errorf("Page %d text = %q, want %q", i, pages[i].ExtractedText, w)
		}
	}
}

func TestExtractSlides_MalformedSlideIsolated(t *testing.T) {
	data := buildZip(t, map[string]string{
		"ppt/slides/slide1.xml": slideXML("good one"),
		"ppt/slides/slide2.xml": `<p:sld><a:p><a:t>never closed`,
		"ppt/slides/slide3.xml": slideXML("still fine"),
	})

	a, _ := pptx.OpenArchive(data)
	pages, err := pptx.ExtractSlides(a, logger_i.NewLogger("test"))
	if err != nil {
		t.Fatalf("Per-slide failure must not fail the document: %v", err)
	}

	if pages[0].ErrorFlag || pages[2].ErrorFlag {
		t.Error("Healthy slides were marked failed")
	}
	if !pages[1].ErrorFlag {
		t.Fatal("Malformed slide was not marked failed")
	}
	if !strings.HasPrefix(pages[1].ExtractedText, "Error processing slide: ") {
		t.Errorf("Failed slide text = %q", pages[1].ExtractedText)
	}
	if pages[1].HasText {
		t.Error("Failed slide must report hasText=false")
	}
}

func TestExtractSlides_EmptySlide(t *testing.T) {
	data := buildZip(t, map[string]string{
		"ppt/slides/slide1.xml": `<p:sld xmlns:p="urn:p" xmlns:a="urn:a"><p:txBody></p:txBody></p:sld>`,
	})

	a, _ := pptx.OpenArchive(data)
	pages, err := pptx.ExtractSlides(a, logger_i.NewLogger("test"))
	if err != nil {
		t.Fatalf("ExtractSlides failed: %v", err)
	}
	if pages[0].HasText {
		t.Error("Empty slide must report hasText=false")
	}
	if pages[0].ErrorFlag {
		t.Error("Empty slide is not an error")
	}
}

func TestExtractSlides_EntityDecoding(t *testing.T) {
	data := buildZip(t, map[string]string{
		"ppt/slides/slide1.xml": slideXML("A &amp; B &lt;tag&gt;"),
	})

	a, _ := pptx.OpenArchive(data)
	pages, err := pptx.ExtractSlides(a, logger_i.NewLogger("test"))
	if err != nil {
		t.Fatalf("ExtractSlides failed: %v", err)
	}
	if pages[0].ExtractedText != "A & B <tag>" {
		t.Errorf("Entity decode mismatch: got %q", pages[0].ExtractedText)
	}
}

func TestDecodeEntities_AmpersandLast(t *testing.T) {
	// Double-escaped input must decode exactly one level
	got := pptx.DecodeEntities("&amp;lt;not a tag&amp;gt;")
	if got != "&lt;not a tag&gt;" {
		t.Errorf("Got %q, want single-level decode", got)
	}
}

func TestOpenArchive_Corrupt(t *testing.T) {
	_, err := pptx.OpenArchive([]byte("this is not a zip file"))
	if err == nil {
		t.Fatal("Expected error for corrupt archive")
	}
	var invalid *pptx.InvalidContainerError
	if !errors.As(err, &invalid) {
		t.Errorf("Expected InvalidContainerError, got %T", err)
	}
}

func TestExtractSlides_NoSlides(t *testing.T) {
	data := buildZip(t, map[string]string{
		"docProps/core.xml": "<x/>",
	})
	a, _ := pptx.OpenArchive(data)
	_, err := pptx.ExtractSlides(a, logger_i.NewLogger("test"))
	var noSlides *pptx.NoSlidesFoundError
	if !errors.As(err, &noSlides) {
		t.Errorf("Expected NoSlidesFoundError, got %v", err)
	}
}

func TestResolveMedia(t *testing.T) {
	data := buildZip(t, map[string]string{
		"ppt/media/image2.png":  "png-bytes-2",
		"ppt/media/image1.png":  "png-bytes-1",
		"ppt/media/chart.bmp":   "unsupported format",
		"ppt/media/noextension": "skipped",
		"ppt/slides/slide1.xml": slideXML("hi"),
	})
	a, _ := pptx.OpenArchive(data)
	media := pptx.ResolveMedia(a, logger_i.NewLogger("test"))

	if len(media) != 2 {
		t.Fatalf("Expected 2 resolved assets, got %d", len(media))
	}
	uri := media["ppt/media/image1.png"]
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Errorf("Bad data URI: %q", uri)
	}
	raw, ok := pptx.DecodeDataURI(uri)
	if !ok || string(raw) != "png-bytes-1" {
		t.Errorf("Data URI round-trip failed: %q", raw)
	}

	// FirstAsset must be stable across calls regardless of map iteration order
	path, _, ok := pptx.FirstAsset(media)
	if !ok || path != "ppt/media/image1.png" {
		t.Errorf("FirstAsset = %q, want lowest path", path)
	}
	for i := 0; i < 20; i++ {
		again, _, _ := pptx.FirstAsset(media)
		if again != path {
			t.Fatalf("FirstAsset not deterministic: %q then %q", path, again)
		}
	}
}
