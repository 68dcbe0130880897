package deckModel

import (
	"context"
	"time"
)

// PageDescriptor is one extracted slide (or PDF page). Index is 1-based and
// determines display order.
type PageDescriptor struct {
	Index         int    `json:"index"`
	ExtractedText string `json:"extracted_text"`
	HasText       bool   `json:"has_text"`
	HasImages     bool   `json:"has_images"`
	ErrorFlag     bool   `json:"error_flag"`
	ErrorMessage  string `json:"error_message,omitempty"`
}

type Deck struct {
	Id               string           `json:"id"`
	DocumentName     string           `json:"document_name"`
	ContentType      string           `json:"content_type"`
	TotalPages       int              `json:"total_pages"`
	ConversionMethod string           `json:"conversion_method"`
	GeneratedAt      time.Time        `json:"generated_at"`
	Pages            []PageDescriptor `json:"pages"`
}

// DeckStore persists converted deck metadata, per-page PNG images and the
// original uploaded bytes (the download escape hatch).
type DeckStore interface {
	SaveDeck(ctx context.Context, deck Deck) error
	GetDeck(ctx context.Context, deckId string) (Deck, bool)
	SavePageImage(ctx context.Context, deckId string, page int, png []byte) error
	GetPageImage(ctx context.Context, deckId string, page int) ([]byte, bool)
	SaveOriginal(ctx context.Context, deckId string, data []byte) error
	GetOriginal(ctx context.Context, deckId string) ([]byte, bool)
	DeleteDeck(ctx context.Context, deckId string)
}
