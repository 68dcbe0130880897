package adapter

import (
	"fmt"

	"github.com/akurella/DeckAPI/internal/api"
	"github.com/akurella/DeckAPI/internal/domain/deckModel"
	"github.com/akurella/DeckAPI/internal/viewer"
)

// ToDeckResponse maps stored deck metadata to the external contract. Image
// bytes are not inlined here; each page carries its fetch URL instead.
func ToDeckResponse(deck deckModel.Deck) api.DeckResponse {
	pages := make([]api.PageResponse, 0, len(deck.Pages))
	for _, p := range deck.Pages {
		pages = append(pages, api.PageResponse{
			Index:         p.Index,
			ImageURL:      fmt.Sprintf("deck/%s/page/%d", deck.Id, p.Index),
			ExtractedText: p.ExtractedText,
			HasText:       p.HasText,
			HasImages:     p.HasImages,
			ErrorFlag:     p.ErrorFlag,
		})
	}

	return api.DeckResponse{
		Id:               deck.Id,
		DocumentName:     deck.DocumentName,
		TotalPages:       deck.TotalPages,
		ConversionMethod: deck.ConversionMethod,
		GeneratedAt:      deck.GeneratedAt,
		Pages:            pages,
	}
}

func ToViewerStateResponse(session viewer.Session) api.ViewerStateResponse {
	return api.ViewerStateResponse{
		Id:             session.Id,
		DeckId:         session.DeckId,
		State:          string(session.State),
		CurrentPage:    session.CurrentPage,
		TotalPages:     session.TotalPages,
		Zoom:           session.Zoom,
		FitMode:        string(session.Fit),
		EffectiveScale: session.EffectiveScale(),
		DarkMode:       session.DarkMode,
		Fullscreen:     session.Fullscreen,
		LastError:      session.LastError,
		PageErrors:     session.PageErrors,
		PageImageURL:   fmt.Sprintf("deck/%s/page/%d", session.DeckId, session.CurrentPage),
		DownloadURL:    fmt.Sprintf("deck/%s/download", session.DeckId),
	}
}
