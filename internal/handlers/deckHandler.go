package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/akurella/DeckAPI/internal/adapter"
	"github.com/akurella/DeckAPI/internal/adapter/utils"
	"github.com/akurella/DeckAPI/internal/api"
	"github.com/akurella/DeckAPI/internal/render"
	"github.com/akurella/DeckAPI/pkg/logger_i"
	"golang.org/x/sync/singleflight"
)

var (
	logDH *logger_i.Logger
	//collapses concurrent fetches of the same page image into one store
	//round-trip
	pageGroup singleflight.Group
)

// GetDeckHandler godoc
// @Summary      Get deck descriptors
// @Description  Returns the ordered page descriptors of a converted deck plus totalPages and the conversion method. Pass inline=true to embed page images as data URIs.
// @Tags         Deck
// @Produce      json
// @Param        id      path   string  true   "Deck ID"
// @Param        inline  query  bool    false  "Embed page images as data URIs"
// @Success      200  {object}  api.DeckResponse
// @Failure      404  {object}  api.JobResponse  "Deck not found"
// @Router       /deck/{id} [get]
func GetDeckHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	deckId := utils.GetChiURLParam(r, "id")

	deck, found := handlerInstance.service.DeckStore.GetDeck(r.Context(), deckId)
	if !found {
		WriteErrorResponse(w, http.StatusNotFound, deckId, "Deck not found")
		return
	}

	response := adapter.ToDeckResponse(deck)
	if r.URL.Query().Get("inline") == "true" {
		for i := range response.Pages {
			if png, ok := fetchPageImage(r, deckId, response.Pages[i].Index); ok {
				response.Pages[i].ImageDataURI = render.ToDataURI(png)
			}
		}
	}
	writeJsonResponse(w, http.StatusOK, response)
}

// GetPageImageHandler godoc
// @Summary      Get one rendered page
// @Description  Serves the fixed-size PNG rendering of a single deck page. Pass format=json to get the image as a data URI instead of raw bytes.
// @Tags         Deck
// @Produce      png
// @Produce      json
// @Param        id      path   string  true   "Deck ID"
// @Param        page    path   int     true   "1-based page number"
// @Param        format  query  string  false  "Set to json for a data URI payload"
// @Success      200  {string}  binary  "PNG image"
// @Failure      404  {object}  api.JobResponse  "Page not found"
// @Router       /deck/{id}/page/{page} [get]
func GetPageImageHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	deckId := utils.GetChiURLParam(r, "id")
	page, err := strconv.Atoi(utils.GetChiURLParam(r, "page"))
	if err != nil || page < 1 {
		WriteErrorResponse(w, http.StatusBadRequest, deckId, "page must be a positive integer")
		return
	}

	png, found := fetchPageImage(r, deckId, page)
	if !found {
		WriteErrorResponse(w, http.StatusNotFound, deckId, "Page not found")
		return
	}

	if r.URL.Query().Get("format") == "json" {
		writeJsonResponse(w, http.StatusOK, api.PageResponse{
			Index:        page,
			ImageDataURI: render.ToDataURI(png),
			ImageURL:     fmt.Sprintf("deck/%s/page/%d", deckId, page),
		})
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		logDH.Error("failed writing page image", "deckId", deckId, "page", page, "err", err)
	}
}

func fetchPageImage(r *http.Request, deckId string, page int) ([]byte, bool) {
	key := deckId + ":" + strconv.Itoa(page)
	v, err, _ := pageGroup.Do(key, func() (any, error) {
		png, found := handlerInstance.service.DeckStore.GetPageImage(r.Context(), deckId, page)
		if !found {
			return nil, http.ErrMissingFile
		}
		return png, nil
	})
	if err != nil {
		return nil, false
	}
	return v.([]byte), true
}

// DownloadHandler godoc
// @Summary      Download the original document
// @Description  Streams the originally uploaded file - the escape hatch when conversion fails.
// @Tags         Deck
// @Produce      octet-stream
// @Param        id  path  string  true  "Deck ID"
// @Success      200  {string}  binary
// @Failure      404  {object}  api.JobResponse  "Deck not found"
// @Router       /deck/{id}/download [get]
func DownloadHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	deckId := utils.GetChiURLParam(r, "id")

	deck, found := handlerInstance.service.DeckStore.GetDeck(r.Context(), deckId)
	if !found {
		WriteErrorResponse(w, http.StatusNotFound, deckId, "Deck not found")
		return
	}
	data, found := handlerInstance.service.DeckStore.GetOriginal(r.Context(), deckId)
	if !found {
		WriteErrorResponse(w, http.StatusNotFound, deckId, "Original document not available")
		return
	}

	w.Header().Set("Content-Type", deck.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+deck.DocumentName+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logDH.Error("failed writing original document", "deckId", deckId, "err", err)
	}
}
