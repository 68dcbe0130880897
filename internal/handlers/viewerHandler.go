package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akurella/DeckAPI/internal/adapter"
	"github.com/akurella/DeckAPI/internal/adapter/utils"
	"github.com/akurella/DeckAPI/internal/api"
	"github.com/akurella/DeckAPI/internal/viewer"
	"github.com/akurella/DeckAPI/pkg/logger_i"
)

var logVH *logger_i.Logger

// OpenViewerHandler godoc
// @Summary      Open a viewer session
// @Description  Creates a per-document viewer session over a converted deck. The session starts at page 1 in fit-page mode.
// @Tags         Viewer
// @Accept       json
// @Produce      json
// @Param        request  body  api.OpenViewerRequest  true  "Deck ID and container dimensions"
// @Success      201  {object}  api.ViewerStateResponse
// @Failure      404  {object}  api.JobResponse  "Deck not found"
// @Router       /viewer [post]
func OpenViewerHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}

	var requestData api.OpenViewerRequest
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil || requestData.DeckId == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "", "deck_id is required")
		return
	}

	session := viewer.NewSession(utils.GetNewUUID(), requestData.DeckId, requestData.ContainerW, requestData.ContainerH)

	deck, found := handlerInstance.service.DeckStore.GetDeck(r.Context(), requestData.DeckId)
	if !found {
		//deck never loaded: the session is born in the terminal Error state
		//with retry and download-original as the recovery affordances
		session.Fail("Deck not found or conversion incomplete")
	} else {
		session.Ready(deck.TotalPages)
	}

	if err := handlerInstance.service.SessionStore.SaveSession(r.Context(), session); err != nil {
		logVH.Error("failed saving session", "err", err)
		WriteErrorResponse(w, http.StatusInternalServerError, requestData.DeckId, "Could not create session")
		return
	}
	writeJsonResponse(w, http.StatusCreated, adapter.ToViewerStateResponse(session))
}

// GetViewerHandler godoc
// @Summary      Get viewer session state
// @Tags         Viewer
// @Produce      json
// @Param        id  path  string  true  "Session ID"
// @Success      200  {object}  api.ViewerStateResponse
// @Failure      404  {object}  api.JobResponse  "Session not found"
// @Router       /viewer/{id} [get]
func GetViewerHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	id := utils.GetChiURLParam(r, "id")
	session, found := handlerInstance.service.SessionStore.GetSession(r.Context(), id)
	if !found {
		WriteErrorResponse(w, http.StatusNotFound, id, "Session not found")
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToViewerStateResponse(session))
}

// ViewerCommandHandler godoc
// @Summary      Apply a viewer command
// @Description  Navigation, zoom, fit mode, resize, dark mode, fullscreen, retry and raw keyboard shortcuts. Page and zoom values are clamped; boundary navigation is a no-op.
// @Tags         Viewer
// @Accept       json
// @Produce      json
// @Param        id       path  string          true  "Session ID"
// @Param        command  body  viewer.Command  true  "Command"
// @Success      200  {object}  api.ViewerStateResponse
// @Failure      400  {object}  api.JobResponse  "Unknown action"
// @Failure      404  {object}  api.JobResponse  "Session not found"
// @Router       /viewer/{id}/command [post]
func ViewerCommandHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	id := utils.GetChiURLParam(r, "id")
	session, found := handlerInstance.service.SessionStore.GetSession(r.Context(), id)
	if !found {
		WriteErrorResponse(w, http.StatusNotFound, id, "Session not found")
		return
	}

	var cmd viewer.Command
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, id, "Bad command payload")
		return
	}

	needsRender, err := viewer.Apply(&session, cmd)
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, id, err.Error())
		return
	}

	if cmd.Action == viewer.ActionRetry && session.State == viewer.StateLoading {
		//retry re-checks the deck; conversion may have finished meanwhile
		if deck, ok := handlerInstance.service.DeckStore.GetDeck(r.Context(), session.DeckId); ok {
			session.Ready(deck.TotalPages)
		} else {
			session.Fail("Deck not found or conversion incomplete")
		}
	}

	if needsRender {
		token := session.BeginRender()
		renderErr := ""
		if _, ok := fetchPageImage(r, session.DeckId, session.CurrentPage); !ok {
			renderErr = "page image unavailable"
		}
		session.FinishRender(token, session.CurrentPage, renderErr)
	} else if session.State == viewer.StateNavigating || session.State == viewer.StateZooming {
		session.State = viewer.StateReady
	}

	if err := handlerInstance.service.SessionStore.SaveSession(r.Context(), session); err != nil {
		logVH.Error("failed saving session", "id", id, "err", err)
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToViewerStateResponse(session))
}

// CloseViewerHandler godoc
// @Summary      Close a viewer session
// @Tags         Viewer
// @Param        id  path  string  true  "Session ID"
// @Success      204  "Session deleted"
// @Router       /viewer/{id} [delete]
func CloseViewerHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	id := utils.GetChiURLParam(r, "id")
	handlerInstance.service.SessionStore.DeleteSession(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}
