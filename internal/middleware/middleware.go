package middleware

import (
	"net/http"
	"strconv"

	"github.com/akurella/DeckAPI/internal/handlers"
	"github.com/akurella/DeckAPI/internal/metrics"
	"github.com/akurella/DeckAPI/pkg/logger_i"
)

type requestResponseStruct struct {
	writer     http.ResponseWriter
	req        *http.Request
	badRequest failureStruct
	logger     *logger_i.Logger
}

type failureStruct struct {
	isBadRequest bool
	httpCode     int
	errorMessage string
	id           string
}

var GetHandler = Wrap(handlers.GetHandler)

var ConvertHandler = Wrap(handlers.ConvertHandler)
var GetStatusHandler = Wrap(handlers.GetStatusHandler)
var GetDeckHandler = Wrap(handlers.GetDeckHandler)
var GetPageImageHandler = Wrap(handlers.GetPageImageHandler)
var DownloadHandler = Wrap(handlers.DownloadHandler)
var OpenViewerHandler = Wrap(handlers.OpenViewerHandler)
var GetViewerHandler = Wrap(handlers.GetViewerHandler)
var ViewerCommandHandler = Wrap(handlers.ViewerCommandHandler)
var CloseViewerHandler = Wrap(handlers.CloseViewerHandler)

func Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &metrics.HttpStatusRecorder{ResponseWriter: w, Status: 200} //metrics
		re := processRequest(requestResponseStruct{req: r, writer: rec})

		if re.badRequest.isBadRequest {
			handleBadRequest(re)
			return
		}
		next(rec, re.req)

		metrics.HttpRequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(rec.Status)).Inc() //metrics
	}
}

// processRequest only flags failures; Wrap is the single writer of the error
// response so the body is never serialized twice.
func processRequest(re requestResponseStruct) requestResponseStruct {
	re.logger = logger_i.NewLogger("middleware")
	re.logger.Debug("New request received")
	re = injectTrace(re)
	re = authenticate(re)
	if re.badRequest.isBadRequest {
		return re //stop if auth fails
	}
	re = rateLimiter(re)

	return re
}
