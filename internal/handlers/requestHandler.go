package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akurella/DeckAPI/internal/adapter"
	"github.com/akurella/DeckAPI/internal/adapter/utils"
	"github.com/akurella/DeckAPI/internal/api"
	"github.com/akurella/DeckAPI/internal/config"
	"github.com/akurella/DeckAPI/internal/domain/jobModel"
	"github.com/akurella/DeckAPI/pkg/logger_i"
)

var logRH *logger_i.Logger

type newJobData struct {
	id           string
	traceId      string
	documentName string
	sourcePath   string
	sourceURL    string
	kind         jobModel.SourceKind
}

func GetHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// ConvertHandler godoc
// @Summary      Start a document conversion job
// @Description  Accepts a PPTX or PDF via multipart upload or a JSON body with a fetchable source URL, queues a conversion job, and returns a job ID to track status.
// @Tags         Conversion
// @Accept       multipart/form-data
// @Accept       json
// @Produce      json
// @Param        document_name  formData  string  false  "The display name of the document"
// @Param        document       formData  file    false  "The PPTX or PDF file to upload"
// @Success      202  {object}  api.InitJobResponse  "Job successfully created"
// @Failure      400  {object}  api.JobResponse      "Invalid request data"
// @Router       /convert [post]
func ConvertHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", "addr", r.RemoteAddr)
		return
	}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		convertUpload(w, r)
		return
	}
	convertFromURL(w, r)
}

func convertFromURL(w http.ResponseWriter, r *http.Request) {
	var requestData api.ConvertRequest
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			logRH.Error("Couldn't close the convert handler reader", "err", err)
		}
	}(r.Body)

	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil || requestData.SourceURL == "" {
		logRH.Warn("Bad Convert Request", "error", err)
		WriteErrorResponse(w, http.StatusBadRequest, "", "source_url is required")
		return
	}

	docName := requestData.DocumentName
	if docName == "" {
		docName = filepath.Base(requestData.SourceURL)
	}
	kind := detectSourceKind(docName)
	if kind == jobModel.SourceUnknown {
		WriteErrorResponse(w, http.StatusBadRequest, "", "only .pptx and .pdf sources are supported")
		return
	}

	queueJob(w, r, newJobData{
		id:           utils.GetNewUUID(),
		traceId:      r.Context().Value(config.TRACE_ID_KEY).(string),
		documentName: docName,
		sourceURL:    requestData.SourceURL,
		kind:         kind,
	})
}

func convertUpload(w http.ResponseWriter, r *http.Request) {
	targetDir, errString := getTargetDirectory()
	if errString != "" {
		logRH.Error("Couldn't get target directory", "err", errString)
		WriteErrorResponse(w, http.StatusInternalServerError, "", errString)
		return
	}

	if err := r.ParseMultipartForm(config.MaxUploadSize); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "", "File too large or bad request")
		return
	}

	docName := r.FormValue("document_name")

	fileReader, fileMetadata, err := r.FormFile("document")
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, docName, "Could not retrieve file")
		return
	}
	defer fileReader.Close()

	if docName == "" {
		docName = fileMetadata.Filename
	}
	kind := detectSourceKind(fileMetadata.Filename)
	if kind == jobModel.SourceUnknown {
		WriteErrorResponse(w, http.StatusBadRequest, docName, "only .pptx and .pdf uploads are supported")
		return
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixNano(), fileMetadata.Filename)
	tempFilePath := filepath.Join(targetDir, filename)
	destinationFileWriter, err := os.Create(tempFilePath)
	if err != nil {
		WriteErrorResponse(w, http.StatusInternalServerError, docName, "Storage error")
		return
	}
	defer destinationFileWriter.Close()

	if _, err := io.Copy(destinationFileWriter, fileReader); err != nil {
		WriteErrorResponse(w, http.StatusInternalServerError, docName, "Write error")
		return
	}

	queueJob(w, r, newJobData{
		id:           utils.GetNewUUID(),
		traceId:      r.Context().Value(config.TRACE_ID_KEY).(string),
		documentName: docName,
		sourcePath:   tempFilePath,
		kind:         kind,
	})
}

func queueJob(w http.ResponseWriter, r *http.Request, data newJobData) {
	CreateNewJob(data)
	writeJsonResponse(w, http.StatusAccepted, adapter.ToInitJobResponse(data.id))
}

// GetStatusHandler godoc
// @Summary      Get job status
// @Description  Retrieves the current status of a specific conversion job using its ID.
// @Tags         Job Status
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  api.JobResponse  "The current status of the job"
// @Failure      404  {object}  api.JobResponse  "Job not found"
// @Router       /status/{id} [get]
func GetStatusHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	idString := utils.GetChiURLParam(r, "id")
	result, isFound := validateId(idString, r.Context().Value(config.TRACE_ID_KEY).(string))

	logRH.Debug("Get Status Request:", "URL path", r.URL.Path)
	if !isFound {
		WriteErrorResponse(w, http.StatusNotFound, idString, "Job not found")
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToAPIResponse(result))
}
