package handlers

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/akurella/DeckAPI/internal/config"
	"github.com/akurella/DeckAPI/internal/domain/jobModel"
	"github.com/akurella/DeckAPI/internal/job"
	"github.com/akurella/DeckAPI/internal/metrics"
	"github.com/akurella/DeckAPI/pkg/logger_i"
)

var (
	handlerInstance *JobHandler //private singleton
	once            sync.Once
	logJH           *logger_i.Logger
)

type JobHandler struct {
	service *job.Service
}

func InitJobHandler(jobService *job.Service) {
	once.Do(func() {
		handlerInstance = &JobHandler{service: jobService}

		logJH = logger_i.NewLogger("JobHandler")
		logRH = logger_i.NewLogger("RequestHandler")
		logDH = logger_i.NewLogger("DeckHandler")
		logVH = logger_i.NewLogger("ViewerHandler")
		logJH.Info("Starting job handler")
	})
}

func CreateNewJob(newJob newJobData) {
	logJH.With("traceId", newJob.traceId, "job id", newJob.id)
	logJH.Info("To create new conversion job")
	handlerInstance.pushToJobChannel(newJob)
}

func GetJobStatus(id string, traceId string) (result jobModel.Job, isFound bool) {
	ctxC := context.WithValue(context.Background(), config.TRACE_ID_KEY, traceId)
	if handlerInstance != nil {
		return handlerInstance.service.JobStore.GetJob(ctxC, id)
	}
	return result, false
}

// private methods
func (h *JobHandler) pushToJobChannel(newJob newJobData) {

	_job := jobModel.Job{}
	_job.Id = newJob.id
	_job.CreatedTime = time.Now()
	_job.TraceId = newJob.traceId
	_job.Status = jobModel.JobStatusQueued
	_job.CurrentStep = jobModel.ConvertInit
	_job.SourceKind = newJob.kind
	_job.JobPayload.DocumentName = newJob.documentName
	_job.JobPayload.SourcePath = newJob.sourcePath
	_job.JobPayload.SourceURL = newJob.sourceURL

	//metrics
	metrics.IncrementJobsInQueue()

	h.service.JobChannel <- _job //this is a blocking send to prevent the system from being overwhelmed
	logJH.Info("Created new job")

	//a new worker is added every N requests, and eagerly for URL sources -
	//the remote fetch makes those jobs slower, and idle workers retire on
	//their own anyway
	accurateCount := atomic.AddInt64(&h.service.RequestCount, 1)
	if accurateCount%config.RequestsPerNewWorkerCount == 0 || newJob.sourceURL != "" {
		metrics.StartDispatcherSignalCount() //metrics
		logJH.Debug("Worker count ", "requests", accurateCount)
		h.service.DispatcherChannel <- true
	}
}
