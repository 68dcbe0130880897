package jobModel

import (
	"context"
	"time"
)

type JobStatus string
type InternalStatus string

type SourceKind string

const (
	JobStatusQueued   JobStatus = "QUEUED"
	JobStatusRunning  JobStatus = "RUNNING"
	JobStatusComplete JobStatus = "COMPLETE"
	JobStatusError    JobStatus = "Error"

	ConvertInit   InternalStatus = "Init"
	ContainerLoad InternalStatus = "ContainerLoad"
	SlideExtract  InternalStatus = "SlideExtract"
	MediaResolve  InternalStatus = "MediaResolve"
	SlideRender   InternalStatus = "SlideRender"
	PDFExtract    InternalStatus = "PDFExtract"
	DeckSave      InternalStatus = "DeckSave"
	Error         InternalStatus = "Error"

	Complete InternalStatus = "Complete"

	SourcePPTX    SourceKind = "PPTX"
	SourcePDF     SourceKind = "PDF"
	SourceUnknown SourceKind = "Unknown"
)

type Job struct {
	Id          string         `json:"id"`
	TraceId     string         `json:"trace_id"`
	SourceKind  SourceKind     `json:"source_kind"`
	JobPayload  JobPayload     `json:"job_payload"`
	Error       JobError       `json:"error,omitempty"`
	CreatedTime time.Time      `json:"created_time"`
	EndTime     time.Time      `json:"end_time,omitempty"`
	Status      JobStatus      `json:"status"`
	CurrentStep InternalStatus `json:"current_step"`
}

type JobError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Retry   bool   `json:"retry"`
}

type JobPayload struct {
	DocumentName string `json:"document_name,omitempty"`
	//exactly one of SourcePath/SourceURL is set; SourcePath is a temp file
	//the worker removes once conversion finishes
	SourcePath string `json:"source_path,omitempty"`
	SourceURL  string `json:"source_url,omitempty"`

	DeckId           string `json:"deck_id,omitempty"`
	TotalPages       int    `json:"total_pages,omitempty"`
	ConversionMethod string `json:"conversion_method,omitempty"`
}

type JobStore interface {
	GetJob(ctx context.Context, jobId string) (Job, bool)
	SaveJob(ctx context.Context, job Job) error
	DeleteJob(ctx context.Context, jobID string)
}
