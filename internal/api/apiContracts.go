package api

import "time"

type JobExternalStatus string

const (
	JobStatusError JobExternalStatus = "Error"
)

type JobResponse struct {
	Id        string            `json:"id" example:"job_cz109"`
	Result    Result            `json:"result"`
	Error     *JobOutgoingError `json:"error,omitempty"`
	StartTime time.Time         `json:"start_time"`
	EndTime   time.Time         `json:"end_time,omitempty"`
}

type JobOutgoingError struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"Job not found"`
	Retry   bool   `json:"can_retry" example:"false"`
}

type Result struct {
	Status     string          `json:"status"`
	Conversion *DeckConversion `json:"conversion,omitempty"`
}

// DeckConversion is the completed-conversion payload: where the deck lives
// and how it was produced.
type DeckConversion struct {
	DeckId           string `json:"deck_id"`
	DeckURL          string `json:"deck_url"`
	TotalPages       int    `json:"total_pages"`
	ConversionMethod string `json:"conversion_method"`
}

type InitJobResponse struct {
	Id        string `json:"id"`
	StatusURL string `json:"status_url"`
}

type PageResponse struct {
	Index         int    `json:"index"`
	ImageDataURI  string `json:"image_data_uri,omitempty"`
	ImageURL      string `json:"image_url"`
	ExtractedText string `json:"extracted_text"`
	HasText       bool   `json:"has_text"`
	HasImages     bool   `json:"has_images"`
	ErrorFlag     bool   `json:"error_flag"`
}

type DeckResponse struct {
	Id               string         `json:"id"`
	DocumentName     string         `json:"document_name"`
	TotalPages       int            `json:"total_pages"`
	ConversionMethod string         `json:"conversion_method"`
	GeneratedAt      time.Time      `json:"generated_at"`
	Pages            []PageResponse `json:"pages"`
}

type ViewerStateResponse struct {
	Id             string         `json:"id"`
	DeckId         string         `json:"deck_id"`
	State          string         `json:"state"`
	CurrentPage    int            `json:"current_page"`
	TotalPages     int            `json:"total_pages"`
	Zoom           float64        `json:"zoom"`
	FitMode        string         `json:"fit_mode"`
	EffectiveScale float64        `json:"effective_scale"`
	DarkMode       bool           `json:"dark_mode"`
	Fullscreen     bool           `json:"fullscreen"`
	LastError      string         `json:"last_error,omitempty"`
	PageErrors     map[int]string `json:"page_errors,omitempty"`
	PageImageURL   string         `json:"page_image_url"`
	DownloadURL    string         `json:"download_url"`
}

// requests---------------------

type ConvertRequest struct {
	SourceURL    string `json:"source_url" validate:"required"`
	DocumentName string `json:"document_name,omitempty"`
}

type OpenViewerRequest struct {
	DeckId     string `json:"deck_id" validate:"required"`
	ContainerW int    `json:"container_w,omitempty"`
	ContainerH int    `json:"container_h,omitempty"`
}
