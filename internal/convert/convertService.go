package convert

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/akurella/DeckAPI/internal/adapter/utils"
	"github.com/akurella/DeckAPI/internal/domain/deckModel"
	"github.com/akurella/DeckAPI/internal/domain/jobModel"
	"github.com/akurella/DeckAPI/internal/metrics"
	"github.com/akurella/DeckAPI/internal/pdfconv"
	"github.com/akurella/DeckAPI/internal/pptx"
	"github.com/akurella/DeckAPI/internal/render"
	"github.com/akurella/DeckAPI/pkg/logger_i"
)

const (
	MethodManualExtraction = "manual-extraction"
	MethodPDFTextRender    = "pdf-text-render"
)

// Service converts one source document into a stored deck of rendered pages.
type Service interface {
	ConvertDocument(ctx context.Context, job jobModel.Job) jobModel.Job
}

type deckConverter struct {
	decks  deckModel.DeckStore
	fonts  *render.FontCache
	logger *logger_i.Logger
}

func NewService(decks deckModel.DeckStore) Service {
	return &deckConverter{
		decks:  decks,
		fonts:  render.NewFontCache(),
		logger: logger_i.NewLogger("Converter"),
	}
}

func (c *deckConverter) ConvertDocument(ctx context.Context, job jobModel.Job) jobModel.Job {
	log := c.logger.With("traceId", job.TraceId, "job id", job.Id)

	data, sourcePath, cleanup, err := c.resolveSource(ctx, job)
	if err != nil {
		log.Error("failed to load source document", "err", err)
		return failJob(job, err)
	}
	defer cleanup()

	generatedAt := time.Now().UTC()
	deck := deckModel.Deck{
		Id:           utils.GetNewUUID(),
		DocumentName: job.JobPayload.DocumentName,
		GeneratedAt:  generatedAt,
	}

	var pages []deckModel.PageDescriptor
	var media map[string]string

	switch job.SourceKind {
	case jobModel.SourcePDF:
		job.CurrentStep = jobModel.PDFExtract
		deck.ContentType = "application/pdf"
		deck.ConversionMethod = MethodPDFTextRender
		pages, err = pdfconv.ExtractPages(sourcePath, log)
		media = map[string]string{}

	default:
		deck.ContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
		deck.ConversionMethod = MethodManualExtraction

		job.CurrentStep = jobModel.ContainerLoad
		var archive *pptx.Archive
		archive, err = pptx.OpenArchive(data)
		if err != nil {
			log.Error("failed to open container", "err", err)
			return failJob(job, err)
		}

		job.CurrentStep = jobModel.SlideExtract
		pages, err = pptx.ExtractSlides(archive, log)
		if err == nil {
			job.CurrentStep = jobModel.MediaResolve
			media = pptx.ResolveMedia(archive, log)
			for i := range pages {
				if !pages[i].ErrorFlag {
					pages[i].HasImages = len(media) > 0
				}
			}
		}
	}
	if err != nil {
		log.Error("extraction failed", "err", err)
		return failJob(job, err)
	}

	job.CurrentStep = jobModel.SlideRender
	opts := render.DefaultOptions(generatedAt.Format(time.RFC3339), c.fonts)

	rendered := make(map[int][]byte, len(pages))
	for _, page := range pages {
		start := time.Now()
		png, renderErr := render.RenderSlide(page, media, opts)
		metrics.CaptureExecutionMetrics("render", time.Since(start))
		if renderErr != nil {
			log.Error("failed to render page", "index", page.Index, "err", renderErr)
			continue //a single bad page must not sink the deck
		}
		rendered[page.Index] = png
		metrics.IncrementSlidesRendered()
	}

	deck.Pages = pages
	deck.TotalPages = len(pages)

	job.CurrentStep = jobModel.DeckSave
	if err := c.decks.SaveDeck(ctx, deck); err != nil {
		log.Error("failed to save deck", "err", err)
		return failJob(job, err)
	}
	if err := c.decks.SaveOriginal(ctx, deck.Id, data); err != nil {
		log.Error("failed to save original document", "err", err)
	}
	for index, png := range rendered {
		if err := c.decks.SavePageImage(ctx, deck.Id, index, png); err != nil {
			log.Error("failed to save page image", "index", index, "err", err)
		}
	}

	job.JobPayload.DeckId = deck.Id
	job.JobPayload.TotalPages = deck.TotalPages
	job.JobPayload.ConversionMethod = deck.ConversionMethod
	job.CurrentStep = jobModel.Complete
	log.Info("conversion complete", "deck id", deck.Id, "pages", deck.TotalPages)
	return job
}

// resolveSource returns the document bytes plus a local path (the pdf reader
// wants a file). URL sources are spooled to a temp file which the returned
// cleanup removes on every exit path.
func (c *deckConverter) resolveSource(ctx context.Context, job jobModel.Job) ([]byte, string, func(), error) {
	noop := func() {}

	if job.JobPayload.SourcePath != "" {
		data, err := os.ReadFile(job.JobPayload.SourcePath)
		return data, job.JobPayload.SourcePath, noop, err
	}

	data, err := pptx.FetchSource(ctx, job.JobPayload.SourceURL)
	if err != nil {
		return nil, "", noop, err
	}

	if job.SourceKind != jobModel.SourcePDF {
		return data, "", noop, nil
	}

	tmp, err := os.CreateTemp("", "deck-*"+filepath.Ext(job.JobPayload.DocumentName))
	if err != nil {
		return nil, "", noop, err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, "", noop, err
	}
	tmp.Close()
	return data, tmp.Name(), func() { os.Remove(tmp.Name()) }, nil
}

func failJob(job jobModel.Job, err error) jobModel.Job {
	job.Status = jobModel.JobStatusError
	job.CurrentStep = jobModel.Error

	code := http.StatusInternalServerError
	retry := false

	var fetchErr *pptx.SourceFetchError
	var containerErr *pptx.InvalidContainerError
	var noSlides *pptx.NoSlidesFoundError
	switch {
	case errors.As(err, &fetchErr):
		code = http.StatusBadGateway
		retry = true //transient network failures are retryable
	case errors.As(err, &containerErr):
		code = http.StatusUnprocessableEntity
	case errors.As(err, &noSlides), errors.Is(err, pdfconv.ErrNoPages):
		code = http.StatusUnprocessableEntity
	}

	job.Error = jobModel.JobError{
		Code:    code,
		Message: err.Error(),
		Retry:   retry,
	}
	return job
}
