package pdfconv

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/akurella/DeckAPI/internal/domain/deckModel"
	"github.com/akurella/DeckAPI/pkg/logger_i"
	"github.com/dslipak/pdf"
)

var ErrNoPages = errors.New("pdf contains no pages")

// ExtractPages reads a PDF and returns one PageDescriptor per page, in page
// order. A page that fails text extraction gets an error marker; it never
// aborts the rest of the document.
func ExtractPages(path string, log *logger_i.Logger) ([]deckModel.PageDescriptor, error) {
	f, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}

	numPages := f.NumPage()
	log.Debug("extractPDF", "number of pages", numPages)
	if numPages == 0 {
		return nil, ErrNoPages
	}

	pages := make([]deckModel.PageDescriptor, 0, numPages)
	for i := 1; i <= numPages; i++ {
		desc := deckModel.PageDescriptor{Index: i}

		page := f.Page(i)
		if page.V.IsNull() {
			desc.ErrorFlag = true
			desc.ErrorMessage = "page value is null"
			desc.ExtractedText = "Error processing slide: page value is null"
			pages = append(pages, desc)
			continue
		}

		content, err := protectExtract(page)
		if err != nil {
			log.Error("error extracting page content", "page", i, "err", err)
			desc.ErrorFlag = true
			desc.ErrorMessage = err.Error()
			desc.ExtractedText = "Error processing slide: " + err.Error()
			pages = append(pages, desc)
			continue
		}

		desc.ExtractedText = content
		desc.HasText = strings.TrimSpace(content) != ""
		pages = append(pages, desc)
	}
	return pages, nil
}

// protectExtract guards GetPlainText with a deadline so one stuck page cannot
// stall the whole conversion.
func protectExtract(page pdf.Page) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()
	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(time.Second * 10):
		return "", errors.New("timeout")
	}
}
