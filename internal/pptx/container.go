package pptx

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/akurella/DeckAPI/internal/config"
	"github.com/akurella/DeckAPI/internal/customHttpClient"
)

// Archive is an opened PPTX container. PPTX files are ZIP archives under
// OOXML, so the handle is a zip reader plus a name index for O(1) lookups.
type Archive struct {
	zr    *zip.Reader
	index map[string]*zip.File
	paths []string
}

// OpenArchive opens a byte buffer as a ZIP container.
func OpenArchive(data []byte) (*Archive, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &InvalidContainerError{Err: err}
	}

	a := &Archive{
		zr:    zr,
		index: make(map[string]*zip.File, len(zr.File)),
		paths: make([]string, 0, len(zr.File)),
	}
	for _, f := range zr.File {
		a.index[f.Name] = f
		a.paths = append(a.paths, f.Name)
	}
	return a, nil
}

// FetchSource downloads the document bytes. Network errors and non-2xx
// responses both signal SourceFetchError with the attempted URL.
func FetchSource(ctx context.Context, url string) ([]byte, error) {
	client := customHttpClient.Pooled(config.SourceFetchTimeout)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &SourceFetchError{URL: url, Err: err}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &SourceFetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &SourceFetchError{URL: url, Status: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, config.MaxSourceSize+1))
	if err != nil {
		return nil, &SourceFetchError{URL: url, Err: err}
	}
	if len(data) > config.MaxSourceSize {
		return nil, &SourceFetchError{URL: url, Err: fmt.Errorf("source exceeds %d bytes", config.MaxSourceSize)}
	}
	return data, nil
}

// EntryPaths returns every entry path in physical archive order. Callers must
// not rely on this order for slide sequencing.
func (a *Archive) EntryPaths() []string {
	return a.paths
}

func (a *Archive) HasEntry(path string) bool {
	_, ok := a.index[path]
	return ok
}

// ReadEntry reads one archive entry fully into memory.
func (a *Archive) ReadEntry(path string) ([]byte, error) {
	f, ok := a.index[path]
	if !ok {
		return nil, fmt.Errorf("entry %s not found in archive", path)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, rc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
