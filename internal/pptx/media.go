package pptx

import (
	"encoding/base64"
	"sort"
	"strings"

	"github.com/akurella/DeckAPI/pkg/logger_i"
)

const mediaPrefix = "ppt/media/"

var mimeByExt = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
}

// ResolveMedia decodes the archive's embedded raster images into data URIs
// keyed by archive path. A failure on one asset is logged and the asset
// excluded - it never aborts the rest of the pass.
//
// The OOXML relationship parts are deliberately not parsed, so no media is
// associated with a particular slide; the map only guarantees document-level
// image availability. Known limitation.
func ResolveMedia(a *Archive, log *logger_i.Logger) map[string]string {
	media := make(map[string]string)

	for _, path := range a.EntryPaths() {
		if !strings.HasPrefix(path, mediaPrefix) {
			continue
		}
		dot := strings.LastIndex(path, ".")
		if dot < 0 {
			continue
		}
		mime, ok := mimeByExt[strings.ToLower(path[dot:])]
		if !ok {
			continue
		}

		data, err := a.ReadEntry(path)
		if err != nil {
			log.Error("failed decoding media asset", "path", path, "err", err)
			continue
		}

		media[path] = "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
	}
	return media
}

// FirstAsset picks the preview asset deterministically (lowest path). Every
// slide's thumbnail shows this asset because media is not slide-associated.
func FirstAsset(media map[string]string) (string, string, bool) {
	if len(media) == 0 {
		return "", "", false
	}
	paths := make([]string, 0, len(media))
	for p := range media {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths[0], media[paths[0]], true
}

// DecodeDataURI returns the raw bytes of a data URI produced by ResolveMedia.
func DecodeDataURI(uri string) ([]byte, bool) {
	idx := strings.Index(uri, ";base64,")
	if idx < 0 {
		return nil, false
	}
	data, err := base64.StdEncoding.DecodeString(uri[idx+len(";base64,"):])
	if err != nil {
		return nil, false
	}
	return data, true
}
