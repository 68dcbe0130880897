package pptx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/akurella/DeckAPI/internal/config"
	"github.com/akurella/DeckAPI/internal/domain/deckModel"
	"github.com/akurella/DeckAPI/pkg/logger_i"
	"golang.org/x/net/html/charset"
)

var (
	slidePartPattern = regexp.MustCompile(`^ppt/slides/slide([^/]*)\.xml$`)
	paragraphPattern = regexp.MustCompile(`(?s)<a:p[ >].*?</a:p>`)
	textRunPattern   = regexp.MustCompile(`(?s)<a:t[^>]*>(.*?)</a:t>`)
	tagPattern       = regexp.MustCompile(`<[^>]*>`)

	//&amp; is listed last so already-escaped sequences decode exactly once
	entityReplacer = strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
		"&amp;", "&",
	)
)

type slidePart struct {
	path   string
	number int
}

// slideParts lists the archive's slide parts sorted ascending by the numeric
// suffix in the entry name. The suffix is the authoritative ordering - the
// archive's physical entry order is not assumed reliable. A suffix that fails
// to parse sorts as 0 (a documented leniency, not a correctness guarantee).
func slideParts(a *Archive) []slidePart {
	var parts []slidePart
	for _, path := range a.EntryPaths() {
		m := slidePartPattern.FindStringSubmatch(path)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			n = 0
		}
		parts = append(parts, slidePart{path: path, number: n})
	}
	sort.SliceStable(parts, func(i, j int) bool { return parts[i].number < parts[j].number })
	return parts
}

// ExtractSlides returns one PageDescriptor per slide part in deterministic
// order. A failure inside a single slide marks only that descriptor; no error
// escapes for per-slide problems. Zero slide parts is a document-level error.
func ExtractSlides(a *Archive, log *logger_i.Logger) ([]deckModel.PageDescriptor, error) {
	parts := slideParts(a)
	if len(parts) == 0 {
		return nil, &NoSlidesFoundError{}
	}

	pages := make([]deckModel.PageDescriptor, 0, len(parts))
	for i, part := range parts {
		pages = append(pages, extractOne(a, part, i+1, log))
	}
	return pages, nil
}

func extractOne(a *Archive, part slidePart, index int, log *logger_i.Logger) (desc deckModel.PageDescriptor) {
	desc.Index = index
	defer func() {
		if r := recover(); r != nil {
			log.Error("panic while extracting slide", "path", part.path, "index", index, "err", r)
			markFailed(&desc, fmt.Sprintf("%v", r))
		}
	}()

	data, err := a.ReadEntry(part.path)
	if err != nil {
		log.Error("failed reading slide part", "path", part.path, "index", index, "err", err)
		markFailed(&desc, err.Error())
		return desc
	}

	text, err := extractSlideText(data)
	if err != nil {
		log.Error("failed parsing slide part", "path", part.path, "index", index, "err", err)
		markFailed(&desc, err.Error())
		return desc
	}

	desc.ExtractedText = text
	desc.HasText = strings.TrimSpace(text) != ""
	return desc
}

func markFailed(desc *deckModel.PageDescriptor, msg string) {
	desc.ErrorFlag = true
	desc.ErrorMessage = msg
	desc.ExtractedText = "Error processing slide: " + msg
	desc.HasText = false
}

// extractSlideText pulls plain text out of one slide's XML with a multi-tier
// fallback: structured text-run scan first, then a paragraph-block scan, then
// a bare token heuristic over the stripped markup. Only the primary tier
// keeps repeated runs - legitimate repeated words exist in real content, but
// the fallback tiers over-match and are deduplicated.
func extractSlideText(data []byte) (string, error) {
	runs, err := scanTextRuns(data)
	if err != nil {
		return "", err
	}
	if len(runs) > 0 {
		return strings.Join(runs, "\n"), nil
	}

	if runs := scanParagraphRuns(string(data)); len(runs) > 0 {
		return strings.Join(runs, "\n"), nil
	}

	return scanBareTokens(string(data)), nil
}

// scanTextRuns decodes <a:t> runs in document order. The xml decoder handles
// the standard entity escapes itself.
func scanTextRuns(data []byte) ([]string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.CharsetReader = charset.NewReaderLabel

	var runs []string
	var current strings.Builder
	inText := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed slide xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
				current.Reset()
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				inText = false
				if current.Len() > 0 {
					runs = append(runs, current.String())
				}
			}
		}
	}
	return runs, nil
}

// scanParagraphRuns is the second tier: scan <a:p> wrappers for nested runs.
func scanParagraphRuns(s string) []string {
	var runs []string
	seen := make(map[string]bool)
	for _, para := range paragraphPattern.FindAllString(s, -1) {
		for _, m := range textRunPattern.FindAllStringSubmatch(para, -1) {
			text := DecodeEntities(m[1])
			if strings.TrimSpace(text) == "" || seen[text] {
				continue
			}
			seen[text] = true
			runs = append(runs, text)
		}
	}
	return runs
}

// scanBareTokens is the last-resort tier: strip all markup and keep
// whitespace-delimited tokens that look like words.
func scanBareTokens(s string) string {
	stripped := DecodeEntities(tagPattern.ReplaceAllString(s, " "))

	var tokens []string
	seen := make(map[string]bool)
	for _, tok := range strings.Fields(stripped) {
		if len(tok) <= config.FallbackMinTokenLen || !containsLetter(tok) || seen[tok] {
			continue
		}
		seen[tok] = true
		tokens = append(tokens, tok)
		if len(tokens) >= config.FallbackTokenCap {
			break
		}
	}
	return strings.Join(tokens, " ")
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// DecodeEntities normalizes the standard XML entity escapes back to literal
// characters. Used by the fallback tiers that scan raw markup.
func DecodeEntities(s string) string {
	return entityReplacer.Replace(s)
}
