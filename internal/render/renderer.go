package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"
	"time"

	"github.com/akurella/DeckAPI/internal/config"
	"github.com/akurella/DeckAPI/internal/domain/deckModel"
	"github.com/akurella/DeckAPI/internal/pptx"
)

// RenderTimeoutError marks a thumbnail decode that exceeded its deadline.
// Isolated per slide - the renderer falls back to a placeholder.
type RenderTimeoutError struct {
	Asset string
}

func (e *RenderTimeoutError) Error() string {
	return fmt.Sprintf("timed out decoding image %s", e.Asset)
}

// Options configures slide rendering. GeneratedAt is the footer stamp and is
// part of the input, so the same descriptor + media + options always produce
// byte-identical PNG output.
type Options struct {
	Width              int
	Height             int
	GeneratedAt        string
	Fonts              *FontCache
	ImageDecodeTimeout time.Duration
}

func DefaultOptions(generatedAt string, fonts *FontCache) Options {
	return Options{
		Width:              config.CanvasWidth,
		Height:             config.CanvasHeight,
		GeneratedAt:        generatedAt,
		Fonts:              fonts,
		ImageDecodeTimeout: config.ThumbnailDecodeTO,
	}
}

var (
	brandTop     = color.RGBA{R: 63, G: 81, B: 181, A: 255}
	brandBottom  = color.RGBA{R: 103, G: 58, B: 183, A: 255}
	bgTop        = color.RGBA{R: 241, G: 245, B: 249, A: 255}
	bgBottom     = color.RGBA{R: 203, G: 213, B: 225, A: 255}
	panelWhite   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	panelShadow  = color.RGBA{R: 15, G: 23, B: 42, A: 60}
	footerSlate  = color.RGBA{R: 30, G: 41, B: 59, A: 255}
	textDark     = color.RGBA{R: 30, G: 41, B: 59, A: 255}
	textMuted    = color.RGBA{R: 100, G: 116, B: 139, A: 255}
	textOnBrand  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	errorRed     = color.RGBA{R: 185, G: 28, B: 28, A: 255}
	thumbBorder  = color.RGBA{R: 148, G: 163, B: 184, A: 255}
	thumbBackdrop = color.RGBA{R: 226, G: 232, B: 240, A: 255}
)

const (
	titleSize  = 52.0
	bodySize   = 34.0
	labelSize  = 40.0
	footerSize = 22.0
)

// RenderSlide turns one page descriptor plus the shared media map into a
// fixed-size PNG. All slides of a deck share the same dimensions so the
// viewer can apply uniform scaling.
func RenderSlide(desc deckModel.PageDescriptor, media map[string]string, opts Options) ([]byte, error) {
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = config.CanvasWidth
	}
	if h <= 0 {
		h = config.CanvasHeight
	}
	fonts := opts.Fonts
	if fonts == nil {
		fonts = NewFontCache()
	}

	c := NewCanvas(w, h, fonts)

	// Background and header bar
	c.FillVerticalGradient(image.Rect(0, 0, w, h), bgTop, bgBottom)
	c.FillVerticalGradient(image.Rect(0, 0, w, config.HeaderBarHeight), brandTop, brandBottom)
	c.DrawTextLine(fmt.Sprintf("Slide %d", desc.Index), 60, config.HeaderBarHeight/2+14, labelSize, true, textOnBrand)
	c.FillCircle(w-100, config.HeaderBarHeight/2, 28, color.RGBA{R: 255, G: 255, B: 255, A: 90})
	c.FillCircle(w-100, config.HeaderBarHeight/2, 14, textOnBrand)

	// Content panel with drop shadow
	panel := image.Rect(100, config.HeaderBarHeight+60, w-100, h-config.FooterBarHeight-40)
	c.FillRect(panel.Add(image.Pt(10, 10)), panelShadow)
	c.FillRect(panel, panelWhite)

	drawContent(c, desc, panel)

	if desc.HasImages {
		drawThumbnail(c, media, opts)
	}

	// Footer bar
	footer := image.Rect(0, h-config.FooterBarHeight, w, h)
	c.FillRect(footer, footerSlate)
	c.DrawTextLine(fmt.Sprintf("Slide %d", desc.Index), 60, h-config.FooterBarHeight/2+8, footerSize, false, textOnBrand)
	if opts.GeneratedAt != "" {
		stamp := "Generated " + opts.GeneratedAt
		c.DrawTextLine(stamp, w-60-c.MeasureText(stamp, footerSize, false), h-config.FooterBarHeight/2+8, footerSize, false, textOnBrand)
	}

	return c.EncodePNG()
}

func drawContent(c Canvas, desc deckModel.PageDescriptor, panel image.Rectangle) {
	maxWidth := panel.Dx() - 2*80
	x := panel.Min.X + 80
	y := panel.Min.Y + 100

	if desc.ErrorFlag {
		c.DrawTextLine("Slide could not be processed", x, y, titleSize, true, errorRed)
		y += c.LineHeight(titleSize, true) + 20
		for _, line := range wrapText(c, desc.ErrorMessage, bodySize, false, maxWidth) {
			c.DrawTextLine(line, x, y, bodySize, false, textMuted)
			y += c.LineHeight(bodySize, false)
		}
		return
	}

	if !desc.HasText {
		msg := "No text content available for this slide"
		mx := panel.Min.X + (panel.Dx()-c.MeasureText(msg, bodySize, false))/2
		c.DrawTextLine(msg, mx, panel.Min.Y+panel.Dy()/2, bodySize, false, textMuted)
		return
	}

	lines := strings.Split(desc.ExtractedText, "\n")
	drawn := 0

	// First line is the title, centered and bold
	for i, line := range lines {
		if drawn >= config.MaxRenderedLines {
			break //remaining text is not drawn for very dense slides
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if i == 0 {
			for _, wrapped := range wrapText(c, line, titleSize, true, maxWidth) {
				if drawn >= config.MaxRenderedLines {
					break
				}
				tx := panel.Min.X + (panel.Dx()-c.MeasureText(wrapped, titleSize, true))/2
				c.DrawTextLine(wrapped, tx, y, titleSize, true, textDark)
				y += c.LineHeight(titleSize, true)
				drawn++
			}
			y += 30
			continue
		}
		for j, wrapped := range wrapText(c, line, bodySize, false, maxWidth-50) {
			if drawn >= config.MaxRenderedLines {
				break
			}
			if j == 0 {
				c.DrawTextLine("•", x, y, bodySize, false, textDark)
			}
			c.DrawTextLine(wrapped, x+50, y, bodySize, false, textDark)
			y += c.LineHeight(bodySize, false)
			drawn++
		}
	}
}

func drawThumbnail(c Canvas, media map[string]string, opts Options) {
	w := opts.Width
	box := image.Rect(w-140-config.ThumbnailBoxW, config.HeaderBarHeight+100, w-140, config.HeaderBarHeight+100+config.ThumbnailBoxH)

	path, uri, ok := pptx.FirstAsset(media)
	if ok {
		if raw, valid := pptx.DecodeDataURI(uri); valid {
			img, err := decodeImageWithTimeout(raw, path, opts.ImageDecodeTimeout)
			if err == nil {
				c.DrawImageFit(img, box)
				return
			}
		}
	}

	// Decode failed or timed out - draw the generic placeholder instead of a
	// blank box
	c.FillRect(box, thumbBackdrop)
	c.FillCircle(box.Min.X+box.Dx()/2, box.Min.Y+box.Dy()/2-20, 30, thumbBorder)
	label := fmt.Sprintf("%d image(s)", len(media))
	lx := box.Min.X + (box.Dx()-c.MeasureText(label, footerSize, false))/2
	c.DrawTextLine(label, lx, box.Max.Y-30, footerSize, false, textMuted)
}

func decodeImageWithTimeout(data []byte, asset string, timeout time.Duration) (image.Image, error) {
	if timeout <= 0 {
		timeout = config.ThumbnailDecodeTO
	}

	type result struct {
		img image.Image
		err error
	}
	resChan := make(chan result, 1)

	go func() {
		img, _, err := image.Decode(bytes.NewReader(data))
		resChan <- result{img, err}
	}()

	select {
	case r := <-resChan:
		return r.img, r.err
	case <-time.After(timeout):
		return nil, &RenderTimeoutError{Asset: asset}
	}
}

// wrapText greedily accumulates words into a line while the measured width
// stays under maxWidth.
func wrapText(c Canvas, text string, size float64, bold bool, maxWidth int) []string {
	words := strings.Fields(text)
	var lines []string
	var current string

	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if current == "" || c.MeasureText(candidate, size, bold) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// ToDataURI wraps rendered PNG bytes for clients that want an inline image.
func ToDataURI(pngBytes []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes)
}
