package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Canvas is the 2D raster surface the slide renderer draws on. Keeping the
// drawing primitives behind an interface keeps the renderer testable
// headlessly.
type Canvas interface {
	FillRect(r image.Rectangle, c color.RGBA)
	FillVerticalGradient(r image.Rectangle, top, bottom color.RGBA)
	FillCircle(cx, cy, radius int, c color.RGBA)
	DrawTextLine(text string, x, baseline int, size float64, bold bool, c color.RGBA)
	MeasureText(text string, size float64, bold bool) int
	LineHeight(size float64, bold bool) int
	DrawImageFit(src image.Image, box image.Rectangle)
	EncodePNG() ([]byte, error)
}

type rasterCanvas struct {
	img   *image.RGBA
	fonts *FontCache
}

// NewCanvas creates a software raster canvas of the given size backed by the
// shared font cache.
func NewCanvas(w, h int, fonts *FontCache) Canvas {
	return &rasterCanvas{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		fonts: fonts,
	}
}

func (c *rasterCanvas) FillRect(r image.Rectangle, col color.RGBA) {
	draw.Draw(c.img, r.Intersect(c.img.Bounds()), &image.Uniform{col}, image.Point{}, draw.Over)
}

func (c *rasterCanvas) FillVerticalGradient(r image.Rectangle, top, bottom color.RGBA) {
	r = r.Intersect(c.img.Bounds())
	height := r.Dy()
	if height <= 0 {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		t := float64(y-r.Min.Y) / float64(height)
		row := color.RGBA{
			R: lerp(top.R, bottom.R, t),
			G: lerp(top.G, bottom.G, t),
			B: lerp(top.B, bottom.B, t),
			A: 255,
		}
		draw.Draw(c.img, image.Rect(r.Min.X, y, r.Max.X, y+1), &image.Uniform{row}, image.Point{}, draw.Src)
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

func (c *rasterCanvas) FillCircle(cx, cy, radius int, col color.RGBA) {
	for dy := -radius; dy <= radius; dy++ {
		dxMax := 0
		for dx := radius; dx >= 0; dx-- {
			if dx*dx+dy*dy <= radius*radius {
				dxMax = dx
				break
			}
		}
		row := image.Rect(cx-dxMax, cy+dy, cx+dxMax+1, cy+dy+1)
		draw.Draw(c.img, row.Intersect(c.img.Bounds()), &image.Uniform{col}, image.Point{}, draw.Over)
	}
}

func (c *rasterCanvas) DrawTextLine(text string, x, baseline int, size float64, bold bool, col color.RGBA) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  &image.Uniform{col},
		Face: c.fonts.Face(size, bold),
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(text)
}

func (c *rasterCanvas) MeasureText(text string, size float64, bold bool) int {
	return font.MeasureString(c.fonts.Face(size, bold), text).Ceil()
}

func (c *rasterCanvas) LineHeight(size float64, bold bool) int {
	m := c.fonts.Face(size, bold).Metrics()
	return (m.Ascent + m.Descent).Ceil() + 6
}

// DrawImageFit scales the image into the box preserving aspect ratio and
// centers it. Nearest-neighbor keeps the output deterministic.
func (c *rasterCanvas) DrawImageFit(src image.Image, box image.Rectangle) {
	sw := src.Bounds().Dx()
	sh := src.Bounds().Dy()
	if sw == 0 || sh == 0 || box.Dx() <= 0 || box.Dy() <= 0 {
		return
	}

	scale := float64(box.Dx()) / float64(sw)
	if s := float64(box.Dy()) / float64(sh); s < scale {
		scale = s
	}
	dw := int(float64(sw) * scale)
	dh := int(float64(sh) * scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	x0 := box.Min.X + (box.Dx()-dw)/2
	y0 := box.Min.Y + (box.Dy()-dh)/2
	scaled := scaleImage(src, dw, dh)
	draw.Draw(c.img, image.Rect(x0, y0, x0+dw, y0+dh), scaled, image.Point{}, draw.Over)
}

func (c *rasterCanvas) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, c.img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// scaleImage resizes src to the target width and height using nearest-neighbor.
func scaleImage(src image.Image, dstW, dstH int) image.Image {
	srcBounds := src.Bounds()
	srcW := srcBounds.Dx()
	srcH := srcBounds.Dy()

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	for y := 0; y < dstH; y++ {
		for x := 0; x < dstW; x++ {
			srcX := srcBounds.Min.X + x*srcW/dstW
			srcY := srcBounds.Min.Y + y*srcH/dstH
			dst.Set(x, y, src.At(srcX, srcY))
		}
	}
	return dst
}
