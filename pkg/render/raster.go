package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"shape-canvas/internal/utils"
)

var (
	sourceOnce sync.Once
	sourceErr  error
	fontSource *text.FontSource
)

func sansSerifSource() (*text.FontSource, error) {
	sourceOnce.Do(func() {
		fontSource, sourceErr = text.NewFontSource(goregular.TTF)
	})
	return fontSource, sourceErr
}

// Raster draws into an in-memory RGBA image with gg's software renderer.
// The first rendering error is kept and reported by Err and the encoders.
type Raster struct {
	dc    *gg.Context
	faces map[float64]text.Face
	err   error
}

func NewRaster(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid raster size %dx%d", width, height)
	}
	return &Raster{
		dc:    gg.NewContext(width, height),
		faces: make(map[float64]text.Face),
	}, nil
}

// Close releases the context.
func (r *Raster) Close() error {
	return r.dc.Close()
}

// Err returns the first rendering error.
func (r *Raster) Err() error {
	return r.err
}

func (r *Raster) check(err error) {
	if err != nil && r.err == nil {
		r.err = err
	}
}

// Resize changes the raster size, wiping its content.
func (r *Raster) Resize(width, height int) error {
	return r.dc.Resize(width, height)
}

func (r *Raster) Size() (w, h int) {
	return r.dc.Width(), r.dc.Height()
}

func (r *Raster) Clear() {
	r.dc.Clear()
}

// Background fills the whole raster with c.
func (r *Raster) Background(c color.Color) {
	r.dc.ClearWithColor(gg.FromColor(c))
}

func (r *Raster) FillCircle(x, y, radius float64, fill color.Color) {
	r.dc.ClearPath()
	r.dc.SetColor(fill)
	r.dc.DrawCircle(x, y, radius)
	r.check(r.dc.Fill())
}

func (r *Raster) FillRect(x, y, w, h float64, fill color.Color) {
	r.dc.ClearPath()
	r.dc.SetColor(fill)
	r.dc.DrawRectangle(x, y, w, h)
	r.check(r.dc.Fill())
}

func (r *Raster) StrokeLine(x1, y1, x2, y2, width float64, stroke color.Color) {
	r.dc.ClearPath()
	r.dc.SetColor(stroke)
	r.dc.SetLineWidth(width)
	r.dc.DrawLine(x1, y1, x2, y2)
	r.check(r.dc.Stroke())
}

func (r *Raster) StrokeArc(x, y, radius, start, end, width float64, stroke color.Color) {
	sweep := utils.ArcSweep(start, end)
	if sweep == 0 {
		return
	}
	r.dc.ClearPath()
	r.dc.SetColor(stroke)
	r.dc.SetLineWidth(width)
	r.dc.DrawArc(x, y, radius, start, start+sweep)
	r.check(r.dc.Stroke())
}

func (r *Raster) FillText(s string, x, y, size float64, fill color.Color) {
	face, ok := r.faces[size]
	if !ok {
		src, err := sansSerifSource()
		if err != nil {
			r.check(fmt.Errorf("failed to load font: %w", err))
			return
		}
		face = src.Face(size)
		r.faces[size] = face
	}
	r.dc.SetFont(face)
	r.dc.SetColor(fill)
	r.dc.DrawString(s, x, y)
}

// Image returns the rendered image.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// EncodePNG writes the raster as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	if r.err != nil {
		return r.err
	}
	return r.dc.EncodePNG(w)
}

// SavePNG writes the raster to a PNG file.
func (r *Raster) SavePNG(path string) error {
	if r.err != nil {
		return r.err
	}
	return r.dc.SavePNG(path)
}
