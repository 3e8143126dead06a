package shape

import (
	"fmt"
	"math"

	"shape-canvas/internal/config"
	"shape-canvas/pkg/render"
)

// New builds the variant named by rec.Type. Square records become a
// Rectangle with equal sides. Optional fields (fill, stroke) fall back to
// the defaults in config.
func New(rec Record) (Shape, error) {
	if !Known(rec.Type) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, rec.Type)
	}
	var f fields
	b := base{X: f.need("x", rec.X), Y: f.need("y", rec.Y)}

	fill := rec.Fill
	if fill == "" {
		fill = config.DefaultFill
	}
	c, err := render.ParseColor(fill)
	if err != nil {
		return nil, fmt.Errorf("%s: fill: %w", rec.Type, err)
	}
	b.Fill = c

	var s Shape
	switch rec.Type {
	case KindCircle:
		s = &Circle{base: b, R: f.need("r", rec.R)}
	case KindRectangle:
		s = &Rectangle{base: b, Width: f.need("width", rec.Width), Height: f.need("height", rec.Height)}
	case KindSquare:
		size := f.need("size", rec.Size)
		s = &Rectangle{base: b, Width: size, Height: size}
	case KindLine:
		s = &Line{
			base:   b,
			X2:     f.need("x2", rec.X2),
			Y2:     f.need("y2", rec.Y2),
			Stroke: f.optional("stroke", rec.Stroke, config.DefaultStroke),
		}
	case KindArc:
		s = &Arc{
			base:       b,
			AngleStart: f.need("angleStart", rec.AngleStart),
			AngleEnd:   f.need("angleEnd", rec.AngleEnd),
			Radius:     f.need("radius", rec.Radius),
		}
	case KindText:
		s = &Text{base: b, Text: rec.Text}
	}
	if f.missing != "" {
		return nil, fmt.Errorf("%s: %w: %s is required", rec.Type, ErrBadField, f.missing)
	}
	if f.invalid != "" {
		return nil, fmt.Errorf("%s: %w: %s is not finite", rec.Type, ErrBadField, f.invalid)
	}
	return s, nil
}

// Known reports whether the factory has a variant for k.
func Known(k Kind) bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// fields remembers the first missing and the first non-finite field while
// values are read.
type fields struct {
	missing string
	invalid string
}

func (f *fields) need(name string, n *Number) float64 {
	if n == nil {
		if f.missing == "" {
			f.missing = name
		}
		return 0
	}
	return f.check(name, float64(*n))
}

func (f *fields) optional(name string, n *Number, def float64) float64 {
	if n == nil {
		return def
	}
	return f.check(name, float64(*n))
}

func (f *fields) check(name string, v float64) float64 {
	if (math.IsNaN(v) || math.IsInf(v, 0)) && f.invalid == "" {
		f.invalid = name
	}
	return v
}
