package shape

import (
	"image/color"

	"shape-canvas/internal/config"
	"shape-canvas/pkg/render"
)

// base carries the position and fill every variant shares.
type base struct {
	X, Y float64
	Fill color.NRGBA
}

func (b base) Origin() (x, y float64) { return b.X, b.Y }

func (b base) record(k Kind) Record {
	return Record{Type: k, X: Num(b.X), Y: Num(b.Y), Fill: render.FormatColor(b.Fill)}
}

// Circle is a filled disc centered on (X, Y).
type Circle struct {
	base
	R float64
}

func (c *Circle) Kind() Kind { return KindCircle }

func (c *Circle) Record() Record {
	rec := c.record(KindCircle)
	rec.R = Num(c.R)
	return rec
}

func (c *Circle) Draw(s Surface) {
	s.FillCircle(c.X, c.Y, c.R, c.Fill)
}

// Rectangle is a filled axis-aligned rectangle with its top-left corner at
// (X, Y). Square records also produce a Rectangle.
type Rectangle struct {
	base
	Width, Height float64
}

func (r *Rectangle) Kind() Kind { return KindRectangle }

func (r *Rectangle) Record() Record {
	rec := r.record(KindRectangle)
	rec.Width = Num(r.Width)
	rec.Height = Num(r.Height)
	return rec
}

func (r *Rectangle) Draw(s Surface) {
	s.FillRect(r.X, r.Y, r.Width, r.Height, r.Fill)
}

// Line is a segment from (X, Y) to (X2, Y2), stroked with the fill color.
type Line struct {
	base
	X2, Y2 float64
	Stroke float64
}

func (l *Line) Kind() Kind { return KindLine }

func (l *Line) Record() Record {
	rec := l.record(KindLine)
	rec.X2 = Num(l.X2)
	rec.Y2 = Num(l.Y2)
	rec.Stroke = Num(l.Stroke)
	return rec
}

func (l *Line) Draw(s Surface) {
	s.StrokeLine(l.X, l.Y, l.X2, l.Y2, l.Stroke, l.Fill)
}

// Arc is a stroked circular arc around (X, Y). Angles are radians.
type Arc struct {
	base
	AngleStart, AngleEnd float64
	Radius               float64
}

func (a *Arc) Kind() Kind { return KindArc }

func (a *Arc) Record() Record {
	rec := a.record(KindArc)
	rec.AngleStart = Num(a.AngleStart)
	rec.AngleEnd = Num(a.AngleEnd)
	rec.Radius = Num(a.Radius)
	return rec
}

func (a *Arc) Draw(s Surface) {
	s.StrokeArc(a.X, a.Y, a.Radius, a.AngleStart, a.AngleEnd, config.DefaultStroke, a.Fill)
}

// Text is a filled string whose baseline starts at (X, Y).
type Text struct {
	base
	Text string
}

func (t *Text) Kind() Kind { return KindText }

func (t *Text) Record() Record {
	rec := t.record(KindText)
	rec.Text = t.Text
	return rec
}

func (t *Text) Draw(s Surface) {
	s.FillText(t.Text, t.X, t.Y, config.TextSize, t.Fill)
}
