// Package shape defines the drawable shape variants and the factory that
// builds them from plain records.
package shape

import (
	"errors"
	"image/color"
)

// Kind is the type tag carried by every record.
type Kind string

const (
	KindCircle    Kind = "Circle"
	KindRectangle Kind = "Rectangle"
	KindSquare    Kind = "Square"
	KindLine      Kind = "Line"
	KindArc       Kind = "Arc"
	KindText      Kind = "Text"
)

// Kinds lists every tag the factory understands, in form order.
var Kinds = []Kind{KindCircle, KindRectangle, KindSquare, KindLine, KindArc, KindText}

var (
	// ErrUnknownKind is returned by New for a type tag it has no variant for.
	ErrUnknownKind = errors.New("shape type not handled in factory")
	// ErrBadField is returned by New when a required field is missing or
	// not a number.
	ErrBadField = errors.New("bad shape field")
)

// Surface is a render target. Coordinates are pixels with y growing down,
// angles are radians measured clockwise from the positive x axis.
type Surface interface {
	Size() (w, h int)
	Clear()
	FillCircle(x, y, r float64, fill color.Color)
	FillRect(x, y, w, h float64, fill color.Color)
	StrokeLine(x1, y1, x2, y2, width float64, stroke color.Color)
	StrokeArc(x, y, r, start, end, width float64, stroke color.Color)
	FillText(s string, x, y, size float64, fill color.Color)
}

// Shape is a constructed variant ready to draw.
type Shape interface {
	Kind() Kind
	Origin() (x, y float64)
	// Record converts the shape back to its plain form.
	Record() Record
	Draw(s Surface)
}
