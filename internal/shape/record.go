package shape

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is a JSON number that also accepts numeric strings, since form
// fields always arrive as text.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := ParseNumber(s)
		if err != nil {
			return err
		}
		*n = v
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*n = Number(v)
	return nil
}

// ParseNumber parses a finite decimal number, ignoring surrounding spaces.
func ParseNumber(s string) (Number, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrBadField, s)
	}
	return Number(v), nil
}

// Num returns a pointer to n, for building records in code.
func Num(n float64) *Number {
	v := Number(n)
	return &v
}

// Record is the plain description of a shape, as served by /shapes and
// built by the form. Only the fields of its Type are meaningful.
type Record struct {
	Type Kind    `json:"type"`
	X    *Number `json:"x,omitempty"`
	Y    *Number `json:"y,omitempty"`

	R *Number `json:"r,omitempty"`

	Width  *Number `json:"width,omitempty"`
	Height *Number `json:"height,omitempty"`
	Size   *Number `json:"size,omitempty"`

	X2     *Number `json:"x2,omitempty"`
	Y2     *Number `json:"y2,omitempty"`
	Stroke *Number `json:"stroke,omitempty"`

	AngleStart *Number `json:"angleStart,omitempty"`
	AngleEnd   *Number `json:"angleEnd,omitempty"`
	Radius     *Number `json:"radius,omitempty"`

	Text string `json:"text,omitempty"`
	Fill string `json:"fill,omitempty"`
}

// Set assigns a field by its record name. Numeric fields are parsed from
// value; unknown names are rejected.
func (r *Record) Set(name, value string) error {
	switch name {
	case "type":
		r.Type = Kind(value)
		return nil
	case "text":
		r.Text = value
		return nil
	case "fill":
		r.Fill = value
		return nil
	}

	field := r.numberField(name)
	if field == nil {
		return fmt.Errorf("%w: unknown field %q", ErrBadField, name)
	}
	if strings.TrimSpace(value) == "" {
		*field = nil
		return nil
	}
	n, err := ParseNumber(value)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*field = &n
	return nil
}

// HasField reports whether name is a record field that Set accepts.
func HasField(name string) bool {
	switch name {
	case "type", "text", "fill":
		return true
	}
	return new(Record).numberField(name) != nil
}

func (r *Record) numberField(name string) **Number {
	switch name {
	case "x":
		return &r.X
	case "y":
		return &r.Y
	case "r":
		return &r.R
	case "width":
		return &r.Width
	case "height":
		return &r.Height
	case "size":
		return &r.Size
	case "x2":
		return &r.X2
	case "y2":
		return &r.Y2
	case "stroke":
		return &r.Stroke
	case "angleStart":
		return &r.AngleStart
	case "angleEnd":
		return &r.AngleEnd
	case "radius":
		return &r.Radius
	}
	return nil
}
