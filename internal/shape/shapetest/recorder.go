// Package shapetest provides a Surface that records draw calls.
package shapetest

import (
	"fmt"
	"image/color"
	"strings"
	"sync"
)

// Op is one recorded draw call.
type Op struct {
	Name  string
	Args  []float64
	Text  string
	Color color.Color
}

func (op Op) String() string {
	args := make([]string, len(op.Args))
	for i, a := range op.Args {
		args[i] = fmt.Sprintf("%g", a)
	}
	if op.Text != "" {
		args = append(args, fmt.Sprintf("%q", op.Text))
	}
	return op.Name + "(" + strings.Join(args, ", ") + ")"
}

// Recorder implements shape.Surface and keeps every call in order.
type Recorder struct {
	mu     sync.Mutex
	W, H   int
	Ops    []Op
	Clears int
}

func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) add(op Op) {
	r.mu.Lock()
	r.Ops = append(r.Ops, op)
	r.mu.Unlock()
}

// Names returns the recorded call names, in order.
func (r *Recorder) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, len(r.Ops))
	for i, op := range r.Ops {
		names[i] = op.Name
	}
	return names
}

func (r *Recorder) Size() (w, h int) { return r.W, r.H }

func (r *Recorder) Clear() {
	r.mu.Lock()
	r.Ops = nil
	r.Clears++
	r.mu.Unlock()
}

func (r *Recorder) FillCircle(x, y, radius float64, fill color.Color) {
	r.add(Op{Name: "FillCircle", Args: []float64{x, y, radius}, Color: fill})
}

func (r *Recorder) FillRect(x, y, w, h float64, fill color.Color) {
	r.add(Op{Name: "FillRect", Args: []float64{x, y, w, h}, Color: fill})
}

func (r *Recorder) StrokeLine(x1, y1, x2, y2, width float64, stroke color.Color) {
	r.add(Op{Name: "StrokeLine", Args: []float64{x1, y1, x2, y2, width}, Color: stroke})
}

func (r *Recorder) StrokeArc(x, y, radius, start, end, width float64, stroke color.Color) {
	r.add(Op{Name: "StrokeArc", Args: []float64{x, y, radius, start, end, width}, Color: stroke})
}

func (r *Recorder) FillText(s string, x, y, size float64, fill color.Color) {
	r.add(Op{Name: "FillText", Args: []float64{x, y, size}, Text: s, Color: fill})
}
