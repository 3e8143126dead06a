package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"shape-canvas/internal/utils"
)

// SVG writes shapes as SVG elements. Start is written by NewSVG; call
// Close to finish the document. Circle, rectangle, line and text
// coordinates are rounded to whole pixels.
type SVG struct {
	canvas *svg.SVG
	w, h   int
}

func NewSVG(w io.Writer, width, height int) *SVG {
	canvas := svg.New(w)
	canvas.Start(width, height)
	return &SVG{canvas: canvas, w: width, h: height}
}

// Close ends the document.
func (s *SVG) Close() error {
	s.canvas.End()
	return nil
}

func (s *SVG) Size() (w, h int) { return s.w, s.h }

// Clear paints over everything drawn so far. SVG output is append only.
func (s *SVG) Clear() {
	s.canvas.Rect(0, 0, s.w, s.h, "fill:white")
}

func (s *SVG) FillCircle(x, y, r float64, fill color.Color) {
	s.canvas.Circle(px(x), px(y), px(r), paint("fill", fill))
}

func (s *SVG) FillRect(x, y, w, h float64, fill color.Color) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	s.canvas.Rect(px(x), px(y), px(w), px(h), paint("fill", fill))
}

func (s *SVG) StrokeLine(x1, y1, x2, y2, width float64, stroke color.Color) {
	s.canvas.Line(px(x1), px(y1), px(x2), px(y2), paint("stroke", stroke)+";stroke-width:"+num(width))
}

func (s *SVG) StrokeArc(x, y, r, start, end, width float64, stroke color.Color) {
	style := "fill:none;" + paint("stroke", stroke) + ";stroke-width:" + num(width)
	sweep := utils.ArcSweep(start, end)
	switch {
	case sweep == 0:
		return
	case sweep >= 2*math.Pi:
		s.canvas.Circle(px(x), px(y), px(r), style)
		return
	}
	sx, sy := x+r*math.Cos(start), y+r*math.Sin(start)
	ex, ey := x+r*math.Cos(start+sweep), y+r*math.Sin(start+sweep)
	large := 0
	if sweep > math.Pi {
		large = 1
	}
	d := fmt.Sprintf("M%s %s A%s %s 0 %d 1 %s %s", num(sx), num(sy), num(r), num(r), large, num(ex), num(ey))
	s.canvas.Path(d, style)
}

func (s *SVG) FillText(str string, x, y, size float64, fill color.Color) {
	s.canvas.Text(px(x), px(y), str, paint("fill", fill)+";font-size:"+num(size)+"px;font-family:sans-serif")
}

func px(v float64) int {
	return int(math.Round(v))
}

func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// paint renders c as an SVG color property plus its opacity.
func paint(prop string, c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	style := fmt.Sprintf("%s:rgb(%d,%d,%d)", prop, n.R, n.G, n.B)
	if n.A != 255 {
		style += fmt.Sprintf(";%s-opacity:%s", prop, num(float64(n.A)/255))
	}
	return style
}
