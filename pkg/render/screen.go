// pkg/render/screen.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"shape-canvas/internal/logging"
	"shape-canvas/internal/utils"
)

// Screen draws onto an ebiten image.
type Screen struct {
	img       *ebiten.Image
	strokeImg *ebiten.Image
	strokeVs  []ebiten.Vertex
	strokeIs  []uint16
}

func NewScreen(img *ebiten.Image) *Screen {
	strokeImg := ebiten.NewImage(1, 1)
	strokeImg.Fill(color.White)
	return &Screen{
		img:       img,
		strokeImg: strokeImg,
		strokeVs:  make([]ebiten.Vertex, 0, 64),
		strokeIs:  make([]uint16, 0, 64),
	}
}

// SetTarget points the screen at another image, e.g. the frame passed to
// Draw.
func (s *Screen) SetTarget(img *ebiten.Image) {
	s.img = img
}

func (s *Screen) Size() (w, h int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Screen) Clear() {
	s.img.Clear()
}

func (s *Screen) FillCircle(x, y, r float64, fill color.Color) {
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(r), fill, true)
}

func (s *Screen) FillRect(x, y, w, h float64, fill color.Color) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), fill, true)
}

func (s *Screen) StrokeLine(x1, y1, x2, y2, width float64, stroke color.Color) {
	vector.StrokeLine(s.img, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), stroke, true)
}

func (s *Screen) StrokeArc(x, y, r, start, end, width float64, stroke color.Color) {
	sweep := utils.ArcSweep(start, end)
	if sweep == 0 {
		return
	}
	path := vector.Path{}
	path.Arc(float32(x), float32(y), float32(r), float32(start), float32(start+sweep), vector.Clockwise)

	s.strokeVs, s.strokeIs = path.AppendVerticesAndIndicesForStroke(s.strokeVs[:0], s.strokeIs[:0], &vector.StrokeOptions{
		Width: float32(width),
	})
	cr, cg, cb, ca := stroke.RGBA()
	for i := range s.strokeVs {
		s.strokeVs[i].SrcX = 0
		s.strokeVs[i].SrcY = 0
		s.strokeVs[i].ColorR = float32(cr) / 0xffff
		s.strokeVs[i].ColorG = float32(cg) / 0xffff
		s.strokeVs[i].ColorB = float32(cb) / 0xffff
		s.strokeVs[i].ColorA = float32(ca) / 0xffff
	}
	s.img.DrawTriangles(s.strokeVs, s.strokeIs, s.strokeImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (s *Screen) FillText(str string, x, y, size float64, fill color.Color) {
	face, err := Face(size)
	if err != nil {
		logging.Logger().Warn("text skipped", "err", err)
		return
	}
	text.Draw(s.img, str, face, int(x), int(y), fill)
}
