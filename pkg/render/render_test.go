package render

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

var red = color.NRGBA{255, 0, 0, 255}

func TestRasterFillCircle(t *testing.T) {
	r, err := NewRaster(100, 100)
	test.Error(t, err)
	defer r.Close()

	r.FillCircle(50, 50, 20, red)
	test.Error(t, r.Err())

	cr, cg, _, ca := r.Image().At(50, 50).RGBA()
	test.T(t, cr>>8, uint32(255))
	test.T(t, cg, uint32(0))
	test.T(t, ca>>8, uint32(255))

	_, _, _, ca = r.Image().At(2, 2).RGBA()
	test.T(t, ca, uint32(0))

	r.Clear()
	_, _, _, ca = r.Image().At(50, 50).RGBA()
	test.T(t, ca, uint32(0))
}

func TestRasterEncodePNG(t *testing.T) {
	r, err := NewRaster(40, 30)
	test.Error(t, err)
	defer r.Close()

	r.Background(color.White)
	r.FillRect(5, 5, 10, 10, red)
	r.StrokeLine(0, 0, 40, 30, 2, color.Black)
	r.StrokeArc(20, 15, 10, 0, math.Pi, 1, color.Black)

	var buf bytes.Buffer
	test.Error(t, r.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	test.Error(t, err)
	test.T(t, img.Bounds().Dx(), 40)
	test.T(t, img.Bounds().Dy(), 30)

	path := filepath.Join(t.TempDir(), "out.png")
	test.Error(t, r.SavePNG(path))
}

func TestRasterSize(t *testing.T) {
	_, err := NewRaster(0, 10)
	test.That(t, err != nil)

	r, err := NewRaster(10, 10)
	test.Error(t, err)
	defer r.Close()
	test.Error(t, r.Resize(30, 20))
	w, h := r.Size()
	test.T(t, w, 30)
	test.T(t, h, 20)
}

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	s := NewSVG(&buf, 200, 100)
	s.FillCircle(10.4, 20.6, 5, color.NRGBA{0, 0, 200, 128})
	s.FillRect(30, 30, -10, 5, red)
	s.StrokeLine(0, 0, 10, 10, 3, red)
	s.StrokeArc(50, 50, 10, 0, math.Pi/2, 1, red)
	s.StrokeArc(50, 50, 10, 0, 2*math.Pi, 1, red)
	s.FillText("a < b", 5, 35, 30, red)
	test.Error(t, s.Close())

	out := buf.String()
	for _, want := range []string{
		`<svg`,
		`cx="10" cy="21" r="5"`,
		`fill:rgb(0,0,200);fill-opacity:0.5`,
		`x="20" y="30" width="10" height="5"`,
		`stroke:rgb(255,0,0);stroke-width:3`,
		`d="M60 50 A10 10 0 0 1 50 60"`,
		`font-size:30px`,
		`</svg>`,
	} {
		test.That(t, strings.Contains(out, want), "missing", want, "in", out)
	}
	test.T(t, strings.Count(out, "<circle"), 2)
	test.That(t, !strings.Contains(out, "a < b"), "text must be escaped")
}

func TestFace(t *testing.T) {
	a, err := Face(14)
	test.Error(t, err)
	b, err := Face(14)
	test.Error(t, err)
	test.That(t, a == b, "faces must be cached")
}

func TestRasterFillText(t *testing.T) {
	r, err := NewRaster(120, 60)
	test.Error(t, err)
	defer r.Close()

	r.Background(color.White)
	r.FillText("HH", 10, 40, 30, color.Black)
	r.FillText("HH", 10, 40, 30, color.Black)
	test.Error(t, r.Err())

	dark := 0
	img := r.Image()
	for y := 0; y < 60; y++ {
		for x := 0; x < 120; x++ {
			if cr, _, _, _ := img.At(x, y).RGBA(); cr < 0x8000 {
				dark++
				test.That(t, y <= 40 && x >= 10, "ink outside the glyph box at", x, y)
			}
		}
	}
	test.That(t, dark > 20, "text left no ink, dark pixels:", dark)
}
