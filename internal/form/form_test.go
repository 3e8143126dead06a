package form

import (
	"errors"
	"net/url"
	"testing"

	"github.com/tdewolff/test"

	"shape-canvas/internal/shape"
)

func names(fields []*Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Name
	}
	return out
}

func TestAttrName(t *testing.T) {
	test.String(t, AttrName("Circle[r]"), "r")
	test.String(t, AttrName("Arc[angleStart]"), "angleStart")
	test.String(t, AttrName("x"), "x")
}

func TestSelectTogglesRows(t *testing.T) {
	f := New()
	test.That(t, !f.AddVisible(), "add button hidden before a type is chosen")
	test.T(t, names(f.Fields()), []string{"x", "y"})

	f.Select(shape.KindLine)
	test.That(t, f.RowVisible(shape.KindLine))
	test.That(t, !f.RowVisible(shape.KindCircle))
	test.That(t, f.AddVisible())
	test.T(t, names(f.Fields()), []string{"x", "y", "Line[x2]", "Line[y2]", "Line[stroke]"})

	f.Select("Hexagon")
	test.That(t, !f.AddVisible())
	test.T(t, names(f.Fields()), []string{"x", "y"})
}

func TestSelectClearsErrors(t *testing.T) {
	f := New()
	f.AddError("bad radius")
	test.T(t, len(f.Errors()), 1)
	f.Select(shape.KindCircle)
	test.T(t, len(f.Errors()), 0)
}

func TestNext(t *testing.T) {
	f := New()
	f.Next(1)
	test.T(t, f.Selected(), shape.KindCircle)
	f.Next(-1)
	test.T(t, f.Selected(), shape.KindText)
	f.Next(1)
	test.T(t, f.Selected(), shape.KindCircle)
}

func TestRecord(t *testing.T) {
	f := New()
	f.Select(shape.KindCircle)
	test.Error(t, f.SetValue("x", "10"))
	test.Error(t, f.SetValue("y", "20"))
	test.Error(t, f.SetValue("Circle[r]", "5"))
	test.Error(t, f.SetValue("Rectangle[width]", "99"))

	rec, err := f.Record()
	test.Error(t, err)
	test.T(t, rec.Type, shape.KindCircle)
	test.That(t, rec.Width == nil, "hidden rows must not leak into the record")

	s, err := shape.New(rec)
	test.Error(t, err)
	c := s.(*shape.Circle)
	test.Float(t, c.X, 10)
	test.Float(t, c.Y, 20)
	test.Float(t, c.R, 5)
}

func TestRecordBadNumber(t *testing.T) {
	f := New()
	f.Select(shape.KindSquare)
	test.Error(t, f.SetValue("Square[size]", "big"))
	_, err := f.Record()
	test.That(t, errors.Is(err, shape.ErrBadField))

	test.That(t, f.SetValue("nope", "1") != nil)
}

func TestParseValues(t *testing.T) {
	values := url.Values{
		"type":              {"Rectangle"},
		"x":                 {"1"},
		"y":                 {"2"},
		"Rectangle[width]":  {"30"},
		"Rectangle[height]": {"40"},
		"Circle[r]":         {"oops"},
		"fill":              {"red"},
	}
	rec, err := ParseValues(values)
	test.Error(t, err)
	test.T(t, rec.Type, shape.KindRectangle)
	test.Float(t, float64(*rec.Width), 30)
	test.Float(t, float64(*rec.Height), 40)
	test.That(t, rec.R == nil)
	test.String(t, rec.Fill, "red")

	_, err = ParseValues(url.Values{"type": {"Circle"}, "Circle[depth]": {"1"}})
	test.That(t, errors.Is(err, shape.ErrBadField))
}

func TestParseValuesExtraFields(t *testing.T) {
	for i := 0; i < 20; i++ {
		rec, err := ParseValues(url.Values{
			"type":      {"Circle"},
			"x":         {"1"},
			"y":         {"2"},
			"r":         {"3"},
			"Circle[r]": {"7"},
			"submit":    {"Add"},
		})
		test.Error(t, err)
		test.Float(t, float64(*rec.R), 7)
	}

	_, err := ParseValues(url.Values{"type": {"Circle"}, "r": {"x"}})
	test.That(t, errors.Is(err, shape.ErrBadField))
}
