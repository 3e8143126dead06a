package server

import (
	"context"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/tdewolff/test"

	"shape-canvas/internal/entity"
	"shape-canvas/internal/shape"
	"shape-canvas/internal/source"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	s := New(entity.NewScene(120, 80))
	test.Error(t, s.Seed([]shape.Record{
		{Type: shape.KindCircle, X: shape.Num(20), Y: shape.Num(20), R: shape.Num(10)},
		{Type: shape.KindLine, X: shape.Num(0), Y: shape.Num(0), X2: shape.Num(100), Y2: shape.Num(60), Stroke: shape.Num(2)},
	}))
	srv := httptest.NewServer(s)
	t.Cleanup(srv.Close)
	return s, srv
}

func TestListShapes(t *testing.T) {
	_, srv := newTestServer(t)

	recs, err := source.NewHTTP(srv.URL).Shapes(context.Background())
	test.Error(t, err)
	test.T(t, len(recs), 2)
	test.T(t, recs[0].Type, shape.KindCircle)
	test.Float(t, float64(*recs[0].R), 10)
	test.Float(t, float64(*recs[1].Stroke), 2)
}

func TestAddShapeJSON(t *testing.T) {
	s, srv := newTestServer(t)

	client := source.NewHTTP(srv.URL)
	rec := shape.Record{Type: shape.KindText, X: shape.Num(5), Y: shape.Num(30), Text: "hi"}
	test.Error(t, client.Add(context.Background(), rec))
	test.T(t, s.scene.Len(), 3)

	err := client.Add(context.Background(), shape.Record{Type: "Hexagon", X: shape.Num(0), Y: shape.Num(0)})
	test.That(t, err != nil && strings.Contains(err.Error(), "400"), "unknown type must be rejected with 400, got", err)
	test.T(t, s.scene.Len(), 3)
}

func TestAddShapeForm(t *testing.T) {
	s, srv := newTestServer(t)

	resp, err := http.PostForm(srv.URL+"/shapes", url.Values{
		"type":         {"Square"},
		"x":            {"1"},
		"y":            {"2"},
		"Square[size]": {"9"},
	})
	test.Error(t, err)
	resp.Body.Close()
	test.T(t, resp.StatusCode, http.StatusCreated)

	shapes := s.scene.Shapes()
	r, ok := shapes[len(shapes)-1].(*shape.Rectangle)
	test.That(t, ok, "square must become a rectangle")
	test.Float(t, r.Width, 9)
	test.Float(t, r.Height, 9)

	resp, err = http.PostForm(srv.URL+"/shapes", url.Values{"type": {"Circle"}, "x": {"a"}})
	test.Error(t, err)
	resp.Body.Close()
	test.T(t, resp.StatusCode, http.StatusBadRequest)
}

func TestClearShapes(t *testing.T) {
	s, srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/shapes", nil)
	test.Error(t, err)
	resp, err := http.DefaultClient.Do(req)
	test.Error(t, err)
	resp.Body.Close()
	test.T(t, resp.StatusCode, http.StatusNoContent)
	test.T(t, s.scene.Len(), 0)
}

func TestRenderPNG(t *testing.T) {
	_, srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/render.png?w=60&h=40")
	test.Error(t, err)
	defer resp.Body.Close()
	test.T(t, resp.StatusCode, http.StatusOK)
	test.String(t, resp.Header.Get("Content-Type"), "image/png")

	img, err := png.Decode(resp.Body)
	test.Error(t, err)
	test.T(t, img.Bounds().Dx(), 60)
	test.T(t, img.Bounds().Dy(), 40)

	resp2, err := http.Get(srv.URL + "/render.png?w=-1")
	test.Error(t, err)
	resp2.Body.Close()
	test.T(t, resp2.StatusCode, http.StatusBadRequest)
}

func TestRenderSVG(t *testing.T) {
	_, srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/render.svg")
	test.Error(t, err)
	defer resp.Body.Close()
	test.T(t, resp.StatusCode, http.StatusOK)

	body, err := io.ReadAll(resp.Body)
	test.Error(t, err)
	out := string(body)
	test.That(t, strings.Contains(out, `width="120"`), "svg must use the scene size")
	test.That(t, strings.Contains(out, "<circle"))
	test.That(t, strings.Contains(out, "<line"))
}

func TestSeedFile(t *testing.T) {
	recs, err := source.LoadFile("../../testdata/shapes.json")
	test.Error(t, err)

	s := New(entity.NewScene(800, 533))
	test.Error(t, s.Seed(recs))
	test.T(t, s.scene.Len(), len(recs))

	err = s.Seed([]shape.Record{{Type: "Hexagon"}})
	test.That(t, err != nil, "unknown type must fail the seed")
	test.T(t, s.scene.Len(), len(recs))
}

func TestAddShapeRejectsNonFinite(t *testing.T) {
	s, srv := newTestServer(t)

	for _, body := range []string{
		`{"type":"Circle","x":"NaN","y":0,"r":5}`,
		`{"type":"Circle","x":1,"y":0,"r":"Inf"}`,
		`{"type":"Line","x":0,"y":0,"x2":1,"y2":1,"stroke":"-Inf"}`,
	} {
		resp, err := http.Post(srv.URL+"/shapes", "application/json", strings.NewReader(body))
		test.Error(t, err)
		resp.Body.Close()
		test.T(t, resp.StatusCode, http.StatusBadRequest)
	}
	test.T(t, s.scene.Len(), 2)

	recs, err := source.NewHTTP(srv.URL).Shapes(context.Background())
	test.Error(t, err)
	test.T(t, len(recs), 2)
}

func TestAddShapeFormSubmitButton(t *testing.T) {
	s, srv := newTestServer(t)

	resp, err := http.PostForm(srv.URL+"/shapes", url.Values{
		"type":      {"Circle"},
		"x":         {"4"},
		"y":         {"5"},
		"Circle[r]": {"6"},
		"submit":    {"Add"},
	})
	test.Error(t, err)
	resp.Body.Close()
	test.T(t, resp.StatusCode, http.StatusCreated)
	test.T(t, s.scene.Len(), 3)
}
