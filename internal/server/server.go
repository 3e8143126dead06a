// Package server serves the shape collection over HTTP and renders it
// headlessly.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"time"

	"shape-canvas/internal/config"
	"shape-canvas/internal/entity"
	"shape-canvas/internal/form"
	"shape-canvas/internal/logging"
	"shape-canvas/internal/shape"
	"shape-canvas/internal/system"
	"shape-canvas/pkg/render"
)

// Server keeps the shape list in memory.
type Server struct {
	scene    *entity.Scene
	renderer *system.RenderSystem
	mux      *http.ServeMux
}

func New(scene *entity.Scene) *Server {
	s := &Server{
		scene:    scene,
		renderer: system.NewRenderSystem(scene),
		mux:      http.NewServeMux(),
	}
	s.mux.HandleFunc("GET "+config.ShapesPath, s.listShapes)
	s.mux.HandleFunc("POST "+config.ShapesPath, s.addShape)
	s.mux.HandleFunc("DELETE "+config.ShapesPath, s.clearShapes)
	s.mux.HandleFunc("GET /render.png", s.renderPNG)
	s.mux.HandleFunc("GET /render.svg", s.renderSVG)
	return s
}

// Seed builds and stores recs. Every record must be valid.
func (s *Server) Seed(recs []shape.Record) error {
	shapes := make([]shape.Shape, 0, len(recs))
	for i, rec := range recs {
		sh, err := shape.New(rec)
		if err != nil {
			return fmt.Errorf("seed shape %d: %w", i, err)
		}
		shapes = append(shapes, sh)
	}
	for _, sh := range shapes {
		s.scene.Add(sh)
	}
	return nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rw, r)
	logging.Logger().Debug("request",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", rw.status),
		slog.Duration("took", time.Since(start)))
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (s *Server) listShapes(w http.ResponseWriter, r *http.Request) {
	shapes := s.scene.Shapes()
	recs := make([]shape.Record, len(shapes))
	for i, sh := range shapes {
		recs[i] = sh.Record()
	}
	writeJSON(w, http.StatusOK, recs)
}

func (s *Server) addShape(w http.ResponseWriter, r *http.Request) {
	rec, err := decodeRecord(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	sh, err := shape.New(rec)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.scene.Add(sh)
	logging.Logger().Info("shape added", "type", rec.Type)
	writeJSON(w, http.StatusCreated, sh.Record())
}

func (s *Server) clearShapes(w http.ResponseWriter, r *http.Request) {
	s.scene.Reset()
	w.WriteHeader(http.StatusNoContent)
}

// decodeRecord accepts a JSON body or a form post using the form's field
// names.
func decodeRecord(w http.ResponseWriter, r *http.Request) (shape.Record, error) {
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxRecordBytes)
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/json" {
		var rec shape.Record
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				return rec, errors.New("empty body")
			}
			return rec, err
		}
		return rec, nil
	}
	if err := r.ParseForm(); err != nil {
		return shape.Record{}, err
	}
	return form.ParseValues(r.PostForm)
}

// renderSize reads w and h from the query, defaulting to the scene size.
func (s *Server) renderSize(r *http.Request) (int, int, error) {
	w, h := s.scene.Size()
	for _, q := range []struct {
		name string
		dst  *int
	}{{"w", &w}, {"h", &h}} {
		v := r.URL.Query().Get(q.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 8192 {
			return 0, 0, fmt.Errorf("invalid %s %q", q.name, v)
		}
		*q.dst = n
	}
	return w, h, nil
}

func (s *Server) renderPNG(w http.ResponseWriter, r *http.Request) {
	width, height, err := s.renderSize(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	raster, err := render.NewRaster(width, height)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	defer raster.Close()

	raster.Background(config.CanvasColor)
	s.renderer.Draw(raster)
	w.Header().Set("Content-Type", "image/png")
	if err := raster.EncodePNG(w); err != nil {
		logging.Logger().Error("encode png", "err", err)
	}
}

func (s *Server) renderSVG(w http.ResponseWriter, r *http.Request) {
	width, height, err := s.renderSize(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	doc := render.NewSVG(w, width, height)
	doc.Clear()
	s.renderer.Draw(doc)
	doc.Close()
}

// writeJSON encodes v before writing the header, so an encoding failure
// answers 500 instead of a truncated body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Logger().Error("encode response", "err", err)
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(data, '\n'))
}

func writeError(w http.ResponseWriter, status int, err error) {
	logging.Logger().Warn("request rejected", "status", status, "err", err)
	http.Error(w, err.Error(), status)
}
