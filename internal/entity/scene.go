// internal/entity/scene.go
package entity

import (
	"sync"

	"shape-canvas/internal/config"
	"shape-canvas/internal/shape"
)

// ID identifies a shape pushed onto the scene.
type ID uint64

// Scene is the ordered list of constructed shapes on the canvas together
// with the canvas size. It is shared by the loader goroutine and the draw
// loop.
type Scene struct {
	mu     sync.RWMutex
	nextID ID
	ids    []ID
	shapes []shape.Shape
	width  int
	height int
}

func NewScene(width, height int) *Scene {
	return &Scene{nextID: 1, width: width, height: height}
}

// Add pushes s on top of the scene and returns its ID.
func (sc *Scene) Add(s shape.Shape) ID {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	id := sc.nextID
	sc.nextID++
	sc.ids = append(sc.ids, id)
	sc.shapes = append(sc.shapes, s)
	return id
}

// Shapes returns a snapshot of the shapes in draw order.
func (sc *Scene) Shapes() []shape.Shape {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	out := make([]shape.Shape, len(sc.shapes))
	copy(out, sc.shapes)
	return out
}

// Get returns the shape with the given ID.
func (sc *Scene) Get(id ID) (shape.Shape, bool) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	for i, sid := range sc.ids {
		if sid == id {
			return sc.shapes[i], true
		}
	}
	return nil, false
}

func (sc *Scene) Len() int {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return len(sc.shapes)
}

// Reset drops every shape. IDs keep increasing.
func (sc *Scene) Reset() {
	sc.mu.Lock()
	sc.ids = nil
	sc.shapes = nil
	sc.mu.Unlock()
}

// Size returns the canvas size.
func (sc *Scene) Size() (w, h int) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.width, sc.height
}

// Resize fits the canvas to a container of the given width and drops every
// shape, since the surface is wiped when its size changes.
func (sc *Scene) Resize(containerWidth int) (w, h int) {
	w, h = CanvasSize(containerWidth)
	sc.mu.Lock()
	sc.width, sc.height = w, h
	sc.ids = nil
	sc.shapes = nil
	sc.mu.Unlock()
	return w, h
}

// CanvasSize is the canvas size for a container width: 2/3 of the
// container wide, 2/3 of that high.
func CanvasSize(containerWidth int) (w, h int) {
	w = containerWidth * config.CanvasRatioNum / config.CanvasRatioDen
	h = w * config.CanvasRatioNum / config.CanvasRatioDen
	return w, h
}
