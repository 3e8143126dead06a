// internal/system/render.go
package system

import (
	"shape-canvas/internal/entity"
	"shape-canvas/internal/shape"
)

// RenderSystem repaints every shape of the scene.
type RenderSystem struct {
	scene *entity.Scene
}

func NewRenderSystem(scene *entity.Scene) *RenderSystem {
	return &RenderSystem{scene: scene}
}

// Draw paints the scene onto dst in insertion order.
func (s *RenderSystem) Draw(dst shape.Surface) {
	for _, sh := range s.scene.Shapes() {
		sh.Draw(dst)
	}
}
