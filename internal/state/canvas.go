package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"shape-canvas/internal/config"
	"shape-canvas/internal/entity"
	"shape-canvas/internal/event"
	"shape-canvas/internal/system"
	"shape-canvas/internal/ui"
	"shape-canvas/pkg/render"
)

// Canvas bundles what every state draws and edits: the scene, the systems
// working on it and the form beside it.
type Canvas struct {
	Scene     *entity.Scene
	Drawer    *system.DrawSystem
	Renderer  *system.RenderSystem
	Events    *event.Dispatcher
	Form      *ui.FormView
	Indicator *ui.ProgressIndicator

	image   *ebiten.Image
	surface *render.Screen
}

func NewCanvas(scene *entity.Scene, drawer *system.DrawSystem, events *event.Dispatcher, form *ui.FormView) *Canvas {
	return &Canvas{
		Scene:     scene,
		Drawer:    drawer,
		Renderer:  system.NewRenderSystem(scene),
		Events:    events,
		Form:      form,
		Indicator: ui.NewProgressIndicator(config.FormWidth-2*config.IndicatorRadius, config.ScreenHeight-2*config.IndicatorRadius, config.IndicatorRadius),
	}
}

// target returns the offscreen canvas image, recreated when the scene
// size changed.
func (c *Canvas) target() *ebiten.Image {
	w, h := c.Scene.Size()
	if w <= 0 || h <= 0 {
		return nil
	}
	if c.image != nil {
		if b := c.image.Bounds(); b.Dx() == w && b.Dy() == h {
			return c.image
		}
		c.image.Deallocate()
	}
	c.image = ebiten.NewImage(w, h)
	if c.surface == nil {
		c.surface = render.NewScreen(c.image)
	}
	c.surface.SetTarget(c.image)
	return c.image
}

// Draw paints the form and every shape of the scene.
func (c *Canvas) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	c.Form.Draw(screen)

	if img := c.target(); img != nil {
		img.Fill(config.CanvasColor)
		c.Renderer.Draw(c.surface)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(config.FormWidth+config.FormMargin, config.FormMargin)
		screen.DrawImage(img, op)
	}

	c.Indicator.Y = float32(screen.Bounds().Dy()) - 2*config.IndicatorRadius
	c.Indicator.Draw(screen, config.IndicatorColor)
}
