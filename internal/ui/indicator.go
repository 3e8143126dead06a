// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"shape-canvas/internal/config"
)

// ProgressIndicator is the pulsing dot shown while shapes are loading.
type ProgressIndicator struct {
	X, Y    float32
	Radius  float32
	Visible bool
	started time.Time
}

func NewProgressIndicator(x, y, radius float32) *ProgressIndicator {
	return &ProgressIndicator{X: x, Y: y, Radius: radius}
}

// Toggle shows or hides the indicator.
func (i *ProgressIndicator) Toggle(show bool) {
	if show && !i.Visible {
		i.started = time.Now()
	}
	i.Visible = show
}

func (i *ProgressIndicator) Draw(screen *ebiten.Image, c color.RGBA) {
	if !i.Visible {
		return
	}
	elapsed := time.Since(i.started).Seconds()
	scale := 1.0 + 0.3*math.Sin(elapsed*8)
	r := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, r, c, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, config.IndicatorStroke, true)
}
