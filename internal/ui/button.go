// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"shape-canvas/internal/config"
	"shape-canvas/pkg/render"
)

// Button is a clickable labelled rectangle.
type Button struct {
	Rect   image.Rectangle
	Text   string
	Color  color.RGBA
	Hidden bool
	font   font.Face
}

func NewButton(rect image.Rectangle, label string, face font.Face) *Button {
	return &Button{
		Rect:  rect,
		Text:  label,
		Color: config.ButtonColor,
		font:  face,
	}
}

func (b *Button) hovered() bool {
	x, y := ebiten.CursorPosition()
	return image.Pt(x, y).In(b.Rect)
}

// Clicked reports a left click on a visible button this frame.
func (b *Button) Clicked() bool {
	return !b.Hidden && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && b.hovered()
}

func (b *Button) Draw(screen *ebiten.Image) {
	if b.Hidden {
		return
	}
	bg := b.Color
	if b.hovered() {
		bg = render.DarkenColor(bg)
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 1, config.TextLightColor, true)

	bounds := text.BoundString(b.font, b.Text)
	textX := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	textY := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, b.Text, b.font, textX, textY, config.TextLightColor)
}
