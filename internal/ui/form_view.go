package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"shape-canvas/internal/config"
	"shape-canvas/internal/form"
)

// Action is what the user asked for during a frame.
type Action int

const (
	ActionNone Action = iota
	ActionAdd
	ActionClear
	ActionReload
)

// FormView draws the entry form on the left side of the window and turns
// keyboard and mouse input into form edits and actions.
type FormView struct {
	Form *form.Form

	font   font.Face
	focus  int // 0 is the type selector, then Form.Fields() in order
	add    *Button
	clear  *Button
	reload *Button
	chars  []rune
}

func NewFormView(f *form.Form, face font.Face) *FormView {
	v := &FormView{Form: f, font: face}
	v.add = NewButton(image.Rectangle{}, "Add shape", face)
	v.clear = NewButton(image.Rectangle{}, "Clear", face)
	v.reload = NewButton(image.Rectangle{}, "Reload", face)
	v.layout()
	return v
}

func rowRect(i int) image.Rectangle {
	y := config.FormMargin + i*(config.FormRowHeight+config.FormMargin/2)
	return image.Rect(config.FormMargin, y, config.FormWidth-config.FormMargin, y+config.FormRowHeight)
}

// layout places the buttons under the visible rows.
func (v *FormView) layout() {
	y := rowRect(len(v.Form.Fields())+1).Min.Y + config.FormMargin
	for i, b := range []*Button{v.add, v.clear, v.reload} {
		x := config.FormMargin + i*(config.ButtonWidth+config.FormMargin/2)
		b.Rect = image.Rect(x, y, x+config.ButtonWidth, y+config.ButtonHeight)
	}
	v.add.Hidden = !v.Form.AddVisible()
}

// Update handles one frame of input.
func (v *FormView) Update() Action {
	fields := v.Form.Fields()

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		step := 1
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			step = -1
		}
		n := len(fields) + 1
		v.focus = ((v.focus+step)%n + n) % n
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		p := image.Pt(x, y)
		for i := 0; i <= len(fields); i++ {
			r := rowRect(i)
			if !p.In(r) {
				continue
			}
			v.focus = i
			if i == 0 {
				if x < r.Min.X+r.Dx()/2 {
					v.selectNext(-1)
				} else {
					v.selectNext(1)
				}
			}
		}
	}

	if v.focus == 0 {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
			v.selectNext(-1)
		case inpututil.IsKeyJustPressed(ebiten.KeyRight):
			v.selectNext(1)
		}
	} else if v.focus <= len(fields) {
		fd := fields[v.focus-1]
		v.chars = ebiten.AppendInputChars(v.chars[:0])
		fd.Value += string(v.chars)
		if repeating(ebiten.KeyBackspace) && len(fd.Value) > 0 {
			r := []rune(fd.Value)
			fd.Value = string(r[:len(r)-1])
		}
	}

	switch {
	case v.add.Clicked(), v.Form.AddVisible() && inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		return ActionAdd
	case v.clear.Clicked():
		return ActionClear
	case v.reload.Clicked():
		return ActionReload
	}
	return ActionNone
}

func (v *FormView) selectNext(step int) {
	v.Form.Next(step)
	v.layout()
}

// repeating reports a key press that should act now, with key repeat.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d > 30 && d%3 == 0)
}

func (v *FormView) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.FormWidth, float32(screen.Bounds().Dy()), config.PanelColor, true)

	selected := string(v.Form.Selected())
	if selected == "" {
		selected = "choose a shape"
	}
	v.drawRow(screen, 0, "type", "< "+selected+" >")
	for i, fd := range v.Form.Fields() {
		v.drawRow(screen, i+1, fd.Label, fd.Value)
	}

	for _, b := range []*Button{v.add, v.clear, v.reload} {
		b.Draw(screen)
	}

	y := v.add.Rect.Max.Y + config.FormMargin + config.FormFontSize
	for _, msg := range v.Form.Errors() {
		text.Draw(screen, msg, v.font, config.FormMargin, y, config.ErrorColor)
		y += config.FormRowHeight
	}
}

func (v *FormView) drawRow(screen *ebiten.Image, i int, label, value string) {
	r := rowRect(i)
	bg := config.FieldColor
	if i == v.focus {
		bg = config.FocusColor
	}
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, true)

	baseline := r.Min.Y + (r.Dy()+config.FormFontSize)/2 - 2
	text.Draw(screen, label, v.font, r.Min.X+6, baseline, config.TextLightColor)
	text.Draw(screen, value, v.font, r.Min.X+110, baseline, config.TextLightColor)
}
