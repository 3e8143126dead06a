package state

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"

	"shape-canvas/internal/config"
	"shape-canvas/internal/event"
	"shape-canvas/internal/ui"
)

var _ State = (*CanvasState)(nil)

// CanvasState shows the drawn shapes and takes form input.
type CanvasState struct {
	sm     *StateMachine
	canvas *Canvas
}

func NewCanvasState(sm *StateMachine, canvas *Canvas) *CanvasState {
	return &CanvasState{sm: sm, canvas: canvas}
}

func (s *CanvasState) Enter() {}

func (s *CanvasState) Update(deltaTime float64) {
	f := s.canvas.Form
	switch f.Update() {
	case ui.ActionAdd:
		rec, err := f.Form.Record()
		if err != nil {
			f.Form.AddError(err.Error())
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), config.FetchTimeout)
		defer cancel()
		if _, err := s.canvas.Drawer.AddRecord(ctx, rec); err != nil {
			f.Form.AddError(err.Error())
		}
	case ui.ActionClear:
		s.canvas.Scene.Reset()
		s.canvas.Events.Dispatch(event.Event{Type: event.CanvasCleared})
	case ui.ActionReload:
		s.canvas.Scene.Reset()
		s.sm.SetState(NewLoadingState(s.sm, s.canvas, 0))
	}
}

func (s *CanvasState) Draw(screen *ebiten.Image) {
	s.canvas.Draw(screen)
}

func (s *CanvasState) Exit() {}
