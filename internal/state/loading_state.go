package state

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"

	"shape-canvas/internal/event"
	"shape-canvas/internal/logging"
)

var _ State = (*LoadingState)(nil)

// LoadingState runs one fetch-then-draw pass in the background and shows
// the progress indicator until it finishes.
type LoadingState struct {
	sm             *StateMachine
	canvas         *Canvas
	containerWidth int
	cancel         context.CancelFunc
	done           chan error
}

// NewLoadingState starts a pass. A positive containerWidth resizes the
// canvas first, which drops the shapes already on it.
func NewLoadingState(sm *StateMachine, canvas *Canvas, containerWidth int) *LoadingState {
	return &LoadingState{sm: sm, canvas: canvas, containerWidth: containerWidth}
}

func (s *LoadingState) Enter() {
	if s.containerWidth > 0 {
		w, h := s.canvas.Scene.Resize(s.containerWidth)
		s.canvas.Events.Dispatch(event.Event{Type: event.CanvasResized, Data: [2]int{w, h}})
	}

	var ctx context.Context
	ctx, s.cancel = context.WithCancel(context.Background())
	s.done = make(chan error, 1)
	s.canvas.Indicator.Toggle(true)

	go func() {
		s.done <- s.canvas.Drawer.DrawAll(ctx, func(msg string) {
			logging.Logger().Info(msg)
		})
	}()
}

func (s *LoadingState) Update(deltaTime float64) {
	select {
	case err := <-s.done:
		if err != nil {
			s.canvas.Form.Form.AddError(err.Error())
		}
		s.sm.SetState(NewCanvasState(s.sm, s.canvas))
	default:
	}
}

func (s *LoadingState) Draw(screen *ebiten.Image) {
	s.canvas.Draw(screen)
}

func (s *LoadingState) Exit() {
	s.cancel()
	s.canvas.Drawer.Interrupt()
	s.canvas.Indicator.Toggle(false)
}
