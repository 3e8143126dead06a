// internal/system/draw.go
package system

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"shape-canvas/internal/entity"
	"shape-canvas/internal/event"
	"shape-canvas/internal/logging"
	"shape-canvas/internal/shape"
	"shape-canvas/internal/source"
)

// DoneMessage is passed to the DrawAll callback after a complete pass.
const DoneMessage = "All the shapes were drawn."

// ErrInterrupted is returned by a DrawAll pass stopped by Interrupt.
var ErrInterrupted = errors.New("draw pass interrupted")

// DrawSystem fetches shape records, builds them with the factory, pushes
// them onto the scene and draws them.
type DrawSystem struct {
	source    source.Source
	scene     *entity.Scene
	surface   shape.Surface
	publisher source.Publisher
	events    *event.Dispatcher
	running   atomic.Int32

	mu  sync.Mutex
	gen uint64
}

// NewDrawSystem wires a draw system. surface may be nil when the scene is
// repainted elsewhere, as the window does every frame.
func NewDrawSystem(src source.Source, scene *entity.Scene, surface shape.Surface, events *event.Dispatcher) *DrawSystem {
	if events == nil {
		events = event.NewDispatcher()
	}
	return &DrawSystem{source: src, scene: scene, surface: surface, events: events}
}

// SetPublisher makes AddRecord store added records.
func (s *DrawSystem) SetPublisher(p source.Publisher) {
	s.publisher = p
}

// InProgress reports whether a DrawAll pass is running.
func (s *DrawSystem) InProgress() bool {
	return s.running.Load() > 0
}

// Interrupt stops running passes from pushing more shapes. Shapes pushed
// before it returns are done; call it before resetting the scene.
func (s *DrawSystem) Interrupt() {
	s.mu.Lock()
	s.gen++
	s.mu.Unlock()
}

// DrawAll runs one fetch-then-draw pass. A record the factory rejects stops
// the pass; shapes drawn before it stay on the canvas. done is called with
// DoneMessage only when every record was drawn.
func (s *DrawSystem) DrawAll(ctx context.Context, done func(string)) error {
	log := logging.Logger()
	s.running.Add(1)
	defer s.running.Add(-1)
	s.mu.Lock()
	gen := s.gen
	s.mu.Unlock()
	s.events.Dispatch(event.Event{Type: event.DrawStarted})

	recs, err := s.source.Shapes(ctx)
	if err != nil {
		return s.fail(fmt.Errorf("retrieve shapes: %w", err))
	}

	for i, rec := range recs {
		if err := ctx.Err(); err != nil {
			return s.fail(err)
		}
		sh, err := shape.New(rec)
		if err != nil {
			return s.fail(fmt.Errorf("shape %d: %w", i, err))
		}
		if !s.pushPass(gen, sh) {
			return s.fail(ErrInterrupted)
		}
	}

	log.Info("shapes drawn", "count", len(recs))
	s.events.Dispatch(event.Event{Type: event.ShapesDrawn, Data: len(recs)})
	if done != nil {
		done(DoneMessage)
	}
	return nil
}

// AddRecord builds one shape from form input and draws it. When a
// publisher is set the record is stored first, so the next DrawAll keeps
// it.
func (s *DrawSystem) AddRecord(ctx context.Context, rec shape.Record) (shape.Shape, error) {
	sh, err := shape.New(rec)
	if err != nil {
		logging.Logger().Warn("shape rejected", "type", rec.Type, "err", err)
		return nil, err
	}
	if s.publisher != nil {
		if err := s.publisher.Add(ctx, sh.Record()); err != nil {
			logging.Logger().Error("save shape", "type", rec.Type, "err", err)
			return nil, err
		}
	}
	s.push(sh)
	s.events.Dispatch(event.Event{Type: event.ShapeAdded, Data: sh})
	return sh, nil
}

// pushPass pushes sh unless the pass started at gen was interrupted.
func (s *DrawSystem) pushPass(gen uint64, sh shape.Shape) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false
	}
	s.push(sh)
	return true
}

func (s *DrawSystem) push(sh shape.Shape) {
	s.scene.Add(sh)
	if s.surface != nil {
		sh.Draw(s.surface)
	}
}

func (s *DrawSystem) fail(err error) error {
	logging.Logger().Error("draw all shapes", "err", err)
	s.events.Dispatch(event.Event{Type: event.DrawFailed, Data: err})
	return err
}
