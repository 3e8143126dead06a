package system

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/tdewolff/test"

	"shape-canvas/internal/entity"
	"shape-canvas/internal/event"
	"shape-canvas/internal/shape"
	"shape-canvas/internal/shape/shapetest"
	"shape-canvas/internal/source"
)

func staticSource(recs ...shape.Record) source.Source {
	return source.Func(func(ctx context.Context) ([]shape.Record, error) {
		return recs, nil
	})
}

func circleRec(x float64) shape.Record {
	return shape.Record{Type: shape.KindCircle, X: shape.Num(x), Y: shape.Num(10), R: shape.Num(5)}
}

type memPublisher struct {
	recs []shape.Record
	err  error
}

func (p *memPublisher) Add(ctx context.Context, rec shape.Record) error {
	if p.err != nil {
		return p.err
	}
	p.recs = append(p.recs, rec)
	return nil
}

func TestDrawAll(t *testing.T) {
	scene := entity.NewScene(300, 200)
	surface := shapetest.NewRecorder(300, 200)
	src := staticSource(
		circleRec(1),
		shape.Record{Type: shape.KindSquare, X: shape.Num(0), Y: shape.Num(0), Size: shape.Num(4)},
		shape.Record{Type: shape.KindText, X: shape.Num(0), Y: shape.Num(30), Text: "hi"},
	)
	sys := NewDrawSystem(src, scene, surface, nil)

	var msg string
	test.Error(t, sys.DrawAll(context.Background(), func(m string) { msg = m }))
	test.String(t, msg, DoneMessage)
	test.T(t, surface.Names(), []string{"FillCircle", "FillRect", "FillText"})
	test.T(t, scene.Len(), 3)
	test.That(t, !sys.InProgress())
}

func TestDrawAllStopsOnUnknownKind(t *testing.T) {
	scene := entity.NewScene(300, 200)
	surface := shapetest.NewRecorder(300, 200)
	src := staticSource(circleRec(1), shape.Record{Type: "Hexagon", X: shape.Num(0), Y: shape.Num(0)}, circleRec(2))
	events := event.NewDispatcher()
	var failed error
	events.Subscribe(event.DrawFailed, event.ListenerFunc(func(e event.Event) { failed = e.Data.(error) }))
	sys := NewDrawSystem(src, scene, surface, events)

	called := false
	err := sys.DrawAll(context.Background(), func(string) { called = true })
	test.That(t, errors.Is(err, shape.ErrUnknownKind), "expected ErrUnknownKind, got", err)
	test.That(t, errors.Is(failed, shape.ErrUnknownKind))
	test.That(t, !called, "done must not be called on failure")
	test.T(t, surface.Names(), []string{"FillCircle"})
	test.T(t, scene.Len(), 1)
	test.That(t, !sys.InProgress(), "progress must be reset after failure")
}

func TestDrawAllSourceError(t *testing.T) {
	boom := errors.New("offline")
	var inProgress bool
	var sys *DrawSystem
	src := source.Func(func(ctx context.Context) ([]shape.Record, error) {
		inProgress = sys.InProgress()
		return nil, boom
	})
	sys = NewDrawSystem(src, entity.NewScene(1, 1), nil, nil)

	err := sys.DrawAll(context.Background(), nil)
	test.That(t, errors.Is(err, boom))
	test.That(t, inProgress, "progress must be shown while fetching")
	test.That(t, !sys.InProgress())
}

func TestDrawAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sys := NewDrawSystem(staticSource(circleRec(1)), entity.NewScene(1, 1), nil, nil)
	err := sys.DrawAll(ctx, nil)
	test.That(t, errors.Is(err, context.Canceled))
}

func TestAddRecord(t *testing.T) {
	scene := entity.NewScene(300, 200)
	surface := shapetest.NewRecorder(300, 200)
	pub := &memPublisher{}
	sys := NewDrawSystem(staticSource(), scene, surface, nil)
	sys.SetPublisher(pub)

	rec := shape.Record{Type: shape.KindLine, X: shape.Num(0), Y: shape.Num(0), X2: shape.Num(9), Y2: shape.Num(9)}
	sh, err := sys.AddRecord(context.Background(), rec)
	test.Error(t, err)
	test.T(t, sh.Kind(), shape.KindLine)
	test.T(t, surface.Names(), []string{"StrokeLine"})
	test.T(t, len(pub.recs), 1)

	_, err = sys.AddRecord(context.Background(), shape.Record{Type: "Blob"})
	test.That(t, errors.Is(err, shape.ErrUnknownKind))
	test.T(t, scene.Len(), 1)

	pub.err = errors.New("server down")
	_, err = sys.AddRecord(context.Background(), rec)
	test.That(t, err != nil)
	test.T(t, scene.Len(), 1)
}

func TestRenderSystem(t *testing.T) {
	scene := entity.NewScene(300, 200)
	sys := NewDrawSystem(staticSource(circleRec(1), circleRec(2)), scene, nil, nil)
	test.Error(t, sys.DrawAll(context.Background(), nil))

	surface := shapetest.NewRecorder(300, 200)
	NewRenderSystem(scene).Draw(surface)
	test.T(t, surface.Names(), []string{"FillCircle", "FillCircle"})
	test.Float(t, surface.Ops[1].Args[0], 2)
}

func TestDrawAllInterrupted(t *testing.T) {
	scene := entity.NewScene(300, 200)
	release := []chan struct{}{make(chan struct{}), make(chan struct{})}
	var calls atomic.Int32
	src := source.Func(func(ctx context.Context) ([]shape.Record, error) {
		<-release[calls.Add(1)-1]
		return []shape.Record{circleRec(1), circleRec(2)}, nil
	})
	sys := NewDrawSystem(src, scene, nil, nil)

	oldDone := make(chan error, 1)
	go func() { oldDone <- sys.DrawAll(context.Background(), nil) }()
	for calls.Load() < 1 {
		runtime.Gosched()
	}

	sys.Interrupt()
	scene.Reset()

	newDone := make(chan error, 1)
	go func() { newDone <- sys.DrawAll(context.Background(), nil) }()
	for calls.Load() < 2 {
		runtime.Gosched()
	}

	close(release[0])
	err := <-oldDone
	test.That(t, errors.Is(err, ErrInterrupted), "expected ErrInterrupted, got", err)
	test.T(t, scene.Len(), 0)
	test.That(t, sys.InProgress(), "the newer pass is still running")

	close(release[1])
	test.Error(t, <-newDone)
	test.T(t, scene.Len(), 2)
	test.That(t, !sys.InProgress())
}
