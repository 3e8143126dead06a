package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"shape-canvas/internal/config"
	"shape-canvas/internal/entity"
	"shape-canvas/internal/event"
	"shape-canvas/internal/form"
	"shape-canvas/internal/logging"
	"shape-canvas/internal/source"
	"shape-canvas/internal/state"
	"shape-canvas/internal/system"
	"shape-canvas/internal/ui"
	"shape-canvas/pkg/render"
)

type View struct {
	Endpoint string `short:"e" default:"http://localhost:8080" desc:"Shape server base URL"`
	File     string `short:"f" desc:"JSON file of shapes drawn after the fetched ones"`
	Verbose  bool   `short:"v" desc:"Verbose logging"`
}

// containerWidth is the room left for the canvas beside the form.
func containerWidth(windowWidth int) int {
	return windowWidth - config.FormWidth - 2*config.FormMargin
}

type AppGame struct {
	stateMachine   *state.StateMachine
	canvas         *state.Canvas
	lastUpdateTime time.Time
	width          int
	pending        int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	if a.pending > 0 {
		a.width, a.pending = a.pending, 0
		a.stateMachine.SetState(state.NewLoadingState(a.stateMachine, a.canvas, a.width))
	}
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout follows the window size. A new width is applied on the next
// Update, which redraws the canvas at its new size.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if w := containerWidth(outsideWidth); w > 0 && w != a.width {
		a.pending = w
	}
	return outsideWidth, outsideHeight
}

func (cmd *View) Run() error {
	logging.SetLogger(logging.New(os.Stderr, cmd.Verbose))
	log := logging.Logger()

	remote := source.NewHTTP(cmd.Endpoint)
	var src source.Source = remote
	if cmd.File != "" {
		src = source.Join(remote, source.File{Path: cmd.File})
	}

	width := containerWidth(config.ScreenWidth)
	scene := entity.NewScene(entity.CanvasSize(width))
	events := event.NewDispatcher()
	events.Subscribe(event.ShapeAdded, event.ListenerFunc(func(e event.Event) {
		log.Info("shape added", "shape", e.Data)
	}))
	events.Subscribe(event.CanvasResized, event.ListenerFunc(func(e event.Event) {
		log.Debug("canvas resized", "size", e.Data)
	}))

	drawer := system.NewDrawSystem(src, scene, nil, events)
	drawer.SetPublisher(remote)

	face, err := render.Face(config.FormFontSize)
	if err != nil {
		return fmt.Errorf("load form font: %w", err)
	}
	canvas := state.NewCanvas(scene, drawer, events, ui.NewFormView(form.New(), face))

	sm := state.NewStateMachine()
	sm.SetState(state.NewLoadingState(sm, canvas, 0))
	app := &AppGame{
		stateMachine:   sm,
		canvas:         canvas,
		lastUpdateTime: time.Now(),
		width:          width,
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Shapes")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(app)
}
