package desktop

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/bounce-kit/internal/core"
	"github.com/vovakirdan/bounce-kit/internal/lifecycle"
)

// Key bindings per action.
var actionKeys = map[core.Action][]ebiten.Key{
	core.ActionPause: {ebiten.KeyP},
	core.ActionBurst: {ebiten.KeySpace},
	core.ActionReset: {ebiten.KeyR},
	core.ActionQuit:  {ebiten.KeyQ, ebiten.KeyEscape},
}

var (
	crankBackKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	crankAheadKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
)

// mapInput collects the actions whose keys were just pressed.
func mapInput(justPressed func(ebiten.Key) bool) core.InputFrame {
	frame := core.NewInputFrame()
	for action, keys := range actionKeys {
		if anyKey(keys, justPressed) {
			frame.Set(action)
		}
	}
	return frame
}

// crankDelta converts wheel motion and crank key presses into degrees.
// One wheel notch or key press turns the crank by step.
func crankDelta(wheelY float64, back, ahead bool, step float64) float64 {
	d := wheelY * step
	if back {
		d -= step
	}
	if ahead {
		d += step
	}
	return d
}

func anyKey(keys []ebiten.Key, pressed func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if pressed(k) {
			return true
		}
	}
	return false
}

// Game adapts a demo instance to ebiten.Game. The demo is initialized on the
// first Update so that assets load once the graphics driver is up.
type Game struct {
	inst      *lifecycle.Instance
	config    core.RuntimeConfig
	canvas    *Canvas
	crankStep float64
	started   bool
}

// NewGame creates a game around an uninitialized instance.
func NewGame(inst *lifecycle.Instance, cfg core.RuntimeConfig, crankStep float64) *Game {
	if crankStep <= 0 {
		crankStep = 15
	}
	return &Game{inst: inst, config: cfg, canvas: newCanvas(), crankStep: crankStep}
}

// Update advances the demo by one fixed tick.
func (g *Game) Update() error {
	if !g.started {
		g.started = true
		if err := g.inst.HandleEvent(lifecycle.EventInit); err != nil {
			return err
		}
	}

	_, wheelY := ebiten.Wheel()
	crank := crankDelta(wheelY,
		anyKey(crankBackKeys, inpututil.IsKeyJustPressed),
		anyKey(crankAheadKeys, inpututil.IsKeyJustPressed),
		g.crankStep)

	frame := core.Frame{
		Elapsed: g.config.TickSeconds(),
		Crank:   crank,
		Input:   mapInput(inpututil.IsKeyJustPressed),
	}
	if !g.inst.Tick(frame) {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the demo and the optional FPS overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.target(screen)
	if err := g.inst.Draw(g.canvas); err != nil {
		return
	}
	if g.config.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.1f", ebiten.ActualFPS()))
	}
}

// Layout keeps the demo's logical resolution regardless of window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.config.ScreenW, g.config.ScreenH
}
