package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/bounce-kit/internal/core"
	"github.com/vovakirdan/bounce-kit/internal/lifecycle"
)

// Options configures the window.
type Options struct {
	// Zoom multiplies the logical resolution for the initial window size.
	Zoom int
	// CrankStep is the crank rotation of one wheel notch, in degrees.
	CrankStep float64
}

// Run opens a window and plays the demo until it quits or the window is
// closed. The demo is always shut down before Run returns.
func Run(inst *lifecycle.Instance, cfg core.RuntimeConfig, opts Options) error {
	defer inst.HandleEvent(lifecycle.EventTerminate) //nolint:errcheck // Terminate never fails

	zoom := max(opts.Zoom, 1)
	ebiten.SetWindowSize(cfg.ScreenW*zoom, cfg.ScreenH*zoom)
	ebiten.SetWindowTitle(inst.Demo().Title())
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(cfg.TickRate)

	return ebiten.RunGame(NewGame(inst, cfg, opts.CrankStep))
}
