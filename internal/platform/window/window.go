// Package window hosts a demo in a desktop window using ebiten. Each
// ebiten Update is one frame's input and update stage; Draw is the render
// stage. ebiten's fixed TPS provides the fixed cadence movement relies on.
package window

import (
	"errors"
	"fmt"
	"image"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/sprite-demo/internal/assets"
	"github.com/vovakirdan/sprite-demo/internal/input"
	"github.com/vovakirdan/sprite-demo/internal/registry"
)

// Options configures the window.
type Options struct {
	Title    string
	Width    int
	Height   int
	Centered bool
	TickRate int
	Debug    bool // Draw the state overlay
}

// Game adapts a registry.Demo to ebiten.Game.
type Game struct {
	demo    registry.Demo
	tr      *input.Translator
	poll    func() []input.Event
	texture *ebiten.Image
	opts    Options
	logger  *log.Logger
}

// NewGame creates the ebiten game for d. texture may be nil, in which case
// only the clear color is drawn.
func NewGame(d registry.Demo, texture *ebiten.Image, opts Options, logger *log.Logger) *Game {
	return &Game{
		demo:    d,
		tr:      input.NewTranslator(),
		poll:    newKeyboard(opts.TickRate).poll,
		texture: texture,
		opts:    opts,
		logger:  logger,
	}
}

// Update runs the input and update stages for one frame.
func (g *Game) Update() error {
	cmds, quit := g.tr.Translate(g.poll())
	if quit {
		g.logger.Info("quit requested", "tick", g.demo.Snapshot().Tick)
		return ebiten.Termination
	}
	g.demo.Step(cmds)
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	f := g.demo.Frame(g.opts.Width, g.opts.Height)
	screen.Fill(f.Clear)

	if f.HasBlit && g.texture != nil {
		src := g.texture.SubImage(image.Rect(f.Src.X, f.Src.Y, f.Src.Right(), f.Src.Bottom())).(*ebiten.Image)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(f.Dst.W)/float64(f.Src.W), float64(f.Dst.H)/float64(f.Src.H))
		op.GeoM.Translate(float64(f.Dst.X), float64(f.Dst.Y))
		screen.DrawImage(src, op)
	}

	if g.opts.Debug {
		snap := g.demo.Snapshot()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"%s  tick %d\npos %d,%d  vel %d,%d  facing %s\nTPS %0.1f  FPS %0.1f",
			g.demo.Title(), snap.Tick,
			snap.Position.X, snap.Position.Y, snap.Velocity.X, snap.Velocity.Y, snap.Facing,
			ebiten.ActualTPS(), ebiten.ActualFPS(),
		), 4, 4)
	}
}

// Layout returns the fixed logical viewport size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.Width, g.opts.Height
}

// Run opens the window and blocks until the demo quits or the window closes.
// A clean quit returns nil.
func Run(d registry.Demo, tex *assets.Texture, opts Options, logger *log.Logger) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("window: invalid size %dx%d", opts.Width, opts.Height)
	}
	if opts.TickRate <= 0 {
		opts.TickRate = ebiten.DefaultTPS
	}

	var texture *ebiten.Image
	if tex != nil {
		texture = ebiten.NewImageFromImage(tex.Image)
	}
	g := NewGame(d, texture, opts, logger)

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(opts.TickRate)
	if opts.Centered {
		centerWindow(opts.Width, opts.Height)
	}

	logger.Info("window opened", "title", opts.Title, "size", fmt.Sprintf("%dx%d", opts.Width, opts.Height), "tps", opts.TickRate, "demo", d.ID())

	err := ebiten.RunGame(g)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// centerWindow places the window in the middle of the primary monitor.
func centerWindow(w, h int) {
	mw, mh := ebiten.ScreenSizeInFullscreen()
	if mw <= 0 || mh <= 0 {
		return
	}
	ebiten.SetWindowPosition((mw-w)/2, (mh-h)/2)
}
