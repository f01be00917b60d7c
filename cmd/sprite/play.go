package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sprite-demo/internal/assets"
	"github.com/vovakirdan/sprite-demo/internal/config"
	"github.com/vovakirdan/sprite-demo/internal/core"
	"github.com/vovakirdan/sprite-demo/internal/platform/headless"
	"github.com/vovakirdan/sprite-demo/internal/platform/tui"
	"github.com/vovakirdan/sprite-demo/internal/platform/window"
	"github.com/vovakirdan/sprite-demo/internal/registry"
)

var (
	flagBackend string
	flagTicks   uint64
	flagDebug   bool
)

var playCmd = &cobra.Command{
	Use:   "play [demo]",
	Short: "Run a demo",
	Long: `Open the sprite demo and run it until quit.

Controls:
  Arrows     - Move
  Space      - Stop (terminal backend only)
  Esc        - Quit
  Q/Ctrl+C   - Quit (terminal backend)

Backends:
  window   - Native window (default)
  tui      - Half-block rendering in the terminal
  headless - No output; runs --ticks frames and logs the result

Examples:
  sprite play
  sprite play still
  sprite play drift --fps 30 --speed 8
  sprite play walk --backend tui
  sprite play walk --debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagBackend, "backend", "", "Backend: window, tui, headless (default from config)")
	cmd.Flags().Uint64Var(&flagTicks, "ticks", 0, "Stop the headless backend after N frames (0 = until interrupted)")
	cmd.Flags().BoolVar(&flagDebug, "debug", false, "Show the debug overlay in the window")
}

// overrides are the command-line values applied on top of the config file.
// Zero values leave the config untouched.
type overrides struct {
	FPS     int
	Speed   int
	Asset   string
	Backend string
	Debug   bool
}

func currentOverrides() overrides {
	return overrides{
		FPS:     flagFPS,
		Speed:   flagSpeed,
		Asset:   flagAsset,
		Backend: flagBackend,
		Debug:   flagDebug,
	}
}

// apply returns cfg with the overrides set and checks the result.
func (o overrides) apply(cfg config.Config) (config.Config, error) {
	if o.FPS != 0 {
		cfg.Loop.TickRate = o.FPS
	}
	if o.Speed != 0 {
		cfg.Player.Speed = o.Speed
	}
	if o.Asset != "" {
		cfg.Asset.Path = o.Asset
	}
	if o.Backend != "" {
		cfg.Loop.Backend = o.Backend
	}
	if o.Debug {
		cfg.Window.DebugOverlay = true
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadConfig reads --config and applies the flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	return currentOverrides().apply(cfg)
}

// prepareDemo creates the demo named by id (or the config's demo) and
// resets it. The returned runtime config carries the demo's effective rate
// and speed.
func prepareDemo(cfg config.Config, id string) (registry.Demo, core.RuntimeConfig, error) {
	if id == "" {
		id = cfg.Loop.Demo
	}
	if !registry.Exists(id) {
		return nil, core.RuntimeConfig{}, fmt.Errorf("unknown demo %q, run 'sprite list' to see available demos", id)
	}

	d, err := registry.Create(id)
	if err != nil {
		return nil, core.RuntimeConfig{}, fmt.Errorf("creating demo: %w", err)
	}

	d.Reset(cfg.Runtime())
	return d, d.Runtime(), nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var id string
	if len(args) > 0 {
		id = args[0]
	}
	d, rt, err := prepareDemo(cfg, id)
	if err != nil {
		return err
	}

	tex, err := assets.LoadSprite(cfg.Asset.Path, rt.Sprite)
	if err != nil {
		return err
	}
	w, h := tex.Size()
	logger.Debug("texture loaded", "path", tex.Path, "format", tex.Format, "size", fmt.Sprintf("%dx%d", w, h))

	switch cfg.Loop.Backend {
	case config.BackendTUI:
		// Get terminal size, fall back to a classic 80x24
		cols, rows := 80, 24
		if tw, th, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			cols, rows = tw, th
		}
		return tui.Run(d, tex.Image, tui.Options{
			Cols:     cols,
			Rows:     rows,
			ViewW:    rt.ScreenW,
			ViewH:    rt.ScreenH,
			TickRate: rt.TickRate,
		}, logger)

	case config.BackendHeadless:
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		res, runErr := headless.Run(ctx, d, headless.Config{
			Hz:    rt.TickRate,
			Ticks: flagTicks,
			ViewW: rt.ScreenW,
			ViewH: rt.ScreenH,
		}, nil, logger)
		if runErr != nil && !errors.Is(runErr, context.Canceled) {
			return runErr
		}
		logger.Info("headless run finished",
			"frames", res.Frames,
			"visible", res.Visible,
			"pos", res.Snapshot.Position,
			"vel", res.Snapshot.Velocity,
			"facing", res.Snapshot.Facing,
		)
		return nil

	default:
		return window.Run(d, tex, window.Options{
			Title:    cfg.Window.Title,
			Width:    cfg.Window.Width,
			Height:   cfg.Window.Height,
			Centered: cfg.Window.Centered,
			TickRate: rt.TickRate,
			Debug:    cfg.Window.DebugOverlay,
		}, logger)
	}
}
