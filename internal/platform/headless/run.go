// Package headless runs a demo without opening a window. Frames are paced
// by a ticker and input comes from an optional script, which makes the
// runner useful for smoke runs and tests.
package headless

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sprite-demo/internal/input"
	"github.com/vovakirdan/sprite-demo/internal/registry"
)

// Config controls the no-window runner.
type Config struct {
	Hz    int    // Frames per second
	Ticks uint64 // Stop after N frames (0 = run until quit or cancel)
	ViewW int    // Viewport width used to compose frames
	ViewH int
}

// Script supplies the raw events that arrive before frame tick (1-based).
type Script func(tick uint64) []input.Event

// Result summarizes a finished run.
type Result struct {
	Frames   uint64
	Visible  uint64 // Frames in which the sprite overlapped the viewport
	Quit     bool   // Stopped by a quit event rather than the tick budget
	Snapshot registry.Snapshot
}

// Run drives d until the script quits, the tick budget runs out, or ctx is
// canceled. Cancellation returns ctx.Err() along with the partial result.
func Run(ctx context.Context, d registry.Demo, cfg Config, script Script, logger *log.Logger) (Result, error) {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	interval := time.Second / time.Duration(cfg.Hz)
	if interval <= 0 {
		return Result{}, fmt.Errorf("headless: invalid rate: %d", cfg.Hz)
	}

	tr := input.NewTranslator()
	t := time.NewTicker(interval)
	defer t.Stop()

	logger.Info("headless run started", "demo", d.ID(), "hz", cfg.Hz, "ticks", cfg.Ticks)

	var res Result
	for {
		select {
		case <-ctx.Done():
			res.Snapshot = d.Snapshot()
			return res, ctx.Err()
		case <-t.C:
			var events []input.Event
			if script != nil {
				events = script(res.Frames + 1)
			}

			cmds, quit := tr.Translate(events)
			if quit {
				res.Quit = true
				res.Snapshot = d.Snapshot()
				logger.Info("quit requested", "frames", res.Frames)
				return res, nil
			}

			d.Step(cmds)
			res.Frames++
			if d.Frame(cfg.ViewW, cfg.ViewH).Visible() {
				res.Visible++
			}

			if logger.GetLevel() <= log.DebugLevel {
				snap := d.Snapshot()
				logger.Debug("frame", "tick", snap.Tick, "pos", snap.Position, "vel", snap.Velocity, "facing", snap.Facing)
			}

			if cfg.Ticks > 0 && res.Frames >= cfg.Ticks {
				res.Snapshot = d.Snapshot()
				logger.Info("tick budget reached", "frames", res.Frames)
				return res, nil
			}
		}
	}
}
