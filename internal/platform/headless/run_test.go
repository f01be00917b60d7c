package headless

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sprite-demo/internal/core"
	"github.com/vovakirdan/sprite-demo/internal/demos"
	"github.com/vovakirdan/sprite-demo/internal/input"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func fastConfig(ticks uint64) Config {
	return Config{Hz: 1000, Ticks: ticks, ViewW: 800, ViewH: 600}
}

func TestRunStopsAfterTicks(t *testing.T) {
	d := demos.New("walk")
	d.Reset(core.DefaultConfig())

	res, err := Run(context.Background(), d, fastConfig(3), nil, quietLogger())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if res.Frames != 3 || res.Snapshot.Tick != 3 {
		t.Errorf("Frames = %d, Tick = %d, expected 3", res.Frames, res.Snapshot.Tick)
	}
	if res.Quit {
		t.Error("Run() should report the tick budget, not a quit")
	}
	if res.Visible != 3 {
		t.Errorf("Visible = %d, expected 3 for a stationary sprite", res.Visible)
	}
}

func TestRunScriptedScenario(t *testing.T) {
	d := demos.New("walk")
	d.Reset(core.DefaultConfig())

	script := func(tick uint64) []input.Event {
		switch tick {
		case 1:
			return []input.Event{input.Press(input.KeyRight), input.RepeatPress(input.KeyRight)}
		case 3:
			return []input.Event{input.Release(input.KeyRight)}
		case 4:
			return []input.Event{input.Quit()}
		}
		return nil
	}

	res, err := Run(context.Background(), d, fastConfig(0), script, quietLogger())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !res.Quit || res.Frames != 3 {
		t.Errorf("Quit = %v, Frames = %d, expected quit after 3 frames", res.Quit, res.Frames)
	}
	if res.Snapshot.Position != core.Pt(40, 0) || !res.Snapshot.Velocity.IsZero() {
		t.Errorf("Snapshot = %+v, expected stopped at (40, 0)", res.Snapshot)
	}
}

func TestRunEscapeQuits(t *testing.T) {
	d := demos.New("still")
	d.Reset(core.DefaultConfig())

	script := func(tick uint64) []input.Event {
		return []input.Event{input.Press(input.KeyEscape)}
	}

	res, err := Run(context.Background(), d, fastConfig(100), script, quietLogger())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !res.Quit || res.Frames != 0 {
		t.Errorf("Quit = %v, Frames = %d, expected immediate quit", res.Quit, res.Frames)
	}
}

func TestRunCanceled(t *testing.T) {
	d := demos.New("walk")
	d.Reset(core.DefaultConfig())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := Run(ctx, d, Config{Hz: 60, ViewW: 800, ViewH: 600}, nil, quietLogger())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() = %v, expected context.DeadlineExceeded", err)
	}
}

func TestRunCountsOffscreenFrames(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Speed = 200
	d := demos.New("walk")
	d.Reset(cfg)

	script := func(tick uint64) []input.Event {
		if tick == 1 {
			return []input.Event{input.Press(input.KeyRight)}
		}
		return nil
	}

	res, err := Run(context.Background(), d, fastConfig(4), script, quietLogger())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	// x = 200, 400, 600, 800; the sprite leaves the 800px viewport after x = 400.
	if res.Visible != 2 {
		t.Errorf("Visible = %d, expected 2", res.Visible)
	}
}
