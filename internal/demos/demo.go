// Package demos implements the three incremental sprite demos: a static
// sprite, free per-axis movement, and axis-exclusive walking.
package demos

import (
	"github.com/vovakirdan/sprite-demo/internal/core"
	"github.com/vovakirdan/sprite-demo/internal/player"
	"github.com/vovakirdan/sprite-demo/internal/registry"
	"github.com/vovakirdan/sprite-demo/internal/render"
)

// version describes one demo version.
type version struct {
	id       string
	title    string
	movable  bool
	policy   player.Policy
	defaults registry.Defaults
}

// Demo is a single-entity sprite demo.
type Demo struct {
	v       version
	player  *player.Player
	runtime core.RuntimeConfig
	tick    uint64
	counter uint8 // Clear-color ramp position
}

func newDemo(s version) *Demo {
	d := &Demo{v: s}
	d.Reset(core.DefaultConfig())
	return d
}

// ID returns the unique identifier for this demo.
func (d *Demo) ID() string {
	return d.v.id
}

// Title returns the display name for this demo.
func (d *Demo) Title() string {
	return d.v.title
}

// Defaults returns the tick rate and speed this demo was tuned for.
func (d *Demo) Defaults() registry.Defaults {
	return d.v.defaults
}

// Reset places the player at the configured start, stationary.
func (d *Demo) Reset(cfg core.RuntimeConfig) {
	if cfg.Speed == 0 {
		cfg.Speed = d.v.defaults.Speed
	}
	if cfg.TickRate == 0 {
		cfg.TickRate = d.v.defaults.TickRate
	}
	d.runtime = cfg

	p := player.New(cfg.Start, cfg.Sprite, cfg.Facing, cfg.Speed)
	p.Policy = d.v.policy
	d.player = p
	d.tick = 0
	d.counter = 0
}

// Step advances the demo by one frame.
func (d *Demo) Step(cmds []core.Command) core.StepResult {
	d.counter++
	d.tick++

	if d.v.movable {
		d.player.Update(cmds)
	}

	return core.StepResult{State: d.State()}
}

// Frame returns the draw list for the current state.
func (d *Demo) Frame(viewW, viewH int) render.Frame {
	return render.Compose(d.counter, d.player.Position, d.player.Sprite, viewW, viewH)
}

// State returns the current demo state.
func (d *Demo) State() core.DemoState {
	return core.DemoState{
		Tick:   d.tick,
		Moving: d.player.Moving(),
	}
}

// Runtime returns the effective config after demo defaults were applied.
func (d *Demo) Runtime() core.RuntimeConfig {
	return d.runtime
}

// Snapshot returns a copy of the current loop state.
func (d *Demo) Snapshot() registry.Snapshot {
	return registry.Snapshot{
		Tick:     d.tick,
		Position: d.player.Position,
		Velocity: d.player.Velocity,
		Facing:   d.player.Facing,
		Clear:    core.Ramp(d.counter),
	}
}
