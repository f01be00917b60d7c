// Package player implements the controllable sprite entity and the fold of
// a frame's movement commands into its velocity, facing and position.
package player

import "github.com/vovakirdan/sprite-demo/internal/core"

// Policy selects how a start command writes the velocity.
type Policy int

const (
	// AxisExclusive overwrites both velocity components on every start,
	// so at most one axis is ever non-zero.
	AxisExclusive Policy = iota
	// PerAxis overwrites only the component on the command's axis, so
	// holding two perpendicular keys moves diagonally.
	PerAxis
)

// Player is the single entity of a demo.
type Player struct {
	Position core.Point     // Relative to the viewport center
	Velocity core.Point     // Distance added to Position once per frame
	Facing   core.Direction // Last started direction; never reset
	Sprite   core.Rect      // Texture region drawn for the player
	Speed    int            // Distance per frame when moving
	Policy   Policy
}

// New creates a stationary player at start.
func New(start core.Point, sprite core.Rect, facing core.Direction, speed int) *Player {
	return &Player{
		Position: start,
		Facing:   facing,
		Sprite:   sprite,
		Speed:    speed,
	}
}

// Apply folds one command into velocity and facing without moving.
// Halt zeroes both axes whatever direction it names, so releasing one key
// while another is still held stops all motion.
func (p *Player) Apply(cmd core.Command) {
	switch cmd.Kind {
	case core.CommandStart:
		if !cmd.Dir.Valid() {
			return
		}
		p.Facing = cmd.Dir
		v := cmd.Dir.Delta().Scale(p.Speed)
		if p.Policy == PerAxis {
			if cmd.Dir.Horizontal() {
				p.Velocity.X = v.X
			} else {
				p.Velocity.Y = v.Y
			}
			return
		}
		p.Velocity = v
	case core.CommandHalt:
		p.Velocity = core.Point{}
	}
}

// Update applies the frame's commands in order and then advances the
// position by the resulting velocity exactly once.
//
// Speed is distance per call, so callers must invoke Update at a fixed rate.
func (p *Player) Update(cmds []core.Command) {
	for _, cmd := range cmds {
		p.Apply(cmd)
	}
	p.Position = p.Position.Add(p.Velocity)
}

// Moving reports whether the player has a non-zero velocity.
func (p *Player) Moving() bool {
	return !p.Velocity.IsZero()
}
