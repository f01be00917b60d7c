package core

import (
	"fmt"
	"strings"
)

// Direction is one of the four cardinal directions an entity can face or move in.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all directions in declaration order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the four declared directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// Delta returns the unit vector for d in screen space (y grows downward).
func (d Direction) Delta() Point {
	switch d {
	case DirUp:
		return Point{X: 0, Y: -1}
	case DirDown:
		return Point{X: 0, Y: 1}
	case DirLeft:
		return Point{X: -1, Y: 0}
	case DirRight:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Horizontal reports whether d moves along the x axis.
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// ParseDirection parses a direction name, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, d := range Directions {
		if d.String() == name {
			return d, nil
		}
	}
	return DirUp, fmt.Errorf("core: unknown direction %q", s)
}

// CommandKind distinguishes starting from stopping movement.
type CommandKind int

const (
	CommandStart CommandKind = iota // begin moving in Dir
	CommandHalt                     // stop moving; Dir is informational only
)

// Command is a single movement instruction produced by input translation.
// Commands live for one frame and are never persisted.
type Command struct {
	Kind CommandKind
	Dir  Direction
}

// Start returns a start-moving command for d.
func Start(d Direction) Command {
	return Command{Kind: CommandStart, Dir: d}
}

// Halt returns a halt command for d.
func Halt(d Direction) Command {
	return Command{Kind: CommandHalt, Dir: d}
}

// String returns a compact form such as "start(left)" or "halt(up)".
func (c Command) String() string {
	switch c.Kind {
	case CommandStart:
		return "start(" + c.Dir.String() + ")"
	case CommandHalt:
		return "halt(" + c.Dir.String() + ")"
	default:
		return "unknown"
	}
}
