// Package input translates backend-neutral keyboard and window events into
// the movement commands consumed by a demo each frame.
package input

import "github.com/vovakirdan/sprite-demo/internal/core"

// EventType classifies a raw input event.
type EventType int

const (
	EventQuit    EventType = iota // Window closed or process asked to stop
	EventKeyDown                  // Key pressed, or auto-repeated while held
	EventKeyUp                    // Key released
)

// Key is a physical key the demos care about.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}

// Event is a single raw input event in arrival order.
type Event struct {
	Type EventType
	Key  Key
	// Repeat marks events synthesized by key auto-repeat.
	Repeat bool
}

// Quit returns a quit event.
func Quit() Event { return Event{Type: EventQuit} }

// Press returns a key-down event.
func Press(k Key) Event { return Event{Type: EventKeyDown, Key: k} }

// RepeatPress returns an auto-repeat key-down event.
func RepeatPress(k Key) Event { return Event{Type: EventKeyDown, Key: k, Repeat: true} }

// Release returns a key-up event.
func Release(k Key) Event { return Event{Type: EventKeyUp, Key: k} }

// DirectionForKey maps an arrow key to its direction.
func DirectionForKey(k Key) (core.Direction, bool) {
	switch k {
	case KeyUp:
		return core.DirUp, true
	case KeyDown:
		return core.DirDown, true
	case KeyLeft:
		return core.DirLeft, true
	case KeyRight:
		return core.DirRight, true
	}
	return core.DirUp, false
}

// Translator turns one frame's events into movement commands.
type Translator struct{}

// NewTranslator creates a translator with the fixed arrow-key bindings.
func NewTranslator() *Translator {
	return &Translator{}
}

// Translate walks events in arrival order and returns the frame's commands.
// When quit is true the loop must stop; events after the quit are not
// translated and the returned commands should be discarded.
func (t *Translator) Translate(events []Event) (cmds []core.Command, quit bool) {
	cmds = make([]core.Command, 0, len(events))
	for _, ev := range events {
		switch ev.Type {
		case EventQuit:
			return cmds, true
		case EventKeyDown:
			if ev.Key == KeyEscape {
				return cmds, true
			}
			if d, ok := DirectionForKey(ev.Key); ok {
				cmds = append(cmds, core.Start(d))
			}
		case EventKeyUp:
			if ev.Repeat {
				continue
			}
			if d, ok := DirectionForKey(ev.Key); ok {
				cmds = append(cmds, core.Halt(d))
			}
		}
	}
	return cmds, false
}
