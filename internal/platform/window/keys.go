package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/sprite-demo/internal/input"
)

// boundKeys are the ebiten keys the translator understands.
var boundKeys = map[ebiten.Key]input.Key{
	ebiten.KeyArrowUp:    input.KeyUp,
	ebiten.KeyArrowDown:  input.KeyDown,
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyArrowRight: input.KeyRight,
	ebiten.KeyEscape:     input.KeyEscape,
}

// repeatTiming mimics OS key auto-repeat in ticks: the first repeat fires
// after Delay ticks held, then every Interval ticks.
type repeatTiming struct {
	Delay    int
	Interval int
}

// newRepeatTiming derives a 500ms delay and ~30Hz repeat from the tick rate.
func newRepeatTiming(tps int) repeatTiming {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	r := repeatTiming{Delay: tps / 2, Interval: tps / 30}
	if r.Delay < 1 {
		r.Delay = 1
	}
	if r.Interval < 1 {
		r.Interval = 1
	}
	return r
}

// fires reports whether a key held for d ticks produces a repeat this tick.
func (r repeatTiming) fires(d int) bool {
	if d <= r.Delay {
		return false
	}
	return (d-r.Delay)%r.Interval == 0
}

// repeater turns one tick of ebiten key state into translator events. Like
// OS auto-repeat, only the most recently pressed arrow that is still held
// repeats.
type repeater struct {
	timing repeatTiming
	key    ebiten.Key // Arrow that currently repeats
	active bool
}

// events returns the tick's events. ebiten does not expose arrival order
// within a tick, so releases come first, then fresh presses; a release and a
// press in the same tick therefore end with the press. A tick with a fresh
// arrow press emits no repeat.
func (p *repeater) events(released, pressed []ebiten.Key, held func(ebiten.Key) int) []input.Event {
	var events []input.Event
	for _, k := range released {
		key, ok := boundKeys[k]
		if !ok {
			continue
		}
		events = append(events, input.Release(key))
		if p.active && k == p.key {
			p.active = false
		}
	}

	fresh := false
	for _, k := range pressed {
		key, ok := boundKeys[k]
		if !ok {
			continue
		}
		events = append(events, input.Press(key))
		if _, arrow := input.DirectionForKey(key); arrow {
			p.key, p.active = k, true
			fresh = true
		}
	}

	if p.active && !fresh {
		d := held(p.key)
		if d == 0 {
			p.active = false
		} else if p.timing.fires(d) {
			events = append(events, input.RepeatPress(boundKeys[p.key]))
		}
	}
	return events
}

// keyboard polls ebiten's input state once per Update.
type keyboard struct {
	repeat   repeater
	pressed  []ebiten.Key
	released []ebiten.Key
}

func newKeyboard(tps int) *keyboard {
	return &keyboard{repeat: repeater{timing: newRepeatTiming(tps)}}
}

// poll returns the events since the previous tick, with a quit event first
// when the window is being closed.
func (k *keyboard) poll() []input.Event {
	var events []input.Event
	if ebiten.IsWindowBeingClosed() {
		events = append(events, input.Quit())
	}

	k.released = inpututil.AppendJustReleasedKeys(k.released[:0])
	k.pressed = inpututil.AppendJustPressedKeys(k.pressed[:0])
	return append(events, k.repeat.events(k.released, k.pressed, inpututil.KeyPressDuration)...)
}
