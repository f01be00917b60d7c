package window

import (
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/sprite-demo/internal/core"
	"github.com/vovakirdan/sprite-demo/internal/demos"
	"github.com/vovakirdan/sprite-demo/internal/input"
	"github.com/vovakirdan/sprite-demo/internal/player"
)

func testOptions() Options {
	return Options{Title: "test", Width: 800, Height: 600, TickRate: 20}
}

func newTestGame(events ...[]input.Event) (*Game, *demos.Demo) {
	d := demos.New("walk")
	d.Reset(core.DefaultConfig())
	g := NewGame(d, nil, testOptions(), log.New(io.Discard))

	frame := 0
	g.poll = func() []input.Event {
		if frame >= len(events) {
			return nil
		}
		ev := events[frame]
		frame++
		return ev
	}
	return g, d
}

func TestGameUpdateSteps(t *testing.T) {
	g, d := newTestGame(
		[]input.Event{input.Press(input.KeyDown)},
		nil,
	)

	for i := 0; i < 2; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("Update() = %v", err)
		}
	}

	if p := d.Snapshot().Position; p != core.Pt(0, 40) {
		t.Errorf("Position = %v, expected (0, 40)", p)
	}
}

func TestGameUpdateQuit(t *testing.T) {
	g, d := newTestGame([]input.Event{input.Quit()})

	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update() = %v, expected ebiten.Termination", err)
	}
	if d.Snapshot().Tick != 0 {
		t.Error("a quitting frame must not step the demo")
	}
}

func TestLayoutMatchesOptions(t *testing.T) {
	g, _ := newTestGame()
	w, h := g.Layout(1920, 1080)
	if w != 800 || h != 600 {
		t.Fatalf("Layout() = %dx%d, expected 800x600", w, h)
	}
}

func TestRunRejectsBadSize(t *testing.T) {
	d := demos.New("still")
	if err := Run(d, nil, Options{Width: 0, Height: 600}, log.New(io.Discard)); err == nil {
		t.Error("Run() with zero width should fail before opening a window")
	}
}

func TestKeyEvents(t *testing.T) {
	notHeld := func(ebiten.Key) int { return 0 }
	heldFor := func(ticks map[ebiten.Key]int) func(ebiten.Key) int {
		return func(k ebiten.Key) int { return ticks[k] }
	}
	timing := repeatTiming{Delay: 10, Interval: 2}

	tests := []struct {
		name     string
		repeats  ebiten.Key // Arrow repeating before the tick, if active
		active   bool
		released []ebiten.Key
		pressed  []ebiten.Key
		held     func(ebiten.Key) int
		expected []input.Event
	}{
		{
			name:     "press",
			pressed:  []ebiten.Key{ebiten.KeyArrowLeft},
			held:     notHeld,
			expected: []input.Event{input.Press(input.KeyLeft)},
		},
		{
			name:     "release before press",
			released: []ebiten.Key{ebiten.KeyArrowUp},
			pressed:  []ebiten.Key{ebiten.KeyArrowRight},
			held:     notHeld,
			expected: []input.Event{input.Release(input.KeyUp), input.Press(input.KeyRight)},
		},
		{
			name:     "unbound keys dropped",
			pressed:  []ebiten.Key{ebiten.KeyA, ebiten.KeyEscape},
			released: []ebiten.Key{ebiten.KeySpace},
			held:     notHeld,
			expected: []input.Event{input.Press(input.KeyEscape)},
		},
		{
			name:     "held past delay repeats",
			repeats:  ebiten.KeyArrowDown,
			active:   true,
			held:     heldFor(map[ebiten.Key]int{ebiten.KeyArrowDown: 12}),
			expected: []input.Event{input.RepeatPress(input.KeyDown)},
		},
		{
			name:     "held between repeats is quiet",
			repeats:  ebiten.KeyArrowDown,
			active:   true,
			held:     heldFor(map[ebiten.Key]int{ebiten.KeyArrowDown: 11}),
			expected: nil,
		},
		{
			name:     "held key not pressed last does not repeat",
			held:     heldFor(map[ebiten.Key]int{ebiten.KeyArrowDown: 12}),
			expected: nil,
		},
		{
			name:     "new press replaces repeating key",
			repeats:  ebiten.KeyArrowLeft,
			active:   true,
			pressed:  []ebiten.Key{ebiten.KeyArrowUp},
			held:     heldFor(map[ebiten.Key]int{ebiten.KeyArrowLeft: 22, ebiten.KeyArrowUp: 1}),
			expected: []input.Event{input.Press(input.KeyUp)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := repeater{timing: timing, key: tc.repeats, active: tc.active}
			got := r.events(tc.released, tc.pressed, tc.held)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("events() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestTwoHeldArrowsLastPressedWins(t *testing.T) {
	const tps = 20
	r := repeater{timing: newRepeatTiming(tps)}
	tr := input.NewTranslator()
	p := player.New(core.Point{}, core.NewRect(0, 0, 26, 36), core.DirRight, 20)

	down := map[ebiten.Key]int{}
	step := func(pressed, released []ebiten.Key) {
		for k := range down {
			down[k]++
		}
		for _, k := range pressed {
			down[k] = 1
		}
		for _, k := range released {
			delete(down, k)
		}
		held := func(k ebiten.Key) int { return down[k] }
		cmds, _ := tr.Translate(r.events(released, pressed, held))
		p.Update(cmds)
	}

	step([]ebiten.Key{ebiten.KeyArrowLeft}, nil)
	for i := 0; i < 19; i++ {
		step(nil, nil)
	}
	if p.Facing != core.DirLeft {
		t.Fatalf("Facing after holding left = %v, expected left", p.Facing)
	}

	step([]ebiten.Key{ebiten.KeyArrowUp}, nil)
	for tick := 21; tick <= 40; tick++ {
		if p.Facing != core.DirUp || p.Velocity != core.Pt(0, -20) {
			t.Fatalf("tick %d: facing %v velocity %v, expected up (0, -20)", tick, p.Facing, p.Velocity)
		}
		step(nil, nil)
	}

	// Releasing the repeating key halts and the other held key stays quiet.
	step(nil, []ebiten.Key{ebiten.KeyArrowUp})
	for i := 0; i < 20; i++ {
		step(nil, nil)
		if !p.Velocity.IsZero() {
			t.Fatalf("velocity %v after releasing up, expected stopped", p.Velocity)
		}
	}
}

func TestNewRepeatTiming(t *testing.T) {
	tests := []struct {
		tps      int
		expected repeatTiming
	}{
		{60, repeatTiming{Delay: 30, Interval: 2}},
		{20, repeatTiming{Delay: 10, Interval: 1}},
		{1, repeatTiming{Delay: 1, Interval: 1}},
		{0, repeatTiming{Delay: 30, Interval: 2}},
	}

	for _, tc := range tests {
		if got := newRepeatTiming(tc.tps); got != tc.expected {
			t.Errorf("newRepeatTiming(%d) = %+v, expected %+v", tc.tps, got, tc.expected)
		}
	}
}
