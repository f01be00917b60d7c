package tui

import (
	"image"
	"image/color"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sprite-demo/internal/core"
	"github.com/vovakirdan/sprite-demo/internal/demos"
	"github.com/vovakirdan/sprite-demo/internal/input"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapEvent(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected input.Event
		ok       bool
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, input.Press(input.KeyUp), true},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, input.Press(input.KeyDown), true},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, input.Press(input.KeyLeft), true},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, input.Press(input.KeyRight), true},
		{"space releases last key", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, input.Release(input.KeyLeft), true},
		{"escape", tea.KeyMsg{Type: tea.KeyEscape}, input.Press(input.KeyEscape), true},
		{"q quits", runeKey('q'), input.Quit(), true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, input.Quit(), true},
		{"unbound", runeKey('x'), input.Event{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ev, ok := km.Event(tc.msg, input.KeyLeft)
			if ok != tc.ok || ev != tc.expected {
				t.Errorf("Event(%q) = (%+v, %v), expected (%+v, %v)", tc.msg.String(), ev, ok, tc.expected, tc.ok)
			}
		})
	}
}

func newTestModel(t *testing.T) (Model, *demos.Demo) {
	t.Helper()
	d := demos.New("walk")
	d.Reset(core.DefaultConfig())
	m := NewModel(d, nil, Options{Cols: 40, Rows: 17, ViewW: 800, ViewH: 600, TickRate: 20}, log.New(io.Discard))
	return m, d
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelKeysApplyOnTick(t *testing.T) {
	m, d := newTestModel(t)

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if d.Snapshot().Tick != 0 {
		t.Fatal("keys must not step the demo before the tick")
	}

	m, cmd := step(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if p := d.Snapshot().Position; p != core.Pt(20, 0) {
		t.Errorf("Position after frame 1 = %v, expected (20, 0)", p)
	}

	m, _ = step(t, m, TickMsg{})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	_, _ = step(t, m, TickMsg{})

	snap := d.Snapshot()
	if snap.Position != core.Pt(40, 0) || !snap.Velocity.IsZero() {
		t.Errorf("Snapshot = %+v, expected stopped at (40, 0)", snap)
	}
}

func TestModelQuit(t *testing.T) {
	m, d := newTestModel(t)

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	m, cmd := step(t, m, TickMsg{})

	if !m.quitting {
		t.Error("escape should quit on the next tick")
	}
	if cmd == nil {
		t.Fatal("quit should return tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if d.Snapshot().Tick != 0 {
		t.Error("a quitting frame must not step the demo")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 60, Height: 22})

	if m.screen.Width() != 60 || m.screen.Height() != 20 {
		t.Errorf("screen = %dx%d, expected 60x20", m.screen.Width(), m.screen.Height())
	}
}

func TestModelViewDrawsPicture(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()

	if !strings.ContainsRune(view, halfBlock) {
		t.Error("View() should contain half-block cells")
	}
	if !strings.Contains(view, "Walking Sprite") {
		t.Error("View() should show the status line")
	}
}

func TestPaintHalfBlocks(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 4))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(0, 1, color.RGBA{B: 255, A: 255})

	s := core.NewScreen(2, 2)
	PaintHalfBlocks(s, img)

	c := s.Get(0, 0)
	if c.Rune != halfBlock || c.FG != core.RGB(255, 0, 0) || c.BG != core.RGB(0, 0, 255) {
		t.Errorf("cell (0, 0) = %+v, expected red over blue", c)
	}
	if s.Get(1, 1).Rune != halfBlock {
		t.Error("every cell inside the image should be painted")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	for i, r := range "ab" {
		s.Set(i, 0, core.Cell{Rune: r, FG: core.RGB(255, 255, 255)})
	}
	for i, r := range "cd" {
		s.Set(i, 1, core.Cell{Rune: r, FG: core.RGB(255, 0, 0)})
	}

	out := RenderScreen(s)
	for _, want := range []string{"ab", "cd"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() lost %q: %q", want, out)
		}
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() should emit one line per row, got %q", out)
	}
}
