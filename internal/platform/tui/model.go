package tui

import (
	"fmt"
	"image"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sprite-demo/internal/core"
	"github.com/vovakirdan/sprite-demo/internal/input"
	"github.com/vovakirdan/sprite-demo/internal/registry"
	"github.com/vovakirdan/sprite-demo/internal/render"
)

// footerLines is the number of terminal rows reserved below the picture.
const footerLines = 2

// Options configures the terminal backend.
type Options struct {
	Cols     int // Initial terminal width in cells
	Rows     int // Initial terminal height in cells
	ViewW    int // Viewport width in pixels that is scaled into the terminal
	ViewH    int
	TickRate int
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Model is the Bubble Tea model for running a demo in the terminal.
type Model struct {
	demo     registry.Demo
	texture  image.Image
	screen   *core.Screen
	tr       *input.Translator
	keys     KeyMap
	help     help.Model
	opts     Options
	pending  []input.Event // Events queued since the last tick
	lastKey  input.Key
	quitting bool
	logger   *log.Logger
}

// NewModel creates a new Bubble Tea model for the given demo. texture may be nil.
func NewModel(d registry.Demo, texture image.Image, opts Options, logger *log.Logger) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	return Model{
		demo:    d,
		texture: texture,
		screen:  core.NewScreen(opts.Cols, opts.Rows-footerLines),
		tr:      input.NewTranslator(),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		opts:    opts,
		lastKey: input.KeyRight,
		logger:  logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height-footerLines)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the raw event for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ev, ok := m.keys.Event(msg, m.lastKey)
	if !ok {
		return m, nil
	}
	if ev.Type == input.EventKeyDown {
		if _, isArrow := input.DirectionForKey(ev.Key); isArrow {
			m.lastKey = ev.Key
		}
	}
	m.pending = append(m.pending, ev)
	return m, nil
}

// handleTick runs the input and update stages for one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	cmds, quit := m.tr.Translate(m.pending)
	m.pending = nil
	if quit {
		m.quitting = true
		m.logger.Info("quit requested", "tick", m.demo.Snapshot().Tick)
		return m, tea.Quit
	}

	m.demo.Step(cmds)
	return m, tickCmd(m.opts.TickRate)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	f := m.demo.Frame(m.opts.ViewW, m.opts.ViewH)
	img := render.Rasterize(f, m.texture, m.screen.Width(), m.screen.Height()*2)
	PaintHalfBlocks(m.screen, img)

	snap := m.demo.Snapshot()
	status := fmt.Sprintf("%s  pos %d,%d  vel %d,%d  facing %s",
		m.demo.Title(), snap.Position.X, snap.Position.Y, snap.Velocity.X, snap.Velocity.Y, snap.Facing)

	return RenderScreen(m.screen) + "\n" + statusStyle.Render(status) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for d and blocks until it quits.
func Run(d registry.Demo, texture image.Image, opts Options, logger *log.Logger) error {
	logger.Info("terminal opened", "cols", opts.Cols, "rows", opts.Rows, "tps", opts.TickRate, "demo", d.ID())

	p := tea.NewProgram(
		NewModel(d, texture, opts, logger),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
