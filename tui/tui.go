package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
	"github.com/sirupsen/logrus"

	"github.com/jon-m/adventure-machine/console"
	"github.com/jon-m/adventure-machine/engine"
	"github.com/jon-m/adventure-machine/world"
)

// tickInterval paces the cooperative scheduler while a location has
// background behavior registered.
const tickInterval = 500 * time.Millisecond

// rawLine stores an unstyled output line with its classification, so the
// narrative can be re-wrapped and re-styled on resize.
type rawLine struct {
	text     string
	kind     console.Kind
	isInput  bool
	isSystem bool
}

// tickMsg drives one scheduler step.
type tickMsg time.Time

// Model is the Bubble Tea model for a game session.
type Model struct {
	game *engine.Game
	rec  *console.Recorder

	viewport viewport.Model
	input    textinput.Model
	history  *History

	rawLines []rawLine

	width    int
	height   int
	ready    bool
	ticking  bool
	quitting bool
}

// New creates a model with a freshly initialized game. The story must
// already be loaded.
func New(story *world.Story, log *logrus.Logger) (Model, error) {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256
	ti.PromptStyle = styleInputPrompt

	rec := &console.Recorder{}
	m := Model{
		game:    engine.New(rec, log),
		rec:     rec,
		input:   ti,
		history: NewHistory(100),
	}

	if err := m.game.NewGame(story); err != nil {
		return Model{}, err
	}
	m.flushRecorder(false)
	return m, nil
}

// Run starts the Bubble Tea program.
func Run(story *world.Story, log *logrus.Logger) error {
	m, err := New(story, log)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

// Init schedules cursor blinking and, if the start location registered a
// tick, the scheduler pump.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if cmd := m.tickIfNeeded(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// tickIfNeeded returns a tick command when the scheduler has work. The
// ticking flag keeps a single pump in flight.
func (m *Model) tickIfNeeded() tea.Cmd {
	if m.ticking || !m.game.Scheduler().Running() || m.game.Scheduler().Len() == 0 {
		return nil
	}
	m.ticking = true
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update handles key presses, window resizes, and scheduler ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 2 // status bar + input line
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}
		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "up":
			if prev, ok := m.history.Prev(); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if next, ok := m.history.Next(); ok {
				m.input.SetValue(next)
				m.input.CursorEnd()
			} else {
				m.input.SetValue("")
				m.history.Reset()
			}
			return m, nil

		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case tickMsg:
		m.ticking = false
		if m.game.Scheduler().Step() {
			m.flushRecorder(false)
			if cmd := m.tickIfNeeded(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		} else {
			m.flushRecorder(false)
		}
		return m, tea.Batch(cmds...)
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)

	return m, tea.Batch(cmds...)
}

// handleEnter processes a submitted line.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if input == "" {
		return m, nil
	}

	m.history.Push(input)
	m.history.Reset()

	m.rawLines = append(m.rawLines, rawLine{text: "> " + input, isInput: true})

	if strings.HasPrefix(input, "/") {
		lines, quit := m.handleMeta(input)
		for _, line := range lines {
			m.rawLines = append(m.rawLines, rawLine{text: line, isSystem: true})
		}
		m.rawLines = append(m.rawLines, rawLine{})
		m.refreshViewport()
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	m.game.ParseCommand(input)
	m.flushRecorder(true)

	return m, m.tickIfNeeded()
}

// handleMeta dispatches meta-commands. Returns output lines and a quit
// flag.
func (m *Model) handleMeta(input string) ([]string, bool) {
	switch strings.Fields(input)[0] {
	case "/quit", "/exit":
		return []string{"Goodbye."}, true

	case "/help":
		return []string{
			"/quit — exit, /state — dump session state, /help — this text",
			"Type help for game commands.",
		}, false

	case "/state":
		data, err := m.game.Snapshot()
		if err != nil {
			return []string{fmt.Sprintf("State dump failed: %v", err)}, false
		}
		return strings.Split(string(data), "\n"), false

	default:
		return []string{fmt.Sprintf("Unknown command: %s. Type /help.", input)}, false
	}
}

// flushRecorder moves engine output into the narrative buffer.
func (m *Model) flushRecorder(separator bool) {
	for _, line := range m.rec.Drain() {
		m.rawLines = append(m.rawLines, rawLine{text: line.Text, kind: line.Kind})
	}
	if separator {
		m.rawLines = append(m.rawLines, rawLine{})
	}
	m.refreshViewport()
}

// refreshViewport re-wraps and re-styles all raw lines at the current
// width.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.width
	if width < 10 {
		width = 10
	}

	var styled []string
	for _, rl := range m.rawLines {
		if rl.text == "" {
			styled = append(styled, "")
			continue
		}
		wrapped := wordwrap.String(rl.text, width)
		switch {
		case rl.isInput:
			styled = append(styled, stylePlayerInput.Render(wrapped))
		case rl.isSystem:
			styled = append(styled, styleSystem.Render(wrapped))
		default:
			styled = append(styled, styleFor(rl.kind).Render(wrapped))
		}
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// View renders viewport + status bar + input line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// viewportKeyMap disables Up/Down (used for input history) and keeps
// paging keys.
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
