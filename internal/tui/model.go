// Package tui is the Bubble Tea terminal driver for a Life session.
package tui

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lifegrid/internal/session"
)

const (
	// gridTop is the screen row of the first grid line (below the title).
	gridTop = 1
	// cellWidth is the number of terminal columns per cell.
	cellWidth = 2

	aliveGlyph  = "██"
	deadGlyph   = "··"
	cursorAlive = "▓▓"
	cursorDead  = "[]"
)

const helpText = "space run/stop · n step · r random · c clear · arrows/hjkl move · enter toggle · +/- speed · q quit"

// tickMsg advances a running session. id ties a tick to the run that
// scheduled it so stale ticks from a previous run are dropped.
type tickMsg struct{ id int }

// Model is the Bubble Tea model for the terminal UI.
type Model struct {
	session *session.Session
	styles  Styles
	log     *slog.Logger

	cursorRow, cursorCol int
	tickID               int
	err                  error
}

// New returns a Model driving s.
func New(s *session.Session, log *slog.Logger) Model {
	if log == nil {
		log = slog.Default()
	}
	size := s.Engine().Size()
	return Model{
		session:   s,
		styles:    DefaultStyles(),
		log:       log,
		cursorRow: size.H / 2,
		cursorCol: size.W / 2,
	}
}

// Init starts the tick loop when the session is already running.
func (m Model) Init() tea.Cmd {
	if m.session.Running() {
		return m.tick()
	}
	return nil
}

func (m Model) tick() tea.Cmd {
	id := m.tickID
	return tea.Tick(m.session.Interval(), func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}

// Update handles keys, mouse clicks and ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tickMsg:
		if msg.id != m.tickID || !m.session.Running() {
			return m, nil
		}
		m.session.Tick()
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	size := m.session.Engine().Size()
	m.err = nil
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case " ":
		if m.session.ToggleRunning() {
			m.tickID++
			return m, m.tick()
		}
	case "n":
		m.session.StepOnce()
	case "r":
		m.err = m.session.Randomize()
	case "c":
		m.session.Clear()
	case "+", "=":
		m.session.Faster()
	case "-", "_":
		m.session.Slower()
	case "up", "k":
		m.cursorRow = max(0, m.cursorRow-1)
	case "down", "j":
		m.cursorRow = min(size.H-1, m.cursorRow+1)
	case "left", "h":
		m.cursorCol = max(0, m.cursorCol-1)
	case "right", "l":
		m.cursorCol = min(size.W-1, m.cursorCol+1)
	case "enter", "x":
		m.err = m.session.Toggle(m.cursorRow, m.cursorCol)
	}
	if m.err != nil {
		m.log.Warn("command failed", "key", msg.String(), "err", m.err)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	size := m.session.Engine().Size()
	row, col := msg.Y-gridTop, msg.X/cellWidth
	if row < 0 || row >= size.H || col < 0 || col >= size.W {
		return m, nil
	}
	m.cursorRow, m.cursorCol = row, col
	m.err = m.session.Toggle(row, col)
	return m, nil
}

// View renders the title, grid, status line and key help.
func (m Model) View() string {
	snap := m.session.Snapshot()
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Conway's Game of Life"))
	b.WriteByte('\n')
	for r := 0; r < snap.Rows(); r++ {
		for c := 0; c < snap.Cols(); c++ {
			alive := snap.Alive(r, c)
			switch {
			case r == m.cursorRow && c == m.cursorCol && alive:
				b.WriteString(m.styles.Cursor.Render(cursorAlive))
			case r == m.cursorRow && c == m.cursorCol:
				b.WriteString(m.styles.Cursor.Render(cursorDead))
			case alive:
				b.WriteString(m.styles.Alive.Render(aliveGlyph))
			default:
				b.WriteString(m.styles.Dead.Render(deadGlyph))
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString(m.styles.Status.Render(m.session.Status()))
	b.WriteByte('\n')
	if m.err != nil {
		b.WriteString(m.styles.Error.Render(m.err.Error()))
	} else {
		b.WriteString(m.styles.Help.Render(helpText))
	}
	return b.String()
}

// Run starts the terminal UI and blocks until the user quits or ctx is done.
func Run(ctx context.Context, s *session.Session, log *slog.Logger) error {
	p := tea.NewProgram(New(s, log),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
