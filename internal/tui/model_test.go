package tui

import (
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifegrid/internal/session"
	"lifegrid/pkg/life"
)

func newModel(t *testing.T, rows, cols int) (Model, *session.Session) {
	t.Helper()
	e, err := life.New(rows, cols)
	require.NoError(t, err)
	s := session.New(e, session.Options{Density: 1, TPS: 10})
	return New(s, slog.New(slog.NewTextHandler(io.Discard, nil))), s
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestSpaceStartsTicking(t *testing.T) {
	m, s := newModel(t, 5, 5)
	assert.Nil(t, m.Init())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.True(t, s.Running())
	require.NotNil(t, cmd)

	m, cmd = update(t, m, tickMsg{id: m.tickID})
	assert.Equal(t, uint64(1), s.Engine().Generation())
	assert.NotNil(t, cmd, "running session schedules the next tick")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.False(t, s.Running())
	_, cmd = update(t, m, tickMsg{id: m.tickID})
	assert.Nil(t, cmd)
	assert.Equal(t, uint64(1), s.Engine().Generation())
}

func TestStaleTickIgnored(t *testing.T) {
	m, s := newModel(t, 5, 5)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	stale := tickMsg{id: m.tickID - 1}
	_, cmd := update(t, m, stale)
	assert.Nil(t, cmd)
	assert.Zero(t, s.Engine().Generation())
}

func TestEditingKeys(t *testing.T) {
	m, s := newModel(t, 4, 4)
	assert.Equal(t, 2, m.cursorRow)
	assert.Equal(t, 2, m.cursorCol)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, runes("h"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, s.Snapshot().Alive(1, 1))

	m, _ = update(t, m, runes("n"))
	assert.Equal(t, uint64(1), s.Engine().Generation())
	assert.Zero(t, s.Snapshot().Population(), "a lone cell dies")

	m, _ = update(t, m, runes("r"))
	assert.Equal(t, 16, s.Snapshot().Population())

	m, _ = update(t, m, runes("c"))
	assert.Zero(t, s.Snapshot().Population())

	m, _ = update(t, m, runes("+"))
	assert.Equal(t, 20, s.TPS())
	_, _ = update(t, m, runes("-"))
	assert.Equal(t, 10, s.TPS())
}

func TestCursorStaysInGrid(t *testing.T) {
	m, _ := newModel(t, 3, 3)
	for i := 0; i < 5; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	assert.Equal(t, 2, m.cursorRow)
	assert.Equal(t, 2, m.cursorCol)
}

func TestMouseClickToggles(t *testing.T) {
	m, s := newModel(t, 4, 6)
	click := tea.MouseMsg{X: 5, Y: gridTop + 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m, _ = update(t, m, click)
	assert.True(t, s.Snapshot().Alive(2, 2))
	assert.Equal(t, 2, m.cursorRow)
	assert.Equal(t, 2, m.cursorCol)

	outside := tea.MouseMsg{X: 40, Y: gridTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	_, _ = update(t, m, outside)
	assert.Equal(t, 1, s.Snapshot().Population())
}

func TestQuit(t *testing.T) {
	m, _ := newModel(t, 3, 3)
	_, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView(t *testing.T) {
	m, s := newModel(t, 2, 3)
	require.NoError(t, s.Toggle(0, 0))
	view := m.View()
	assert.Contains(t, view, "Conway's Game of Life")
	assert.Contains(t, view, aliveGlyph)
	assert.Contains(t, view, "gen 0  pop 1  stopped")
	assert.Contains(t, view, "space run/stop")
}
