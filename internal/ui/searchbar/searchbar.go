// Package searchbar provides the query input with a debounced commit.
package searchbar

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/picsearch/internal/ui"
	"github.com/llehouerou/picsearch/internal/ui/styles"
)

// Height is the number of terminal rows the bar occupies.
const Height = 3

// DebounceMsg fires when the quiet period after a keystroke ends.
// It only commits if Version still matches the latest edit.
type DebounceMsg struct {
	Version int
}

// Model is the search box.
type Model struct {
	ui.Base
	input     textinput.Model
	quiet     time.Duration
	version   int
	committed string
}

// New creates a search box showing initial, treated as already committed.
func New(initial string, quiet time.Duration) Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search images..."
	ti.CharLimit = 256
	ti.SetValue(initial)

	return Model{
		input:     ti,
		quiet:     quiet,
		committed: initial,
	}
}

// Focus gives the input keyboard focus.
func (m *Model) Focus() tea.Cmd {
	m.SetFocused(true)
	m.input.CursorEnd()
	return m.input.Focus()
}

// Blur removes keyboard focus.
func (m *Model) Blur() {
	m.SetFocused(false)
	m.input.Blur()
}

// Value returns the current text.
func (m Model) Value() string {
	return m.input.Value()
}

// Committed returns the last committed query.
func (m Model) Committed() string {
	return m.committed
}

// SetQuery replaces the text and marks it committed, cancelling any
// pending debounce.
func (m *Model) SetQuery(q string) {
	m.input.SetValue(q)
	m.input.CursorEnd()
	m.committed = q
	m.version++
}

// Version returns the edit counter used to discard stale timers.
func (m Model) Version() int {
	return m.version
}

// SetSize sets the bar width; height is fixed.
func (m *Model) SetSize(width, _ int) {
	m.Base.SetSize(width, Height)
	// Border (2) + padding (2) + prompt.
	m.input.Width = max(width-4-lipgloss.Width(m.input.Prompt)-1, 1)
}

// Update handles keys while focused and debounce timers at any time.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case DebounceMsg:
		if msg.Version != m.version {
			return m, nil
		}
		return m, m.commit(false)

	case tea.KeyMsg:
		if !m.IsFocused() {
			return m, nil
		}
		return m.handleKey(msg)
	}

	if m.IsFocused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.version++
		return m, m.commit(true)
	case "esc", "tab":
		m.Blur()
		return m, actionCmd(Leave{})
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, cmd
	}

	m.version++
	version := m.version
	tick := tea.Tick(m.quiet, func(time.Time) tea.Msg {
		return DebounceMsg{Version: version}
	})
	return m, tea.Batch(cmd, tick)
}

// commit emits a Submit for the current text. A debounced commit of an
// unchanged query is dropped; enter always submits.
func (m *Model) commit(immediate bool) tea.Cmd {
	q := m.input.Value()
	if !immediate && q == m.committed {
		return nil
	}
	m.committed = q
	return func() tea.Msg {
		return ActionMsg(Submit{Query: q, Immediate: immediate})
	}
}

// View renders the bar.
func (m Model) View() string {
	if m.Width() == 0 {
		return ""
	}
	t := styles.T()
	box := styles.PanelStyle(m.IsFocused()).
		Padding(0, 1).
		Width(m.Width() - 2)

	if !m.IsFocused() && m.input.Value() == "" {
		return box.Render(t.S().Subtle.Render("Press / to search"))
	}
	return box.Render(m.input.View())
}
