// Package pagenav renders the previous/next page controls.
package pagenav

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/picsearch/internal/gallery"
	"github.com/llehouerou/picsearch/internal/ui/action"
	"github.com/llehouerou/picsearch/internal/ui/styles"
)

// Height is the number of rows the bar occupies.
const Height = 1

const (
	prevLabel = "◀ Prev"
	nextLabel = "Next ▶"
)

// Direction of a page turn.
type Direction int

const (
	Prev Direction = iota
	Next
)

// Turned reports that the window moved.
type Turned struct {
	Direction Direction
	Offset    int // new offset
}

// ActionType implements action.Action.
func (a Turned) ActionType() string { return "pagenav.turned" }

// ActionMsg creates an action.Msg for a pagenav action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: action.PageNav, Action: a}
}

func actionCmd(a action.Action) tea.Cmd {
	return action.Cmd(action.PageNav, a)
}

// Model is the navigation bar. It reads and moves the shared gallery state.
type Model struct {
	state *gallery.State
	width int

	// Horizontal cell ranges of the rendered buttons, [start, end).
	prevStart, prevEnd int
	nextStart, nextEnd int
}

// New creates a navigation bar over state.
func New(state *gallery.State) Model {
	return Model{state: state}
}

// SetWidth sets the bar width.
func (m *Model) SetWidth(width int) {
	m.width = width
	m.layout()
}

// Turn moves the window in direction d. Disabled edges are a no-op.
func (m Model) Turn(d Direction) tea.Cmd {
	var moved bool
	if d == Next {
		moved = m.state.Next()
	} else {
		moved = m.state.Prev()
	}
	if !moved {
		return nil
	}
	offset := m.state.Offset
	return actionCmd(Turned{Direction: d, Offset: offset})
}

// Click handles a mouse press at column x of the bar row.
func (m Model) Click(x int) tea.Cmd {
	switch {
	case x >= m.prevStart && x < m.prevEnd:
		return m.Turn(Prev)
	case x >= m.nextStart && x < m.nextEnd:
		return m.Turn(Next)
	}
	return nil
}

// layout computes the button positions for the current width: prev on the
// left edge, next on the right edge.
func (m *Model) layout() {
	pw := lipgloss.Width(renderButton(prevLabel, true))
	nw := lipgloss.Width(renderButton(nextLabel, true))
	m.prevStart, m.prevEnd = 0, pw
	m.nextStart = max(m.width-nw, pw+1)
	m.nextEnd = m.nextStart + nw
}

func renderButton(label string, enabled bool) string {
	t := styles.T()
	style := lipgloss.NewStyle().Padding(0, 1)
	if enabled {
		style = style.Foreground(t.BgBase).Background(t.Primary).Bold(true)
	} else {
		style = style.Foreground(t.FgSubtle).Background(t.BgCursor)
	}
	return style.Render(label)
}

// View renders the two buttons with the page indicator between them.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}
	prev := renderButton(prevLabel, m.state.CanPrev())
	next := renderButton(nextLabel, m.state.CanNext())

	var middle string
	if cur, total := m.state.Page(); total > 0 {
		middle = styles.T().S().Muted.Render(fmt.Sprintf("page %d/%d", cur, total))
	}

	gap := m.nextStart - m.prevEnd
	mw := lipgloss.Width(middle)
	if mw > gap-2 {
		middle, mw = "", 0
	}
	left := (gap - mw) / 2
	return prev +
		strings.Repeat(" ", max(left, 0)) +
		middle +
		strings.Repeat(" ", max(gap-left-mw, 0)) +
		next
}
