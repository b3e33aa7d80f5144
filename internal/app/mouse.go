// internal/app/mouse.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/picsearch/internal/ui/pagenav"
	"github.com/llehouerou/picsearch/internal/ui/searchbar"
)

// handleMouseMsg routes pointer events by screen region. The viewer, when
// open, receives everything; popups swallow pointer input.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.Popups.AnyVisible() {
		return m, nil
	}

	if m.Viewer.IsOpen() {
		var cmd tea.Cmd
		m.Viewer, cmd = m.Viewer.Update(msg)
		return m, cmd
	}

	switch msg.Button { //nolint:exhaustive // other buttons fall through to region routing
	case tea.MouseButtonWheelDown:
		return m, m.Nav.Turn(pagenav.Next)
	case tea.MouseButtonWheelUp:
		return m, m.Nav.Turn(pagenav.Prev)
	}

	press := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
	top := m.gridTop()
	bottom := top + m.gridHeight()

	switch {
	case msg.Y >= top && msg.Y < bottom:
		if press && m.Search.IsFocused() {
			m.Search.Blur()
		}
		rel := msg
		rel.Y -= top
		var cmd tea.Cmd
		m.Grid, cmd = m.Grid.Update(rel)
		return m, cmd

	case msg.Y == m.height-pagenav.Height:
		m.Grid.SetHover(false)
		if press {
			return m, m.Nav.Click(msg.X)
		}

	case msg.Y >= top-searchbar.Height && msg.Y < top:
		m.Grid.SetHover(false)
		if press && !m.Search.IsFocused() {
			return m, m.Search.Focus()
		}

	default:
		m.Grid.SetHover(false)
	}
	return m, nil
}
