// internal/app/keys.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/picsearch/internal/app/handler"
	"github.com/llehouerou/picsearch/internal/keymap"
	"github.com/llehouerou/picsearch/internal/ui/pagenav"
)

// handleKeyMsg routes a key to the first layer that wants it: popups, the
// viewer, the focused search box, then global and gallery bindings.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m.quit()
	}

	if handled, cmd := m.Popups.HandleKey(msg); handled {
		return m, cmd
	}

	if m.Viewer.IsOpen() {
		if m.Keys.Resolve(key) == keymap.ActionHelp {
			return m, m.Popups.ShowHelp(m.helpContexts())
		}
		var cmd tea.Cmd
		m.Viewer, cmd = m.Viewer.Update(msg)
		return m, cmd
	}

	if m.Search.IsFocused() {
		var cmd tea.Cmd
		m.Search, cmd = m.Search.Update(msg)
		return m, cmd
	}

	_, cmd := handler.Dispatch(m.Keys.Resolve(key), m.globalLayer, m.galleryLayer)
	return m, cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.Shutdown()
	return m, tea.Quit
}

// globalLayer binds actions available whenever the gallery has the keys.
func (m *Model) globalLayer(action keymap.Action) handler.Result {
	switch action { //nolint:exhaustive // only handling global actions
	case keymap.ActionQuit:
		m.Shutdown()
		return handler.Done(tea.Quit)
	case keymap.ActionFocusSearch:
		m.Grid.SetHover(false)
		return handler.Done(m.Search.Focus())
	case keymap.ActionHistory:
		return handler.Done(m.openHistory())
	case keymap.ActionRefresh:
		q := m.Gallery.Query
		if q == "" {
			q = m.Search.Committed()
		}
		return handler.Done(m.startSearch(q))
	case keymap.ActionHelp:
		return handler.Done(m.Popups.ShowHelp(m.helpContexts()))
	}
	return handler.Unhandled
}

// galleryLayer binds paging, tile movement and opening.
func (m *Model) galleryLayer(action keymap.Action) handler.Result {
	switch action { //nolint:exhaustive // only handling gallery actions
	case keymap.ActionNextPage:
		return handler.Done(m.Nav.Turn(pagenav.Next))
	case keymap.ActionPrevPage:
		return handler.Done(m.Nav.Turn(pagenav.Prev))
	case keymap.ActionFirstPage:
		moved := false
		for m.Gallery.Prev() {
			moved = true
		}
		if !moved {
			return handler.Done(nil)
		}
		return handler.Done(m.onPageChanged())
	case keymap.ActionLastPage:
		moved := false
		for m.Gallery.Next() {
			moved = true
		}
		if !moved {
			return handler.Done(nil)
		}
		return handler.Done(m.onPageChanged())
	case keymap.ActionMoveLeft:
		return handler.Done(m.Grid.Move(-1, 0))
	case keymap.ActionMoveRight:
		return handler.Done(m.Grid.Move(1, 0))
	case keymap.ActionMoveUp:
		return handler.Done(m.Grid.Move(0, -1))
	case keymap.ActionMoveDown:
		return handler.Done(m.Grid.Move(0, 1))
	case keymap.ActionOpen:
		return handler.Done(m.Grid.Activate())
	}
	return handler.Unhandled
}
