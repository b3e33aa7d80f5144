// internal/app/update.go
package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/picsearch/internal/app/popupctl"
	"github.com/llehouerou/picsearch/internal/errmsg"
	"github.com/llehouerou/picsearch/internal/ui/action"
	"github.com/llehouerou/picsearch/internal/ui/gridview"
	"github.com/llehouerou/picsearch/internal/ui/headerbar"
	"github.com/llehouerou/picsearch/internal/ui/helpbindings"
	"github.com/llehouerou/picsearch/internal/ui/history"
	"github.com/llehouerou/picsearch/internal/ui/notice"
	"github.com/llehouerou/picsearch/internal/ui/pagenav"
	"github.com/llehouerou/picsearch/internal/ui/searchbar"
	"github.com/llehouerou/picsearch/internal/ui/viewer"
)

// Update handles messages and returns the updated model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	model, ok := next.(Model)
	if !ok {
		return next, cmd
	}
	model.prepareGraphics()
	if flush := model.scheduleFlush(); flush != nil {
		return model, tea.Batch(cmd, flush)
	}
	return model, cmd
}

func (m Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case searchbar.DebounceMsg:
		var cmd tea.Cmd
		m.Search, cmd = m.Search.Update(msg)
		return m, cmd

	case action.Msg:
		return m.handleAction(msg)

	case FetchProgressMsg:
		return m.handleFetchProgress(msg)

	case FetchDoneMsg:
		return m.handleFetchDone(msg)

	case ThumbLoadedMsg:
		return m.handleThumbLoaded(msg)

	case FullLoadedMsg:
		return m.handleFullLoaded(msg)

	case HistoryLoadedMsg:
		return m.handleHistoryLoaded(msg)

	case HistoryChangedMsg:
		return m.handleHistoryChanged(msg)

	case transmitFlushedMsg:
		if msg.Seq == m.transmitSeq {
			m.pendingTransmit = ""
		}
		return m, nil
	}

	// Cursor blink and other textinput internals.
	if m.Search.IsFocused() {
		var cmd tea.Cmd
		m.Search, cmd = m.Search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleWindowSize lays the screen out: header, search box, grid with its
// counter line, nav bar.
func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	m.Search.SetSize(m.width, searchbar.Height)
	m.Grid.SetSize(m.width, m.gridHeight())
	m.Nav.SetWidth(m.width)
	m.Viewer.SetSize(m.width, m.height)
	m.Popups.SetSize(m.width, m.height)

	// Tile sizes changed: encoded variants are stale.
	m.queueTransmit(m.renderer.Reset())
	return m, nil
}

// gridTop is the first screen row of the grid.
func (m Model) gridTop() int {
	return headerbar.Height + searchbar.Height
}

// gridHeight is the number of rows of the grid, counter line included.
func (m Model) gridHeight() int {
	return max(m.height-m.gridTop()-pagenav.Height, 0)
}

// handleAction routes component actions by source.
func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch msg.Source {
	case action.SearchBar:
		return m.handleSearchbarAction(msg.Action)
	case action.GridView:
		return m.handleGridAction(msg.Action)
	case action.PageNav:
		if _, ok := msg.Action.(pagenav.Turned); ok {
			return m, m.onPageChanged()
		}
	case action.Viewer:
		if _, ok := msg.Action.(viewer.Closed); ok {
			m.closeViewer()
		}
	case action.Notice:
		return m.handleNoticeAction(msg.Action)
	case action.History:
		return m.handleHistoryAction(msg.Action)
	case action.HelpBindings:
		if _, ok := msg.Action.(helpbindings.Close); ok {
			m.Popups.Hide(popupctl.Help)
		}
	}
	return m, nil
}

func (m Model) handleSearchbarAction(a action.Action) (tea.Model, tea.Cmd) {
	switch a := a.(type) {
	case searchbar.Submit:
		return m, m.startSearch(a.Query)
	case searchbar.Leave:
		return m, nil
	}
	return m, nil
}

func (m Model) handleGridAction(a action.Action) (tea.Model, tea.Cmd) {
	switch a := a.(type) {
	case gridview.Activate:
		return m, m.openViewer(a.Image)
	case gridview.PageChanged:
		return m, m.onPageChanged()
	}
	return m, nil
}

func (m Model) handleNoticeAction(a action.Action) (tea.Model, tea.Cmd) {
	m.Popups.Hide(popupctl.Notice)
	answer, ok := a.(notice.Answered)
	if !ok || !answer.Yes {
		return m, nil
	}
	if _, ok := answer.Context.(clearHistoryContext); ok && m.history != nil {
		return m, clearHistoryCmd(m.history)
	}
	return m, nil
}

func (m Model) handleHistoryAction(a action.Action) (tea.Model, tea.Cmd) {
	switch a := a.(type) {
	case history.Rerun:
		m.Popups.Hide(popupctl.History)
		m.Search.SetQuery(a.Query)
		return m, m.startSearch(a.Query)
	case history.Forget:
		if m.history == nil {
			return m, nil
		}
		return m, forgetSearchCmd(m.history, a.Query)
	case history.ClearAll:
		n := 0
		if h := m.Popups.History(); h != nil {
			n = len(h.Records())
		}
		return m, m.Popups.ShowQuestion("Clear history",
			fmt.Sprintf("Forget all %d recent searches?", n), clearHistoryContext{})
	case history.Close:
		m.Popups.Hide(popupctl.History)
	}
	return m, nil
}

// openHistory loads recent searches; the popup opens when they arrive.
func (m Model) openHistory() tea.Cmd {
	if m.history == nil {
		return m.Popups.ShowHistory(nil)
	}
	return loadHistoryCmd(m.history)
}

func (m Model) handleHistoryLoaded(msg HistoryLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Error("history load failed", "error", msg.Err)
		return m, m.Popups.ShowAlert("Error", errmsg.Format(errmsg.OpLoadHistory, msg.Err), nil)
	}
	if h := m.Popups.History(); h != nil {
		h.SetRecords(msg.Records)
		return m, nil
	}
	return m, m.Popups.ShowHistory(msg.Records)
}

func (m Model) handleHistoryChanged(msg HistoryChangedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn(errmsg.Format(msg.Op, msg.Err))
		return m, nil
	}
	if msg.Op == errmsg.OpClearHistory && m.Popups.History() != nil && m.history != nil {
		return m, loadHistoryCmd(m.history)
	}
	return m, nil
}

// helpContexts lists the binding groups relevant to the current focus.
func (m Model) helpContexts() []string {
	switch {
	case m.Viewer.IsOpen():
		return []string{"global", "viewer"}
	case m.Search.IsFocused():
		return []string{"global", "search"}
	}
	return []string{"global", "gallery", "search", "viewer", "history"}
}
