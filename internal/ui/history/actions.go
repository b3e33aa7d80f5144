package history

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/picsearch/internal/ui/action"
)

// Rerun requests a new search for a remembered query.
type Rerun struct {
	Query string
}

// ActionType implements action.Action.
func (a Rerun) ActionType() string { return "history.rerun" }

// Forget requests removal of one remembered query.
type Forget struct {
	Query string
}

// ActionType implements action.Action.
func (a Forget) ActionType() string { return "history.forget" }

// ClearAll requests removal of the whole history.
type ClearAll struct{}

// ActionType implements action.Action.
func (a ClearAll) ActionType() string { return "history.clear_all" }

// Close signals the history popup should close.
type Close struct{}

// ActionType implements action.Action.
func (a Close) ActionType() string { return "history.close" }

// ActionMsg creates an action.Msg for a history action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: action.History, Action: a}
}

func actionCmd(a action.Action) tea.Cmd {
	return action.Cmd(action.History, a)
}
