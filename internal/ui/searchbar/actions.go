package searchbar

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/picsearch/internal/ui/action"
)

// Submit requests a search for Query.
type Submit struct {
	Query     string
	Immediate bool // enter was pressed rather than the quiet period elapsing
}

// ActionType implements action.Action.
func (a Submit) ActionType() string { return "searchbar.submit" }

// Leave reports that the search box gave up focus.
type Leave struct{}

// ActionType implements action.Action.
func (a Leave) ActionType() string { return "searchbar.leave" }

// ActionMsg creates an action.Msg for a searchbar action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: action.SearchBar, Action: a}
}

func actionCmd(a action.Action) tea.Cmd {
	return action.Cmd(action.SearchBar, a)
}
