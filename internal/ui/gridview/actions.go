package gridview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/picsearch/internal/gallery"
	"github.com/llehouerou/picsearch/internal/ui/action"
)

// Activate requests the viewer for a tile.
type Activate struct {
	Index int
	Image gallery.Image
}

// ActionType implements action.Action.
func (a Activate) ActionType() string { return "gridview.activate" }

// PageChanged reports that cursor movement turned the page.
type PageChanged struct {
	Offset int
}

// ActionType implements action.Action.
func (a PageChanged) ActionType() string { return "gridview.page_changed" }

// ActionMsg creates an action.Msg for a gridview action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: action.GridView, Action: a}
}

func actionCmd(a action.Action) tea.Cmd {
	return action.Cmd(action.GridView, a)
}
