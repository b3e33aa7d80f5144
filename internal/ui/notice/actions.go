package notice

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/picsearch/internal/ui/action"
)

// Dismissed reports that an alert was acknowledged.
type Dismissed struct {
	Context any
}

// ActionType implements action.Action.
func (a Dismissed) ActionType() string { return "notice.dismissed" }

// Answered contains the answer to a question.
type Answered struct {
	Yes     bool
	Context any // User-provided context passed through
}

// ActionType implements action.Action.
func (a Answered) ActionType() string { return "notice.answered" }

// ActionMsg creates an action.Msg for a notice action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: action.Notice, Action: a}
}

func actionCmd(a action.Action) tea.Cmd {
	return action.Cmd(action.Notice, a)
}
