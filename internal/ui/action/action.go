// Package action carries component events (a submitted query, a turned
// page, a closed popup) to the root model.
package action

import tea "github.com/charmbracelet/bubbletea"

// Source names the component an action came from.
type Source string

const (
	SearchBar    Source = "searchbar"
	GridView     Source = "gridview"
	PageNav      Source = "pagenav"
	Viewer       Source = "viewer"
	Notice       Source = "notice"
	History      Source = "history"
	HelpBindings Source = "helpbindings"
)

// Action is an event raised by a component.
// ActionType returns a string identifier for logging/debugging.
type Action interface {
	ActionType() string
}

// Msg wraps an action with its source component.
type Msg struct {
	Source Source
	Action Action
}

// Cmd returns a command delivering a from source.
func Cmd(source Source, a Action) tea.Cmd {
	return func() tea.Msg { return Msg{Source: source, Action: a} }
}

// From runs cmd and returns the action it produced, if any.
func From(cmd tea.Cmd) (Msg, bool) {
	if cmd == nil {
		return Msg{}, false
	}
	msg, ok := cmd().(Msg)
	return msg, ok
}
