// Package handler dispatches resolved key actions through layers of
// bindings. The first layer that claims an action ends the dispatch.
package handler

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/picsearch/internal/keymap"
)

// Result is what a layer did with an action.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// Unhandled passes the action on to the next layer.
var Unhandled = Result{}

// Done claims the action, optionally with a follow-up command.
func Done(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Layer reacts to the actions it binds and leaves the rest Unhandled.
type Layer func(keymap.Action) Result

// Dispatch offers action to each layer in order. Unbound keys resolve to
// the empty action and reach no layer.
func Dispatch(action keymap.Action, layers ...Layer) (bool, tea.Cmd) {
	if action == "" {
		return false, nil
	}
	for _, layer := range layers {
		if r := layer(action); r.Handled {
			return true, r.Cmd
		}
	}
	return false, nil
}
