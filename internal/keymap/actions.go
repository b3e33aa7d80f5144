// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionFocusSearch Action = "focus_search"
	ActionHelp        Action = "help"
	ActionHistory     Action = "history"
	ActionRefresh     Action = "refresh"

	// Page navigation
	ActionNextPage  Action = "next_page"
	ActionPrevPage  Action = "prev_page"
	ActionFirstPage Action = "first_page"
	ActionLastPage  Action = "last_page"

	// Tile cursor
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionMoveLeft  Action = "move_left"
	ActionMoveRight Action = "move_right"
	ActionOpen      Action = "open"
)
