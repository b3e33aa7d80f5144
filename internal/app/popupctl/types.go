// internal/app/popupctl/types.go
package popupctl

// Type identifies which popup is currently active.
type Type int

const (
	None Type = iota
	Help
	Notice
	History
)

// Priority defines which popup takes precedence (highest priority first).
var Priority = []Type{
	Notice,
	Help,
	History,
}

// RenderOrder defines the order popups are rendered (bottom to top).
var RenderOrder = []Type{
	History,
	Help,
	Notice,
}
