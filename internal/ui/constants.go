// Package ui holds layout values and state shared by the UI components.
package ui

const (
	// ScrollMargin is how many rows popup lists keep visible around the
	// selection.
	ScrollMargin = 1

	// PopupChrome is the rows a scrolling popup gives to its title,
	// footer, border and padding.
	PopupChrome = 10
)
