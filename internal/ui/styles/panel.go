package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns a rounded panel whose border follows the theme's
// focus colours.
func PanelStyle(focused bool) lipgloss.Style {
	t := T()
	border := t.Border
	if focused {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}
