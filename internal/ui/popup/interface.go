package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal component drawn above the gallery. The manager owns the
// border; View returns only the content.
type Popup interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Popup, tea.Cmd)
	View() string
	// SetSize gives the room available inside the border.
	SetSize(width, height int)
}
