// internal/app/view.go
package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/picsearch/internal/ui/headerbar"
)

// View renders the application UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var view string
	if m.Viewer.IsOpen() {
		view = m.Viewer.View()
	} else {
		view = strings.Join([]string{
			headerbar.Render(m.status, m.width),
			m.Search.View(),
			m.Grid.View(),
			m.Nav.View(),
		}, "\n")
	}

	// Overlay all popups
	view = m.Popups.RenderOverlay(view)

	// Ensure view is exactly terminal height (pad or truncate if needed)
	view = enforceHeight(view, m.height)

	// Prepend image transmissions so they precede any placement
	if m.pendingTransmit != "" {
		view = m.pendingTransmit + view
	}

	// Append image placements (Kitty/Sixel graphics)
	view += m.placements()

	return view
}

// placements returns the graphics commands drawing the visible images.
// Popups hide every placement since images are drawn above the text.
func (m Model) placements() string {
	if !m.renderer.Graphics() {
		return ""
	}
	if m.Popups.AnyVisible() {
		return m.renderer.ClearPlacements()
	}
	if m.Viewer.IsOpen() {
		return m.Viewer.Placement()
	}
	// Placements are 1-based.
	return m.Grid.Placements(m.gridTop()+1, 1)
}

// prepareGraphics encodes newly visible images and queues their one-time
// transmission.
func (m *Model) prepareGraphics() {
	if !m.renderer.Graphics() || m.width == 0 {
		return
	}
	if m.Viewer.IsOpen() {
		m.queueTransmit(m.Viewer.Prepare())
		return
	}
	m.queueTransmit(m.Grid.Prepare())
}

// queueTransmit adds graphics commands to the next frames.
func (m *Model) queueTransmit(cmd string) {
	if cmd == "" {
		return
	}
	m.pendingTransmit += cmd
	m.transmitSeq++
}

// scheduleFlush returns the command dropping pending graphics commands
// once rendered, unless one is already scheduled for the latest sequence.
func (m *Model) scheduleFlush() tea.Cmd {
	if m.pendingTransmit == "" || m.flushSeq == m.transmitSeq {
		return nil
	}
	m.flushSeq = m.transmitSeq
	return flushTransmitCmd(m.transmitSeq)
}

// enforceHeight ensures the view has exactly the specified number of lines.
func enforceHeight(view string, targetHeight int) string {
	lines := splitLines(view)
	currentHeight := len(lines)

	if currentHeight == targetHeight {
		return view
	}

	if currentHeight < targetHeight {
		// Pad with empty lines
		for i := currentHeight; i < targetHeight; i++ {
			lines = append(lines, "")
		}
	} else {
		// Truncate (shouldn't normally happen)
		lines = lines[:targetHeight]
	}

	return strings.Join(lines, "\n")
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := range len(s) {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
