// Package popup draws modal boxes over the gallery.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/picsearch/internal/ui/styles"
)

// Cells taken by the border and padding around popup content.
const (
	frameWidth  = 6
	frameHeight = 4
	screenGap   = 4
)

// SizeConfig sets the outer size of a popup as a share of the screen.
// A zero WidthPct fits the box to its content.
type SizeConfig struct {
	WidthPct  int
	HeightPct int
}

// Fixed reports whether the box size ignores the content.
func (s SizeConfig) Fixed() bool {
	return s.WidthPct > 0
}

// Content returns the space left for content inside the box on a screen of
// the given size. Content-fitted boxes may use the whole screen.
func (s SizeConfig) Content(screenW, screenH int) (width, height int) {
	if !s.Fixed() {
		return screenW, screenH
	}
	w, h := s.outer(screenW, screenH)
	return max(w-frameWidth, 1), max(h-frameHeight, 1)
}

func (s SizeConfig) outer(screenW, screenH int) (width, height int) {
	return screenW * s.WidthPct / 100, screenH * s.HeightPct / 100
}

// box returns the outer size of a popup holding content, kept screenGap
// cells clear of the screen size.
func (s SizeConfig) box(content string, screenW, screenH int) (width, height int) {
	if s.Fixed() {
		return s.outer(screenW, screenH)
	}
	width = lipgloss.Width(content) + frameWidth
	height = lipgloss.Height(content) + frameHeight
	return min(width, screenW-screenGap), min(height, screenH-screenGap)
}

// RenderBordered frames content and centers the box on a screen-sized
// canvas. Cells outside the box are spaces, which Compose treats as
// transparent.
func RenderBordered(content string, screenW, screenH int, size SizeConfig) string {
	w, h := size.box(content, screenW, screenH)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Padding(1, 2).
		Width(max(w-2, 0)).
		Height(max(h-2, 0)).
		Render(content)
	return lipgloss.Place(screenW, screenH, lipgloss.Center, lipgloss.Center, box)
}

// Compose lays overlay over base, line by line. On each overlay line the
// cells between the first and last non-space character replace what base
// has there; base stays visible on both sides.
func Compose(base, overlay string, width int) string {
	lines := strings.Split(base, "\n")
	for i, line := range strings.Split(overlay, "\n") {
		if i >= len(lines) {
			break
		}
		start, end := opaqueSpan(line)
		if start >= end {
			continue
		}
		lines[i] = splice(lines[i], ansi.Cut(line, start, end), start, end, width)
	}
	return strings.Join(lines, "\n")
}

// opaqueSpan returns the cell range of line between its leading and
// trailing spaces.
func opaqueSpan(line string) (start, end int) {
	plain := strings.TrimRight(ansi.Strip(line), " ")
	body := strings.TrimLeft(plain, " ")
	return len(plain) - len(body), ansi.StringWidth(plain)
}

// splice replaces cells [start, end) of line with mid. Halves of wide
// characters cut at either edge become spaces so columns stay aligned.
func splice(line, mid string, start, end, width int) string {
	left := ansi.Cut(line, 0, start)
	left += strings.Repeat(" ", max(start-ansi.StringWidth(left), 0))
	if end >= width {
		return left + "\x1b[0m" + mid
	}
	right := ansi.Cut(line, end, width)
	if w := ansi.StringWidth(line); w > end {
		if gap := min(w, width) - end - ansi.StringWidth(right); gap > 0 {
			right = strings.Repeat(" ", gap) + right
		}
	}
	return left + "\x1b[0m" + mid + "\x1b[0m" + right
}
