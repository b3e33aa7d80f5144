// internal/ui/headerbar/headerbar.go
package headerbar

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/picsearch/internal/icons"
	"github.com/llehouerou/picsearch/internal/ui/render"
	"github.com/llehouerou/picsearch/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

const appName = "picsearch"

// Status describes the search shown in the header.
type Status struct {
	Query      string
	Loading    bool
	Page       int // last page received while loading
	TotalPages int
	Results    int
	Failed     bool
}

// Text returns the plain status text, e.g. "searching… page 3/12".
func (s Status) Text() string {
	switch {
	case s.Loading && s.TotalPages > 0:
		return fmt.Sprintf("searching… page %d/%d", s.Page, s.TotalPages)
	case s.Loading:
		return "searching…"
	case s.Query == "":
		return ""
	case s.Failed:
		return fmt.Sprintf("⚠ %d results (incomplete)", s.Results)
	case s.Results == 0:
		return "no results"
	case s.Results == 1:
		return "1 result"
	default:
		return fmt.Sprintf("%d results", s.Results)
	}
}

// Render returns the header bar string for the given width.
func Render(s Status, width int) string {
	if width < 20 {
		return ""
	}
	t := styles.T()

	left := styles.ApplyBoldGradient(appName, t.Primary, t.Secondary)
	if s.Query != "" {
		room := max(width/2-lipgloss.Width(appName)-3, 4)
		left += t.S().Subtle.Render(" │ ") + t.S().Base.Render(render.Truncate(icons.FormatQuery(s.Query), room))
	}

	var status lipgloss.Style
	switch {
	case s.Loading:
		status = lipgloss.NewStyle().Foreground(t.Primary)
	case s.Failed:
		status = t.S().Warning
	default:
		status = t.S().Muted
	}
	right := status.Render(s.Text()) + t.S().Subtle.Render("  ? help")

	return render.Row(left, right, width)
}
