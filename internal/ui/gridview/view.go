package gridview

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/llehouerou/picsearch/internal/gallery"
	"github.com/llehouerou/picsearch/internal/icons"
	"github.com/llehouerou/picsearch/internal/ui/imgrender"
	"github.com/llehouerou/picsearch/internal/ui/render"
	"github.com/llehouerou/picsearch/internal/ui/styles"
)

// fallbackSwatch is used when a result carries no dominant colour.
const fallbackSwatch = "#3a3a3a"

// View renders the tiles and the counter line.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	gridH := m.Height() - CounterHeight

	window := m.state.Window()
	var body string
	if len(window) == 0 {
		body = lipgloss.Place(m.Width(), gridH, lipgloss.Center, lipgloss.Center,
			styles.T().S().Muted.Render(m.empty))
	} else {
		body = m.renderTiles(window, gridH)
	}
	return body + "\n" + m.renderCounter()
}

func (m Model) renderTiles(window []gallery.Image, gridH int) string {
	g := m.Geometry()
	rows := make([]string, 0, g.Rows)
	for r := range g.Rows {
		var tiles []string
		for c := range g.Cols {
			i := r*g.Cols + c
			if i >= len(window) {
				break
			}
			tiles = append(tiles, m.renderTile(i, window[i], g))
		}
		if len(tiles) > 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
		}
	}
	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.NewStyle().Width(m.Width()).Height(gridH).MaxHeight(gridH).Render(body)
}

func (m Model) renderTile(i int, img gallery.Image, g Geometry) string {
	w, h := g.ImageSize()
	dim := m.dimmed(i)

	var art string
	thumb, loaded := m.thumbs[img.ThumbURL]
	switch {
	case !loaded:
		art = swatch(img.Color, w, h, "loading…", dim)
	case thumb.Err != nil:
		art = swatch(img.Color, w, h, icons.Warning()+shortError(thumb.Err), dim)
	case !m.renderer.Enabled():
		art = swatch(img.Color, w, h, "", dim)
	case m.renderer.Graphics():
		art = imgrender.Blank(w, h)
	default:
		art = m.renderer.Cells(img.ThumbURL, thumb.Image, w, h, dim)
	}

	caption := img.Author
	if caption == "" {
		caption = img.ID
	}
	captionStyle := styles.T().S().Muted
	switch {
	case i == m.cursor && m.hover:
		captionStyle = styles.T().S().Accent
	case dim:
		captionStyle = styles.T().S().Subtle
	}
	caption = captionStyle.Render(render.TruncateAndPad(caption, w))

	tile := lipgloss.JoinVertical(lipgloss.Left, art, caption)
	return lipgloss.NewStyle().Width(g.TileW).Height(g.TileH).MaxHeight(g.TileH).Render(tile)
}

// swatch renders a block in the photo's dominant colour with an optional
// centred label.
func swatch(hex string, width, height int, label string, dim bool) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		c, _ = colorful.Hex(fallbackSwatch)
	}
	if dim {
		c = imgrender.DimColor(c)
	}
	fg := lipgloss.Color("#f0f0f0")
	if _, _, l := c.Hsl(); l > 0.6 {
		fg = lipgloss.Color("#202020")
	}
	bg := lipgloss.Color(c.Hex())
	style := lipgloss.NewStyle().Background(bg).Foreground(fg)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		style.Render(render.Truncate(label, width)),
		lipgloss.WithWhitespaceBackground(bg))
}

func shortError(err error) string {
	var msg string
	for e := err; e != nil; e = errors.Unwrap(e) {
		msg = e.Error()
	}
	return msg
}

func (m Model) renderCounter() string {
	t := styles.T()
	if m.state.Len() == 0 {
		return render.Pad("", m.Width())
	}
	left := t.S().Base.Render(fmt.Sprintf("Showing %d of %d", m.state.Shown(), m.state.Len()))
	right := ""
	if img, ok := m.Selected(); ok && img.Description != "" {
		right = t.S().Subtle.Render(render.Truncate(img.Description, max(m.Width()/2, 0)))
	}
	return render.Row(left, right, m.Width())
}

// Prepare encodes the visible thumbnails for the active graphics protocol
// and returns the terminal commands to emit before placing them.
func (m Model) Prepare() string {
	if !m.renderer.Graphics() {
		return ""
	}
	g := m.Geometry()
	w, h := g.ImageSize()
	var sb strings.Builder
	for i, img := range m.state.Window() {
		thumb, ok := m.thumbs[img.ThumbURL]
		if !ok || thumb.Image == nil {
			continue
		}
		cmd, err := m.renderer.Prepare(img.ThumbURL, thumb.Image, w, h, m.dimmed(i))
		if err != nil {
			continue
		}
		sb.WriteString(cmd)
	}
	return sb.String()
}

// Placements returns the commands drawing the visible thumbnails with the
// grid's top-left cell at (row, col), 1-based.
func (m Model) Placements(row, col int) string {
	if !m.renderer.Graphics() {
		return ""
	}
	g := m.Geometry()
	w, h := g.ImageSize()
	var sb strings.Builder
	sb.WriteString(m.renderer.ClearPlacements())
	for i, img := range m.state.Window() {
		x, y := g.TileOrigin(i)
		if y+h > m.Height()-CounterHeight {
			break
		}
		sb.WriteString(m.renderer.Place(img.ThumbURL, w, h, m.dimmed(i), i, row+y, col+x))
	}
	return sb.String()
}
