// Package viewer provides the full-image modal overlay.
package viewer

import (
	"fmt"
	"image"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/picsearch/internal/gallery"
	"github.com/llehouerou/picsearch/internal/icons"
	"github.com/llehouerou/picsearch/internal/ui"
	"github.com/llehouerou/picsearch/internal/ui/action"
	"github.com/llehouerou/picsearch/internal/ui/imgrender"
	"github.com/llehouerou/picsearch/internal/ui/render"
	"github.com/llehouerou/picsearch/internal/ui/styles"
)

// Rows used around the image: title, footer, hint.
const chromeRows = 3

// placementSlot keeps the viewer's Kitty placement apart from grid tiles.
const placementSlot = 100

// Closed reports that the viewer was dismissed.
type Closed struct{}

// ActionType implements action.Action.
func (a Closed) ActionType() string { return "viewer.closed" }

// ActionMsg creates an action.Msg for a viewer action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: action.Viewer, Action: a}
}

func actionCmd(a action.Action) tea.Cmd {
	return action.Cmd(action.Viewer, a)
}

// Model is the full-screen viewer.
type Model struct {
	ui.Base
	renderer *imgrender.Renderer

	open    bool
	image   gallery.Image
	loading bool
	full    image.Image
	size    int
	err     error
}

// New creates a closed viewer.
func New(renderer *imgrender.Renderer) Model {
	return Model{renderer: renderer}
}

// Open shows img and marks its full-size download as pending.
func (m *Model) Open(img gallery.Image) {
	m.open = true
	m.image = img
	m.loading = true
	m.full = nil
	m.size = 0
	m.err = nil
}

// Close hides the viewer.
func (m *Model) Close() {
	m.open = false
	m.loading = false
	m.full = nil
}

// IsOpen reports whether the viewer is shown.
func (m Model) IsOpen() bool {
	return m.open
}

// URL returns the full-size URL being viewed.
func (m Model) URL() string {
	return m.image.FullURL
}

// Image returns the record being viewed.
func (m Model) Image() gallery.Image {
	return m.image
}

// SetLoaded installs the downloaded image. Results for another URL or for
// a closed viewer are ignored; it reports whether the result was used.
func (m *Model) SetLoaded(url string, img image.Image, size int, err error) bool {
	if !m.open || url != m.image.FullURL {
		return false
	}
	m.loading = false
	m.full = img
	m.size = size
	m.err = err
	return true
}

// Update handles dismissal keys and clicks. Mouse coordinates are screen
// coordinates.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.open {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "enter":
			return m.dismiss()
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if !m.inImage(msg.X, msg.Y) {
			return m.dismiss()
		}
	}
	return m, nil
}

func (m Model) dismiss() (Model, tea.Cmd) {
	m.Close()
	return m, actionCmd(Closed{})
}

// box returns the area available to the image, in screen cells.
func (m Model) box() (x, y, w, h int) {
	return 1, 1, max(m.Width()-2, 0), max(m.Height()-chromeRows, 0)
}

// ImageRect returns the screen rectangle the image occupies. Before the
// image is loaded the whole box counts as the image.
func (m Model) ImageRect() (x, y, w, h int) {
	bx, by, bw, bh := m.box()
	if m.full == nil {
		return bx, by, bw, bh
	}
	cols, rows := m.renderer.Fit(m.full, bw, bh)
	return bx + (bw-cols)/2, by + (bh-rows)/2, cols, rows
}

func (m Model) inImage(x, y int) bool {
	rx, ry, rw, rh := m.ImageRect()
	return x >= rx && x < rx+rw && y >= ry && y < ry+rh
}

// View renders the overlay covering the whole screen.
func (m Model) View() string {
	if !m.open || m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	t := styles.T()
	width := m.Width()
	_, _, bw, bh := m.box()

	title := m.image.Description
	if title == "" {
		title = m.image.ID
	}
	lines := []string{
		t.S().Title.Render(render.TruncateAndPad(title, width)),
	}

	var art string
	switch {
	case m.loading:
		art = lipgloss.Place(bw, bh, lipgloss.Center, lipgloss.Center, t.S().Muted.Render("Loading full image…"))
	case m.err != nil:
		art = lipgloss.Place(bw, bh, lipgloss.Center, lipgloss.Center,
			t.S().Error.Render(render.Truncate("Could not load image: "+m.err.Error(), bw)))
	case m.renderer.Graphics() || !m.renderer.Enabled():
		art = imgrender.Blank(bw, bh)
	default:
		cols, rows := m.renderer.Fit(m.full, bw, bh)
		cells := m.renderer.Cells(m.image.FullURL, m.full, cols, rows, false)
		art = lipgloss.Place(bw, bh, lipgloss.Center, lipgloss.Center, cells)
	}
	for line := range strings.SplitSeq(art, "\n") {
		lines = append(lines, " "+line+" ")
	}

	lines = append(lines,
		t.S().Muted.Render(render.TruncateAndPad(m.footer(), width)),
		t.S().Subtle.Render(render.TruncateAndPad("esc/q/enter or click outside the image to close", width)),
	)
	return strings.Join(lines, "\n")
}

func (m Model) footer() string {
	var parts []string
	if m.image.Author != "" {
		parts = append(parts, icons.FormatAuthor(m.image.Author))
	}
	if m.image.Width > 0 && m.image.Height > 0 {
		parts = append(parts, fmt.Sprintf("%d×%d", m.image.Width, m.image.Height))
	}
	if m.size > 0 {
		parts = append(parts, humanize.IBytes(uint64(m.size))) //nolint:gosec // size is a byte count
	}
	return strings.Join(parts, " · ")
}

// Prepare encodes the full image for the graphics protocol.
func (m Model) Prepare() string {
	if !m.open || m.full == nil || !m.renderer.Graphics() {
		return ""
	}
	_, _, bw, bh := m.box()
	cmd, err := m.renderer.Prepare(m.image.FullURL, m.full, bw, bh, false)
	if err != nil {
		return ""
	}
	return cmd
}

// Placement returns the command drawing the full image, including removal
// of every other placement.
func (m Model) Placement() string {
	if !m.open || !m.renderer.Graphics() {
		return ""
	}
	clearAll := m.renderer.ClearPlacements()
	if m.full == nil {
		return clearAll
	}
	bx, by, bw, bh := m.box()
	// Screen coordinates are 0-based, placements 1-based.
	return clearAll + m.renderer.Place(m.image.FullURL, bw, bh, false, placementSlot, by+1, bx+1)
}
