// Package gridview renders the visible window of results as image tiles.
package gridview

import (
	"image"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/picsearch/internal/gallery"
	"github.com/llehouerou/picsearch/internal/ui"
	"github.com/llehouerou/picsearch/internal/ui/imgrender"
)

// CounterHeight is the row below the tiles holding the counters.
const CounterHeight = 1

// Thumb is the load state of one thumbnail.
type Thumb struct {
	Image image.Image
	Err   error
}

// Model is the tile grid. It reads the shared gallery state; only cursor
// movement across the window edge mutates it.
type Model struct {
	ui.Base
	state    *gallery.State
	renderer *imgrender.Renderer
	thumbs   map[string]Thumb

	cursor int  // selected tile within the window
	hover  bool // grayout active: pointer or keyboard cursor inside the grid
	empty  string
}

// New creates a grid over state drawing thumbnails with renderer.
func New(state *gallery.State, renderer *imgrender.Renderer) Model {
	return Model{
		state:    state,
		renderer: renderer,
		thumbs:   make(map[string]Thumb),
		empty:    "No results",
	}
}

// SetThumb records a loaded (or failed) thumbnail.
func (m *Model) SetThumb(url string, t Thumb) {
	m.thumbs[url] = t
}

// ResetThumbs forgets all thumbnails.
func (m *Model) ResetThumbs() {
	m.thumbs = make(map[string]Thumb)
}

// Thumb returns the load state of url.
func (m Model) Thumb(url string) (Thumb, bool) {
	t, ok := m.thumbs[url]
	return t, ok
}

// MissingThumbs returns the thumbnail URLs of the window not yet loaded.
func (m Model) MissingThumbs() []string {
	var urls []string
	for _, img := range m.state.Window() {
		if _, ok := m.thumbs[img.ThumbURL]; !ok && img.ThumbURL != "" {
			urls = append(urls, img.ThumbURL)
		}
	}
	return urls
}

// SetEmptyMessage sets the text shown when there are no results.
func (m *Model) SetEmptyMessage(s string) {
	m.empty = s
}

// Geometry returns the tile layout for the current size.
func (m Model) Geometry() Geometry {
	return Layout(m.Width(), m.Height()-CounterHeight, m.state.WindowSize())
}

// Cursor returns the selected tile index within the window.
func (m Model) Cursor() int {
	return m.cursor
}

// Hovering reports whether the grayout effect is active.
func (m Model) Hovering() bool {
	return m.hover
}

// SetHover enables or disables the grayout effect.
func (m *Model) SetHover(on bool) {
	m.hover = on
}

// ResetCursor moves the cursor to the first tile and clears the grayout.
func (m *Model) ResetCursor() {
	m.cursor = 0
	m.hover = false
}

// ClampCursor keeps the cursor inside the current window.
func (m *Model) ClampCursor() {
	n := len(m.state.Window())
	m.cursor = max(min(m.cursor, n-1), 0)
}

// Selected returns the image under the cursor.
func (m Model) Selected() (gallery.Image, bool) {
	return m.state.At(m.cursor)
}

// Activate opens the selected tile.
func (m Model) Activate() tea.Cmd {
	img, ok := m.Selected()
	if !ok {
		return nil
	}
	idx := m.cursor
	return actionCmd(Activate{Index: idx, Image: img})
}

// Move shifts the cursor by dx tiles horizontally or dy rows vertically.
// Moving right past the last tile turns to the next page; moving left
// before the first tile turns to the previous page. Vertical moves stay
// inside the window.
func (m *Model) Move(dx, dy int) tea.Cmd {
	n := len(m.state.Window())
	if n == 0 {
		return nil
	}
	m.hover = true
	g := m.Geometry()

	if dy != 0 && g.Cols > 0 {
		next := m.cursor + dy*g.Cols
		if next >= 0 && next < n {
			m.cursor = next
		}
		return nil
	}

	next := m.cursor + dx
	switch {
	case next >= n:
		if !m.state.Next() {
			return nil
		}
		m.cursor = 0
		return m.pageChanged()
	case next < 0:
		if !m.state.Prev() {
			return nil
		}
		m.cursor = len(m.state.Window()) - 1
		return m.pageChanged()
	}
	m.cursor = next
	return nil
}

func (m Model) pageChanged() tea.Cmd {
	offset := m.state.Offset
	return actionCmd(PageChanged{Offset: offset})
}

// Update handles mouse events whose coordinates are relative to the grid.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return m, nil
	}

	g := m.Geometry()
	idx := g.TileAt(mouse.X, mouse.Y, len(m.state.Window()))

	switch {
	case mouse.Action == tea.MouseActionMotion:
		m.hover = idx >= 0
		if idx >= 0 {
			m.cursor = idx
		}
	case mouse.Action == tea.MouseActionPress && mouse.Button == tea.MouseButtonLeft:
		if idx < 0 {
			return m, nil
		}
		m.cursor = idx
		return m, m.Activate()
	}
	return m, nil
}

// dimmed reports whether tile i is drawn with the grayout effect.
func (m Model) dimmed(i int) bool {
	return m.hover && i != m.cursor
}
