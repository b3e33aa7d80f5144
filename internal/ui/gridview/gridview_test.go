package gridview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/picsearch/internal/gallery"
	"github.com/llehouerou/picsearch/internal/icons"
	"github.com/llehouerou/picsearch/internal/ui/action"
	"github.com/llehouerou/picsearch/internal/ui/imgrender"
	"github.com/llehouerou/picsearch/internal/ui/testutil"
)

func newGrid(t *testing.T, n int, mode imgrender.Mode) (Model, *gallery.State) {
	t.Helper()
	s := gallery.New(10, 55)
	images := make([]gallery.Image, n)
	for i := range images {
		images[i] = gallery.Image{
			ID:       fmt.Sprintf("id%d", i),
			ThumbURL: fmt.Sprintf("https://img/%d", i),
			FullURL:  fmt.Sprintf("https://img/%d/full", i),
			Author:   fmt.Sprintf("Author %d", i),
			Color:    "#336699",
		}
	}
	s.Replace("dog", images)
	m := New(s, imgrender.New(mode))
	m.SetSize(100, 25)
	return m, s
}

func actionOf(t *testing.T, cmd tea.Cmd) action.Action {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(action.Msg)
	require.True(t, ok)
	return msg.Action
}

func TestLayout(t *testing.T) {
	g := Layout(100, 24, 10)
	assert.Equal(t, 5, g.Cols)
	assert.Equal(t, 2, g.Rows)
	assert.Equal(t, 20, g.TileW)
	assert.Equal(t, 12, g.TileH)

	w, h := g.ImageSize()
	assert.Equal(t, 19, w)
	assert.Equal(t, 11, h)

	narrow := Layout(30, 40, 10)
	assert.Equal(t, 1, narrow.Cols)
	assert.Equal(t, 10, narrow.Rows)
	assert.Equal(t, minTileHeight, narrow.TileH)

	assert.Equal(t, Geometry{}, Layout(0, 10, 10))
}

func TestLayout_ColumnsCappedBySlots(t *testing.T) {
	g := Layout(500, 24, 3)
	assert.Equal(t, 3, g.Cols)
	assert.Equal(t, 1, g.Rows)
}

func TestGeometry_TileAt(t *testing.T) {
	g := Layout(100, 24, 10)

	assert.Equal(t, 0, g.TileAt(0, 0, 10))
	assert.Equal(t, 1, g.TileAt(20, 0, 10))
	assert.Equal(t, -1, g.TileAt(19, 0, 10), "gap column")
	assert.Equal(t, 6, g.TileAt(25, 13, 10))
	assert.Equal(t, -1, g.TileAt(25, 13, 3), "past the last tile")
	assert.Equal(t, -1, g.TileAt(-1, 0, 10))
	assert.Equal(t, -1, g.TileAt(100, 0, 10))

	x, y := g.TileOrigin(7)
	assert.Equal(t, 40, x)
	assert.Equal(t, 12, y)
}

func TestView_RendersWindowTilesAndCounter(t *testing.T) {
	m, s := newGrid(t, 23, imgrender.ModeNone)

	view := testutil.StripANSI(m.View())
	assert.Contains(t, view, "Showing 10 of 23")
	assert.Contains(t, view, "Author 0")
	assert.Contains(t, view, "Author 9")
	assert.NotContains(t, view, "Author 10")

	s.Next()
	s.Next()
	view = testutil.StripANSI(m.View())
	assert.Contains(t, view, "Showing 23 of 23")
	assert.Equal(t, 3, strings.Count(view, "Author 2"))
}

func TestView_HeightMatchesSize(t *testing.T) {
	m, _ := newGrid(t, 23, imgrender.ModeNone)
	assert.Len(t, strings.Split(m.View(), "\n"), 25)
}

func TestView_Empty(t *testing.T) {
	m, _ := newGrid(t, 0, imgrender.ModeNone)
	m.SetEmptyMessage("Nothing found")

	view := testutil.StripANSI(m.View())
	assert.Contains(t, view, "Nothing found")
	assert.NotContains(t, view, "Showing")
}

func TestView_LoadStates(t *testing.T) {
	m, _ := newGrid(t, 2, imgrender.ModeHalfBlock)
	m.SetThumb("https://img/1", Thumb{Err: fmt.Errorf("download: %w", errors.New("timeout"))})

	view := testutil.StripANSI(m.View())
	assert.Contains(t, view, "loading…")
	assert.Contains(t, view, icons.Warning()+"timeout")
}

func TestView_HalfBlockThumb(t *testing.T) {
	m, _ := newGrid(t, 1, imgrender.ModeHalfBlock)
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	for y := range 40 {
		for x := range 40 {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	m.SetThumb("https://img/0", Thumb{Image: img})

	assert.Contains(t, m.View(), "▀")
	assert.Empty(t, m.MissingThumbs())
}

func TestMissingThumbs(t *testing.T) {
	m, s := newGrid(t, 23, imgrender.ModeNone)
	m.SetThumb("https://img/0", Thumb{})

	missing := m.MissingThumbs()
	assert.Len(t, missing, 9)
	assert.NotContains(t, missing, "https://img/0")

	s.Next()
	s.Next()
	assert.Len(t, m.MissingThumbs(), 3)
}

func TestMove_WithinWindow(t *testing.T) {
	m, _ := newGrid(t, 23, imgrender.ModeNone)

	assert.Nil(t, m.Move(1, 0))
	assert.Equal(t, 1, m.Cursor())
	assert.True(t, m.Hovering())

	assert.Nil(t, m.Move(0, 1))
	assert.Equal(t, 6, m.Cursor(), "down one row of five")

	assert.Nil(t, m.Move(0, 1))
	assert.Equal(t, 6, m.Cursor(), "no row below")
}

func TestMove_TurnsPagesAtEdges(t *testing.T) {
	m, s := newGrid(t, 23, imgrender.ModeNone)
	for range 9 {
		m.Move(1, 0)
	}
	require.Equal(t, 9, m.Cursor())

	a := actionOf(t, m.Move(1, 0))
	assert.Equal(t, PageChanged{Offset: 10}, a)
	assert.Equal(t, 0, m.Cursor())
	assert.Equal(t, 10, s.Offset)

	a = actionOf(t, m.Move(-1, 0))
	assert.Equal(t, PageChanged{Offset: 0}, a)
	assert.Equal(t, 9, m.Cursor())
}

func TestMove_NoTurnPastLastPage(t *testing.T) {
	m, s := newGrid(t, 23, imgrender.ModeNone)
	s.Next()
	s.Next()
	m.ClampCursor()
	m.Move(1, 0)
	m.Move(1, 0)
	require.Equal(t, 2, m.Cursor())

	assert.Nil(t, m.Move(1, 0))
	assert.Equal(t, 20, s.Offset)
	assert.Equal(t, 2, m.Cursor())
}

func TestMove_PrevAtFirstTileOfFirstPage(t *testing.T) {
	m, s := newGrid(t, 23, imgrender.ModeNone)
	assert.Nil(t, m.Move(-1, 0))
	assert.Equal(t, 0, s.Offset)
	assert.Equal(t, 0, m.Cursor())
}

func TestActivate(t *testing.T) {
	m, _ := newGrid(t, 23, imgrender.ModeNone)
	m.Move(1, 0)

	a := actionOf(t, m.Activate())
	act, ok := a.(Activate)
	require.True(t, ok)
	assert.Equal(t, 1, act.Index)
	assert.Equal(t, "https://img/1/full", act.Image.FullURL)

	empty, _ := newGrid(t, 0, imgrender.ModeNone)
	assert.Nil(t, empty.Activate())
}

func TestUpdate_MouseHoverAndClick(t *testing.T) {
	m, _ := newGrid(t, 23, imgrender.ModeNone)

	m, _ = m.Update(tea.MouseMsg{X: 45, Y: 2, Action: tea.MouseActionMotion})
	assert.True(t, m.Hovering())
	assert.Equal(t, 2, m.Cursor())
	assert.False(t, m.dimmed(2))
	assert.True(t, m.dimmed(0))

	m, _ = m.Update(tea.MouseMsg{X: 45, Y: 30, Action: tea.MouseActionMotion})
	assert.False(t, m.Hovering())
	assert.False(t, m.dimmed(0))

	m, cmd := m.Update(tea.MouseMsg{X: 65, Y: 14, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	a := actionOf(t, cmd)
	assert.Equal(t, 8, a.(Activate).Index)
	assert.Equal(t, 8, m.Cursor())
}

func TestUpdate_PointerMotionWithoutButtonDims(t *testing.T) {
	m, _ := newGrid(t, 23, imgrender.ModeNone)

	// All-motion mouse reporting sends plain pointer moves with no button.
	m, _ = m.Update(tea.MouseMsg{X: 65, Y: 14, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	assert.True(t, m.Hovering())
	assert.Equal(t, 8, m.Cursor())
	assert.True(t, m.dimmed(0))
	assert.False(t, m.dimmed(8))
}

func TestClampCursor(t *testing.T) {
	m, s := newGrid(t, 23, imgrender.ModeNone)
	for range 8 {
		m.Move(1, 0)
	}
	s.Replace("cat", s.Images[:3])
	m.ClampCursor()
	assert.Equal(t, 2, m.Cursor())
}

// recordingProtocol is a minimal graphics protocol for placement tests.
type recordingProtocol struct{}

func (recordingProtocol) Name() string { return "rec" }
func (recordingProtocol) Prepare(image.Image, uint32) (string, error) {
	return "<tx>", nil
}

func (recordingProtocol) Place(id uint32, slot, row, col, _, _ int) string {
	return fmt.Sprintf("<p%d@%d,%d>", slot, row, col)
}
func (recordingProtocol) Delete(uint32) string          { return "" }
func (recordingProtocol) ClearPlacements() string       { return "<clear>" }
func (recordingProtocol) CellSize() (width, height int) { return 8, 16 }

func TestPrepareAndPlacements_Graphics(t *testing.T) {
	s := gallery.New(10, 55)
	s.Replace("dog", []gallery.Image{
		{ID: "a", ThumbURL: "u/a"},
		{ID: "b", ThumbURL: "u/b"},
	})
	m := New(s, imgrender.NewWithProtocol(imgrender.ModeKitty, recordingProtocol{}))
	m.SetSize(100, 25)
	m.SetThumb("u/a", Thumb{Image: image.NewRGBA(image.Rect(0, 0, 50, 50))})

	assert.Equal(t, "<tx>", m.Prepare())
	assert.Empty(t, m.Prepare(), "already transmitted")

	placed := m.Placements(4, 1)
	assert.True(t, strings.HasPrefix(placed, "<clear>"))
	assert.Contains(t, placed, "<p0@")
	assert.NotContains(t, placed, "<p1@", "tile b has no thumbnail yet")
}
