package gridview

// Geometry is the tile layout for a given area.
type Geometry struct {
	Cols, Rows   int
	TileW, TileH int // cell size of one tile, gap and caption included
}

const (
	// MinTileWidth is the narrowest tile the grid will lay out.
	MinTileWidth = 20
	// minTileHeight leaves room for a few image rows and the caption.
	minTileHeight = 4

	gapCols     = 1
	captionRows = 1
)

// Layout fits slots tiles into a width x height area, preferring as many
// columns as the width allows.
func Layout(width, height, slots int) Geometry {
	if width <= 0 || height <= 0 || slots <= 0 {
		return Geometry{}
	}
	cols := min(max(width/MinTileWidth, 1), slots)
	rows := (slots + cols - 1) / cols
	return Geometry{
		Cols:  cols,
		Rows:  rows,
		TileW: width / cols,
		TileH: max(height/rows, minTileHeight),
	}
}

// ImageSize returns the cell box available for the image inside a tile.
func (g Geometry) ImageSize() (width, height int) {
	return max(g.TileW-gapCols, 0), max(g.TileH-captionRows, 0)
}

// TileOrigin returns the top-left cell of tile i relative to the grid.
func (g Geometry) TileOrigin(i int) (x, y int) {
	if g.Cols == 0 {
		return 0, 0
	}
	return (i % g.Cols) * g.TileW, (i / g.Cols) * g.TileH
}

// TileAt returns the tile index at (x, y) relative to the grid, or -1.
// Gap columns belong to no tile.
func (g Geometry) TileAt(x, y, count int) int {
	if g.Cols == 0 || x < 0 || y < 0 {
		return -1
	}
	col, row := x/g.TileW, y/g.TileH
	if col >= g.Cols || x%g.TileW >= g.TileW-gapCols {
		return -1
	}
	i := row*g.Cols + col
	if i >= count {
		return -1
	}
	return i
}
