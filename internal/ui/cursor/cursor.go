// Package cursor tracks the selected row and scroll window of a list
// drawn in a fixed number of rows.
package cursor

// Cursor is a selection plus the first visible row. List length and
// viewport height are passed per call since both change with the data
// and the terminal.
type Cursor struct {
	pos    int
	top    int
	margin int // rows kept visible above and below the selection
}

// New returns a cursor on the first row.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the selected index.
func (c Cursor) Pos() int {
	return c.pos
}

// Reset selects the first row and scrolls to the top.
func (c *Cursor) Reset() {
	c.pos, c.top = 0, 0
}

// Move shifts the selection by delta rows, stopping at the list ends.
func (c *Cursor) Move(delta, n, height int) {
	if n == 0 {
		return
	}
	c.pos = min(max(c.pos+delta, 0), n-1)
	c.scroll(n, height)
}

// Clamp pulls the selection back inside a list that shrank to n rows.
func (c *Cursor) Clamp(n int) {
	if n == 0 {
		c.Reset()
		return
	}
	c.pos = min(c.pos, n-1)
}

// Window returns the visible rows [start, end).
func (c Cursor) Window(n, height int) (start, end int) {
	if n == 0 || height <= 0 {
		return 0, 0
	}
	start = min(c.top, max(n-height, 0))
	return start, min(start+height, n)
}

// scroll moves the window the least needed to keep margin rows around
// the selection.
func (c *Cursor) scroll(n, height int) {
	if height <= 0 {
		return
	}
	m := min(c.margin, (height-1)/2)
	c.top = min(c.top, c.pos-m)
	c.top = max(c.top, c.pos+m-height+1)
	c.top = max(min(c.top, n-height), 0)
}

// HandleKey applies list navigation keys and reports whether key was one.
func (c *Cursor) HandleKey(key string, n, height int) bool {
	switch key {
	case "j", "down":
		c.Move(1, n, height)
	case "k", "up":
		c.Move(-1, n, height)
	case "ctrl+d":
		c.Move(max(height/2, 1), n, height)
	case "ctrl+u":
		c.Move(-max(height/2, 1), n, height)
	case "pgdown":
		c.Move(max(height, 1), n, height)
	case "pgup":
		c.Move(-max(height, 1), n, height)
	case "g", "home":
		c.Move(-c.pos, n, height)
	case "G", "end":
		c.Move(n, n, height)
	default:
		return false
	}
	return true
}
