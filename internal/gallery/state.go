// Package gallery holds the search result list and the visible window over it.
package gallery

// Image is a normalized search result.
type Image struct {
	ID          string
	ThumbURL    string // shown in the grid
	FullURL     string // shown in the viewer
	Description string
	Author      string
	Width       int    // original pixel width
	Height      int    // original pixel height
	Color       string // dominant color, "#rrggbb" or empty
}

// State is the shared search state: the current query, its results and the
// window offset. One instance is owned by the app and passed by pointer to the
// components that read or mutate it.
//
// Invariants: 0 <= Offset, Offset < max(1, len(Images)), len(Images) <= Cap.
type State struct {
	Query  string
	Images []Image
	Offset int

	windowSize int
	cap        int
}

// New creates an empty state with a fixed window size and result cap.
// Non-positive values are treated as 1.
func New(windowSize, resultCap int) *State {
	return &State{
		windowSize: max(windowSize, 1),
		cap:        max(resultCap, 1),
	}
}

// WindowSize returns the number of results shown per page.
func (s *State) WindowSize() int { return s.windowSize }

// Cap returns the maximum number of retained results.
func (s *State) Cap() int { return s.cap }

// Len returns the number of results.
func (s *State) Len() int { return len(s.Images) }

// Replace installs the results of a new search and resets the window.
// Results beyond the cap are dropped.
func (s *State) Replace(query string, images []Image) {
	if len(images) > s.cap {
		images = images[:s.cap]
	}
	s.Query = query
	s.Images = images
	s.Offset = 0
}

// Clear drops all results.
func (s *State) Clear() {
	s.Replace("", nil)
}

// Next moves the window forward by one page if the new offset is still inside
// the result list. Returns false when nothing changed.
func (s *State) Next() bool {
	if s.Offset+s.windowSize >= len(s.Images) {
		return false
	}
	s.Offset += s.windowSize
	return true
}

// Prev moves the window back by one page, floored at zero.
// Returns false when already at the first page.
func (s *State) Prev() bool {
	if s.Offset == 0 {
		return false
	}
	s.Offset = max(s.Offset-s.windowSize, 0)
	return true
}

// CanPrev reports whether the previous control is enabled.
func (s *State) CanPrev() bool {
	return s.Offset != 0
}

// CanNext reports whether the next control is enabled.
func (s *State) CanNext() bool {
	return s.Offset+s.windowSize < len(s.Images)
}

// Window returns the visible slice of results.
// Its length is min(WindowSize, Len()-Offset).
func (s *State) Window() []Image {
	if s.Offset >= len(s.Images) {
		return nil
	}
	end := min(s.Offset+s.windowSize, len(s.Images))
	return s.Images[s.Offset:end]
}

// At returns the image at window position i.
func (s *State) At(i int) (Image, bool) {
	w := s.Window()
	if i < 0 || i >= len(w) {
		return Image{}, false
	}
	return w[i], true
}

// Shown returns the index one past the last visible result, i.e. the
// "current" counter: min(Len(), Offset+WindowSize).
func (s *State) Shown() int {
	return min(len(s.Images), s.Offset+s.windowSize)
}

// Page returns the 1-based page number of the window and the page count.
// An empty list reports page 0 of 0.
func (s *State) Page() (current, total int) {
	if len(s.Images) == 0 {
		return 0, 0
	}
	total = (len(s.Images) + s.windowSize - 1) / s.windowSize
	return s.Offset/s.windowSize + 1, total
}
