package imgrender

import (
	"fmt"
	"image"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/nfnt/resize"
)

var nextImageID uint32

func getNextImageID() uint32 {
	return atomic.AddUint32(&nextImageID, 1)
}

// prepared is an image already encoded for a graphics protocol.
type prepared struct {
	id   uint32
	cols int // actual size in cells after aspect-preserving resize
	rows int
}

// Renderer draws keyed images into cell boxes, caching the resized and
// encoded variants. Keys are usually image URLs.
type Renderer struct {
	mode  Mode
	proto Protocol

	mu       sync.Mutex
	prepared map[string]prepared
	art      map[string]string
}

// New creates a renderer for the given mode.
func New(mode Mode) *Renderer {
	r := &Renderer{
		mode:     mode,
		prepared: make(map[string]prepared),
		art:      make(map[string]string),
	}
	switch mode {
	case ModeKitty:
		r.proto = Kitty{}
	case ModeSixel:
		r.proto = NewSixel()
	case ModeNone, ModeHalfBlock:
	}
	return r
}

// NewWithProtocol creates a graphics renderer around an explicit protocol.
func NewWithProtocol(mode Mode, proto Protocol) *Renderer {
	r := New(ModeNone)
	r.mode = mode
	r.proto = proto
	return r
}

// Mode returns the drawing mode.
func (r *Renderer) Mode() Mode { return r.mode }

// Graphics reports whether images are drawn with escape-sequence placements
// on top of the text layout rather than inline.
func (r *Renderer) Graphics() bool { return r.proto != nil }

// Enabled reports whether images are drawn at all.
func (r *Renderer) Enabled() bool { return r.mode != ModeNone }

func cacheKey(key string, width, height int, dim bool) string {
	return fmt.Sprintf("%s|%dx%d|%t", key, width, height, dim)
}

// Prepare encodes img for a width x height cell box and returns the one-time
// terminal command to emit before placing it. Already prepared variants
// return an empty command.
func (r *Renderer) Prepare(key string, img image.Image, width, height int, dim bool) (string, error) {
	if r.proto == nil || img == nil || width <= 0 || height <= 0 {
		return "", nil
	}
	k := cacheKey(key, width, height, dim)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.prepared[k]; ok {
		return "", nil
	}

	cellW, cellH := r.proto.CellSize()
	resized := resize.Thumbnail(uint(width*cellW), uint(height*cellH), img, resize.Lanczos3) //nolint:gosec // cell boxes are small
	if dim {
		resized = Dim(resized)
	}

	id := getNextImageID()
	cmd, err := r.proto.Prepare(resized, id)
	if err != nil {
		return "", err
	}

	b := resized.Bounds()
	r.prepared[k] = prepared{
		id:   id,
		cols: min(width, max(1, (b.Dx()+cellW-1)/cellW)),
		rows: min(height, max(1, (b.Dy()+cellH-1)/cellH)),
	}
	return cmd, nil
}

// IsPrepared reports whether Prepare already ran for this variant.
func (r *Renderer) IsPrepared(key string, width, height int, dim bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.prepared[cacheKey(key, width, height, dim)]
	return ok
}

// Place returns the command drawing a prepared image centred in the
// width x height box whose top-left cell is (row, col), 1-based.
// Returns empty string if the variant is not prepared.
func (r *Renderer) Place(key string, width, height int, dim bool, slot, row, col int) string {
	if r.proto == nil {
		return ""
	}
	r.mu.Lock()
	p, ok := r.prepared[cacheKey(key, width, height, dim)]
	r.mu.Unlock()
	if !ok {
		return ""
	}
	row += (height - p.rows) / 2
	col += (width - p.cols) / 2
	return r.proto.Place(p.id, slot, row, col, p.cols, p.rows)
}

// ClearPlacements returns the command removing all visible placements.
func (r *Renderer) ClearPlacements() string {
	if r.proto == nil {
		return ""
	}
	return r.proto.ClearPlacements()
}

// Cells returns img as half-block art filling a width x height box.
func (r *Renderer) Cells(key string, img image.Image, width, height int, dim bool) string {
	if img == nil || width <= 0 || height <= 0 {
		return Blank(width, height)
	}
	k := cacheKey(key, width, height, dim)

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.art[k]; ok {
		return s
	}
	resized := resize.Thumbnail(uint(width), uint(height*2), img, resize.Lanczos3) //nolint:gosec // cell boxes are small
	if dim {
		resized = Dim(resized)
	}
	s := HalfBlock(resized, width, height)
	r.art[k] = s
	return s
}

// Reset drops every cached variant and returns the command freeing the
// transmitted images.
func (r *Renderer) Reset() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sb strings.Builder
	if r.proto != nil {
		for _, p := range r.prepared {
			sb.WriteString(r.proto.Delete(p.id))
		}
	}
	r.prepared = make(map[string]prepared)
	r.art = make(map[string]string)
	return sb.String()
}

// Fit returns the size in cells img occupies when drawn into a
// width x height box, following the same aspect-preserving resize as
// Prepare and Cells.
func (r *Renderer) Fit(img image.Image, width, height int) (cols, rows int) {
	if img == nil || width <= 0 || height <= 0 {
		return 0, 0
	}
	cellW, cellH := 1, 2
	if r.proto != nil {
		cellW, cellH = r.proto.CellSize()
	}
	b := img.Bounds()
	pw, ph := fitPixels(b.Dx(), b.Dy(), width*cellW, height*cellH)
	return min(width, max(1, (pw+cellW-1)/cellW)), min(height, max(1, (ph+cellH-1)/cellH))
}

// fitPixels mirrors resize.Thumbnail's size computation.
func fitPixels(w, h, maxW, maxH int) (int, int) {
	if w <= maxW && h <= maxH {
		return w, h
	}
	nw, nh := w, h
	if w > maxW {
		nh = max(h*maxW/w, 1)
		nw = maxW
	}
	if nh > maxH {
		nw = max(nw*maxH/nh, 1)
		nh = maxH
	}
	return nw, nh
}

// Blank returns a block of spaces, used in the layout where a graphics
// placement will be drawn.
func Blank(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
