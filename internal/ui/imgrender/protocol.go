// Package imgrender draws images in the terminal, either through a graphics
// protocol (Kitty, Sixel) or as half-block colour art.
package imgrender

import "image"

// Protocol abstracts a terminal graphics protocol.
type Protocol interface {
	Name() string

	// Prepare encodes the image and returns any one-time terminal command.
	// Kitty: transmits to terminal memory, returns escape sequences.
	// Sixel: encodes and caches internally, returns empty string.
	Prepare(img image.Image, id uint32) (string, error)

	// Place returns the escape sequence that displays image id with its top-left
	// corner at (row, col), 1-based. slot distinguishes simultaneous placements.
	Place(id uint32, slot, row, col, width, height int) string

	// Delete returns the escape sequence to remove the image.
	Delete(id uint32) string

	// ClearPlacements returns the escape sequence that removes every visible
	// placement while keeping transmitted image data.
	ClearPlacements() string

	// CellSize returns the pixel size of one terminal cell.
	CellSize() (width, height int)
}

// Mode selects how images are drawn.
type Mode int

const (
	ModeNone Mode = iota
	ModeHalfBlock
	ModeKitty
	ModeSixel
)

func (m Mode) String() string {
	switch m {
	case ModeHalfBlock:
		return "halfblock"
	case ModeKitty:
		return "kitty"
	case ModeSixel:
		return "sixel"
	default:
		return "none"
	}
}
