package imgrender

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"
)

// Kitty graphics protocol escape sequences
const (
	escStart = "\x1b_G"
	escEnd   = "\x1b\\"

	// Max base64 bytes per escape sequence chunk.
	chunkSize = 4096
)

// Kitty implements Protocol using the Kitty graphics protocol.
type Kitty struct{}

func (Kitty) Name() string { return "kitty" }

func (Kitty) Prepare(img image.Image, id uint32) (string, error) {
	return TransmitImage(img, id)
}

func (Kitty) Place(id uint32, slot, row, col, width, height int) string {
	return PlaceImage(id, uint32(slot+1), row, col, width, height) //nolint:gosec // slot is a small tile index
}

func (Kitty) Delete(id uint32) string { return DeleteImage(id) }

func (Kitty) ClearPlacements() string {
	// d=a: all visible placements, lowercase keeps the image data.
	return escStart + "a=d,d=a,q=2;" + escEnd
}

func (Kitty) CellSize() (width, height int) { return 8, 16 }

// TransmitImage encodes img as PNG and returns the transmit-only (a=t)
// command storing it under id.
func TransmitImage(img image.Image, id uint32) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	return TransmitPNG(buf.Bytes(), id), nil
}

// TransmitPNG returns the chunked transmit command for pre-encoded PNG data.
// f=100 is PNG, q=2 suppresses terminal responses, m=1 marks more chunks.
func TransmitPNG(pngData []byte, id uint32) string {
	encoded := base64.StdEncoding.EncodeToString(pngData)

	var sb strings.Builder
	for i := 0; i < len(encoded); i += chunkSize {
		end := min(i+chunkSize, len(encoded))
		more := 0
		if end < len(encoded) {
			more = 1
		}

		sb.WriteString(escStart)
		if i == 0 {
			fmt.Fprintf(&sb, "a=t,f=100,i=%d,q=2,m=%d;", id, more)
		} else {
			fmt.Fprintf(&sb, "m=%d;", more)
		}
		sb.WriteString(encoded[i:end])
		sb.WriteString(escEnd)
	}
	return sb.String()
}

// PlaceImage returns the escape sequence that displays a transmitted image.
// row and col are 1-based; width and height are in cells. Placing again with
// the same image and placement id moves the existing placement.
func PlaceImage(id, placement uint32, row, col, width, height int) string {
	var sb strings.Builder
	// Save cursor, move, place without moving the cursor (C=1), restore.
	fmt.Fprintf(&sb, "\x1b[s\x1b[%d;%dH", row, col)
	fmt.Fprintf(&sb, "%sa=p,i=%d,p=%d,c=%d,r=%d,C=1,q=2;%s", escStart, id, placement, width, height, escEnd)
	sb.WriteString("\x1b[u")
	return sb.String()
}

// DeleteImage returns the escape sequence that frees an image and its placements.
func DeleteImage(id uint32) string {
	return fmt.Sprintf("%sa=d,d=I,i=%d,q=2;%s", escStart, id, escEnd)
}
