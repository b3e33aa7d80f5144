package imgrender

import (
	"fmt"
	"image"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// HalfBlock renders img as text using the upper half block: each cell shows
// two vertically stacked pixels, the top one as foreground and the bottom one
// as background. img should already be sized to width x 2*height pixels or
// less; each returned line is exactly width cells wide.
func HalfBlock(img image.Image, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	b := img.Bounds()
	imgW, imgH := b.Dx(), b.Dy()
	cols := min(imgW, width)
	rows := min((imgH+1)/2, height)

	// Centre horizontally and vertically inside the box.
	padLeft := (width - cols) / 2
	padRight := width - cols - padLeft
	padTop := (height - rows) / 2

	blank := strings.Repeat(" ", width)
	lines := make([]string, 0, height)
	for range padTop {
		lines = append(lines, blank)
	}

	var sb strings.Builder
	for r := range rows {
		sb.Reset()
		sb.WriteString(strings.Repeat(" ", padLeft))
		for c := range cols {
			top := pixel(img, b.Min.X+c, b.Min.Y+2*r)
			bottom := top
			if 2*r+1 < imgH {
				bottom = pixel(img, b.Min.X+c, b.Min.Y+2*r+1)
			}
			tr, tg, tb := top.RGB255()
			br, bg, bb := bottom.RGB255()
			fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀", tr, tg, tb, br, bg, bb)
		}
		sb.WriteString("\x1b[0m")
		sb.WriteString(strings.Repeat(" ", padRight))
		lines = append(lines, sb.String())
	}

	for len(lines) < height {
		lines = append(lines, blank)
	}
	return strings.Join(lines, "\n")
}

func pixel(img image.Image, x, y int) colorful.Color {
	c, ok := colorful.MakeColor(img.At(x, y))
	if !ok {
		// Fully transparent.
		return colorful.Color{}
	}
	return c
}
