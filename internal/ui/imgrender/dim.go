package imgrender

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// dimTarget is the colour dimmed pixels are pulled towards.
var dimTarget = colorful.Color{R: 0.12, G: 0.12, B: 0.12}

// DimAmount is how far Dim moves each pixel towards dimTarget, in [0, 1].
const DimAmount = 0.6

// Dim returns a desaturated, darkened copy of img.
func Dim(img image.Image) image.Image {
	b := img.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				continue
			}
			out.Set(x, y, DimColor(c))
		}
	}
	return out
}

// DimColor applies the dim effect to a single colour.
func DimColor(c colorful.Color) colorful.Color {
	h, _, l := c.Hsl()
	gray := colorful.Hsl(h, 0.05, l)
	return gray.BlendRgb(dimTarget, DimAmount).Clamped()
}
