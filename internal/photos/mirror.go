package photos

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/gift"
)

// Mirror returns a reflected copy of img. MirrorNone still returns a copy, so
// the caller always owns the result independently of the source.
func Mirror(img image.Image, mirror MirrorType) image.Image {
	var filters []gift.Filter
	switch mirror {
	case MirrorHorizontal:
		filters = append(filters, gift.FlipHorizontal())
	case MirrorVertical:
		filters = append(filters, gift.FlipVertical())
	}

	g := gift.New(filters...)
	g.SetParallelization(false)

	dst := newDestination(img.ColorModel(), g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}

// newDestination allocates an image that can hold every value of model
// without losing precision: 16 bits per channel for 16-bit sources, 8 bits
// otherwise.
func newDestination(model color.Model, bounds image.Rectangle) draw.Image {
	switch model {
	case color.RGBA64Model:
		return image.NewRGBA64(bounds)
	case color.NRGBA64Model, color.Gray16Model:
		return image.NewNRGBA64(bounds)
	default:
		return image.NewNRGBA(bounds)
	}
}
