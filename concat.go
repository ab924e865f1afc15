package imgpoison

import (
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Concatenate joins a and b along a randomly drawn Orientation and returns an
// opaque image.
//
// When one image's area exceeds the other's by more than 2x, the smaller one
// is first scaled up uniformly. Then both images are resized to the smaller
// common width (Top, Bottom) or height (Right, Left), each keeping its own
// aspect ratio. A nil rnd means DefaultSource. Neither image may be nil.
func Concatenate(a, b image.Image, rnd Source) *image.RGBA {
	return concatenate(a, b, sourceOrDefault(rnd), defaultFilter)
}

func concatenate(a, b image.Image, rnd Source, filter imaging.ResampleFilter) *image.RGBA {
	a, b = reconcileArea(a, b, filter)
	return join(a, b, randOrientation(rnd), filter)
}

// join aligns a and b for orientation o and draws them on a new canvas.
func join(a, b image.Image, o Orientation, filter imaging.ResampleFilter) *image.RGBA {
	var ra, rb *image.NRGBA
	if o.Vertical() {
		w := min(a.Bounds().Dx(), b.Bounds().Dx())
		ra, rb = fitWidth(a, w, filter), fitWidth(b, w, filter)
	} else {
		h := min(a.Bounds().Dy(), b.Bounds().Dy())
		ra, rb = fitHeight(a, h, filter), fitHeight(b, h, filter)
	}

	canvas, da, db := layout(ra.Bounds().Size(), rb.Bounds().Size(), o)
	dst := image.NewRGBA(canvas)
	draw.Draw(dst, dst.Bounds(), image.Black, image.Point{}, draw.Src)
	draw.Draw(dst, da, toRGB(ra), image.Point{}, draw.Src)
	draw.Draw(dst, db, toRGB(rb), image.Point{}, draw.Src)
	return dst
}
