package imgpoison

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Embed adds the watermark mark to base according to option and returns an
// opaque image of the same size as base. In patch mode with ReportLocation
// set, the top-left point where the watermark was anchored is also returned.
//
// Embed fails with ErrInvalidMode before touching any pixel if option.Mode is
// unknown, and with ErrInvalidImageInput if base or mark is nil.
func Embed(base, mark image.Image, option *EmbedOption) (*image.RGBA, *image.Point, error) {
	if option == nil {
		option = NewEmbedOption()
	}
	if err := option.checkMode(); err != nil {
		return nil, nil, err
	}
	if base == nil {
		return nil, nil, fmt.Errorf("%w: nil base image", ErrInvalidImageInput)
	}
	if mark == nil {
		return nil, nil, fmt.Errorf("%w: nil watermark", ErrInvalidImageInput)
	}

	switch option.Mode {
	case BlendMode:
		return option.blend(base, mark), nil, nil
	default:
		img, loc := option.patch(base, mark)
		if !option.ReportLocation {
			return img, nil, nil
		}
		return img, &loc, nil
	}
}

func (o *EmbedOption) blend(base, mark image.Image) *image.RGBA {
	size := base.Bounds().Size()
	wm := resize(mark, size.X, size.Y, o.filter())
	wm = scaleAlpha(wm, wm.Bounds(), o.Alpha)
	return toRGB(over(base, wm))
}

func (o *EmbedOption) patch(base, mark image.Image) (*image.RGBA, image.Point) {
	b := base.Bounds().Size()
	m := mark.Bounds().Size()
	w := o.width()
	h := 0
	if m.X > 0 {
		h = m.Y * w / m.X
	}
	wm := resize(mark, w, h, o.filter())
	size := wm.Bounds().Size()

	loc := o.location(b, size)
	overlay := imaging.Paste(imaging.New(b.X, b.Y, color.Transparent), wm, loc)
	faded := scaleAlpha(base, image.Rectangle{Min: loc, Max: loc.Add(size)}, o.Alpha)
	return toRGB(over(overlay, faded)), loc
}

// location draws the patch anchor for a patch of size inside base.
func (o *EmbedOption) location(base, patch image.Point) image.Point {
	minX, maxX := placementRange(base.X, patch.X, o.LocationMin, o.LocationMax)
	minY, maxY := placementRange(base.Y, patch.Y, o.LocationMin, o.LocationMax)
	src := o.source()
	x := randRange(src, minX, maxX)
	y := randRange(src, minY, maxY)
	return image.Pt(x, y)
}

// placementRange returns the inclusive range of anchor coordinates along an
// axis of length dim for a patch of length patch. When the range is empty it
// collapses to its lower bound.
func placementRange(dim, patch int, locMin, locMax float64) (min, max int) {
	min = int(float64(dim) * locMin)
	max = int(float64(dim)*locMax - float64(patch))
	if max < min {
		max = min
	}
	return
}
