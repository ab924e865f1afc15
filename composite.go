package imgpoison

import (
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// scaleAlpha returns a copy of img with the alpha of every pixel inside r
// multiplied by factor and truncated. Pixels outside r are unchanged.
func scaleAlpha(img image.Image, r image.Rectangle, factor float64) *image.NRGBA {
	dst := imaging.Clone(img)
	r = r.Intersect(dst.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := dst.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x, i = x+1, i+4 {
			dst.Pix[i+3] = truncate(float64(dst.Pix[i+3]) * factor)
		}
	}
	return dst
}

// truncate converts x to uint8 dropping the fraction, saturating at the
// channel bounds.
func truncate(x float64) uint8 {
	switch {
	case x <= 0:
		return 0
	case x >= 255:
		return 255
	}
	return uint8(x)
}

// over composites src on top of backdrop with the Porter-Duff over operator
// and returns the result as a new NRGBA image the size of backdrop.
func over(backdrop, src image.Image) *image.NRGBA {
	dst := imaging.Clone(backdrop)
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Over)
	return dst
}

// toRGB drops the alpha channel of img, keeping its non-premultiplied color.
// The result is fully opaque and located at the origin.
func toRGB(img image.Image) *image.RGBA {
	src := imaging.Clone(img)
	dst := image.NewRGBA(src.Rect)
	for i := 0; i < len(src.Pix); i += 4 {
		s := src.Pix[i : i+4 : i+4]
		d := dst.Pix[i : i+4 : i+4]
		d[0], d[1], d[2], d[3] = s[0], s[1], s[2], 0xff
	}
	return dst
}
