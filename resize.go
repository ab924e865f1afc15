package imgpoison

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// defaultFilter is bicubic resampling, a quality filter suitable for both
// downscaling and upscaling.
var defaultFilter = imaging.CatmullRom

func filterOrDefault(filter *imaging.ResampleFilter) imaging.ResampleFilter {
	if filter == nil {
		return defaultFilter
	}
	return *filter
}

// resize returns a new NRGBA image of exactly width x height.
// Both dimensions are raised to at least 1 pixel.
func resize(img image.Image, width, height int, filter imaging.ResampleFilter) *image.NRGBA {
	return imaging.Resize(img, max(width, 1), max(height, 1), filter)
}

// scale resizes img uniformly by factor, rounding each dimension.
func scale(img image.Image, factor float64, filter imaging.ResampleFilter) *image.NRGBA {
	size := img.Bounds().Size()
	return resize(
		img,
		int(math.Round(float64(size.X)*factor)),
		int(math.Round(float64(size.Y)*factor)),
		filter,
	)
}

// fitWidth resizes img to width preserving its aspect ratio.
func fitWidth(img image.Image, width int, filter imaging.ResampleFilter) *image.NRGBA {
	if img.Bounds().Dx() == width {
		return imaging.Clone(img)
	}
	return imaging.Resize(img, max(width, 1), 0, filter)
}

// fitHeight resizes img to height preserving its aspect ratio.
func fitHeight(img image.Image, height int, filter imaging.ResampleFilter) *image.NRGBA {
	if img.Bounds().Dy() == height {
		return imaging.Clone(img)
	}
	return imaging.Resize(img, 0, max(height, 1), filter)
}

func area(r image.Rectangle) int {
	return r.Dx() * r.Dy()
}

// reconcileArea brings the areas of a and b within 2x of each other by
// uniformly rescaling the smaller one. At most one image is rescaled.
func reconcileArea(a, b image.Image, filter imaging.ResampleFilter) (image.Image, image.Image) {
	areaA, areaB := area(a.Bounds()), area(b.Bounds())
	switch {
	case areaA == 0 || areaB == 0:
	case areaA > 2*areaB:
		b = scale(b, math.Sqrt(float64(areaA)/float64(areaB)), filter)
	case areaB > 2*areaA:
		a = scale(a, math.Sqrt(float64(areaB)/float64(areaA)), filter)
	}
	return a, b
}
