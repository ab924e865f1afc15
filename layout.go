package imgpoison

import (
	"fmt"
	"image"
)

// Orientation is the edge of the first image along which the second image
// is joined.
type Orientation int

const (
	// Top stacks the first image above the second.
	Top Orientation = iota
	// Right places the second image right of the first.
	Right
	// Bottom stacks the second image above the first.
	Bottom
	// Left places the second image left of the first.
	Left

	orientations = 4
)

func (o Orientation) String() string {
	switch o {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// Vertical reports whether images are stacked along the y axis.
func (o Orientation) Vertical() bool {
	return o == Top || o == Bottom
}

// randOrientation draws one of the four orientations uniformly.
func randOrientation(src Source) Orientation {
	return Orientation(src.IntN(orientations))
}

// layout returns the canvas bounds and the destination rectangles of two
// images of size a and b joined with orientation o. Sizes must already share
// the width (vertical) or the height (horizontal).
func layout(a, b image.Point, o Orientation) (canvas, ra, rb image.Rectangle) {
	first, second := a, b
	if o == Bottom || o == Left {
		first, second = b, a
	}
	var r0, r1 image.Rectangle
	if o.Vertical() {
		r0 = image.Rect(0, 0, first.X, first.Y)
		r1 = image.Rect(0, first.Y, second.X, first.Y+second.Y)
	} else {
		r0 = image.Rect(0, 0, first.X, first.Y)
		r1 = image.Rect(first.X, 0, first.X+second.X, second.Y)
	}
	canvas = r0.Union(r1)
	if o == Bottom || o == Left {
		return canvas, r1, r0
	}
	return canvas, r0, r1
}
