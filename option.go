package imgpoison

import (
	"fmt"

	"github.com/disintegration/imaging"
)

const (
	defaultWidth       = 50
	defaultLocationMin = 0.45
	defaultLocationMax = 0.55
	defaultAlpha       = 0.2
)

// EmbedOption is watermark embedding option
type EmbedOption struct {
	Mode Mode
	// Width is the watermark width in pixels, used in patch mode only.
	// The height follows the watermark's aspect ratio.
	Width int
	// LocationMin and LocationMax are ratios of the base image size bounding
	// the random patch position.
	LocationMin float64
	LocationMax float64
	// Alpha scales the watermark opacity in blend mode and the base image
	// opacity under the patch in patch mode.
	Alpha float64
	// ReportLocation makes patch mode return the anchor point.
	ReportLocation bool
	// Filter is the resampling filter. Nil means imaging.CatmullRom.
	Filter *imaging.ResampleFilter
	// Rand is the random source. Nil means DefaultSource.
	Rand Source
}

// NewEmbedOption creates a new option with default setting.
func NewEmbedOption() *EmbedOption {
	return &EmbedOption{
		Mode:        PatchMode,
		Width:       defaultWidth,
		LocationMin: defaultLocationMin,
		LocationMax: defaultLocationMax,
		Alpha:       defaultAlpha,
	}
}

// SetMode sets the value for the Mode field.
func (o *EmbedOption) SetMode(mode Mode) *EmbedOption {
	o.Mode = mode
	return o
}

// SetWidth sets the value for the Width field. Non-positive width means the
// default width.
func (o *EmbedOption) SetWidth(width int) *EmbedOption {
	if width <= 0 {
		o.Width = defaultWidth
	} else {
		o.Width = width
	}
	return o
}

// SetLocation sets the placement ratio range.
func (o *EmbedOption) SetLocation(min, max float64) *EmbedOption {
	o.LocationMin, o.LocationMax = min, max
	return o
}

// SetAlpha sets the value for the Alpha field.
func (o *EmbedOption) SetAlpha(alpha float64) *EmbedOption {
	o.Alpha = alpha
	return o
}

// SetReportLocation sets the value for the ReportLocation field.
func (o *EmbedOption) SetReportLocation(report bool) *EmbedOption {
	o.ReportLocation = report
	return o
}

// SetFilter sets the resampling filter.
func (o *EmbedOption) SetFilter(filter imaging.ResampleFilter) *EmbedOption {
	o.Filter = &filter
	return o
}

// SetRand sets the random source.
func (o *EmbedOption) SetRand(src Source) *EmbedOption {
	o.Rand = src
	return o
}

func (o *EmbedOption) width() int {
	if o.Width <= 0 {
		return defaultWidth
	}
	return o.Width
}

func (o *EmbedOption) filter() imaging.ResampleFilter {
	return filterOrDefault(o.Filter)
}

func (o *EmbedOption) source() Source {
	return sourceOrDefault(o.Rand)
}

func (o *EmbedOption) checkMode() error {
	if !o.Mode.valid() {
		return fmt.Errorf("%w: %s, must be 'patch' or 'blend'", ErrInvalidMode, o.Mode)
	}
	return nil
}
