package imgpoison

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/sunshineplan/pdf"
)

// Format is an image file format.
type Format int

// Image file formats.
const (
	JPEG Format = iota
	PNG
	GIF
	TIFF
	BMP
	PDF
)

const defaultQuality = 75

var formatExts = map[Format]string{
	JPEG: "jpg",
	PNG:  "png",
	GIF:  "gif",
	TIFF: "tif",
	BMP:  "bmp",
	PDF:  "pdf",
}

// ErrUnsupportedFormat means the given image format is not supported.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// FormatFromExtension parses image format from filename extension:
// "jpg" (or "jpeg"), "png", "gif", "tif" (or "tiff"), "bmp" and "pdf" are supported.
func FormatFromExtension(ext string) (Format, error) {
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	if ext == "pdf" {
		return PDF, nil
	}
	f, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return -1, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return Format(f), nil
}

func (f Format) String() string {
	if ext, ok := formatExts[f]; ok {
		return ext
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	if _, ok := formatExts[f]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormat, int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) (err error) {
	*f, err = FormatFromExtension(string(text))
	return
}

// FormatOption is format option
type FormatOption struct {
	Format Format
	// Quality is the JPEG or PDF quality, ranges from 1 to 100 inclusive.
	// Zero means 75.
	Quality int
}

func (f *FormatOption) quality() int {
	if f.Quality <= 0 {
		return defaultQuality
	}
	return f.Quality
}

// Encode writes img to w according format option.
func (f *FormatOption) Encode(w io.Writer, img image.Image) error {
	switch f.Format {
	case PDF:
		return pdf.Encode(w, []image.Image{img}, &pdf.Options{Quality: f.quality()})
	case JPEG:
		return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(f.quality()))
	case PNG, GIF, TIFF, BMP:
		return imaging.Encode(w, img, imaging.Format(f.Format))
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f.Format)
}

// Ext replaces filename's ext according image format.
func (f *FormatOption) Ext(filename string) string {
	return filename[0:len(filename)-len(filepath.Ext(filename))] + "." + formatExts[f.Format]
}

// Write image according format option
func Write(w io.Writer, img image.Image, option *FormatOption) error {
	return option.Encode(w, img)
}

// Save saves image according format option
func Save(output string, img image.Image, option *FormatOption) error {
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()

	return option.Encode(f, img)
}
