package imgpoison

import (
	"fmt"
	"image"
	_ "image/jpeg" // decode jpeg format
	_ "image/png"  // decode png format
	"io"
	"os"

	"github.com/disintegration/imaging"
	_ "github.com/sunshineplan/pdf"  // decode pdf format
	_ "github.com/sunshineplan/tiff" // decode tiff format
	_ "golang.org/x/image/bmp"       // decode bmp format
	_ "golang.org/x/image/webp"      // decode webp format
)

// Decode reads an image from r.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidImageInput, err)
	}
	return img, nil
}

// Open loads an image from file.
func Open(file string) (image.Image, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidImageInput, err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return img, nil
}

// Load returns source as a four channel image located at the origin.
// The source may be a file path, an image.Image or an io.Reader holding an
// encoded image; any other value fails with ErrInvalidImageInput.
func Load(source any) (*image.NRGBA, error) {
	var img image.Image
	switch s := source.(type) {
	case string:
		var err error
		if img, err = Open(s); err != nil {
			return nil, err
		}
	case image.Image:
		img = s
	case io.Reader:
		var err error
		if img, err = Decode(s); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidImageInput, source)
	}
	return imaging.Clone(img), nil
}

// LoadRGB is like Load but drops the alpha channel.
func LoadRGB(source any) (*image.RGBA, error) {
	img, err := Load(source)
	if err != nil {
		return nil, err
	}
	return toRGB(img), nil
}

// EmbedFrom is like Embed but accepts any source supported by Load.
func EmbedFrom(base, mark any, option *EmbedOption) (*image.RGBA, *image.Point, error) {
	if option == nil {
		option = NewEmbedOption()
	}
	if err := option.checkMode(); err != nil {
		return nil, nil, err
	}
	b, m, err := load2(base, mark)
	if err != nil {
		return nil, nil, err
	}
	return Embed(b, m, option)
}

// ConcatenateFrom is like Concatenate but accepts any source supported by Load.
func ConcatenateFrom(a, b any, rnd Source) (*image.RGBA, error) {
	ia, err := LoadRGB(a)
	if err != nil {
		return nil, err
	}
	ib, err := LoadRGB(b)
	if err != nil {
		return nil, err
	}
	return Concatenate(ia, ib, rnd), nil
}

// SynthesizeFrom is like Synthesize but accepts any source supported by Load.
func SynthesizeFrom(random, reference, mark any, option *EmbedOption) (*image.RGBA, *image.Point, error) {
	r, m, err := load2(random, mark)
	if err != nil {
		return nil, nil, err
	}
	ref, err := LoadRGB(reference)
	if err != nil {
		return nil, nil, err
	}
	return Synthesize(r, ref, m, option)
}

func load2(base, mark any) (*image.NRGBA, *image.NRGBA, error) {
	b, err := Load(base)
	if err != nil {
		return nil, nil, err
	}
	m, err := Load(mark)
	if err != nil {
		return nil, nil, err
	}
	return b, m, nil
}
