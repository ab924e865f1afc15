package imgpoison_test

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand/v2"

	"github.com/disintegration/imaging"
	"github.com/sunshineplan/imgpoison"
)

func Example() {
	random := imaging.New(200, 100, color.NRGBA{0xff, 0x00, 0x00, 0xff})
	reference := imaging.New(120, 80, color.NRGBA{0x00, 0xff, 0x00, 0xff})
	mark := imaging.New(40, 20, color.NRGBA{0x00, 0x00, 0xff, 0xff})

	// Stamp a 40px wide watermark in the middle of the random image, fully
	// hiding the base under it, and join it with the reference image.
	option := imgpoison.NewEmbedOption().
		SetWidth(40).
		SetLocation(0.5, 0.5).
		SetAlpha(0).
		SetReportLocation(true).
		SetRand(rand.New(rand.NewPCG(1, 2)))
	dst, loc, err := imgpoison.Synthesize(random, reference, mark, option)
	if err != nil {
		log.Fatalf("failed to synthesize image: %v", err)
	}

	// Write the resulting image as PNG.
	if err := imgpoison.Write(io.Discard, dst, &imgpoison.FormatOption{Format: imgpoison.PNG}); err != nil {
		log.Fatalf("failed to write image: %v", err)
	}
	fmt.Print(loc)
	// output:(100,50)
}
