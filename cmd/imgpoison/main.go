package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/sunshineplan/imgpoison"
	"github.com/sunshineplan/utils/log"
	"github.com/vharitonsky/iniflags"
)

var (
	random    = flag.String("random", "", "")
	reference = flag.String("reference", "", "")
	watermark = flag.String("watermark", "", "")
	output    = flag.String("output", "output.jpg", "")
	force     = flag.Bool("force", false, "")
	width     = flag.Int("width", 50, "")
	locMin    = flag.Float64("min", 0.45, "")
	locMax    = flag.Float64("max", 0.55, "")
	alpha     = flag.Float64("alpha", 0.2, "")
	location  = flag.Bool("location", false, "")
	seed      = flag.Uint64("seed", 0, "")
	quality   = flag.Int("quality", 75, "")
	debug     = flag.Bool("debug", false, "")

	mode   imgpoison.Mode
	format imgpoison.Format
)

func init() {
	flag.TextVar(&mode, "mode", imgpoison.PatchMode, "")
	flag.TextVar(&format, "format", imgpoison.JPEG, "")
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
	fmt.Println(`
  --random
		image to embed the watermark into
  --reference
		image concatenated unchanged with the watermarked image
  --watermark
		watermark path
  --output
		output file, its extension is replaced according format (default: output.jpg)
  --force
		force overwrite (default: false)
  --mode
		watermark mode (patch or blend, default: patch)
  --width
		watermark width in pixels, only used in patch mode (default: 50)
  --min, max
		watermark location ratio range, only used in patch mode (default: 0.45, 0.55)
  --alpha
		transparency factor (range 0-1, default: 0.2)
  --location
		log watermark location (default: false)
  --seed
		random seed, 0 means nondeterministic (default: 0)
  --format
		output format (jpg, jpeg, png, gif, tif, tiff, bmp and pdf are supported, default: jpg)
  --quality
		set jpeg or pdf quality (range 1-100, default: 75)`)
}

func main() {
	self, err := os.Executable()
	if err != nil {
		log.Error("Failed to get self path", "error", err)
		os.Exit(1)
	}
	flag.Usage = usage
	iniflags.SetConfigFile(filepath.Join(filepath.Dir(self), "config.ini"))
	iniflags.SetAllowMissingConfigFile(true)
	iniflags.Parse()

	if *random == "" || *reference == "" || *watermark == "" {
		flag.Usage()
		os.Exit(2)
	}

	option := imgpoison.NewEmbedOption().
		SetMode(mode).
		SetWidth(*width).
		SetLocation(*locMin, *locMax).
		SetAlpha(*alpha).
		SetReportLocation(*location)
	if *seed != 0 {
		option.SetRand(rand.New(rand.NewPCG(*seed, *seed)))
	}
	task := &task{
		option: option,
		format: &imgpoison.FormatOption{Format: format, Quality: *quality},
		force:  *force,
	}

	if *debug {
		log.Info("Synthesizing", "random", *random, "reference", *reference, "watermark", *watermark, "mode", mode)
	}
	if err := task.run(*random, *reference, *watermark, *output); err != nil {
		os.Exit(1)
	}
	log.Info("Done.")
}
