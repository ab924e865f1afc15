package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sunshineplan/imgpoison"
	"github.com/sunshineplan/utils/log"
)

var errExist = errors.New("destination already exist")

type task struct {
	option *imgpoison.EmbedOption
	format *imgpoison.FormatOption
	force  bool
}

func (t *task) run(random, reference, watermark, output string) (err error) {
	output = t.format.Ext(output)
	if _, err = os.Stat(output); err == nil {
		if !t.force {
			log.Error("Skip", "output", output, "error", errExist)
			return errExist
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		log.Error("Failed to get FileInfo", "name", output, "error", err)
		return
	}
	path := filepath.Dir(output)
	if err = os.MkdirAll(path, 0755); err != nil {
		log.Error("Failed to create directory", "path", path, "error", err)
		return
	}

	img, loc, err := imgpoison.SynthesizeFrom(random, reference, watermark, t.option)
	if err != nil {
		log.Error("Failed to synthesize image", "random", random, "reference", reference, "error", err)
		return
	}
	if loc != nil {
		log.Info("Watermark location", "x", loc.X, "y", loc.Y)
	}

	f, err := os.CreateTemp(path, "*.tmp")
	if err != nil {
		log.Error("Failed to create temporary file", "path", path, "error", err)
		return
	}
	if err = t.format.Encode(f, img); err != nil {
		f.Close()
		os.Remove(f.Name())
		log.Error("Failed to encode image", "output", output, "error", err)
		return
	}
	f.Close()
	if err = os.Rename(f.Name(), output); err != nil {
		log.Error("Failed to move file", "from", f.Name(), "to", output, "error", err)
	}
	return
}
