package imgpoison

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestFormatFromExtension(t *testing.T) {
	for _, tc := range []struct {
		ext    string
		format Format
	}{
		{"Jpg", JPEG},
		{"jpeg", JPEG},
		{".png", PNG},
		{"TIFF", TIFF},
		{"bmp", BMP},
		{"gif", GIF},
		{"PDF", PDF},
	} {
		if f, err := FormatFromExtension(tc.ext); err != nil || f != tc.format {
			t.Errorf("%s: want %s, got %s, %v", tc.ext, tc.format, f, err)
		}
	}
	if _, err := FormatFromExtension("txt"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Error("txt format want error")
	}
}

func TestFormatTextVar(t *testing.T) {
	for _, tc := range []struct {
		argument string
		format   Format
	}{
		{"Jpg", JPEG},
		{"TIFF", TIFF},
		{"pdf", PDF},
		{"txt", Format(-1)},
	} {
		f := flag.NewFlagSet("test", flag.ContinueOnError)
		f.SetOutput(io.Discard)
		var format Format
		f.TextVar(&format, "f", Format(-1), "")
		f.Parse(append([]string{"-f"}, tc.argument))
		if format != tc.format {
			t.Errorf("expected %s format; got %s", tc.format, format)
		}
	}
}

func TestEncode(t *testing.T) {
	img := toRGB(fill(16, 8, red))
	for _, format := range []Format{JPEG, PNG, GIF, TIFF, BMP, PDF} {
		var buf bytes.Buffer
		if err := Write(&buf, img, &FormatOption{Format: format}); err != nil {
			t.Errorf("failed to write %s: %v", format, err)
			continue
		}
		if buf.Len() == 0 {
			t.Errorf("%s: empty output", format)
		}
		if format == PDF {
			continue
		}
		res, err := Decode(&buf)
		if err != nil {
			t.Errorf("failed to decode %s: %v", format, err)
			continue
		}
		if res.Bounds().Size() != img.Bounds().Size() {
			t.Errorf("%s: want %v, got %v", format, img.Bounds().Size(), res.Bounds().Size())
		}
	}
	if err := Write(io.Discard, img, &FormatOption{Format: Format(42)}); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("want ErrUnsupportedFormat, got %v", err)
	}
}

func TestExt(t *testing.T) {
	o := &FormatOption{Format: TIFF}
	if s := o.Ext("testdata/video-001.png"); s != "testdata/video-001.tif" {
		t.Errorf("Ext result is not expect one: %s", s)
	}
	o.Format = PDF
	if s := o.Ext("output"); s != "output.pdf" {
		t.Errorf("Ext result is not expect one: %s", s)
	}
}

func TestSave(t *testing.T) {
	img := toRGB(fill(4, 4, red))
	if err := Save("/invalid/path/out.png", img, &FormatOption{Format: PNG}); err == nil {
		t.Error("Save invalid path want error")
	}
	output := filepath.Join(t.TempDir(), "out.png")
	if err := Save(output, img, &FormatOption{Format: PNG}); err != nil {
		t.Fatal(err)
	}
	res, err := Open(output)
	if err != nil {
		t.Fatal(err)
	}
	compare(t, img, res)
	if err := os.Remove(output); err != nil {
		t.Error(err)
	}
}
