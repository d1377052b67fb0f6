package image

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/tiff"
)

func TestToNRGBAUnpremultiplies(t *testing.T) {
	b, _ := NewImageBuf(1, 1, FormatBGRAPremul)
	// 50% red, premultiplied, stored as BGRA.
	copy(b.Data(), []byte{0, 0, 128, 128})

	c := b.ToNRGBA().NRGBAAt(0, 0)
	if c.R != 255 || c.G != 0 || c.B != 0 || c.A != 128 {
		t.Errorf("NRGBA = %+v, want {255 0 0 128}", c)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	b, _ := NewImageBuf(3, 2, FormatRGBAPremul)
	b.Fill(40, 80, 120, 255)

	var pngBuf, tiffBuf bytes.Buffer
	if err := b.EncodePNG(&pngBuf); err != nil {
		t.Fatal(err)
	}
	if err := b.EncodeTIFF(&tiffBuf); err != nil {
		t.Fatal(err)
	}

	pm, err := png.Decode(&pngBuf)
	if err != nil {
		t.Fatal(err)
	}
	tm, err := tiff.Decode(&tiffBuf)
	if err != nil {
		t.Fatal(err)
	}
	if pm.Bounds().Dx() != 3 || tm.Bounds().Dy() != 2 {
		t.Errorf("bounds png %v tiff %v", pm.Bounds(), tm.Bounds())
	}
	r, g, bl, _ := tm.At(2, 1).RGBA()
	if r>>8 != 40 || g>>8 != 80 || bl>>8 != 120 {
		t.Errorf("tiff pixel = %d,%d,%d", r>>8, g>>8, bl>>8)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	b, _ := NewImageBuf(2, 2, FormatRGBAPremul)
	for _, name := range []string{"out.png", "out.tif", "OUT.TIFF"} {
		path := filepath.Join(dir, name)
		if err := b.Save(path); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}
		if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
			t.Errorf("%s not written", name)
		}
	}
	if err := b.Save(filepath.Join(dir, "out.bmp")); err == nil {
		t.Error("Save accepted .bmp")
	}
}
