package image

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/tiff"
)

// ToNRGBA converts the buffer to a straight-alpha standard library image.
func (b *ImageBuf) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(b.Rect())
	for y := range b.height {
		src := b.data[y*b.stride : y*b.stride+b.format.RowBytes(b.width)]
		dst := img.Pix[y*img.Stride : y*img.Stride+b.width*4]
		for i := 0; i < len(src); i += 4 {
			r, g, bl, a := src[i], src[i+1], src[i+2], src[i+3]
			if b.format.Swapped() {
				r, bl = bl, r
			}
			dst[i+3] = a
			if a == 0 {
				dst[i], dst[i+1], dst[i+2] = 0, 0, 0
				continue
			}
			dst[i] = unpremul(r, a)
			dst[i+1] = unpremul(g, a)
			dst[i+2] = unpremul(bl, a)
		}
	}
	return img
}

func unpremul(c, a uint8) uint8 {
	if a == 255 {
		return c
	}
	v := (uint32(c)*255 + uint32(a)/2) / uint32(a)
	return uint8(min(v, 255))
}

// EncodePNG writes the buffer as a PNG image.
func (b *ImageBuf) EncodePNG(w io.Writer) error {
	return png.Encode(w, b.ToNRGBA())
}

// EncodeTIFF writes the buffer as a deflate-compressed TIFF image.
func (b *ImageBuf) EncodeTIFF(w io.Writer) error {
	return tiff.Encode(w, b.ToNRGBA(), &tiff.Options{Compression: tiff.Deflate, Predictor: true})
}

// SavePNG writes the buffer to a PNG file.
func (b *ImageBuf) SavePNG(path string) error {
	return writeFile(path, b.EncodePNG)
}

// SaveTIFF writes the buffer to a TIFF file.
func (b *ImageBuf) SaveTIFF(path string) error {
	return writeFile(path, b.EncodeTIFF)
}

// Save writes the buffer to path, choosing PNG or TIFF by file extension.
func (b *ImageBuf) Save(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return b.SavePNG(path)
	case ".tif", ".tiff":
		return b.SaveTIFF(path)
	default:
		return fmt.Errorf("image: unsupported file extension %q", filepath.Ext(path))
	}
}

func writeFile(path string, encode func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("image: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err := encode(f); err != nil {
		return fmt.Errorf("image: encode %s: %w", path, err)
	}
	return nil
}
