package image

import (
	"errors"
	"image"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")
)

// ImageBuf is a contiguous premultiplied 8-bit pixel buffer.
//
// ImageBuf is not safe for concurrent writes to the same rows.
type ImageBuf struct {
	data   []byte
	width  int
	height int
	stride int
	format Format
}

// NewImageBuf allocates a zeroed (transparent) buffer.
func NewImageBuf(width, height int, format Format) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	stride := format.RowBytes(width)
	return &ImageBuf{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// Width returns the image width in pixels.
func (b *ImageBuf) Width() int { return b.width }

// Height returns the image height in pixels.
func (b *ImageBuf) Height() int { return b.height }

// Stride returns the number of bytes per row.
func (b *ImageBuf) Stride() int { return b.stride }

// Format returns the pixel byte order.
func (b *ImageBuf) Format() Format { return b.format }

// Rect returns the buffer bounds with the origin at (0, 0).
func (b *ImageBuf) Rect() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// Data returns the raw pixel bytes.
func (b *ImageBuf) Data() []byte { return b.data }

// Span returns the bytes of pixels [x0, x1) on row y. The caller must keep
// the range inside the buffer.
func (b *ImageBuf) Span(y, x0, x1 int) []byte {
	off := y * b.stride
	return b.data[off+x0*BytesPerPixel : off+x1*BytesPerPixel]
}

// PixelOffset returns the byte offset of pixel (x, y), or -1 when the
// coordinates are outside the buffer.
func (b *ImageBuf) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*BytesPerPixel
}

// RGBA returns the premultiplied pixel at (x, y) in R, G, B, A order
// regardless of the storage format. Out-of-range coordinates yield zeros.
func (b *ImageBuf) RGBA(x, y int) (r, g, bl, a uint8) {
	off := b.PixelOffset(x, y)
	if off < 0 {
		return 0, 0, 0, 0
	}
	p := b.data[off : off+4]
	if b.format.Swapped() {
		return p[2], p[1], p[0], p[3]
	}
	return p[0], p[1], p[2], p[3]
}

// Clear makes every pixel transparent.
func (b *ImageBuf) Clear() {
	clear(b.data)
}

// Fill sets every pixel to the premultiplied color (r, g, bl, a), given in
// RGBA order.
func (b *ImageBuf) Fill(r, g, bl, a uint8) {
	px := [4]byte{r, g, bl, a}
	if b.format.Swapped() {
		px[0], px[2] = px[2], px[0]
	}
	for i := 0; i < len(b.data); i += BytesPerPixel {
		copy(b.data[i:i+4], px[:])
	}
}
