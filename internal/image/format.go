// Package image holds 8-bit premultiplied pixel buffers for the brush
// canvas, their PNG and TIFF encoders, and a byte pool for segment pixels.
package image

// Format is the byte order of a 4-byte premultiplied pixel.
type Format uint8

const (
	// FormatRGBAPremul stores R, G, B, A with premultiplied alpha.
	FormatRGBAPremul Format = iota

	// FormatBGRAPremul stores B, G, R, A with premultiplied alpha.
	FormatBGRAPremul

	formatCount
)

// BytesPerPixel is the same for every supported format.
const BytesPerPixel = 4

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// Swapped reports whether the red and blue bytes are exchanged relative to
// RGBA order.
func (f Format) Swapped() bool {
	return f == FormatBGRAPremul
}

// RowBytes returns the number of bytes in a row of width pixels.
func (f Format) RowBytes(width int) int {
	return width * BytesPerPixel
}

func (f Format) String() string {
	switch f {
	case FormatRGBAPremul:
		return "RGBAPremul"
	case FormatBGRAPremul:
		return "BGRAPremul"
	default:
		return "Unknown"
	}
}

// SwapRB exchanges the first and third byte of every pixel in p in place,
// converting between RGBA and BGRA order.
func SwapRB(p []byte) {
	for i := 0; i+3 < len(p); i += BytesPerPixel {
		p[i], p[i+2] = p[i+2], p[i]
	}
}
