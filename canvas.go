package brush

import (
	"fmt"
	"image"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/brush/internal/blend"
	imgbuf "github.com/gogpu/brush/internal/image"
	"github.com/gogpu/brush/internal/parallel"
)

// minBandRows is the smallest number of rows handed to one worker.
const minBandRows = 16

// Canvas is an in-memory Surface holding premultiplied 8-bit pixels.
//
// Canvas is not safe for concurrent BlendInto calls; it may fan one call
// out over its own worker pool.
type Canvas struct {
	buf    *imgbuf.ImageBuf
	format gputypes.TextureFormat
	pool   *parallel.WorkerPool
}

// CanvasOption configures a Canvas.
type CanvasOption func(*canvasOptions)

type canvasOptions struct {
	workers int
}

// WithParallelRows blends rows on n worker goroutines. n <= 0 uses
// GOMAXPROCS; n == 1 (the default) blends on the calling goroutine.
// Call Close to stop the workers.
func WithParallelRows(n int) CanvasOption {
	return func(o *canvasOptions) {
		o.workers = n
		if n <= 0 {
			o.workers = -1
		}
	}
}

// NewCanvas creates a transparent canvas. format must be RGBA8Unorm or
// BGRA8Unorm.
func NewCanvas(width, height int, format gputypes.TextureFormat, opts ...CanvasOption) (*Canvas, error) {
	o := canvasOptions{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	var f imgbuf.Format
	switch format {
	case gputypes.TextureFormatRGBA8Unorm:
		f = imgbuf.FormatRGBAPremul
	case gputypes.TextureFormatBGRA8Unorm:
		f = imgbuf.FormatBGRAPremul
	default:
		return nil, fmt.Errorf("brush: unsupported canvas format %v", format)
	}
	buf, err := imgbuf.NewImageBuf(width, height, f)
	if err != nil {
		return nil, fmt.Errorf("brush: new canvas: %w", err)
	}

	c := &Canvas{buf: buf, format: format}
	if o.workers != 1 {
		c.pool = parallel.NewWorkerPool(max(o.workers, 0))
	}
	return c, nil
}

// Format implements Surface.
func (c *Canvas) Format() gputypes.TextureFormat {
	return c.format
}

// Bounds implements Surface.
func (c *Canvas) Bounds() image.Rectangle {
	return c.buf.Rect()
}

// Fill sets every pixel to col.
func (c *Canvas) Fill(col RGBA) {
	p := col.Premultiply()
	c.buf.Fill(to8(p.R), to8(p.G), to8(p.B), to8(p.A))
}

// Clear makes every pixel transparent.
func (c *Canvas) Clear() {
	c.buf.Clear()
}

// RGBA returns the premultiplied pixel at (x, y) in R, G, B, A order.
func (c *Canvas) RGBA(x, y int) (r, g, b, a uint8) {
	return c.buf.RGBA(x, y)
}

// Pix returns the raw pixel bytes in the canvas's storage order.
func (c *Canvas) Pix() []byte {
	return c.buf.Data()
}

// BlendInto implements Surface. Opacity is quantized down to 1/255 steps so
// the stroke never exceeds it.
func (c *Canvas) BlendInto(rect image.Rectangle, pixels []byte, opacity float64, mode BlendMode) {
	op := uint8(min(max(opacity, 0), 1) * 255)
	clipped := rect.Intersect(c.Bounds())
	if op == 0 || clipped.Empty() {
		return
	}
	if len(pixels) < rect.Dx()*rect.Dy()*4 {
		panic(fmt.Sprintf("brush: BlendInto: %d bytes for %v", len(pixels), rect))
	}

	srcStride := rect.Dx() * 4
	x0 := (clipped.Min.X - rect.Min.X) * 4
	n := clipped.Dx()
	swap := c.buf.Format().Swapped()
	bm := mode.internal()

	parallel.Rows(c.pool, clipped.Min.Y, clipped.Max.Y, minBandRows, func(band parallel.Band) {
		var scratch []byte
		if swap {
			scratch = make([]byte, n*4)
		}
		for y := band.Y0; y < band.Y1; y++ {
			off := (y-rect.Min.Y)*srcStride + x0
			src := pixels[off : off+n*4]
			if swap {
				copy(scratch, src)
				imgbuf.SwapRB(scratch)
				src = scratch
			}
			blend.Row(c.buf.Span(y, clipped.Min.X, clipped.Max.X), src, n, bm, op)
		}
	})
}

// Image returns a straight-alpha copy of the canvas.
func (c *Canvas) Image() *image.NRGBA {
	return c.buf.ToNRGBA()
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return c.buf.SavePNG(path)
}

// SaveTIFF writes the canvas to a deflate-compressed TIFF file.
func (c *Canvas) SaveTIFF(path string) error {
	return c.buf.SaveTIFF(path)
}

// Save writes the canvas, picking PNG or TIFF from the file extension.
func (c *Canvas) Save(path string) error {
	return c.buf.Save(path)
}

// Close stops the canvas's worker pool, if any.
func (c *Canvas) Close() {
	if c.pool != nil {
		c.pool.Close()
	}
}
