package brush

import (
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
)

// Surface is a destination a finished stroke is blended onto, typically
// a layer owned by the document.
type Surface interface {
	// Format returns the storage format of the surface. Strokes are
	// rendered only onto RGBA8Unorm and BGRA8Unorm surfaces.
	Format() gputypes.TextureFormat

	// Bounds returns the addressable pixel area.
	Bounds() image.Rectangle

	// BlendInto blends premultiplied RGBA8 pixels covering rect onto the
	// surface with the given blend mode, scaling the source by opacity.
	// pixels holds rect.Dy() rows of 4·rect.Dx() bytes. Parts of rect
	// outside Bounds are ignored.
	BlendInto(rect image.Rectangle, pixels []byte, opacity float64, mode BlendMode)
}

// supportedFormat reports whether strokes can be finalized onto f.
func supportedFormat(f gputypes.TextureFormat) bool {
	return f == gputypes.TextureFormatRGBA8Unorm || f == gputypes.TextureFormatBGRA8Unorm
}

func mustSupport(dst Surface) {
	if f := dst.Format(); !supportedFormat(f) {
		panic(fmt.Sprintf("brush: unsupported surface format %v", f))
	}
}

// Segment is one finalized region of a stroke.
type Segment struct {
	Rect image.Rectangle
	// Pixels holds the accumulated stroke as premultiplied RGBA8, before
	// opacity: Rect.Dy() rows of 4·Rect.Dx() bytes.
	Pixels  []byte
	Opacity float64
	Mode    BlendMode
}
