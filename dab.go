package brush

import (
	"image"

	"github.com/gogpu/brush/internal/mask"
)

// Dab is one stamp of the brush tip.
type Dab struct {
	CenterX, CenterY float64
	// Radius is half the resolved diameter, in pixels.
	Radius    float64
	Hardness  float64
	Roundness float64
	// Angle is the rotation of the dab's major axis in radians.
	Angle float64
	// Alpha is the per-dab flow in [0, 1].
	Alpha float64
}

func (d Dab) shape() mask.Shape {
	return mask.Shape{CX: d.CenterX, CY: d.CenterY, Radius: d.Radius, Angle: d.Angle}
}

// Bounds returns the pixel rectangle the dab's mask covers.
func (d Dab) Bounds() image.Rectangle {
	return mask.Bounds(d.shape(), mask.NewGaussParams(d.Hardness, d.Radius, d.Roundness))
}

// Mask is a dense coverage grid for one dab. Cov holds Rect.Dx()*Rect.Dy()
// values in [0, 1], row-major.
type Mask struct {
	Rect image.Rectangle
	Cov  []float32
}

// At returns the coverage at pixel (x, y), or 0 outside Rect.
func (m *Mask) At(x, y int) float32 {
	if !image.Pt(x, y).In(m.Rect) {
		return 0
	}
	return m.Cov[(y-m.Rect.Min.Y)*m.Rect.Dx()+(x-m.Rect.Min.X)]
}
