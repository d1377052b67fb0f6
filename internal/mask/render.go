package mask

import (
	"image"
	"math"

	"github.com/gogpu/brush/internal/wide"
)

// Shape places a dab: center in pixel space, radius and rotation.
type Shape struct {
	CX, CY float64
	Radius float64
	Angle  float64
}

// Bounds returns the pixel rectangle outside of which the mask of s is
// negligible. Soft dabs reach radius*(1+fade) along the major axis; the
// minor axis is scaled by roundness and the ellipse is rotated by Angle.
func Bounds(s Shape, p GaussParams) image.Rectangle {
	reach := s.Radius * (1 + p.Fade)
	hx := reach + 1
	hy := reach/p.YCoef + 1
	if s.Angle != 0 {
		sn, cs := math.Sincos(s.Angle)
		hx, hy = math.Hypot(hx*cs, hy*sn), math.Hypot(hx*sn, hy*cs)
	}
	return image.Rect(
		int(math.Floor(s.CX-hx)), int(math.Floor(s.CY-hy)),
		int(math.Ceil(s.CX+hx)), int(math.Ceil(s.CY+hy)),
	)
}

// RenderScalar writes coverage for every pixel of r into dst, row-major with
// stride r.Dx(). Pixel centers sit at (x+0.5, y+0.5).
func RenderScalar(dst []float32, r image.Rectangle, s Shape, p GaussParams) {
	w := r.Dx()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := dst[(y-r.Min.Y)*w : (y-r.Min.Y+1)*w]
		dy := float64(y) + 0.5 - s.CY
		for i := range row {
			dx := float64(r.Min.X+i) + 0.5 - s.CX
			row[i] = float32(p.Coverage(dx, dy, s.Angle))
		}
	}
}

// batchMinCenter is the smallest |Center| the float32 lanes evaluate. Below
// it erf(v+c)-erf(v-c) cancels in single precision and the mask is rendered
// by RenderScalar instead.
const batchMinCenter = 0.05

// Render is RenderScalar evaluated eight pixels at a time. Row tails shorter
// than eight pixels, and hardness values near 0.26 where Center is close to
// zero, use the scalar formula.
func Render(dst []float32, r image.Rectangle, s Shape, p GaussParams) {
	w := r.Dx()
	if w <= 0 || r.Dy() <= 0 {
		return
	}
	if math.Abs(p.Center) < batchMinCenter {
		RenderScalar(dst, r, s, p)
		return
	}

	sn, cs := math.Sincos(s.Angle)
	var (
		vSin    = wide.SplatF32(float32(sn))
		vCos    = wide.SplatF32(float32(cs))
		vYCoef  = wide.SplatF32(float32(p.YCoef))
		vDist   = wide.SplatF32(float32(p.DistFactor))
		vCenter = wide.SplatF32(float32(p.Center))
		vAlpha  = wide.SplatF32(float32(p.AlphaFactor))
		v255    = wide.SplatF32(255)
		vOne    = wide.SplatF32(1)
	)

	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := dst[(y-r.Min.Y)*w : (y-r.Min.Y+1)*w]
		dy := float64(y) + 0.5 - s.CY
		vDY := wide.SplatF32(float32(dy))

		i := 0
		for ; i+8 <= w; i += 8 {
			dx := wide.RampF32(float32(float64(r.Min.X+i)+0.5-s.CX), 1)
			u := dx.Mul(vCos).Add(vDY.Mul(vSin))
			v := vDY.Mul(vCos).Sub(dx.Mul(vSin)).Mul(vYCoef)
			dist := u.Mul(u).Add(v.Mul(v)).Sqrt().Mul(vDist)

			fullFade := vAlpha.Mul(erf8(dist.Add(vCenter)).Sub(erf8(dist.Sub(vCenter))))
			cov := vOne.Sub(v255.Sub(fullFade).Div(v255).Clamp(0, 1))
			copy(row[i:i+8], cov[:])
		}
		for ; i < w; i++ {
			dx := float64(r.Min.X+i) + 0.5 - s.CX
			row[i] = float32(p.Coverage(dx, dy, s.Angle))
		}
	}
}
