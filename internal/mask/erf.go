package mask

import (
	"math"

	"github.com/gogpu/brush/internal/wide"
)

// Abramowitz & Stegun 7.1.26.
const (
	erfA1 = 0.254829592
	erfA2 = -0.284496736
	erfA3 = 1.421413741
	erfA4 = -1.453152027
	erfA5 = 1.061405429
	erfP  = 0.3275911
)

// Erf approximates the error function with |error| <= 1.5e-7.
func Erf(x float64) float64 {
	ax := math.Abs(x)
	t := 1 / (1 + erfP*ax)
	poly := ((((erfA5*t+erfA4)*t+erfA3)*t+erfA2)*t + erfA1) * t
	y := 1 - poly*math.Exp(-ax*ax)
	return math.Copysign(y, x)
}

// erf8 is Erf over eight float32 lanes.
func erf8(x wide.F32x8) wide.F32x8 {
	one := wide.SplatF32(1)
	ax := x.Abs()
	t := one.Div(one.Add(ax.Mul(wide.SplatF32(erfP))))

	poly := t.Mul(wide.SplatF32(erfA5)).Add(wide.SplatF32(erfA4))
	poly = poly.MulAdd(t, wide.SplatF32(erfA3))
	poly = poly.MulAdd(t, wide.SplatF32(erfA2))
	poly = poly.MulAdd(t, wide.SplatF32(erfA1))
	poly = poly.Mul(t)

	y := one.Sub(poly.Mul(ax.Mul(ax).Neg().Exp()))
	return y.CopySign(x)
}
