package mask

import "math"

// Constants of Krita's Gaussian brush mask.
const (
	gaussK     = 6761.0
	gaussBase  = 10000.0
	gaussScale = 12500.0

	minFade      = 1e-6
	minCenter    = 1e-4
	maxFade      = 2.0
	minRadius    = 0.5
	minRoundness = 0.01
)

// GaussParams are the per-dab coefficients of the coverage formula.
type GaussParams struct {
	Center      float64
	AlphaFactor float64
	DistFactor  float64
	YCoef       float64
	Fade        float64
}

// NewGaussParams derives coefficients for one (hardness, radius, roundness)
// triple. Hardness is clamped so that Fade stays in [1e-6, 2]; roundness is
// floored at 0.01.
func NewGaussParams(hardness, radius, roundness float64) GaussParams {
	fade := min(max((1-hardness)*2, minFade), maxFade)
	center := (2.5 * (gaussK*fade - gaussBase)) / (math.Sqrt2 * gaussK * fade)
	if math.Abs(center) < minCenter {
		// erf(center) is the denominator of AlphaFactor; near fade 1.479 it vanishes.
		center = math.Copysign(minCenter, center)
	}

	return GaussParams{
		Center:      center,
		AlphaFactor: 255 / (2 * Erf(center)),
		DistFactor:  math.Sqrt2 * gaussScale / (gaussK * fade * max(radius, minRadius)),
		YCoef:       1 / max(roundness, minRoundness),
		Fade:        fade,
	}
}

// CoverageAt returns the mask value at distance dist from the dab center,
// measured in roundness-adjusted space.
func (p GaussParams) CoverageAt(dist float64) float64 {
	v := dist * p.DistFactor
	fullFade := p.AlphaFactor * (Erf(v+p.Center) - Erf(v-p.Center))
	return 1 - min(max((255-fullFade)/255, 0), 1)
}

// Coverage returns the mask value at offset (dx, dy) from the dab center
// for an ellipse rotated by angle radians.
func (p GaussParams) Coverage(dx, dy, angle float64) float64 {
	u, v := dx, dy
	if angle != 0 {
		s, c := math.Sincos(angle)
		u = dx*c + dy*s
		v = dy*c - dx*s
	}
	v *= p.YCoef
	return p.CoverageAt(math.Sqrt(u*u + v*v))
}
