package brush

import (
	"fmt"
	"math"
	"slices"
)

// CurvePoint is one control point of a custom pressure curve, both
// coordinates in [0, 1].
type CurvePoint struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

// CurveConfig describes a pressure curve as stored in a brush config.
// Points are only used by CurveCustom.
type CurveConfig struct {
	Kind   PressureCurve `toml:"kind"`
	Points []CurvePoint  `toml:"points,omitempty"`
}

func (c CurveConfig) validate() error {
	if !c.Kind.Valid() {
		return fmt.Errorf("%w: kind %d", ErrInvalidCurve, c.Kind)
	}
	for _, p := range c.Points {
		if !(p.X >= 0 && p.X <= 1 && p.Y >= 0 && p.Y <= 1) {
			return fmt.Errorf("%w: control point (%g, %g) outside [0, 1]", ErrInvalidCurve, p.X, p.Y)
		}
	}
	return nil
}

// Curve maps pressure to a [0, 1] factor. The zero Curve is linear.
type Curve struct {
	kind PressureCurve
	pts  []CurvePoint
}

// NewCurve builds an evaluator. Custom control points are sorted by X;
// a custom curve without points is the identity.
func NewCurve(c CurveConfig) (Curve, error) {
	if err := c.validate(); err != nil {
		return Curve{}, err
	}
	cv := Curve{kind: c.Kind}
	if c.Kind == CurveCustom && len(c.Points) > 0 {
		cv.pts = slices.Clone(c.Points)
		slices.SortStableFunc(cv.pts, func(a, b CurvePoint) int {
			switch {
			case a.X < b.X:
				return -1
			case a.X > b.X:
				return 1
			}
			return 0
		})
	}
	return cv, nil
}

// Eval returns the curve value at pressure p, which is first clamped to
// [0, 1]. Linear, Soft and Hard map 0 to 0 and 1 to 1 exactly.
func (c Curve) Eval(p float64) float64 {
	if math.IsNaN(p) {
		p = 0
	}
	p = min(max(p, 0), 1)

	switch c.kind {
	case CurveSoft:
		q := 1 - p
		return 1 - q*q
	case CurveHard:
		return p * p
	case CurveCustom:
		return c.evalCustom(p)
	default:
		return p
	}
}

// evalCustom interpolates linearly between control points and holds the
// end values outside them.
func (c Curve) evalCustom(p float64) float64 {
	pts := c.pts
	if len(pts) == 0 {
		return p
	}
	if p <= pts[0].X {
		return pts[0].Y
	}
	last := pts[len(pts)-1]
	if p >= last.X {
		return last.Y
	}
	i, _ := slices.BinarySearchFunc(pts, p, func(cp CurvePoint, x float64) int {
		switch {
		case cp.X < x:
			return -1
		case cp.X > x:
			return 1
		}
		return 0
	})
	// pts[i-1].X < p <= pts[i].X
	a, b := pts[i-1], pts[i]
	if b.X == a.X {
		return b.Y
	}
	t := (p - a.X) / (b.X - a.X)
	return a.Y + (b.Y-a.Y)*t
}
