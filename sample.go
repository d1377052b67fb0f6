package brush

import "math"

// InputSample is one raw stylus or mouse event in canvas pixels.
type InputSample struct {
	X, Y float64
	// Pressure is nominally in [0, 1].
	Pressure float64
	// TiltX and TiltY are in degrees, nominally in [-90, 90].
	TiltX, TiltY float64
	TimestampMs  uint64
}

// Clamp returns s with pressure clamped to [0, 1] and tilt to [-90, 90].
// NaN pressure or tilt becomes 0.
func (s InputSample) Clamp() InputSample {
	s.Pressure = clampNaN(s.Pressure, 0, 1)
	s.TiltX = clampNaN(s.TiltX, -90, 90)
	s.TiltY = clampNaN(s.TiltY, -90, 90)
	return s
}

func clampNaN(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return min(max(v, lo), hi)
}

// BrushPoint is a resampled point with its dynamics resolved.
type BrushPoint struct {
	X, Y float64
	// Size is the dab diameter in pixels.
	Size float64
	// Opacity is the dab alpha in [0, 1] (flow times the pressure curve).
	Opacity float64
	// Rotation is the dab angle in radians.
	Rotation float64
}
