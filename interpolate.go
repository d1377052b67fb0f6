package brush

import (
	"iter"
	"math"

	"seehuhn.de/go/geom/vec"
)

// maxSegmentSteps bounds the number of points produced for one input
// segment.
const maxSegmentSteps = 1 << 16

// Interpolate resamples samples along a Catmull-Rom spline so that
// consecutive output points are at most about spacing pixels apart.
//
// With four or more samples every segment p[i]→p[i+1] is evaluated at
// t = k/steps for k in [0, steps), steps = max(1, ceil(|p[i+1]-p[i]|/spacing)),
// with the first and last samples duplicated as outer control points. The
// final input sample is appended unchanged. Position, pressure and tilt share
// the same basis; each output point carries the timestamp of its segment's
// starting sample. Fewer than four samples are returned unchanged.
//
// The sequence is lazy and may be ranged over more than once.
func Interpolate(samples []InputSample, spacing float64) iter.Seq[InputSample] {
	return InterpolateWith(InterpolateCatmullRom, samples, spacing)
}

// InterpolateWith is Interpolate with an explicit interpolation mode.
// InterpolateLinear steps along straight segments the same way;
// InterpolateNone yields samples as given.
func InterpolateWith(mode InterpolationMode, samples []InputSample, spacing float64) iter.Seq[InputSample] {
	return resample(samples, func() *interpolator { return newInterpolator(mode, spacing) })
}

func resample(samples []InputSample, newIP func() *interpolator) iter.Seq[InputSample] {
	return func(yield func(InputSample) bool) {
		ip := newIP()
		for _, s := range samples {
			if !ip.push(s, yield) {
				return
			}
		}
		ip.finish(yield)
	}
}

// PathLength returns the length of the polyline through points, or 0 for
// fewer than two points.
func PathLength(points []InputSample) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += pos(points[i]).Sub(pos(points[i-1])).Length()
	}
	return total
}

func pos(s InputSample) vec.Vec2 {
	return vec.Vec2{X: s.X, Y: s.Y}
}

// segmentSteps returns max(1, ceil(chord/spacing)), treating a
// non-positive or non-finite spacing as one step per segment.
func segmentSteps(chord, spacing float64) int {
	if !(spacing > 0) || math.IsInf(spacing, 0) {
		return 1
	}
	n := math.Ceil(chord / spacing)
	if !(n >= 1) {
		return 1
	}
	return int(min(n, maxSegmentSteps))
}

// interpolator is the incremental form of InterpolateWith. Samples are
// pushed one at a time and output is emitted as soon as it is fully
// determined; the concatenated output equals the batch result.
type interpolator struct {
	mode    InterpolationMode
	spacing float64

	// linearTail steps straight between the samples of a Catmull-Rom
	// stroke too short to form a spline instead of passing them through.
	linearTail bool

	// win holds the first samples until four are known, then the last four.
	win [4]InputSample
	n   int // samples pushed so far
}

func newInterpolator(mode InterpolationMode, spacing float64) *interpolator {
	return &interpolator{mode: mode, spacing: spacing}
}

// newStampInterpolator returns the interpolator used for stamping: a
// Catmull-Rom stroke of two or three samples is resampled linearly so
// short flicks stay continuous.
func newStampInterpolator(mode InterpolationMode, spacing float64) *interpolator {
	return &interpolator{mode: mode, spacing: spacing, linearTail: true}
}

func (ip *interpolator) reset() {
	ip.n = 0
}

// at returns sample i; only the window's indices are valid.
func (ip *interpolator) at(i int) InputSample {
	if ip.n <= 4 {
		return ip.win[i]
	}
	return ip.win[3-(ip.n-1-i)]
}

// push adds a sample and emits every point it completes. It returns false
// if emit asked to stop.
func (ip *interpolator) push(s InputSample, emit func(InputSample) bool) bool {
	if ip.n < 4 {
		ip.win[ip.n] = s
	} else {
		copy(ip.win[:], ip.win[1:])
		ip.win[3] = s
	}
	ip.n++

	switch ip.mode {
	case InterpolateNone:
		return emit(s)
	case InterpolateLinear:
		if ip.n < 2 {
			return true
		}
		return ip.linearSegment(ip.at(ip.n-2), s, emit)
	}

	switch {
	case ip.n < 4:
		return true
	case ip.n == 4:
		// Segment 0 uses the duplicated first sample as p0.
		if !ip.catmullSegment(ip.at(0), ip.at(0), ip.at(1), ip.at(2), emit) {
			return false
		}
		return ip.catmullSegment(ip.at(0), ip.at(1), ip.at(2), ip.at(3), emit)
	default:
		i := ip.n - 3
		return ip.catmullSegment(ip.at(i-1), ip.at(i), ip.at(i+1), ip.at(i+2), emit)
	}
}

// finish emits the remaining output and resets the interpolator.
func (ip *interpolator) finish(emit func(InputSample) bool) bool {
	defer ip.reset()
	if ip.n == 0 {
		return true
	}
	last := ip.at(ip.n - 1)

	switch ip.mode {
	case InterpolateNone:
		return true
	case InterpolateLinear:
		return emit(last)
	}

	if ip.n < 4 {
		if ip.linearTail {
			for i := 1; i < ip.n; i++ {
				if !ip.linearSegment(ip.win[i-1], ip.win[i], emit) {
					return false
				}
			}
			return emit(last)
		}
		for i := range ip.n {
			if !emit(ip.win[i]) {
				return false
			}
		}
		return true
	}
	// Last segment uses the duplicated final sample as p3.
	i := ip.n - 2
	if !ip.catmullSegment(ip.at(i-1), ip.at(i), last, last, emit) {
		return false
	}
	return emit(last)
}

// catmullSegment emits the points of the segment p1→p2.
func (ip *interpolator) catmullSegment(p0, p1, p2, p3 InputSample, emit func(InputSample) bool) bool {
	v0, v1, v2, v3 := pos(p0), pos(p1), pos(p2), pos(p3)
	steps := segmentSteps(v2.Sub(v1).Length(), ip.spacing)

	for k := range steps {
		t := float64(k) / float64(steps)
		t2 := t * t
		t3 := t2 * t
		b0 := -0.5*t3 + t2 - 0.5*t
		b1 := 1.5*t3 - 2.5*t2 + 1
		b2 := -1.5*t3 + 2*t2 + 0.5*t
		b3 := 0.5*t3 - 0.5*t2

		p := v0.Mul(b0).Add(v1.Mul(b1)).Add(v2.Mul(b2)).Add(v3.Mul(b3))
		out := InputSample{
			X:           p.X,
			Y:           p.Y,
			Pressure:    b0*p0.Pressure + b1*p1.Pressure + b2*p2.Pressure + b3*p3.Pressure,
			TiltX:       b0*p0.TiltX + b1*p1.TiltX + b2*p2.TiltX + b3*p3.TiltX,
			TiltY:       b0*p0.TiltY + b1*p1.TiltY + b2*p2.TiltY + b3*p3.TiltY,
			TimestampMs: p1.TimestampMs,
		}
		if !emit(out) {
			return false
		}
	}
	return true
}

// linearSegment emits the points of the straight segment a→b.
func (ip *interpolator) linearSegment(a, b InputSample, emit func(InputSample) bool) bool {
	va, vb := pos(a), pos(b)
	d := vb.Sub(va)
	steps := segmentSteps(d.Length(), ip.spacing)

	for k := range steps {
		t := float64(k) / float64(steps)
		p := va.Add(d.Mul(t))
		out := InputSample{
			X:           p.X,
			Y:           p.Y,
			Pressure:    a.Pressure + (b.Pressure-a.Pressure)*t,
			TiltX:       a.TiltX + (b.TiltX-a.TiltX)*t,
			TiltY:       a.TiltY + (b.TiltY-a.TiltY)*t,
			TimestampMs: a.TimestampMs,
		}
		if !emit(out) {
			return false
		}
	}
	return true
}
