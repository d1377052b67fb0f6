package brush

import (
	"fmt"
	"image"
	"iter"
	"math"

	"github.com/gogpu/brush/internal/cache"
	"github.com/gogpu/brush/internal/mask"
)

// paramsCacheSize is the number of distinct dab shapes whose mask
// coefficients a Stamper keeps.
const paramsCacheSize = 256

type paramsKey struct {
	hardness, radius, roundness float64
}

// Stamper turns resampled input points into dabs and rasterizes them.
//
// A Stamper is not safe for concurrent use.
type Stamper struct {
	cfg          Config
	sizeCurve    Curve
	opacityCurve Curve
	params       *cache.Cache[paramsKey, mask.GaussParams]
}

// NewStamper validates cfg and returns a Stamper for it.
func NewStamper(cfg Config) (*Stamper, error) {
	s := &Stamper{params: cache.New[paramsKey, mask.GaussParams](paramsCacheSize)}
	if err := s.Reconfigure(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// Reconfigure replaces the brush settings and drops cached mask
// coefficients. On error the Stamper keeps its previous configuration.
func (s *Stamper) Reconfigure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	sc, err := NewCurve(cfg.SizeCurve)
	if err != nil {
		return fmt.Errorf("size curve: %w", err)
	}
	oc, err := NewCurve(cfg.OpacityCurve)
	if err != nil {
		return fmt.Errorf("opacity curve: %w", err)
	}
	s.cfg, s.sizeCurve, s.opacityCurve = cfg, sc, oc
	s.params.Clear()
	return nil
}

// Config returns the active configuration.
func (s *Stamper) Config() Config {
	return s.cfg
}

// Point resolves the brush dynamics for one resampled sample.
func (s *Stamper) Point(in InputSample) BrushPoint {
	in = in.Clamp()

	size := s.cfg.Diameter
	if s.cfg.SizePressure {
		size *= s.sizeCurve.Eval(in.Pressure)
	}
	alpha := s.cfg.Flow
	if s.cfg.OpacityPressure {
		alpha *= s.opacityCurve.Eval(in.Pressure)
	}
	rot := s.cfg.Angle
	if s.cfg.ShapeDynamics {
		rot = math.Atan2(in.TiltY, in.TiltX)
	}

	return BrushPoint{
		X:        in.X,
		Y:        in.Y,
		Size:     size,
		Opacity:  min(max(alpha, 0), 1),
		Rotation: rot,
	}
}

// Dab converts a point into a dab. It reports false for dabs that would
// not paint anything: zero radius or zero alpha.
func (s *Stamper) Dab(p BrushPoint) (Dab, bool) {
	r := p.Size / 2
	if !(r > 0) || !(p.Opacity > 0) {
		return Dab{}, false
	}
	return Dab{
		CenterX:   p.X,
		CenterY:   p.Y,
		Radius:    r,
		Hardness:  s.cfg.Hardness,
		Roundness: s.cfg.Roundness,
		Angle:     p.Rotation,
		Alpha:     p.Opacity,
	}, true
}

// Dabs maps samples to dabs in order, dropping those that paint nothing.
func (s *Stamper) Dabs(samples iter.Seq[InputSample]) iter.Seq[Dab] {
	return func(yield func(Dab) bool) {
		for in := range samples {
			d, ok := s.Dab(s.Point(in))
			if ok && !yield(d) {
				return
			}
		}
	}
}

// Samples resamples input with the configured interpolation mode and
// spacing. Unlike Interpolate, a Catmull-Rom stroke of two or three samples
// is stepped linearly at the same spacing.
func (s *Stamper) Samples(input []InputSample) iter.Seq[InputSample] {
	mode, spacing := s.cfg.Interpolation, s.cfg.PixelSpacing()
	return resample(input, func() *interpolator { return newStampInterpolator(mode, spacing) })
}

func (s *Stamper) gaussParams(d Dab) mask.GaussParams {
	k := paramsKey{d.Hardness, d.Radius, d.Roundness}
	return s.params.GetOrCreate(k, func() mask.GaussParams {
		return mask.NewGaussParams(d.Hardness, d.Radius, d.Roundness)
	})
}

// Mask rasterizes d into into, reusing its coverage slice, and returns it.
// A non-empty clip restricts the mask to that rectangle; the result may be
// empty. A nil into allocates a new Mask.
func (s *Stamper) Mask(d Dab, clip image.Rectangle, into *Mask) *Mask {
	if into == nil {
		into = new(Mask)
	}
	p := s.gaussParams(d)
	shape := d.shape()
	r := mask.Bounds(shape, p)
	if !clip.Empty() {
		r = r.Intersect(clip)
	}

	into.Rect = r
	n := r.Dx() * r.Dy()
	if cap(into.Cov) < n {
		into.Cov = make([]float32, n)
	}
	into.Cov = into.Cov[:n]
	if n > 0 {
		mask.Render(into.Cov, r, shape, p)
	}
	return into
}
