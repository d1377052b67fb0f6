package mask

import (
	"math"
	"testing"
)

func TestNewGaussParams(t *testing.T) {
	tests := []struct {
		name      string
		hardness  float64
		roundness float64
		wantFade  float64
		wantYCoef float64
	}{
		{"soft", 0, 1, 2, 1},
		{"medium", 0.5, 1, 1, 1},
		{"hard clamps fade", 1, 1, minFade, 1},
		{"beyond hard", 1.5, 1, minFade, 1},
		{"beyond soft", -1, 1, maxFade, 1},
		{"ellipse", 0.5, 0.5, 1, 2},
		{"degenerate roundness", 0.5, 0, 1, 1 / minRoundness},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewGaussParams(tt.hardness, 10, tt.roundness)
			if math.Abs(p.Fade-tt.wantFade) > 1e-12 {
				t.Errorf("Fade = %g, want %g", p.Fade, tt.wantFade)
			}
			if math.Abs(p.YCoef-tt.wantYCoef) > 1e-9 {
				t.Errorf("YCoef = %g, want %g", p.YCoef, tt.wantYCoef)
			}
			if p.DistFactor <= 0 || math.IsInf(p.AlphaFactor, 0) || math.IsNaN(p.AlphaFactor) {
				t.Errorf("bad coefficients %+v", p)
			}
		})
	}
}

func TestCoverageIsOneAtCenter(t *testing.T) {
	// 0.2604... puts the raw center coefficient at zero.
	for _, h := range []float64{0, 0.1, 1 - gaussBase/gaussK/2, 0.5, 0.9, 1} {
		p := NewGaussParams(h, 8, 1)
		if got := p.CoverageAt(0); math.Abs(got-1) > 1e-6 {
			t.Errorf("hardness %g: coverage at center = %g, want 1", h, got)
		}
	}
}

func TestCoverageFallsOff(t *testing.T) {
	for _, h := range []float64{0, 0.3, 0.7} {
		p := NewGaussParams(h, 10, 1)
		prev := p.CoverageAt(0)
		for d := 0.5; d < 40; d += 0.5 {
			c := p.CoverageAt(d)
			if c > prev+1e-9 {
				t.Fatalf("hardness %g: coverage rises from %g to %g at %g", h, prev, c, d)
			}
			if math.IsNaN(c) || c < 0 || c > 1 {
				t.Fatalf("hardness %g: coverage %g out of range at %g", h, c, d)
			}
			prev = c
		}
	}
}

func TestHardDabIsDisc(t *testing.T) {
	p := NewGaussParams(1, 10, 1)
	if got := p.CoverageAt(9); got < 0.999 {
		t.Errorf("coverage inside = %g, want 1", got)
	}
	if got := p.CoverageAt(11); got > 0.001 {
		t.Errorf("coverage outside = %g, want 0", got)
	}
}

func TestCoverageRadialSymmetry(t *testing.T) {
	p := NewGaussParams(0.4, 12, 1)
	for dx := 0.5; dx < 20; dx += 1.5 {
		for dy := 0.5; dy < 20; dy += 2.5 {
			c := p.Coverage(dx, dy, 0)
			for _, o := range [][2]float64{{-dx, dy}, {dx, -dy}, {-dx, -dy}, {dy, dx}} {
				if got := p.Coverage(o[0], o[1], 0); math.Abs(got-c) > 1e-12 {
					t.Fatalf("coverage(%g,%g) = %g, coverage(%g,%g) = %g", dx, dy, c, o[0], o[1], got)
				}
			}
		}
	}
}

func TestCoverageEllipse(t *testing.T) {
	p := NewGaussParams(0.5, 10, 0.5)
	major := p.Coverage(7.5, 0, 0)
	minor := p.Coverage(0, 7.5, 0)
	if minor >= major {
		t.Errorf("minor axis coverage %g >= major axis coverage %g", minor, major)
	}

	// Rotating by 90 degrees swaps the axes.
	if got := p.Coverage(0, 7.5, math.Pi/2); math.Abs(got-major) > 1e-9 {
		t.Errorf("rotated minor = %g, want %g", got, major)
	}
}
