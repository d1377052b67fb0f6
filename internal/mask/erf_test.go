package mask

import (
	"math"
	"testing"

	"github.com/gogpu/brush/internal/wide"
)

func TestErfAccuracy(t *testing.T) {
	const bound = 1.5e-7
	worst := 0.0
	for x := -6.0; x <= 6.0; x += 0.001 {
		if d := math.Abs(Erf(x) - math.Erf(x)); d > worst {
			worst = d
		}
	}
	if worst > bound {
		t.Errorf("max |Erf - math.Erf| = %g, want <= %g", worst, bound)
	}
}

func TestErfKnownValues(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{0, 0},
		{1, 0.8427007929},
		{-1, -0.8427007929},
		{3, 0.9999779095},
		{1e7, 1},
		{-1e7, -1},
	}
	for _, tt := range tests {
		if got := Erf(tt.x); math.Abs(got-tt.want) > 1.5e-7 {
			t.Errorf("Erf(%g) = %.10f, want %.10f", tt.x, got, tt.want)
		}
	}
}

func TestErf8MatchesScalar(t *testing.T) {
	for base := -5.0; base < 5.0; base += 0.8 {
		var x wide.F32x8
		for i := range x {
			x[i] = float32(base + float64(i)*0.1)
		}
		got := erf8(x)
		for i := range x {
			want := Erf(float64(x[i]))
			if d := math.Abs(float64(got[i]) - want); d > 2e-6 {
				t.Errorf("erf8(%v) = %v, want %v", x[i], got[i], want)
			}
		}
	}
}

func BenchmarkErf(b *testing.B) {
	x := 0.0
	for i := 0; i < b.N; i++ {
		x += Erf(float64(i%100) * 0.03)
	}
	_ = x
}
