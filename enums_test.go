package brush

import (
	"errors"
	"testing"

	"github.com/gogpu/brush/internal/blend"
)

func TestParseBlendMode(t *testing.T) {
	tests := []struct {
		in   string
		want BlendMode
	}{
		{"normal", BlendNormal},
		{"Multiply", BlendMultiply},
		{"color-dodge", BlendColorDodge},
		{"Color_Burn", BlendColorBurn},
		{"HARDLIGHT", BlendHardLight},
		{" soft light ", BlendSoftLight},
		{"exclusion", BlendExclusion},
	}
	for _, tt := range tests {
		got, err := ParseBlendMode(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseBlendMode(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseBlendMode("luminosity"); !errors.Is(err, ErrInvalidBlendMode) {
		t.Errorf("unknown mode error = %v", err)
	}
}

func TestBlendModeTextRoundTrip(t *testing.T) {
	for m := BlendNormal; m <= BlendExclusion; m++ {
		text, err := m.MarshalText()
		if err != nil {
			t.Fatalf("%d: %v", m, err)
		}
		var back BlendMode
		if err := back.UnmarshalText(text); err != nil || back != m {
			t.Errorf("%s round-tripped to %v (%v)", text, back, err)
		}
		if blend.Mode(m) != m.internal() || !m.internal().Valid() {
			t.Errorf("%v does not map to a blend function", m)
		}
	}
	if _, err := BlendMode(12).MarshalText(); err == nil {
		t.Error("MarshalText accepted an invalid mode")
	}
}

func TestInterpolationModeText(t *testing.T) {
	var m InterpolationMode
	for in, want := range map[string]InterpolationMode{
		"catmull-rom": InterpolateCatmullRom,
		"CatmullRom":  InterpolateCatmullRom,
		"linear":      InterpolateLinear,
		"None":        InterpolateNone,
	} {
		if err := m.UnmarshalText([]byte(in)); err != nil || m != want {
			t.Errorf("UnmarshalText(%q) = %v, %v; want %v", in, m, err, want)
		}
	}
	if err := m.UnmarshalText([]byte("bezier")); !errors.Is(err, ErrInvalidInterpolation) {
		t.Errorf("error = %v, want ErrInvalidInterpolation", err)
	}
}

func TestPressureCurveText(t *testing.T) {
	var c PressureCurve
	if err := c.UnmarshalText([]byte("SOFT")); err != nil || c != CurveSoft {
		t.Errorf("UnmarshalText(SOFT) = %v, %v", c, err)
	}
	if err := c.UnmarshalText([]byte("sigmoid")); !errors.Is(err, ErrInvalidCurve) {
		t.Errorf("error = %v, want ErrInvalidCurve", err)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#000", RGBA{0, 0, 0, 1}},
		{"fff8", RGBA{1, 1, 1, 136.0 / 255}},
		{"#ff0000", RGBA{1, 0, 0, 1}},
		{"#00ff0080", RGBA{0, 1, 0, 128.0 / 255}},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseHex(%q) = %+v, %v; want %+v", tt.in, got, err, tt.want)
		}
	}
	for _, bad := range []string{"", "#12", "#gggggg", "#1234567"} {
		if _, err := ParseHex(bad); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseHex(%q) error = %v", bad, err)
		}
	}
	if got := (RGBA{1, 0.5, 0, 1}).Hex(); got != "#ff8000ff" {
		t.Errorf("Hex = %q", got)
	}
}
