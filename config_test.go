package brush

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.PixelSpacing() != 5 {
		t.Errorf("PixelSpacing = %g, want 5", cfg.PixelSpacing())
	}
	if cfg.BlendMode != BlendNormal || cfg.Interpolation != InterpolateCatmullRom {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"zero diameter", func(c *Config) { c.Diameter = 0 }, ErrInvalidDiameter},
		{"inf diameter", func(c *Config) { c.Diameter = math.Inf(1) }, ErrInvalidDiameter},
		{"zero spacing", func(c *Config) { c.Spacing = 0 }, ErrInvalidSpacing},
		{"NaN spacing", func(c *Config) { c.Spacing = math.NaN() }, ErrInvalidSpacing},
		{"hardness above 1", func(c *Config) { c.Hardness = 1.01 }, ErrInvalidHardness},
		{"zero roundness", func(c *Config) { c.Roundness = 0 }, ErrInvalidRoundness},
		{"negative flow", func(c *Config) { c.Flow = -0.1 }, ErrInvalidFlow},
		{"opacity above 1", func(c *Config) { c.Opacity = 2 }, ErrInvalidOpacity},
		{"blend mode", func(c *Config) { c.BlendMode = 40 }, ErrInvalidBlendMode},
		{"interpolation", func(c *Config) { c.Interpolation = 7 }, ErrInvalidInterpolation},
		{"color", func(c *Config) { c.Color.A = 1.5 }, ErrInvalidColor},
		{"size curve", func(c *Config) { c.SizeCurve.Kind = 9 }, ErrInvalidCurve},
		{"opacity curve point", func(c *Config) {
			c.OpacityCurve = CurveConfig{Kind: CurveCustom, Points: []CurvePoint{{X: -1, Y: 0}}}
		}, ErrInvalidCurve},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
			if _, err := NewStamper(cfg); !errors.Is(err, tt.want) {
				t.Errorf("NewStamper() = %v, want %v", err, tt.want)
			}
		})
	}
}

const sampleConfig = `
diameter = 32.0
spacing = 0.1
hardness = 0.4
roundness = 0.5
angle = 0.25
flow = 0.8
opacity = 0.3
size_pressure = true
opacity_pressure = false
shape_dynamics = true
color = "#3366ff"
blend_mode = "Color-Dodge"
interpolation = "linear"

[size_curve]
kind = "custom"
points = [{x = 0.0, y = 0.2}, {x = 1.0, y = 1.0}]

[opacity_curve]
kind = "soft"
`

func TestDecodeConfig(t *testing.T) {
	cfg, err := DecodeConfig(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		Diameter:        32,
		Spacing:         0.1,
		Hardness:        0.4,
		Roundness:       0.5,
		Angle:           0.25,
		Flow:            0.8,
		Opacity:         0.3,
		SizePressure:    true,
		OpacityPressure: false,
		ShapeDynamics:   true,
		SizeCurve: CurveConfig{
			Kind:   CurveCustom,
			Points: []CurvePoint{{X: 0, Y: 0.2}, {X: 1, Y: 1}},
		},
		OpacityCurve:  CurveConfig{Kind: CurveSoft},
		Color:         RGBA{R: 0x33 / 255.0, G: 0x66 / 255.0, B: 1, A: 1},
		BlendMode:     BlendColorDodge,
		Interpolation: InterpolateLinear,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("DecodeConfig mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeConfigKeepsDefaults(t *testing.T) {
	cfg, err := DecodeConfig(strings.NewReader("hardness = 0.5\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultConfig()
	want.Hardness = 0.5
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown key", "diameter = 10.0\nwobble = 3\n", nil},
		{"syntax", "diameter = = 1", nil},
		{"bad blend", `blend_mode = "plasma"`, nil},
		{"bad color", `color = "#12"`, nil},
		{"invalid value", "spacing = -1.0", ErrInvalidSpacing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeConfig(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("DecodeConfig succeeded")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestUnknownKeyNamed(t *testing.T) {
	_, err := DecodeConfig(strings.NewReader("wobble = 3\n"))
	if err == nil || !strings.Contains(err.Error(), "wobble") {
		t.Errorf("error %v should name the unknown key", err)
	}
}

func TestEncodeLoadRoundTrip(t *testing.T) {
	cfg, err := DecodeConfig(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := EncodeConfig(&buf, cfg); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "brush.toml")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}
	back, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v\n%s", err, buf.String())
	}
	// Colors pass through 8-bit hex.
	if diff := cmp.Diff(cfg, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("LoadConfig of a missing file succeeded")
	}
}
