package brush

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the immutable brush snapshot a stroke is rendered with.
// Changing brush settings requires a new stroke.
type Config struct {
	// Diameter is the base dab diameter in pixels.
	Diameter float64 `toml:"diameter"`
	// Spacing is the distance between dabs as a fraction of Diameter.
	Spacing float64 `toml:"spacing"`
	// Hardness in [0, 1]; 1 is a hard-edged disc, 0 the softest falloff.
	Hardness float64 `toml:"hardness"`
	// Roundness in (0, 1] scales the minor axis of the dab.
	Roundness float64 `toml:"roundness"`
	// Angle is the fixed dab rotation in radians, used when ShapeDynamics
	// is off.
	Angle float64 `toml:"angle"`
	// Flow scales every dab and accumulates within the stroke.
	Flow float64 `toml:"flow"`
	// Opacity caps the finished stroke.
	Opacity float64 `toml:"opacity"`

	SizePressure    bool `toml:"size_pressure"`
	OpacityPressure bool `toml:"opacity_pressure"`
	// ShapeDynamics rotates dabs to follow the stylus tilt.
	ShapeDynamics bool `toml:"shape_dynamics"`

	SizeCurve    CurveConfig `toml:"size_curve"`
	OpacityCurve CurveConfig `toml:"opacity_curve"`

	Color         RGBA              `toml:"color"`
	BlendMode     BlendMode         `toml:"blend_mode"`
	Interpolation InterpolationMode `toml:"interpolation"`
}

// DefaultConfig returns a 20 px hard black round brush with pressure
// controlling size and opacity.
func DefaultConfig() Config {
	return Config{
		Diameter:        20,
		Spacing:         0.25,
		Hardness:        1,
		Roundness:       1,
		Flow:            1,
		Opacity:         1,
		SizePressure:    true,
		OpacityPressure: true,
		SizeCurve:       CurveConfig{Kind: CurveLinear},
		OpacityCurve:    CurveConfig{Kind: CurveLinear},
		Color:           Black,
		BlendMode:       BlendNormal,
		Interpolation:   InterpolateCatmullRom,
	}
}

// PixelSpacing returns the dab spacing in pixels.
func (c Config) PixelSpacing() float64 {
	return c.Spacing * c.Diameter
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func in01(v float64) bool {
	return v >= 0 && v <= 1
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case !(c.Diameter > 0) || !finite(c.Diameter):
		return fmt.Errorf("%w: got %g", ErrInvalidDiameter, c.Diameter)
	case !(c.Spacing > 0) || !finite(c.Spacing):
		return fmt.Errorf("%w: got %g", ErrInvalidSpacing, c.Spacing)
	case !in01(c.Hardness):
		return fmt.Errorf("%w: got %g", ErrInvalidHardness, c.Hardness)
	case !(c.Roundness > 0 && c.Roundness <= 1):
		return fmt.Errorf("%w: got %g", ErrInvalidRoundness, c.Roundness)
	case !in01(c.Flow):
		return fmt.Errorf("%w: got %g", ErrInvalidFlow, c.Flow)
	case !in01(c.Opacity):
		return fmt.Errorf("%w: got %g", ErrInvalidOpacity, c.Opacity)
	case !c.BlendMode.Valid():
		return fmt.Errorf("%w: %d", ErrInvalidBlendMode, c.BlendMode)
	case !c.Interpolation.Valid():
		return fmt.Errorf("%w: %d", ErrInvalidInterpolation, c.Interpolation)
	case !c.Color.valid():
		return fmt.Errorf("%w: %+v", ErrInvalidColor, c.Color)
	case !finite(c.Angle):
		return fmt.Errorf("brush: angle must be finite, got %g", c.Angle)
	}
	if err := c.SizeCurve.validate(); err != nil {
		return fmt.Errorf("size curve: %w", err)
	}
	if err := c.OpacityCurve.validate(); err != nil {
		return fmt.Errorf("opacity curve: %w", err)
	}
	return nil
}

// DecodeConfig reads a TOML brush description. Fields missing from the
// document keep their DefaultConfig values; unknown keys are an error.
// The result is validated.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("brush: decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("brush: unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a TOML brush description from path.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("brush: open config: %w", err)
	}
	defer f.Close()
	return DecodeConfig(f)
}

// EncodeConfig writes cfg as TOML.
func EncodeConfig(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}
