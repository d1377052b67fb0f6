package brush

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/gogpu/brush/internal/blend"
)

// foldName normalizes an enum name for lookup: case-folded with '-', '_'
// and spaces removed, so "Color-Dodge", "color_dodge" and "COLORDODGE"
// all match.
func foldName(s string) string {
	s = strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.TrimSpace(s))
	return cases.Fold().String(s)
}

// lookupName finds s among names by folded comparison.
func lookupName(names []string, s string) (int, bool) {
	key := foldName(s)
	for i, n := range names {
		if foldName(n) == key {
			return i, true
		}
	}
	return 0, false
}

// BlendMode selects how a finished stroke is combined with the destination.
type BlendMode uint8

// Blend modes. The zero value is Normal.
const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
)

var blendModeNames = []string{
	"normal", "multiply", "screen", "overlay", "darken", "lighten",
	"color-dodge", "color-burn", "hard-light", "soft-light", "difference", "exclusion",
}

// Valid reports whether m is one of the twelve blend modes.
func (m BlendMode) Valid() bool {
	return int(m) < len(blendModeNames)
}

func (m BlendMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("BlendMode(%d)", m)
	}
	return blendModeNames[m]
}

func (m BlendMode) internal() blend.Mode {
	return blend.Mode(m)
}

// ParseBlendMode parses a blend mode name case-insensitively, accepting
// kebab-case, snake_case or run-together forms.
func ParseBlendMode(s string) (BlendMode, error) {
	i, ok := lookupName(blendModeNames, s)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBlendMode, s)
	}
	return BlendMode(i), nil
}

// MarshalText implements encoding.TextMarshaler.
func (m BlendMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlendMode, m)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *BlendMode) UnmarshalText(text []byte) error {
	v, err := ParseBlendMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// PressureCurve selects how stylus pressure maps to size or opacity.
type PressureCurve uint8

const (
	// CurveLinear is the identity.
	CurveLinear PressureCurve = iota
	// CurveSoft is 1-(1-p)^2: more ink at low pressure.
	CurveSoft
	// CurveHard is p^2: less ink at low pressure.
	CurveHard
	// CurveCustom interpolates user control points.
	CurveCustom
)

var curveNames = []string{"linear", "soft", "hard", "custom"}

// Valid reports whether c is a known curve.
func (c PressureCurve) Valid() bool {
	return int(c) < len(curveNames)
}

func (c PressureCurve) String() string {
	if !c.Valid() {
		return fmt.Sprintf("PressureCurve(%d)", c)
	}
	return curveNames[c]
}

// MarshalText implements encoding.TextMarshaler.
func (c PressureCurve) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCurve, c)
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *PressureCurve) UnmarshalText(text []byte) error {
	i, ok := lookupName(curveNames, string(text))
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidCurve, text)
	}
	*c = PressureCurve(i)
	return nil
}

// InterpolationMode selects how input samples are resampled.
type InterpolationMode uint8

const (
	// InterpolateCatmullRom resamples along a Catmull-Rom spline.
	InterpolateCatmullRom InterpolationMode = iota
	// InterpolateLinear resamples along straight segments.
	InterpolateLinear
	// InterpolateNone stamps exactly at the input samples.
	InterpolateNone
)

var interpolationNames = []string{"catmull-rom", "linear", "none"}

// Valid reports whether m is a known interpolation mode.
func (m InterpolationMode) Valid() bool {
	return int(m) < len(interpolationNames)
}

func (m InterpolationMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("InterpolationMode(%d)", m)
	}
	return interpolationNames[m]
}

// MarshalText implements encoding.TextMarshaler.
func (m InterpolationMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidInterpolation, m)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *InterpolationMode) UnmarshalText(text []byte) error {
	i, ok := lookupName(interpolationNames, string(text))
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidInterpolation, text)
	}
	*m = InterpolationMode(i)
	return nil
}
