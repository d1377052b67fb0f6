package brush

import "errors"

// Configuration errors. Validate and NewStroke wrap these with the
// offending value; test with errors.Is.
var (
	ErrInvalidDiameter      = errors.New("brush: diameter must be positive and finite")
	ErrInvalidSpacing       = errors.New("brush: spacing must be positive and finite")
	ErrInvalidHardness      = errors.New("brush: hardness must be in [0, 1]")
	ErrInvalidRoundness     = errors.New("brush: roundness must be in (0, 1]")
	ErrInvalidFlow          = errors.New("brush: flow must be in [0, 1]")
	ErrInvalidOpacity       = errors.New("brush: opacity must be in [0, 1]")
	ErrInvalidBlendMode     = errors.New("brush: unknown blend mode")
	ErrInvalidCurve         = errors.New("brush: invalid pressure curve")
	ErrInvalidInterpolation = errors.New("brush: unknown interpolation mode")
	ErrInvalidColor         = errors.New("brush: invalid color")
)

// ErrStrokeDone is returned when samples are added to a stroke that has
// already ended or been cancelled.
var ErrStrokeDone = errors.New("brush: stroke already finished")
