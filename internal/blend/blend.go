// Package blend implements the per-pixel blend functions used when a
// finished stroke is composited onto its destination.
//
// All functions work on premultiplied RGBA8 values. The separable modes
// follow W3C Compositing and Blending Level 1:
//
//	Co = (1 - Sa)*D + (1 - Da)*S + Sa*Da*B(Cs, Cb)
//	Ao = Sa + Da - Sa*Da
//
// where B operates on unpremultiplied channels. A source pixel with zero
// alpha leaves the destination byte-identical in every mode.
//
// References:
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode selects a blend function.
type Mode uint8

const (
	ModeNormal     Mode = iota // S + D*(1-Sa)
	ModeMultiply               // Cs * Cb
	ModeScreen                 // Cs + Cb - Cs*Cb
	ModeOverlay                // HardLight with layers swapped
	ModeDarken                 // min(Cs, Cb)
	ModeLighten                // max(Cs, Cb)
	ModeColorDodge             // Cb / (1 - Cs)
	ModeColorBurn              // 1 - (1 - Cb) / Cs
	ModeHardLight              // Multiply or Screen depending on Cs
	ModeSoftLight              // soft version of HardLight
	ModeDifference             // |Cs - Cb|
	ModeExclusion              // Cs + Cb - 2*Cs*Cb

	modeCount
)

// Valid reports whether m names a blend function.
func (m Mode) Valid() bool {
	return m < modeCount
}

// Func blends one premultiplied source pixel into one premultiplied
// destination pixel and returns the new destination.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

var funcs = [modeCount]Func{
	ModeNormal:     normal,
	ModeMultiply:   separable(multiply),
	ModeScreen:     separable(screen),
	ModeOverlay:    separable(overlay),
	ModeDarken:     separable(darken),
	ModeLighten:    separable(lighten),
	ModeColorDodge: separable(colorDodge),
	ModeColorBurn:  separable(colorBurn),
	ModeHardLight:  separable(hardLight),
	ModeSoftLight:  separable(softLight),
	ModeDifference: separable(difference),
	ModeExclusion:  separable(exclusion),
}

// FuncFor returns the blend function for m, or Normal for unknown modes.
func FuncFor(m Mode) Func {
	if !m.Valid() {
		return normal
	}
	return funcs[m]
}
