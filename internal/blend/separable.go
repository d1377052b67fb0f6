package blend

import "math"

// separable lifts a per-channel function B(Cs, Cb) on unpremultiplied unit
// values into a premultiplied RGBA8 blend function.
func separable(b func(cs, cb float64) float64) Func {
	return func(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
		if sa == 0 {
			return dr, dg, db, da
		}
		if da == 0 {
			return sr, sg, sb, sa
		}

		as := float64(sa) / 255
		ad := float64(da) / 255
		both := as * ad

		channel := func(s, d byte) byte {
			ps := float64(s) / 255
			pd := float64(d) / 255
			cs := min(ps/as, 1)
			cb := min(pd/ad, 1)
			return toByte((1-as)*pd + (1-ad)*ps + both*b(cs, cb))
		}

		return channel(sr, dr), channel(sg, dg), channel(sb, db), toByte(as + ad - both)
	}
}

func multiply(cs, cb float64) float64 { return cs * cb }

func screen(cs, cb float64) float64 { return cs + cb - cs*cb }

func overlay(cs, cb float64) float64 { return hardLight(cb, cs) }

func hardLight(cs, cb float64) float64 {
	if cs <= 0.5 {
		return multiply(cb, 2*cs)
	}
	return screen(cb, 2*cs-1)
}

func darken(cs, cb float64) float64 { return min(cs, cb) }

func lighten(cs, cb float64) float64 { return max(cs, cb) }

func colorDodge(cs, cb float64) float64 {
	switch {
	case cb == 0:
		return 0
	case cs >= 1:
		return 1
	}
	return min(1, cb/(1-cs))
}

func colorBurn(cs, cb float64) float64 {
	switch {
	case cb >= 1:
		return 1
	case cs <= 0:
		return 0
	}
	return 1 - min(1, (1-cb)/cs)
}

func softLight(cs, cb float64) float64 {
	if cs <= 0.5 {
		return cb - (1-2*cs)*cb*(1-cb)
	}
	var d float64
	if cb <= 0.25 {
		d = ((16*cb-12)*cb + 4) * cb
	} else {
		d = math.Sqrt(cb)
	}
	return cb + (2*cs-1)*(d-cb)
}

func difference(cs, cb float64) float64 { return math.Abs(cs - cb) }

func exclusion(cs, cb float64) float64 { return cs + cb - 2*cs*cb }
