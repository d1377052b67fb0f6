package blend

// mulDiv255 returns round(a*b/255) using Blinn's shift form, which is exact
// for all 8-bit operands.
func mulDiv255(a, b byte) byte {
	x := uint32(a)*uint32(b) + 128
	return byte((x + (x >> 8)) >> 8)
}

// addClamp adds two bytes, saturating at 255.
func addClamp(a, b byte) byte {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return byte(s)
}

// toByte converts a unit value to a byte with rounding and clamping.
func toByte(v float64) byte {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return byte(v*255 + 0.5)
}
