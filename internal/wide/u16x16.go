package wide

// U16x16 holds sixteen uint16 lanes, wide enough for 8-bit channel products.
type U16x16 [16]uint16

// SplatU16 returns a U16x16 with every lane set to n.
func SplatU16(n uint16) U16x16 {
	var result U16x16
	for i := range result {
		result[i] = n
	}
	return result
}

// Add performs element-wise addition.
func (v U16x16) Add(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Inv computes 255 - v for each lane.
func (v U16x16) Inv() U16x16 {
	var result U16x16
	for i := range v {
		result[i] = 255 - v[i]
	}
	return result
}

// MulDiv255 computes round(v*other/255) for each lane.
// With x = a*b + 128 the shift form (x + (x >> 8)) >> 8 is the correctly
// rounded quotient for every product of two 8-bit values, so batch results
// match the scalar blend functions bit for bit.
func (v U16x16) MulDiv255(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		x := uint32(v[i])*uint32(other[i]) + 128
		result[i] = uint16((x + (x >> 8)) >> 8) // #nosec G115
	}
	return result
}

// Clamp clamps each lane to [0, maxVal].
func (v U16x16) Clamp(maxVal uint16) U16x16 {
	var result U16x16
	for i := range v {
		if v[i] > maxVal {
			result[i] = maxVal
		} else {
			result[i] = v[i]
		}
	}
	return result
}
