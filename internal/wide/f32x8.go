package wide

import "math"

// F32x8 holds eight float32 lanes.
type F32x8 [8]float32

// SplatF32 returns an F32x8 with every lane set to n.
func SplatF32(n float32) F32x8 {
	var result F32x8
	for i := range result {
		result[i] = n
	}
	return result
}

// RampF32 returns lanes start, start+step, ..., start+7*step.
// Mask rows use it to produce per-pixel x offsets.
func RampF32(start, step float32) F32x8 {
	var result F32x8
	for i := range result {
		result[i] = start + float32(i)*step
	}
	return result
}

// Add performs element-wise addition.
func (v F32x8) Add(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs element-wise subtraction.
func (v F32x8) Sub(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Mul performs element-wise multiplication.
func (v F32x8) Mul(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// MulAdd returns v*m + a lane by lane. It is the Horner step used by
// polynomial approximations.
func (v F32x8) MulAdd(m, a F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i]*m[i] + a[i]
	}
	return result
}

// Div performs element-wise division.
// Division by zero follows IEEE 754.
func (v F32x8) Div(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] / other[i]
	}
	return result
}

// Sqrt computes the square root of each lane.
func (v F32x8) Sqrt() F32x8 {
	var result F32x8
	for i := range v {
		result[i] = float32(math.Sqrt(float64(v[i])))
	}
	return result
}

// Abs returns |v| for each lane.
func (v F32x8) Abs() F32x8 {
	var result F32x8
	for i := range v {
		result[i] = float32(math.Abs(float64(v[i])))
	}
	return result
}

// Neg returns -v for each lane.
func (v F32x8) Neg() F32x8 {
	var result F32x8
	for i := range v {
		result[i] = -v[i]
	}
	return result
}

// Exp returns e**v for each lane. Very negative inputs flush to zero.
func (v F32x8) Exp() F32x8 {
	var result F32x8
	for i := range v {
		result[i] = float32(math.Exp(float64(v[i])))
	}
	return result
}

// CopySign returns lanes with the magnitude of v and the sign of sign.
func (v F32x8) CopySign(sign F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = float32(math.Copysign(float64(v[i]), float64(sign[i])))
	}
	return result
}

// Clamp clamps each lane to [minVal, maxVal].
func (v F32x8) Clamp(minVal, maxVal float32) F32x8 {
	var result F32x8
	for i := range v {
		switch {
		case v[i] < minVal:
			result[i] = minVal
		case v[i] > maxVal:
			result[i] = maxVal
		default:
			result[i] = v[i]
		}
	}
	return result
}

// Min performs element-wise minimum.
func (v F32x8) Min(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		if v[i] < other[i] {
			result[i] = v[i]
		} else {
			result[i] = other[i]
		}
	}
	return result
}

// Max performs element-wise maximum.
func (v F32x8) Max(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		if v[i] > other[i] {
			result[i] = v[i]
		} else {
			result[i] = other[i]
		}
	}
	return result
}
