package ieee754

import "math"

// Neg flips the sign bit of v and leaves every other bit untouched.
//
// Unlike the unary minus operator this is defined bit-exactly for all
// operands: Neg(0) is -0 (a distinct bit pattern that compares equal), and
// Neg of a NaN flips the observable NaN sign while preserving the payload.
func Neg(v float64) float64 {
	return math.Float64frombits(math.Float64bits(v) ^ signMask64)
}

// Neg32 flips the sign bit of v and leaves every other bit untouched.
func Neg32(v float32) float32 {
	return math.Float32frombits(math.Float32bits(v) ^ signMask32)
}

// Abs clears the sign bit of v unconditionally, preserving NaN payloads.
func Abs(v float64) float64 {
	return math.Float64frombits(math.Float64bits(v) &^ signMask64)
}

// Abs32 clears the sign bit of v unconditionally, preserving NaN payloads.
func Abs32(v float32) float32 {
	return math.Float32frombits(math.Float32bits(v) &^ signMask32)
}

// CopySign returns a value with the exponent and significand bits of mag and
// the sign bit of sign. The result is a NaN exactly when mag is a NaN; sign
// may be a signed zero, infinity or NaN and contributes only its sign bit.
func CopySign(mag, sign float64) float64 {
	return math.Float64frombits(
		math.Float64bits(mag)&^signMask64 | math.Float64bits(sign)&signMask64)
}

// CopySign32 returns a value with the magnitude bits of mag and the sign bit
// of sign.
func CopySign32(mag, sign float32) float32 {
	return math.Float32frombits(
		math.Float32bits(mag)&^signMask32 | math.Float32bits(sign)&signMask32)
}
