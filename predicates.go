package ieee754

import "math"

// The predicates below are the direct projections of Classify required by
// IEEE 754-2019 section 5.7.2. They avoid the Class allocation on hot paths.

// IsNaN reports whether v is a NaN of either flavor.
func IsNaN(v float64) bool { return v != v }

// IsNaN32 reports whether v is a NaN of either flavor.
func IsNaN32(v float32) bool { return v != v }

// IsSignaling reports whether v is a signaling NaN.
func IsSignaling(v float64) bool {
	bits := math.Float64bits(v)
	return bits&expMask64 == expMask64 && bits&fracMask64 != 0 && bits&quietBit64 == 0
}

// IsSignaling32 reports whether v is a signaling NaN.
func IsSignaling32(v float32) bool {
	bits := math.Float32bits(v)
	return bits&expMask32 == expMask32 && bits&fracMask32 != 0 && bits&quietBit32 == 0
}

// IsInfinite reports whether v is an infinity of either sign.
func IsInfinite(v float64) bool {
	return math.Float64bits(v)&^signMask64 == expMask64
}

// IsInfinite32 reports whether v is an infinity of either sign.
func IsInfinite32(v float32) bool {
	return math.Float32bits(v)&^signMask32 == expMask32
}

// IsFinite reports whether v is zero, subnormal or normal.
func IsFinite(v float64) bool {
	return math.Float64bits(v)&expMask64 != expMask64
}

// IsFinite32 reports whether v is zero, subnormal or normal.
func IsFinite32(v float32) bool {
	return math.Float32bits(v)&expMask32 != expMask32
}

// IsZero reports whether v is a zero of either sign.
func IsZero(v float64) bool {
	return math.Float64bits(v)&^signMask64 == 0
}

// IsZero32 reports whether v is a zero of either sign.
func IsZero32(v float32) bool {
	return math.Float32bits(v)&^signMask32 == 0
}

// IsSubnormal reports whether v is non-zero with an all-zero exponent field.
func IsSubnormal(v float64) bool {
	bits := math.Float64bits(v)
	return bits&expMask64 == 0 && bits&fracMask64 != 0
}

// IsSubnormal32 reports whether v is non-zero with an all-zero exponent field.
func IsSubnormal32(v float32) bool {
	bits := math.Float32bits(v)
	return bits&expMask32 == 0 && bits&fracMask32 != 0
}

// IsNormal reports whether v is finite, non-zero and not subnormal.
func IsNormal(v float64) bool {
	exp := math.Float64bits(v) & expMask64
	return exp != 0 && exp != expMask64
}

// IsNormal32 reports whether v is finite, non-zero and not subnormal.
func IsNormal32(v float32) bool {
	exp := math.Float32bits(v) & expMask32
	return exp != 0 && exp != expMask32
}

// IsSignMinus reports whether the sign bit of v is set. This is observable
// for zeros and NaNs, where ordered comparison cannot see the sign.
func IsSignMinus(v float64) bool {
	return math.Float64bits(v)&signMask64 != 0
}

// IsSignMinus32 reports whether the sign bit of v is set.
func IsSignMinus32(v float32) bool {
	return math.Float32bits(v)&signMask32 != 0
}

// IsCanonical reports whether v is canonical. Every bit pattern of a binary
// interchange format is canonical, so this is constant true; it exists for
// interface completeness with IEEE 754-2019 section 5.7.2.
func IsCanonical(v float64) bool { return true }

// IsCanonical32 reports whether v is canonical. Always true for binary32.
func IsCanonical32(v float32) bool { return true }

// Radix returns the radix of the binary formats, which is 2.
func Radix() int { return 2 }
