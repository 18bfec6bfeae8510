package ieee754

import "math"

// orderKey64 maps a binary64 bit pattern to a uint64 whose unsigned order is
// the IEEE 754-2019 section 5.10 total order. Non-negative patterns (sign
// bit clear) get the top bit set, negative patterns are bitwise inverted so
// that larger magnitudes order earlier. The mapping is a bijection, so the
// induced order ranks every bit pattern, including -0 before +0 and NaNs by
// sign and payload.
func orderKey64(v float64) uint64 {
	bits := math.Float64bits(v)
	if bits&signMask64 != 0 {
		return ^bits
	}
	return bits | signMask64
}

func orderKey32(v float32) uint32 {
	bits := math.Float32bits(v)
	if bits&signMask32 != 0 {
		return ^bits
	}
	return bits | signMask32
}

// TotalOrder reports whether x orders before or equal to y under the
// totalOrder predicate of IEEE 754-2019 section 5.10:
//
//	-quietNaN < -signalingNaN < -Inf < finite negatives < -0 < +0
//	  < finite positives < +Inf < +signalingNaN < +quietNaN
//
// with NaNs of equal sign ordered by payload. Unlike the quiet predicates
// this is reflexive, antisymmetric and transitive over all bit patterns, so
// it can drive deterministic sorting and deduplication of data containing
// NaNs and signed zeros.
func TotalOrder(x, y float64) bool {
	return orderKey64(x) <= orderKey64(y)
}

// TotalOrder32 reports whether x orders before or equal to y under
// totalOrder.
func TotalOrder32(x, y float32) bool {
	return orderKey32(x) <= orderKey32(y)
}

// TotalOrderMag reports TotalOrder(|x|, |y|), ignoring both sign bits.
func TotalOrderMag(x, y float64) bool {
	return TotalOrder(Abs(x), Abs(y))
}

// TotalOrderMag32 reports TotalOrder32(|x|, |y|), ignoring both sign bits.
func TotalOrderMag32(x, y float32) bool {
	return TotalOrder32(Abs32(x), Abs32(y))
}
