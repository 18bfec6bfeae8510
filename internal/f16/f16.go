// Package f16 converts between float32 and the IEEE-754 binary16 bit
// pattern. It backs the binary16 path of the wire package: decoding a
// binary16 byte sequence widens exactly into float32; encoding narrows with
// round-to-nearest, ties-to-even.
package f16

import (
	"math"
)

// Bits is the raw IEEE-754 binary16 bit pattern.
//
// Layout:
//
//	sign: 1 bit
//	exp:  5 bits (bias 15)
//	frac: 10 bits
type Bits uint16

const (
	signMask Bits = 0x8000
	expMask  Bits = 0x7C00
	fracMask Bits = 0x03FF

	quietBit Bits = 0x0200

	f32ExpMask  uint32 = 0x7F800000
	f32FracMask uint32 = 0x007FFFFF
)

// ToFloat32 widens a binary16 bit pattern to float32. The conversion is
// exact for every pattern: binary32 represents all binary16 values,
// including subnormals, and NaN payloads shift left into the wider fraction
// with the quiet bit position preserved.
func ToFloat32(h Bits) float32 {
	sign := uint32(h&signMask) << 16
	exp := uint32(h&expMask) >> 10
	frac := uint32(h & fracMask)

	switch exp {
	case 0:
		if frac == 0 {
			return math.Float32frombits(sign)
		}
		// Subnormal: normalize the fraction. Binary16 subnormals have a
		// true exponent of -14 and no implicit leading 1.
		e := int32(-14)
		m := frac
		for (m & 0x0400) == 0 {
			m <<= 1
			e--
		}
		m &= 0x03FF // strip leading 1
		f32Exp := uint32(int32(127)+e) << 23
		f32Frac := m << 13
		return math.Float32frombits(sign | f32Exp | f32Frac)
	case 0x1F:
		// Inf/NaN
		if frac == 0 {
			return math.Float32frombits(sign | f32ExpMask)
		}
		return math.Float32frombits(sign | f32ExpMask | (frac << 13))
	default:
		// Normalized
		f32Exp := uint32(int32(exp)-15+127) << 23
		f32Frac := frac << 13
		return math.Float32frombits(sign | f32Exp | f32Frac)
	}
}

// FromFloat32 narrows a float32 to a binary16 bit pattern, rounding to
// nearest, ties to even. Values beyond the binary16 range become infinity;
// values below the subnormal range become signed zero. NaN-ness is always
// preserved; the payload keeps its top bits and is forced quiet and
// non-zero so a NaN never collapses into infinity.
func FromFloat32(f float32) Bits {
	bits := math.Float32bits(f)
	sign := Bits((bits >> 16) & uint32(signMask))
	exp := int32((bits & f32ExpMask) >> 23)
	frac := bits & f32FracMask

	// NaN / Inf
	if exp == 0xFF {
		if frac == 0 {
			return sign | expMask // infinity
		}
		payload := Bits(frac >> 13)
		if payload == 0 {
			payload = 1
		}
		payload |= quietBit
		return sign | expMask | (payload & fracMask)
	}

	// Zero, and float32 subnormals, which are below binary16's subnormal
	// range and underflow to zero.
	if exp == 0 {
		return sign
	}

	// Re-bias exponent from float32 (127) to binary16 (15).
	e16 := exp - 127 + 15

	// Overflow -> Inf
	if e16 >= 0x1F {
		return sign | expMask
	}

	// Underflow -> subnormal/zero
	if e16 <= 0 {
		// Too small even for subnormal.
		if e16 < -10 {
			return sign
		}
		// Make the implicit leading 1 explicit.
		mant := frac | 0x00800000
		// Shift so that we end up with a 10-bit mantissa.
		shift := uint32(1-e16) + 13
		m := mant >> shift
		remainder := mant & ((uint32(1) << shift) - 1)
		half := uint32(1) << (shift - 1)
		if remainder > half || (remainder == half && (m&1) == 1) {
			m++
		}
		return sign | Bits(m)
	}

	// Normal case: convert fraction (23 bits) -> (10 bits) with rounding.
	m := frac >> 13
	remainder := frac & 0x1FFF
	if remainder > 0x1000 || (remainder == 0x1000 && (m&1) == 1) {
		m++
		if m == 0x0400 {
			// Mantissa overflow; carry into exponent.
			m = 0
			e16++
			if e16 >= 0x1F {
				return sign | expMask
			}
		}
	}

	return sign | Bits(uint32(e16)<<10) | Bits(m)
}

// IsNaN reports whether h encodes a NaN.
func IsNaN(h Bits) bool {
	return h&expMask == expMask && h&fracMask != 0
}
