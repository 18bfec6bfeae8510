package ieee754

import "math"

// Kind is the number-class discriminator of a floating-point value.
type Kind uint8

const (
	// KindSignalingNaN is a NaN with the quiet bit clear.
	KindSignalingNaN Kind = iota
	// KindQuietNaN is a NaN with the quiet bit set.
	KindQuietNaN
	// KindInfinite is an infinity of either sign.
	KindInfinite
	// KindNormal is a finite value with a non-zero, non-saturated exponent field.
	KindNormal
	// KindSubnormal is a non-zero value with an all-zero exponent field.
	KindSubnormal
	// KindZero is a zero of either sign.
	KindZero
)

// String returns the class name used by IEEE 754-2019 section 5.7.2.
func (k Kind) String() string {
	switch k {
	case KindSignalingNaN:
		return "signalingNaN"
	case KindQuietNaN:
		return "quietNaN"
	case KindInfinite:
		return "infinity"
	case KindNormal:
		return "normal"
	case KindSubnormal:
		return "subnormal"
	case KindZero:
		return "zero"
	default:
		return "unknown"
	}
}

// Class is the classification of a single floating-point value.
//
// Negative records the sign bit for every kind, including NaNs. IEEE 754
// collapses the NaN sign in its 10-way partition; it is kept here because it
// is observable (via IsSignMinus) and useful in diagnostics.
type Class struct {
	Kind     Kind
	Negative bool
}

// String returns e.g. "negative zero" or "positive quietNaN".
func (c Class) String() string {
	if c.Negative {
		return "negative " + c.Kind.String()
	}
	return "positive " + c.Kind.String()
}

// Classify returns the number class of v.
//
// NaN must be tested before infinity: both have an all-ones exponent field
// and only the fraction distinguishes them. Zero must be tested before
// subnormal: both have an all-zero exponent field.
func Classify(v float64) Class {
	bits := math.Float64bits(v)
	neg := bits&signMask64 != 0
	exp := bits & expMask64
	frac := bits & fracMask64

	switch {
	case exp == expMask64 && frac != 0:
		if frac&quietBit64 != 0 {
			return Class{Kind: KindQuietNaN, Negative: neg}
		}
		return Class{Kind: KindSignalingNaN, Negative: neg}
	case exp == expMask64:
		return Class{Kind: KindInfinite, Negative: neg}
	case exp == 0 && frac == 0:
		return Class{Kind: KindZero, Negative: neg}
	case exp == 0:
		return Class{Kind: KindSubnormal, Negative: neg}
	default:
		return Class{Kind: KindNormal, Negative: neg}
	}
}

// Classify32 returns the number class of v.
func Classify32(v float32) Class {
	bits := math.Float32bits(v)
	neg := bits&signMask32 != 0
	exp := bits & expMask32
	frac := bits & fracMask32

	switch {
	case exp == expMask32 && frac != 0:
		if frac&quietBit32 != 0 {
			return Class{Kind: KindQuietNaN, Negative: neg}
		}
		return Class{Kind: KindSignalingNaN, Negative: neg}
	case exp == expMask32:
		return Class{Kind: KindInfinite, Negative: neg}
	case exp == 0 && frac == 0:
		return Class{Kind: KindZero, Negative: neg}
	case exp == 0:
		return Class{Kind: KindSubnormal, Negative: neg}
	default:
		return Class{Kind: KindNormal, Negative: neg}
	}
}
