// Package format describes the bit layout of the IEEE 754-2019 binary
// interchange formats. It is pure data: the codec in the wire package and
// the operations in the root package hard-code these layouts for speed, and
// this package exists so callers (and tests) can reason about field widths
// without re-deriving them.
package format

// Format is the layout of one binary interchange format.
type Format struct {
	// Name is the interchange-format name, e.g. "binary64".
	Name string
	// Bits is the total encoding width in bits; Bytes is Bits/8.
	Bits  int
	Bytes int
	// SignBits is always 1 for the binary formats.
	SignBits int
	// ExponentBits is the width of the biased-exponent field.
	ExponentBits int
	// SignificandBits is the width of the stored fraction field, excluding
	// the implicit leading bit.
	SignificandBits int
	// Bias is the exponent bias: true exponent = stored exponent - Bias.
	Bias int
	// MinExponent and MaxExponent are the true exponent range of normal
	// values (emin and emax).
	MinExponent int
	MaxExponent int
	// Epsilon is 2^-SignificandBits, the gap between 1 and the next
	// representable value, expressed as a float64.
	Epsilon float64
	// DecimalDigits is the count of decimal digits that survive a
	// round trip through the format (C's FLT_DIG family).
	DecimalDigits int
}

// String returns the interchange-format name.
func (f Format) String() string { return f.Name }

// QuietBit returns the position (from bit 0) of the quiet/signaling NaN
// discriminator, the most-significant fraction bit.
func (f Format) QuietBit() int { return f.SignificandBits - 1 }

// PayloadBits returns the number of NaN payload bits below the quiet bit.
func (f Format) PayloadBits() int { return f.SignificandBits - 1 }

var (
	// Binary16 is the half-precision interchange format.
	Binary16 = Format{
		Name:            "binary16",
		Bits:            16,
		Bytes:           2,
		SignBits:        1,
		ExponentBits:    5,
		SignificandBits: 10,
		Bias:            15,
		MinExponent:     -14,
		MaxExponent:     15,
		Epsilon:         0x1p-10,
		DecimalDigits:   3,
	}

	// Binary32 is the single-precision interchange format.
	Binary32 = Format{
		Name:            "binary32",
		Bits:            32,
		Bytes:           4,
		SignBits:        1,
		ExponentBits:    8,
		SignificandBits: 23,
		Bias:            127,
		MinExponent:     -126,
		MaxExponent:     127,
		Epsilon:         0x1p-23,
		DecimalDigits:   6,
	}

	// Binary64 is the double-precision interchange format.
	Binary64 = Format{
		Name:            "binary64",
		Bits:            64,
		Bytes:           8,
		SignBits:        1,
		ExponentBits:    11,
		SignificandBits: 52,
		Bias:            1023,
		MinExponent:     -1022,
		MaxExponent:     1023,
		Epsilon:         0x1p-52,
		DecimalDigits:   15,
	}

	// Binary128 is the quad-precision interchange format. Constants only:
	// Go has no native binary128 type, so the wire package offers no codec
	// for it.
	Binary128 = Format{
		Name:            "binary128",
		Bits:            128,
		Bytes:           16,
		SignBits:        1,
		ExponentBits:    15,
		SignificandBits: 112,
		Bias:            16383,
		MinExponent:     -16382,
		MaxExponent:     16383,
		Epsilon:         0x1p-112,
		DecimalDigits:   33,
	}
)

// All lists the described formats, narrowest first.
var All = []Format{Binary16, Binary32, Binary64, Binary128}
