package ieee754

// Bit-field masks for the binary64 and binary32 interchange formats.
//
// Layout (binary64):
//
//	sign: 1 bit
//	exp:  11 bits (bias 1023)
//	frac: 52 bits
//
// Layout (binary32):
//
//	sign: 1 bit
//	exp:  8 bits (bias 127)
//	frac: 23 bits
//
// The quiet bit is the most-significant fraction bit: 1 = quiet NaN,
// 0 = signaling NaN (when the remaining fraction is non-zero).
const (
	signMask64    uint64 = 0x8000000000000000
	expMask64     uint64 = 0x7FF0000000000000
	fracMask64    uint64 = 0x000FFFFFFFFFFFFF
	quietBit64    uint64 = 0x0008000000000000
	payloadMask64        = fracMask64 &^ quietBit64

	signMask32    uint32 = 0x80000000
	expMask32     uint32 = 0x7F800000
	fracMask32    uint32 = 0x007FFFFF
	quietBit32    uint32 = 0x00400000
	payloadMask32        = fracMask32 &^ quietBit32
)
