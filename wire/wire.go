package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/ieee754/internal/f16"
)

// ErrInvalidLength is returned by the decoders when the input length does
// not equal the format's byte width exactly.
var ErrInvalidLength = errors.New("wire: invalid length")

// Byte widths of the supported interchange formats.
const (
	SizeFloat16 = 2
	SizeFloat32 = 4
	SizeFloat64 = 8
)

// ByteOrder selects the byte permutation of an encoding. The documented
// convention for this module's own frames is little-endian.
type ByteOrder uint8

const (
	// LittleEndian stores the least-significant byte first.
	LittleEndian ByteOrder = iota
	// BigEndian stores the most-significant byte first.
	BigEndian
)

// String returns "little" or "big".
func (o ByteOrder) String() string {
	switch o {
	case LittleEndian:
		return "little"
	case BigEndian:
		return "big"
	default:
		return "unknown"
	}
}

func (o ByteOrder) order() interface {
	binary.ByteOrder
	binary.AppendByteOrder
} {
	switch o {
	case LittleEndian:
		return binary.LittleEndian
	case BigEndian:
		return binary.BigEndian
	default:
		panic(fmt.Sprintf("wire: invalid byte order %d", o))
	}
}

// AppendFloat64 appends the 8-byte binary64 encoding of v to dst.
func AppendFloat64(dst []byte, v float64, o ByteOrder) []byte {
	return o.order().AppendUint64(dst, math.Float64bits(v))
}

// PutFloat64 writes the binary64 encoding of v into b[0:8]. It panics if b
// is shorter than 8 bytes.
func PutFloat64(b []byte, v float64, o ByteOrder) {
	o.order().PutUint64(b, math.Float64bits(v))
}

// EncodeFloat64 returns the 8-byte binary64 encoding of v.
func EncodeFloat64(v float64, o ByteOrder) []byte {
	return AppendFloat64(make([]byte, 0, SizeFloat64), v, o)
}

// DecodeFloat64 reassembles a float64 from its binary64 encoding. It
// accepts every bit pattern, NaN and subnormal fields included, and fails
// with ErrInvalidLength iff len(b) != 8.
func DecodeFloat64(b []byte, o ByteOrder) (float64, error) {
	if len(b) != SizeFloat64 {
		return 0, fmt.Errorf("%w: binary64 needs %d bytes, got %d", ErrInvalidLength, SizeFloat64, len(b))
	}
	return math.Float64frombits(o.order().Uint64(b)), nil
}

// AppendFloat32 appends the 4-byte binary32 encoding of v to dst.
func AppendFloat32(dst []byte, v float32, o ByteOrder) []byte {
	return o.order().AppendUint32(dst, math.Float32bits(v))
}

// PutFloat32 writes the binary32 encoding of v into b[0:4]. It panics if b
// is shorter than 4 bytes.
func PutFloat32(b []byte, v float32, o ByteOrder) {
	o.order().PutUint32(b, math.Float32bits(v))
}

// EncodeFloat32 returns the 4-byte binary32 encoding of v.
func EncodeFloat32(v float32, o ByteOrder) []byte {
	return AppendFloat32(make([]byte, 0, SizeFloat32), v, o)
}

// DecodeFloat32 reassembles a float32 from its binary32 encoding. It fails
// with ErrInvalidLength iff len(b) != 4.
func DecodeFloat32(b []byte, o ByteOrder) (float32, error) {
	if len(b) != SizeFloat32 {
		return 0, fmt.Errorf("%w: binary32 needs %d bytes, got %d", ErrInvalidLength, SizeFloat32, len(b))
	}
	return math.Float32frombits(o.order().Uint32(b)), nil
}

// AppendFloat16 appends the 2-byte binary16 encoding of v to dst, narrowing
// with round-to-nearest-even.
func AppendFloat16(dst []byte, v float32, o ByteOrder) []byte {
	return o.order().AppendUint16(dst, uint16(f16.FromFloat32(v)))
}

// PutFloat16 writes the binary16 encoding of v into b[0:2]. It panics if b
// is shorter than 2 bytes.
func PutFloat16(b []byte, v float32, o ByteOrder) {
	o.order().PutUint16(b, uint16(f16.FromFloat32(v)))
}

// EncodeFloat16 returns the 2-byte binary16 encoding of v.
func EncodeFloat16(v float32, o ByteOrder) []byte {
	return AppendFloat16(make([]byte, 0, SizeFloat16), v, o)
}

// DecodeFloat16 reassembles a float32 from a binary16 encoding; the
// widening is exact for every bit pattern. It fails with ErrInvalidLength
// iff len(b) != 2.
func DecodeFloat16(b []byte, o ByteOrder) (float32, error) {
	if len(b) != SizeFloat16 {
		return 0, fmt.Errorf("%w: binary16 needs %d bytes, got %d", ErrInvalidLength, SizeFloat16, len(b))
	}
	return f16.ToFloat32(f16.Bits(o.order().Uint16(b))), nil
}
