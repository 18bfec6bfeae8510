package wire

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/ieee754/internal/f16"
)

// Below this length the parallel paths fall back to the serial encoders;
// the goroutine handoff costs more than the encode.
const parallelThreshold = 4096

// AppendFloat64Slice appends the binary64 encodings of src to dst, in
// order, with no framing between elements.
func AppendFloat64Slice(dst []byte, src []float64, o ByteOrder) []byte {
	ord := o.order()
	for _, v := range src {
		dst = ord.AppendUint64(dst, math.Float64bits(v))
	}
	return dst
}

// DecodeFloat64Slice decodes a contiguous buffer of binary64 encodings. It
// fails with ErrInvalidLength iff len(b) is not a multiple of 8.
func DecodeFloat64Slice(b []byte, o ByteOrder) ([]float64, error) {
	if len(b)%SizeFloat64 != 0 {
		return nil, fmt.Errorf("%w: binary64 buffer length %d is not a multiple of %d", ErrInvalidLength, len(b), SizeFloat64)
	}
	ord := o.order()
	out := make([]float64, len(b)/SizeFloat64)
	for i := range out {
		out[i] = math.Float64frombits(ord.Uint64(b[i*SizeFloat64:]))
	}
	return out, nil
}

// AppendFloat32Slice appends the binary32 encodings of src to dst.
func AppendFloat32Slice(dst []byte, src []float32, o ByteOrder) []byte {
	ord := o.order()
	for _, v := range src {
		dst = ord.AppendUint32(dst, math.Float32bits(v))
	}
	return dst
}

// DecodeFloat32Slice decodes a contiguous buffer of binary32 encodings. It
// fails with ErrInvalidLength iff len(b) is not a multiple of 4.
func DecodeFloat32Slice(b []byte, o ByteOrder) ([]float32, error) {
	if len(b)%SizeFloat32 != 0 {
		return nil, fmt.Errorf("%w: binary32 buffer length %d is not a multiple of %d", ErrInvalidLength, len(b), SizeFloat32)
	}
	ord := o.order()
	out := make([]float32, len(b)/SizeFloat32)
	for i := range out {
		out[i] = math.Float32frombits(ord.Uint32(b[i*SizeFloat32:]))
	}
	return out, nil
}

// AppendFloat16Slice appends the binary16 encodings of src to dst,
// narrowing each element with round-to-nearest-even.
func AppendFloat16Slice(dst []byte, src []float32, o ByteOrder) []byte {
	ord := o.order()
	for _, v := range src {
		dst = ord.AppendUint16(dst, uint16(f16.FromFloat32(v)))
	}
	return dst
}

// DecodeFloat16Slice decodes a contiguous buffer of binary16 encodings into
// float32 values. It fails with ErrInvalidLength iff len(b) is odd.
func DecodeFloat16Slice(b []byte, o ByteOrder) ([]float32, error) {
	if len(b)%SizeFloat16 != 0 {
		return nil, fmt.Errorf("%w: binary16 buffer length %d is not a multiple of %d", ErrInvalidLength, len(b), SizeFloat16)
	}
	ord := o.order()
	out := make([]float32, len(b)/SizeFloat16)
	for i := range out {
		out[i] = f16.ToFloat32(f16.Bits(ord.Uint16(b[i*SizeFloat16:])))
	}
	return out, nil
}

// EncodeFloat64SliceParallel encodes src like AppendFloat64Slice but splits
// the work across up to parallelism goroutines. The output is byte-identical
// to the serial encoding. parallelism < 2 or a short slice degrades to the
// serial path.
func EncodeFloat64SliceParallel(src []float64, o ByteOrder, parallelism int) ([]byte, error) {
	if parallelism < 2 || len(src) < parallelThreshold {
		return AppendFloat64Slice(make([]byte, 0, len(src)*SizeFloat64), src, o), nil
	}

	buf := make([]byte, len(src)*SizeFloat64)
	ord := o.order()

	var g errgroup.Group
	chunk := (len(src) + parallelism - 1) / parallelism
	for start := 0; start < len(src); start += chunk {
		end := min(start+chunk, len(src))
		g.Go(func() error {
			for i := start; i < end; i++ {
				ord.PutUint64(buf[i*SizeFloat64:], math.Float64bits(src[i]))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return buf, nil
}

// DecodeFloat64SliceParallel decodes b like DecodeFloat64Slice, splitting
// the work across up to parallelism goroutines.
func DecodeFloat64SliceParallel(b []byte, o ByteOrder, parallelism int) ([]float64, error) {
	if len(b)%SizeFloat64 != 0 {
		return nil, fmt.Errorf("%w: binary64 buffer length %d is not a multiple of %d", ErrInvalidLength, len(b), SizeFloat64)
	}
	n := len(b) / SizeFloat64
	if parallelism < 2 || n < parallelThreshold {
		return DecodeFloat64Slice(b, o)
	}

	out := make([]float64, n)
	ord := o.order()

	var g errgroup.Group
	chunk := (n + parallelism - 1) / parallelism
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				out[i] = math.Float64frombits(ord.Uint64(b[i*SizeFloat64:]))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// EncodeFloat32SliceParallel encodes src like AppendFloat32Slice across up
// to parallelism goroutines.
func EncodeFloat32SliceParallel(src []float32, o ByteOrder, parallelism int) ([]byte, error) {
	if parallelism < 2 || len(src) < parallelThreshold {
		return AppendFloat32Slice(make([]byte, 0, len(src)*SizeFloat32), src, o), nil
	}

	buf := make([]byte, len(src)*SizeFloat32)
	ord := o.order()

	var g errgroup.Group
	chunk := (len(src) + parallelism - 1) / parallelism
	for start := 0; start < len(src); start += chunk {
		end := min(start+chunk, len(src))
		g.Go(func() error {
			for i := start; i < end; i++ {
				ord.PutUint32(buf[i*SizeFloat32:], math.Float32bits(src[i]))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return buf, nil
}

// DecodeFloat32SliceParallel decodes b like DecodeFloat32Slice across up to
// parallelism goroutines.
func DecodeFloat32SliceParallel(b []byte, o ByteOrder, parallelism int) ([]float32, error) {
	if len(b)%SizeFloat32 != 0 {
		return nil, fmt.Errorf("%w: binary32 buffer length %d is not a multiple of %d", ErrInvalidLength, len(b), SizeFloat32)
	}
	n := len(b) / SizeFloat32
	if parallelism < 2 || n < parallelThreshold {
		return DecodeFloat32Slice(b, o)
	}

	out := make([]float32, n)
	ord := o.order()

	var g errgroup.Group
	chunk := (n + parallelism - 1) / parallelism
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				out[i] = math.Float32frombits(ord.Uint32(b[i*SizeFloat32:]))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
