package wire

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/hupe1980/ieee754/testutil"
)

func TestFloat64SliceRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(3)
	src := append(testutil.Specials64(), rng.BitPatterns64(1000)...)

	for _, order := range []ByteOrder{LittleEndian, BigEndian} {
		enc := AppendFloat64Slice(nil, src, order)
		if len(enc) != len(src)*SizeFloat64 {
			t.Fatalf("encoded length %d", len(enc))
		}

		dec, err := DecodeFloat64Slice(enc, order)
		if err != nil {
			t.Fatal(err)
		}
		if len(dec) != len(src) {
			t.Fatalf("decoded %d values, want %d", len(dec), len(src))
		}
		for i := range src {
			if math.Float64bits(dec[i]) != math.Float64bits(src[i]) {
				t.Fatalf("index %d: %016x != %016x",
					i, math.Float64bits(dec[i]), math.Float64bits(src[i]))
			}
		}
	}
}

func TestFloat32SliceRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(4)
	src := append(testutil.Specials32(), rng.BitPatterns32(1000)...)

	enc := AppendFloat32Slice(nil, src, BigEndian)
	dec, err := DecodeFloat32Slice(enc, BigEndian)
	if err != nil {
		t.Fatal(err)
	}
	for i := range src {
		if math.Float32bits(dec[i]) != math.Float32bits(src[i]) {
			t.Fatalf("index %d not bit-preserved", i)
		}
	}
}

func TestFloat16SliceRoundTrip(t *testing.T) {
	src := []float32{0, float32(math.Copysign(0, -1)), 1, -1, 0.5, 65504,
		float32(math.Inf(1)), float32(math.Inf(-1))}

	enc := AppendFloat16Slice(nil, src, LittleEndian)
	if len(enc) != len(src)*SizeFloat16 {
		t.Fatalf("encoded length %d", len(enc))
	}
	dec, err := DecodeFloat16Slice(enc, LittleEndian)
	if err != nil {
		t.Fatal(err)
	}
	for i := range src {
		if math.Float32bits(dec[i]) != math.Float32bits(src[i]) {
			t.Fatalf("index %d: got %v, want %v", i, dec[i], src[i])
		}
	}
}

func TestDecodeSliceLengthErrors(t *testing.T) {
	if _, err := DecodeFloat64Slice(make([]byte, 12), LittleEndian); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("err = %v", err)
	}
	if _, err := DecodeFloat32Slice(make([]byte, 6), LittleEndian); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("err = %v", err)
	}
	if _, err := DecodeFloat16Slice(make([]byte, 3), LittleEndian); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("err = %v", err)
	}
}

func TestEmptySlice(t *testing.T) {
	if enc := AppendFloat64Slice(nil, nil, LittleEndian); len(enc) != 0 {
		t.Fatal("empty input must encode to empty output")
	}
	dec, err := DecodeFloat64Slice(nil, LittleEndian)
	if err != nil || len(dec) != 0 {
		t.Fatalf("empty decode = (%v, %v)", dec, err)
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	rng := testutil.NewRNG(5)

	// Both below and above the parallel threshold.
	for _, n := range []int{100, parallelThreshold + 1000} {
		src := rng.BitPatterns64(n)
		serial := AppendFloat64Slice(nil, src, LittleEndian)

		for _, parallelism := range []int{0, 1, 4} {
			par, err := EncodeFloat64SliceParallel(src, LittleEndian, parallelism)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(par, serial) {
				t.Fatalf("n=%d parallelism=%d: parallel encode differs from serial", n, parallelism)
			}

			dec, err := DecodeFloat64SliceParallel(par, LittleEndian, parallelism)
			if err != nil {
				t.Fatal(err)
			}
			for i := range src {
				if math.Float64bits(dec[i]) != math.Float64bits(src[i]) {
					t.Fatalf("n=%d parallelism=%d index %d not bit-preserved", n, parallelism, i)
				}
			}
		}
	}
}

func TestParallelMatchesSerial32(t *testing.T) {
	rng := testutil.NewRNG(6)
	src := rng.BitPatterns32(parallelThreshold + 500)
	serial := AppendFloat32Slice(nil, src, BigEndian)

	par, err := EncodeFloat32SliceParallel(src, BigEndian, 4)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(par, serial) {
		t.Fatal("parallel encode differs from serial")
	}

	dec, err := DecodeFloat32SliceParallel(par, BigEndian, 4)
	if err != nil {
		t.Fatal(err)
	}
	for i := range src {
		if math.Float32bits(dec[i]) != math.Float32bits(src[i]) {
			t.Fatalf("index %d not bit-preserved", i)
		}
	}
}

func TestDecodeSliceParallelLengthError(t *testing.T) {
	if _, err := DecodeFloat64SliceParallel(make([]byte, 9), LittleEndian, 2); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("err = %v", err)
	}
	if _, err := DecodeFloat32SliceParallel(make([]byte, 7), LittleEndian, 2); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("err = %v", err)
	}
}
