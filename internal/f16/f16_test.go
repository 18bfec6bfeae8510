package f16

import (
	"math"
	"testing"
)

func TestToFloat32(t *testing.T) {
	tests := []struct {
		name string
		in   Bits
		want float32
	}{
		{"+0", 0x0000, 0},
		{"-0", 0x8000, float32(math.Copysign(0, -1))},
		{"one", 0x3C00, 1},
		{"-one", 0xBC00, -1},
		{"half", 0x3800, 0.5},
		{"two", 0x4000, 2},
		{"1.5", 0x3E00, 1.5},
		{"max normal", 0x7BFF, 65504},
		{"min normal", 0x0400, 0x1p-14},
		{"max subnormal", 0x03FF, 0x1.FF8p-15},
		{"min subnormal", 0x0001, 0x1p-24},
		{"-min subnormal", 0x8001, -0x1p-24},
		{"+inf", 0x7C00, float32(math.Inf(1))},
		{"-inf", 0xFC00, float32(math.Inf(-1))},
	}

	for _, tt := range tests {
		got := ToFloat32(tt.in)
		if math.Float32bits(got) != math.Float32bits(tt.want) {
			t.Errorf("%s: ToFloat32(%#04x) = %v (%08x), want %v (%08x)",
				tt.name, uint16(tt.in), got, math.Float32bits(got), tt.want, math.Float32bits(tt.want))
		}
	}
}

func TestToFloat32NaN(t *testing.T) {
	got := ToFloat32(0x7E00) // canonical quiet NaN
	if got == got {
		t.Fatalf("ToFloat32(0x7E00) = %v, want NaN", got)
	}
	// The payload shifts left into the wider fraction; the quiet bit keeps
	// its position at the fraction MSB.
	if bits := math.Float32bits(got); bits != 0x7FC00000 {
		t.Fatalf("quiet NaN widened to %08x", bits)
	}

	got = ToFloat32(0x7D01)
	if bits := math.Float32bits(got); bits != 0x7FA02000 {
		t.Fatalf("payload NaN widened to %08x", bits)
	}
}

func TestFromFloat32Exact(t *testing.T) {
	tests := []struct {
		in   float32
		want Bits
	}{
		{0, 0x0000},
		{float32(math.Copysign(0, -1)), 0x8000},
		{1, 0x3C00},
		{-1, 0xBC00},
		{0.5, 0x3800},
		{1.5, 0x3E00},
		{65504, 0x7BFF},
		{0x1p-14, 0x0400},
		{0x1p-24, 0x0001},
		{-0x1p-24, 0x8001},
		{float32(math.Inf(1)), 0x7C00},
		{float32(math.Inf(-1)), 0xFC00},
	}

	for _, tt := range tests {
		if got := FromFloat32(tt.in); got != tt.want {
			t.Errorf("FromFloat32(%v) = %#04x, want %#04x", tt.in, uint16(got), uint16(tt.want))
		}
	}
}

func TestFromFloat32Rounding(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want Bits
	}{
		// 1 + 2^-11 is exactly halfway between 1 and the next binary16
		// value; ties go to even (down to 1).
		{"tie to even down", 1 + 0x1p-11, 0x3C00},
		// 1 + 3*2^-11 is halfway between 0x3C01 and 0x3C02; even is 0x3C02.
		{"tie to even up", 1 + 3*0x1p-11, 0x3C02},
		{"round up", 1 + 0x1.8p-11, 0x3C01},
		{"round down", 1 + 0x1p-12, 0x3C00},
		// Just above the binary16 maximum rounds to infinity.
		{"overflow", 65520, 0x7C00},
		{"-overflow", -65520, 0xFC00},
		{"big overflow", 1e10, 0x7C00},
		// Below half the smallest subnormal underflows to zero.
		{"underflow", 0x1p-26, 0x0000},
		{"-underflow", -0x1p-26, 0x8000},
		// Subnormal rounding.
		{"subnormal", 0x1.8p-24, 0x0002}, // halfway 1|2, even is 2
		{"subnormal exact", 0x1p-23, 0x0002},
	}

	for _, tt := range tests {
		if got := FromFloat32(tt.in); got != tt.want {
			t.Errorf("%s: FromFloat32(%v) = %#04x, want %#04x", tt.name, tt.in, uint16(got), uint16(tt.want))
		}
	}
}

func TestFromFloat32NaN(t *testing.T) {
	got := FromFloat32(float32(math.NaN()))
	if !IsNaN(got) {
		t.Fatalf("FromFloat32(NaN) = %#04x, not a NaN", uint16(got))
	}
	if got&quietBit == 0 {
		t.Fatal("narrowed NaN must be quiet")
	}

	// A payload whose top 10 bits are zero would collapse into infinity
	// without the non-zero repair.
	tiny := math.Float32frombits(0x7F800001)
	got = FromFloat32(tiny)
	if !IsNaN(got) {
		t.Fatalf("FromFloat32(tiny-payload NaN) = %#04x, not a NaN", uint16(got))
	}

	neg := math.Float32frombits(0xFFC00000)
	got = FromFloat32(neg)
	if !IsNaN(got) || got&signMask == 0 {
		t.Fatalf("negative NaN narrowed to %#04x", uint16(got))
	}
}

func TestRoundTripAllPatterns(t *testing.T) {
	// Widening then narrowing restores every binary16 pattern except
	// signaling NaNs, which come back quiet.
	for i := 0; i <= 0xFFFF; i++ {
		h := Bits(i)
		got := FromFloat32(ToFloat32(h))
		if IsNaN(h) {
			if !IsNaN(got) || got&signMask != h&signMask {
				t.Fatalf("NaN %#04x round-tripped to %#04x", i, uint16(got))
			}
			continue
		}
		if got != h {
			t.Fatalf("%#04x round-tripped to %#04x", i, uint16(got))
		}
	}
}

func TestIsNaN(t *testing.T) {
	tests := []struct {
		in   Bits
		want bool
	}{
		{0x0000, false},
		{0x3C00, false},
		{0x7C00, false}, // +inf
		{0xFC00, false}, // -inf
		{0x7C01, true},  // signaling
		{0x7E00, true},  // quiet
		{0xFE00, true},  // negative quiet
		{0x7FFF, true},
	}
	for _, tt := range tests {
		if got := IsNaN(tt.in); got != tt.want {
			t.Errorf("IsNaN(%#04x) = %v, want %v", uint16(tt.in), got, tt.want)
		}
	}
}
