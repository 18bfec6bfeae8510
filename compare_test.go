package ieee754

import (
	"math"
	"testing"

	"github.com/hupe1980/ieee754/fenv"
)

func TestQuietCompareNumbers(t *testing.T) {
	if !Less(1, 2) || Less(2, 1) || Less(1, 1) {
		t.Fatal("Less")
	}
	if !LessEqual(1, 1) || !LessEqual(1, 2) || LessEqual(2, 1) {
		t.Fatal("LessEqual")
	}
	if !Greater(2, 1) || Greater(1, 2) {
		t.Fatal("Greater")
	}
	if !GreaterEqual(2, 2) || GreaterEqual(1, 2) {
		t.Fatal("GreaterEqual")
	}
	if !Equal(3, 3) || Equal(3, 4) || NotEqual(3, 3) || !NotEqual(3, 4) {
		t.Fatal("Equal/NotEqual")
	}
	// Signed zeros compare equal.
	if !Equal(0, math.Copysign(0, -1)) {
		t.Fatal("0 == -0 must hold")
	}
}

// The unordered rule: a NaN operand makes every ordered predicate false and
// NotEqual true, for NaN on either side and for NaN vs NaN.
func TestQuietCompareUnordered(t *testing.T) {
	pairs := [][2]float64{
		{qnan(), 1}, {1, qnan()}, {qnan(), qnan()},
		{snan(), 1}, {1, snan()}, {snan(), qnan()},
	}
	for _, p := range pairs {
		x, y := p[0], p[1]
		if Equal(x, y) || Less(x, y) || LessEqual(x, y) || Greater(x, y) || GreaterEqual(x, y) {
			t.Fatalf("ordered predicate true for (%v, %v)", x, y)
		}
		if !NotEqual(x, y) {
			t.Fatalf("NotEqual false for (%v, %v)", x, y)
		}
	}
}

func TestSignalingCompareRaisesInvalid(t *testing.T) {
	env := fenv.NewEnv()

	if SignalingLess(env, qnan(), 1) {
		t.Fatal("NaN comparison must be false")
	}
	if !env.Test(fenv.Invalid) {
		t.Fatal("invalid flag not raised")
	}

	env.ClearAll()
	if !SignalingNotEqual(env, 1, qnan()) {
		t.Fatal("NotEqual with NaN must be true")
	}
	if !env.Test(fenv.Invalid) {
		t.Fatal("invalid flag not raised by NotEqual")
	}
}

func TestSignalingCompareNumbersDoNotRaise(t *testing.T) {
	env := fenv.NewEnv()

	if !SignalingLess(env, 1, 2) || !SignalingEqual(env, 3, 3) ||
		!SignalingGreaterEqual(env, 2, 2) || SignalingGreater(env, 1, 2) ||
		!SignalingLessEqual(env, 1, 1) || SignalingNotEqual(env, 3, 3) {
		t.Fatal("wrong result on numbers")
	}
	if env.Snapshot().Any() {
		t.Fatal("flags raised without NaN operand")
	}
}

func TestSignalingCompare32(t *testing.T) {
	env := fenv.NewEnv()
	nan := math.Float32frombits(0x7FC00000)

	if SignalingGreater32(env, nan, 1) || !env.Test(fenv.Invalid) {
		t.Fatal("invalid not raised for float32 NaN")
	}
	env.ClearAll()
	if !SignalingEqual32(env, 2, 2) || env.Test(fenv.Invalid) {
		t.Fatal("float32 number comparison")
	}
	if !SignalingNotEqual32(env, nan, nan) || !env.Test(fenv.Invalid) {
		t.Fatal("float32 NaN NotEqual")
	}
	env.ClearAll()
	if SignalingLess32(env, 2, 1) || SignalingLessEqual32(env, 2, 1) ||
		!SignalingGreaterEqual32(env, 2, 1) {
		t.Fatal("float32 ordering")
	}
}

// A nil env falls back to the shared default.
func TestSignalingCompareNilEnv(t *testing.T) {
	fenv.Default.ClearAll()
	defer fenv.Default.ClearAll()

	SignalingEqual(nil, qnan(), 0)
	if !fenv.Default.Test(fenv.Invalid) {
		t.Fatal("default env flag not raised")
	}
}
