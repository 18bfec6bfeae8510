package ieee754

import "fmt"

// The eight minimum/maximum operations of IEEE 754-2019 section 9.6. Two
// independent axes select the behavior: NaN policy (propagate vs. prefer the
// number) and selection basis (signed value vs. magnitude). Every input pair
// has a defined result; none of these operations fail.

// Minimum returns the smaller of x and y, propagating NaN. On a signed-zero
// tie it returns -0.
func Minimum(x, y float64) float64 {
	switch {
	case IsNaN(x):
		return x
	case IsNaN(y):
		return y
	case x < y:
		return x
	case y < x:
		return y
	case IsSignMinus(x):
		return x // covers the -0/+0 tie
	default:
		return y
	}
}

// Maximum returns the larger of x and y, propagating NaN. On a signed-zero
// tie it returns +0.
func Maximum(x, y float64) float64 {
	switch {
	case IsNaN(x):
		return x
	case IsNaN(y):
		return y
	case x > y:
		return x
	case y > x:
		return y
	case IsSignMinus(x):
		return y
	default:
		return x
	}
}

// MinimumNumber returns the smaller of x and y. If exactly one operand is
// NaN the other is returned; NaN results only when both operands are NaN.
func MinimumNumber(x, y float64) float64 {
	if IsNaN(x) {
		if IsNaN(y) {
			return x
		}
		return y
	}
	if IsNaN(y) {
		return x
	}
	return Minimum(x, y)
}

// MaximumNumber returns the larger of x and y, preferring the number over a
// NaN operand.
func MaximumNumber(x, y float64) float64 {
	if IsNaN(x) {
		if IsNaN(y) {
			return x
		}
		return y
	}
	if IsNaN(y) {
		return x
	}
	return Maximum(x, y)
}

// MinimumMagnitude returns the operand of smaller magnitude, propagating
// NaN. Equal magnitudes fall back to Minimum on the signed values.
func MinimumMagnitude(x, y float64) float64 {
	switch {
	case IsNaN(x):
		return x
	case IsNaN(y):
		return y
	case Abs(x) < Abs(y):
		return x
	case Abs(y) < Abs(x):
		return y
	default:
		return Minimum(x, y)
	}
}

// MaximumMagnitude returns the operand of larger magnitude, propagating
// NaN. Equal magnitudes fall back to Maximum on the signed values.
func MaximumMagnitude(x, y float64) float64 {
	switch {
	case IsNaN(x):
		return x
	case IsNaN(y):
		return y
	case Abs(x) > Abs(y):
		return x
	case Abs(y) > Abs(x):
		return y
	default:
		return Maximum(x, y)
	}
}

// MinimumMagnitudeNumber is MinimumMagnitude with the prefer-the-number NaN
// policy.
func MinimumMagnitudeNumber(x, y float64) float64 {
	if IsNaN(x) {
		if IsNaN(y) {
			return x
		}
		return y
	}
	if IsNaN(y) {
		return x
	}
	return MinimumMagnitude(x, y)
}

// MaximumMagnitudeNumber is MaximumMagnitude with the prefer-the-number NaN
// policy.
func MaximumMagnitudeNumber(x, y float64) float64 {
	if IsNaN(x) {
		if IsNaN(y) {
			return x
		}
		return y
	}
	if IsNaN(y) {
		return x
	}
	return MaximumMagnitude(x, y)
}

// Minimum32 returns the smaller of x and y, propagating NaN. On a
// signed-zero tie it returns -0.
func Minimum32(x, y float32) float32 {
	switch {
	case IsNaN32(x):
		return x
	case IsNaN32(y):
		return y
	case x < y:
		return x
	case y < x:
		return y
	case IsSignMinus32(x):
		return x
	default:
		return y
	}
}

// Maximum32 returns the larger of x and y, propagating NaN. On a
// signed-zero tie it returns +0.
func Maximum32(x, y float32) float32 {
	switch {
	case IsNaN32(x):
		return x
	case IsNaN32(y):
		return y
	case x > y:
		return x
	case y > x:
		return y
	case IsSignMinus32(x):
		return y
	default:
		return x
	}
}

// MinimumNumber32 returns the smaller of x and y, preferring the number over
// a NaN operand.
func MinimumNumber32(x, y float32) float32 {
	if IsNaN32(x) {
		if IsNaN32(y) {
			return x
		}
		return y
	}
	if IsNaN32(y) {
		return x
	}
	return Minimum32(x, y)
}

// MaximumNumber32 returns the larger of x and y, preferring the number over
// a NaN operand.
func MaximumNumber32(x, y float32) float32 {
	if IsNaN32(x) {
		if IsNaN32(y) {
			return x
		}
		return y
	}
	if IsNaN32(y) {
		return x
	}
	return Maximum32(x, y)
}

// MinimumMagnitude32 returns the operand of smaller magnitude, propagating
// NaN, with Minimum32 as the equal-magnitude tiebreak.
func MinimumMagnitude32(x, y float32) float32 {
	switch {
	case IsNaN32(x):
		return x
	case IsNaN32(y):
		return y
	case Abs32(x) < Abs32(y):
		return x
	case Abs32(y) < Abs32(x):
		return y
	default:
		return Minimum32(x, y)
	}
}

// MaximumMagnitude32 returns the operand of larger magnitude, propagating
// NaN, with Maximum32 as the equal-magnitude tiebreak.
func MaximumMagnitude32(x, y float32) float32 {
	switch {
	case IsNaN32(x):
		return x
	case IsNaN32(y):
		return y
	case Abs32(x) > Abs32(y):
		return x
	case Abs32(y) > Abs32(x):
		return y
	default:
		return Maximum32(x, y)
	}
}

// MinimumMagnitudeNumber32 is MinimumMagnitude32 with the prefer-the-number
// NaN policy.
func MinimumMagnitudeNumber32(x, y float32) float32 {
	if IsNaN32(x) {
		if IsNaN32(y) {
			return x
		}
		return y
	}
	if IsNaN32(y) {
		return x
	}
	return MinimumMagnitude32(x, y)
}

// MaximumMagnitudeNumber32 is MaximumMagnitude32 with the prefer-the-number
// NaN policy.
func MaximumMagnitudeNumber32(x, y float32) float32 {
	if IsNaN32(x) {
		if IsNaN32(y) {
			return x
		}
		return y
	}
	if IsNaN32(y) {
		return x
	}
	return MaximumMagnitude32(x, y)
}

// Op names one of the eight minimum/maximum operations for call sites that
// select the variant at run time (e.g. slice reductions).
type Op uint8

const (
	OpMinimum Op = iota
	OpMaximum
	OpMinimumNumber
	OpMaximumNumber
	OpMinimumMagnitude
	OpMaximumMagnitude
	OpMinimumMagnitudeNumber
	OpMaximumMagnitudeNumber
)

// String returns the operation name from IEEE 754-2019 section 9.6.
func (op Op) String() string {
	switch op {
	case OpMinimum:
		return "minimum"
	case OpMaximum:
		return "maximum"
	case OpMinimumNumber:
		return "minimumNumber"
	case OpMaximumNumber:
		return "maximumNumber"
	case OpMinimumMagnitude:
		return "minimumMagnitude"
	case OpMaximumMagnitude:
		return "maximumMagnitude"
	case OpMinimumMagnitudeNumber:
		return "minimumMagnitudeNumber"
	case OpMaximumMagnitudeNumber:
		return "maximumMagnitudeNumber"
	default:
		return "unknown"
	}
}

// Apply evaluates the operation on x and y. It panics on an Op outside the
// defined set, which is a programmer error, not a data condition.
func (op Op) Apply(x, y float64) float64 {
	switch op {
	case OpMinimum:
		return Minimum(x, y)
	case OpMaximum:
		return Maximum(x, y)
	case OpMinimumNumber:
		return MinimumNumber(x, y)
	case OpMaximumNumber:
		return MaximumNumber(x, y)
	case OpMinimumMagnitude:
		return MinimumMagnitude(x, y)
	case OpMaximumMagnitude:
		return MaximumMagnitude(x, y)
	case OpMinimumMagnitudeNumber:
		return MinimumMagnitudeNumber(x, y)
	case OpMaximumMagnitudeNumber:
		return MaximumMagnitudeNumber(x, y)
	default:
		panic(fmt.Sprintf("ieee754: invalid op %d", op))
	}
}

// Apply32 evaluates the operation on x and y.
func (op Op) Apply32(x, y float32) float32 {
	switch op {
	case OpMinimum:
		return Minimum32(x, y)
	case OpMaximum:
		return Maximum32(x, y)
	case OpMinimumNumber:
		return MinimumNumber32(x, y)
	case OpMaximumNumber:
		return MaximumNumber32(x, y)
	case OpMinimumMagnitude:
		return MinimumMagnitude32(x, y)
	case OpMaximumMagnitude:
		return MaximumMagnitude32(x, y)
	case OpMinimumMagnitudeNumber:
		return MinimumMagnitudeNumber32(x, y)
	case OpMaximumMagnitudeNumber:
		return MaximumMagnitudeNumber32(x, y)
	default:
		panic(fmt.Sprintf("ieee754: invalid op %d", op))
	}
}

// Reduce folds op over values left to right. ok is false for an empty
// slice.
func Reduce(op Op, values []float64) (result float64, ok bool) {
	if len(values) == 0 {
		return 0, false
	}
	result = values[0]
	for _, v := range values[1:] {
		result = op.Apply(result, v)
	}
	return result, true
}

// Reduce32 folds op over values left to right. ok is false for an empty
// slice.
func Reduce32(op Op, values []float32) (result float32, ok bool) {
	if len(values) == 0 {
		return 0, false
	}
	result = values[0]
	for _, v := range values[1:] {
		result = op.Apply32(result, v)
	}
	return result, true
}
