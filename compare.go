package ieee754

import "github.com/hupe1980/ieee754/fenv"

// Quiet comparison predicates, IEEE 754-2019 section 5.11. A NaN operand
// makes every ordered predicate false and NotEqual true; no exception is
// raised. These delegate to the native operators, which already implement
// the unordered rule; they exist so call sites read as the standard's
// operation names.

// Equal reports x == y. False if either operand is NaN.
func Equal(x, y float64) bool { return x == y }

// Equal32 reports x == y. False if either operand is NaN.
func Equal32(x, y float32) bool { return x == y }

// NotEqual reports x != y. True if either operand is NaN.
func NotEqual(x, y float64) bool { return x != y }

// NotEqual32 reports x != y. True if either operand is NaN.
func NotEqual32(x, y float32) bool { return x != y }

// Less reports x < y. False if either operand is NaN.
func Less(x, y float64) bool { return x < y }

// Less32 reports x < y. False if either operand is NaN.
func Less32(x, y float32) bool { return x < y }

// LessEqual reports x <= y. False if either operand is NaN.
func LessEqual(x, y float64) bool { return x <= y }

// LessEqual32 reports x <= y. False if either operand is NaN.
func LessEqual32(x, y float32) bool { return x <= y }

// Greater reports x > y. False if either operand is NaN.
func Greater(x, y float64) bool { return x > y }

// Greater32 reports x > y. False if either operand is NaN.
func Greater32(x, y float32) bool { return x > y }

// GreaterEqual reports x >= y. False if either operand is NaN.
func GreaterEqual(x, y float64) bool { return x >= y }

// GreaterEqual32 reports x >= y. False if either operand is NaN.
func GreaterEqual32(x, y float32) bool { return x >= y }

// Signaling comparison predicates, IEEE 754-2019 section 5.6.1. Same truth
// table as the quiet predicates, but a NaN operand additionally raises the
// invalid-operation flag on env. A nil env raises on fenv.Default.

func raiseInvalid(env *fenv.Env) {
	if env == nil {
		env = fenv.Default
	}
	env.Raise(fenv.Invalid)
}

// SignalingEqual reports x == y, raising invalid on a NaN operand.
func SignalingEqual(env *fenv.Env, x, y float64) bool {
	if IsNaN(x) || IsNaN(y) {
		raiseInvalid(env)
		return false
	}
	return x == y
}

// SignalingNotEqual reports x != y, raising invalid on a NaN operand.
func SignalingNotEqual(env *fenv.Env, x, y float64) bool {
	if IsNaN(x) || IsNaN(y) {
		raiseInvalid(env)
		return true
	}
	return x != y
}

// SignalingLess reports x < y, raising invalid on a NaN operand.
func SignalingLess(env *fenv.Env, x, y float64) bool {
	if IsNaN(x) || IsNaN(y) {
		raiseInvalid(env)
		return false
	}
	return x < y
}

// SignalingLessEqual reports x <= y, raising invalid on a NaN operand.
func SignalingLessEqual(env *fenv.Env, x, y float64) bool {
	if IsNaN(x) || IsNaN(y) {
		raiseInvalid(env)
		return false
	}
	return x <= y
}

// SignalingGreater reports x > y, raising invalid on a NaN operand.
func SignalingGreater(env *fenv.Env, x, y float64) bool {
	if IsNaN(x) || IsNaN(y) {
		raiseInvalid(env)
		return false
	}
	return x > y
}

// SignalingGreaterEqual reports x >= y, raising invalid on a NaN operand.
func SignalingGreaterEqual(env *fenv.Env, x, y float64) bool {
	if IsNaN(x) || IsNaN(y) {
		raiseInvalid(env)
		return false
	}
	return x >= y
}

// SignalingEqual32 reports x == y, raising invalid on a NaN operand.
func SignalingEqual32(env *fenv.Env, x, y float32) bool {
	if IsNaN32(x) || IsNaN32(y) {
		raiseInvalid(env)
		return false
	}
	return x == y
}

// SignalingNotEqual32 reports x != y, raising invalid on a NaN operand.
func SignalingNotEqual32(env *fenv.Env, x, y float32) bool {
	if IsNaN32(x) || IsNaN32(y) {
		raiseInvalid(env)
		return true
	}
	return x != y
}

// SignalingLess32 reports x < y, raising invalid on a NaN operand.
func SignalingLess32(env *fenv.Env, x, y float32) bool {
	if IsNaN32(x) || IsNaN32(y) {
		raiseInvalid(env)
		return false
	}
	return x < y
}

// SignalingLessEqual32 reports x <= y, raising invalid on a NaN operand.
func SignalingLessEqual32(env *fenv.Env, x, y float32) bool {
	if IsNaN32(x) || IsNaN32(y) {
		raiseInvalid(env)
		return false
	}
	return x <= y
}

// SignalingGreater32 reports x > y, raising invalid on a NaN operand.
func SignalingGreater32(env *fenv.Env, x, y float32) bool {
	if IsNaN32(x) || IsNaN32(y) {
		raiseInvalid(env)
		return false
	}
	return x > y
}

// SignalingGreaterEqual32 reports x >= y, raising invalid on a NaN operand.
func SignalingGreaterEqual32(env *fenv.Env, x, y float32) bool {
	if IsNaN32(x) || IsNaN32(y) {
		raiseInvalid(env)
		return false
	}
	return x >= y
}
