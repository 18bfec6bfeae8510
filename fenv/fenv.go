// Package fenv models the IEEE 754-2019 floating-point environment as an
// explicit, lock-protected context object: a rounding-direction attribute
// (section 4.3) and the five exception flags (section 7).
//
// Go exposes no portable control over the hardware FPU, so this is a
// software environment: SetRoundingMode records the attribute for consumers
// that implement directed rounding themselves, and the flags are raised by
// software operations such as the signaling comparison predicates. Envs are
// cheap; tests should construct their own rather than share Default.
package fenv

import (
	"fmt"
	"sync"
)

// RoundingMode is one of the four rounding-direction attributes of
// IEEE 754-2019 section 4.3.
type RoundingMode uint8

const (
	// ToNearestEven rounds to nearest, ties to even. The default mode.
	ToNearestEven RoundingMode = iota
	// TowardNegative rounds toward negative infinity.
	TowardNegative
	// TowardPositive rounds toward positive infinity.
	TowardPositive
	// TowardZero truncates toward zero.
	TowardZero

	numModes = 4
)

// String returns the attribute name from the standard.
func (m RoundingMode) String() string {
	switch m {
	case ToNearestEven:
		return "roundTiesToEven"
	case TowardNegative:
		return "roundTowardNegative"
	case TowardPositive:
		return "roundTowardPositive"
	case TowardZero:
		return "roundTowardZero"
	default:
		return "unknown"
	}
}

// Flag identifies one of the five exception flags of IEEE 754-2019
// section 7.
type Flag uint8

const (
	// Invalid is the invalid-operation flag (section 7.2).
	Invalid Flag = iota
	// DivByZero is the division-by-zero flag (section 7.3).
	DivByZero
	// Overflow is the overflow flag (section 7.4).
	Overflow
	// Underflow is the underflow flag (section 7.5).
	Underflow
	// Inexact is the inexact flag (section 7.6).
	Inexact

	numFlags = 5
)

// String returns the flag name from the standard.
func (f Flag) String() string {
	switch f {
	case Invalid:
		return "invalid"
	case DivByZero:
		return "divisionByZero"
	case Overflow:
		return "overflow"
	case Underflow:
		return "underflow"
	case Inexact:
		return "inexact"
	default:
		return "unknown"
	}
}

// Exceptions is a point-in-time snapshot of the five flags.
type Exceptions struct {
	Invalid   bool
	DivByZero bool
	Overflow  bool
	Underflow bool
	Inexact   bool
}

// Any reports whether any flag is raised in the snapshot.
func (e Exceptions) Any() bool {
	return e.Invalid || e.DivByZero || e.Overflow || e.Underflow || e.Inexact
}

// Env is a floating-point environment: a rounding mode and five sticky
// exception flags. The zero value is ready to use with mode ToNearestEven
// and all flags clear.
//
// All methods are safe for concurrent use. Concurrent raises and clears are
// serialized but last-writer-wins; callers needing per-operation attribution
// must use a private Env.
type Env struct {
	mu    sync.Mutex
	mode  RoundingMode
	flags [numFlags]bool
}

// Default is the process-wide environment used when callers pass a nil Env.
var Default = NewEnv()

// NewEnv returns an environment with mode ToNearestEven and all flags clear.
func NewEnv() *Env {
	return &Env{}
}

// SetRoundingMode sets the rounding-direction attribute. It returns an error
// for a value outside the four defined modes.
func (e *Env) SetRoundingMode(mode RoundingMode) error {
	if mode >= numModes {
		return fmt.Errorf("fenv: unsupported rounding mode %d", mode)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mode = mode
	return nil
}

// RoundingMode returns the current rounding-direction attribute.
func (e *Env) RoundingMode() RoundingMode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// Raise sets the given flag. Flags are sticky until cleared. Values outside
// the defined set are ignored.
func (e *Env) Raise(f Flag) {
	if f >= numFlags {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.flags[f] = true
}

// Test reports whether the given flag is raised.
func (e *Env) Test(f Flag) bool {
	if f >= numFlags {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.flags[f]
}

// Clear lowers the given flag.
func (e *Env) Clear(f Flag) {
	if f >= numFlags {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.flags[f] = false
}

// ClearAll lowers all five flags.
func (e *Env) ClearAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.flags = [numFlags]bool{}
}

// Snapshot returns the current state of all five flags.
func (e *Env) Snapshot() Exceptions {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Exceptions{
		Invalid:   e.flags[Invalid],
		DivByZero: e.flags[DivByZero],
		Overflow:  e.flags[Overflow],
		Underflow: e.flags[Underflow],
		Inexact:   e.flags[Inexact],
	}
}
