package fenv

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundingModeDefault(t *testing.T) {
	env := NewEnv()
	assert.Equal(t, ToNearestEven, env.RoundingMode())
}

func TestSetRoundingMode(t *testing.T) {
	env := NewEnv()

	for _, mode := range []RoundingMode{TowardNegative, TowardPositive, TowardZero, ToNearestEven} {
		require.NoError(t, env.SetRoundingMode(mode))
		assert.Equal(t, mode, env.RoundingMode())
	}
}

func TestSetRoundingModeInvalid(t *testing.T) {
	env := NewEnv()
	err := env.SetRoundingMode(RoundingMode(42))
	require.Error(t, err)
	assert.Equal(t, ToNearestEven, env.RoundingMode(), "failed set must not change the mode")
}

func TestRoundingModeString(t *testing.T) {
	assert.Equal(t, "roundTiesToEven", ToNearestEven.String())
	assert.Equal(t, "roundTowardNegative", TowardNegative.String())
	assert.Equal(t, "roundTowardPositive", TowardPositive.String())
	assert.Equal(t, "roundTowardZero", TowardZero.String())
}

func TestFlagsRaiseTestClear(t *testing.T) {
	env := NewEnv()
	flags := []Flag{Invalid, DivByZero, Overflow, Underflow, Inexact}

	for _, f := range flags {
		assert.False(t, env.Test(f), "%v must start clear", f)
	}

	env.Raise(Overflow)
	assert.True(t, env.Test(Overflow))
	assert.False(t, env.Test(Underflow))

	// Sticky: raising twice then clearing once leaves it clear.
	env.Raise(Overflow)
	env.Clear(Overflow)
	assert.False(t, env.Test(Overflow))
}

func TestClearAll(t *testing.T) {
	env := NewEnv()
	for _, f := range []Flag{Invalid, DivByZero, Overflow, Underflow, Inexact} {
		env.Raise(f)
	}
	require.True(t, env.Snapshot().Any())

	env.ClearAll()
	assert.Equal(t, Exceptions{}, env.Snapshot())
	assert.False(t, env.Snapshot().Any())
}

func TestSnapshot(t *testing.T) {
	env := NewEnv()
	env.Raise(Invalid)
	env.Raise(Inexact)

	assert.Equal(t, Exceptions{Invalid: true, Inexact: true}, env.Snapshot())
}

func TestFlagOutOfRange(t *testing.T) {
	env := NewEnv()
	env.Raise(Flag(99)) // must not panic
	assert.False(t, env.Test(Flag(99)))
	env.Clear(Flag(99))
}

func TestFlagString(t *testing.T) {
	assert.Equal(t, "invalid", Invalid.String())
	assert.Equal(t, "divisionByZero", DivByZero.String())
	assert.Equal(t, "inexact", Inexact.String())
}

func TestEnvConcurrent(t *testing.T) {
	env := NewEnv()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				env.Raise(Flag(n % 5))
				env.Test(Flag((n + 1) % 5))
				if j%100 == 0 {
					env.ClearAll()
				}
				_ = env.SetRoundingMode(RoundingMode(n % 4))
				_ = env.RoundingMode()
			}
		}(i)
	}
	wg.Wait()
}
