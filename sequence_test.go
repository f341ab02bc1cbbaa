package backoff

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence_Exponential(t *testing.T) {
	seq := New(Config{
		Base:   2,
		Factor: 1 * time.Millisecond,
	})

	for n, want := range []time.Duration{
		1 * time.Millisecond,
		2 * time.Millisecond,
		4 * time.Millisecond,
		8 * time.Millisecond,
		16 * time.Millisecond,
		32 * time.Millisecond,
	} {
		assert.Equal(t, want, seq.Next(), "pull %d", n)
	}
}

func TestSequence_MaxDelayCap(t *testing.T) {
	seq := New(Config{
		Base:     2,
		Factor:   1 * time.Millisecond,
		MaxDelay: 32 * time.Millisecond,
	})

	want := []time.Duration{1, 2, 4, 8, 16, 32, 32, 32, 32, 32}
	for n, w := range want {
		assert.Equal(t, w*time.Millisecond, seq.Next(), "pull %d", n)
	}
}

func TestSequence_MinDelayFloor(t *testing.T) {
	seq := New(Config{
		Base:     2,
		Factor:   1 * time.Millisecond,
		MinDelay: 5 * time.Millisecond,
	})

	want := []time.Duration{5, 5, 5, 8, 16, 32}
	for n, w := range want {
		assert.Equal(t, w*time.Millisecond, seq.Next(), "pull %d", n)
	}
}

func TestSequence_FloorAboveCapReducedToCap(t *testing.T) {
	// The ceiling wins when the floor contradicts it.
	seq := New(Config{
		Base:     2,
		Factor:   1 * time.Millisecond,
		MaxDelay: 10 * time.Millisecond,
		MinDelay: 500 * time.Millisecond,
	})

	for n := 0; n < 10; n++ {
		assert.Equal(t, 10*time.Millisecond, seq.Next(), "pull %d", n)
	}
}

func TestSequence_ConstantWhenBaseOne(t *testing.T) {
	seq := New(Config{
		Base:   1,
		Factor: 7 * time.Millisecond,
	})

	for n := 0; n < 20; n++ {
		assert.Equal(t, 7*time.Millisecond, seq.Next(), "pull %d", n)
	}
}

func TestSequence_Defaults(t *testing.T) {
	seq := New(Config{})

	assert.Equal(t, 50*time.Millisecond, seq.Next())
	assert.Equal(t, 100*time.Millisecond, seq.Next())
	assert.Equal(t, 200*time.Millisecond, seq.Next())
}

func TestSequence_FullJitterBounds(t *testing.T) {
	seq := New(Config{
		Base:     2,
		Factor:   10 * time.Millisecond,
		MaxDelay: 100 * time.Millisecond,
		Jitter:   Full,
	})

	deterministic := New(Config{
		Base:     2,
		Factor:   10 * time.Millisecond,
		MaxDelay: 100 * time.Millisecond,
	})

	for n := 0; n < 200; n++ {
		v := seq.Next()
		max := deterministic.Next()
		require.GreaterOrEqual(t, v, time.Duration(0), "pull %d", n)
		require.LessOrEqual(t, v, max, "pull %d", n)
	}
}

func TestSequence_PartialJitterBounds(t *testing.T) {
	const j = 0.3
	seq := New(Config{
		Base:     2,
		Factor:   10 * time.Millisecond,
		MaxDelay: 100 * time.Millisecond,
		Jitter:   j,
	})

	deterministic := New(Config{
		Base:     2,
		Factor:   10 * time.Millisecond,
		MaxDelay: 100 * time.Millisecond,
	})

	for n := 0; n < 200; n++ {
		v := seq.Next()
		max := deterministic.Next()
		low := time.Duration(float64(max) * (1 - j)).Round(time.Millisecond)
		require.GreaterOrEqual(t, v, low, "pull %d", n)
		require.LessOrEqual(t, v, max, "pull %d", n)
	}
}

func TestSequence_JitterEndpoints(t *testing.T) {
	// Pin the random source to the band endpoints.
	seq := New(Config{
		Base:   2,
		Factor: 100 * time.Millisecond,
		Jitter: 0.5,
	})

	seq.rnd = func() float64 { return 0 }
	assert.Equal(t, 50*time.Millisecond, seq.Next()) // low end of [(1-j)*v, v]

	seq.rnd = func() float64 { return 1 }
	assert.Equal(t, 200*time.Millisecond, seq.Next()) // high end equals v
}

func TestSequence_JitterAdvancesExponent(t *testing.T) {
	// Every pull advances the exponent by exactly one, jittered or not.
	seq := New(Config{
		Base:   2,
		Factor: 1 * time.Millisecond,
		Jitter: Full,
	})
	seq.rnd = func() float64 { return 1 }

	assert.Equal(t, 1*time.Millisecond, seq.Next())
	assert.Equal(t, 2*time.Millisecond, seq.Next())
	assert.Equal(t, 4*time.Millisecond, seq.Next())
}

func TestSequence_NegativeFactorIsWellDefined(t *testing.T) {
	// Degenerate configuration is not validated; the arithmetic simply
	// produces negative values. An unset MinDelay is no floor at all, so
	// nothing clamps them to zero.
	seq := New(Config{
		Base:   2,
		Factor: -1 * time.Millisecond,
	})

	assert.Equal(t, -1*time.Millisecond, seq.Next())
	assert.Equal(t, -2*time.Millisecond, seq.Next())
}

func TestSequence_NegativeValuesPassCapUnfloored(t *testing.T) {
	// A cap without a floor leaves negative values untouched.
	seq := New(Config{
		Base:     2,
		Factor:   -1 * time.Millisecond,
		MaxDelay: 10 * time.Millisecond,
	})

	assert.Equal(t, -1*time.Millisecond, seq.Next())
	assert.Equal(t, -2*time.Millisecond, seq.Next())
	assert.Equal(t, -4*time.Millisecond, seq.Next())
}

func BenchmarkSequence_Next(b *testing.B) {
	seq := New(Config{
		Base:     2,
		Factor:   1 * time.Millisecond,
		MaxDelay: time.Second,
		Jitter:   Full,
	})
	for i := 0; i < b.N; i++ {
		_ = seq.Next()
	}
}
