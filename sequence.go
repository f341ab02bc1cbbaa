package backoff

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// Full is the Jitter value for full jitter: each delay is drawn uniformly
// from [0, deterministic value].
const Full = 1.0

var (
	// Thread-safe random source for jitter
	randMu     sync.Mutex
	randSource = rand.New(rand.NewSource(time.Now().UnixNano()))
)

func randFloat() float64 {
	randMu.Lock()
	defer randMu.Unlock()
	return randSource.Float64()
}

// Config describes one delay sequence. The zero value of a field means
// "unset" and takes the documented default.
type Config struct {
	// Base is the exponent base. Defaults to 2; a Base of 1 yields a
	// constant (non-growing) sequence.
	Base float64

	// Factor is the multiplier applied to Base^n. Defaults to 50ms.
	Factor time.Duration

	// MaxDelay caps the pre-jitter delay. 0 means uncapped.
	MaxDelay time.Duration

	// MinDelay is a floor on the pre-jitter delay, applied after the cap.
	// 0 means no floor. A MinDelay above MaxDelay is silently reduced to
	// MaxDelay.
	MinDelay time.Duration

	// Jitter randomizes each delay within [(1-Jitter)*v, v]. 0 disables
	// jitter; Full (1.0) randomizes across [0, v].
	Jitter float64
}

// DefaultConfig returns the standard sequence configuration: base 2,
// factor 50ms, no clamps, no jitter.
func DefaultConfig() Config {
	return Config{
		Base:   2,
		Factor: 50 * time.Millisecond,
	}
}

// Sequence is a lazy, infinite iterator over delay values. Each call to
// Next advances the exponent by exactly one. The pre-jitter value at any
// position depends only on that position, never on earlier jittered
// outputs.
//
// No validation is performed on Base or Factor; degenerate configuration
// such as a negative factor produces degenerate but well-defined
// arithmetic, not an error.
type Sequence struct {
	base     float64
	factor   float64
	maxDelay float64 // 0 = uncapped
	minDelay float64
	jitter   float64

	attempt int

	// rnd is swapped in tests for deterministic jitter.
	rnd func() float64
}

// New creates a Sequence from cfg, resolving defaults for unset fields.
func New(cfg Config) *Sequence {
	base := cfg.Base
	if base == 0 {
		base = 2
	}
	factor := cfg.Factor
	if factor == 0 {
		factor = 50 * time.Millisecond
	}
	minDelay := cfg.MinDelay
	if cfg.MaxDelay > 0 && minDelay > cfg.MaxDelay {
		// The ceiling wins over a contradictory floor.
		minDelay = cfg.MaxDelay
	}
	return &Sequence{
		base:     base,
		factor:   float64(factor),
		maxDelay: float64(cfg.MaxDelay),
		minDelay: float64(minDelay),
		jitter:   cfg.Jitter,
		rnd:      randFloat,
	}
}

// Next returns the next delay in the sequence, advancing the exponent by
// one whether or not jitter is applied.
func (s *Sequence) Next() time.Duration {
	value := s.factor * math.Pow(s.base, float64(s.attempt))
	s.attempt++

	if s.maxDelay > 0 && value > s.maxDelay {
		value = s.maxDelay
	}
	if s.minDelay > 0 && value < s.minDelay {
		value = s.minDelay
	}

	if s.jitter <= 0 {
		return time.Duration(value)
	}

	low := (1 - s.jitter) * value
	value = low + s.rnd()*(value-low)

	// Jittered delays are rounded to the nearest millisecond.
	return time.Duration(math.Round(value/float64(time.Millisecond))) * time.Millisecond
}
