// Package backoff generates exponentially growing delay sequences for
// retrying operations that fail transiently.
//
// # Overview
//
// The module has two layers. This root package is the delay sequence
// generator: a pure, lazy, infinite iterator over delay values following
// Factor * Base^n, clamped to optional floor and ceiling values, with
// optional jitter. The retry subpackage consumes a Sequence to drive a
// retry loop around an arbitrary operation.
//
// # Delay Computation
//
// The n-th value of a Sequence (n = 0, 1, 2, ...) is computed as:
//
//  1. raw = Factor * Base^n
//  2. capped at MaxDelay when MaxDelay is set
//  3. raised to MinDelay when MinDelay is set (the ceiling wins over the
//     floor: a floor above the ceiling is reduced to the ceiling)
//  4. jittered per the Jitter setting, then rounded to the nearest
//     millisecond
//
// A Base of 1 produces a constant sequence equal to Factor (clamped).
// The sequence never terminates on its own; bounding the number of pulls
// is the consumer's responsibility.
//
// # Jitter
//
// Jitter is a single factor in [0, 1]:
//
//   - 0 (the zero value) applies no jitter; every value is deterministic.
//   - j in (0, 1) draws uniformly from [(1-j)*v, v] where v is the
//     deterministic value.
//   - Full (1.0) draws uniformly from [0, v], the full-jitter strategy from
//     the exponential backoff and jitter literature.
//
// # Usage
//
// Pull delays directly:
//
//	seq := backoff.New(backoff.Config{
//	    Base:     2,
//	    Factor:   100 * time.Millisecond,
//	    MaxDelay: 5 * time.Second,
//	    Jitter:   backoff.Full,
//	})
//	for i := 0; i < attempts; i++ {
//	    time.Sleep(seq.Next())
//	    // ...
//	}
//
// Or let the retry subpackage drive the loop:
//
//	err := retry.Do(ctx, retry.Config{
//	    MaxAttempts: 5,
//	    RetryIf:     errors.IsTransient,
//	}, func(ctx context.Context) error {
//	    return client.Connect(ctx)
//	})
//
// # Thread Safety
//
// A Sequence is owned by a single retry loop and is not safe for
// concurrent use. Independent Sequences share no mutable state beyond a
// mutex-guarded random source, so any number of retry loops may run
// concurrently.
package backoff
