// Package retry drives backoff retry loops around fallible operations.
package retry

import (
	"context"
	"time"

	"github.com/c360/backoff"
)

// SleepFunc suspends the calling goroutine for d or until ctx is done,
// returning the context's error in the latter case. It is the driver's
// only suspension point and is substitutable for deterministic tests.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Config provides retry configuration. It is read once when a loop
// starts and never mutated.
type Config struct {
	// Base is the exponent base of the delay sequence. Defaults to 2.
	Base float64

	// Factor is the multiplier applied to Base^n. Defaults to 50ms.
	Factor time.Duration

	// MaxDelay caps the pre-jitter delay. 0 means uncapped.
	MaxDelay time.Duration

	// MinDelay is a floor on the pre-jitter delay; 0 means no floor, and
	// a floor above MaxDelay is reduced to MaxDelay.
	MinDelay time.Duration

	// Jitter randomizes each delay, see backoff.Config.Jitter.
	Jitter float64

	// MaxAttempts is the total number of permitted attempts, first
	// attempt included. Defaults to 1: one attempt, zero retries.
	MaxAttempts int

	// RetryIf reports whether a failure warrants another attempt. A nil
	// predicate means no failure is ever retried.
	RetryIf func(error) bool

	// Sleep suspends between attempts. Defaults to a timer-based sleep
	// that honors context cancellation.
	Sleep SleepFunc

	// Notifier, when non-nil, observes throttle and retries events.
	Notifier Notifier

	// Operation names the operation in emitted events.
	Operation string
}

// DefaultConfig returns the standard retry configuration: base 2, factor
// 50ms, a single attempt, no jitter, no predicate.
func DefaultConfig() Config {
	return Config{
		Base:        2,
		Factor:      50 * time.Millisecond,
		MaxAttempts: 1,
	}
}

// Do executes fn until it succeeds, the attempt budget is exhausted, or
// the predicate declines to retry a failure.
//
// The terminal error is always one of fn's own errors, propagated
// verbatim, except when the sleep is interrupted by context
// cancellation, in which case the context's error is returned.
func Do(ctx context.Context, cfg Config, fn func(context.Context) error) error {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	sleep := cfg.Sleep
	if sleep == nil {
		sleep = defaultSleep
	}

	seq := backoff.New(backoff.Config{
		Base:     cfg.Base,
		Factor:   cfg.Factor,
		MaxDelay: cfg.MaxDelay,
		MinDelay: cfg.MinDelay,
		Jitter:   cfg.Jitter,
	})

	attempts := 1
	var lastErr error

	for {
		err := fn(ctx)
		if err == nil {
			notify(ctx, cfg.Notifier, Event{
				Signal:    SignalRetries,
				Operation: cfg.Operation,
				Attempts:  attempts,
			})
			return nil
		}
		lastErr = err

		if cfg.RetryIf == nil || !cfg.RetryIf(err) {
			return lastErr
		}

		attempts++
		if attempts > maxAttempts {
			// Retries exhausted: the last failure is propagated as-is.
			return lastErr
		}

		delay := seq.Next()
		notify(ctx, cfg.Notifier, Event{
			Signal:    SignalThrottle,
			Operation: cfg.Operation,
			Delay:     delay,
			Err:       lastErr,
		})
		if serr := sleep(ctx, delay); serr != nil {
			return serr
		}
	}
}

// DoWithResult executes fn with retry and returns both result and error.
func DoWithResult[T any](ctx context.Context, cfg Config, fn func(context.Context) (T, error)) (T, error) {
	var result T
	err := Do(ctx, cfg, func(ctx context.Context) error {
		var innerErr error
		result, innerErr = fn(ctx)
		return innerErr
	})
	return result, err
}

func defaultSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
