// Package retry drives retry loops over operations that fail transiently,
// pulling delays from a backoff.Sequence between attempts.
//
// # Overview
//
//   - Do: execute an operation with retry and exponential backoff
//   - DoWithResult: same, returning both result and error
//   - Wrap / WrapWithResult: compose retry behavior into a callable
//   - Retrier: a reusable policy bound to one configuration
//
// # Retry Semantics
//
// Nothing is retried without explicit approval: if Config.RetryIf is nil,
// the first failure is terminal. When the predicate approves a retry the
// attempt counter is incremented; once it exceeds MaxAttempts the most
// recent error is propagated verbatim, never wrapped, so errors.Is and
// errors.As checks against the operation's own failures keep working.
// MaxAttempts counts attempts, not retries: MaxAttempts = 1 means exactly
// one attempt and zero retries.
//
// # Notifications
//
// A Config may carry a Notifier, an optional capability that observes the
// loop's lifecycle: a "throttle" event before each backoff sleep and a
// "retries" event exactly once on eventual success. A nil Notifier
// receives nothing and is never required for correctness. The driver
// performs no logging of its own; NewLogNotifier adapts a slog.Logger
// into a Notifier for callers that want it, and the metric package
// provides a Prometheus-backed one.
//
// # Deterministic Testing
//
// Config.Sleep is the only suspension point and is substitutable. Tests
// install an instantly-returning SleepFunc to exercise full retry
// schedules without elapsed time:
//
//	var slept []time.Duration
//	cfg := retry.Config{
//	    MaxAttempts: 5,
//	    RetryIf:     func(error) bool { return true },
//	    Sleep: func(_ context.Context, d time.Duration) error {
//	        slept = append(slept, d)
//	        return nil
//	    },
//	}
//
// # Context Cancellation
//
// The context is passed through to the operation and checked during the
// backoff sleep; cancellation during a sleep ends the loop with the
// context's error.
package retry
