package retry

import (
	"context"
	"log/slog"
	"time"
)

// Signal names a retry lifecycle event.
type Signal string

const (
	// SignalRetries is emitted exactly once when an operation eventually
	// succeeds, carrying the number of attempts taken.
	SignalRetries Signal = "retries"

	// SignalThrottle is emitted once per backoff sleep, carrying the
	// upcoming delay and the failure that triggered the retry.
	SignalThrottle Signal = "throttle"
)

// Event is the payload delivered to a Notifier.
type Event struct {
	Signal    Signal
	Operation string

	// Attempts is the attempt counter at success (retries events).
	Attempts int

	// Delay is the upcoming sleep duration (throttle events).
	Delay time.Duration

	// Err is the failure that triggered the retry (throttle events).
	Err error
}

// Notifier observes retry lifecycle events. Implementations must not
// block; the driver calls Notify synchronously on the retry goroutine.
type Notifier interface {
	Notify(ctx context.Context, e Event)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, e Event)

// Notify implements Notifier.
func (f NotifierFunc) Notify(ctx context.Context, e Event) {
	f(ctx, e)
}

func notify(ctx context.Context, n Notifier, e Event) {
	if n == nil {
		return
	}
	n.Notify(ctx, e)
}

// NewLogNotifier returns a Notifier that records throttle events at warn
// level and eventual successes at debug level on logger.
func NewLogNotifier(logger *slog.Logger) Notifier {
	return NotifierFunc(func(ctx context.Context, e Event) {
		switch e.Signal {
		case SignalThrottle:
			logger.WarnContext(ctx, "retrying after failure",
				"operation", e.Operation,
				"delay", e.Delay,
				"error", e.Err,
			)
		case SignalRetries:
			logger.DebugContext(ctx, "operation succeeded",
				"operation", e.Operation,
				"attempts", e.Attempts,
			)
		}
	})
}
