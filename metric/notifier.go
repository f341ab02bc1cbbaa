package metric

import (
	"context"
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/backoff/retry"
)

// Notifier records retry lifecycle events as Prometheus metrics. It
// implements retry.Notifier and is safe for concurrent use by any number
// of retry loops.
type Notifier struct {
	succeeded *prometheus.CounterVec
	throttled *prometheus.CounterVec
	delay     *prometheus.HistogramVec
}

// NewNotifier creates a Notifier and registers its collectors with reg.
func NewNotifier(reg prometheus.Registerer) (*Notifier, error) {
	n := &Notifier{
		succeeded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "backoff",
				Subsystem: "retry",
				Name:      "succeeded_total",
				Help:      "Operations that eventually succeeded, by attempts taken",
			},
			[]string{"operation", "attempts"},
		),
		throttled: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "backoff",
				Subsystem: "retry",
				Name:      "throttled_total",
				Help:      "Backoff sleeps taken before a retry",
			},
			[]string{"operation"},
		),
		delay: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "backoff",
				Subsystem: "retry",
				Name:      "delay_seconds",
				Help:      "Distribution of backoff delay durations",
				Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
			},
			[]string{"operation"},
		),
	}

	for name, c := range map[string]prometheus.Collector{
		"succeeded_total": n.succeeded,
		"throttled_total": n.throttled,
		"delay_seconds":   n.delay,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering %s: %w", name, err)
		}
	}

	return n, nil
}

// Notify implements retry.Notifier.
func (n *Notifier) Notify(_ context.Context, e retry.Event) {
	switch e.Signal {
	case retry.SignalRetries:
		n.succeeded.WithLabelValues(e.Operation, strconv.Itoa(e.Attempts)).Inc()
	case retry.SignalThrottle:
		n.throttled.WithLabelValues(e.Operation).Inc()
		n.delay.WithLabelValues(e.Operation).Observe(e.Delay.Seconds())
	}
}
