// Package metric provides a Prometheus-backed retry notifier.
//
// The Notifier implements retry.Notifier, translating throttle and
// retries events into counters and histograms so that retry pressure is
// visible on a dashboard without any logging in the hot path:
//
//	reg := prometheus.NewRegistry()
//	notifier, err := metric.NewNotifier(reg)
//	if err != nil {
//	    return err
//	}
//
//	err = retry.Do(ctx, retry.Config{
//	    MaxAttempts: 5,
//	    RetryIf:     errors.IsTransient,
//	    Notifier:    notifier,
//	    Operation:   "publish",
//	}, publish)
//
// Exposed series, all labeled by operation:
//
//   - backoff_retry_succeeded_total: successes, by attempts taken
//   - backoff_retry_throttled_total: backoff sleeps
//   - backoff_retry_delay_seconds: distribution of backoff delays
package metric
