// Package errors classifies failures for retry decisions.
//
// # Overview
//
// The package implements a three-class error taxonomy: Transient
// (temporary, worth retrying), Invalid (bad input, never retry), and
// Fatal (unrecoverable, stop entirely). Classification predicates have
// the func(error) bool shape the retry driver expects, so they plug
// straight into a retry configuration:
//
//	err := retry.Do(ctx, retry.Config{
//	    MaxAttempts: 5,
//	    RetryIf:     errors.IsTransient,
//	}, dial)
//
// # Classification
//
// An error is classified, in order, by:
//
//  1. An explicit ClassifiedError in its wrap chain (errors.As).
//  2. Known sentinel errors (errors.Is against the package variables).
//  3. Common substrings in the error message, as a last resort for
//     third-party errors that expose no structure.
//
// A NonRetryable marker overrides everything: once an error is wrapped
// with NonRetryable, IsTransient reports false regardless of its
// contents.
//
// # Quick Start
//
// Return sentinels for known conditions:
//
//	if !available {
//	    return errors.ErrServiceUnavailable
//	}
//
// Wrap third-party errors with an explicit class:
//
//	if err := conn.Handshake(); err != nil {
//	    return errors.WrapTransient(err, "gateway", "handshake")
//	}
//
// Mark an error terminal from inside a retried operation:
//
//	if resp.StatusCode == http.StatusUnauthorized {
//	    return errors.NonRetryable(fmt.Errorf("auth rejected: %s", resp.Status))
//	}
package errors
