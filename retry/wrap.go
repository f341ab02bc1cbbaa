package retry

import "context"

// Wrap composes retry behavior into fn, returning a callable with the
// same signature. The configuration is resolved once, at composition
// time.
func Wrap(cfg Config, fn func(context.Context) error) func(context.Context) error {
	return func(ctx context.Context) error {
		return Do(ctx, cfg, fn)
	}
}

// WrapWithResult is Wrap for operations that return a value.
func WrapWithResult[T any](cfg Config, fn func(context.Context) (T, error)) func(context.Context) (T, error) {
	return func(ctx context.Context) (T, error) {
		return DoWithResult(ctx, cfg, fn)
	}
}

// Retrier is a reusable retry policy bound to one configuration, for
// call sites that share a policy across many operations.
type Retrier struct {
	cfg Config
}

// New returns a Retrier bound to cfg.
func New(cfg Config) *Retrier {
	return &Retrier{cfg: cfg}
}

// Do executes fn under the bound configuration.
func (r *Retrier) Do(ctx context.Context, fn func(context.Context) error) error {
	return Do(ctx, r.cfg, fn)
}

// Wrap composes the bound configuration into fn.
func (r *Retrier) Wrap(fn func(context.Context) error) func(context.Context) error {
	return Wrap(r.cfg, fn)
}
