package combi

import (
	"context"
	"fmt"
	"math"
	"time"
)

// RetryParams configures a retrier. Retries, InitialWait and Multiplier
// must not be negative; builders reject them with [ErrInvalidConfig] before
// any attempt is made.
type RetryParams struct {
	// Backoff overrides the default [GeometricBackoff] built from
	// InitialWait and Multiplier. Optional.
	Backoff BackoffStrategy
	// Clock provides the timers waited on between attempts. Optional,
	// defaults to [RealClock].
	Clock Clock
	// Hooks receives lifecycle events. Optional.
	Hooks *Hooks
	// Retries is the attempt budget. Zero means no attempt is made.
	Retries int
	// InitialWait is the wait after the first failed attempt, truncated to
	// whole milliseconds.
	InitialWait time.Duration
	// MaxWait caps every wait when positive. Optional.
	MaxWait time.Duration
	// Multiplier scales the wait after every attempt.
	Multiplier float64
}

// Validate checks the numeric parameters.
func (p RetryParams) Validate() error {
	if p.Retries < 0 {
		return invalidConfig("retries", p.Retries)
	}

	if p.InitialWait < 0 {
		return invalidConfig("initial wait", p.InitialWait)
	}

	if p.Multiplier < 0 || math.IsNaN(p.Multiplier) {
		return invalidConfig("multiplier", p.Multiplier)
	}

	if p.MaxWait < 0 {
		return invalidConfig("max wait", p.MaxWait)
	}

	return nil
}

// retrier is the validated, immutable form of RetryParams.
type retrier struct {
	backoff BackoffStrategy
	clock   Clock
	hooks   *Hooks
	retries int
}

func newRetrier(p RetryParams) (*retrier, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	strategy := p.Backoff
	if strategy == nil {
		strategy = GeometricBackoff(p.InitialWait, p.Multiplier)
	}

	clock := p.Clock
	if clock == nil {
		clock = RealClock{}
	}

	return &retrier{
		backoff: capBackoff(strategy, p.MaxWait),
		clock:   clock,
		hooks:   p.Hooks,
		retries: p.Retries,
	}, nil
}

// attemptFunc performs one attempt. accepted reports whether the result
// satisfied the success predicate; it is ignored when err is not nil.
type attemptFunc[R any] func(ctx context.Context) (result R, accepted bool, err error)

// run drives the attempt loop. The returned error is a [*RetryError] when
// the budget is used up, or wraps [ErrInterrupted] when ctx is cancelled
// during a wait.
func run[R any](ctx context.Context, r *retrier, attempt attemptFunc[R]) (R, error) {
	var zero R

	last := r.retries - 1

	for i := range r.retries {
		n := i + 1
		r.hooks.emitAttempt(n)

		result, accepted, err := guard(ctx, attempt)

		if err != nil {
			r.hooks.emitFailure(n, err)

			if i == last {
				return zero, r.exhausted(err)
			}
		} else {
			if accepted {
				r.hooks.emitSuccess(n)
				return result, nil
			}

			r.hooks.emitRejected(n)

			if i == last {
				break
			}
		}

		wait := r.backoff.Delay(i)
		r.hooks.emitRetry(n, wait)

		if sleepErr := sleep(ctx, r.clock, wait); sleepErr != nil {
			interrupted := fmt.Errorf("%w: %w", ErrInterrupted, sleepErr)
			r.hooks.emitInterrupted(interrupted)

			return zero, interrupted
		}
	}

	return zero, r.exhausted(nil)
}

func (r *retrier) exhausted(cause error) error {
	err := &RetryError{Retries: r.retries, Cause: cause}
	r.hooks.emitExhausted(err)

	return err
}

// guard runs one attempt, turning a panic into a [*PanicError].
func guard[R any](ctx context.Context, attempt attemptFunc[R]) (result R, accepted bool, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = &PanicError{Value: v}
		}
	}()

	return attempt(ctx)
}

func checked[R any](v R, err error, pred func(R) bool) (R, bool, error) {
	if err != nil {
		return v, false, err
	}

	return v, pred(v), nil
}

func checkedEither[L, R any](e Either[L, R], pred func(R) bool) (R, bool, error) {
	v, ok := e.GetRight()
	if !ok {
		return v, false, nil
	}

	return v, pred(v), nil
}

// checkFuncs returns a configuration error naming the first absent
// function. present and names are parallel.
func checkFuncs(present []bool, names ...string) error {
	for i, ok := range present {
		if !ok {
			return missing(names[i])
		}
	}

	return nil
}

// ---------------------------------------------------------------------------
// Function forms
// ---------------------------------------------------------------------------

// Retry wraps f so that each call of the returned function invokes f up to
// p.Retries times, returning the first result accepted by pred. A failed
// attempt is one where f returns an error or panics.
//
// When no attempt succeeds the returned error is a [*RetryError]; when ctx
// is cancelled during a wait it wraps [ErrInterrupted]. Retry itself only
// fails on invalid configuration.
func Retry[T, R any](
	f func(context.Context, T) (R, error),
	pred func(R) bool,
	p RetryParams,
) (func(context.Context, T) (R, error), error) {
	if err := checkFuncs(
		[]bool{f != nil, pred != nil},
		"operation", "predicate",
	); err != nil {
		return nil, err
	}

	r, err := newRetrier(p)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context, in T) (R, error) {
		return run(ctx, r, func(ctx context.Context) (R, bool, error) {
			v, err := f(ctx, in)
			return checked(v, err, pred)
		})
	}, nil
}

// RetryEither is [Retry] with failures channeled into the Left side: the
// error that would have been returned is handed to mapErr. A panic in
// mapErr is not recovered.
func RetryEither[T, L, R any](
	f func(context.Context, T) (R, error),
	pred func(R) bool,
	mapErr func(error) L,
	p RetryParams,
) (func(context.Context, T) Either[L, R], error) {
	if err := checkFuncs(
		[]bool{f != nil, pred != nil, mapErr != nil},
		"operation", "predicate", "error mapper",
	); err != nil {
		return nil, err
	}

	r, err := newRetrier(p)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context, in T) Either[L, R] {
		v, err := run(ctx, r, func(ctx context.Context) (R, bool, error) {
			v, err := f(ctx, in)
			return checked(v, err, pred)
		})
		if err != nil {
			return Left[L, R](mapErr(err))
		}

		return Right[L](v)
	}, nil
}

// RetryEitherFunc retries an operation that already reports through an
// [Either]. An inner Left counts as a result rejected by pred, not as a
// failure; only an error raised by f (a panic) is a failure.
func RetryEitherFunc[T, L1, L2, R any](
	f func(context.Context, T) Either[L1, R],
	pred func(R) bool,
	mapErr func(error) L2,
	p RetryParams,
) (func(context.Context, T) Either[L2, R], error) {
	if err := checkFuncs(
		[]bool{f != nil, pred != nil, mapErr != nil},
		"operation", "predicate", "error mapper",
	); err != nil {
		return nil, err
	}

	r, err := newRetrier(p)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context, in T) Either[L2, R] {
		v, err := run(ctx, r, func(ctx context.Context) (R, bool, error) {
			return checkedEither(f(ctx, in), pred)
		})
		if err != nil {
			return Left[L2, R](mapErr(err))
		}

		return Right[L2](v)
	}, nil
}

// ---------------------------------------------------------------------------
// Supplier forms
// ---------------------------------------------------------------------------

// RetrySupply is [Retry] for an operation without input.
func RetrySupply[R any](
	f func(context.Context) (R, error),
	pred func(R) bool,
	p RetryParams,
) (func(context.Context) (R, error), error) {
	if f == nil {
		return nil, missing("operation")
	}

	wrapped, err := Retry(func(ctx context.Context, _ struct{}) (R, error) {
		return f(ctx)
	}, pred, p)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context) (R, error) {
		return wrapped(ctx, struct{}{})
	}, nil
}

// RetrySupplyEither is [RetryEither] for an operation without input.
func RetrySupplyEither[L, R any](
	f func(context.Context) (R, error),
	pred func(R) bool,
	mapErr func(error) L,
	p RetryParams,
) (func(context.Context) Either[L, R], error) {
	if f == nil {
		return nil, missing("operation")
	}

	wrapped, err := RetryEither(func(ctx context.Context, _ struct{}) (R, error) {
		return f(ctx)
	}, pred, mapErr, p)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context) Either[L, R] {
		return wrapped(ctx, struct{}{})
	}, nil
}

// RetryEitherSupply is [RetryEitherFunc] for an operation without input.
func RetryEitherSupply[L1, L2, R any](
	f func(context.Context) Either[L1, R],
	pred func(R) bool,
	mapErr func(error) L2,
	p RetryParams,
) (func(context.Context) Either[L2, R], error) {
	if f == nil {
		return nil, missing("operation")
	}

	wrapped, err := RetryEitherFunc(func(ctx context.Context, _ struct{}) Either[L1, R] {
		return f(ctx)
	}, pred, mapErr, p)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context) Either[L2, R] {
		return wrapped(ctx, struct{}{})
	}, nil
}

// ---------------------------------------------------------------------------
// Side-effect form
// ---------------------------------------------------------------------------

// RetryRun wraps a side effect. An attempt succeeds when f returns nil
// without panicking. When every attempt fails, or a wait is interrupted,
// onErr receives the error; a panic in onErr is not recovered.
func RetryRun(
	f func(context.Context) error,
	onErr func(error),
	p RetryParams,
) (func(context.Context), error) {
	if err := checkFuncs(
		[]bool{f != nil, onErr != nil},
		"operation", "error handler",
	); err != nil {
		return nil, err
	}

	r, err := newRetrier(p)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context) {
		_, err := run(ctx, r, func(ctx context.Context) (struct{}, bool, error) {
			return struct{}{}, true, f(ctx)
		})
		if err != nil {
			onErr(err)
		}
	}, nil
}

// Do builds a one-shot retrier for f and invokes it once.
func Do[R any](
	ctx context.Context,
	f func(context.Context) (R, error),
	pred func(R) bool,
	p RetryParams,
) (R, error) {
	wrapped, err := RetrySupply(f, pred, p)
	if err != nil {
		var zero R
		return zero, err
	}

	return wrapped(ctx)
}

// Always is a success predicate accepting every result.
func Always[R any](R) bool { return true }
