package combi

// Pattern: Fallback - route a failure (returned error or panic) into a
// handler whose result replaces the failed call's result. A panic raised by
// the handler itself is never recovered.

// Try calls f and returns its result, turning a panic into a
// [*PanicError].
//
//nolint:ireturn // generic type parameter R, not an interface
func Try[R any](f func() (R, error)) (result R, err error) {
	defer func() {
		if v := recover(); v != nil {
			var zero R
			result, err = zero, &PanicError{Value: v}
		}
	}()

	return f()
}

// WithErrorHandler wraps f so that an error or a panic is handed to handler,
// whose result is returned instead.
func WithErrorHandler[T, R any](f func(T) (R, error), handler func(error) R) func(T) R {
	return func(in T) R {
		v, err := Try(func() (R, error) { return f(in) })
		if err != nil {
			return handler(err)
		}

		return v
	}
}

// WithErrorHandler2 is [WithErrorHandler] for a two-argument operation.
func WithErrorHandler2[T, U, R any](f func(T, U) (R, error), handler func(error) R) func(T, U) R {
	return func(a T, b U) R {
		v, err := Try(func() (R, error) { return f(a, b) })
		if err != nil {
			return handler(err)
		}

		return v
	}
}

// WithErrorHandlerSupply is [WithErrorHandler] for an operation without
// input.
func WithErrorHandlerSupply[R any](f func() (R, error), handler func(error) R) func() R {
	return func() R {
		v, err := Try(f)
		if err != nil {
			return handler(err)
		}

		return v
	}
}

// WithErrorHandlerRun wraps a side effect so that an error or a panic is
// handed to handler.
func WithErrorHandlerRun(f func() error, handler func(error)) func() {
	return func() {
		if err := tryRun(f); err != nil {
			handler(err)
		}
	}
}

// WithErrorHandlerConsume wraps a consumer so that an error or a panic is
// handed to handler together with the consumed value.
func WithErrorHandlerConsume[T any](f func(T) error, handler func(T, error)) func(T) {
	return func(in T) {
		if err := tryRun(func() error { return f(in) }); err != nil {
			handler(in, err)
		}
	}
}

// WithErrorHandlerConsume2 is [WithErrorHandlerConsume] for a two-argument
// consumer.
func WithErrorHandlerConsume2[T, U any](f func(T, U) error, handler func(T, U, error)) func(T, U) {
	return func(a T, b U) {
		if err := tryRun(func() error { return f(a, b) }); err != nil {
			handler(a, b, err)
		}
	}
}

func tryRun(f func() error) error {
	_, err := Try(func() (struct{}, error) { return struct{}{}, f() })
	return err
}

// Lift turns a conventional fallible function into one reporting through
// an [Either]; a panic in f becomes a Left holding a [*PanicError].
func Lift[T, R any](f func(T) (R, error)) func(T) Either[error, R] {
	return func(in T) Either[error, R] {
		v, err := Try(func() (R, error) { return f(in) })

		return FromResult(v, err)
	}
}

// WithSideEffect wraps f so that effect observes every result before it
// is returned.
func WithSideEffect[T, R any](f func(T) R, effect func(R)) func(T) R {
	return func(in T) R {
		v := f(in)
		effect(v)

		return v
	}
}

// WithSideEffect2 is [WithSideEffect] for a two-argument function.
func WithSideEffect2[T, U, R any](f func(T, U) R, effect func(R)) func(T, U) R {
	return func(a T, b U) R {
		v := f(a, b)
		effect(v)

		return v
	}
}

// WithSideEffectSupply is [WithSideEffect] for an operation without input.
func WithSideEffectSupply[R any](f func() R, effect func(R)) func() R {
	return func() R {
		v := f()
		effect(v)

		return v
	}
}
