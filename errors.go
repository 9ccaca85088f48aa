package combi

import (
	"errors"
	"fmt"
	"strconv"
)

type (
	// RetryError is produced when a retrier has used its whole attempt
	// budget. Cause holds the failure raised by the last attempt, or nil when
	// the attempts only returned results rejected by the success predicate.
	RetryError struct {
		Cause   error
		Retries int
	}

	// PanicError carries a value recovered from a panicking operation.
	PanicError struct {
		Value any
	}

	// combiError is the concrete type backing all sentinel errors.
	combiError string
)

// Sentinel errors.
var (
	// ErrInvalidConfig is returned by retry builders when a parameter is
	// out of range or a required function is missing.
	ErrInvalidConfig error = combiError("invalid configuration")
	// ErrRetriesExhausted matches every [*RetryError].
	ErrRetriesExhausted error = combiError("retries exhausted")
	// ErrInterrupted is reported when the wait between two attempts is
	// cancelled through the context.
	ErrInterrupted error = combiError("interrupted")
	// ErrNilValue is the panic value used when an [Either] is built from a
	// nil payload.
	ErrNilValue error = combiError("nil value")
	// ErrPanic matches every [*PanicError].
	ErrPanic error = combiError("panic")
)

func (e combiError) Error() string { return string(e) }

// Error returns "retried N times but failed", followed by " with exception"
// when the last attempt failed rather than being rejected.
func (e *RetryError) Error() string {
	msg := "retried " + strconv.Itoa(e.Retries) + " times but failed"
	if e.Cause != nil {
		msg += " with exception"
	}

	return msg
}

func (e *RetryError) Unwrap() error { return e.Cause }

// Is reports whether target is [ErrRetriesExhausted].
func (*RetryError) Is(target error) bool { return target == ErrRetriesExhausted }

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the recovered value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}

	return nil
}

// Is reports whether target is [ErrPanic].
func (*PanicError) Is(target error) bool { return target == ErrPanic }

// IsExhausted reports whether err comes from a retrier that ran out of
// attempts.
func IsExhausted(err error) bool {
	return errors.Is(err, ErrRetriesExhausted)
}

// IsInterrupted reports whether err comes from a cancelled backoff wait.
func IsInterrupted(err error) bool {
	return errors.Is(err, ErrInterrupted)
}

func invalidConfig(field string, value any) error {
	return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidConfig, field, value)
}

func missing(what string) error {
	return fmt.Errorf("%w: %s is required", ErrInvalidConfig, what)
}
