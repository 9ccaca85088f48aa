package match

import "fmt"

// matchError is the concrete type backing the sentinel.
type matchError string

func (e matchError) Error() string { return string(e) }

// ErrNoMatch matches every [*NoMatchError].
var ErrNoMatch error = matchError("no matching case")

// NoMatchError is returned when no case of a function or predicate case
// list matched and no default case was supplied. Value is the unmatched
// input; when it is itself an error it is also the cause.
type NoMatchError struct {
	Value any
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("failed to find matching case for %T", e.Value)
}

// Unwrap returns the unmatched input when it is an error.
func (e *NoMatchError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}

	return nil
}

// Is reports whether target is [ErrNoMatch].
func (*NoMatchError) Is(target error) bool { return target == ErrNoMatch }
