package combi

import (
	"fmt"
	"reflect"
)

// Side identifies the populated side of an [Either].
type Side uint8

const (
	// SideLeft is the alternate (usually failure) channel.
	SideLeft Side = iota
	// SideRight is the success channel.
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "Right"
	}

	return "Left"
}

// Projector exposes the populated side of a two-sided value without its
// type parameters. Every [Either] instantiation implements it, which lets
// code holding an any match on the side and payload of an Either it
// cannot name.
type Projector interface {
	Project() (Side, any)
}

// Either holds exactly one of a Left value of type L or a Right value of
// type R. Right is the success channel by convention.
//
// Values are immutable: [Map], [MapLeft] and [FlatMap] return new values.
// The zero value is a Left holding the zero value of L; use [Left] and
// [Right] to build values.
type Either[L, R any] struct {
	left  L
	right R
	side  Side
}

// Left builds a Left value. It panics with an error wrapping [ErrNilValue]
// when v is a nil pointer, interface, map, slice, func or channel.
func Left[L, R any](v L) Either[L, R] {
	mustNotBeNil(v, SideLeft)
	return Either[L, R]{left: v, side: SideLeft}
}

// Right builds a Right value. It panics with an error wrapping
// [ErrNilValue] when v is a nil pointer, interface, map, slice, func or
// channel.
func Right[L, R any](v R) Either[L, R] {
	mustNotBeNil(v, SideRight)
	return Either[L, R]{right: v, side: SideRight}
}

// FromNullable returns Right(*v) when v is not nil, Left(leftSupplier())
// otherwise.
func FromNullable[L, R any](v *R, leftSupplier func() L) Either[L, R] {
	if v == nil {
		return Left[L, R](leftSupplier())
	}

	return Right[L](*v)
}

// FromOption returns Right of the option's value when present,
// Left(leftSupplier()) otherwise.
func FromOption[L, R any](opt Option[R], leftSupplier func() L) Either[L, R] {
	return OptionToEither(opt, Right[L, R], leftSupplier)
}

// FromResult lifts a conventional (value, error) pair: a non-nil err gives
// Left(err), anything else Right(v).
func FromResult[R any](v R, err error) Either[error, R] {
	if err != nil {
		return Left[error, R](err)
	}

	return Right[error](v)
}

// ThisOrThat returns primary when it is a Right and otherwise the result of
// alternative, which is only called in that case.
func ThisOrThat[L, R any](primary Either[L, R], alternative func() Either[L, R]) Either[L, R] {
	if primary.IsRight() {
		return primary
	}

	return alternative()
}

// Map applies f to a Right payload. A Left is returned unchanged.
func Map[L, R, T any](e Either[L, R], f func(R) T) Either[L, T] {
	if e.side == SideRight {
		return Right[L](f(e.right))
	}

	return Either[L, T]{left: e.left, side: SideLeft}
}

// MapLeft applies f to a Left payload. A Right is returned unchanged.
func MapLeft[L, R, T any](e Either[L, R], f func(L) T) Either[T, R] {
	if e.side == SideLeft {
		return Left[T, R](f(e.left))
	}

	return Either[T, R]{right: e.right, side: SideRight}
}

// FlatMap hands a Right payload to f and returns its result. A Left is
// returned unchanged.
func FlatMap[L, R, T any](e Either[L, R], f func(R) Either[L, T]) Either[L, T] {
	if e.side == SideRight {
		return f(e.right)
	}

	return Either[L, T]{left: e.left, side: SideLeft}
}

// Fold calls exactly one of leftSink or rightSink and returns its result.
func Fold[L, R, T any](e Either[L, R], leftSink func(L) T, rightSink func(R) T) T {
	if e.side == SideRight {
		return rightSink(e.right)
	}

	return leftSink(e.left)
}

// IsLeft reports whether the Left side is populated.
func (e Either[L, R]) IsLeft() bool { return e.side == SideLeft }

// IsRight reports whether the Right side is populated.
func (e Either[L, R]) IsRight() bool { return e.side == SideRight }

// GetLeft returns the Left payload and true, or the zero value and false.
func (e Either[L, R]) GetLeft() (L, bool) {
	if e.side == SideLeft {
		return e.left, true
	}

	var zero L

	return zero, false
}

// GetRight returns the Right payload and true, or the zero value and false.
func (e Either[L, R]) GetRight() (R, bool) {
	if e.side == SideRight {
		return e.right, true
	}

	var zero R

	return zero, false
}

// LeftOption returns the Left payload as an [Option].
func (e Either[L, R]) LeftOption() Option[L] {
	if e.side == SideLeft {
		return Some(e.left)
	}

	return None[L]()
}

// RightOption returns the Right payload as an [Option].
func (e Either[L, R]) RightOption() Option[R] {
	if e.side == SideRight {
		return Some(e.right)
	}

	return None[R]()
}

// GetOrError returns the Right payload, or the error built by errorFactory
// from the Left payload.
func (e Either[L, R]) GetOrError(errorFactory func(L) error) (R, error) {
	if e.side == SideRight {
		return e.right, nil
	}

	var zero R

	return zero, errorFactory(e.left)
}

// MustGet returns the Right payload, or panics with the error built by
// errorFactory from the Left payload.
func (e Either[L, R]) MustGet(errorFactory func(L) error) R {
	v, err := e.GetOrError(errorFactory)
	if err != nil {
		panic(err)
	}

	return v
}

// Result returns both payloads and whether the Right side is populated.
func (e Either[L, R]) Result() (R, L, bool) {
	return e.right, e.left, e.side == SideRight
}

// IfLeft calls f with the Left payload, if any.
func (e Either[L, R]) IfLeft(f func(L)) {
	if e.side == SideLeft {
		f(e.left)
	}
}

// IfRight calls f with the Right payload, if any.
func (e Either[L, R]) IfRight(f func(R)) {
	if e.side == SideRight {
		f(e.right)
	}
}

// Consume hands the whole value to f.
func (e Either[L, R]) Consume(f func(Either[L, R])) { f(e) }

// ConsumeBoth calls leftFn or rightFn depending on the populated side.
func (e Either[L, R]) ConsumeBoth(leftFn func(L), rightFn func(R)) {
	e.IfLeft(leftFn)
	e.IfRight(rightFn)
}

// Project implements [Projector].
func (e Either[L, R]) Project() (Side, any) {
	if e.side == SideRight {
		return SideRight, e.right
	}

	return SideLeft, e.left
}

func (e Either[L, R]) String() string {
	if e.side == SideRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}

	return fmt.Sprintf("Left(%v)", e.left)
}

func mustNotBeNil(v any, side Side) {
	if isNil(v) {
		panic(fmt.Errorf("%w: %s payload", ErrNilValue, side))
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
