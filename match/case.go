package match

import (
	"reflect"

	"github.com/byte4ever/combi"
)

// Unit is the result type of consumer cases.
type Unit = struct{}

// Case pairs a matcher with a handler. T is the input type of the case
// list, R the handler result. Build cases with [Type], [TypeIf], [When],
// [Left], [LeftIf], [Right], [RightIf] or [Default]; the zero value is not
// usable.
type Case[T, R any] struct {
	matches   func(T) bool
	apply     func(T) R
	isDefault bool
}

// Matches reports whether the case accepts in.
func (c Case[T, R]) Matches(in T) bool { return c.matches(in) }

// Apply runs the handler. It must only be called when Matches(in) is true.
func (c Case[T, R]) Apply(in T) R { return c.apply(in) }

// IsDefault reports whether the case was built with [Default].
func (c Case[T, R]) IsDefault() bool { return c.isDefault }

func always[X any](X) bool { return true }

// Type matches inputs whose dynamic type is X, or implements X when X is
// an interface. Supply T explicitly and let X and R be inferred:
//
//	match.Type[any](func(s string) int { return len(s) })
func Type[T, X, R any](f func(X) R) Case[T, R] {
	return TypeIf[T](always[X], f)
}

// TypeIf is [Type] with an additional predicate over the asserted value.
// pred is never called for inputs of another type.
func TypeIf[T, X, R any](pred func(X) bool, f func(X) R) Case[T, R] {
	return Case[T, R]{
		matches: func(in T) bool {
			x, ok := any(in).(X)
			return ok && pred(x)
		},
		apply: func(in T) R {
			return f(any(in).(X))
		},
	}
}

// When matches inputs for which pred holds, whatever their type.
func When[T, R any](pred func(T) bool, f func(T) R) Case[T, R] {
	return Case[T, R]{matches: pred, apply: f}
}

// Left matches a [combi.Either] whose Left side is populated with a value
// of type X.
func Left[T, X, R any](f func(X) R) Case[T, R] {
	return projected[T](combi.SideLeft, always[X], f)
}

// LeftIf is [Left] with an additional predicate over the Left payload.
func LeftIf[T, X, R any](pred func(X) bool, f func(X) R) Case[T, R] {
	return projected[T](combi.SideLeft, pred, f)
}

// Right matches a [combi.Either] whose Right side is populated with a value
// of type X.
func Right[T, X, R any](f func(X) R) Case[T, R] {
	return projected[T](combi.SideRight, always[X], f)
}

// RightIf is [Right] with an additional predicate over the Right payload.
func RightIf[T, X, R any](pred func(X) bool, f func(X) R) Case[T, R] {
	return projected[T](combi.SideRight, pred, f)
}

// Default matches every input. Place it last: cases are tested in order.
func Default[T, R any](f func(T) R) Case[T, R] {
	return Case[T, R]{matches: always[T], apply: f, isDefault: true}
}

// Effect adapts a side-effect handler for consumer cases:
//
//	match.Type[any](match.Effect(func(err error) { log.Print(err) }))
func Effect[X any](f func(X)) func(X) Unit {
	return func(x X) Unit {
		f(x)
		return Unit{}
	}
}

// projected matches in two steps: first the populated side, then the
// payload type and pred. An input that is not an Either, or whose other
// side is populated, does not match.
func projected[T, X, R any](side combi.Side, pred func(X) bool, f func(X) R) Case[T, R] {
	return Case[T, R]{
		matches: func(in T) bool {
			x, ok := project[X](in, side)
			return ok && pred(x)
		},
		apply: func(in T) R {
			x, _ := project[X](in, side)
			return f(x)
		},
	}
}

func project[X any](in any, side combi.Side) (X, bool) {
	var zero X

	p, ok := in.(combi.Projector)
	if !ok || isNilPointer(in) {
		return zero, false
	}

	populated, v := p.Project()
	if populated != side {
		return zero, false
	}

	x, ok := v.(X)

	return x, ok
}

// isNilPointer reports whether in holds a nil pointer, such as a nil
// *combi.Either whose Project would panic.
func isNilPointer(in any) bool {
	rv := reflect.ValueOf(in)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
