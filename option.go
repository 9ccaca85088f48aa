package combi

// Option is a value that may be absent. The zero value is absent.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns a present option holding v.
func Some[T any](v T) Option[T] { return Option[T]{value: v, ok: true} }

// None returns an absent option.
func None[T any]() Option[T] { return Option[T]{} }

// OptionOf returns Some(*v), or None when v is nil.
func OptionOf[T any](v *T) Option[T] {
	if v == nil {
		return None[T]()
	}

	return Some(*v)
}

// IsPresent reports whether the option holds a value.
func (o Option[T]) IsPresent() bool { return o.ok }

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

// OrElse returns the value, or fallback when absent.
func (o Option[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}

	return fallback
}

// OrElseGet returns the value, or the result of supply when absent.
func (o Option[T]) OrElseGet(supply func() T) T {
	if o.ok {
		return o.value
	}

	return supply()
}

// IfPresent calls f with the value when present and returns o.
func (o Option[T]) IfPresent(f func(T)) Option[T] {
	if o.ok {
		f(o.value)
	}

	return o
}

// IfPresentOrElse calls f with the value when present, orElse otherwise.
func (o Option[T]) IfPresentOrElse(f func(T), orElse func()) {
	if o.ok {
		f(o.value)
		return
	}

	orElse()
}

// MapOption applies f to a present value.
func MapOption[T, R any](o Option[T], f func(T) R) Option[R] {
	if !o.ok {
		return None[R]()
	}

	return Some(f(o.value))
}

// FlatMapOption hands a present value to f and returns its result.
func FlatMapOption[T, R any](o Option[T], f func(T) Option[R]) Option[R] {
	if !o.ok {
		return None[R]()
	}

	return f(o.value)
}

// Map2 applies f when both options are present.
func Map2[T, U, R any](ot Option[T], ou Option[U], f func(T, U) R) Option[R] {
	if !ot.ok || !ou.ok {
		return None[R]()
	}

	return Some(f(ot.value, ou.value))
}

// FlatMap2 hands both values to f when both options are present.
func FlatMap2[T, U, R any](ot Option[T], ou Option[U], f func(T, U) Option[R]) Option[R] {
	if !ot.ok || !ou.ok {
		return None[R]()
	}

	return f(ot.value, ou.value)
}

// OptionThisOrThat returns primary when present, otherwise the result of
// alternative.
func OptionThisOrThat[T any](primary Option[T], alternative func() Option[T]) Option[T] {
	if primary.ok {
		return primary
	}

	return alternative()
}

// OptionToEither maps a present value with f, or builds a Left from
// leftSupplier when absent.
func OptionToEither[T, L, R any](o Option[T], f func(T) Either[L, R], leftSupplier func() L) Either[L, R] {
	if !o.ok {
		return Left[L, R](leftSupplier())
	}

	return f(o.value)
}

// Options2ToEither calls f when both options are present, and builds a Left
// from leftSupplier otherwise.
func Options2ToEither[T, U, L, R any](
	ot Option[T],
	ou Option[U],
	f func(T, U) Either[L, R],
	leftSupplier func() L,
) Either[L, R] {
	if !ot.ok || !ou.ok {
		return Left[L, R](leftSupplier())
	}

	return f(ot.value, ou.value)
}

// Values returns the present values of opts in order, skipping absent ones.
func Values[T any](opts ...Option[T]) []T {
	out := make([]T, 0, len(opts))
	for _, o := range opts {
		if o.ok {
			out = append(out, o.value)
		}
	}

	return out
}
