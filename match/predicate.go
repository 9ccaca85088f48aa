package match

// Predicate is an ordered, immutable case list answering a boolean for
// each input.
type Predicate[T any] struct {
	cases *Cases[T, bool]
}

// Pred builds a predicate case list. The first matching case decides.
func Pred[T any](cases ...Case[T, bool]) *Predicate[T] {
	return &Predicate[T]{cases: Func(cases...)}
}

// Test returns the answer of the first case matching in, or a
// [*NoMatchError] when none does.
func (p *Predicate[T]) Test(in T) (bool, error) {
	return p.cases.Apply(in)
}

// MustTest is [Predicate.Test] that panics with the [*NoMatchError].
func (p *Predicate[T]) MustTest(in T) bool {
	return p.cases.MustApply(in)
}

// Func returns Test as a function value.
func (p *Predicate[T]) Func() func(T) (bool, error) { return p.Test }
