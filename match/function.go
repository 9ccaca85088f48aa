package match

import "slices"

// Cases is an ordered, immutable case list producing an R for each input.
// It is safe for concurrent use when the handlers are.
type Cases[T, R any] struct {
	cases []Case[T, R]
}

// Func builds a function case list. The first matching case wins.
func Func[T, R any](cases ...Case[T, R]) *Cases[T, R] {
	return &Cases[T, R]{cases: slices.Clone(cases)}
}

// Apply runs the handler of the first case matching in. When no case
// matches it returns a [*NoMatchError]; add a [Default] case to rule that
// out.
func (c *Cases[T, R]) Apply(in T) (R, error) {
	if cs, ok := c.first(in); ok {
		return cs.Apply(in), nil
	}

	var zero R

	return zero, &NoMatchError{Value: in}
}

// MustApply is [Cases.Apply] that panics with the [*NoMatchError].
func (c *Cases[T, R]) MustApply(in T) R {
	out, err := c.Apply(in)
	if err != nil {
		panic(err)
	}

	return out
}

// Func returns Apply as a function value.
func (c *Cases[T, R]) Func() func(T) (R, error) { return c.Apply }

// Len returns the number of cases.
func (c *Cases[T, R]) Len() int { return len(c.cases) }

func (c *Cases[T, R]) first(in T) (Case[T, R], bool) {
	for _, cs := range c.cases {
		if cs.Matches(in) {
			return cs, true
		}
	}

	return Case[T, R]{}, false
}
