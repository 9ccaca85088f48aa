package match

import "slices"

// Strategy selects how many matching cases a [Consumer] fires.
type Strategy uint8

const (
	// All fires every matching case in declaration order.
	All Strategy = iota
	// MaxOnce fires the first matching case only.
	MaxOnce
)

func (s Strategy) String() string {
	if s == MaxOnce {
		return "MAX_ONCE"
	}

	return "ALL"
}

// Consumer is an ordered, immutable list of side-effect cases.
type Consumer[T any] struct {
	cases    []Case[T, Unit]
	strategy Strategy
}

// Consume builds a consumer with the [All] strategy.
func Consume[T any](cases ...Case[T, Unit]) *Consumer[T] {
	return ConsumeWith(All, cases...)
}

// ConsumeWith builds a consumer with an explicit strategy.
func ConsumeWith[T any](strategy Strategy, cases ...Case[T, Unit]) *Consumer[T] {
	return &Consumer[T]{cases: slices.Clone(cases), strategy: strategy}
}

// Accept fires the non-default cases matching in, following the strategy.
// When none matched, every default case fires in declaration order. It
// returns the number of handlers run; zero means nothing matched and no
// default was supplied.
func (c *Consumer[T]) Accept(in T) int {
	fired := 0

	for _, cs := range c.cases {
		if cs.isDefault || !cs.Matches(in) {
			continue
		}

		cs.Apply(in)
		fired++

		if c.strategy == MaxOnce {
			return fired
		}
	}

	if fired > 0 {
		return fired
	}

	for _, cs := range c.cases {
		if cs.isDefault {
			cs.Apply(in)
			fired++
		}
	}

	return fired
}

// Func returns a function that calls Accept and discards the count.
func (c *Consumer[T]) Func() func(T) {
	return func(in T) { c.Accept(in) }
}
