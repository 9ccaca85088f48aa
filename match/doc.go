// Package match routes a value of unknown runtime shape to the first case
// whose type, predicate or [combi.Either] projection matches it.
//
// A case list is built once and applied to many inputs. Three flavors share
// the same [Case] type and the same ordered resolution:
//
//   - [Func] produces a value; the first matching case wins.
//   - [Pred] answers a boolean; the first matching case wins.
//   - [Consume] performs side effects; every matching case fires in order
//     ([All]) or only the first one ([MaxOnce]), and default cases fire
//     only when nothing else matched.
//
// Cases are tested strictly in declaration order. There is no
// most-specific-type resolution: a [Default] or a broad interface case
// listed first shadows everything after it.
//
//	describe := match.Func(
//		match.Type[any](func(s string) string { return "string " + s }),
//		match.Right[any](func(n int) string { return "right int " + strconv.Itoa(n) }),
//		match.Default(func(any) string { return "unknown" }),
//	)
//	out, err := describe.Apply(combi.Right[error](42)) // "right int 42", nil
package match
