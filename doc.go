// Package combi provides small functional combinators for Go applications.
//
// [Either] is a two-sided result holding a Left (alternate, usually failure)
// or a Right (success) value. The retry builders ([Retry], [RetryEither],
// [RetryEitherFunc], [RetrySupply], [RetrySupplyEither], [RetryEitherSupply]
// and [RetryRun]) wrap an operation so that each call re-runs it with
// geometric backoff until a success predicate holds or the attempt budget
// is used up, reporting failure either as an error or through an Either.
//
// The typed dispatch engine lives in the match sub-package.
package combi
