package combi

import (
	"math"
	"math/rand/v2"
	"time"
)

// BackoffStrategy determines the wait between two retry attempts.
//
// Pattern: Strategy - swap backoff algorithms without changing the retry
// loop.
type BackoffStrategy interface {
	// Delay returns the wait following the given failed attempt
	// (0-indexed: attempt 0 is the wait before the second attempt).
	Delay(attempt int) time.Duration
}

// BackoffFunc adapts an ordinary function into a [BackoffStrategy].
type BackoffFunc func(attempt int) time.Duration

// Delay calls the underlying function.
func (f BackoffFunc) Delay(attempt int) time.Duration { return f(attempt) }

// ---------------------------------------------------------------------------
// GeometricBackoff
// ---------------------------------------------------------------------------

// maxWaitMillis keeps wait * time.Millisecond inside time.Duration.
const maxWaitMillis = int64(1<<63-1) / int64(time.Millisecond)

// geometricBackoff starts at initial and multiplies the wait after every
// attempt, truncating to whole milliseconds each time.
type geometricBackoff struct {
	initialMillis int64
	multiplier    float64
}

func (b *geometricBackoff) Delay(attempt int) time.Duration {
	wait := b.initialMillis
	for range attempt {
		if wait == 0 {
			break
		}
		next := float64(wait) * b.multiplier
		if next >= float64(maxWaitMillis) {
			wait = maxWaitMillis
			continue
		}
		wait = int64(next)
	}

	return time.Duration(wait) * time.Millisecond
}

// GeometricBackoff returns the default [BackoffStrategy] of every retrier:
// the first wait is initial, and each following wait is the previous one
// multiplied by multiplier and truncated to whole milliseconds. A
// multiplier of 0 collapses every wait after the first to 0.
func GeometricBackoff(initial time.Duration, multiplier float64) BackoffStrategy {
	return &geometricBackoff{
		initialMillis: initial.Milliseconds(),
		multiplier:    multiplier,
	}
}

// ---------------------------------------------------------------------------
// ConstantBackoff
// ---------------------------------------------------------------------------

type constantBackoff struct {
	d time.Duration
}

func (b *constantBackoff) Delay(_ int) time.Duration { return b.d }

// ConstantBackoff returns a [BackoffStrategy] that always waits d.
func ConstantBackoff(d time.Duration) BackoffStrategy {
	return &constantBackoff{d: d}
}

// ---------------------------------------------------------------------------
// LinearBackoff
// ---------------------------------------------------------------------------

type linearBackoff struct {
	step time.Duration
}

func (b *linearBackoff) Delay(attempt int) time.Duration {
	return b.step * time.Duration(attempt+1)
}

// LinearBackoff returns a [BackoffStrategy] waiting step * (attempt + 1).
func LinearBackoff(step time.Duration) BackoffStrategy {
	return &linearBackoff{step: step}
}

// ---------------------------------------------------------------------------
// JitterBackoff
// ---------------------------------------------------------------------------

type jitterBackoff struct {
	inner BackoffStrategy
}

func (b *jitterBackoff) Delay(attempt int) time.Duration {
	upper := int64(b.inner.Delay(attempt))
	if upper <= 0 {
		return 0
	}

	if upper == math.MaxInt64 {
		upper--
	}

	return time.Duration(rand.Int64N(upper + 1))
}

// JitterBackoff wraps inner so that every wait is drawn uniformly from
// [0, inner.Delay(attempt)].
func JitterBackoff(inner BackoffStrategy) BackoffStrategy {
	return &jitterBackoff{inner: inner}
}

// ---------------------------------------------------------------------------
// capped
// ---------------------------------------------------------------------------

type cappedBackoff struct {
	inner BackoffStrategy
	max   time.Duration
}

func (b *cappedBackoff) Delay(attempt int) time.Duration {
	return min(b.inner.Delay(attempt), b.max)
}

func capBackoff(inner BackoffStrategy, maxWait time.Duration) BackoffStrategy {
	if maxWait <= 0 {
		return inner
	}

	return &cappedBackoff{inner: inner, max: maxWait}
}
