package combi

import "time"

// Hooks holds optional callbacks for retry lifecycle events. All fields are
// nil by default; set only the ones you care about. A Hooks value must not
// be mutated once handed to a retrier: emit methods read the fields without
// synchronisation.
//
// Attempt numbers are 1-indexed.
//
// Pattern: Observer - decouples event emission from logging and metrics.
type Hooks struct {
	OnAttempt     func(attempt int)
	OnSuccess     func(attempt int)
	OnRejected    func(attempt int)
	OnFailure     func(attempt int, err error)
	OnRetry       func(attempt int, wait time.Duration)
	OnExhausted   func(err error)
	OnInterrupted func(err error)
}

// MergeHooks returns a Hooks value that calls every non-nil callback of
// each element of hs, in order.
func MergeHooks(hs ...*Hooks) *Hooks {
	merged := &Hooks{}

	for _, h := range hs {
		if h == nil {
			continue
		}

		merged.OnAttempt = chain1(merged.OnAttempt, h.OnAttempt)
		merged.OnSuccess = chain1(merged.OnSuccess, h.OnSuccess)
		merged.OnRejected = chain1(merged.OnRejected, h.OnRejected)
		merged.OnFailure = chain2(merged.OnFailure, h.OnFailure)
		merged.OnRetry = chain2(merged.OnRetry, h.OnRetry)
		merged.OnExhausted = chain1(merged.OnExhausted, h.OnExhausted)
		merged.OnInterrupted = chain1(merged.OnInterrupted, h.OnInterrupted)
	}

	return merged
}

func chain1[A any](first, second func(A)) func(A) {
	switch {
	case first == nil:
		return second
	case second == nil:
		return first
	}

	return func(a A) {
		first(a)
		second(a)
	}
}

func chain2[A, B any](first, second func(A, B)) func(A, B) {
	switch {
	case first == nil:
		return second
	case second == nil:
		return first
	}

	return func(a A, b B) {
		first(a, b)
		second(a, b)
	}
}

func (h *Hooks) emitAttempt(attempt int) {
	if h != nil && h.OnAttempt != nil {
		h.OnAttempt(attempt)
	}
}

func (h *Hooks) emitSuccess(attempt int) {
	if h != nil && h.OnSuccess != nil {
		h.OnSuccess(attempt)
	}
}

func (h *Hooks) emitRejected(attempt int) {
	if h != nil && h.OnRejected != nil {
		h.OnRejected(attempt)
	}
}

func (h *Hooks) emitFailure(attempt int, err error) {
	if h != nil && h.OnFailure != nil {
		h.OnFailure(attempt, err)
	}
}

func (h *Hooks) emitRetry(attempt int, wait time.Duration) {
	if h != nil && h.OnRetry != nil {
		h.OnRetry(attempt, wait)
	}
}

func (h *Hooks) emitExhausted(err error) {
	if h != nil && h.OnExhausted != nil {
		h.OnExhausted(err)
	}
}

func (h *Hooks) emitInterrupted(err error) {
	if h != nil && h.OnInterrupted != nil {
		h.OnInterrupted(err)
	}
}
