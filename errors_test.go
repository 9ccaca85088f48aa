package combi_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/byte4ever/combi"
)

// ---------------------------------------------------------------------------
// RetryError
// ---------------------------------------------------------------------------

func TestRetryErrorMessageWithoutCause(t *testing.T) {
	err := &combi.RetryError{Retries: 3}

	if got := err.Error(); got != "retried 3 times but failed" {
		t.Fatalf("Error() = %q, want %q", got, "retried 3 times but failed")
	}
	if err.Unwrap() != nil {
		t.Fatalf("Unwrap() = %v, want nil", err.Unwrap())
	}
}

func TestRetryErrorMessageWithCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := &combi.RetryError{Retries: 3, Cause: cause}

	if got := err.Error(); got != "retried 3 times but failed with exception" {
		t.Fatalf("Error() = %q, want %q", got, "retried 3 times but failed with exception")
	}
	if !errors.Is(err, cause) {
		t.Fatal("errors.Is(err, cause) = false, want true")
	}
}

func TestRetryErrorMatchesSentinel(t *testing.T) {
	wrapped := fmt.Errorf("fetch: %w", &combi.RetryError{Retries: 1})

	if !errors.Is(wrapped, combi.ErrRetriesExhausted) {
		t.Fatal("errors.Is(wrapped, ErrRetriesExhausted) = false, want true")
	}
	if !combi.IsExhausted(wrapped) {
		t.Fatal("IsExhausted(wrapped) = false, want true")
	}
	if combi.IsInterrupted(wrapped) {
		t.Fatal("IsInterrupted(wrapped) = true, want false")
	}
}

// ---------------------------------------------------------------------------
// PanicError
// ---------------------------------------------------------------------------

func TestPanicErrorWithErrorValue(t *testing.T) {
	cause := errors.New("inner")
	err := &combi.PanicError{Value: cause}

	if got := err.Error(); got != "panic: inner" {
		t.Fatalf("Error() = %q, want %q", got, "panic: inner")
	}
	if !errors.Is(err, cause) {
		t.Fatal("errors.Is(err, cause) = false, want true")
	}
	if !errors.Is(err, combi.ErrPanic) {
		t.Fatal("errors.Is(err, ErrPanic) = false, want true")
	}
}

func TestPanicErrorWithPlainValue(t *testing.T) {
	err := &combi.PanicError{Value: 42}

	if got := err.Error(); got != "panic: 42" {
		t.Fatalf("Error() = %q, want %q", got, "panic: 42")
	}
	if err.Unwrap() != nil {
		t.Fatalf("Unwrap() = %v, want nil", err.Unwrap())
	}
}

// ---------------------------------------------------------------------------
// Sentinels
// ---------------------------------------------------------------------------

func TestSentinelMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{combi.ErrInvalidConfig, "invalid configuration"},
		{combi.ErrRetriesExhausted, "retries exhausted"},
		{combi.ErrInterrupted, "interrupted"},
		{combi.ErrNilValue, "nil value"},
		{combi.ErrPanic, "panic"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Fatalf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	all := []error{
		combi.ErrInvalidConfig,
		combi.ErrRetriesExhausted,
		combi.ErrInterrupted,
		combi.ErrNilValue,
		combi.ErrPanic,
	}

	for i := range all {
		for j := range all {
			if i != j && errors.Is(all[i], all[j]) {
				t.Fatalf("%v matches %v", all[i], all[j])
			}
		}
	}
}
