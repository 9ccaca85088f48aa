package combi

import (
	"context"
	"time"
)

// Clock supplies the timers retriers wait on between attempts. Production
// code uses [RealClock]; tests substitute a fake that records the requested
// waits and fires immediately.
type Clock interface {
	// NewTimer creates a [Timer] that fires after d.
	NewTimer(d time.Duration) Timer
}

// Timer abstracts [time.Timer].
type Timer interface {
	// C returns the channel on which the firing time is delivered.
	C() <-chan time.Time
	// Stop prevents the timer from firing and reports whether it was
	// stopped before it fired.
	Stop() bool
}

// RealClock is a [Clock] backed by the [time] package. It holds no state.
type RealClock struct{}

// NewTimer creates a real [Timer] via [time.NewTimer].
func (RealClock) NewTimer(d time.Duration) Timer {
	return &realTimer{inner: time.NewTimer(d)}
}

type realTimer struct {
	inner *time.Timer
}

func (t *realTimer) C() <-chan time.Time { return t.inner.C }
func (t *realTimer) Stop() bool          { return t.inner.Stop() }

// sleep blocks for d on clock. It returns ctx.Err() when ctx is done first.
func sleep(ctx context.Context, clock Clock, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	timer := clock.NewTimer(d)
	select {
	case <-timer.C():
		return nil
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	}
}
