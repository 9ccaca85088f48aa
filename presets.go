package combi

import "time"

// Pattern: Factory Function - each preset produces ready-made parameters
// for a common use case.

// QuickRetry returns parameters for fast local operations such as
// component startup: 10 attempts, 50ms initial wait doubling up to 1s.
func QuickRetry() RetryParams {
	return RetryParams{
		Retries:     10,
		InitialWait: 50 * time.Millisecond,
		Multiplier:  2,
		MaxWait:     time.Second,
	}
}

// StandardRetry returns parameters for ordinary remote calls: 3 attempts,
// 100ms initial wait doubling up to 5s.
func StandardRetry() RetryParams {
	return RetryParams{
		Retries:     3,
		InitialWait: 100 * time.Millisecond,
		Multiplier:  2,
		MaxWait:     5 * time.Second,
	}
}

// PersistentRetry returns parameters for critical resources that must
// eventually be reached: 30 attempts, 200ms initial wait growing by half
// up to 10s.
func PersistentRetry() RetryParams {
	return RetryParams{
		Retries:     30,
		InitialWait: 200 * time.Millisecond,
		Multiplier:  1.5,
		MaxWait:     10 * time.Second,
	}
}
