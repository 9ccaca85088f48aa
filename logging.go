package combi

import (
	"log/slog"
	"time"
)

// SlogHooks returns [Hooks] that log every retry event to logger. Rejected
// and failed attempts log at Debug, waits at Info, exhaustion and
// interruption at Warn. A nil logger uses [slog.Default].
func SlogHooks(logger *slog.Logger, name string) *Hooks {
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(slog.String("retrier", name))

	return &Hooks{
		OnRejected: func(attempt int) {
			logger.Debug("result rejected", slog.Int("attempt", attempt))
		},
		OnFailure: func(attempt int, err error) {
			logger.Debug("attempt failed", slog.Int("attempt", attempt), slog.Any("error", err))
		},
		OnRetry: func(attempt int, wait time.Duration) {
			logger.Info("retrying", slog.Int("attempt", attempt), slog.Duration("wait", wait))
		},
		OnSuccess: func(attempt int) {
			logger.Debug("attempt succeeded", slog.Int("attempt", attempt))
		},
		OnExhausted: func(err error) {
			logger.Warn("retries exhausted", slog.Any("error", err))
		},
		OnInterrupted: func(err error) {
			logger.Warn("retry interrupted", slog.Any("error", err))
		},
	}
}
