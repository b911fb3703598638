// Package retry executes units of work against unreliable external channels
// with bounded exponential backoff.
package retry

import (
	"context"
	"log/slog"
	"time"

	"careops/internal/pkg/config"
	"careops/internal/pkg/errs"
)

// Executor retries a function up to MaxAttempts times, doubling the delay
// between attempts from BaseDelay up to MaxDelay. It holds no shared state
// while waiting and aborts between attempts when the context is cancelled.
type Executor struct {
	maxAttempts int
	baseDelay   time.Duration
	maxDelay    time.Duration
	logger      *slog.Logger
}

func NewExecutor(cfg config.AutomationConfig, logger *slog.Logger) *Executor {
	attempts := cfg.RetryMaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	return &Executor{
		maxAttempts: attempts,
		baseDelay:   cfg.RetryBaseDelay,
		maxDelay:    cfg.RetryMaxDelay,
		logger:      logger,
	}
}

// Do runs fn until it succeeds or the attempt ceiling is hit. The returned
// error is the last attempt's error wrapped with the operation name.
func (e *Executor) Do(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	delay := e.baseDelay
	var lastErr error

	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return errs.Wrap(err, op+" aborted")
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}

		if attempt == e.maxAttempts {
			break
		}

		e.logger.Warn("retrying after failure",
			"op", op,
			"attempt", attempt,
			"max_attempts", e.maxAttempts,
			"delay", delay,
			"error", lastErr,
		)

		select {
		case <-ctx.Done():
			return errs.Wrap(ctx.Err(), op+" aborted")
		case <-time.After(delay):
		}

		delay *= 2
		if delay > e.maxDelay {
			delay = e.maxDelay
		}
	}

	e.logger.Error("all retry attempts exhausted", "op", op, "attempts", e.maxAttempts, "error", lastErr)
	return errs.Wrap(lastErr, op+" failed after retries")
}
