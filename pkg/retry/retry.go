package retry

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/vfg2006/pmax-campaign-manager/pkg/log"
)

const (
	DefaultMaxAttempts   = 6
	DefaultBaseDelay     = time.Second
	DefaultBackoffFactor = 1.6
	DefaultJitter        = 0.25
)

// Policy retries transient failures with exponential backoff and jitter.
// The zero value of the optional hooks falls back to real sleeping, math/rand and the global logger.
type Policy struct {
	MaxAttempts   int
	BaseDelay     time.Duration
	BackoffFactor float64
	Jitter        float64

	Sleep   func(ctx context.Context, d time.Duration) error
	Rand    func() float64
	Logger  log.Logger
	OnRetry func(operation, reason string)
}

func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:   DefaultMaxAttempts,
		BaseDelay:     DefaultBaseDelay,
		BackoffFactor: DefaultBackoffFactor,
		Jitter:        DefaultJitter,
	}
}

// Delay returns base * factor^(attempt-1) * (1 + r*jitter) for r in [0,1).
func (p Policy) Delay(attempt int, r float64) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	factor := p.BackoffFactor
	if factor <= 0 {
		factor = 1
	}
	d := float64(p.BaseDelay) * math.Pow(factor, float64(attempt-1)) * (1 + r*p.Jitter)
	return time.Duration(d)
}

func (p Policy) attempts() int {
	if p.MaxAttempts < 1 {
		return 1
	}
	return p.MaxAttempts
}

func (p Policy) sleep(ctx context.Context, d time.Duration) error {
	if p.Sleep != nil {
		return p.Sleep(ctx, d)
	}
	return Sleep(ctx, d)
}

func (p Policy) random() float64 {
	if p.Rand != nil {
		return p.Rand()
	}
	return rand.Float64()
}

func (p Policy) logger(ctx context.Context) log.Logger {
	if p.Logger != nil {
		return p.Logger.WithContext(ctx)
	}
	return log.ForContext(ctx)
}

// Do runs fn until it succeeds, fails permanently or the attempts are exhausted.
// The error returned is always the one produced by fn.
func (p Policy) Do(ctx context.Context, operation string, fn func() error) error {
	maxAttempts := p.attempts()

	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}

		class, reason := ClassOf(err)
		if class != Transient || attempt >= maxAttempts {
			return err
		}

		delay := p.Delay(attempt, p.random())
		p.logger(ctx).WithFields(log.Fields{
			"operation":    operation,
			"attempt":      attempt,
			"max_attempts": maxAttempts,
			"reason":       reason,
			"delay":        delay.String(),
		}).Warnf("Retrying %s (attempt %d/%d) due to %s", operation, attempt, maxAttempts, reason)

		if p.OnRetry != nil {
			p.OnRetry(operation, reason)
		}

		if sleepErr := p.sleep(ctx, delay); sleepErr != nil {
			p.logger(ctx).WithError(sleepErr).Warnf("Stopped retrying %s", operation)
			return err
		}
	}
}

// DoValue is Do for operations returning a value.
func DoValue[T any](ctx context.Context, p Policy, operation string, fn func() (T, error)) (T, error) {
	var result T
	err := p.Do(ctx, operation, func() error {
		v, err := fn()
		if err != nil {
			return err
		}
		result = v
		return nil
	})
	return result, err
}
