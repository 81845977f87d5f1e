package retry

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"
)

const (
	defaultAttempts = 5
	defaultMaxDelay = 5 * time.Second
	defaultDelay    = 500 * time.Millisecond
)

type RetryConfig struct {
	Attempts uint          `env:"ATTEMPTS"`
	Delay    time.Duration `env:"DELAY"`
	MaxDelay time.Duration `env:"MAX_DELAY"`
	Timeout  time.Duration `env:"TIMEOUT"`
}

func (rc *RetryConfig) ToRetryOptions() []retry.Option {
	return []retry.Option{
		retry.Attempts(rc.Attempts),
		retry.MaxDelay(rc.MaxDelay),
		retry.Delay(rc.Delay),
		retry.LastErrorOnly(true),
	}
}

// ApplyDefaults fills zero values
func (rc *RetryConfig) ApplyDefaults() {
	if rc.Attempts == 0 {
		rc.Attempts = defaultAttempts
	}
	if rc.Delay == 0 {
		rc.Delay = defaultDelay
	}
	if rc.MaxDelay == 0 {
		rc.MaxDelay = defaultMaxDelay
	}
}

func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		Attempts: defaultAttempts,
		Delay:    defaultDelay,
		MaxDelay: defaultMaxDelay,
	}
}

// Do runs fn until it succeeds, attempts are exhausted or ctx is done.
// A positive Timeout bounds every single attempt.
func Do(ctx context.Context, rc *RetryConfig, fn func(ctx context.Context) error, opts ...retry.Option) error {
	options := append(rc.ToRetryOptions(), retry.Context(ctx))
	options = append(options, opts...)

	return retry.Do(func() error {
		attemptCtx := ctx
		if rc.Timeout > 0 {
			var cancel context.CancelFunc
			attemptCtx, cancel = context.WithTimeout(ctx, rc.Timeout)
			defer cancel()
		}
		return fn(attemptCtx)
	}, options...)
}
