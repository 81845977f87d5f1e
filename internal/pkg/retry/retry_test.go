package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() *RetryConfig {
	return &RetryConfig{Attempts: 3, Delay: time.Millisecond, MaxDelay: 2 * time.Millisecond}
}

func TestDo_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_ReturnsLastError(t *testing.T) {
	want := errors.New("database is down")
	calls := 0
	err := Do(context.Background(), fastConfig(), func(ctx context.Context) error {
		calls++
		return want
	})

	assert.ErrorIs(t, err, want)
	assert.Equal(t, 3, calls)
}

func TestDo_AttemptTimeout(t *testing.T) {
	rc := fastConfig()
	rc.Attempts = 1
	rc.Timeout = 10 * time.Millisecond

	err := Do(context.Background(), rc, func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestApplyDefaults(t *testing.T) {
	rc := &RetryConfig{Attempts: 2}
	rc.ApplyDefaults()

	assert.Equal(t, uint(2), rc.Attempts)
	assert.Equal(t, defaultDelay, rc.Delay)
	assert.Equal(t, defaultMaxDelay, rc.MaxDelay)
}
