package providers

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/opportunity-scout/internal/config"
	"github.com/jonathan/opportunity-scout/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpportunityID_StableAndNamespaced(t *testing.T) {
	a := OpportunityID("upcraft", "Freelance writing")
	b := OpportunityID("upcraft", "Freelance writing")
	c := OpportunityID("makerbay", "Freelance writing")

	assert.Equal(t, a, b, "same source and title must yield the same id")
	assert.NotEqual(t, a, c, "identical titles from different sources must not collide")
	assert.True(t, strings.HasPrefix(a, "upcraft-"))
}

func retryConfig() config.Providers {
	return config.Providers{
		Timeout:    time.Second,
		MaxRetries: 2,
		Backoff:    time.Millisecond,
	}
}

func TestWithRetry_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), "test", retryConfig(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_ExhaustsRetries(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), "test", retryConfig(), func(context.Context) error {
		calls++
		return errors.New("permanent")
	})

	assert.Error(t, err)
	assert.Equal(t, 3, calls, "one attempt plus two retries")
}

func TestWithRetry_RespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := retryConfig()
	cfg.Backoff = time.Minute // would stall without the cancellation check
	err := withRetry(ctx, "test", cfg, func(context.Context) error {
		return errors.New("fail")
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithRetry_PerAttemptTimeout(t *testing.T) {
	cfg := retryConfig()
	err := withRetry(context.Background(), "test", cfg, func(ctx context.Context) error {
		deadline, ok := ctx.Deadline()
		require.True(t, ok, "each attempt must carry a bounded deadline")
		assert.WithinDuration(t, time.Now().Add(cfg.Timeout), deadline, 100*time.Millisecond)
		return nil
	})
	require.NoError(t, err)
}

func TestEscalateBarrier(t *testing.T) {
	assert.Equal(t, types.LevelMedium, EscalateBarrier(types.LevelLow))
	assert.Equal(t, types.LevelHigh, EscalateBarrier(types.LevelMedium))
	assert.Equal(t, types.LevelHigh, EscalateBarrier(types.LevelHigh))
}
