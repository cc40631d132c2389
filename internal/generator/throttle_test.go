package generator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThrottleSpacesCalls(t *testing.T) {
	th := newThrottle(20 * time.Millisecond)
	ctx := context.Background()
	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, th.wait(ctx))
	}
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestThrottleZeroIntervalDoesNotBlock(t *testing.T) {
	var th *throttle
	assert.NoError(t, th.wait(context.Background()))
	assert.NoError(t, newThrottle(0).wait(context.Background()))
}

func TestThrottleHonoursCancel(t *testing.T) {
	th := newThrottle(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, th.wait(ctx))
	cancel()
	assert.ErrorIs(t, th.wait(ctx), context.Canceled)
}
