package retry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weisyn/bitcoinrpc/core/wire"
)

// allReasons 分类器可能产出的全部 TransportError reason
var allReasons = []wire.Reason{
	wire.ReasonHTTPBadRequest,
	wire.ReasonHTTPUnauthorized,
	wire.ReasonHTTPForbidden,
	wire.ReasonHTTPNotFound,
	wire.ReasonHTTPMethodNotAllowed,
	wire.ReasonHTTPInternalServerError,
	wire.ReasonHTTPBadGateway,
	wire.ReasonHTTPServiceUnavailable,
	wire.ReasonHTTPGatewayTimeout,
	wire.ReasonUnknownError,
}

func TestShouldRetry_AgreesWithClassification(t *testing.T) {
	policy := NewPolicy(3, time.Millisecond, 0, nil)

	// 判定结果必须等价于 "reason 属于可重试集合"
	for _, reason := range allReasons {
		terr := wire.NewTransportError(reason, nil)
		_, inSet := policy.Retryable[reason]
		assert.Equal(t, inSet, policy.ShouldRetry(0, terr), "reason %s", reason)
	}
}

func TestShouldRetry_NoResponseAlwaysRetryable(t *testing.T) {
	policy := NewPolicy(2, time.Millisecond, 0, nil)

	for _, reason := range []wire.Reason{
		wire.ReasonTimeout,
		wire.ReasonConnectionRefused,
		wire.ReasonNameResolutionFailure,
		wire.ReasonTransportOther,
	} {
		terr := wire.NewTransportFailure(reason, nil)
		assert.True(t, policy.ShouldRetry(0, terr), "reason %s", reason)
		assert.True(t, policy.ShouldRetry(1, terr), "reason %s", reason)

		// 次数用尽后不再重试
		assert.False(t, policy.ShouldRetry(2, terr), "reason %s", reason)
	}
}

func TestShouldRetry_MethodErrorIsFinal(t *testing.T) {
	policy := NewPolicy(5, time.Millisecond, 0, nil)

	merr := &wire.MethodError{Code: -28, Reason: wire.ReasonInWarmup}
	assert.False(t, policy.ShouldRetry(0, merr))
}

func TestShouldRetry_CustomReasonSet(t *testing.T) {
	policy := NewPolicy(3, time.Millisecond, 0, []wire.Reason{wire.ReasonHTTPNotFound})

	assert.True(t, policy.ShouldRetry(0, wire.NewTransportError(wire.ReasonHTTPNotFound, nil)))
	assert.False(t, policy.ShouldRetry(0, wire.NewTransportError(wire.ReasonHTTPServiceUnavailable, nil)))
}

func TestBackoff_Fixed(t *testing.T) {
	policy := NewPolicy(3, 100*time.Millisecond, 0, nil)

	assert.Equal(t, 100*time.Millisecond, policy.Backoff(0))
	assert.Equal(t, 100*time.Millisecond, policy.Backoff(5))
}

func TestBackoff_Exponential(t *testing.T) {
	policy := NewPolicy(5, 100*time.Millisecond, 2, nil)

	assert.Equal(t, 100*time.Millisecond, policy.Backoff(0))
	assert.Equal(t, 200*time.Millisecond, policy.Backoff(1))
	assert.Equal(t, 400*time.Millisecond, policy.Backoff(2))
}

func TestBackoff_CappedByMaxDelay(t *testing.T) {
	policy := NewPolicy(5, 100*time.Millisecond, 2, nil)
	policy.MaxDelay = 250 * time.Millisecond

	assert.Equal(t, 100*time.Millisecond, policy.Backoff(0))
	assert.Equal(t, 200*time.Millisecond, policy.Backoff(1))
	assert.Equal(t, 250*time.Millisecond, policy.Backoff(2))
	assert.Equal(t, 250*time.Millisecond, policy.Backoff(10))
}

func TestWait_HonorsCancellation(t *testing.T) {
	policy := NewPolicy(1, time.Minute, 0, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := policy.Wait(ctx, 0)
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}
