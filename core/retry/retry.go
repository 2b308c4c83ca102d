// Package retry 决定一次已分类的失败是否值得再尝试
//
// 策略只消费分类器产出的结果，不回看原始 HTTP 响应，
// 保证重试判定与调用方最终看到的分类永不分叉：
// - 连接层失败（未收到响应）：总是可重试，直到次数用尽
// - TransportError：reason 在可重试集合内才重试
// - MethodError / Response：节点的语义回复是最终结果，永不重试
package retry

import (
	"context"
	"errors"
	"time"

	"github.com/weisyn/bitcoinrpc/core/wire"
)

// Policy 重试策略（每次调用创建一份，调用间不共享可变状态）
type Policy struct {
	// MaxRetries 首次尝试之外的最大重试次数
	MaxRetries int

	// Delay 首次重试前的等待时长
	Delay time.Duration

	// Multiplier 退避倍率；<=1 表示固定间隔
	Multiplier float64

	// MaxDelay 指数退避的上限；0 表示不设上限
	MaxDelay time.Duration

	// Retryable 可重试的 reason 集合
	Retryable map[wire.Reason]struct{}
}

// NewPolicy 创建策略并填充默认值
func NewPolicy(maxRetries int, delay time.Duration, multiplier float64, reasons []wire.Reason) Policy {
	if delay <= 0 {
		delay = time.Second
	}
	if reasons == nil {
		reasons = wire.DefaultRetryableReasons()
	}

	retryable := make(map[wire.Reason]struct{}, len(reasons))
	for _, r := range reasons {
		retryable[r] = struct{}{}
	}

	return Policy{
		MaxRetries: maxRetries,
		Delay:      delay,
		Multiplier: multiplier,
		Retryable:  retryable,
	}
}

// ShouldRetry 判定第 attempt 次尝试（从 0 起）的失败是否重试
func (p Policy) ShouldRetry(attempt int, err error) bool {
	if attempt >= p.MaxRetries {
		return false
	}

	var transportErr *wire.TransportError
	if !errors.As(err, &transportErr) {
		// MethodError 或其他错误：最终结果
		return false
	}

	if transportErr.NoResponse {
		return true
	}

	_, ok := p.Retryable[transportErr.Reason]
	return ok
}

// Backoff 第 attempt 次重试前的等待时长（attempt 从 0 起）
func (p Policy) Backoff(attempt int) time.Duration {
	delay := p.Delay
	if p.Multiplier > 1 {
		for i := 0; i < attempt; i++ {
			delay = time.Duration(float64(delay) * p.Multiplier)
			if p.MaxDelay > 0 && delay >= p.MaxDelay {
				return p.MaxDelay
			}
		}
	}
	if p.MaxDelay > 0 && delay > p.MaxDelay {
		return p.MaxDelay
	}
	return delay
}

// Wait 在两次尝试之间等待；调用方取消时立即返回其错误
func (p Policy) Wait(ctx context.Context, attempt int) error {
	timer := time.NewTimer(p.Backoff(attempt))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
