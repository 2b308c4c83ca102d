// Package dispatch 实现单次调用的编排管线
//
// 📋 **派发层 (Dispatcher)**
//
// encode → route → send → classify → retry → observe：
// 类型化请求经编码能力变成线路 Request，POST 到 base_url+path，
// 原始结果交给分类器，按策略决定重试，最终返回三种结果之一。
//
// 🎯 **设计原则**
// - 每次尝试恰好一次网络调用，尝试之间严格串行
// - 派发器自身零可变共享状态，可被任意多个 goroutine 并发使用
// - 重试用尽时原样返回最后一次的分类结果，不做二次包装
package dispatch

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/weisyn/bitcoinrpc/core/classify"
	"github.com/weisyn/bitcoinrpc/core/codec"
	"github.com/weisyn/bitcoinrpc/core/observe"
	"github.com/weisyn/bitcoinrpc/core/retry"
	"github.com/weisyn/bitcoinrpc/core/transport"
	"github.com/weisyn/bitcoinrpc/core/wire"
)

// Dispatcher 调用编排器（不可变配置，创建后并发安全）
type Dispatcher struct {
	transport transport.Transport
	codec     codec.Codec
	policy    retry.Policy
	observer  observe.Observer
	client    string
}

// Config 派发器配置
type Config struct {
	Transport transport.Transport
	Codec     codec.Codec
	Policy    retry.Policy
	Observer  observe.Observer

	// Client 客户端标识，附着在遥测元数据上（通常是基础 URL）
	Client string
}

// New 创建派发器
func New(cfg Config) *Dispatcher {
	if cfg.Codec == nil {
		cfg.Codec = codec.NewJSON()
	}
	if cfg.Observer == nil {
		cfg.Observer = observe.Nop{}
	}
	return &Dispatcher{
		transport: cfg.Transport,
		codec:     cfg.Codec,
		policy:    cfg.Policy,
		observer:  cfg.Observer,
		client:    cfg.Client,
	}
}

// Call 执行一次调用
//
// 返回值恰好是下列三者之一：
//   - (*wire.Response, nil)
//   - (nil, *wire.MethodError)
//   - (nil, *wire.TransportError)
func (d *Dispatcher) Call(ctx context.Context, enc wire.Encoder, opts ...Option) (*wire.Response, error) {
	options := applyOptions(opts)
	start := time.Now()

	req, err := enc.Encode()
	if err != nil {
		terr := wire.NewTransportError(wire.ReasonTransportOther, map[string]any{
			"method": enc.MethodName(),
			"error":  err.Error(),
		})
		terr.Err = err
		return nil, terr
	}

	if options.id != "" {
		req.ID = options.id
	}
	if options.path != "" {
		req.Path = options.path
	}
	if req.Path == "" {
		req.Path = wire.DefaultPath
	}

	meta := observe.Metadata{
		Client:  d.client,
		Method:  req.Method,
		Request: enc,
		ID:      req.ID,
		Path:    req.Path,
	}

	// 调用路径自身 panic 时上报 exception 事件后原样抛出，
	// 观测必须不改变控制流。
	defer func() {
		if recovered := recover(); recovered != nil {
			d.observeException(meta, time.Since(start), recovered, debug.Stack())
			panic(recovered)
		}
	}()

	body, err := d.codec.Marshal(req)
	if err != nil {
		terr := wire.NewTransportError(wire.ReasonTransportOther, nil)
		terr.Err = err
		return nil, d.annotate(terr, meta)
	}

	d.observeStart(meta)

	resp, attempts, callErr := d.attemptLoop(ctx, meta, req.Path, body, options.headers)

	info := observe.StopInfo{
		Duration: time.Since(start),
		Attempts: attempts,
	}
	if callErr != nil {
		info.Status = observe.StatusError
		info.Reason = string(outcomeReason(callErr))
	} else {
		info.Status = observe.StatusOK
		info.Result = resp.Result
	}
	d.observeStop(meta, info)

	if callErr != nil {
		return nil, callErr
	}
	return resp, nil
}

// MustCall Call 的 panic 版本：失败时以错误值本身作为 panic 载荷
func (d *Dispatcher) MustCall(ctx context.Context, enc wire.Encoder, opts ...Option) *wire.Response {
	resp, err := d.Call(ctx, enc, opts...)
	if err != nil {
		panic(err)
	}
	return resp
}

// attemptLoop 串行执行各次尝试；第 N 次尝试必须在第 N-1 次分类完成后才开始
func (d *Dispatcher) attemptLoop(ctx context.Context, meta observe.Metadata, path string, body []byte, headers map[string]string) (*wire.Response, int, error) {
	var resp *wire.Response
	var callErr error

	attempt := 0
	for {
		resp, callErr = d.attempt(ctx, meta, path, body, headers)
		if callErr == nil || !d.policy.ShouldRetry(attempt, callErr) {
			return resp, attempt + 1, callErr
		}

		delay := d.policy.Backoff(attempt)
		d.observeRetry(meta, attempt+1, delay, string(outcomeReason(callErr)))

		// 调用方已取消时不再开始下一次尝试
		if err := d.policy.Wait(ctx, attempt); err != nil {
			return resp, attempt + 1, callErr
		}
		attempt++
	}
}

// attempt 单次尝试：一次网络调用 + 一次分类
func (d *Dispatcher) attempt(ctx context.Context, meta observe.Metadata, path string, body []byte, headers map[string]string) (*wire.Response, error) {
	result, err := d.transport.Post(ctx, path, body, headers)
	if err != nil {
		return nil, d.annotate(classify.Failure(err), meta)
	}

	resp, outcomeErr := classify.Outcome(result.StatusCode, result.Body, d.codec)
	if outcomeErr != nil {
		if terr, ok := outcomeErr.(*wire.TransportError); ok {
			return nil, d.annotate(terr, meta)
		}
		return nil, outcomeErr
	}
	return resp, nil
}

// annotate 把调用上下文写进 TransportError 的诊断元数据
func (d *Dispatcher) annotate(terr *wire.TransportError, meta observe.Metadata) *wire.TransportError {
	return terr.
		WithMeta("client", meta.Client).
		WithMeta("method", meta.Method).
		WithMeta("id", meta.ID).
		WithMeta("path", meta.Path)
}

func outcomeReason(err error) wire.Reason {
	switch e := err.(type) {
	case *wire.MethodError:
		return e.Reason
	case *wire.TransportError:
		return e.Reason
	default:
		return wire.ReasonUnknownError
	}
}

// 观测器的任何 panic 都不允许影响调用结果

func (d *Dispatcher) observeStart(meta observe.Metadata) {
	defer swallowPanic()
	d.observer.CallStart(meta)
}

func (d *Dispatcher) observeStop(meta observe.Metadata, info observe.StopInfo) {
	defer swallowPanic()
	d.observer.CallStop(meta, info)
}

func (d *Dispatcher) observeRetry(meta observe.Metadata, attempt int, delay time.Duration, reason string) {
	defer swallowPanic()
	d.observer.CallRetry(meta, attempt, delay, reason)
}

func (d *Dispatcher) observeException(meta observe.Metadata, duration time.Duration, recovered any, stack []byte) {
	defer swallowPanic()
	d.observer.CallException(meta, duration, recovered, stack)
}

func swallowPanic() {
	_ = recover()
}
