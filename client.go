// Package bitcoinrpc 是类型化 Bitcoin Core JSON-RPC 客户端的门面
//
// 📋 **客户端门面 (Client Facade)**
//
// 组装各 core 子层（wire/codec/transport/classify/retry/dispatch/observe）
// 并暴露最小调用面：
//
//	client, err := bitcoinrpc.New(bitcoinrpc.Config{
//		BaseURL:  "http://127.0.0.1:8332",
//		Username: "rpcuser",
//		Password: "rpcpass",
//	})
//	resp, err := client.Call(ctx, methods.GetBlockchainInfo{})
//
// 🎯 **设计原则**
// - Client 是不可变配置，创建后可被任意多个 goroutine 并发使用
// - 编解码器与观测器在构造时显式注入，无任何进程级全局选择
// - 失败恒为 *wire.MethodError 或 *wire.TransportError 二者之一
package bitcoinrpc

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/weisyn/bitcoinrpc/core/codec"
	"github.com/weisyn/bitcoinrpc/core/dispatch"
	"github.com/weisyn/bitcoinrpc/core/observe"
	"github.com/weisyn/bitcoinrpc/core/retry"
	"github.com/weisyn/bitcoinrpc/core/transport"
	"github.com/weisyn/bitcoinrpc/core/wire"
)

// 常用类型的门面别名，调用方通常无需直接导入 core 子包
type (
	Request        = wire.Request
	Response       = wire.Response
	MethodError    = wire.MethodError
	TransportError = wire.TransportError
	Reason         = wire.Reason
	Encoder        = wire.Encoder
	Option         = dispatch.Option
)

// 调用选项的门面转发
var (
	WithID     = dispatch.WithID
	WithPath   = dispatch.WithPath
	WithHeader = dispatch.WithHeader
)

// Config 客户端配置（构造后不再修改）
type Config struct {
	// BaseURL 节点 RPC 根地址，如 http://127.0.0.1:8332
	BaseURL string

	// Username/Password HTTP 基础认证凭据
	Username string
	Password string

	// Headers 随每个请求发送的静态请求头
	Headers map[string]string

	// Timeout 按次尝试超时（非整个调用含重试的累计超时）
	Timeout time.Duration

	// HTTPClient 可注入自定义 http.Client（代理、连接池、TLS）
	HTTPClient *http.Client

	// Codec 编解码器；缺省为标准库 JSON
	Codec codec.Codec

	// Observer 调用生命周期观测器；缺省不观测
	Observer observe.Observer

	// MaxRetries 首次尝试之外的最大重试次数
	MaxRetries int

	// RetryDelay 首次重试前的等待时长
	RetryDelay time.Duration

	// RetryMultiplier 退避倍率；<=1 为固定间隔
	RetryMultiplier float64

	// RetryableReasons 可重试 reason 集合；缺省为四个 5xx 派生标签
	RetryableReasons []Reason
}

func (c Config) withDefaults() Config {
	if c.Timeout == 0 {
		c.Timeout = 30 * time.Second
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = 3
	}
	if c.RetryDelay == 0 {
		c.RetryDelay = time.Second
	}
	if c.Codec == nil {
		c.Codec = codec.NewJSON()
	}
	if c.Observer == nil {
		c.Observer = observe.Nop{}
	}
	return c
}

// Client Bitcoin Core JSON-RPC 客户端
type Client struct {
	cfg        Config
	dispatcher *dispatch.Dispatcher
}

// New 创建客户端
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("bitcoinrpc: BaseURL 不能为空")
	}

	cfg = cfg.withDefaults()
	tr := transport.NewHTTP(transport.HTTPConfig{
		BaseURL:  cfg.BaseURL,
		Username: cfg.Username,
		Password: cfg.Password,
		Headers:  cfg.Headers,
		Timeout:  cfg.Timeout,
		Client:   cfg.HTTPClient,
	})
	return newWithTransport(cfg, tr)
}

// NewWithTransport 用自定义传输创建客户端（测试与特殊部署用）
func NewWithTransport(cfg Config, tr transport.Transport) (*Client, error) {
	if tr == nil {
		return nil, errors.New("bitcoinrpc: transport 不能为空")
	}
	return newWithTransport(cfg.withDefaults(), tr)
}

func newWithTransport(cfg Config, tr transport.Transport) (*Client, error) {
	policy := retry.NewPolicy(cfg.MaxRetries, cfg.RetryDelay, cfg.RetryMultiplier, cfg.RetryableReasons)

	dispatcher := dispatch.New(dispatch.Config{
		Transport: tr,
		Codec:     cfg.Codec,
		Policy:    policy,
		Observer:  cfg.Observer,
		Client:    cfg.BaseURL,
	})

	return &Client{cfg: cfg, dispatcher: dispatcher}, nil
}

// Call 执行一次调用，返回 Response 或两类错误之一
func (c *Client) Call(ctx context.Context, enc Encoder, opts ...Option) (*Response, error) {
	return c.dispatcher.Call(ctx, enc, opts...)
}

// MustCall Call 的 panic 版本：失败时以错误值本身作为 panic 载荷
func (c *Client) MustCall(ctx context.Context, enc Encoder, opts ...Option) *Response {
	return c.dispatcher.MustCall(ctx, enc, opts...)
}

// CallFor 执行调用并把结果解码到 out
func (c *Client) CallFor(ctx context.Context, enc Encoder, out any, opts ...Option) error {
	resp, err := c.Call(ctx, enc, opts...)
	if err != nil {
		return err
	}
	if out == nil || len(resp.Result) == 0 {
		return nil
	}
	return c.cfg.Codec.Unmarshal(resp.Result, out)
}

// Codec 返回客户端配置的编解码器（供结果类型的 Decode 辅助使用）
func (c *Client) Codec() codec.Codec {
	return c.cfg.Codec
}
