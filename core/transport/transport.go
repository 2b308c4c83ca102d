// Package transport 提供派发层使用的 HTTP 传输抽象
//
// 派发器只依赖 Transport 接口；HTTP 实现负责基础认证、
// 静态请求头与按次超时，连接池等细节交给 net/http。
package transport

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"
)

// Result 一次 HTTP 往返的原始结果，交由错误分类器处理
type Result struct {
	StatusCode int
	Body       []byte
}

// Transport 传输接口
//
// 返回 error 仅表示连接层失败（未收到任何响应）；
// 非 2xx 状态不是本层的错误，由分类器决定其含义。
type Transport interface {
	Post(ctx context.Context, path string, body []byte, headers map[string]string) (*Result, error)
}

// HTTPConfig HTTP 传输配置
type HTTPConfig struct {
	BaseURL  string
	Username string
	Password string

	// Headers 随每个请求发送的静态请求头
	Headers map[string]string

	// Timeout 按次请求超时；Client 为 nil 时生效
	Timeout time.Duration

	// Client 可注入自定义 http.Client（代理、TLS 等）
	Client *http.Client
}

// HTTP 基于 net/http 的传输实现
type HTTP struct {
	baseURL  string
	username string
	password string
	headers  map[string]string
	client   *http.Client
}

// NewHTTP 创建 HTTP 传输
func NewHTTP(cfg HTTPConfig) *HTTP {
	client := cfg.Client
	if client == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		client = &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}

	headers := make(map[string]string, len(cfg.Headers))
	for k, v := range cfg.Headers {
		headers[k] = v
	}

	return &HTTP{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		username: cfg.Username,
		password: cfg.Password,
		headers:  headers,
		client:   client,
	}
}

// Post 发送 JSON 请求体到 baseURL+path
func (t *HTTP) Post(ctx context.Context, path string, body []byte, headers map[string]string) (*Result, error) {
	if path == "" {
		path = "/"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range t.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if t.username != "" || t.password != "" {
		req.SetBasicAuth(t.username, t.password)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Result{StatusCode: resp.StatusCode, Body: respBody}, nil
}

var _ Transport = (*HTTP)(nil)
