// Package classify 将原始传输结果映射为闭合的结果三元组
//
// 📋 **错误分类层 (Error Classifier)**
//
// 纯函数：输入 (HTTP 状态, 响应体) 或连接层错误，输出
// Response / MethodError / TransportError 三者之一。
// 派发层与重试策略共用同一套分类逻辑，保证最终结果
// 与重试判定永不分叉。
package classify

import (
	"encoding/json"
	"net/http"

	"github.com/weisyn/bitcoinrpc/core/codec"
	"github.com/weisyn/bitcoinrpc/core/wire"
)

// rpcEnvelope 节点响应体的外层结构
type rpcEnvelope struct {
	ID     string          `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *rpcErrorBody   `json:"error"`
}

type rpcErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusReasons HTTP 状态 → 语义标签
var statusReasons = map[int]wire.Reason{
	http.StatusBadRequest:          wire.ReasonHTTPBadRequest,
	http.StatusUnauthorized:        wire.ReasonHTTPUnauthorized,
	http.StatusForbidden:           wire.ReasonHTTPForbidden,
	http.StatusNotFound:            wire.ReasonHTTPNotFound,
	http.StatusMethodNotAllowed:    wire.ReasonHTTPMethodNotAllowed,
	http.StatusInternalServerError: wire.ReasonHTTPInternalServerError,
	http.StatusBadGateway:          wire.ReasonHTTPBadGateway,
	http.StatusServiceUnavailable:  wire.ReasonHTTPServiceUnavailable,
	http.StatusGatewayTimeout:      wire.ReasonHTTPGatewayTimeout,
}

// StatusReason 查 HTTP 状态对应的标签；未收录返回 false
func StatusReason(status int) (wire.Reason, bool) {
	reason, ok := statusReasons[status]
	return reason, ok
}

// Outcome 把一次 HTTP 往返分类为三种结果之一
//
// 分类规则：
//   - 2xx 且 error 非空 → MethodError
//   - 2xx 且 error 为空 → Response
//   - 400/401/403/404/405 → TransportError{http_*}
//   - 500 且响应体携带可解码的 error 对象 → MethodError（节点经 500 上报语义错误）
//   - 500/502/503/504 其余情况 → TransportError{http_*}
//   - 其他状态 → TransportError{unknown_error}，附 status 与 body
func Outcome(status int, body []byte, c codec.Codec) (*wire.Response, error) {
	var envelope rpcEnvelope
	decodable := c.Unmarshal(body, &envelope) == nil

	switch {
	case status >= 200 && status < 300:
		if !decodable {
			return nil, wire.NewTransportError(wire.ReasonUnknownError, map[string]any{
				"status": status,
				"body":   string(body),
			})
		}
		if envelope.Error != nil {
			return nil, methodError(&envelope)
		}
		return &wire.Response{ID: envelope.ID, Result: envelope.Result}, nil

	case status == http.StatusInternalServerError && decodable && envelope.Error != nil:
		return nil, methodError(&envelope)

	default:
		if reason, ok := StatusReason(status); ok {
			return nil, wire.NewTransportError(reason, map[string]any{
				"status": status,
				"body":   string(body),
			})
		}
		return nil, wire.NewTransportError(wire.ReasonUnknownError, map[string]any{
			"status": status,
			"body":   string(body),
		})
	}
}

func methodError(envelope *rpcEnvelope) *wire.MethodError {
	return &wire.MethodError{
		ID:      envelope.ID,
		Code:    envelope.Error.Code,
		Message: envelope.Error.Message,
		Reason:  MethodReason(envelope.Error.Code),
	}
}
