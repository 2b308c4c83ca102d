// Package wire 定义 Bitcoin Core JSON-RPC 的线路层值类型
//
// 📋 **线路类型层 (Wire Types Layer)**
//
// 本包只描述一次调用的数据形状，不包含任何传输、分类或重试逻辑：
// - Request/Response：出参与入参
// - MethodError/TransportError：两类不可混淆的失败
// - Params：位置参数构建器（尾部可选参数裁剪）
//
// 🎯 **设计原则**
// - 值不可变：Request 创建后除注入调用方指定 id 外不再修改
// - 单一结果：一次调用最终恰好得到 Response / MethodError / TransportError 之一
package wire

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// ProtocolVersion Bitcoin Core 使用的 JSON-RPC 协议版本号
const ProtocolVersion = "1.0"

// DefaultPath 全局调用的默认路由路径
const DefaultPath = "/"

// Request JSON-RPC 请求
//
// 线路上只序列化 jsonrpc/id/method/params 四个字段；
// Path 是节点的路由约定（钱包调用走 /wallet/<name>），不属于请求体。
type Request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`

	Path string `json:"-"`
}

// NewRequest 创建请求，id 自动生成（uuid v4）
func NewRequest(method string, params []any) *Request {
	if params == nil {
		params = []any{}
	}
	return &Request{
		JSONRPC: ProtocolVersion,
		ID:      uuid.NewString(),
		Method:  method,
		Params:  params,
		Path:    DefaultPath,
	}
}

// WalletPath 返回钱包作用域调用的路由路径
func WalletPath(name string) string {
	return "/wallet/" + name
}

// Response JSON-RPC 成功响应
//
// Result 保持原始 JSON，由各方法的结果类型自行解码（交接点）。
type Response struct {
	ID     string          `json:"id"`
	Result json.RawMessage `json:"result"`
}

// MethodError 节点语义层错误
//
// 调用已到达节点且被其拒绝；Reason 由错误码经静态映射表派生。
// 语义层错误是最终结果，永不重试。
type MethodError struct {
	ID      string
	Code    int
	Message string
	Reason  Reason
}

func (e *MethodError) Error() string {
	return fmt.Sprintf("bitcoind 方法错误 %d (%s): %s", e.Code, e.Reason, e.Message)
}

// TransportError 传输层错误
//
// 调用未完成一次语义往返：HTTP 状态异常、响应体无法解码、
// 或连接层失败（超时、拒绝连接、域名解析失败等）。
type TransportError struct {
	Reason   Reason
	Metadata map[string]any

	// NoResponse 表示未收到任何 HTTP 响应（连接层失败），
	// 此类失败在重试策略中总是可重试。
	NoResponse bool

	// Err 底层传输错误（如有）
	Err error
}

// NewTransportError 创建由 HTTP 状态/响应体派生的传输错误
func NewTransportError(reason Reason, metadata map[string]any) *TransportError {
	if metadata == nil {
		metadata = make(map[string]any)
	}
	return &TransportError{Reason: reason, Metadata: metadata}
}

// NewTransportFailure 创建连接层失败（未收到任何响应）
func NewTransportFailure(reason Reason, err error) *TransportError {
	return &TransportError{
		Reason:     reason,
		Metadata:   make(map[string]any),
		NoResponse: true,
		Err:        err,
	}
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("传输错误 (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("传输错误 (%s)", e.Reason)
}

func (e *TransportError) Unwrap() error { return e.Err }

// WithMeta 附加诊断上下文（方法名、路径、id 等），返回自身便于链式调用
func (e *TransportError) WithMeta(key string, value any) *TransportError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]any)
	}
	e.Metadata[key] = value
	return e
}

// Encoder 类型化请求进入通用派发层的唯一接缝
//
// 每个方法的请求类型实现本接口；派发器只依赖接口，不依赖具体类型。
type Encoder interface {
	// MethodName 返回 RPC 方法的规范名称
	MethodName() string

	// Encode 纯函数：由请求值产出线路 Request（含路由路径）
	Encode() (*Request, error)
}
