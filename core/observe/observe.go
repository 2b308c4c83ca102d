// Package observe 定义调用生命周期的观测钩子
//
// 观测器在客户端构造时显式注入（不经过任何进程级事件总线）：
// start / stop / exception 三类事件外加 retry 事件。
// 观测器内部的任何 panic 都会被吸收，绝不影响调用结果。
package observe

import "time"

// Status 调用最终状态
type Status string

const (
	StatusOK    Status = "ok"
	StatusError Status = "error"
)

// Metadata 每次调用构建一份，附着在全部事件上
type Metadata struct {
	// Client 客户端标识（基础 URL）
	Client string

	// Method RPC 方法名
	Method string

	// Request 原始类型化请求值
	Request any

	// ID 本次调用解析出的请求 id
	ID string

	// Path 本次调用解析出的路由路径
	Path string
}

// StopInfo stop 事件的载荷：状态与 result-or-reason
type StopInfo struct {
	Status   Status
	Duration time.Duration

	// Result 成功时的原始结果（status=ok）
	Result any

	// Reason 失败时的语义标签（status=error）
	Reason string

	// Attempts 实际执行的尝试总次数
	Attempts int
}

// Observer 观测接口
type Observer interface {
	// CallStart 第一次网络发送之前触发
	CallStart(meta Metadata)

	// CallStop 调用得到最终分类结果后触发
	CallStop(meta Metadata, info StopInfo)

	// CallRetry 每次重试等待之前触发（attempt 从 1 起计）
	CallRetry(meta Metadata, attempt int, delay time.Duration, reason string)

	// CallException 调用路径自身 panic 时触发（分类错误流之外）
	CallException(meta Metadata, duration time.Duration, recovered any, stack []byte)
}

// Nop 空观测器
type Nop struct{}

func (Nop) CallStart(Metadata)                                 {}
func (Nop) CallStop(Metadata, StopInfo)                        {}
func (Nop) CallRetry(Metadata, int, time.Duration, string)     {}
func (Nop) CallException(Metadata, time.Duration, any, []byte) {}

// Multi 把事件广播给多个观测器
type Multi []Observer

func (m Multi) CallStart(meta Metadata) {
	for _, o := range m {
		o.CallStart(meta)
	}
}

func (m Multi) CallStop(meta Metadata, info StopInfo) {
	for _, o := range m {
		o.CallStop(meta, info)
	}
}

func (m Multi) CallRetry(meta Metadata, attempt int, delay time.Duration, reason string) {
	for _, o := range m {
		o.CallRetry(meta, attempt, delay, reason)
	}
}

func (m Multi) CallException(meta Metadata, duration time.Duration, recovered any, stack []byte) {
	for _, o := range m {
		o.CallException(meta, duration, recovered, stack)
	}
}

var (
	_ Observer = Nop{}
	_ Observer = Multi{}
)
