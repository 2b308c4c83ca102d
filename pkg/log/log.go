// Package log 定义客户端库使用的日志记录接口
//
// 接口保持最小：库内只需要分级输出与字段附加，
// 默认实现基于 zap，也可由调用方注入自己的实现。
package log

import "go.uber.org/zap"

// Logger 日志记录器接口
type Logger interface {
	// Debug 记录调试级别的日志
	Debug(msg string, fields ...zap.Field)

	// Info 记录信息级别的日志
	Info(msg string, fields ...zap.Field)

	// Warn 记录警告级别的日志
	Warn(msg string, fields ...zap.Field)

	// Error 记录错误级别的日志
	Error(msg string, fields ...zap.Field)

	// With 返回带有额外字段的 Logger
	With(fields ...zap.Field) Logger
}

// zapLogger 基于 zap 的默认实现
type zapLogger struct {
	l *zap.Logger
}

// NewZap 用已有的 zap.Logger 包装出 Logger
func NewZap(l *zap.Logger) Logger {
	return &zapLogger{l: l}
}

func (z *zapLogger) Debug(msg string, fields ...zap.Field) { z.l.Debug(msg, fields...) }
func (z *zapLogger) Info(msg string, fields ...zap.Field)  { z.l.Info(msg, fields...) }
func (z *zapLogger) Warn(msg string, fields ...zap.Field)  { z.l.Warn(msg, fields...) }
func (z *zapLogger) Error(msg string, fields ...zap.Field) { z.l.Error(msg, fields...) }

func (z *zapLogger) With(fields ...zap.Field) Logger {
	return &zapLogger{l: z.l.With(fields...)}
}

// nopLogger 丢弃全部输出
type nopLogger struct{}

// NewNop 创建空日志记录器
func NewNop() Logger { return nopLogger{} }

func (nopLogger) Debug(string, ...zap.Field) {}
func (nopLogger) Info(string, ...zap.Field)  {}
func (nopLogger) Warn(string, ...zap.Field)  {}
func (nopLogger) Error(string, ...zap.Field) {}

func (n nopLogger) With(...zap.Field) Logger { return n }
