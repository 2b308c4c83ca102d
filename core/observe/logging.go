package observe

import (
	"time"

	"go.uber.org/zap"

	"github.com/weisyn/bitcoinrpc/pkg/log"
)

// LogObserver 把调用事件写入结构化日志
type LogObserver struct {
	logger log.Logger
}

// NewLogObserver 创建日志观测器
func NewLogObserver(logger log.Logger) *LogObserver {
	if logger == nil {
		logger = log.NewNop()
	}
	return &LogObserver{logger: logger}
}

func (o *LogObserver) fields(meta Metadata) []zap.Field {
	return []zap.Field{
		zap.String("client", meta.Client),
		zap.String("method", meta.Method),
		zap.String("id", meta.ID),
		zap.String("path", meta.Path),
	}
}

func (o *LogObserver) CallStart(meta Metadata) {
	o.logger.Debug("rpc 调用开始", o.fields(meta)...)
}

func (o *LogObserver) CallStop(meta Metadata, info StopInfo) {
	fields := append(o.fields(meta),
		zap.Duration("duration", info.Duration),
		zap.Int("attempts", info.Attempts),
	)

	if info.Status == StatusOK {
		o.logger.Debug("rpc 调用成功", fields...)
		return
	}
	o.logger.Warn("rpc 调用失败", append(fields, zap.String("reason", info.Reason))...)
}

func (o *LogObserver) CallRetry(meta Metadata, attempt int, delay time.Duration, reason string) {
	o.logger.Warn("rpc 调用重试",
		append(o.fields(meta),
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
			zap.String("reason", reason),
		)...)
}

func (o *LogObserver) CallException(meta Metadata, duration time.Duration, recovered any, stack []byte) {
	o.logger.Error("rpc 调用异常",
		append(o.fields(meta),
			zap.Duration("duration", duration),
			zap.Any("recovered", recovered),
			zap.ByteString("stack", stack),
		)...)
}

var _ Observer = (*LogObserver)(nil)
