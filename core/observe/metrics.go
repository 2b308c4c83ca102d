package observe

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsObserver 把调用事件汇总为 Prometheus 指标
type MetricsObserver struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	retries  *prometheus.CounterVec
	panics   prometheus.Counter
}

// NewMetricsObserver 创建指标观测器并向 registerer 注册指标
func NewMetricsObserver(reg prometheus.Registerer) *MetricsObserver {
	m := &MetricsObserver{
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bitcoinrpc",
				Subsystem: "client",
				Name:      "calls_total",
				Help:      "Total number of RPC calls by method and final status",
			},
			[]string{"method", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "bitcoinrpc",
				Subsystem: "client",
				Name:      "call_duration_seconds",
				Help:      "RPC call duration in seconds, retries included",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
			},
			[]string{"method"},
		),
		retries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bitcoinrpc",
				Subsystem: "client",
				Name:      "retries_total",
				Help:      "Total number of retries by method and reason",
			},
			[]string{"method", "reason"},
		),
		panics: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "bitcoinrpc",
				Subsystem: "client",
				Name:      "panics_total",
				Help:      "Total number of panics escaping the call path",
			},
		),
	}

	if reg != nil {
		reg.MustRegister(m.calls, m.duration, m.retries, m.panics)
	}
	return m
}

func (m *MetricsObserver) CallStart(Metadata) {}

func (m *MetricsObserver) CallStop(meta Metadata, info StopInfo) {
	m.calls.WithLabelValues(meta.Method, string(info.Status)).Inc()
	m.duration.WithLabelValues(meta.Method).Observe(info.Duration.Seconds())
}

func (m *MetricsObserver) CallRetry(meta Metadata, _ int, _ time.Duration, reason string) {
	m.retries.WithLabelValues(meta.Method, reason).Inc()
}

func (m *MetricsObserver) CallException(Metadata, time.Duration, any, []byte) {
	m.panics.Inc()
}

var _ Observer = (*MetricsObserver)(nil)
