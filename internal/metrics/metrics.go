// Package metrics собирает Prometheus-метрики ядра координации.
// Все методы допускают nil-получатель, чтобы компоненты работали без метрик.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "guardian"

type Metrics struct {
	channelConnected   prometheus.Gauge
	channelReconnects  prometheus.Counter
	queueDepth         prometheus.Gauge
	queueDropped       *prometheus.CounterVec
	handoffTransitions *prometheus.CounterVec
	callAutoCancels    prometheus.Counter
}

// New создает метрики и регистрирует их в reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		channelConnected: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "channel_connected",
			Help:      "1 while the coordination channel is connected.",
		}),
		channelReconnects: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "channel_reconnects_total",
			Help:      "Connect transitions after the first one.",
		}),
		queueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "emit_queue_depth",
			Help:      "Outbound events buffered while disconnected.",
		}),
		queueDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emit_queue_dropped_total",
			Help:      "Buffered outbound events that were never sent.",
		}, []string{"reason"}),
		handoffTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handoff_transitions_total",
			Help:      "Applied incident hand-off status transitions.",
		}, []string{"status"}),
		callAutoCancels: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "call_auto_cancels_total",
			Help:      "Calls left by the supervisor after ringing ended without a join.",
		}),
	}
	reg.MustRegister(
		m.channelConnected,
		m.channelReconnects,
		m.queueDepth,
		m.queueDropped,
		m.handoffTransitions,
		m.callAutoCancels,
	)
	return m
}

func (m *Metrics) ChannelConnected(connected bool) {
	if m == nil {
		return
	}
	if connected {
		m.channelConnected.Set(1)
		return
	}
	m.channelConnected.Set(0)
}

func (m *Metrics) ChannelReconnected() {
	if m == nil {
		return
	}
	m.channelReconnects.Inc()
}

func (m *Metrics) QueueDepth(n int) {
	if m == nil {
		return
	}
	m.queueDepth.Set(float64(n))
}

// QueueDropped учитывает потерянное событие; reason: overflow, expired, send_failed, invalid
func (m *Metrics) QueueDropped(reason string) {
	if m == nil {
		return
	}
	m.queueDropped.WithLabelValues(reason).Inc()
}

func (m *Metrics) HandoffTransition(status string) {
	if m == nil {
		return
	}
	m.handoffTransitions.WithLabelValues(status).Inc()
}

func (m *Metrics) CallAutoCancelled() {
	if m == nil {
		return
	}
	m.callAutoCancels.Inc()
}
