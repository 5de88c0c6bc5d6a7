package metrics

import (
	"time"

	"github.com/JrMarcco/shipsync/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultNoop    = "noop"
	ResultStale   = "stale"

	OpDelete = "delete"
	OpUpsert = "upsert"
)

// ShippingMetrics 运费配置保存相关指标
type ShippingMetrics struct {
	saves    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	changes  *prometheus.CounterVec
}

func (m *ShippingMetrics) ObserveSave(kind domain.SettingKind, result string, elapsed time.Duration) {
	m.saves.WithLabelValues(kind.String(), result).Inc()
	m.duration.WithLabelValues(kind.String()).Observe(elapsed.Seconds())
}

func (m *ShippingMetrics) AddChanges(kind domain.SettingKind, deleted, upserted int) {
	if deleted > 0 {
		m.changes.WithLabelValues(kind.String(), OpDelete).Add(float64(deleted))
	}
	if upserted > 0 {
		m.changes.WithLabelValues(kind.String(), OpUpsert).Add(float64(upserted))
	}
}

func NewShippingMetrics(registerer prometheus.Registerer) *ShippingMetrics {
	m := &ShippingMetrics{
		saves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shipsync_shipping_save_total",
			Help: "Shipping setting saves by kind and result.",
		}, []string{"kind", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "shipsync_shipping_save_duration_seconds",
			Help:    "Shipping setting save latency, including calls to the store.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"kind"}),
		changes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shipsync_shipping_changes_total",
			Help: "Per-country shipping setting changes sent to the store.",
		}, []string{"kind", "op"}),
	}
	registerer.MustRegister(m.saves, m.duration, m.changes)
	return m
}
