// Package telemetry expõe as métricas Prometheus do painel
package telemetry

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "analytics_hub"

// BufferSizer fornece o tamanho atual dos buffers do estado
type BufferSizer interface {
	ActivityLen() int
	AlertsLen() int
	UnreadAlertCount() int
}

// Metrics reúne os coletores do painel
type Metrics struct {
	Ticks           *prometheus.CounterVec
	Generated       *prometheus.CounterVec
	Evicted         *prometheus.CounterVec
	RefreshRejected prometheus.Counter
	Refreshes       prometheus.Counter

	RequestsProcessed *prometheus.CounterVec
	RequestDuration   *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New cria e registra os coletores em reg. Se sizes não for nil, os tamanhos
// dos buffers são expostos como gauges lidos no momento da coleta.
func New(reg prometheus.Registerer, gatherer prometheus.Gatherer, sizes BufferSizer) (*Metrics, error) {
	m := &Metrics{
		Ticks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Total number of scheduled task executions",
		}, []string{"task"}),
		Generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generated_total",
			Help:      "Total number of simulated records generated by kind",
		}, []string{"kind"}),
		Evicted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evicted_total",
			Help:      "Total number of records evicted from bounded buffers",
		}, []string{"buffer"}),
		RefreshRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refresh_rejected_total",
			Help:      "Manual refreshes rejected because another one was in flight",
		}),
		Refreshes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refresh_completed_total",
			Help:      "Manual refreshes completed",
		}),
		RequestsProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_processed_total",
			Help:      "Total number of API requests processed",
		}, []string{"method", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "Time to serve an API request",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		gatherer: gatherer,
	}

	collectors := []prometheus.Collector{
		m.Ticks, m.Generated, m.Evicted, m.RefreshRejected, m.Refreshes,
		m.RequestsProcessed, m.RequestDuration,
	}

	if sizes != nil {
		collectors = append(collectors,
			gaugeFunc("activity_buffer_size", "Current number of activity records", func() float64 {
				return float64(sizes.ActivityLen())
			}),
			gaugeFunc("alert_buffer_size", "Current number of alerts", func() float64 {
				return float64(sizes.AlertsLen())
			}),
			gaugeFunc("alerts_unread", "Current number of unread alerts", func() float64 {
				return float64(sizes.UnreadAlertCount())
			}),
		)
	}

	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// NewWithRegistry cria os coletores num registro próprio
func NewWithRegistry(sizes BufferSizer) (*Metrics, *prometheus.Registry, error) {
	registry := prometheus.NewRegistry()
	m, err := New(registry, registry, sizes)
	if err != nil {
		return nil, nil, err
	}
	return m, registry, nil
}

func gaugeFunc(name, help string, fn func() float64) prometheus.GaugeFunc {
	return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
	}, fn)
}

// Gatherer devolve o coletor usado na exposição das métricas
func (m *Metrics) Gatherer() prometheus.Gatherer {
	if m.gatherer != nil {
		return m.gatherer
	}
	return prometheus.DefaultGatherer
}

func (m *Metrics) ObserveTick(task string) {
	m.Ticks.WithLabelValues(task).Inc()
}

func (m *Metrics) ObserveGenerated(kind string) {
	m.Generated.WithLabelValues(kind).Inc()
}

func (m *Metrics) ObserveEvicted(buffer string) {
	m.Evicted.WithLabelValues(buffer).Inc()
}

func (m *Metrics) ObserveRequest(method string, status int, duration time.Duration) {
	m.RequestsProcessed.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// ObserveRefresh conta atualizações manuais concluídas ou rejeitadas
func (m *Metrics) ObserveRefresh(rejected bool) {
	if rejected {
		m.RefreshRejected.Inc()
		return
	}
	m.Refreshes.Inc()
}
