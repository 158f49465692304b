package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "disaster_connect"

// Исходы доставки вебхука
const (
	OutcomeDelivered = "delivered"
	OutcomeRetried   = "retried"
	OutcomeFailed    = "failed"
	OutcomeDecode    = "decode_error"
)

// SortOther - метка для неизвестного порядка сортировки
const SortOther = "other"

// Metrics - счетчики, гистограммы и датчики Prometheus сервиса инцидентов
type Metrics struct {
	ReportsSubmitted   *prometheus.CounterVec // метки: type, severity
	ValidationFailures *prometheus.CounterVec // метки: step
	Queries            *prometheus.CounterVec // метки: sort={recent,severity,other}
	QueryResults       prometheus.Histogram
	StoredIncidents    prometheus.Gauge

	WebhookDeliveries *prometheus.CounterVec // метки: outcome={delivered,retried,failed,decode_error}
}

// NewMetrics создает метрики и регистрирует их в реестре Prometheus по умолчанию
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ReportsSubmitted,
		m.ValidationFailures,
		m.Queries,
		m.QueryResults,
		m.StoredIncidents,
		m.WebhookDeliveries,
	)
	return m
}

// NewMetricsForTesting создает метрики без регистрации, чтобы тесты не падали
// с "already registered" при повторном вызове
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ReportsSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_submitted_total",
			Help:      "Incident reports accepted, by type and severity.",
		}, []string{"type", "severity"}),
		ValidationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_validation_failures_total",
			Help:      "Report wizard validation failures by step.",
		}, []string{"step"}),
		Queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Incident feed and map queries by sort order.",
		}, []string{"sort"}),
		QueryResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_results",
			Help:      "Number of incidents returned per query.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
		}),
		StoredIncidents: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stored_incidents",
			Help:      "Incidents currently held in memory.",
		}),
		WebhookDeliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhook_deliveries_total",
			Help:      "Webhook delivery attempts by outcome.",
		}, []string{"outcome"}),
	}
}
