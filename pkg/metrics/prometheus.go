// Package metrics содержит Prometheus метрики сервиса безопасности туристов
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager владеет коллекторами Prometheus сервиса
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Жизненный цикл инцидентов
	incidentsCreated    *prometheus.CounterVec
	incidentTransitions *prometheus.CounterVec
	alertsCreated       prometheus.Counter
	fanOutRecipients    prometheus.Histogram
	safetyScoreUpdates  prometheus.Counter

	// Доставка вебхуков
	webhookPublished  prometheus.Counter
	webhookDelivered  *prometheus.CounterVec
	webhookPublishErr prometheus.Counter

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

const (
	// DefaultNamespace совпадает с именем модуля
	DefaultNamespace = "tourist_safety"
	DefaultSubsystem = "core"

	// OtherCategory - метка для категорий вне известного набора
	OtherCategory = "Other"
)

// knownCategories повторяет категории инцидентов из internal/models
var knownCategories = map[string]struct{}{ //nolint:gochecknoglobals // неизменяемый набор
	"Theft":      {},
	"Harassment": {},
	"Medical":    {},
	"Accident":   {},
	"Emergency":  {},
}

var globalManager *Manager //nolint:gochecknoglobals // единственный менеджер метрик

// Собственный registry, без стандартных метрик Go рантайма
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // registry метрик

func init() { //nolint:gochecknoinits // регистрация глобальных метрик
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager создает менеджер и регистрирует коллекторы.
// Имена метрик по умолчанию: tourist_safety_core_<name>.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        DefaultNamespace,
		subsystem:        DefaultSubsystem,
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.incidentsCreated = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "incidents_created_total",
		Help:      "Total number of incidents created by kind (manual or sos) and category",
	}, []string{"kind", "category"})

	m.incidentTransitions = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "incident_transitions_total",
		Help:      "Total number of status and priority changes by field and new value",
	}, []string{"field", "value"})

	m.alertsCreated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "alerts_created_total",
		Help:      "Total number of alert records written by fan-out",
	})

	m.fanOutRecipients = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fanout_recipients",
		Help:      "Number of recipients per fan-out run",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
	})

	m.safetyScoreUpdates = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "safety_score_updates_total",
		Help:      "Total number of safety score updates",
	})

	m.webhookPublished = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "webhook_events_published_total",
		Help:      "Total number of webhook events pushed to the queue",
	})

	m.webhookPublishErr = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "webhook_publish_errors_total",
		Help:      "Total number of webhook events that could not be queued",
	})

	m.webhookDelivered = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "webhook_deliveries_total",
		Help:      "Total number of webhook delivery outcomes",
	}, []string{"outcome"})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by route, method and status",
	}, []string{"path", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration in seconds",
		Buckets:   m.histogramBuckets,
	}, []string{"path", "method"})
}

// RecordIncidentCreated увеличивает счетчик созданных инцидентов.
// Категория свободная, поэтому в метку попадают только известные значения, остальные - как Other.
func RecordIncidentCreated(kind, category string) {
	globalManager.incidentsCreated.WithLabelValues(kind, categoryLabel(category)).Inc()
}

func categoryLabel(category string) string {
	if _, ok := knownCategories[category]; ok {
		return category
	}
	return OtherCategory
}

// RecordIncidentTransition считает смену статуса или приоритета
func RecordIncidentTransition(field, value string) {
	globalManager.incidentTransitions.WithLabelValues(field, value).Inc()
}

// RecordAlertsCreated учитывает алерты одной рассылки
func RecordAlertsCreated(count int) {
	globalManager.alertsCreated.Add(float64(count))
	globalManager.fanOutRecipients.Observe(float64(count))
}

// RecordSafetyScoreUpdate увеличивает счетчик обновлений рейтинга безопасности
func RecordSafetyScoreUpdate() {
	globalManager.safetyScoreUpdates.Inc()
}

// RecordWebhookPublished увеличивает счетчик событий, поставленных в очередь
func RecordWebhookPublished() {
	globalManager.webhookPublished.Inc()
}

// RecordWebhookPublishError увеличивает счетчик событий, не попавших в очередь
func RecordWebhookPublishError() {
	globalManager.webhookPublishErr.Inc()
}

// RecordWebhookDelivery считает исход доставки: "delivered", "failed" или "skipped"
func RecordWebhookDelivery(outcome string) {
	globalManager.webhookDelivered.WithLabelValues(outcome).Inc()
}

// RecordHTTPRequest учитывает HTTP запрос и его длительность в секундах
func RecordHTTPRequest(path, method, status string, seconds float64) {
	globalManager.httpRequests.WithLabelValues(path, method, status).Inc()
	globalManager.httpRequestDuration.WithLabelValues(path, method).Observe(seconds)
}

// GetRegistry возвращает registry с метриками сервиса
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Handler отдает метрики в формате Prometheus
func Handler() http.Handler {
	return promhttp.HandlerFor(customRegistry, promhttp.HandlerOpts{})
}
