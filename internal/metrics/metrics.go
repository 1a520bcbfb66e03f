package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ToolCalls счетчик вызовов инструментов
	ToolCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tool_calls_total",
			Help: "Общее количество вызовов инструментов",
		},
		[]string{"tool_name", "status"},
	)

	// CalculationErrors счетчик ошибок расчетов
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculation_errors_total",
			Help: "Количество ошибок расчетов",
		},
		[]string{"tool_name", "error_type"},
	)

	// HTTPRequests счетчик HTTP запросов к серверу инструментов
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP запросы к серверу инструментов",
		},
		[]string{"tool_name", "code"},
	)

	// ProjectionDuration время построения прогнозов
	ProjectionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "projection_duration_seconds",
			Help:    "Длительность построения прогнозов",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
		[]string{"tool_name"},
	)
)

// Success отмечает успешный вызов инструмента
func Success(tool string) {
	ToolCalls.WithLabelValues(tool, "success").Inc()
}

// ValidationFailed отмечает отклонённые параметры
func ValidationFailed(tool string) {
	ToolCalls.WithLabelValues(tool, "validation_error").Inc()
	CalculationErrors.WithLabelValues(tool, "validation").Inc()
}

// CalculationFailed отмечает ошибку расчета или загрузки данных
func CalculationFailed(tool, errorType string) {
	ToolCalls.WithLabelValues(tool, "error").Inc()
	CalculationErrors.WithLabelValues(tool, errorType).Inc()
}
