package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "dealcalc_"

	resultSuccess = "success"
	resultError   = "error"
)

var (
	registerOnce sync.Once

	analyzeTotal   *prometheus.CounterVec
	analyzeLatency *prometheus.HistogramVec

	exportTotal   *prometheus.CounterVec
	exportLatency *prometheus.HistogramVec

	configOpsTotal *prometheus.CounterVec
)

// Init registers the calculator's metrics. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		analyzeTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "analyze_total",
				Help: "Total deal analyses by result",
			},
			[]string{"result"},
		)
		analyzeLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "analyze_latency_seconds",
				Help:    "Deal analysis latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)

		exportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "report_export_total",
				Help: "Total report exports by format and result",
			},
			[]string{"format", "result"},
		)
		exportLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "report_export_latency_seconds",
				Help:    "Report export latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format", "result"},
		)

		configOpsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "config_operations_total",
				Help: "Total saved-configuration operations by op and result",
			},
			[]string{"op", "result"},
		)

		prometheus.MustRegister(
			analyzeTotal,
			analyzeLatency,
			exportTotal,
			exportLatency,
			configOpsTotal,
		)
	})
}

// ObserveAnalyze records an analysis request and its duration.
func ObserveAnalyze(result string, duration time.Duration) {
	if result == "" {
		result = resultSuccess
	}
	if analyzeTotal != nil {
		analyzeTotal.WithLabelValues(result).Inc()
	}
	if analyzeLatency != nil {
		analyzeLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

// ObserveExport records a report export and its duration.
func ObserveExport(format, result string, duration time.Duration) {
	if format == "" {
		format = "unknown"
	}
	if result == "" {
		result = resultSuccess
	}
	if exportTotal != nil {
		exportTotal.WithLabelValues(format, result).Inc()
	}
	if exportLatency != nil {
		exportLatency.WithLabelValues(format, result).Observe(duration.Seconds())
	}
}

// IncConfigOp increments the saved-configuration counter.
func IncConfigOp(op, result string) {
	if result == "" {
		result = resultSuccess
	}
	if configOpsTotal != nil {
		configOpsTotal.WithLabelValues(op, result).Inc()
	}
}

// Exported result constants for callers.
const (
	ResultSuccess = resultSuccess
	ResultError   = resultError
)
