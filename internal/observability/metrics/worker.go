package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ekaraca/docsorter/internal/core/domain"
)

type WorkerMetrics struct {
	registry *prometheus.Registry

	processTotal        *prometheus.CounterVec
	processDuration     *prometheus.HistogramVec
	processInFlight     prometheus.Gauge
	recognitionAttempts *prometheus.HistogramVec
	queueLag            *prometheus.HistogramVec
}

func NewWorkerMetrics(service string) *WorkerMetrics {
	registry := prometheus.NewRegistry()

	processTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docsorter",
			Subsystem: "worker",
			Name:      "document_process_total",
			Help:      "Total processed documents by category and status.",
		},
		[]string{"service", "category", "status"},
	)
	processDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "docsorter",
			Subsystem: "worker",
			Name:      "document_process_duration_seconds",
			Help:      "Document processing duration in seconds by status.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120, 300},
		},
		[]string{"service", "status"},
	)
	processInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "docsorter",
			Subsystem: "worker",
			Name:      "document_process_in_flight",
			Help:      "Number of in-flight document classifications.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	recognitionAttempts := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "docsorter",
			Subsystem: "worker",
			Name:      "recognition_attempts",
			Help:      "Recognition calls spent per document before the outcome settled.",
			Buckets:   []float64{0, 1, 2, 3, 4, 5},
		},
		[]string{"service"},
	)
	queueLag := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "docsorter",
			Subsystem: "worker",
			Name:      "queue_lag_seconds",
			Help:      "Delay between document ingestion and processing start.",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120, 300, 600},
		},
		[]string{"service"},
	)

	registry.MustRegister(processTotal, processDuration, processInFlight, recognitionAttempts, queueLag)

	return &WorkerMetrics{
		registry:            registry,
		processTotal:        processTotal,
		processDuration:     processDuration,
		processInFlight:     processInFlight,
		recognitionAttempts: recognitionAttempts,
		queueLag:            queueLag,
	}
}

func (m *WorkerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *WorkerMetrics) StartDocument() {
	m.processInFlight.Inc()
}

func (m *WorkerMetrics) FinishDocument(service string, category domain.Category, duration time.Duration, err error) {
	m.processInFlight.Dec()

	status := "success"
	if err != nil {
		status = "error"
	}

	m.processTotal.WithLabelValues(service, string(category), status).Inc()
	m.processDuration.WithLabelValues(service, status).Observe(duration.Seconds())
}

func (m *WorkerMetrics) ObserveRecognitionAttempts(service string, attempts int) {
	m.recognitionAttempts.WithLabelValues(service).Observe(float64(attempts))
}

func (m *WorkerMetrics) ObserveQueueLag(service string, lag time.Duration) {
	if lag < 0 {
		return
	}
	m.queueLag.WithLabelValues(service).Observe(lag.Seconds())
}
