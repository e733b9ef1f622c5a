package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"VibraPulse/internal/domain/models"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	batchesAnalyzed *prometheus.CounterVec
	errorsTotal     *prometheus.CounterVec
	axisRMS         *prometheus.GaugeVec
	severity        *prometheus.GaugeVec
	latency         *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		batchesAnalyzed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vibrapulse_batches_analyzed_total",
				Help: "Total number of sample batches run through the analysis pipeline",
			},
			[]string{"source", "sensor"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vibrapulse_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		axisRMS: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "vibrapulse_axis_rms",
				Help: "Last computed RMS per sensor axis",
			},
			[]string{"sensor", "axis"},
		),
		severity: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "vibrapulse_severity_level",
				Help: "Last classified severity per sensor (0=normal, 1=warning, 2=critical)",
			},
			[]string{"sensor"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vibrapulse_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordBatchAnalyzed records one analyzed batch per source.
func (r *Recorder) RecordBatchAnalyzed(source, sensorID string) {
	r.batchesAnalyzed.WithLabelValues(source, sensorID).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordRMS records the last computed RMS for a sensor axis.
func (r *Recorder) RecordRMS(sensorID, axis string, rms float64) {
	r.axisRMS.WithLabelValues(sensorID, axis).Set(rms)
}

// RecordSeverity records the last classified severity for a sensor.
func (r *Recorder) RecordSeverity(sensorID string, level models.Severity) {
	v := 0.0
	switch level {
	case models.SeverityWarning:
		v = 1
	case models.SeverityCritical:
		v = 2
	}
	r.severity.WithLabelValues(sensorID).Set(v)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
