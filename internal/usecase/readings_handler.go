package usecase

import (
	"context"
	"encoding/json"
	"time"

	"VibraPulse/internal/domain/models"
	domrepo "VibraPulse/internal/domain/repository"
	pkgkafka "VibraPulse/pkg/kafka"
	"VibraPulse/pkg/util"
)

// ReadingsHandler consumes raw sample batches from Kafka, persists them to
// the reading store, runs the velocity-unit pipeline on all three axes, and
// hands the result to the ResultProcessor.
type ReadingsHandler struct {
	topic    string
	store    domrepo.ReadingStore
	analyzer *Analyzer
	proc     *ResultProcessor
	sensors  domrepo.SensorRegistry
	metrics  domrepo.Metrics
}

func NewReadingsHandler(topic string, store domrepo.ReadingStore, analyzer *Analyzer, proc *ResultProcessor, sensors domrepo.SensorRegistry, metrics domrepo.Metrics) *ReadingsHandler {
	return &ReadingsHandler{topic: topic, store: store, analyzer: analyzer, proc: proc, sensors: sensors, metrics: metrics}
}

func (h *ReadingsHandler) Topic() string { return h.topic }

// incoming message schema: {sensor_id, t, rate, g_range, h, v, a}
// t accepts RFC3339 or unix seconds; rate/g_range fall back to the sensor
// registry, then to factory calibration.
func (h *ReadingsHandler) Handle(ctx context.Context, b []byte) error {
	var m struct {
		SensorID string  `json:"sensor_id"`
		T        string  `json:"t"`
		Rate     float64 `json:"rate"`
		GRange   int     `json:"g_range"`
		H        []int   `json:"h"`
		V        []int   `json:"v"`
		A        []int   `json:"a"`
	}
	if err := json.Unmarshal(b, &m); err != nil {
		h.metrics.RecordError("consumer_unmarshal")
		return err
	}

	ts := util.ParseTimeDefault(m.T, time.Now())
	// E2E latency from acquisition time to now (approx)
	h.metrics.RecordLatency("ingest_e2e_seconds", time.Since(ts).Seconds())

	rate, gRange := m.Rate, m.GRange
	if rate <= 0 || gRange <= 0 {
		cal := models.DefaultCalibration()
		if h.sensors != nil {
			if s, err := h.sensors.Get(ctx, m.SensorID); err == nil && s != nil {
				cal = models.CalibrationConfig{GRange: s.GRange, SampleRate: s.SampleRate}
			}
		}
		if rate <= 0 {
			rate = cal.SampleRate
		}
		if gRange <= 0 {
			gRange = cal.GRange
		}
	}

	batch := &models.SampleBatch{
		SensorID:   m.SensorID,
		Timestamp:  ts,
		SampleRate: rate,
		GRange:     gRange,
		H:          m.H,
		V:          m.V,
		A:          m.A,
	}
	if err := ValidateBatch(batch); err != nil {
		h.metrics.RecordError("consumer_invalid_batch")
		return err
	}

	start := time.Now()
	if err := h.store.StoreBatch(ctx, batch); err != nil {
		h.metrics.RecordError("consumer_store")
		return err
	}
	h.metrics.RecordLatency("ch_insert_seconds", time.Since(start).Seconds())

	warn, crit := h.analyzer.thresholdsFor(ctx, m.SensorID)
	res, err := h.analyzer.AnalyzeAllAxes(batch, domrepo.DefaultUnit(), warn, crit)
	if err != nil {
		h.metrics.RecordError("consumer_analyze")
		return err
	}
	return h.proc.Process(ctx, res)
}

var _ pkgkafka.MessageHandler = (*ReadingsHandler)(nil)
