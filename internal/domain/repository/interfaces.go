package repository

import (
	"context"

	"VibraPulse/internal/domain/models"
)

// ReadingSource supplies the latest raw sample batch for a sensor. Acquisition
// is a black box to the engine; implementations are the ClickHouse reading
// store and the remote DAQ gateway client.
type ReadingSource interface {
	FetchBatch(ctx context.Context, sensorID string, n int) (*models.SampleBatch, error)
}

// ReadingStore persists and serves raw ADC samples.
type ReadingStore interface {
	ReadingSource
	Init(ctx context.Context) error // ensure tables, health checks
	StoreBatch(ctx context.Context, batch *models.SampleBatch) error
	Health(ctx context.Context) error // ping
	Close() error
}

// SensorRegistry owns sensor configuration records.
type SensorRegistry interface {
	Get(ctx context.Context, id string) (*models.Sensor, error)
	List(ctx context.Context) ([]*models.Sensor, error)
	Put(ctx context.Context, s *models.Sensor) error
	Delete(ctx context.Context, id string) error
}

// ResultPublisher hands computed analyses to downstream consumers.
type ResultPublisher interface {
	Publish(ctx context.Context, res *models.BatchAnalysis) error
	Close() error
}

// Metrics records operational metrics for the analysis pipeline.
type Metrics interface {
	RecordBatchAnalyzed(source, sensorID string)
	RecordError(kind string)
	RecordRMS(sensorID, axis string, rms float64)
	RecordSeverity(sensorID string, level models.Severity)
	RecordLatency(op string, seconds float64)
}
