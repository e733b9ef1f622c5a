package usecase

import (
	"context"
	"fmt"
	"time"

	"VibraPulse/internal/domain/models"
	drepo "VibraPulse/internal/domain/repository"
)

// ResultProcessor routes computed batch analyses to downstream consumers and
// keeps the severity/latency metrics current.
type ResultProcessor struct {
	pub     drepo.ResultPublisher
	metrics drepo.Metrics
}

func NewResultProcessor(pub drepo.ResultPublisher, metrics drepo.Metrics) *ResultProcessor {
	return &ResultProcessor{pub: pub, metrics: metrics}
}

// Process publishes a single analysis result.
func (p *ResultProcessor) Process(ctx context.Context, res *models.BatchAnalysis) error {
	if res == nil {
		return fmt.Errorf("result is nil")
	}

	start := time.Now()
	if err := p.pub.Publish(ctx, res); err != nil {
		p.metrics.RecordError("publish_result")
		return fmt.Errorf("publish result: %w", err)
	}

	p.metrics.RecordBatchAnalyzed("kafka", res.SensorID)
	p.metrics.RecordSeverity(res.SensorID, res.Overall)
	for _, ax := range res.Axes {
		p.metrics.RecordRMS(res.SensorID, ax.Axis, ax.Stats.RMS)
	}
	p.metrics.RecordLatency("publish_result", time.Since(start).Seconds())
	return nil
}

// Close releases the underlying publisher.
func (p *ResultProcessor) Close() error {
	if p.pub != nil {
		return p.pub.Close()
	}
	return nil
}
