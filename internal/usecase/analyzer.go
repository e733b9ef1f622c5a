package usecase

import (
	"context"
	"fmt"

	"VibraPulse/internal/domain/models"
	domrepo "VibraPulse/internal/domain/repository"
	"VibraPulse/internal/services/signal"
)

// AnalyzerConfig carries the tunables of the analysis pipeline. Warn/crit act
// as fallback alarm thresholds for sensors without configured limits.
type AnalyzerConfig struct {
	TopPeaks        int
	NyquistTruncate bool
	WarnThreshold   float64
	CritThreshold   float64
	DefaultSamples  int
}

// Analyzer orchestrates the full pipeline: raw batch (from a reading source or
// supplied inline) → calibration → unit series → spectrum → statistics →
// severity. It holds no per-call state and is safe for concurrent use.
type Analyzer struct {
	source  domrepo.ReadingSource
	sensors domrepo.SensorRegistry
	metrics domrepo.Metrics
	cfg     AnalyzerConfig
}

func NewAnalyzer(source domrepo.ReadingSource, sensors domrepo.SensorRegistry, metrics domrepo.Metrics, cfg AnalyzerConfig) *Analyzer {
	if cfg.TopPeaks <= 0 {
		cfg.TopPeaks = 5
	}
	if cfg.DefaultSamples <= 0 {
		cfg.DefaultSamples = 256
	}
	return &Analyzer{source: source, sensors: sensors, metrics: metrics, cfg: cfg}
}

// Config returns the effective pipeline configuration.
func (a *Analyzer) Config() AnalyzerConfig { return a.cfg }

// ValidateBatch enforces the batch contract: three equal-length non-empty axis
// sequences and a positive sampling rate. Violations fail fast with
// signal.ErrInvalidInput instead of silently truncating.
func ValidateBatch(b *models.SampleBatch) error {
	if b == nil {
		return fmt.Errorf("%w: nil batch", signal.ErrInvalidInput)
	}
	n := len(b.H)
	if n == 0 {
		return fmt.Errorf("%w: empty batch", signal.ErrInvalidInput)
	}
	if len(b.V) != n || len(b.A) != n {
		return fmt.Errorf("%w: axis lengths h=%d v=%d a=%d", signal.ErrInvalidInput, n, len(b.V), len(b.A))
	}
	if b.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %g", signal.ErrInvalidInput, b.SampleRate)
	}
	return nil
}

// AnalyzeBatch runs the pipeline on one axis of an in-memory batch. warn/crit
// are the alarm thresholds for severity classification; zero values fall back
// to the configured defaults.
func (a *Analyzer) AnalyzeBatch(batch *models.SampleBatch, axis domrepo.Axis, unit domrepo.Unit, warn, crit float64) (*models.AxisAnalysis, error) {
	if err := ValidateBatch(batch); err != nil {
		return nil, err
	}
	if warn <= 0 {
		warn = a.cfg.WarnThreshold
	}
	if crit <= 0 {
		crit = a.cfg.CritThreshold
	}

	series := a.seriesForUnit(axisSamples(batch, axis), batch.GRange, batch.SampleRate, unit)

	var opts []signal.SpectrumOption
	if a.cfg.NyquistTruncate {
		opts = append(opts, signal.WithNyquistTruncation())
	}
	spectrum, err := signal.ComputeSpectrum(series, batch.SampleRate, opts...)
	if err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}

	stats := signal.ExtractStatistics(series)
	res := &models.AxisAnalysis{
		SensorID:          batch.SensorID,
		Axis:              string(axis),
		Unit:              string(unit),
		Timestamp:         batch.Timestamp,
		SampleRate:        batch.SampleRate,
		Series:            series,
		Spectrum:          spectrum,
		Stats:             stats,
		Peaks:             signal.TopPeaks(spectrum, a.cfg.TopPeaks),
		DominantFrequency: signal.DominantFrequency(spectrum),
		Severity:          signal.Classify(stats.RMS, warn, crit),
	}
	return res, nil
}

// AnalyzeAllAxes runs the pipeline on every axis of the batch in the given
// unit and bundles the results with the tri-axial RMS and the worst per-axis
// severity.
func (a *Analyzer) AnalyzeAllAxes(batch *models.SampleBatch, unit domrepo.Unit, warn, crit float64) (*models.BatchAnalysis, error) {
	if err := ValidateBatch(batch); err != nil {
		return nil, err
	}
	out := &models.BatchAnalysis{
		SensorID:  batch.SensorID,
		Timestamp: batch.Timestamp,
		Unit:      string(unit),
		Overall:   models.SeverityNormal,
	}
	rms := make([]float64, 0, 3)
	for _, axis := range []domrepo.Axis{domrepo.AxisH, domrepo.AxisV, domrepo.AxisA} {
		res, err := a.AnalyzeBatch(batch, axis, unit, warn, crit)
		if err != nil {
			return nil, err
		}
		out.Axes = append(out.Axes, *res)
		out.Overall = worseSeverity(out.Overall, res.Severity)
		rms = append(rms, res.Stats.RMS)
	}
	out.TriaxialRMS = signal.TriaxialRMS(rms[0], rms[1], rms[2])
	return out, nil
}

// LatestAnalysis pulls the most recent n raw samples for the sensor from the
// reading source, resolves alarm thresholds from the sensor registry, and
// runs the pipeline for the requested axis and unit.
func (a *Analyzer) LatestAnalysis(ctx context.Context, sensorID string, axis domrepo.Axis, unit domrepo.Unit, n int) (*models.AxisAnalysis, error) {
	if n <= 0 {
		n = a.cfg.DefaultSamples
	}
	batch, err := a.source.FetchBatch(ctx, sensorID, n)
	if err != nil {
		a.metrics.RecordError("fetch_batch")
		return nil, fmt.Errorf("fetch batch: %w", err)
	}

	warn, crit := a.thresholdsFor(ctx, sensorID)
	res, err := a.AnalyzeBatch(batch, axis, unit, warn, crit)
	if err != nil {
		return nil, err
	}
	a.metrics.RecordBatchAnalyzed("store", sensorID)
	a.metrics.RecordRMS(sensorID, string(axis), res.Stats.RMS)
	a.metrics.RecordSeverity(sensorID, res.Severity)
	return res, nil
}

// LatestBatchAnalysis is the all-axes variant of LatestAnalysis, used by the
// async job worker and the Kafka publish path.
func (a *Analyzer) LatestBatchAnalysis(ctx context.Context, sensorID string, unit domrepo.Unit, n int) (*models.BatchAnalysis, error) {
	if n <= 0 {
		n = a.cfg.DefaultSamples
	}
	batch, err := a.source.FetchBatch(ctx, sensorID, n)
	if err != nil {
		a.metrics.RecordError("fetch_batch")
		return nil, fmt.Errorf("fetch batch: %w", err)
	}
	warn, crit := a.thresholdsFor(ctx, sensorID)
	return a.AnalyzeAllAxes(batch, unit, warn, crit)
}

func (a *Analyzer) thresholdsFor(ctx context.Context, sensorID string) (warn, crit float64) {
	warn, crit = a.cfg.WarnThreshold, a.cfg.CritThreshold
	if a.sensors == nil {
		return warn, crit
	}
	s, err := a.sensors.Get(ctx, sensorID)
	if err != nil || s == nil {
		return warn, crit
	}
	if s.WarnThreshold > 0 {
		warn = s.WarnThreshold
	}
	if s.CritThreshold > 0 {
		crit = s.CritThreshold
	}
	return warn, crit
}

// seriesForUnit converts raw ADC samples into the series for the requested
// unit: calibrated g, scaled mm/s², or trapezoid-integrated velocity mm/s.
func (a *Analyzer) seriesForUnit(raw []int, gRange int, rate float64, unit domrepo.Unit) []float64 {
	g := signal.CalibrateG(raw, gRange)
	switch unit {
	case domrepo.UnitAccelerationG:
		return g
	case domrepo.UnitAccelerationMmPerS:
		return signal.ScaleToMmPerS2(g)
	default:
		return signal.IntegrateVelocity(signal.ScaleToMmPerS2(g), 1/rate)
	}
}

func axisSamples(b *models.SampleBatch, axis domrepo.Axis) []int {
	switch axis {
	case domrepo.AxisV:
		return b.V
	case domrepo.AxisA:
		return b.A
	default:
		return b.H
	}
}

var severityRank = map[models.Severity]int{
	models.SeverityNormal:   0,
	models.SeverityWarning:  1,
	models.SeverityCritical: 2,
}

func worseSeverity(a, b models.Severity) models.Severity {
	if severityRank[b] > severityRank[a] {
		return b
	}
	return a
}
