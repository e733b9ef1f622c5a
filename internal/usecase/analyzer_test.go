package usecase

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"VibraPulse/internal/domain/models"
	domrepo "VibraPulse/internal/domain/repository"
	"VibraPulse/internal/services/signal"
)

type fakeSource struct {
	batch *models.SampleBatch
	err   error
}

func (f *fakeSource) FetchBatch(_ context.Context, _ string, _ int) (*models.SampleBatch, error) {
	return f.batch, f.err
}

type fakeRegistry struct {
	sensor *models.Sensor
}

func (f *fakeRegistry) Get(context.Context, string) (*models.Sensor, error) { return f.sensor, nil }
func (f *fakeRegistry) List(context.Context) ([]*models.Sensor, error)      { return nil, nil }
func (f *fakeRegistry) Put(context.Context, *models.Sensor) error           { return nil }
func (f *fakeRegistry) Delete(context.Context, string) error                { return nil }

type nopMetrics struct{}

func (nopMetrics) RecordBatchAnalyzed(string, string)      {}
func (nopMetrics) RecordError(string)                      {}
func (nopMetrics) RecordRMS(string, string, float64)       {}
func (nopMetrics) RecordSeverity(string, models.Severity)  {}
func (nopMetrics) RecordLatency(string, float64)           {}

func testBatch() *models.SampleBatch {
	return &models.SampleBatch{
		SensorID:   "pump-7",
		Timestamp:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		SampleRate: 50,
		GRange:     2,
		H:          []int{512, 612, 512, 412, 512},
		V:          []int{512, 512, 512, 512, 512},
		A:          []int{512, 520, 512, 504, 512},
	}
}

func newTestAnalyzer(src domrepo.ReadingSource, reg domrepo.SensorRegistry) *Analyzer {
	return NewAnalyzer(src, reg, nopMetrics{}, AnalyzerConfig{
		TopPeaks:      5,
		WarnThreshold: 5,
		CritThreshold: 8,
	})
}

func TestValidateBatchContract(t *testing.T) {
	a := newTestAnalyzer(nil, nil)

	bad := testBatch()
	bad.V = bad.V[:3]
	if _, err := a.AnalyzeBatch(bad, domrepo.AxisH, domrepo.UnitAccelerationG, 0, 0); !errors.Is(err, signal.ErrInvalidInput) {
		t.Fatalf("unequal axis lengths must fail with ErrInvalidInput, got %v", err)
	}

	bad = testBatch()
	bad.SampleRate = 0
	if _, err := a.AnalyzeBatch(bad, domrepo.AxisH, domrepo.UnitAccelerationG, 0, 0); !errors.Is(err, signal.ErrInvalidInput) {
		t.Fatalf("zero sample rate must fail with ErrInvalidInput, got %v", err)
	}

	bad = &models.SampleBatch{SampleRate: 50}
	if err := ValidateBatch(bad); !errors.Is(err, signal.ErrInvalidInput) {
		t.Fatalf("empty batch must fail with ErrInvalidInput, got %v", err)
	}
}

func TestAnalyzeBatchAccelerationG(t *testing.T) {
	a := newTestAnalyzer(nil, nil)
	res, err := a.AnalyzeBatch(testBatch(), domrepo.AxisH, domrepo.UnitAccelerationG, 5, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantSeries := []float64{0, 0.00576, 0, -0.00576, 0}
	if len(res.Series) != len(wantSeries) {
		t.Fatalf("series length %d, expected %d", len(res.Series), len(wantSeries))
	}
	for i := range wantSeries {
		if math.Abs(res.Series[i]-wantSeries[i]) > 1e-5 {
			t.Fatalf("series[%d]: expected %v, got %v", i, wantSeries[i], res.Series[i])
		}
	}
	if math.Abs(res.Stats.RMS-0.00364) > 1e-5 {
		t.Fatalf("expected RMS ~0.00364, got %v", res.Stats.RMS)
	}
	if res.Severity != models.SeverityNormal {
		t.Fatalf("expected Normal severity, got %s", res.Severity)
	}
	// 5 samples pad to 8 but retain the original count.
	if res.Spectrum.Len() != 5 {
		t.Fatalf("expected 5 spectrum bins, got %d", res.Spectrum.Len())
	}
	if want := min(5, res.Spectrum.Len()-1); len(res.Peaks) != want {
		t.Fatalf("expected %d peaks, got %d", want, len(res.Peaks))
	}
}

func TestAnalyzeBatchVelocityReference(t *testing.T) {
	a := newTestAnalyzer(nil, nil)
	res, err := a.AnalyzeBatch(testBatch(), domrepo.AxisH, domrepo.UnitVelocityMmPerS, 5, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Series[0] != 0 {
		t.Fatalf("velocity series must start at the 0 reference, got %v", res.Series[0])
	}
	if len(res.Series) != 5 {
		t.Fatalf("velocity series must keep the input length, got %d", len(res.Series))
	}
}

func TestAnalyzeBatchIdempotent(t *testing.T) {
	a := newTestAnalyzer(nil, nil)
	first, err := a.AnalyzeBatch(testBatch(), domrepo.AxisH, domrepo.UnitVelocityMmPerS, 5, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := a.AnalyzeBatch(testBatch(), domrepo.AxisH, domrepo.UnitVelocityMmPerS, 5, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs must yield identical results")
	}
}

func TestAnalyzeAllAxes(t *testing.T) {
	a := newTestAnalyzer(nil, nil)
	res, err := a.AnalyzeAllAxes(testBatch(), domrepo.UnitAccelerationG, 5, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Axes) != 3 {
		t.Fatalf("expected 3 axis results, got %d", len(res.Axes))
	}
	h, v, ax := res.Axes[0].Stats.RMS, res.Axes[1].Stats.RMS, res.Axes[2].Stats.RMS
	want := signal.TriaxialRMS(h, v, ax)
	if math.Abs(res.TriaxialRMS-want) > 1e-12 {
		t.Fatalf("expected triaxial RMS %v, got %v", want, res.TriaxialRMS)
	}
	if res.Overall != models.SeverityNormal {
		t.Fatalf("expected overall Normal, got %s", res.Overall)
	}
}

func TestLatestAnalysisUsesSensorThresholds(t *testing.T) {
	// Velocity RMS for this batch lands well above 0.001, so thresholds from
	// the registry flip the classification to Critical.
	src := &fakeSource{batch: testBatch()}
	reg := &fakeRegistry{sensor: &models.Sensor{
		ID:            "pump-7",
		WarnThreshold: 0.0001,
		CritThreshold: 0.0002,
	}}
	a := newTestAnalyzer(src, reg)

	res, err := a.LatestAnalysis(context.Background(), "pump-7", domrepo.AxisH, domrepo.UnitVelocityMmPerS, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Severity != models.SeverityCritical {
		t.Fatalf("expected Critical with registry thresholds, got %s", res.Severity)
	}
}

func TestLatestAnalysisSourceError(t *testing.T) {
	src := &fakeSource{err: errors.New("clickhouse down")}
	a := newTestAnalyzer(src, nil)
	if _, err := a.LatestAnalysis(context.Background(), "pump-7", domrepo.AxisH, domrepo.UnitVelocityMmPerS, 0); err == nil {
		t.Fatalf("expected fetch error to propagate")
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
