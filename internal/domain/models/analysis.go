package models

import "time"

// Spectrum is a one-sided magnitude spectrum. Frequencies are strictly
// increasing starting at 0 (DC); the DC bin is kept in the raw spectrum but
// excluded from peak search.
type Spectrum struct {
	Frequencies []float64 `json:"frequencies"` // Hz
	Magnitudes  []float64 `json:"magnitudes"`
}

// Len returns the number of retained bins.
func (s Spectrum) Len() int { return len(s.Magnitudes) }

// SpectralPeak is a ranked spectral line. RMS is the sinusoid-equivalent RMS
// derived from the bin magnitude.
type SpectralPeak struct {
	Frequency float64 `json:"frequency"` // Hz
	Magnitude float64 `json:"magnitude"`
	RMS       float64 `json:"rms"`
}

// VibrationStatistics holds time-domain summary statistics for one axis in the
// requested unit. All values are non-negative.
type VibrationStatistics struct {
	RMS        float64 `json:"rms"`
	Peak       float64 `json:"peak"`
	PeakToPeak float64 `json:"peak_to_peak"`
}

// Severity is the discrete machine-health classification.
type Severity string

const (
	SeverityNormal   Severity = "normal"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// AxisAnalysis is the full computed result for one axis and unit selection:
// the processed time series (for charting), the spectrum, summary statistics,
// the ranked peak list, and the classified severity.
type AxisAnalysis struct {
	SensorID          string              `json:"sensor_id"`
	Axis              string              `json:"axis"`
	Unit              string              `json:"unit"`
	Timestamp         time.Time           `json:"timestamp"`
	SampleRate        float64             `json:"sample_rate"`
	Series            []float64           `json:"series"`
	Spectrum          Spectrum            `json:"spectrum"`
	Stats             VibrationStatistics `json:"stats"`
	Peaks             []SpectralPeak      `json:"peaks"`
	DominantFrequency float64             `json:"dominant_frequency"`
	Severity          Severity            `json:"severity"`
}

// BatchAnalysis bundles the per-axis results computed from a single raw batch,
// as published to downstream alerting consumers.
type BatchAnalysis struct {
	SensorID  string         `json:"sensor_id"`
	Timestamp time.Time      `json:"timestamp"`
	Unit      string         `json:"unit"`
	Axes      []AxisAnalysis `json:"axes"`
	// TriaxialRMS combines the per-axis RMS values: sqrt((h²+v²+a²)/3).
	TriaxialRMS float64  `json:"triaxial_rms"`
	Overall     Severity `json:"overall"`
}
