package models

import "time"

// SampleBatch is one acquisition window of raw ADC readings, one ordered
// sequence per axis. Index 0 is the earliest sample.
type SampleBatch struct {
	SensorID   string    `json:"sensor_id"`
	Timestamp  time.Time `json:"timestamp"`
	SampleRate float64   `json:"sample_rate"` // Hz
	GRange     int       `json:"g_range"`     // accelerometer range: 2, 4, 8 or 16 g
	H          []int     `json:"h"`
	V          []int     `json:"v"`
	A          []int     `json:"a"`
}

// Len returns the per-axis sample count (axes are required to be equal length).
func (b *SampleBatch) Len() int { return len(b.H) }

// CalibrationConfig holds the immutable sensor calibration parameters used to
// convert raw ADC counts into physical units.
type CalibrationConfig struct {
	GRange     int     `json:"g_range" yaml:"g_range"`
	SampleRate float64 `json:"sample_rate" yaml:"sample_rate"` // Hz
}

// DefaultCalibration returns the factory calibration: 2 g range at 50 Hz.
func DefaultCalibration() CalibrationConfig {
	return CalibrationConfig{GRange: 2, SampleRate: 50.0}
}
