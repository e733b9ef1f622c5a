package signal

import "VibraPulse/internal/domain/models"

// Display-band trip points for card-level severity coloring, in velocity mm/s.
// These fixed constants serve presentation bucketing only; alarm
// classification always takes explicit caller-supplied thresholds.
const (
	MinThreshold = 4.5
	MaxThreshold = 7.1
)

// Classify compares a scalar statistic against two ascending thresholds:
// value > crit is Critical, value > warn is Warning, anything else is Normal.
// The classifier knows nothing about defaults; thresholds come from the
// caller (sensor alarm config or configured fallback).
func Classify(value, warn, crit float64) models.Severity {
	switch {
	case value > crit:
		return models.SeverityCritical
	case value > warn:
		return models.SeverityWarning
	default:
		return models.SeverityNormal
	}
}

// ClassifyDisplay buckets a value with the fixed display trip constants. Kept
// separate from Classify: call sites that color dashboard cards rely on the
// fixed bands regardless of per-sensor alarm settings.
func ClassifyDisplay(value float64) models.Severity {
	return Classify(value, MinThreshold, MaxThreshold)
}
