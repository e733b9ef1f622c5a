package models

import "time"

// Sensor is the configuration record for one vibration sensor, owned by the
// sensor registry. Thresholds are in the unit the sensor is assessed in
// (velocity mm/s unless stated otherwise).
type Sensor struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Location      string    `json:"location,omitempty"`
	GRange        int       `json:"g_range"`
	SampleRate    float64   `json:"sample_rate"`
	WarnThreshold float64   `json:"warn_threshold"`
	CritThreshold float64   `json:"crit_threshold"`
	UpdatedAt     time.Time `json:"updated_at"`
}
