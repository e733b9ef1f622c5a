package models

// Requests for analysis HTTP endpoints. Defined in domain for consistency and reuse.

// AnalyzeRequest carries an inline raw batch for ad-hoc analysis.
type AnalyzeRequest struct {
	SensorID   string  `json:"sensor_id" validate:"required"`
	SampleRate float64 `json:"sample_rate" default:"50" validate:"gt=0"`
	GRange     int     `json:"g_range" default:"2" validate:"oneof=2 4 8 16"`
	Axis       string  `json:"axis" default:"H" validate:"oneof=H V A"`
	Unit       string  `json:"unit" default:"velocity_mm_s" validate:"oneof=accel_g accel_mm_s2 velocity_mm_s"`
	H          []int   `json:"h" validate:"required,min=1"`
	V          []int   `json:"v" validate:"required,min=1"`
	A          []int   `json:"a" validate:"required,min=1"`
	// Optional alarm threshold overrides; 0 falls back to sensor/config values.
	WarnThreshold float64 `json:"warn_threshold" validate:"gte=0"`
	CritThreshold float64 `json:"crit_threshold" validate:"gte=0"`
}

// SensorAnalysisRequest selects the latest-N analysis for a registered sensor.
type SensorAnalysisRequest struct {
	ID   string `param:"id" json:"id" validate:"required"`
	Axis string `query:"axis" json:"axis" default:"H" validate:"oneof=H V A"`
	Unit string `query:"unit" json:"unit" default:"velocity_mm_s" validate:"oneof=accel_g accel_mm_s2 velocity_mm_s"`
	N    int    `query:"n" json:"n" default:"256" validate:"gte=1,lte=8192"`
}

// AnalysisJobRequest enqueues an asynchronous re-analysis.
type AnalysisJobRequest struct {
	SensorID string `json:"sensor_id" validate:"required"`
	Unit     string `json:"unit" default:"velocity_mm_s" validate:"oneof=accel_g accel_mm_s2 velocity_mm_s"`
	Samples  int    `json:"samples" default:"256" validate:"gte=1,lte=8192"`
}

// SensorUpsertRequest creates or updates a sensor configuration record.
type SensorUpsertRequest struct {
	ID            string  `param:"id" json:"id" validate:"required"`
	Name          string  `json:"name" validate:"required"`
	Location      string  `json:"location"`
	GRange        int     `json:"g_range" default:"2" validate:"oneof=2 4 8 16"`
	SampleRate    float64 `json:"sample_rate" default:"50" validate:"gt=0"`
	WarnThreshold float64 `json:"warn_threshold" validate:"gte=0"`
	CritThreshold float64 `json:"crit_threshold" validate:"gte=0"`
}
