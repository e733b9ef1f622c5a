package signal

import (
	"testing"

	"VibraPulse/internal/domain/models"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		value, warn, crit float64
		want              models.Severity
	}{
		{1.0, 5.0, 8.0, models.SeverityNormal},
		{5.0, 5.0, 8.0, models.SeverityNormal}, // boundary is exclusive
		{6.0, 5.0, 8.0, models.SeverityWarning},
		{8.0, 5.0, 8.0, models.SeverityWarning},
		{9.0, 5.0, 8.0, models.SeverityCritical},
		{0.0, 0.0, 0.0, models.SeverityNormal},
	}
	for _, c := range cases {
		if got := Classify(c.value, c.warn, c.crit); got != c.want {
			t.Fatalf("Classify(%v, %v, %v): expected %s, got %s", c.value, c.warn, c.crit, c.want, got)
		}
	}
}

func TestClassifyZeroSeriesAlwaysNormal(t *testing.T) {
	stats := ExtractStatistics(make([]float64, 8))
	for _, warn := range []float64{0, 1, 100} {
		if got := Classify(stats.RMS, warn, warn*2); got != models.SeverityNormal {
			t.Fatalf("zero statistics must classify Normal at warn=%v, got %s", warn, got)
		}
	}
}

func TestClassifyDisplayBands(t *testing.T) {
	if got := ClassifyDisplay(4.0); got != models.SeverityNormal {
		t.Fatalf("4.0 mm/s must display Normal, got %s", got)
	}
	if got := ClassifyDisplay(5.0); got != models.SeverityWarning {
		t.Fatalf("5.0 mm/s must display Warning, got %s", got)
	}
	if got := ClassifyDisplay(8.0); got != models.SeverityCritical {
		t.Fatalf("8.0 mm/s must display Critical, got %s", got)
	}
}
