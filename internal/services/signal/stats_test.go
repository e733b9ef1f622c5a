package signal

import (
	"testing"

	"VibraPulse/internal/domain/models"
)

func TestRMSScenario(t *testing.T) {
	series := CalibrateG([]int{512, 612, 512, 412, 512}, 2)
	rms := RMS(series)
	if !almostEqual(rms, 0.00364, 1e-5) {
		t.Fatalf("expected RMS ~0.00364, got %v", rms)
	}
}

func TestRMSEmpty(t *testing.T) {
	if v := RMS(nil); v != 0 {
		t.Fatalf("empty series must have RMS 0, got %v", v)
	}
}

func TestTriaxialRMS(t *testing.T) {
	// Equal per-axis RMS collapses to that value.
	if v := TriaxialRMS(2, 2, 2); !almostEqual(v, 2, 1e-12) {
		t.Fatalf("expected 2, got %v", v)
	}
	if v := TriaxialRMS(3, 0, 0); !almostEqual(v, 3/1.7320508075688772, 1e-12) {
		t.Fatalf("unexpected triaxial RMS %v", v)
	}
}

func TestPeakConventions(t *testing.T) {
	series := []float64{0, 1, 0, -2, 0}
	rms := RMS(series)
	est := EstimatedPeakFromRMS(rms)
	if !almostEqual(est, rms/0.707, 1e-12) {
		t.Fatalf("estimated peak must be rms/0.707, got %v", est)
	}
	if tp := TrueAbsolutePeak(series); tp != 2 {
		t.Fatalf("true absolute peak must be 2, got %v", tp)
	}
	// The two conventions must stay distinct operations.
	if est == TrueAbsolutePeak(series) {
		t.Fatalf("conventions unexpectedly coincide for %v", series)
	}
}

func TestExtractStatisticsZeroSeries(t *testing.T) {
	stats := ExtractStatistics(make([]float64, 8))
	if stats.RMS != 0 || stats.Peak != 0 || stats.PeakToPeak != 0 {
		t.Fatalf("all-zero series must yield zero statistics, got %+v", stats)
	}
	if stats := ExtractStatistics(nil); stats != (models.VibrationStatistics{}) {
		t.Fatalf("empty series must yield zero statistics, got %+v", stats)
	}
}

func TestExtractStatisticsPeakToPeak(t *testing.T) {
	stats := ExtractStatistics([]float64{1, -1, 1, -1})
	if !almostEqual(stats.RMS, 1, 1e-12) {
		t.Fatalf("expected RMS 1, got %v", stats.RMS)
	}
	if !almostEqual(stats.Peak, 1/0.707, 1e-12) {
		t.Fatalf("expected peak %v, got %v", 1/0.707, stats.Peak)
	}
	if !almostEqual(stats.PeakToPeak, 2*stats.Peak, 1e-12) {
		t.Fatalf("peak-to-peak must be twice the peak, got %v", stats.PeakToPeak)
	}
}

func TestTopPeaksRankingAndLength(t *testing.T) {
	sp := models.Spectrum{
		Frequencies: []float64{0, 10, 20, 30, 40, 50, 60, 70},
		Magnitudes:  []float64{9, 1, 5, 3, 5, 2, 7, 0.5},
	}
	peaks := TopPeaks(sp, 5)
	if len(peaks) != 5 {
		t.Fatalf("expected 5 peaks, got %d", len(peaks))
	}
	// DC (magnitude 9) must never appear.
	for _, p := range peaks {
		if p.Frequency == 0 {
			t.Fatalf("DC bin leaked into peak list")
		}
	}
	for i := 1; i < len(peaks); i++ {
		if peaks[i].Magnitude > peaks[i-1].Magnitude {
			t.Fatalf("magnitudes must be non-increasing at rank %d", i)
		}
	}
	// Tie between bins 2 and 4 (both 5): stable order keeps the lower bin first.
	if peaks[1].Frequency != 20 || peaks[2].Frequency != 40 {
		t.Fatalf("tie-break must preserve bin order, got %v then %v", peaks[1].Frequency, peaks[2].Frequency)
	}
	if peaks[0].Frequency != 60 {
		t.Fatalf("highest peak must be 60 Hz, got %v", peaks[0].Frequency)
	}
}

func TestTopPeaksShortSpectrum(t *testing.T) {
	sp := models.Spectrum{
		Frequencies: []float64{0, 10, 20},
		Magnitudes:  []float64{4, 2, 3},
	}
	peaks := TopPeaks(sp, 5)
	if len(peaks) != 2 {
		t.Fatalf("expected min(5, bins-1)=2 peaks, got %d", len(peaks))
	}
}

func TestTopPeaksDegenerate(t *testing.T) {
	if n := len(TopPeaks(models.Spectrum{}, 5)); n != 0 {
		t.Fatalf("empty spectrum must yield no peaks, got %d", n)
	}
	dcOnly := models.Spectrum{Frequencies: []float64{0}, Magnitudes: []float64{3}}
	if n := len(TopPeaks(dcOnly, 5)); n != 0 {
		t.Fatalf("DC-only spectrum must yield no peaks, got %d", n)
	}
}

func TestTopPeaksRMSPrecision(t *testing.T) {
	sp := models.Spectrum{
		Frequencies: []float64{0, 10},
		Magnitudes:  []float64{0, 1.0 / 3},
	}
	peaks := TopPeaks(sp, 1)
	if len(peaks) != 1 {
		t.Fatalf("expected one peak, got %d", len(peaks))
	}
	if peaks[0].RMS != 0.2357 {
		t.Fatalf("expected peak RMS rounded to 4 decimals (0.2357), got %v", peaks[0].RMS)
	}
}

func TestDominantFrequencyDegenerate(t *testing.T) {
	if f := DominantFrequency(models.Spectrum{}); f != 0 {
		t.Fatalf("expected 0 for empty spectrum, got %v", f)
	}
	dcOnly := models.Spectrum{Frequencies: []float64{0}, Magnitudes: []float64{5}}
	if f := DominantFrequency(dcOnly); f != 0 {
		t.Fatalf("expected 0 for DC-only spectrum, got %v", f)
	}
}
