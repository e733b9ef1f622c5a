package signal

import (
	"math"
	"sort"

	"VibraPulse/internal/domain/models"
)

// sinusoidRMSFactor relates the RMS of a pure sinusoid to its peak (1/√2,
// kept at the legacy 3-digit value for result compatibility).
const sinusoidRMSFactor = 0.707

// peakRMSDecimals is the fixed precision applied to per-peak RMS values.
const peakRMSDecimals = 4

// RMS returns sqrt(mean(x²)) over the series, or 0 for an empty series.
func RMS(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x * x
	}
	return math.Sqrt(sum / float64(len(xs)))
}

// TriaxialRMS combines per-axis RMS values into a single tri-axial figure:
// sqrt((h² + v² + a²) / 3).
func TriaxialRMS(h, v, a float64) float64 {
	return math.Sqrt((h*h + v*v + a*a) / 3)
}

// EstimatedPeakFromRMS approximates a sinusoidal peak amplitude from an RMS
// value (rms / 0.707). This is deliberately distinct from TrueAbsolutePeak;
// single-axis statistics are reported with this estimate.
func EstimatedPeakFromRMS(rms float64) float64 {
	return rms / sinusoidRMSFactor
}

// TrueAbsolutePeak returns max(|x|) over the series, or 0 for an empty series.
func TrueAbsolutePeak(xs []float64) float64 {
	peak := 0.0
	for _, x := range xs {
		if a := math.Abs(x); a > peak {
			peak = a
		}
	}
	return peak
}

// ExtractStatistics computes the summary statistics for one axis time series.
// Peak is the RMS-derived estimate and peak-to-peak is twice that. An empty
// series yields all zeros.
func ExtractStatistics(series []float64) models.VibrationStatistics {
	rms := RMS(series)
	if rms == 0 {
		return models.VibrationStatistics{}
	}
	peak := EstimatedPeakFromRMS(rms)
	return models.VibrationStatistics{
		RMS:        rms,
		Peak:       peak,
		PeakToPeak: 2 * peak,
	}
}

// TopPeaks ranks the non-DC spectrum bins by descending magnitude and returns
// at most n of them. Ties in magnitude keep the original bin order (stable
// sort), so results are deterministic. Each peak reports the bin frequency,
// magnitude and the sinusoid-equivalent RMS (magnitude * 0.707) rounded to a
// fixed precision.
func TopPeaks(sp models.Spectrum, n int) []models.SpectralPeak {
	bins := sp.Len()
	if bins <= 1 || n <= 0 {
		return []models.SpectralPeak{}
	}

	// Candidate bin indexes, DC excluded.
	idx := make([]int, bins-1)
	for i := range idx {
		idx[i] = i + 1
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return sp.Magnitudes[idx[a]] > sp.Magnitudes[idx[b]]
	})

	if n > len(idx) {
		n = len(idx)
	}
	peaks := make([]models.SpectralPeak, 0, n)
	for _, i := range idx[:n] {
		peaks = append(peaks, models.SpectralPeak{
			Frequency: sp.Frequencies[i],
			Magnitude: sp.Magnitudes[i],
			RMS:       roundTo(sp.Magnitudes[i]*sinusoidRMSFactor, peakRMSDecimals),
		})
	}
	return peaks
}

// DominantFrequency returns the frequency of the highest-magnitude non-DC bin,
// or 0 when the spectrum has no non-DC bins. Ties resolve to the lowest bin.
func DominantFrequency(sp models.Spectrum) float64 {
	if sp.Len() <= 1 {
		return 0
	}
	best := 1
	for i := 2; i < sp.Len(); i++ {
		if sp.Magnitudes[i] > sp.Magnitudes[best] {
			best = i
		}
	}
	return sp.Frequencies[best]
}

func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
