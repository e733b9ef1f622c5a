package signal

import (
	"math"
	"testing"
)

func TestComputeSpectrumEmpty(t *testing.T) {
	sp, err := ComputeSpectrum(nil, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sp.Len() != 0 {
		t.Fatalf("empty series must yield empty spectrum, got %d bins", sp.Len())
	}
}

func TestComputeSpectrumSingleSample(t *testing.T) {
	sp, err := ComputeSpectrum([]float64{-1.5}, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sp.Len() != 1 {
		t.Fatalf("expected exactly one DC bin, got %d", sp.Len())
	}
	if sp.Frequencies[0] != 0 {
		t.Fatalf("single bin must be at DC, got %v Hz", sp.Frequencies[0])
	}
	if !almostEqual(sp.Magnitudes[0], 2.56*1.5, 1e-12) {
		t.Fatalf("expected scaled |x|, got %v", sp.Magnitudes[0])
	}
}

func TestComputeSpectrumInvalidRate(t *testing.T) {
	if _, err := ComputeSpectrum([]float64{1, 2}, 0); err == nil {
		t.Fatalf("expected error for non-positive sample rate")
	}
}

func TestComputeSpectrumRetainsOriginalLength(t *testing.T) {
	// Length 5 pads to 8; the legacy convention keeps the first 5 bins,
	// never the padded count.
	sp, err := ComputeSpectrum([]float64{0, 1, 0, -1, 0}, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sp.Len() != 5 {
		t.Fatalf("expected 5 retained bins, got %d", sp.Len())
	}
	for i := 1; i < sp.Len(); i++ {
		if sp.Frequencies[i] <= sp.Frequencies[i-1] {
			t.Fatalf("frequencies must be strictly increasing at bin %d", i)
		}
	}
}

func TestComputeSpectrumNyquistTruncation(t *testing.T) {
	sp, err := ComputeSpectrum([]float64{0, 1, 0, -1, 0}, 50, WithNyquistTruncation())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// padded length 8 → 4 bins up to Nyquist.
	if sp.Len() != 4 {
		t.Fatalf("expected 4 bins under Nyquist truncation, got %d", sp.Len())
	}
}

func TestComputeSpectrumSinusoid(t *testing.T) {
	// cos(2π·2i/8) concentrates in bin 2: |X[2]| = n/2 = 4, so the scaled
	// magnitude is 2.56/8 * 4 = 1.28 at 2 * 50/8 = 12.5 Hz.
	const n, rate = 8, 50.0
	series := make([]float64, n)
	for i := range series {
		series[i] = math.Cos(2 * math.Pi * 2 * float64(i) / n)
	}
	sp, err := ComputeSpectrum(series, rate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sp.Len() != n {
		t.Fatalf("expected %d bins, got %d", n, sp.Len())
	}
	if !almostEqual(sp.Magnitudes[2], 1.28, 1e-9) {
		t.Fatalf("expected bin 2 magnitude 1.28, got %v", sp.Magnitudes[2])
	}
	if !almostEqual(sp.Frequencies[2], 12.5, 1e-12) {
		t.Fatalf("expected bin 2 at 12.5 Hz, got %v", sp.Frequencies[2])
	}
	if got := DominantFrequency(sp); !almostEqual(got, 12.5, 1e-12) {
		t.Fatalf("expected dominant frequency 12.5 Hz, got %v", got)
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	cases := map[int]int{1: 1, 2: 2, 3: 4, 5: 8, 8: 8, 9: 16, 1000: 1024}
	for n, want := range cases {
		if got := nextPowerOfTwo(n); got != want {
			t.Fatalf("nextPowerOfTwo(%d): expected %d, got %d", n, want, got)
		}
	}
}

func TestComputeSpectrumIdempotent(t *testing.T) {
	series := []float64{0.1, -0.2, 0.3, 0.05, -0.4, 0.2}
	first, err := ComputeSpectrum(series, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ComputeSpectrum(series, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range first.Magnitudes {
		if first.Magnitudes[i] != second.Magnitudes[i] || first.Frequencies[i] != second.Frequencies[i] {
			t.Fatalf("bin %d differs between identical invocations", i)
		}
	}
}
