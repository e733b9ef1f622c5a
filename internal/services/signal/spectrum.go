package signal

import (
	"fmt"
	"math"
	"math/cmplx"

	"VibraPulse/internal/domain/models"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// spectrumScale is the legacy magnitude scaling constant applied to every bin:
// mag[i] = spectrumScale / n * |X[i]|, with n the original (unpadded) length.
const spectrumScale = 2.56

// SpectrumOption configures ComputeSpectrum.
type SpectrumOption func(*spectrumConfig)

type spectrumConfig struct {
	nyquistTruncate bool
}

// WithNyquistTruncation truncates the retained bins strictly to paddedLength/2
// instead of the legacy convention of retaining the first len(series) bins.
// The legacy convention over-retains bins beyond the true Nyquist limit
// whenever zero padding occurred; existing integrations depend on that bin
// count, so the corrected behavior is opt-in.
func WithNyquistTruncation() SpectrumOption {
	return func(c *spectrumConfig) { c.nyquistTruncate = true }
}

// ComputeSpectrum transforms a real-valued time series into a one-sided
// magnitude spectrum. The input is zero-padded to the next power of two before
// the FFT; bin frequencies are i * sampleRate / n with n the original length.
//
// An empty series yields an empty spectrum (no transform attempted); a
// single-sample series yields one DC-only bin.
func ComputeSpectrum(series []float64, sampleRate float64, opts ...SpectrumOption) (models.Spectrum, error) {
	if sampleRate <= 0 {
		return models.Spectrum{}, fmt.Errorf("%w: sample rate %g", ErrInvalidInput, sampleRate)
	}

	n := len(series)
	if n == 0 {
		return models.Spectrum{}, nil
	}
	if n == 1 {
		return models.Spectrum{
			Frequencies: []float64{0},
			Magnitudes:  []float64{spectrumScale * math.Abs(series[0])},
		}, nil
	}

	var cfg spectrumConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	padded := nextPowerOfTwo(n)
	in := make([]complex128, padded)
	for i, v := range series {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, padded)

	plan, err := algofft.NewPlan64(padded)
	if err != nil {
		return models.Spectrum{}, fmt.Errorf("fft plan (%d): %w", padded, err)
	}
	if err := plan.Forward(out, in); err != nil {
		return models.Spectrum{}, fmt.Errorf("fft forward: %w", err)
	}

	retained := n
	if cfg.nyquistTruncate && padded/2 < retained {
		retained = padded / 2
	}

	scale := spectrumScale / float64(n)
	binHz := sampleRate / float64(n)
	freqs := make([]float64, retained)
	mags := make([]float64, retained)
	for i := 0; i < retained; i++ {
		freqs[i] = float64(i) * binHz
		mags[i] = scale * cmplx.Abs(out[i])
	}

	return models.Spectrum{Frequencies: freqs, Magnitudes: mags}, nil
}

// nextPowerOfTwo returns the smallest power of two >= n.
func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
