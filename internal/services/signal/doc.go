// Package signal implements the vibration signal analysis engine: calibration
// of raw ADC samples into physical units, trapezoidal integration to velocity,
// FFT-based spectrum computation, time/frequency-domain statistics, and
// severity classification.
//
// Every function is a pure, re-entrant transformation over its inputs; all
// intermediate buffers are call-local and no package-level mutable state
// exists, so the engine is safe to call concurrently across axes or requests.
package signal
