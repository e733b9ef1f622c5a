package signal

// IntegrateVelocity integrates an acceleration series into velocity using the
// cumulative trapezoidal rule. The first output sample is fixed at 0 and acts
// as the reference; each following sample adds 0.5*dt*(a[i-1]+a[i]) to the
// running total. The integral is deliberately not drift-corrected (no
// zero-mean adjustment), matching the established result convention.
//
// An input with fewer than two samples yields the single-element series [0].
func IntegrateVelocity(accel []float64, dt float64) []float64 {
	if len(accel) < 2 {
		return []float64{0}
	}
	out := make([]float64, len(accel))
	for i := 1; i < len(accel); i++ {
		out[i] = out[i-1] + 0.5*dt*(accel[i-1]+accel[i])
	}
	return out
}
