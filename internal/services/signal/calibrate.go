package signal

const (
	// adcZeroOffset is the ADC count that maps to 0 g (mid-rail of a 10-bit
	// converter).
	adcZeroOffset = 512

	// GravityMmPerS2 is standard gravity in mm/s².
	GravityMmPerS2 = 9806.65
)

// ADC counts per g for each selectable accelerometer range.
var sensitivities = map[int]float64{
	2:  17367,
	4:  8684,
	8:  4342,
	16: 2171,
}

// Sensitivity returns the counts-per-g constant for a G-range selector.
// Unknown ranges fall back to the 2 g sensitivity, so the conversion is total.
func Sensitivity(gRange int) float64 {
	if s, ok := sensitivities[gRange]; ok {
		return s
	}
	return sensitivities[2]
}

// ToAccelerationG converts a single raw ADC reading to acceleration in g.
func ToAccelerationG(adc int, gRange int) float64 {
	return float64(adc-adcZeroOffset) / Sensitivity(gRange)
}

// ToAccelMmPerS2 converts acceleration from g to mm/s².
func ToAccelMmPerS2(g float64) float64 {
	return g * GravityMmPerS2
}

// CalibrateG converts a raw ADC series to acceleration in g.
func CalibrateG(adc []int, gRange int) []float64 {
	sens := Sensitivity(gRange)
	out := make([]float64, len(adc))
	for i, v := range adc {
		out[i] = float64(v-adcZeroOffset) / sens
	}
	return out
}

// ScaleToMmPerS2 converts an acceleration series from g to mm/s².
func ScaleToMmPerS2(g []float64) []float64 {
	out := make([]float64, len(g))
	for i, v := range g {
		out[i] = v * GravityMmPerS2
	}
	return out
}
