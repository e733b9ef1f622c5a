package signal

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestToAccelerationGZeroOffset(t *testing.T) {
	for _, r := range []int{2, 4, 8, 16, 99} {
		if g := ToAccelerationG(512, r); g != 0 {
			t.Fatalf("range %d: expected 0 g at ADC 512, got %v", r, g)
		}
	}
}

func TestToAccelerationGKnownValue(t *testing.T) {
	g := ToAccelerationG(612, 2)
	if !almostEqual(g, 0.00576, 1e-5) {
		t.Fatalf("expected ~0.00576 g, got %v", g)
	}
	if gn := ToAccelerationG(412, 2); !almostEqual(gn, -g, 1e-12) {
		t.Fatalf("expected symmetric negative value, got %v", gn)
	}
}

func TestToAccelerationGLinearMonotonic(t *testing.T) {
	prev := ToAccelerationG(0, 2)
	for adc := 1; adc <= 1023; adc++ {
		cur := ToAccelerationG(adc, 2)
		if cur <= prev {
			t.Fatalf("not strictly increasing at ADC %d", adc)
		}
		step := cur - prev
		if !almostEqual(step, 1.0/17367.0, 1e-12) {
			t.Fatalf("non-linear step %v at ADC %d", step, adc)
		}
		prev = cur
	}
}

func TestSensitivityFallback(t *testing.T) {
	if s := Sensitivity(3); s != Sensitivity(2) {
		t.Fatalf("unknown range must fall back to 2 g sensitivity, got %v", s)
	}
	want := map[int]float64{2: 17367, 4: 8684, 8: 4342, 16: 2171}
	for r, s := range want {
		if Sensitivity(r) != s {
			t.Fatalf("range %d: expected %v, got %v", r, s, Sensitivity(r))
		}
	}
}

func TestToAccelMmPerS2(t *testing.T) {
	if v := ToAccelMmPerS2(1); v != 9806.65 {
		t.Fatalf("1 g must be 9806.65 mm/s², got %v", v)
	}
	if v := ToAccelMmPerS2(0); v != 0 {
		t.Fatalf("0 g must be 0 mm/s², got %v", v)
	}
}

func TestCalibrateGSeries(t *testing.T) {
	got := CalibrateG([]int{512, 612, 512, 412, 512}, 2)
	want := []float64{0, 0.00576, 0, -0.00576, 0}
	if len(got) != len(want) {
		t.Fatalf("length mismatch: %d vs %d", len(got), len(want))
	}
	for i := range want {
		if !almostEqual(got[i], want[i], 1e-5) {
			t.Fatalf("index %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestScaleToMmPerS2(t *testing.T) {
	got := ScaleToMmPerS2([]float64{0, 1, -0.5})
	want := []float64{0, 9806.65, -4903.325}
	for i := range want {
		if !almostEqual(got[i], want[i], 1e-9) {
			t.Fatalf("index %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}
