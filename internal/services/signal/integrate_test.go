package signal

import "testing"

func TestIntegrateVelocityDegenerate(t *testing.T) {
	for _, in := range [][]float64{nil, {}, {3.5}} {
		got := IntegrateVelocity(in, 0.02)
		if len(got) != 1 || got[0] != 0 {
			t.Fatalf("input %v: expected [0], got %v", in, got)
		}
	}
}

func TestIntegrateVelocityReferenceZero(t *testing.T) {
	got := IntegrateVelocity([]float64{1, 2, 3, 4}, 0.1)
	if got[0] != 0 {
		t.Fatalf("first sample must be the 0 reference, got %v", got[0])
	}
	if len(got) != 4 {
		t.Fatalf("output length must equal input length, got %d", len(got))
	}
}

func TestIntegrateVelocityConstantAcceleration(t *testing.T) {
	// Constant acceleration a integrates to v[i] = a*dt*i exactly under the
	// trapezoidal rule.
	const a, dt = 9806.65, 0.02
	in := []float64{a, a, a, a, a}
	got := IntegrateVelocity(in, dt)
	for i := range got {
		want := a * dt * float64(i)
		if !almostEqual(got[i], want, 1e-9) {
			t.Fatalf("index %d: expected %v, got %v", i, want, got[i])
		}
	}
}

func TestIntegrateVelocityTrapezoid(t *testing.T) {
	got := IntegrateVelocity([]float64{0, 2, 4}, 0.5)
	// increments: 0.5*0.5*(0+2)=0.5 then 0.5*0.5*(2+4)=1.5 cumulative.
	want := []float64{0, 0.5, 2.0}
	for i := range want {
		if !almostEqual(got[i], want[i], 1e-12) {
			t.Fatalf("index %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}
