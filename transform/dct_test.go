package transform

import (
	"math"
	"math/rand"
	"testing"
)

func TestDCT_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{1, 2, 17, 64, 300} {
		x := make([]float64, n)
		for i := range x {
			x[i] = rng.NormFloat64()
		}
		back := DCTIII(DCTII(x))
		for i := range x {
			if math.Abs(back[i]-x[i]) > 1e-9 {
				t.Fatalf("n=%d: round-trip mismatch at %d: got %g, want %g", n, i, back[i], x[i])
			}
		}
	}
}

func TestDCTII_Parseval(t *testing.T) {
	// Orthonormal scaling must preserve total squared energy.
	rng := rand.New(rand.NewSource(9))
	x := make([]float64, 128)
	var timeEnergy float64
	for i := range x {
		x[i] = rng.NormFloat64()
		timeEnergy += x[i] * x[i]
	}
	var freqEnergy float64
	for _, c := range DCTII(x) {
		freqEnergy += c * c
	}
	if math.Abs(timeEnergy-freqEnergy) > 1e-9*timeEnergy {
		t.Errorf("energy not preserved: time=%g freq=%g", timeEnergy, freqEnergy)
	}
}

func TestDCTII_ConstantSignal(t *testing.T) {
	// A constant signal has all its energy in the DC term.
	x := make([]float64, 64)
	for i := range x {
		x[i] = 3.5
	}
	coeffs := DCTII(x)
	want := 3.5 * math.Sqrt(64)
	if math.Abs(coeffs[0]-want) > 1e-9 {
		t.Errorf("DC term = %g, want %g", coeffs[0], want)
	}
	for k := 1; k < len(coeffs); k++ {
		if math.Abs(coeffs[k]) > 1e-9 {
			t.Fatalf("coefficient %d = %g, want 0", k, coeffs[k])
		}
	}
}

func TestDCTII_EnergyCompaction(t *testing.T) {
	// A smooth low-frequency signal concentrates energy in the leading coefficients.
	const n = 256
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Cos(2*math.Pi*float64(i)/n) + 0.5*math.Cos(4*math.Pi*float64(i)/n)
	}
	coeffs := DCTII(x)
	var total, head float64
	for k, c := range coeffs {
		total += c * c
		if k < 16 {
			head += c * c
		}
	}
	if head/total < 0.99 {
		t.Errorf("first 16 coefficients hold %.4f of energy, want > 0.99", head/total)
	}
}

func TestDCT_Empty(t *testing.T) {
	if DCTII(nil) != nil {
		t.Error("DCTII(nil) should be nil")
	}
	if DCTIII(nil) != nil {
		t.Error("DCTIII(nil) should be nil")
	}
}

func BenchmarkDCTII(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	x := make([]float64, 512)
	for i := range x {
		x[i] = rng.NormFloat64()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = DCTII(x)
	}
}
