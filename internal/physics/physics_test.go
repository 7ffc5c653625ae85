package physics

import (
	"math"
	"testing"

	"github.com/chrissnell/jetfigures/pkg/config"
)

func defaultUnits() Units {
	return FromConfig(config.Default().Physics)
}

func TestObserverTimeDays(t *testing.T) {
	u := defaultUnits()

	// one code time unit is 1e16 cm / c
	expected := 1e16 / 2.99792458e10 / 86400
	if got := u.ObserverTimeDays(2, 1); math.Abs(got-expected) > 1e-12 {
		t.Errorf("ObserverTimeDays(2, 1) = %v, expected %v", got, expected)
	}
	if got := u.ObserverTimeDays(5, 5); got != 0 {
		t.Errorf("ObserverTimeDays(5, 5) = %v, expected 0", got)
	}
}

func TestObserverTimeIncreasesWithRetardedTime(t *testing.T) {
	u := defaultUnits()
	prev := math.Inf(-1)
	for _, lag := range []float64{-3, -0.5, 0, 1e-6, 0.25, 1, 10, 1e4} {
		got := u.ObserverTimeDays(100+lag, 100)
		if got <= prev {
			t.Fatalf("ObserverTimeDays not strictly increasing at t-r=%v: %v <= %v", lag, got, prev)
		}
		prev = got
	}
}

func TestShockVelocity(t *testing.T) {
	tests := []struct {
		name     string
		gsh      float64
		expected float64
	}{
		{name: "at rest", gsh: 1, expected: 0},
		{name: "gamma 2", gsh: 2, expected: math.Sqrt(0.75)},
		{name: "gamma 10", gsh: 10, expected: math.Sqrt(0.99)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShockVelocity(tt.gsh); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("ShockVelocity(%v) = %v, expected %v", tt.gsh, got, tt.expected)
			}
		})
	}
}

func TestShockVelocityBounds(t *testing.T) {
	prevGB := 0.0
	for gsh := 1.0001; gsh < 1000; gsh *= 1.7 {
		b := ShockVelocity(gsh)
		if b < 0 || b >= 1 {
			t.Fatalf("ShockVelocity(%v) = %v, expected 0 <= β < 1", gsh, b)
		}
		gb := FourVelocity(gsh)
		if gb <= prevGB {
			t.Fatalf("FourVelocity not increasing at Γ=%v: %v <= %v", gsh, gb, prevGB)
		}
		prevGB = gb
	}
}

func TestEnergyScale(t *testing.T) {
	u := defaultUnits()
	c := 2.99792458e10
	expected := 2 * math.Pi * (1 - math.Cos(0.1)) * 1.67262158e-24 * 1e48 * c * c
	if got := u.EnergyScale(); math.Abs(got-expected)/expected > 1e-12 {
		t.Errorf("EnergyScale() = %g, expected %g", got, expected)
	}
	if got := u.KineticEnergyErg(2); math.Abs(got-2*expected)/expected > 1e-12 {
		t.Errorf("KineticEnergyErg(2) = %g, expected %g", got, 2*expected)
	}
}

func TestLuminosityIsDeterministic(t *testing.T) {
	u := defaultUnits()
	first := u.Luminosity(1e3, 1.66, 44.8)

	d := 44.8 * 1e6 * 3.0857e18
	expected := 1e3 * 1e-29 * 4 * math.Pi * d * d * 1.66e9
	if math.Abs(first-expected)/expected > 1e-12 {
		t.Errorf("Luminosity() = %g, expected %g", first, expected)
	}
	for i := 0; i < 10; i++ {
		if got := u.Luminosity(1e3, 1.66, 44.8); got != first {
			t.Fatalf("Luminosity() run %d = %g, expected %g", i, got, first)
		}
	}
}

func TestSeries(t *testing.T) {
	u := defaultUnits()
	tobs := u.ObserverTimes([]float64{1, 2, 3}, []float64{0, 1, 1})
	for i, x := range []float64{1, 1, 2} {
		if expected := u.ObserverTimeDays(x, 0); math.Abs(tobs[i]-expected) > 1e-12 {
			t.Errorf("ObserverTimes[%d] = %v, expected %v", i, tobs[i], expected)
		}
	}

	in := []float64{0, 1.5}
	shifted := ShiftTimes(in, 1.00503781526)
	if in[1] != 1.5 {
		t.Error("ShiftTimes modified its input")
	}
	if math.Abs(shifted[1]-2.50503781526) > 1e-12 {
		t.Errorf("ShiftTimes()[1] = %v", shifted[1])
	}

	ek := u.KineticEnergies([]float64{1, 0})
	if ek[0] != u.EnergyScale() || ek[1] != 0 {
		t.Errorf("KineticEnergies() = %v", ek)
	}
}
