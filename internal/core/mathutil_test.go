package core

import (
	"math"
	"testing"
)

func TestDampConvergesGeometrically(t *testing.T) {
	current := 0.0
	target := 1.0
	const rate, dt = 2.4, 1.0 / 60.0

	prevGap := target - current
	var ratio float64
	for i := 0; i < 600; i++ {
		current = Damp(current, target, rate, dt)
		gap := target - current
		if gap < 0 {
			t.Fatalf("overshoot at step %d: current=%f", i, current)
		}
		if gap > prevGap {
			t.Fatalf("gap grew at step %d: %f > %f", i, gap, prevGap)
		}
		if prevGap > 0 {
			r := gap / prevGap
			if ratio == 0 {
				ratio = r
			} else if math.Abs(r-ratio) > 1e-9 {
				t.Fatalf("gap ratio not constant for fixed dt: %f vs %f", r, ratio)
			}
		}
		prevGap = gap
	}
	if prevGap > 1e-4 {
		t.Fatalf("failed to converge: remaining gap %f", prevGap)
	}
}

func TestDampIsFrameRateIndependent(t *testing.T) {
	// One 1s step and sixty 1/60s steps must land in the same place.
	coarse := Damp(0, 1, 3, 1)
	fine := 0.0
	for i := 0; i < 60; i++ {
		fine = Damp(fine, 1, 3, 1.0/60.0)
	}
	if math.Abs(coarse-fine) > 1e-9 {
		t.Fatalf("coarse %f != fine %f", coarse, fine)
	}
}

func TestSmoothstepEdges(t *testing.T) {
	if got := Smoothstep(0, 1, -1); got != 0 {
		t.Fatalf("below edge0: %f", got)
	}
	if got := Smoothstep(0, 1, 2); got != 1 {
		t.Fatalf("above edge1: %f", got)
	}
	if got := Smoothstep(0, 1, 0.5); got != 0.5 {
		t.Fatalf("midpoint: %f", got)
	}
	if got := Smoothstep(1, 1, 0); got != 0 {
		t.Fatalf("degenerate edge below: %f", got)
	}
	if got := Smoothstep(1, 1, 2); got != 1 {
		t.Fatalf("degenerate edge above: %f", got)
	}
}

func TestClampAndLerp(t *testing.T) {
	if got := Clamp(5, 0, 1); got != 1 {
		t.Fatalf("Clamp high: %f", got)
	}
	if got := Clamp(-5, 0, 1); got != 0 {
		t.Fatalf("Clamp low: %f", got)
	}
	if got := Lerp(2, 4, 0.5); got != 3 {
		t.Fatalf("Lerp: %f", got)
	}
}

func TestFrameResize(t *testing.T) {
	f := Frame{Height: 2, Top: 1, Bottom: -1}
	f.Resize(16.0 / 9.0)
	want := 2 * 16.0 / 9.0
	if math.Abs(f.Width-want) > 1e-12 {
		t.Fatalf("Resize width %f, want %f", f.Width, want)
	}
	f.Resize(0)
	if f.Width != want {
		t.Fatal("Resize with non-positive aspect must be ignored")
	}
}
