package heightfield

import (
	"math"
	"testing"
)

func TestHeightAtInterpolatesExactly(t *testing.T) {
	f := New(4, 4.0, -10, 10)
	for i := 0; i <= 4; i++ {
		f.Set(i, float64(i)*2)
	}

	// Between samples 1 (h=2) and 2 (h=4).
	for _, frac := range []float64{0, 0.25, 0.5, 0.75, 1} {
		x := 1.0 + frac
		want := 2 + frac*(4-2)
		if got := f.HeightAt(x); math.Abs(got-want) > 1e-12 {
			t.Fatalf("HeightAt(%f) = %f, want %f", x, got, want)
		}
	}
}

func TestHeightAtClampsToEdges(t *testing.T) {
	f := New(8, 2.0, -10, 10)
	f.Set(0, -1.5)
	f.Set(8, 3.25)

	if got := f.HeightAt(-5); got != f.HeightAt(0) {
		t.Fatalf("HeightAt below range = %f, want edge sample %f", got, f.HeightAt(0))
	}
	if got := f.HeightAt(99); got != f.HeightAt(2.0) {
		t.Fatalf("HeightAt above range = %f, want edge sample %f", got, f.HeightAt(2.0))
	}
}

func TestSetAndFillClampToBounds(t *testing.T) {
	f := New(4, 1.0, -0.5, 0.5)
	f.Set(0, 99)
	if got := f.Samples()[0]; got != 0.5 {
		t.Fatalf("Set above ceiling stored %f, want 0.5", got)
	}
	f.Fill(-99)
	for i, h := range f.Samples() {
		if h != -0.5 {
			t.Fatalf("Fill below floor left sample %d at %f", i, h)
		}
	}
}

func TestRaiseIsLocalToRadius(t *testing.T) {
	f := New(100, 1.0, -1, 1)
	f.Fill(-0.2)

	f.Raise(0.5, 0.1, 0.12)

	for i, h := range f.Samples() {
		x := f.SampleX(i)
		dist := math.Abs(x - 0.5)
		if dist > 0.12 {
			if h != -0.2 {
				t.Fatalf("sample %d at x=%f (dist %f) changed to %f", i, x, dist, h)
			}
			continue
		}
		if dist < 0.11 && h <= -0.2 {
			t.Fatalf("sample %d at x=%f inside radius not raised (h=%f)", i, x, h)
		}
	}

	// The kernel peaks at the center.
	center := f.HeightAt(0.5)
	if math.Abs(center-(-0.1)) > 1e-9 {
		t.Fatalf("center raised to %f, want -0.1", center)
	}
}

func TestRaiseNeverEscapesBounds(t *testing.T) {
	f := New(50, 1.0, -0.85, 0.5)
	f.Fill(0.4)
	for i := 0; i < 200; i++ {
		f.Raise(0.5, 0.05, 0.3)
	}
	for i, h := range f.Samples() {
		if h < -0.85 || h > 0.5 {
			t.Fatalf("sample %d escaped bounds: %f", i, h)
		}
	}
	if got := f.HeightAt(0.5); got != 0.5 {
		t.Fatalf("repeated deposits should pin the center to the ceiling, got %f", got)
	}
}

func TestCoverageAbove(t *testing.T) {
	f := New(9, 1.0, -1, 1)
	for i := 0; i < 5; i++ {
		f.Set(i, 0.5)
	}
	for i := 5; i < 10; i++ {
		f.Set(i, -0.5)
	}
	if got := f.CoverageAbove(0); got != 0.5 {
		t.Fatalf("CoverageAbove(0) = %f, want 0.5", got)
	}
	if got := f.CoverageAbove(1); got != 0 {
		t.Fatalf("CoverageAbove(1) = %f, want 0", got)
	}
}

func TestDirtyFlag(t *testing.T) {
	f := New(4, 1.0, -1, 1)
	f.ClearDirty()
	if f.Dirty() {
		t.Fatal("fresh field should be clean after ClearDirty")
	}
	f.Raise(0.5, 0.1, 0.2)
	if !f.Dirty() {
		t.Fatal("Raise must mark the field dirty")
	}
}
