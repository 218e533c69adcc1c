package delta

import (
	"math"
	"testing"
)

func TestWaterLevelChangesOnlyThroughDamping(t *testing.T) {
	w := newFlatWater(0)
	w.SetLevel(2)

	if w.currentLevel != 0 {
		t.Fatalf("SetLevel must not jump the visible level, got %f", w.currentLevel)
	}

	const dt = 1.0 / 60.0
	prevGap := w.targetLevel - w.currentLevel
	for i := 0; i < 600; i++ {
		w.Update(dt)
		gap := w.targetLevel - w.currentLevel
		if gap < 0 {
			t.Fatalf("overshoot at step %d: level %f past target %f", i, w.currentLevel, w.targetLevel)
		}
		if gap > prevGap {
			t.Fatalf("gap grew at step %d", i)
		}
		prevGap = gap
	}
	if prevGap > 1e-4 {
		t.Fatalf("level did not converge, remaining gap %f", prevGap)
	}
}

func TestWaterFlatSurfaceEqualsLevel(t *testing.T) {
	w := newFlatWater(0.2)
	for _, x := range []float64{0, 0.25, 0.5, 0.99} {
		if got := w.field.HeightAt(x); math.Abs(got-0.2) > 1e-12 {
			t.Fatalf("flat surface at x=%f is %f, want 0.2", x, got)
		}
	}
	setSurface(w, -0.3)
	if got := w.field.HeightAt(0.5); math.Abs(got-(-0.3)) > 1e-12 {
		t.Fatalf("surface after setSurface is %f, want -0.3", got)
	}
}

func TestWaterLevelIndexClamps(t *testing.T) {
	w := newFlatWater(0)
	w.SetLevel(9)
	if w.Level() != 2 {
		t.Fatalf("level clamped high: got %d", w.Level())
	}
	w.SetLevel(-3)
	if w.Level() != 0 {
		t.Fatalf("level clamped low: got %d", w.Level())
	}
}

func TestWaterMediumLevelIgnoresCurrentLevel(t *testing.T) {
	w := newFlatWater(0.1)
	w.SetLevel(2)
	for i := 0; i < 120; i++ {
		w.Update(1.0 / 60.0)
	}
	if got := w.MediumLevel(); math.Abs(got-0.1) > 1e-12 {
		t.Fatalf("MediumLevel = %f, want baseline 0.1", got)
	}
}

func TestWaterResetRestoresInitialLevel(t *testing.T) {
	w := newFlatWater(0)
	w.SetLevel(2)
	for i := 0; i < 300; i++ {
		w.Update(1.0 / 60.0)
	}
	w.reset()
	if w.Level() != 1 {
		t.Fatalf("reset level index = %d, want 1", w.Level())
	}
	if w.currentLevel != w.targetLevel {
		t.Fatal("reset must settle the level instantly")
	}
	if got := w.field.HeightAt(0.5); math.Abs(got) > 1e-12 {
		t.Fatalf("reset surface = %f, want 0", got)
	}
}

func TestWaterNoiseStaysInsideAmplitude(t *testing.T) {
	cfg := DefaultConfig().Water
	w := newWaterSurface(cfg, 128, 1.0, -1, 1, 21)
	var maxAmp float64
	for _, wave := range cfg.Waves {
		maxAmp += wave.Amplitude
	}
	maxAmp += cfg.Chop.Amplitude + cfg.NoiseAmplitude

	for i := 0; i < 240; i++ {
		w.Update(1.0 / 60.0)
		for _, h := range w.field.Samples() {
			if math.Abs(h-w.currentLevel) > maxAmp+1e-9 {
				t.Fatalf("sample %f exceeds level %f ± %f", h, w.currentLevel, maxAmp)
			}
		}
	}
}
