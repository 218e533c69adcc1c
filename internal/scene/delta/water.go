package delta

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"rio-delta/internal/core"
	"rio-delta/pkg/heightfield"
)

// waterSurface derives the water height field each tick from a damped
// discrete level plus layered periodic waves and a coherent noise term.
type waterSurface struct {
	cfg   WaterConfig
	field *heightfield.Field
	noise opensimplex.Noise

	levelIndex   int
	currentLevel float64
	targetLevel  float64

	elapsed float64
}

func newWaterSurface(cfg WaterConfig, samples int, width, floor, ceiling float64, seed int64) *waterSurface {
	w := &waterSurface{
		cfg:   cfg,
		field: heightfield.New(samples, width, floor, ceiling),
		noise: opensimplex.NewNormalized(seed),
	}
	w.reset()
	return w
}

func (w *waterSurface) reset() {
	w.elapsed = 0
	w.levelIndex = clampLevelIndex(w.cfg.InitialLevel)
	w.targetLevel = w.cfg.Baseline + w.cfg.LevelDeltas[w.levelIndex]
	w.currentLevel = w.targetLevel
	w.rebuild()
}

// SetLevel retargets the discrete water level. The visible change happens
// entirely through the damping of currentLevel, never instantaneously.
func (w *waterSurface) SetLevel(index int) {
	w.levelIndex = clampLevelIndex(index)
	w.targetLevel = w.cfg.Baseline + w.cfg.LevelDeltas[w.levelIndex]
}

// Level reports the discrete level index.
func (w *waterSurface) Level() int { return w.levelIndex }

// MediumLevel reports the baseline height of the medium discrete level.
// Coverage goals measure emergence against it rather than the animated
// surface.
func (w *waterSurface) MediumLevel() float64 {
	return w.cfg.Baseline + w.cfg.LevelDeltas[1]
}

// Update damps the level toward its target and rebuilds the surface samples.
func (w *waterSurface) Update(dt float64) {
	w.elapsed += dt
	w.currentLevel = core.Damp(w.currentLevel, w.targetLevel, w.cfg.SmoothingRate, dt)
	w.rebuild()
}

func (w *waterSurface) rebuild() {
	samples := w.field.Samples()
	n := len(samples) - 1
	for i := range samples {
		t := float64(i) / float64(n)
		h := w.currentLevel
		for _, wave := range w.cfg.Waves {
			h += wave.Amplitude * math.Sin(2*math.Pi*wave.Frequency*t+wave.Phase+w.elapsed*wave.Speed)
		}
		h += w.cfg.Chop.Amplitude * math.Sin(2*math.Pi*w.cfg.Chop.Frequency*t+w.cfg.Chop.Phase+w.elapsed*w.cfg.Chop.Speed)
		if w.cfg.NoiseAmplitude > 0 {
			h += w.cfg.NoiseAmplitude * (w.noise.Eval2(t*w.cfg.NoiseScale, w.elapsed*w.cfg.NoiseTimeScale)*2 - 1)
		}
		w.field.Set(i, h)
	}
}

func clampLevelIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i > 2 {
		return 2
	}
	return i
}
