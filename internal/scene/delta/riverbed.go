package delta

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"rio-delta/internal/core"
	"rio-delta/pkg/heightfield"
)

// riverbed owns the mutable bed height field. The profile dips toward both
// banks and is higher and flatter in the middle plateau, with roughness
// blended between a coarse bank-side noise and a finer plateau noise.
type riverbed struct {
	cfg   RiverbedConfig
	field *heightfield.Field

	noiseLow  opensimplex.Noise
	noiseHigh opensimplex.Noise
}

func newRiverbed(cfg RiverbedConfig, samples int, width float64, seed int64) *riverbed {
	r := &riverbed{
		cfg:       cfg,
		field:     heightfield.New(samples, width, cfg.Floor, cfg.Ceiling),
		noiseLow:  opensimplex.New(seed),
		noiseHigh: opensimplex.New(seed + 1),
	}
	r.generate()
	return r
}

func (r *riverbed) generate() {
	samples := r.field.Samples()
	n := len(samples) - 1
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)

		rise := core.Smoothstep(r.cfg.PlateauStart-r.cfg.RampWidth, r.cfg.PlateauStart, t)
		fall := 1 - core.Smoothstep(r.cfg.PlateauEnd, r.cfg.PlateauEnd+r.cfg.RampWidth, t)
		b := rise * fall

		h := core.Lerp(r.cfg.BaseLow, r.cfg.BaseHigh, b)
		low := r.noiseLow.Eval2(t*r.cfg.NoiseLowFrequency, 0) * r.cfg.NoiseLowAmplitude
		high := r.noiseHigh.Eval2(t*r.cfg.NoiseHighFrequency, 0.5) * r.cfg.NoiseHighAmplitude
		h += core.Lerp(low, high, b)

		r.field.Set(i, h)
	}
}

// Deposit permanently raises the bed around x by the configured kernel.
func (r *riverbed) Deposit(x float64) {
	r.field.Raise(x, r.cfg.DepositAmount, r.cfg.DepositRadius)
}

// CoverageAbove reports the fraction of bed samples at or above threshold.
func (r *riverbed) CoverageAbove(threshold float64) float64 {
	return r.field.CoverageAbove(threshold)
}
