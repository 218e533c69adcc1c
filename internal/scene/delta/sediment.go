package delta

import (
	"math"

	pkgcore "rio-delta/pkg/core"
)

// sedimentParticle is one pool slot. Inactive slots are zeroed and
// immediately reusable.
type sedimentParticle struct {
	active bool

	x, y float64

	bandBase        float64 // [0,1] position inside the transport band
	jitterPhase     float64
	jitterSpeed     float64
	jitterAmplitude float64

	horizontalSpeed float64

	targetX, targetY float64
	approachStartX   float64
	approachSpan     float64
}

// sedimentPool drives a fixed-capacity set of kinematic particles from an
// off-screen spawn point to deposition targets near the click point.
type sedimentPool struct {
	cfg       SedimentConfig
	particles []sedimentParticle
	rng       *pkgcore.RNG
	elapsed   float64
}

func newSedimentPool(cfg SedimentConfig, rng *pkgcore.RNG) *sedimentPool {
	if cfg.MaxParticles < 1 {
		cfg.MaxParticles = 1
	}
	return &sedimentPool{
		cfg:       cfg,
		particles: make([]sedimentParticle, cfg.MaxParticles),
		rng:       rng,
	}
}

func (p *sedimentPool) reset() {
	p.elapsed = 0
	for i := range p.particles {
		p.particles[i] = sedimentParticle{}
	}
}

// Active counts the particles currently in flight.
func (p *sedimentPool) Active() int {
	n := 0
	for i := range p.particles {
		if p.particles[i].active {
			n++
		}
	}
	return n
}

// Particles exposes the pool for the renderer.
func (p *sedimentPool) Particles() []sedimentParticle { return p.particles }

// Emit activates up to EmissionPerClick particles aimed at a window around
// the click x. Emission silently stops when the pool is exhausted; there is
// no queueing. Returns the number of particles spawned.
func (p *sedimentPool) Emit(x float64, width float64, bed *riverbed) int {
	spawned := 0
	slot := 0
	for i := 0; i < p.cfg.EmissionPerClick; i++ {
		for slot < len(p.particles) && p.particles[slot].active {
			slot++
		}
		if slot >= len(p.particles) {
			break
		}

		targetX := x + p.rng.Signed(p.cfg.TargetWindow)
		if targetX < 0 {
			targetX = 0
		}
		if targetX > width {
			targetX = width
		}
		span := p.rng.Range(p.cfg.ApproachSpanMin, p.cfg.ApproachSpanMax)

		p.particles[slot] = sedimentParticle{
			active:          true,
			x:               width + p.cfg.SpawnOffsetX + p.rng.Float64()*p.cfg.SpawnJitter,
			y:               0,
			bandBase:        p.rng.Float64(),
			jitterPhase:     p.rng.Float64() * 2 * math.Pi,
			jitterSpeed:     p.rng.Range(p.cfg.JitterSpeedMin, p.cfg.JitterSpeedMax),
			jitterAmplitude: p.rng.Range(p.cfg.JitterAmplitudeMin, p.cfg.JitterAmplitudeMax),
			horizontalSpeed: p.rng.Range(p.cfg.HorizontalSpeedMin, p.cfg.HorizontalSpeedMax),
			targetX:         targetX,
			targetY:         bed.field.HeightAt(targetX),
			approachStartX:  targetX + span,
			approachSpan:    span,
		}
		spawned++
	}
	return spawned
}

// Update advances all active particles by dt. Each drifts monotonically
// leftward inside a band that tracks the current water surface, then blends
// toward its target during the final approach. Arrival deposits on the bed
// and frees the slot. Returns the number of particles that settled.
func (p *sedimentPool) Update(dt float64, water *waterSurface, bed *riverbed) int {
	p.elapsed += dt
	settled := 0
	for i := range p.particles {
		part := &p.particles[i]
		if !part.active {
			continue
		}

		x := part.x - part.horizontalSpeed*dt
		if x < part.targetX {
			x = part.targetX
		}
		part.x = x

		surface := water.field.HeightAt(x)
		bandY := surface + part.bandBase*(p.cfg.BandTop-p.cfg.BandBottom) + p.cfg.BandBottom
		bandY += part.jitterAmplitude * math.Sin(part.jitterPhase+p.elapsed*part.jitterSpeed)

		if x < part.approachStartX && part.approachSpan > 0 {
			blend := (part.approachStartX - x) / part.approachSpan
			if blend > 1 {
				blend = 1
			}
			part.y = bandY + (part.targetY-bandY)*blend
		} else {
			part.y = bandY
		}

		if x <= part.targetX+p.cfg.ArrivalThreshold {
			bed.Deposit(part.targetX)
			*part = sedimentParticle{}
			settled++
		}
	}
	return settled
}
