// Package delta implements the island-building scene: a river-delta
// height-field simulation where deposited sediment builds a sandbar and
// planted seeds grow through submersion-gated life stages toward scripted
// ecological goals.
package delta

import (
	"rio-delta/internal/core"
	pkgcore "rio-delta/pkg/core"
	"rio-delta/pkg/heightfield"
)

// Scene owns all mutable simulation state: the two height fields, the
// sediment pool, the plant list and the progression state machine. There is
// one logical writer — the tick — plus synchronous pointer handlers that
// run to completion between ticks.
type Scene struct {
	cfg   Config
	frame core.Frame

	rng *pkgcore.RNG

	water    *waterSurface
	bed      *riverbed
	sediment *sedimentPool
	plants   *plantField
	router   *toolRouter
	progress *progression

	sequences *SequenceCache
}

// New returns a delta scene with the default configuration.
func New() *Scene {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig returns a delta scene configured from the provided record.
func NewWithConfig(cfg Config) *Scene {
	if cfg.World.Samples < 8 {
		cfg.World.Samples = 8
	}
	s := &Scene{cfg: cfg}
	s.frame = core.Frame{
		Height: cfg.World.Height,
		Top:    cfg.World.Height / 2,
		Bottom: -cfg.World.Height / 2,
	}
	s.frame.Resize(cfg.World.Aspect)
	s.sequences = newSequenceCache()
	s.plants = newPlantField(cfg.Seeds, s.sequences)
	s.router = newToolRouter(cfg.Interactions, &s.cfg.Seeds)
	s.progress = newProgression(cfg.Progress)
	s.Reset(0)
	return s
}

// Name returns the scene identifier.
func (s *Scene) Name() string { return "delta" }

// Frame reports the normalized world rectangle.
func (s *Scene) Frame() core.Frame { return s.frame }

// Colors exposes the configured palette for the renderer.
func (s *Scene) Colors() ColorConfig { return s.cfg.Colors }

// Reset rebuilds the initial world using deterministic randomness. A zero
// seed falls back to the configured seed.
func (s *Scene) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	s.rng = pkgcore.NewRNG(effective)
	s.water = newWaterSurface(s.cfg.Water, s.cfg.World.Samples, s.frame.Width, s.frame.Bottom, s.frame.Top, effective)
	s.bed = newRiverbed(s.cfg.Riverbed, s.cfg.World.Samples, s.frame.Width, effective+1)
	s.sediment = newSedimentPool(s.cfg.Sediment, s.rng)
	s.plants.reset()
	s.progress.reset()
	s.applyStageTools()
	s.progress.Evaluate(s.bed, s.water, s.plants)
}

// Update advances the simulation by dt seconds. Mutations that could
// satisfy the active goal trigger re-evaluation; the progression countdown
// runs last so a transition takes effect on the tick it fires.
func (s *Scene) Update(dt float64) {
	if dt <= 0 {
		return
	}
	s.water.Update(dt)
	settled := s.sediment.Update(dt, s.water, s.bed)
	advances := s.plants.Update(dt, s.water)
	if settled > 0 || advances > 0 {
		s.progress.Evaluate(s.bed, s.water, s.plants)
	}
	if s.progress.Update(dt) {
		s.applyStageTools()
		s.progress.Evaluate(s.bed, s.water, s.plants)
	}
}

func (s *Scene) applyStageTools() {
	if stage, ok := s.progress.Stage(); ok {
		s.router.recomputeAllowed(stage.AllowedToolGroups)
		return
	}
	s.router.recomputeAllowed(nil)
}

// Teardown synchronously cancels pending timers and in-flight transition
// animations before the owner releases the scene.
func (s *Scene) Teardown() {
	s.progress.Cancel()
	for _, p := range s.plants.Plants() {
		p.transitionLeft = 0
	}
}

// Resize recomputes the frame width for a new viewport aspect. Heights stay
// attached to their parametric positions.
func (s *Scene) Resize(aspect float64) {
	s.frame.Resize(aspect)
	s.water.field.Resize(s.frame.Width)
	s.bed.field.Resize(s.frame.Width)
}

// PointerDown routes a world-space pointer press through the active tool.
// Illegal placements are a no-op, never an error.
func (s *Scene) PointerDown(x, y float64) bool {
	tool := s.router.Active()
	if tool == "" {
		return false
	}
	waterH := s.water.field.HeightAt(x)
	bedH := s.bed.field.HeightAt(x)

	switch tool {
	case ToolSediment:
		if !s.router.CanSediment(y, waterH, bedH) {
			return false
		}
		return s.sediment.Emit(x, s.frame.Width, s.bed) > 0
	case ToolRemove:
		p := s.plants.RemoveAt(x, y)
		if p == nil {
			return false
		}
		// Completion is a one-way latch: removals after a scheduled
		// advance never retract it.
		s.progress.Evaluate(s.bed, s.water, s.plants)
		return true
	default:
		if !s.router.CanPlant(y, waterH, bedH) {
			return false
		}
		return s.plants.Plant(tool, x, bedH) != nil
	}
}

// SelectTool toggles the active tool; disallowed tools are a no-op.
func (s *Scene) SelectTool(id string) bool { return s.router.SelectTool(id) }

// ActiveTool reports the current tool id, empty when none is selected.
func (s *Scene) ActiveTool() string { return s.router.Active() }

// Tools lists the tool catalog with per-stage allowed flags.
func (s *Scene) Tools() []core.ToolInfo { return s.router.Tools() }

// SetWaterLevel retargets the discrete water level (0 low, 1 medium,
// 2 high).
func (s *Scene) SetWaterLevel(index int) { s.water.SetLevel(index) }

// WaterLevel reports the discrete water level index.
func (s *Scene) WaterLevel() int { return s.water.Level() }

// WaterField exposes the water surface samples for the renderer.
func (s *Scene) WaterField() *heightfield.Field { return s.water.field }

// BedField exposes the riverbed samples for the renderer.
func (s *Scene) BedField() *heightfield.Field { return s.bed.field }

// Plants exposes the owned plant list.
func (s *Scene) Plants() []*Plant { return s.plants.Plants() }

// PlantVisual chooses the renderer representation for a plant.
func (s *Scene) PlantVisual(p *Plant) Visual { return s.plants.VisualFor(p) }

// ParticleView is a render-facing snapshot of one active particle.
type ParticleView struct {
	X, Y float64
}

// SedimentViews snapshots the active particles for the renderer.
func (s *Scene) SedimentViews() []ParticleView {
	var out []ParticleView
	for i := range s.sediment.particles {
		p := &s.sediment.particles[i]
		if p.active {
			out = append(out, ParticleView{X: p.x, Y: p.y})
		}
	}
	return out
}

// StageIndex reports the active stage index.
func (s *Scene) StageIndex() int { return s.progress.stageIndex }

// StageComplete reports whether the active stage's goal has latched.
func (s *Scene) StageComplete() bool { return s.progress.stageComplete }

// Victory reports whether the final stage finished.
func (s *Scene) Victory() bool { return s.progress.victory }

// ProgressSnapshot returns the serializable progression state for external
// persistence.
func (s *Scene) ProgressSnapshot() ProgressState { return s.progress.Snapshot() }

// DrainEvents hands queued stage/diagnostic notifications to the UI.
func (s *Scene) DrainEvents() []core.Event { return s.progress.DrainEvents() }

// CompleteSequence resolves a pending sprite sequence load. A failed load
// is queued as a diagnostic event; the plant keeps its procedural visual
// and simulation logic is unaffected.
func (s *Scene) CompleteSequence(speciesID string, stage int, frames int, err error) {
	s.sequences.Complete(speciesID, stage, frames, err)
	if err != nil {
		s.progress.push(core.Event{
			Kind:    core.EventAssetFallback,
			Message: speciesID + ": " + err.Error(),
		})
	}
}

var (
	_ core.Scene        = (*Scene)(nil)
	_ core.ToolProvider = (*Scene)(nil)
	_ core.EventSource  = (*Scene)(nil)
)

func init() {
	core.Register("delta", func(cfg map[string]string) core.Scene {
		return NewWithConfig(FromMap(cfg))
	})
}
