package delta

import (
	"errors"
	"slices"
	"testing"

	"rio-delta/internal/core"
)

// flatSceneConfig builds a still world with an emerged plateau on the right
// half and open water elsewhere, small enough to tick quickly in tests.
func flatSceneConfig() Config {
	cfg := DefaultConfig()
	cfg.World.Samples = 64
	cfg.Water = flatWaterConfig(0.0)
	cfg.Riverbed = flatBedConfig(-0.3)
	return cfg
}

func TestSceneIsRegistered(t *testing.T) {
	factory, ok := core.Scenes()["delta"]
	if !ok {
		t.Fatal("delta scene not registered")
	}
	scene := factory(map[string]string{"samples": "32"})
	if scene.Name() != "delta" {
		t.Fatalf("factory produced scene %q", scene.Name())
	}
}

func TestResetIsDeterministic(t *testing.T) {
	run := func() []float64 {
		cfg := DefaultConfig()
		cfg.World.Samples = 64
		s := NewWithConfig(cfg)
		s.Reset(99)
		s.SelectTool(ToolSediment)
		for tick := 0; tick < 240; tick++ {
			if tick%30 == 0 {
				x := s.frame.Width / 2
				y := (s.bed.field.HeightAt(x) + s.water.field.HeightAt(x)) / 2
				s.PointerDown(x, y)
			}
			s.Update(1.0 / 60.0)
		}
		out := append([]float64(nil), s.bed.field.Samples()...)
		return append(out, s.water.field.Samples()...)
	}

	if !slices.Equal(run(), run()) {
		t.Fatal("identical seeds and inputs diverged")
	}
}

func TestResizeKeepsParametricHeights(t *testing.T) {
	cfg := DefaultConfig()
	cfg.World.Samples = 64
	s := NewWithConfig(cfg)

	oldWidth := s.frame.Width
	bedBefore := append([]float64(nil), s.bed.field.Samples()...)
	midBefore := s.bed.field.HeightAt(oldWidth * 0.5)

	s.Resize(1.0)

	if s.frame.Width != s.frame.Height {
		t.Fatalf("frame width %f after square resize, want %f", s.frame.Width, s.frame.Height)
	}
	if s.water.field.Width() != s.frame.Width || s.bed.field.Width() != s.frame.Width {
		t.Fatal("height fields did not follow the frame width")
	}
	if !slices.Equal(bedBefore, s.bed.field.Samples()) {
		t.Fatal("resize resampled the bed heights")
	}
	// Heights stay attached to parametric positions: the same fraction of
	// the new width reads the same height.
	if got := s.bed.field.HeightAt(s.frame.Width * 0.5); got != midBefore {
		t.Fatalf("parametric midpoint height %f after resize, want %f", got, midBefore)
	}
	s.Resize(-1)
	if s.frame.Width != s.frame.Height {
		t.Fatal("non-positive aspect must be ignored")
	}
}

func TestFromMapParsing(t *testing.T) {
	cfg := FromMap(map[string]string{
		"seed":                "7",
		"deposit_amount":      "0.02",
		"samples":             "4",     // below minimum, ignored
		"aspect":              "bogus", // malformed, ignored
		"water_initial_level": "5",     // out of range, ignored
		"mystery":             "1",     // unknown, ignored
	})
	def := DefaultConfig()

	if cfg.Seed != 7 {
		t.Fatalf("seed %d, want 7", cfg.Seed)
	}
	if cfg.Riverbed.DepositAmount != 0.02 {
		t.Fatalf("deposit amount %f, want 0.02", cfg.Riverbed.DepositAmount)
	}
	if cfg.World.Samples != def.World.Samples {
		t.Fatalf("samples %d, want default %d", cfg.World.Samples, def.World.Samples)
	}
	if cfg.World.Aspect != def.World.Aspect {
		t.Fatalf("aspect %f, want default", cfg.World.Aspect)
	}
	if cfg.Water.InitialLevel != def.Water.InitialLevel {
		t.Fatalf("initial level %d, want default", cfg.Water.InitialLevel)
	}
}

func TestStageAdvanceRecomputesTools(t *testing.T) {
	cfg := flatSceneConfig()
	cfg.Progress.AdvanceDelay = 0.5
	cfg.Progress.Stages = []StageConfig{
		{
			ID:                "open",
			Goal:              GoalSpec{Kind: GoalRiverbedCoverage, Coverage: 0},
			AllowedToolGroups: []string{"sediment"},
		},
		{
			ID:                "seeding",
			Goal:              GoalSpec{Kind: GoalPlantCounts, Species: map[string]int{"aliso": 1}},
			AllowedToolGroups: []string{"colonizers", "remove"},
		},
	}
	s := NewWithConfig(cfg)

	// The zero-coverage goal latches on reset.
	if !s.StageComplete() {
		t.Fatal("first stage did not latch on reset")
	}
	if !s.SelectTool(ToolSediment) {
		t.Fatal("sediment not selectable in its stage")
	}

	s.Update(1.0)
	if s.StageIndex() != 1 {
		t.Fatalf("stage index %d after advance delay, want 1", s.StageIndex())
	}
	// Sediment left the allowed set and nothing substitutes for it.
	if s.ActiveTool() != "" {
		t.Fatalf("active tool %q after stage change, want none", s.ActiveTool())
	}
	enabled := map[string]bool{}
	for _, info := range s.Tools() {
		enabled[info.ID] = info.Enabled
	}
	if enabled[ToolSediment] || !enabled[ToolRemove] || !enabled["aliso"] {
		t.Fatalf("tool gating after advance: %v", enabled)
	}
}

func TestPointerDownPlantAndRemove(t *testing.T) {
	cfg := flatSceneConfig()
	cfg.Water = flatWaterConfig(-0.5)
	cfg.Riverbed = flatBedConfig(0.3)
	cfg.Progress.Stages = []StageConfig{{
		ID:                "only",
		Goal:              GoalSpec{Kind: GoalPlantCounts, Species: map[string]int{"aliso": 99}},
		AllowedToolGroups: []string{"sediment", "remove", "colonizers"},
	}}
	s := NewWithConfig(cfg)

	if !s.SelectTool("aliso") {
		t.Fatal("aliso not selectable")
	}
	if !s.PointerDown(0.5, 0.32) {
		t.Fatal("legal plant click rejected")
	}
	plants := s.Plants()
	if len(plants) != 1 || plants[0].SpeciesID != "aliso" {
		t.Fatalf("plant list %v", plants)
	}
	if plants[0].BaseY != 0.3 {
		t.Fatalf("plant anchored at %f, want bed height 0.3", plants[0].BaseY)
	}
	// Floating click above the surface slack is a no-op.
	if s.PointerDown(0.7, 0.6) {
		t.Fatal("floating plant click accepted")
	}

	s.SelectTool(ToolRemove)
	if !s.PointerDown(0.5, 0.33) {
		t.Fatal("remove click over the plant rejected")
	}
	if len(s.Plants()) != 0 {
		t.Fatal("plant not removed")
	}
	if s.PointerDown(0.5, 0.33) {
		t.Fatal("remove with nothing under the pointer reported success")
	}
}

func TestPlantAnchorIgnoresLaterDeposition(t *testing.T) {
	cfg := flatSceneConfig()
	cfg.Water = flatWaterConfig(-0.5)
	cfg.Riverbed = flatBedConfig(0.1)
	cfg.Progress.Stages = []StageConfig{{
		ID:                "only",
		Goal:              GoalSpec{Kind: GoalPlantCounts, Species: map[string]int{"aliso": 99}},
		AllowedToolGroups: []string{"colonizers"},
	}}
	s := NewWithConfig(cfg)

	s.SelectTool("aliso")
	if !s.PointerDown(0.5, 0.12) {
		t.Fatal("plant click rejected")
	}
	p := s.Plants()[0]
	s.bed.Deposit(0.5)
	if p.BaseY != 0.1 {
		t.Fatalf("anchor moved to %f after deposition", p.BaseY)
	}
}

func TestPointerDownSedimentLegality(t *testing.T) {
	s := NewWithConfig(flatSceneConfig())
	s.SelectTool(ToolSediment)

	// Above the water line: no emission.
	if s.PointerDown(0.5, 0.5) {
		t.Fatal("click above water accepted")
	}
	if s.sediment.Active() != 0 {
		t.Fatal("illegal click spawned particles")
	}

	// Mid-column: emission starts.
	if !s.PointerDown(0.5, -0.15) {
		t.Fatal("legal sediment click rejected")
	}
	if s.sediment.Active() == 0 {
		t.Fatal("legal click spawned nothing")
	}
}

func TestPointerDownWithoutToolIsNoop(t *testing.T) {
	s := NewWithConfig(flatSceneConfig())
	if s.ActiveTool() != "" {
		t.Fatalf("fresh scene has active tool %q", s.ActiveTool())
	}
	if s.PointerDown(0.5, -0.15) {
		t.Fatal("pointer with no tool reported success")
	}
}

func TestCompleteSequenceFlipsVisual(t *testing.T) {
	s := NewWithConfig(flatSceneConfig())
	p := s.plants.Plant("aliso", 0.5, 0.3)

	v := s.PlantVisual(p)
	if v.Kind != VisualProcedural {
		t.Fatalf("loading sequence rendered as %v, want procedural", v.Kind)
	}

	s.CompleteSequence("aliso", 0, 4, nil)
	v = s.PlantVisual(p)
	if v.Kind != VisualSprite || v.Sequence == nil || v.Sequence.Frames != 4 {
		t.Fatalf("ready sequence rendered as %+v", v)
	}
}

func TestCompleteSequenceErrorFallsBack(t *testing.T) {
	s := NewWithConfig(flatSceneConfig())
	p := s.plants.Plant("sauce", 0.5, 0.3)
	s.DrainEvents() // discard the stage intro

	s.CompleteSequence("sauce", 0, 0, errors.New("atlas missing"))

	if v := s.PlantVisual(p); v.Kind != VisualProcedural {
		t.Fatalf("failed sequence rendered as %v, want procedural", v.Kind)
	}
	events := s.DrainEvents()
	if len(events) != 1 || events[0].Kind != core.EventAssetFallback {
		t.Fatalf("events after failed load: %v", events)
	}
}

func TestTeardownCancelsTimers(t *testing.T) {
	s := NewWithConfig(flatSceneConfig())
	p := s.plants.Plant("aliso", 0.5, 0.3)
	p.transitionLeft = 0.4
	s.progress.advancePending = true
	s.progress.advanceLeft = 2

	s.Teardown()

	if s.progress.advancePending {
		t.Fatal("pending advance survived teardown")
	}
	if p.transitionLeft != 0 {
		t.Fatal("transition animation survived teardown")
	}
}

func TestParameterSettersClampAndPropagate(t *testing.T) {
	s := NewWithConfig(flatSceneConfig())

	if !s.SetFloatParameter("deposit_amount", 1.0) {
		t.Fatal("deposit_amount not recognized")
	}
	if s.cfg.Riverbed.DepositAmount != 0.08 || s.bed.cfg.DepositAmount != 0.08 {
		t.Fatalf("deposit_amount = %f / live %f, want clamped 0.08",
			s.cfg.Riverbed.DepositAmount, s.bed.cfg.DepositAmount)
	}
	if !s.SetIntParameter("sediment_emission_per_click", 0) {
		t.Fatal("sediment_emission_per_click not recognized")
	}
	if s.sediment.cfg.EmissionPerClick != 1 {
		t.Fatalf("emission clamped to %d, want 1", s.sediment.cfg.EmissionPerClick)
	}
	if !s.SetIntParameter("min_neighbors", 99) {
		t.Fatal("min_neighbors not recognized")
	}
	if s.plants.cfg.MinNeighbors != 8 {
		t.Fatalf("min_neighbors clamped to %d, want 8", s.plants.cfg.MinNeighbors)
	}
	if s.SetFloatParameter("nope", 1) || s.SetIntParameter("nope", 1) {
		t.Fatal("unknown parameter key accepted")
	}
}

func TestParametersSnapshotCoversControls(t *testing.T) {
	s := NewWithConfig(flatSceneConfig())

	keys := map[string]bool{}
	for _, group := range s.Parameters().Groups {
		for _, p := range group.Params {
			keys[p.Key] = true
		}
	}
	for _, ctl := range s.ParameterControls() {
		if !keys[ctl.Key] {
			t.Fatalf("control %q missing from the snapshot", ctl.Key)
		}
	}
}
