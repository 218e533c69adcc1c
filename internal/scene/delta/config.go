package delta

import "strconv"

// WorldConfig fixes the normalized simulation frame and grid resolution.
type WorldConfig struct {
	Aspect  float64 // viewport width/height; frame width derives from it
	Height  float64
	Samples int // height-field segments (Samples+1 sample values)
}

// ColorConfig carries the display palette. The simulation never reads it;
// it is passed through to the renderer.
type ColorConfig struct {
	Sky   [3]float64
	Water [3]float64
	Bed   [3]float64
	Plant [3]float64
}

// WaveConfig describes one periodic component of the water surface.
type WaveConfig struct {
	Frequency float64 // cycles across the frame width
	Speed     float64 // phase advance per second
	Amplitude float64
	Phase     float64
}

// WaterConfig parameterizes the water surface simulator.
type WaterConfig struct {
	Baseline      float64
	LevelDeltas   [3]float64 // low, medium, high offsets from baseline
	InitialLevel  int
	SmoothingRate float64 // exponential approach rate toward the target level

	Waves [3]WaveConfig
	Chop  WaveConfig

	NoiseScale     float64
	NoiseTimeScale float64
	NoiseAmplitude float64
}

// RiverbedConfig parameterizes the riverbed profile and deposition.
type RiverbedConfig struct {
	BaseLow  float64 // bank-side baseline height
	BaseHigh float64 // plateau baseline height

	PlateauStart float64 // parametric [0,1] start of the raised plateau
	PlateauEnd   float64
	RampWidth    float64 // smoothstep ramp width on either side

	NoiseLowFrequency  float64
	NoiseLowAmplitude  float64
	NoiseHighFrequency float64
	NoiseHighAmplitude float64

	Floor   float64 // lower clamp bound for all samples
	Ceiling float64 // upper clamp bound for all samples

	DepositAmount float64 // riverbed raise per settled particle
	DepositRadius float64
}

// SedimentConfig parameterizes the particle transport pool.
type SedimentConfig struct {
	MaxParticles     int
	EmissionPerClick int

	SpawnOffsetX float64 // distance beyond the right frame edge
	SpawnJitter  float64
	TargetWindow float64 // half-width of the deposition window around the click

	HorizontalSpeedMin float64
	HorizontalSpeedMax float64

	BandBottom float64 // band offsets relative to the water surface
	BandTop    float64

	JitterAmplitudeMin float64
	JitterAmplitudeMax float64
	JitterSpeedMin     float64
	JitterSpeedMax     float64

	ApproachSpanMin  float64 // dive distance before the target
	ApproachSpanMax  float64
	ArrivalThreshold float64
}

// StageNeed states what a plant stage requires before it can advance.
type StageNeed int8

const (
	// NeedSubmerged requires the plant anchor to sit below the water line.
	NeedSubmerged StageNeed = iota
	// NeedEmerged requires the plant anchor to sit above the water line.
	NeedEmerged
	// NeedNone marks a terminal stage.
	NeedNone
)

// SpeciesConfig describes one plantable species.
type SpeciesConfig struct {
	ID     string
	Label  string
	Height float64 // full-grown visual height
	Radius float64 // hit-test radius
}

// SeedsConfig groups the species catalog with the shared lifecycle tunables.
type SeedsConfig struct {
	Colonizers    []SpeciesConfig
	NonColonizers []SpeciesConfig

	Stages [PlantStageCount]StageNeed

	SubmergeOffset  float64 // hysteresis: water must reach baseY+offset
	EmergenceOffset float64 // hysteresis: water must drop to baseY-offset

	TransitionDuration  float64 // continuous hold needed to advance a stage
	TransitionAnimation float64 // visual transition during which logic pauses

	NeighborRadius float64
	MinNeighbors   int
}

// InteractionConfig carries the legality margins for pointer actions.
type InteractionConfig struct {
	DepthMargin  float64 // ε₁: submersion/emersion margin
	SurfaceSlack float64 // ε₂: how far above the bed a plant click may land
}

// GoalKind tags the progression goal variants.
type GoalKind int

const (
	// GoalRiverbedCoverage requires a fraction of bed samples above a level.
	GoalRiverbedCoverage GoalKind = iota
	// GoalPlantCounts requires terminal-stage plant counts per species.
	GoalPlantCounts
)

// GoalSpec describes one stage goal. Fields are interpreted per Kind.
type GoalSpec struct {
	Kind GoalKind

	Coverage               float64
	MinElevationAboveWater float64

	Species map[string]int
}

// StageConfig describes one ordered ecological stage.
type StageConfig struct {
	ID                string
	Intro             string
	Completion        string
	Goal              GoalSpec
	AllowedToolGroups []string
}

// ProgressConfig orders the ecological stages and times their transitions.
type ProgressConfig struct {
	Stages         []StageConfig
	AdvanceDelay   float64 // gap between goal completion and stage advance
	VictoryMessage string
}

// Config controls the delta scene. It is treated as immutable for the
// scene's lifetime; HUD tuning goes through the parameter setters.
type Config struct {
	Seed int64

	World        WorldConfig
	Colors       ColorConfig
	Water        WaterConfig
	Riverbed     RiverbedConfig
	Sediment     SedimentConfig
	Seeds        SeedsConfig
	Interactions InteractionConfig
	Progress     ProgressConfig
}

// DefaultConfig returns the standard island-building scenario.
func DefaultConfig() Config {
	return Config{
		Seed: 1337,
		World: WorldConfig{
			Aspect:  16.0 / 9.0,
			Height:  2.0,
			Samples: 256,
		},
		Colors: ColorConfig{
			Sky:   [3]float64{0.63, 0.80, 0.90},
			Water: [3]float64{0.18, 0.42, 0.58},
			Bed:   [3]float64{0.52, 0.42, 0.28},
			Plant: [3]float64{0.22, 0.52, 0.26},
		},
		Water: WaterConfig{
			Baseline:      0.0,
			LevelDeltas:   [3]float64{-0.22, 0, 0.22},
			InitialLevel:  1,
			SmoothingRate: 2.4,
			Waves: [3]WaveConfig{
				{Frequency: 1.5, Speed: 0.9, Amplitude: 0.018},
				{Frequency: 3.1, Speed: -1.3, Amplitude: 0.011, Phase: 1.7},
				{Frequency: 5.7, Speed: 0.6, Amplitude: 0.007, Phase: 0.4},
			},
			Chop:           WaveConfig{Frequency: 17, Speed: 2.8, Amplitude: 0.004},
			NoiseScale:     2.2,
			NoiseTimeScale: 0.35,
			NoiseAmplitude: 0.012,
		},
		Riverbed: RiverbedConfig{
			BaseLow:            -0.62,
			BaseHigh:           -0.18,
			PlateauStart:       0.3,
			PlateauEnd:         0.7,
			RampWidth:          0.12,
			NoiseLowFrequency:  3.0,
			NoiseLowAmplitude:  0.05,
			NoiseHighFrequency: 7.5,
			NoiseHighAmplitude: 0.02,
			Floor:              -0.85,
			Ceiling:            0.5,
			DepositAmount:      0.012,
			DepositRadius:      0.22,
		},
		Sediment: SedimentConfig{
			MaxParticles:       96,
			EmissionPerClick:   14,
			SpawnOffsetX:       0.4,
			SpawnJitter:        0.5,
			TargetWindow:       0.18,
			HorizontalSpeedMin: 0.9,
			HorizontalSpeedMax: 1.6,
			BandBottom:         -0.07,
			BandTop:            -0.015,
			JitterAmplitudeMin: 0.008,
			JitterAmplitudeMax: 0.03,
			JitterSpeedMin:     3.0,
			JitterSpeedMax:     8.0,
			ApproachSpanMin:    0.25,
			ApproachSpanMax:    0.45,
			ArrivalThreshold:   0.004,
		},
		Seeds: SeedsConfig{
			Colonizers: []SpeciesConfig{
				{ID: "aliso", Label: "Aliso", Height: 0.34, Radius: 0.05},
				{ID: "sauce", Label: "Sauce", Height: 0.38, Radius: 0.05},
			},
			NonColonizers: []SpeciesConfig{
				{ID: "ceibo", Label: "Ceibo", Height: 0.42, Radius: 0.06},
				{ID: "cortadera", Label: "Cortadera", Height: 0.26, Radius: 0.07},
			},
			Stages: [PlantStageCount]StageNeed{
				NeedSubmerged, // seed
				NeedSubmerged, // germinated
				NeedEmerged,   // small
				NeedEmerged,   // medium
				NeedNone,      // large
			},
			SubmergeOffset:      0.015,
			EmergenceOffset:     0.015,
			TransitionDuration:  2.0,
			TransitionAnimation: 0.6,
			NeighborRadius:      0.16,
			MinNeighbors:        2,
		},
		Interactions: InteractionConfig{
			DepthMargin:  0.02,
			SurfaceSlack: 0.09,
		},
		Progress: ProgressConfig{
			AdvanceDelay:   3.5,
			VictoryMessage: "La isla está viva: el banco de arena se volvió monte.",
			Stages: []StageConfig{
				{
					ID:         "sandbar",
					Intro:      "El río trae sedimento. Formá un banco de arena que asome sobre el agua.",
					Completion: "El banco de arena emergió del río.",
					Goal: GoalSpec{
						Kind:                   GoalRiverbedCoverage,
						Coverage:               0.2,
						MinElevationAboveWater: 0.03,
					},
					AllowedToolGroups: []string{"sediment"},
				},
				{
					ID:         "colonizers",
					Intro:      "Llegaron las primeras semillas. Plantá alisos y sauces en la isla nueva.",
					Completion: "Los colonizadores echaron raíces.",
					Goal: GoalSpec{
						Kind:    GoalPlantCounts,
						Species: map[string]int{"aliso": 3, "sauce": 3},
					},
					AllowedToolGroups: []string{"sediment", "remove", "colonizers"},
				},
				{
					ID:         "forest",
					Intro:      "Bajo la sombra de los colonizadores crece el monte blanco.",
					Completion: "El monte se cerró sobre la isla.",
					Goal: GoalSpec{
						Kind:    GoalPlantCounts,
						Species: map[string]int{"ceibo": 2, "cortadera": 2},
					},
					AllowedToolGroups: []string{"sediment", "remove", "colonizers", "nonColonizers"},
				},
			},
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unknown keys are ignored; malformed values keep the default.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["aspect"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.World.Aspect = parsed
		}
	}
	if v, ok := cfg["samples"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 8 {
			c.World.Samples = parsed
		}
	}
	if v, ok := cfg["water_smoothing_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Water.SmoothingRate = parsed
		}
	}
	if v, ok := cfg["water_initial_level"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 2 {
			c.Water.InitialLevel = parsed
		}
	}
	if v, ok := cfg["water_noise_amplitude"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Water.NoiseAmplitude = parsed
		}
	}
	if v, ok := cfg["deposit_amount"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Riverbed.DepositAmount = parsed
		}
	}
	if v, ok := cfg["deposit_radius"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Riverbed.DepositRadius = parsed
		}
	}
	if v, ok := cfg["sediment_max_particles"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Sediment.MaxParticles = parsed
		}
	}
	if v, ok := cfg["sediment_emission_per_click"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Sediment.EmissionPerClick = parsed
		}
	}
	if v, ok := cfg["transition_duration"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Seeds.TransitionDuration = parsed
		}
	}
	if v, ok := cfg["neighbor_radius"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Seeds.NeighborRadius = parsed
		}
	}
	if v, ok := cfg["min_neighbors"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Seeds.MinNeighbors = parsed
		}
	}
	if v, ok := cfg["advance_delay"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Progress.AdvanceDelay = parsed
		}
	}
	return c
}

// AllSpecies returns the full species catalog in tool-group order.
func (c *SeedsConfig) AllSpecies() []SpeciesConfig {
	out := make([]SpeciesConfig, 0, len(c.Colonizers)+len(c.NonColonizers))
	out = append(out, c.Colonizers...)
	out = append(out, c.NonColonizers...)
	return out
}

// Species looks up a species by id across both groups.
func (c *SeedsConfig) Species(id string) (SpeciesConfig, bool) {
	for _, sp := range c.Colonizers {
		if sp.ID == id {
			return sp, true
		}
	}
	for _, sp := range c.NonColonizers {
		if sp.ID == id {
			return sp, true
		}
	}
	return SpeciesConfig{}, false
}

// GroupOf reports which tool group a species belongs to.
func (c *SeedsConfig) GroupOf(id string) string {
	for _, sp := range c.Colonizers {
		if sp.ID == id {
			return "colonizers"
		}
	}
	for _, sp := range c.NonColonizers {
		if sp.ID == id {
			return "nonColonizers"
		}
	}
	return ""
}
