package delta

import (
	"strconv"

	"rio-delta/internal/core"
)

// Parameters exposes the HUD-visible tunables grouped for presentation.
func (s *Scene) Parameters() core.ParameterSnapshot {
	cfg := s.cfg
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				int64Param("seed", "Seed", cfg.Seed),
				intParam("samples", "Height-field samples", cfg.World.Samples),
			},
		},
		{
			Name: "Water",
			Params: []core.Parameter{
				floatParam("water_smoothing_rate", "Level smoothing rate", cfg.Water.SmoothingRate),
				floatParam("water_noise_amplitude", "Surface noise amplitude", cfg.Water.NoiseAmplitude),
				intParam("water_initial_level", "Initial level", cfg.Water.InitialLevel),
			},
		},
		{
			Name: "Riverbed",
			Params: []core.Parameter{
				floatParam("deposit_amount", "Deposit amount", cfg.Riverbed.DepositAmount),
				floatParam("deposit_radius", "Deposit radius", cfg.Riverbed.DepositRadius),
			},
		},
		{
			Name: "Sediment",
			Params: []core.Parameter{
				intParam("sediment_max_particles", "Pool capacity", cfg.Sediment.MaxParticles),
				intParam("sediment_emission_per_click", "Emission per click", cfg.Sediment.EmissionPerClick),
			},
		},
		{
			Name: "Plants",
			Params: []core.Parameter{
				floatParam("transition_duration", "Stage hold duration", cfg.Seeds.TransitionDuration),
				floatParam("neighbor_radius", "Competition radius", cfg.Seeds.NeighborRadius),
				intParam("min_neighbors", "Competition min neighbors", cfg.Seeds.MinNeighbors),
			},
		},
		{
			Name: "Progress",
			Params: []core.Parameter{
				floatParam("advance_delay", "Stage advance delay", cfg.Progress.AdvanceDelay),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the parameters adjustable from the HUD.
func (s *Scene) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "water_smoothing_rate", Label: "Level smoothing", Type: core.ParamTypeFloat, Step: 0.2, Min: 0.2, Max: 10, HasMin: true, HasMax: true},
		{Key: "water_noise_amplitude", Label: "Surface noise", Type: core.ParamTypeFloat, Step: 0.002, Min: 0, Max: 0.05, HasMin: true, HasMax: true},
		{Key: "deposit_amount", Label: "Deposit amount", Type: core.ParamTypeFloat, Step: 0.002, Min: 0.002, Max: 0.08, HasMin: true, HasMax: true},
		{Key: "deposit_radius", Label: "Deposit radius", Type: core.ParamTypeFloat, Step: 0.02, Min: 0.04, Max: 0.6, HasMin: true, HasMax: true},
		{Key: "sediment_emission_per_click", Label: "Emission per click", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 48, HasMin: true, HasMax: true},
		{Key: "transition_duration", Label: "Stage hold", Type: core.ParamTypeFloat, Step: 0.25, Min: 0.25, Max: 10, HasMin: true, HasMax: true},
		{Key: "neighbor_radius", Label: "Competition radius", Type: core.ParamTypeFloat, Step: 0.02, Min: 0.02, Max: 0.5, HasMin: true, HasMax: true},
		{Key: "min_neighbors", Label: "Min neighbors", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 8, HasMin: true, HasMax: true},
		{Key: "advance_delay", Label: "Advance delay", Type: core.ParamTypeFloat, Step: 0.5, Min: 0, Max: 10, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a floating point tunable, clamping to its
// control bounds. Reports whether the key was recognized.
func (s *Scene) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "water_smoothing_rate":
		s.cfg.Water.SmoothingRate = core.Clamp(value, 0.2, 10)
		s.water.cfg.SmoothingRate = s.cfg.Water.SmoothingRate
	case "water_noise_amplitude":
		s.cfg.Water.NoiseAmplitude = core.Clamp(value, 0, 0.05)
		s.water.cfg.NoiseAmplitude = s.cfg.Water.NoiseAmplitude
	case "deposit_amount":
		s.cfg.Riverbed.DepositAmount = core.Clamp(value, 0.002, 0.08)
		s.bed.cfg.DepositAmount = s.cfg.Riverbed.DepositAmount
	case "deposit_radius":
		s.cfg.Riverbed.DepositRadius = core.Clamp(value, 0.04, 0.6)
		s.bed.cfg.DepositRadius = s.cfg.Riverbed.DepositRadius
	case "transition_duration":
		s.cfg.Seeds.TransitionDuration = core.Clamp(value, 0.25, 10)
		s.plants.cfg.TransitionDuration = s.cfg.Seeds.TransitionDuration
	case "neighbor_radius":
		s.cfg.Seeds.NeighborRadius = core.Clamp(value, 0.02, 0.5)
		s.plants.cfg.NeighborRadius = s.cfg.Seeds.NeighborRadius
	case "advance_delay":
		s.cfg.Progress.AdvanceDelay = core.Clamp(value, 0, 10)
		s.progress.cfg.AdvanceDelay = s.cfg.Progress.AdvanceDelay
	default:
		return false
	}
	return true
}

// SetIntParameter updates an integer tunable, clamping to its control
// bounds. Reports whether the key was recognized.
func (s *Scene) SetIntParameter(key string, value int) bool {
	switch key {
	case "sediment_emission_per_click":
		s.cfg.Sediment.EmissionPerClick = clampInt(value, 1, 48)
		s.sediment.cfg.EmissionPerClick = s.cfg.Sediment.EmissionPerClick
	case "min_neighbors":
		s.cfg.Seeds.MinNeighbors = clampInt(value, 0, 8)
		s.plants.cfg.MinNeighbors = s.cfg.Seeds.MinNeighbors
	default:
		return false
	}
	return true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
