package delta

// Flat-world helpers. Zeroed wave and noise amplitudes make the water
// surface exactly equal to its damped level and the bed exactly equal to its
// baseline, so tests can reason about heights without tolerances.

func flatWaterConfig(level float64) WaterConfig {
	return WaterConfig{
		Baseline:      level,
		LevelDeltas:   [3]float64{-0.4, 0, 0.4},
		InitialLevel:  1,
		SmoothingRate: 4,
	}
}

func newFlatWater(level float64) *waterSurface {
	return newWaterSurface(flatWaterConfig(level), 64, 1.0, -1, 1, 7)
}

// setSurface pins the water surface to an exact height, bypassing damping.
func setSurface(w *waterSurface, h float64) {
	w.currentLevel = h
	w.targetLevel = h
	w.rebuild()
}

func flatBedConfig(h float64) RiverbedConfig {
	return RiverbedConfig{
		BaseLow:       h,
		BaseHigh:      h,
		PlateauStart:  0.3,
		PlateauEnd:    0.7,
		RampWidth:     0.12,
		Floor:         -0.85,
		Ceiling:       0.5,
		DepositAmount: 0.01,
		DepositRadius: 0.12,
	}
}

func newFlatBed(h float64) *riverbed {
	return newRiverbed(flatBedConfig(h), 100, 1.0, 11)
}

func testSeedsConfig() SeedsConfig {
	c := DefaultConfig().Seeds
	c.TransitionDuration = 1.0
	c.TransitionAnimation = 0.5
	c.NeighborRadius = 0.3
	c.MinNeighbors = 2
	return c
}

func newTestPlants(cfg SeedsConfig) *plantField {
	return newPlantField(cfg, newSequenceCache())
}
